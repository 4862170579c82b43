// Package loader reads a GraphQL schema from an SDL file, an introspection
// result file or a live endpoint.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/blimu-dev/graphql-sdk-gen/pkg/config"
	"github.com/blimu-dev/graphql-sdk-gen/pkg/introspection"
)

// Loader resolves a schema source into the introspection model.
type Loader struct {
	httpClient *http.Client
	headers    map[string]string
	logger     *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient sets the client used for introspection requests.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		l.httpClient = c
	}
}

// WithHeaders adds headers to introspection requests.
func WithHeaders(headers map[string]string) Option {
	return func(l *Loader) {
		for k, v := range headers {
			l.headers[k] = v
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		headers: map[string]string{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.httpClient == nil {
		l.httpClient = NewHTTPClient(l.logger)
	}
	return l
}

// Load loads a schema from a local file path or an HTTP(S) endpoint.
func Load(ctx context.Context, input string, opts ...Option) (*introspection.Schema, error) {
	return New(opts...).Load(ctx, input)
}

// Validate loads a schema and checks it can be generated from.
func Validate(ctx context.Context, input string, opts ...Option) error {
	schema, err := Load(ctx, input, opts...)
	if err != nil {
		return err
	}
	return schema.Validate()
}

// Load resolves input. URLs are introspected; .graphql, .graphqls and .gql
// files are parsed as SDL; .json files are decoded as introspection
// results. Other files are sniffed by their first non-blank byte.
func (l *Loader) Load(ctx context.Context, input string) (*introspection.Schema, error) {
	if config.IsURL(input) {
		return l.Introspect(ctx, input)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	l.logger.Debug("loading schema file", "path", input, "bytes", len(data))

	switch strings.ToLower(filepath.Ext(input)) {
	case ".graphql", ".graphqls", ".gql":
		return ParseSDL(filepath.Base(input), string(data))
	case ".json":
		return introspection.Decode(bytes.NewReader(data))
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return introspection.Decode(bytes.NewReader(data))
	}
	return ParseSDL(filepath.Base(input), string(data))
}

// ParseSDL parses a schema in the GraphQL schema definition language.
func ParseSDL(name, input string) (*introspection.Schema, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{
		Name:  name,
		Input: input,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse GraphQL schema: %w", err)
	}
	return introspection.FromAST(schema), nil
}

type introspectionRequest struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName"`
}

// Introspect runs the introspection query against a GraphQL endpoint.
func (l *Loader) Introspect(ctx context.Context, endpoint string) (*introspection.Schema, error) {
	body, err := json.Marshal(introspectionRequest{
		Query:         introspection.Query,
		OperationName: "IntrospectionQuery",
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build introspection request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range l.headers {
		req.Header.Set(k, v)
	}

	l.logger.Info("introspecting schema", "endpoint", endpoint)
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("introspection request to %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("introspection request to %s: unexpected status %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	schema, err := introspection.Decode(resp.Body)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("introspection complete", "endpoint", endpoint, "types", len(schema.Types))
	return schema, nil
}
