package python

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/blimu-dev/graphql-sdk-gen/pkg/config"
	"github.com/blimu-dev/graphql-sdk-gen/pkg/introspection"
	"github.com/blimu-dev/graphql-sdk-gen/pkg/ir"
)

//go:embed templates/*
var templatesFS embed.FS

// Options are the run-wide settings of one generation.
type Options struct {
	// Sync renders leaf methods as blocking calls instead of coroutines.
	Sync bool
	// RuntimeModule is imported for Arg, Root and Type.
	RuntimeModule string
	// ClientName is the class generated for the query root.
	ClientName string
}

func (o Options) withDefaults() Options {
	if o.RuntimeModule == "" {
		o.RuntimeModule = config.DefaultRuntimeModule
	}
	if o.ClientName == "" {
		o.ClientName = config.DefaultClientName
	}
	return o
}

// OptionsFromClient maps a client configuration to render options.
func OptionsFromClient(client config.Client) Options {
	return Options{
		Sync:          client.Sync,
		RuntimeModule: client.RuntimeModule,
		ClientName:    client.Name,
	}
}

// PythonGenerator implements the Generator interface for Python
type PythonGenerator struct{}

// NewPythonGenerator creates a new Python generator
func NewPythonGenerator() *PythonGenerator {
	return &PythonGenerator{}
}

// GetType returns the generator type identifier
func (g *PythonGenerator) GetType() string {
	return "python"
}

// Generate renders the client module and writes it to the client's output
// path. Nothing is written when rendering fails.
func (g *PythonGenerator) Generate(client config.Client, in ir.IR) error {
	client.ApplyDefaults()
	out, err := Render(in, OptionsFromClient(client))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(client.OutDir, 0o755); err != nil {
		return err
	}
	target := client.OutputPath()
	if err := os.WriteFile(target, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

// Emit builds the IR of schema and renders it.
func Emit(schema *introspection.Schema, opts Options) (string, error) {
	in, err := ir.Build(schema)
	if err != nil {
		return "", err
	}
	return Render(in, opts)
}

// Render produces the Python module for in. The output depends only on its
// arguments.
func Render(in ir.IR, opts Options) (string, error) {
	opts = opts.withDefaults()
	tmpl, err := parseTemplates()
	if err != nil {
		return "", err
	}

	r := newRenderer(in, opts, tmpl)
	var blocks []string
	for _, group := range in.Groups {
		h, err := r.handler(group.Category)
		if err != nil {
			return "", err
		}
		for _, t := range group.Types {
			block, err := h.render(t)
			if err != nil {
				return "", fmt.Errorf("%s %s: %w", group.Category, t.Name, err)
			}
			blocks = append(blocks, block)
		}
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "client.py.gotmpl", map[string]any{
		"RuntimeModule": opts.RuntimeModule,
		"Blocks":        blocks,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute template client.py.gotmpl: %w", err)
	}
	return buf.String(), nil
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"pyindent": indent,
		"doc":      doc,
	}

	// Merge sprig functions
	for k, v := range sprig.FuncMap() {
		if _, exists := funcMap[k]; !exists {
			funcMap[k] = v
		}
	}

	tmpl, err := template.New("python").Funcs(funcMap).ParseFS(templatesFS, "templates/*.gotmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}
