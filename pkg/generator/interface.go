package generator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/blimu-dev/graphql-sdk-gen/pkg/config"
	"github.com/blimu-dev/graphql-sdk-gen/pkg/generator/python"
	"github.com/blimu-dev/graphql-sdk-gen/pkg/introspection"
	"github.com/blimu-dev/graphql-sdk-gen/pkg/ir"
	"github.com/blimu-dev/graphql-sdk-gen/pkg/loader"
)

// Generator defines the interface for client generators
type Generator interface {
	// Generate renders the client described by client from the schema IR
	Generate(client config.Client, ir ir.IR) error
	// GetType returns the type identifier for this generator (e.g., "python")
	GetType() string
}

// Registry manages available generators
type Registry struct {
	generators map[string]Generator
}

// NewRegistry creates a new generator registry
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// Register adds a generator to the registry
func (r *Registry) Register(gen Generator) {
	r.generators[gen.GetType()] = gen
}

// Get retrieves a generator by type
func (r *Registry) Get(genType string) (Generator, bool) {
	gen, exists := r.generators[genType]
	return gen, exists
}

// GetAvailableTypes returns all registered generator types, sorted
func (r *Registry) GetAvailableTypes() []string {
	types := make([]string, 0, len(r.generators))
	for t := range r.generators {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// GenerateOptions contains options for SDK generation
type GenerateOptions struct {
	ConfigPath   string
	SingleClient string
	Fallback     FallbackOptions
}

// FallbackOptions contains fallback options when no config file is provided
type FallbackOptions struct {
	Schema        string
	Headers       map[string]string
	Type          string
	OutDir        string
	FileName      string
	Name          string
	Sync          bool
	RuntimeModule string
}

// Service provides high-level SDK generation functionality
type Service struct {
	registry *Registry
	logger   *slog.Logger
	loadOpts []loader.Option
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger. It is also handed to the schema loader.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithLoaderOptions appends options used when loading schemas.
func WithLoaderOptions(opts ...loader.Option) ServiceOption {
	return func(s *Service) {
		s.loadOpts = append(s.loadOpts, opts...)
	}
}

// NewService creates a new generator service with default generators
func NewService(opts ...ServiceOption) *Service {
	registry := NewRegistry()
	// Register default generators
	registry.Register(python.NewPythonGenerator())
	return NewServiceWithRegistry(registry, opts...)
}

// NewServiceWithRegistry creates a new generator service with a custom registry
func NewServiceWithRegistry(registry *Registry, opts ...ServiceOption) *Service {
	s := &Service{
		registry: registry,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate generates SDKs based on the provided options
func (s *Service) Generate(ctx context.Context, opts GenerateOptions) error {
	var cfg *config.Config
	var err error

	if opts.ConfigPath == "" {
		// Use fallback options to create a config
		if opts.Fallback.Schema == "" || opts.Fallback.OutDir == "" {
			return fmt.Errorf("either config path or fallback schema and output directory must be provided")
		}
		genType := opts.Fallback.Type
		if genType == "" {
			genType = "python"
		}
		cfg = &config.Config{
			Schema:  opts.Fallback.Schema,
			Headers: opts.Fallback.Headers,
			Clients: []config.Client{
				{
					Type:          genType,
					Name:          opts.Fallback.Name,
					OutDir:        opts.Fallback.OutDir,
					FileName:      opts.Fallback.FileName,
					Sync:          opts.Fallback.Sync,
					RuntimeModule: opts.Fallback.RuntimeModule,
				},
			},
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	} else {
		cfg, err = config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
	}

	return s.GenerateFromConfig(ctx, cfg, opts.SingleClient)
}

// LoadSchema loads the schema named by cfg, sending its headers as given
// when the schema is a live endpoint.
func (s *Service) LoadSchema(ctx context.Context, cfg *config.Config) (*introspection.Schema, error) {
	opts := append([]loader.Option{loader.WithLogger(s.logger)}, s.loadOpts...)
	if len(cfg.Headers) > 0 {
		opts = append(opts, loader.WithHeaders(cfg.Headers))
	}
	return loader.Load(ctx, cfg.Schema, opts...)
}

// GenerateFromConfig generates SDKs from a configuration
func (s *Service) GenerateFromConfig(ctx context.Context, cfg *config.Config, onlyClient string) error {
	schema, err := s.LoadSchema(ctx, cfg)
	if err != nil {
		return err
	}

	in, err := ir.Build(schema)
	if err != nil {
		return err
	}
	for _, c := range in.IDCollisions {
		s.logger.Warn("id scalar claimed by several object types; the last one wins",
			"scalar", c.Scalar, "ignored", c.Previous, "type", c.Winner)
	}
	s.logger.Debug("schema loaded", "types", len(schema.Types), "id_scalars", in.IDMap.Len())

	matched := false
	for _, client := range cfg.Clients {
		if onlyClient != "" && client.Name != onlyClient {
			continue
		}
		matched = true
		client.ApplyDefaults()

		generator, exists := s.registry.Get(client.Type)
		if !exists {
			return fmt.Errorf("unsupported client type: %s (available: %s)", client.Type, strings.Join(s.registry.GetAvailableTypes(), ", "))
		}

		// Ensure output directory exists before pre-commands
		if err := os.MkdirAll(client.OutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory for client %s: %w", client.Name, err)
		}

		// Execute pre-generation commands if specified
		if err := s.executePreCommands(ctx, client); err != nil {
			return fmt.Errorf("pre-generation commands failed for client %s: %w", client.Name, err)
		}

		s.logger.Info("generating client", "client", client.Name, "type", client.Type, "path", client.OutputPath(), "sync", client.Sync)
		if err := generator.Generate(client, in); err != nil {
			return fmt.Errorf("generate client %s: %w", client.Name, err)
		}

		// Execute post-generation commands if specified
		if err := s.executePostGenCommands(ctx, client); err != nil {
			return fmt.Errorf("post-generation commands failed for client %s: %w", client.Name, err)
		}
	}

	if onlyClient != "" && !matched {
		return fmt.Errorf("client %q not found in config", onlyClient)
	}
	return nil
}

// GetRegistry returns the generator registry
func (s *Service) GetRegistry() *Registry {
	return s.registry
}

// executePreCommands executes the pre-generation command for a client
func (s *Service) executePreCommands(ctx context.Context, client config.Client) error {
	command := client.GetPreCommand()
	if len(command) == 0 {
		return nil // No command to execute
	}

	return s.executeCommand(ctx, command, client.OutDir, "pre-command")
}

// executePostGenCommands executes the post-generation command for a client
func (s *Service) executePostGenCommands(ctx context.Context, client config.Client) error {
	command := client.GetPostCommand()
	if len(command) == 0 {
		return nil // No command to execute
	}

	return s.executeCommand(ctx, command, client.OutDir, "post-command")
}

// executeCommand executes a single command in Docker Compose array format
func (s *Service) executeCommand(ctx context.Context, command []string, workDir, commandLabel string) error {
	if len(command) == 0 {
		return nil // Skip empty commands
	}

	// Create command with first element as executable and rest as arguments
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = workDir      // Execute in the specified directory
	cmd.Stdout = os.Stdout // Forward stdout to see command output
	cmd.Stderr = os.Stderr // Forward stderr to see errors

	cmdDescription := strings.Join(command, " ")
	s.logger.Debug("running command", "label", commandLabel, "command", cmdDescription, "dir", workDir)

	// Execute the command
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s (%s) failed: %w", commandLabel, cmdDescription, err)
	}

	return nil
}
