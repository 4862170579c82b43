package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultFileName is the generated module written into OutDir.
	DefaultFileName = "client.py"
	// DefaultRuntimeModule provides Arg, Root and Type to the generated code.
	DefaultRuntimeModule = ".base"
	// DefaultClientName names the class generated for the query root.
	DefaultClientName = "Client"
)

// Config represents the complete configuration for SDK generation
type Config struct {
	// Schema is an SDL file, an introspection JSON file or an http(s) endpoint.
	Schema string `yaml:"schema"`
	// Headers are sent with introspection requests. ${VAR} references are
	// expanded from the environment.
	Headers map[string]string `yaml:"headers"`
	Clients []Client          `yaml:"clients"`
}

// Client represents configuration for a single generated client
type Client struct {
	Type string `yaml:"type"`
	// Name is the class generated for the query root. It is also the key
	// used to select a single client from the command line.
	Name     string `yaml:"name"`
	OutDir   string `yaml:"outDir"`
	FileName string `yaml:"fileName"`
	// Sync renders leaf methods as blocking calls instead of coroutines.
	Sync bool `yaml:"sync"`
	// RuntimeModule is the import path of the module providing Arg, Root
	// and Type.
	RuntimeModule string `yaml:"runtimeModule"`
	// PreCommand is an optional command to run before SDK generation starts.
	// Uses Docker Compose array format: ["mkdir", "-p", "."]
	// The command will be executed in the output directory.
	PreCommand []string `yaml:"preCommand"`
	// PostCommand is an optional command to run after SDK generation completes.
	// Uses Docker Compose array format: ["black", "client.py"]
	// The command will be executed in the output directory.
	PostCommand []string `yaml:"postCommand"`
}

// GetPreCommand returns the pre-generation command to execute.
func (c *Client) GetPreCommand() []string {
	return c.PreCommand
}

// GetPostCommand returns the post-generation command to execute.
func (c *Client) GetPostCommand() []string {
	return c.PostCommand
}

// OutputPath returns the absolute path of the generated module.
func (c *Client) OutputPath() string {
	return filepath.Join(c.OutDir, c.FileName)
}

// ApplyDefaults fills unset optional fields.
func (c *Client) ApplyDefaults() {
	if c.Name == "" {
		c.Name = DefaultClientName
	}
	if c.FileName == "" {
		c.FileName = DefaultFileName
	}
	if c.RuntimeModule == "" {
		c.RuntimeModule = DefaultRuntimeModule
	}
}

// expandHeaders replaces ${VAR} references in header values read from a
// config file. Headers set programmatically are sent as given.
func (c *Config) expandHeaders() {
	for k, v := range c.Headers {
		c.Headers[k] = os.ExpandEnv(v)
	}
}

// Validate checks required fields and normalizes paths.
func (c *Config) Validate() error {
	if c.Schema == "" {
		return errors.New("config.schema is required")
	}
	if len(c.Clients) == 0 {
		return errors.New("config.clients must contain at least one client")
	}
	for i := range c.Clients {
		cl := &c.Clients[i]
		if cl.Type == "" || cl.OutDir == "" {
			return fmt.Errorf("clients[%d] missing required fields (type, outDir)", i)
		}
		cl.ApplyDefaults()
		if !filepath.IsAbs(cl.OutDir) {
			abs, _ := filepath.Abs(cl.OutDir)
			cl.OutDir = abs
		}
	}
	// Do not absolutize when the schema is an HTTP(S) endpoint
	if !IsURL(c.Schema) && !filepath.IsAbs(c.Schema) {
		abs, _ := filepath.Abs(c.Schema)
		c.Schema = abs
	}
	return nil
}

// Load loads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.expandHeaders()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
