package generator

import (
	"context"
	"path/filepath"

	"github.com/blimu-dev/graphql-sdk-gen/pkg/config"
	"github.com/blimu-dev/graphql-sdk-gen/pkg/loader"
)

// GenerateSDK is a convenience function for generating SDKs with minimal configuration
func GenerateSDK(opts GenerateSDKOptions) error {
	service := NewService()

	genOpts := GenerateOptions{
		ConfigPath:   opts.ConfigPath,
		SingleClient: opts.SingleClient,
		Fallback: FallbackOptions{
			Schema:        opts.Schema,
			Headers:       opts.Headers,
			Type:          opts.Type,
			OutDir:        opts.OutDir,
			FileName:      opts.FileName,
			Name:          opts.Name,
			Sync:          opts.Sync,
			RuntimeModule: opts.RuntimeModule,
		},
	}

	return service.Generate(context.Background(), genOpts)
}

// GenerateSDKOptions contains options for the convenience GenerateSDK function
type GenerateSDKOptions struct {
	// ConfigPath is the path to the configuration file (optional)
	ConfigPath string

	// SingleClient generates only the named client from config (optional)
	SingleClient string

	// Fallback options when no config file is provided
	Schema        string            // SDL file, introspection JSON file or endpoint URL
	Headers       map[string]string // Headers sent with introspection requests
	Type          string            // Generator type (default "python")
	OutDir        string            // Output directory
	FileName      string            // Generated module file name (default client.py)
	Name          string            // Query root class name (default Client)
	Sync          bool              // Blocking leaf methods instead of coroutines
	RuntimeModule string            // Module providing Arg, Root and Type (default .base)
}

// GeneratePythonClient is a convenience function specifically for Python client generation
func GeneratePythonClient(schema, outDir string, sync bool) error {
	// Ensure absolute path for outDir
	absOutDir, err := filepath.Abs(outDir)
	if err != nil {
		return err
	}

	return GenerateSDK(GenerateSDKOptions{
		Schema: schema,
		Type:   "python",
		OutDir: absOutDir,
		Sync:   sync,
	})
}

// GenerateFromConfig is a convenience function for generating from a config file
func GenerateFromConfig(configPath string, singleClient ...string) error {
	service := NewService()
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	onlyClient := ""
	if len(singleClient) > 0 {
		onlyClient = singleClient[0]
	}

	return service.GenerateFromConfig(context.Background(), cfg, onlyClient)
}

// ValidateSchema checks that a schema can be loaded and generated from
func ValidateSchema(schema string) error {
	return loader.Validate(context.Background(), schema)
}
