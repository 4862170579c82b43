// Package sdkgen generates typed Python client modules from GraphQL schemas.
//
// A schema can be read from an SDL file, an introspection JSON document or a
// live endpoint. Every object type becomes a lazily evaluated query builder
// class whose leaf fields execute the accumulated selection.
//
// Quick Start:
//
//	import sdkgen "github.com/blimu-dev/graphql-sdk-gen"
//
//	// Generate an async client from a local schema
//	err := sdkgen.GeneratePythonClient("./schema.graphql", "./client", false)
//
// For more advanced usage, see the generator package.
package sdkgen

import (
	"github.com/blimu-dev/graphql-sdk-gen/pkg/generator"
	"github.com/blimu-dev/graphql-sdk-gen/pkg/generator/python"
	"github.com/blimu-dev/graphql-sdk-gen/pkg/introspection"
)

// GeneratePythonClient writes client.py into outDir.
//
// Parameters:
//   - schema: SDL file, introspection JSON file or HTTP(S) endpoint
//   - outDir: Output directory for the generated module
//   - sync: Emit blocking methods instead of coroutines
func GeneratePythonClient(schema, outDir string, sync bool) error {
	return generator.GeneratePythonClient(schema, outDir, sync)
}

// GenerateSDK generates a client with full configuration options.
//
// Example:
//
//	err := sdkgen.GenerateSDK(sdkgen.GenerateSDKOptions{
//		Schema:        "https://api.example.com/graphql",
//		Headers:       map[string]string{"Authorization": "Bearer " + token},
//		OutDir:        "./client",
//		Name:          "Example",
//		RuntimeModule: "example.base",
//	})
func GenerateSDK(opts GenerateSDKOptions) error {
	return generator.GenerateSDK(generator.GenerateSDKOptions(opts))
}

// GenerateFromConfig generates clients from a YAML configuration file.
// Optionally, you can specify a single client name to generate only that client.
//
// Example:
//
//	// Generate all clients from config
//	err := sdkgen.GenerateFromConfig("./sdkgen.yaml")
//
//	// Generate only a specific client
//	err := sdkgen.GenerateFromConfig("./sdkgen.yaml", "Client")
func GenerateFromConfig(configPath string, singleClient ...string) error {
	return generator.GenerateFromConfig(configPath, singleClient...)
}

// ValidateSchema checks that a schema can be loaded and is well formed.
func ValidateSchema(schema string) error {
	return generator.ValidateSchema(schema)
}

// Render returns the Python module for an already loaded schema.
func Render(schema *introspection.Schema, sync bool) (string, error) {
	return python.Emit(schema, python.Options{Sync: sync})
}

// GenerateSDKOptions contains options for SDK generation
type GenerateSDKOptions generator.GenerateSDKOptions
