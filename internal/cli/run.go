package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/blimu-dev/graphql-sdk-gen/pkg/generator"
	"github.com/blimu-dev/graphql-sdk-gen/pkg/loader"
)

type FallbackParams struct {
	Schema        string
	Headers       []string
	Type          string
	OutDir        string
	FileName      string
	Name          string
	Sync          bool
	RuntimeModule string
}

type RunGenerateParams struct {
	ConfigPath   string
	SingleClient string
	Fallback     FallbackParams
}

func RunValidate(ctx context.Context, logger *slog.Logger, schema string, headerPairs []string) error {
	headers, err := parseHeaders(headerPairs)
	if err != nil {
		return err
	}
	if err := loader.Validate(ctx, schema, loader.WithLogger(logger), loader.WithHeaders(headers)); err != nil {
		return err
	}
	logger.Info("schema is valid", "schema", schema)
	return nil
}

func RunGenerate(ctx context.Context, logger *slog.Logger, p RunGenerateParams) error {
	if p.ConfigPath == "" && (p.Fallback.Schema == "" || p.Fallback.OutDir == "") {
		return errors.New("either --config or both --schema and --out must be provided")
	}
	headers, err := parseHeaders(p.Fallback.Headers)
	if err != nil {
		return err
	}

	service := generator.NewService(generator.WithLogger(logger))
	return service.Generate(ctx, generator.GenerateOptions{
		ConfigPath:   p.ConfigPath,
		SingleClient: p.SingleClient,
		Fallback: generator.FallbackOptions{
			Schema:        p.Fallback.Schema,
			Headers:       headers,
			Type:          p.Fallback.Type,
			OutDir:        absPath(p.Fallback.OutDir),
			FileName:      p.Fallback.FileName,
			Name:          p.Fallback.Name,
			Sync:          p.Fallback.Sync,
			RuntimeModule: p.Fallback.RuntimeModule,
		},
	})
}
