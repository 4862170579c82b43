package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	cli "github.com/blimu-dev/graphql-sdk-gen/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var verbose bool
	root := &cobra.Command{
		Use:           "sdk-gen",
		Short:         "Generate typed Python clients from GraphQL schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	logger := func() *slog.Logger {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	root.AddCommand(newGenerateCmd(logger))
	root.AddCommand(newValidateCmd(logger))

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error("sdk-gen failed", "err", err)
		os.Exit(1)
	}
}

func newGenerateCmd(logger func() *slog.Logger) *cobra.Command {
	var configPath string
	var singleClient string
	var fallback cli.FallbackParams

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate client modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunGenerate(cmd.Context(), logger(), cli.RunGenerateParams{
				ConfigPath:   configPath,
				SingleClient: singleClient,
				Fallback:     fallback,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to sdkgen.yaml config")
	cmd.Flags().StringVar(&singleClient, "client", "", "Generate only the named client from config")
	// Fallback single-client flags
	cmd.Flags().StringVar(&fallback.Schema, "schema", "", "GraphQL SDL file, introspection JSON file or endpoint URL")
	cmd.Flags().StringArrayVar(&fallback.Headers, "header", nil, "Header sent with introspection requests (Name=value)")
	cmd.Flags().StringVar(&fallback.Type, "type", "python", "Client type")
	cmd.Flags().StringVar(&fallback.OutDir, "out", "", "Output directory")
	cmd.Flags().StringVar(&fallback.FileName, "file-name", "", "Generated module file name (default client.py)")
	cmd.Flags().StringVar(&fallback.Name, "name", "", "Class name of the query root (default Client)")
	cmd.Flags().BoolVar(&fallback.Sync, "sync", false, "Generate blocking methods instead of coroutines")
	cmd.Flags().StringVar(&fallback.RuntimeModule, "runtime-module", "", "Module providing Arg, Root and Type (default .base)")

	return cmd
}

func newValidateCmd(logger func() *slog.Logger) *cobra.Command {
	var schema string
	var headers []string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a GraphQL schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(cmd.Context(), logger(), schema, headers)
		},
	}
	cmd.Flags().StringVar(&schema, "schema", "", "GraphQL SDL file, introspection JSON file or endpoint URL")
	cmd.Flags().StringArrayVar(&headers, "header", nil, "Header sent with introspection requests (Name=value)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
