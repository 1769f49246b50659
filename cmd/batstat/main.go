package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmcrae/batstat/internal/adapters/source"
	"github.com/tmcrae/batstat/internal/app"
	"github.com/tmcrae/batstat/internal/config"
	"github.com/tmcrae/batstat/pkg/logger"
)

const (
	appName = "batstat"
	version = "v1.0.0"
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Season batting analytics: cleaning, career rollups, record holders",
		Version: version,
		Long: `batstat ingests a season-level batting table and produces a validated
analytical report: dataset summary statistics, derived rate metrics,
league subsets, and the fourteen career record holders.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newAnalyzeCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, optional YAML file, and env, then applies
// command-line flag overrides on top.
func loadConfig(ctx context.Context, override func(cfg *config.Config)) (*config.Config, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if override != nil {
		override(cfg)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel))
		_ = logger.SetLevelString("info")
	}
	return cfg, nil
}

// buildService resolves the configured source and wires the pipeline.
func buildService(cfg *config.Config) (*app.Service, error) {
	loader, err := source.Open(cfg.InputPath,
		source.WithFormat(source.Format(cfg.InputFormat)),
		source.WithSheet(cfg.Sheet),
	)
	if err != nil {
		return nil, err
	}
	return app.New(loader,
		app.WithMinAtBats(cfg.MinAtBats),
		app.WithLogger(logger.Get()),
	), nil
}
