package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmcrae/batstat/internal/config"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the pipeline once and emit the JSON report",
		Long:  "Load the batting table, clean it, compute career totals and record holders, and write the report to stdout or a file.",
		RunE:  runAnalyze,
	}
	cmd.Flags().String("input", "", "Path to the batting table (csv or xlsx)")
	cmd.Flags().String("format", "", "Input format: auto, csv, or xlsx")
	cmd.Flags().String("sheet", "", "Worksheet name for xlsx sources")
	cmd.Flags().String("output", "", "Write the report to this file instead of stdout")
	cmd.Flags().Int("min-at-bats", -1, "Qualifying career at-bats threshold")
	cmd.Flags().Bool("pretty", false, "Indent the JSON report")
	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx, func(cfg *config.Config) {
		if v, _ := cmd.Flags().GetString("input"); v != "" {
			cfg.InputPath = v
		}
		if v, _ := cmd.Flags().GetString("format"); v != "" {
			cfg.InputFormat = v
		}
		if v, _ := cmd.Flags().GetString("sheet"); v != "" {
			cfg.Sheet = v
		}
		if v, _ := cmd.Flags().GetString("output"); v != "" {
			cfg.OutputPath = v
		}
		if v, _ := cmd.Flags().GetInt("min-at-bats"); v >= 0 {
			cfg.MinAtBats = v
		}
		if v, _ := cmd.Flags().GetBool("pretty"); v {
			cfg.Pretty = true
		}
	})
	if err != nil {
		return err
	}

	svc, err := buildService(cfg)
	if err != nil {
		return err
	}

	report, err := svc.Report(ctx)
	if err != nil {
		return err
	}

	out := os.Stdout
	if cfg.OutputPath != "" {
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", cfg.OutputPath, err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	if cfg.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}
