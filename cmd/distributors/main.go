// Command distributors extracts the distributor intelligence workbook
// into a flat-record JSON document.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cmicli/internal/config"
	"cmicli/internal/distributor"
	"cmicli/internal/exporter"
	"cmicli/internal/infrastructure"
)

func main() {
	in := flag.String("in", "", "distributor workbook (.xlsx)")
	out := flag.String("out", "", "output JSON file (defaults to the configured datasets directory)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	paths := config.NewPaths(cfg.Paths)
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *in == "" {
		flag.Usage()
		os.Exit(1)
	}
	if _, err := os.Stat(*in); err != nil {
		fmt.Printf("ERROR: File not found: %s\n", *in)
		os.Exit(1)
	}

	output := *out
	if output == "" {
		base := filepath.Base(*in)
		output = paths.DatasetPath(strings.TrimSuffix(base, filepath.Ext(base)) + ".json")
	}

	generator := distributor.NewGenerator(logger)
	doc, err := generator.Generate(context.Background(), *in)
	if err != nil {
		logger.Error("Distributor extraction failed",
			slog.String("workbook", *in),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := exporter.WriteJSON(output, doc); err != nil {
		logger.Error("Failed to write output", slog.String("error", err.Error()))
		os.Exit(1)
	}

	total := 0
	for _, records := range doc.Data {
		total += len(records)
	}
	fmt.Printf("Successfully generated JSON with %d total distributors\n", total)
}
