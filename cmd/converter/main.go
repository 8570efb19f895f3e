// Command converter turns market research workbooks into comparison
// JSON datasets. It accepts a single workbook or a directory of
// workbooks.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"cmicli/internal/config"
	"cmicli/internal/exporter"
	"cmicli/internal/extraction"
	"cmicli/internal/infrastructure"
)

func main() {
	in := flag.String("in", "", "input workbook file or directory of .xlsx files (defaults to the configured workbooks directory)")
	out := flag.String("out", "", "output JSON file or directory (defaults to the configured datasets directory)")
	workers := flag.Int("workers", 4, "number of concurrent conversions when processing a directory")
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
		*in = paths.WorkbooksDir
	}

	info, err := os.Stat(*in)
	if err != nil {
		logger.Error("Input not found", slog.String("path", *in), slog.String("error", err.Error()))
		fmt.Printf("ERROR: File not found: %s\n", *in)
		os.Exit(1)
	}

	ctx := context.Background()

	if !info.IsDir() {
		output := *out
		if output == "" {
			output = paths.DatasetPath(outputName(*in))
		}
		if err := convertOne(ctx, logger, *in, output); err != nil {
			logger.Error("Conversion failed",
				slog.String("workbook", *in),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("Successfully converted to %s\n", output)
		return
	}

	outDir := *out
	if outDir == "" {
		outDir = paths.DatasetsDir
	}

	entries, err := os.ReadDir(*in)
	if err != nil {
		logger.Error("Failed to read input directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var workbooks []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".xlsx") || strings.HasPrefix(name, "~$") {
			continue
		}
		workbooks = append(workbooks, filepath.Join(*in, name))
	}

	logger.Info("Workbooks discovered", slog.Int("count", len(workbooks)))
	fmt.Printf("Found %d workbooks\n", len(workbooks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	for _, workbook := range workbooks {
		workbook := workbook
		g.Go(func() error {
			return convertOne(gctx, logger, workbook, filepath.Join(outDir, outputName(workbook)))
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("Batch conversion failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Batch conversion complete", slog.Int("workbooks", len(workbooks)))
	fmt.Printf("Processing complete: %d workbooks\n", len(workbooks))
}

func convertOne(ctx context.Context, logger *slog.Logger, workbookPath, outputPath string) error {
	logger.Info("Converting workbook",
		slog.String("workbook", workbookPath),
		slog.String("output", outputPath))

	converter := extraction.NewConverter(logger)
	doc, err := converter.Convert(ctx, workbookPath)
	if err != nil {
		return err
	}

	if err := exporter.WriteJSON(outputPath, doc); err != nil {
		return err
	}

	logger.Info("Converted workbook",
		slog.String("output", outputPath),
		slog.Int("value_records", len(doc.Data.Value.GeographySegmentMatrix)),
		slog.Int("volume_records", len(doc.Data.Volume.GeographySegmentMatrix)),
		slog.Int("years", len(doc.Metadata.Years)))

	return nil
}

func outputName(workbookPath string) string {
	base := filepath.Base(workbookPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}
