package extraction

import (
	"context"
	"log/slog"

	apperrors "cmicli/internal/errors"
	"cmicli/internal/sheet"
	"cmicli/pkg/contracts/domain"
)

// Sheet names of a market research workbook.
const (
	SheetParameters   = "Parameters"
	SheetRegion       = "Region"
	SheetSegmentation = "Segmentation"
	SheetMasterValue  = "Master Sheet-Value"
	SheetMasterVolume = "Master Sheet-Volume"
)

// DefaultRootGeography is the root of the geography hierarchy for the
// markets this converter handles.
const DefaultRootGeography = "India"

// Converter runs the full market workbook conversion pipeline.
type Converter struct {
	logger *slog.Logger
	root   string
}

// NewConverter creates a converter. A nil logger falls back to the
// default slog logger.
func NewConverter(logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{logger: logger, root: DefaultRootGeography}
}

// Convert reads the workbook at path and produces the comparison
// document. A missing Parameters sheet degrades to metadata defaults;
// a missing Region, Segmentation or master sheet fails the run.
func (c *Converter) Convert(ctx context.Context, path string) (*domain.Document, error) {
	wb, err := sheet.Open(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open market workbook", err).
			WithContext("path", path)
	}
	defer wb.Close()

	paramsGrid, err := wb.Grid(SheetParameters)
	if err != nil {
		c.logger.WarnContext(ctx, "parameters sheet missing, using metadata defaults",
			slog.String("path", path),
			slog.String("error", err.Error()))
		paramsGrid = sheet.NewGrid(nil)
	}
	meta := ExtractMetadata(paramsGrid)
	c.logger.InfoContext(ctx, "extracted metadata",
		slog.String("market", meta.MarketName),
		slog.String("currency", meta.Currency),
		slog.String("value_unit", meta.ValueUnit),
		slog.String("volume_unit", meta.VolumeUnit))

	regionGrid, err := wb.Grid(SheetRegion)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read region sheet", err)
	}
	geo := BuildGeographyHierarchy(regionGrid, c.root)
	c.logger.InfoContext(ctx, "built geography hierarchy",
		slog.Int("regions", len(geo.Regions)),
		slog.Int("geographies", len(geo.AllGeographies)))

	segGrid, err := wb.Grid(SheetSegmentation)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read segmentation sheet", err)
	}
	segments := BuildSegmentHierarchy(segGrid)
	c.logger.InfoContext(ctx, "built segment hierarchy",
		slog.Int("segment_types", len(segments)))

	valueRecords, err := c.extractSeries(ctx, wb, SheetMasterValue, geo)
	if err != nil {
		return nil, err
	}
	volumeRecords, err := c.extractSeries(ctx, wb, SheetMasterVolume, geo)
	if err != nil {
		return nil, err
	}

	doc := Assemble(meta, geo, segments, valueRecords, volumeRecords)
	c.logger.InfoContext(ctx, "assembled comparison document",
		slog.Int("value_records", len(valueRecords)),
		slog.Int("volume_records", len(volumeRecords)),
		slog.Int("start_year", doc.Metadata.StartYear),
		slog.Int("base_year", doc.Metadata.BaseYear),
		slog.Int("forecast_year", doc.Metadata.ForecastYear))

	return &doc, nil
}

func (c *Converter) extractSeries(ctx context.Context, wb *sheet.Workbook, sheetName string, geo domain.GeographyHierarchy) ([]domain.DataRecord, error) {
	grid, err := wb.Grid(sheetName)
	if err != nil {
		// Some workbooks decorate the master sheet names (units,
		// casing); fall back to a fuzzy lookup before failing.
		fuzzy, matched, fuzzyErr := wb.GridFuzzy(sheetName)
		if fuzzyErr != nil {
			return nil, apperrors.NewParsingError("failed to read master sheet", err).
				WithContext("sheet", sheetName)
		}
		c.logger.WarnContext(ctx, "master sheet matched by fuzzy name",
			slog.String("wanted", sheetName),
			slog.String("matched", matched))
		grid = fuzzy
	}
	records, err := ExtractRecords(grid, geo, DefaultBaseYear)
	if err != nil {
		return nil, err
	}
	c.logger.InfoContext(ctx, "extracted data records",
		slog.String("sheet", sheetName),
		slog.Int("records", len(records)))
	return records, nil
}
