package distributor

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	apperrors "cmicli/internal/errors"
	"cmicli/internal/sheet"
	"cmicli/pkg/contracts/domain"
)

// Module sheets carry a banner above the data: the column headers sit
// at row index 4 and data rows start at index 5.
const (
	headerRowIndex = 4
	dataStartIndex = 5
)

// ExtractSheet extracts the distributor records of one module sheet.
// Rows with an empty first column are skipped, and a record is kept
// only when it carries a non-empty company name.
func ExtractSheet(grid sheet.Grid, moduleName string) []domain.DistributorRecord {
	mapping := FieldMapping(moduleName)

	// Field columns in a stable order; column 0 is handled separately.
	cols := make([]int, 0, len(mapping))
	for col := range mapping {
		if col > 0 {
			cols = append(cols, col)
		}
	}
	sort.Ints(cols)

	slug := strings.ReplaceAll(strings.ToLower(moduleName), " ", "_")

	records := []domain.DistributorRecord{}
	for r := dataStartIndex; r < grid.NumRows(); r++ {
		first := grid.Cell(r, 0)
		if first.IsEmpty() {
			continue
		}

		record := domain.DistributorRecord{
			"module": moduleName,
		}

		sNo, hasSNo := parseSerial(first)
		if hasSNo {
			record["s_no"] = sNo
			record["id"] = fmt.Sprintf("%s_%d", slug, sNo)
		} else {
			record["s_no"] = nil
			record["id"] = fmt.Sprintf("%s_%d", slug, r)
		}

		for _, col := range cols {
			value := grid.Cell(r, col).String()
			if value != "" {
				record[mapping[col]] = value
			} else {
				record[mapping[col]] = nil
			}
		}

		if name, _ := record["company_name"].(string); name != "" {
			records = append(records, record)
		}
	}

	return records
}

// parseSerial reads the serial number column as an integer when it is
// all digits.
func parseSerial(cell sheet.CellValue) (int, bool) {
	for _, r := range cell.String() {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	return cell.Int()
}

// Generator runs the distributor workbook conversion.
type Generator struct {
	logger *slog.Logger
}

// NewGenerator creates a generator. A nil logger falls back to the
// default slog logger.
func NewGenerator(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{logger: logger}
}

// Generate reads the distributor workbook at path and produces the
// distributor intelligence document. A module sheet that cannot be
// read yields an empty record list for that module rather than
// failing the run.
func (g *Generator) Generate(ctx context.Context, path string) (*domain.DistributorDocument, error) {
	wb, err := sheet.Open(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open distributor workbook", err).
			WithContext("path", path)
	}
	defer wb.Close()

	doc := &domain.DistributorDocument{
		Metadata: domain.DistributorMetadata{
			SourceFile:  filepath.Base(path),
			Modules:     Modules,
			ModuleInfo:  moduleInfo,
			GeneratedAt: time.Now().Format(time.RFC3339),
		},
		Data:     make(map[string][]domain.DistributorRecord, len(Modules)),
		Sections: make(map[string]map[string][]string, len(Modules)),
	}

	total := 0
	for _, module := range Modules {
		grid, err := wb.Grid(module)
		if err != nil {
			g.logger.ErrorContext(ctx, "failed to read module sheet",
				slog.String("module", module),
				slog.String("error", err.Error()))
			doc.Data[module] = []domain.DistributorRecord{}
			doc.Sections[module] = map[string][]string{}
			continue
		}

		records := ExtractSheet(grid, module)
		doc.Data[module] = records
		doc.Sections[module] = Sections(module)
		total += len(records)

		g.logger.InfoContext(ctx, "extracted distributors",
			slog.String("module", module),
			slog.Int("records", len(records)))
	}

	g.logger.InfoContext(ctx, "distributor extraction complete",
		slog.Int("total_records", total))

	return doc, nil
}
