// Package analysis provides diagnostic inspection of workbooks:
// sheet inventories, header-row candidates and year-column detection,
// plus structural comparison against a previously generated dataset.
// Reports are human-readable only; nothing here is consumed by the
// conversion pipelines.
package analysis

import (
	"fmt"
	"io"
	"strings"

	"cmicli/internal/sheet"
)

// headerKeywords mark rows that are likely column headers in a data
// sheet.
var headerKeywords = []string{
	"geography", "segment", "year", "value", "volume", "market",
	"product", "category", "region", "state", "city",
}

// How much of a sheet the analyzer samples.
const (
	sampleRowLimit  = 15
	sampleColLimit  = 10
	yearScanRows    = 50
	yearScanColumns = 30
)

// SheetReport describes the observed structure of one sheet.
type SheetReport struct {
	Name             string
	Rows             int
	Cols             int
	SampleRows       [][]string
	HeaderCandidates []int
	YearColumns      []int
}

// Report is the full structural analysis of a workbook.
type Report struct {
	File   string
	Sheets []SheetReport
}

// Analyze inspects every sheet of the workbook at path.
func Analyze(path string) (*Report, error) {
	wb, err := sheet.Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	report := &Report{File: path}
	for _, name := range wb.SheetNames() {
		grid, err := wb.Grid(name)
		if err != nil {
			return nil, err
		}
		report.Sheets = append(report.Sheets, analyzeSheet(name, grid))
	}
	return report, nil
}

func analyzeSheet(name string, grid sheet.Grid) SheetReport {
	sr := SheetReport{
		Name: name,
		Rows: grid.NumRows(),
		Cols: grid.MaxCols(),
	}

	for r := 0; r < grid.NumRows() && r < sampleRowLimit; r++ {
		var row []string
		for c := 0; c < sampleColLimit; c++ {
			row = append(row, grid.Cell(r, c).String())
		}
		sr.SampleRows = append(sr.SampleRows, row)

		if rowLooksLikeHeader(grid, r) {
			sr.HeaderCandidates = append(sr.HeaderCandidates, r)
		}
	}

	for c := 0; c < grid.MaxCols() && c < yearScanColumns; c++ {
		if columnHoldsYears(grid, c) {
			sr.YearColumns = append(sr.YearColumns, c)
		}
	}

	return sr
}

// rowLooksLikeHeader reports whether a row contains any of the usual
// header keywords.
func rowLooksLikeHeader(grid sheet.Grid, r int) bool {
	var parts []string
	for c := 0; c < grid.RowLen(r) && c < sampleColLimit+5; c++ {
		if text := grid.Cell(r, c).String(); text != "" {
			parts = append(parts, strings.ToLower(text))
		}
	}
	joined := strings.Join(parts, " ")
	for _, keyword := range headerKeywords {
		if strings.Contains(joined, keyword) {
			return true
		}
	}
	return false
}

// columnHoldsYears reports whether a column carries 4-digit year
// values within the plausible range.
func columnHoldsYears(grid sheet.Grid, c int) bool {
	for r := 0; r < grid.NumRows() && r < yearScanRows; r++ {
		if year, ok := grid.Cell(r, c).Int(); ok && year >= 2000 && year <= 2100 {
			return true
		}
	}
	return false
}

// Write renders the report in the console format of the original
// diagnostic tooling.
func (r *Report) Write(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintf(w, "ANALYZING %s\n", r.File)
	fmt.Fprintln(w, strings.Repeat("=", 70))

	for _, sr := range r.Sheets {
		fmt.Fprintf(w, "\nSHEET: %s\n", sr.Name)
		fmt.Fprintf(w, "Dimensions: %d rows x %d columns\n", sr.Rows, sr.Cols)
		for i, row := range sr.SampleRows {
			fmt.Fprintf(w, "Row %2d: %s\n", i, strings.Join(row, " | "))
		}
		if len(sr.HeaderCandidates) > 0 {
			fmt.Fprintf(w, "Header candidates: %v\n", sr.HeaderCandidates)
		}
		if len(sr.YearColumns) > 0 {
			fmt.Fprintf(w, "Year columns: %v\n", sr.YearColumns)
		}
	}
}
