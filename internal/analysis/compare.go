package analysis

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"cmicli/internal/exporter"
	"cmicli/internal/extraction"
	"cmicli/internal/sheet"
	"cmicli/pkg/contracts/domain"
)

// Comparison summarises how a workbook's structure differs from a
// previously generated comparison document.
type Comparison struct {
	WorkbookFile string
	DatasetFile  string

	MissingGeographies []string // in the dataset, absent from the workbook
	NewGeographies     []string // in the workbook, absent from the dataset
	MissingYears       []int
	NewYears           []int
	SegmentTypesBefore int
	SegmentTypesAfter  int
}

// Compare analyzes the workbook at workbookPath against the dataset
// JSON at datasetPath.
func Compare(workbookPath, datasetPath string) (*Comparison, error) {
	var doc domain.Document
	if err := exporter.ReadJSON(datasetPath, &doc); err != nil {
		return nil, err
	}

	wb, err := sheet.Open(workbookPath)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	cmp := &Comparison{
		WorkbookFile:       workbookPath,
		DatasetFile:        datasetPath,
		SegmentTypesBefore: len(doc.Dimensions.Segments),
	}

	regionGrid, err := wb.Grid(extraction.SheetRegion)
	if err != nil {
		return nil, err
	}
	geo := extraction.BuildGeographyHierarchy(regionGrid, extraction.DefaultRootGeography)
	cmp.MissingGeographies, cmp.NewGeographies = diffStrings(
		doc.Dimensions.Geographies.AllGeographies, geo.AllGeographies)

	segGrid, err := wb.Grid(extraction.SheetSegmentation)
	if err != nil {
		return nil, err
	}
	cmp.SegmentTypesAfter = len(extraction.BuildSegmentHierarchy(segGrid))

	valueGrid, err := wb.Grid(extraction.SheetMasterValue)
	if err != nil {
		return nil, err
	}
	records, err := extraction.ExtractRecords(valueGrid, geo, extraction.DefaultBaseYear)
	if err != nil {
		return nil, err
	}
	yearSet := make(map[int]bool)
	for _, record := range records {
		for year := range record.TimeSeries {
			yearSet[year] = true
		}
	}
	var years []int
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Ints(years)
	cmp.MissingYears, cmp.NewYears = diffInts(doc.Metadata.Years, years)

	return cmp, nil
}

// diffStrings returns (in before only, in after only), both sorted.
func diffStrings(before, after []string) ([]string, []string) {
	beforeSet := make(map[string]bool, len(before))
	for _, s := range before {
		beforeSet[s] = true
	}
	afterSet := make(map[string]bool, len(after))
	for _, s := range after {
		afterSet[s] = true
	}

	var missing, added []string
	for _, s := range before {
		if !afterSet[s] {
			missing = append(missing, s)
		}
	}
	for _, s := range after {
		if !beforeSet[s] {
			added = append(added, s)
		}
	}
	sort.Strings(missing)
	sort.Strings(added)
	return missing, added
}

func diffInts(before, after []int) ([]int, []int) {
	beforeSet := make(map[int]bool, len(before))
	for _, n := range before {
		beforeSet[n] = true
	}
	afterSet := make(map[int]bool, len(after))
	for _, n := range after {
		afterSet[n] = true
	}

	var missing, added []int
	for _, n := range before {
		if !afterSet[n] {
			missing = append(missing, n)
		}
	}
	for _, n := range after {
		if !beforeSet[n] {
			added = append(added, n)
		}
	}
	sort.Ints(missing)
	sort.Ints(added)
	return missing, added
}

// Write renders the comparison as a console report.
func (c *Comparison) Write(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintf(w, "COMPARING %s AGAINST %s\n", c.WorkbookFile, c.DatasetFile)
	fmt.Fprintln(w, strings.Repeat("=", 70))

	fmt.Fprintf(w, "\nGeographies missing from workbook: %v\n", c.MissingGeographies)
	fmt.Fprintf(w, "Geographies new in workbook:       %v\n", c.NewGeographies)
	fmt.Fprintf(w, "Years missing from workbook:       %v\n", c.MissingYears)
	fmt.Fprintf(w, "Years new in workbook:             %v\n", c.NewYears)
	fmt.Fprintf(w, "Segment types: %d before, %d after\n", c.SegmentTypesBefore, c.SegmentTypesAfter)
}
