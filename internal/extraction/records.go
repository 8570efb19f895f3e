package extraction

import (
	"math"
	"sort"

	apperrors "cmicli/internal/errors"
	"cmicli/internal/sheet"
	"cmicli/pkg/contracts/domain"
)

// Master sheet column headers.
const (
	columnGeography = "Geography"
	columnLevel1    = "1st level Segment"
	columnLevel2    = "2nd level Segment"
	columnLevel3    = "3rd level Segment"
	columnLevel4    = "4th level Segment"
)

// Year columns are headers parsing as integers in this range.
const (
	minYearColumn = 2000
	maxYearColumn = 2100
)

// ExtractRecords reads a master sheet grid (value or volume series)
// whose first row holds the column headers. Each data row with a
// non-empty Geography becomes one record; year-numbered columns form
// its time series with missing or unparsable cells coerced to 0.0.
// After extraction the fractional market share for baseYear is
// applied across the record set.
func ExtractRecords(grid sheet.Grid, geo domain.GeographyHierarchy, baseYear int) ([]domain.DataRecord, error) {
	if grid.NumRows() == 0 {
		return []domain.DataRecord{}, nil
	}

	headers := make(map[string]int)
	var yearCols []yearColumn
	for c := 0; c < grid.RowLen(0); c++ {
		cell := grid.Cell(0, c)
		if cell.IsEmpty() {
			continue
		}
		headers[cell.String()] = c
		if year, ok := cell.Int(); ok && year >= minYearColumn && year <= maxYearColumn {
			yearCols = append(yearCols, yearColumn{year: year, col: c})
		}
	}
	sortYearColumns(yearCols)

	geoCol, ok := headers[columnGeography]
	if !ok {
		return nil, apperrors.NewParsingError("master sheet has no Geography column", nil)
	}
	levelCols := [4]int{
		headerIndex(headers, columnLevel1),
		headerIndex(headers, columnLevel2),
		headerIndex(headers, columnLevel3),
		headerIndex(headers, columnLevel4),
	}

	records := []domain.DataRecord{}
	for r := 1; r < grid.NumRows(); r++ {
		geography := grid.Cell(r, geoCol).String()
		if geography == "" {
			continue
		}

		var levels [4]string
		for i, col := range levelCols {
			if col >= 0 {
				levels[i] = grid.Cell(r, col).String()
			}
		}

		segment := firstNonEmpty(levels[3], levels[2], levels[1], levels[0])
		segmentLevel := domain.SegmentLevelLeaf
		if levels[2] != "" || levels[3] != "" {
			segmentLevel = domain.SegmentLevelParent
		}

		timeSeries := make(map[int]float64, len(yearCols))
		for _, yc := range yearCols {
			timeSeries[yc.year] = grid.Cell(r, yc.col).Float()
		}

		cagr := 0.0
		if len(yearCols) >= 2 {
			first := yearCols[0]
			last := yearCols[len(yearCols)-1]
			cagr = CAGR(first.year, last.year, timeSeries[first.year], timeSeries[last.year])
		}

		level, parent := geo.Resolve(geography)

		records = append(records, domain.DataRecord{
			Geography:       geography,
			GeographyLevel:  level,
			ParentGeography: parent,
			SegmentType:     levels[0],
			Segment:         segment,
			SegmentLevel:    segmentLevel,
			SegmentHierarchy: domain.SegmentPath{
				Level1: levels[0],
				Level2: levels[1],
				Level3: levels[2],
				Level4: levels[3],
			},
			TimeSeries:  timeSeries,
			CAGR:        cagr,
			MarketShare: 0.0,
		})
	}

	ApplyBaseYearShares(records, baseYear)

	return records, nil
}

// CAGR computes the compound annual growth rate in percent between
// two year endpoints, rounded to two decimals. It is exactly 0.0 when
// either endpoint value is not strictly positive or the year span is
// zero or negative.
func CAGR(firstYear, lastYear int, firstValue, lastValue float64) float64 {
	if firstValue <= 0 || lastValue <= 0 {
		return 0.0
	}
	span := lastYear - firstYear
	if span <= 0 {
		return 0.0
	}
	cagr := (math.Pow(lastValue/firstValue, 1.0/float64(span)) - 1) * 100
	return round2(cagr)
}

// ApplyBaseYearShares sets each record's market share to its fraction
// of the record set's total for baseYear. Shares stay 0.0 when the
// total is not positive (including when baseYear has no data at all).
func ApplyBaseYearShares(records []domain.DataRecord, baseYear int) {
	total := 0.0
	for i := range records {
		total += records[i].TimeSeries[baseYear]
	}
	if total <= 0 {
		return
	}
	for i := range records {
		records[i].MarketShare = records[i].TimeSeries[baseYear] / total
	}
}

// ApplyYearSharesPercent sets each record's market share to its
// percentage of the record set's total for the given year. This is
// the percentage-scale counterpart of ApplyBaseYearShares; the two
// disagree on scale deliberately and the call site must choose.
func ApplyYearSharesPercent(records []domain.DataRecord, year int) {
	total := 0.0
	for i := range records {
		total += records[i].TimeSeries[year]
	}
	if total <= 0 {
		return
	}
	for i := range records {
		records[i].MarketShare = records[i].TimeSeries[year] / total * 100
	}
}

type yearColumn struct {
	year int
	col  int
}

func sortYearColumns(cols []yearColumn) {
	sort.Slice(cols, func(i, j int) bool {
		return cols[i].year < cols[j].year
	})
}

func headerIndex(headers map[string]int, name string) int {
	if col, ok := headers[name]; ok {
		return col
	}
	return -1
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
