package extraction

import (
	"sort"

	"cmicli/pkg/contracts/domain"
)

// Fallback bounds used when a workbook yields no year columns at all.
const (
	fallbackStartYear    = 2020
	fallbackForecastYear = 2032
)

// DefaultBaseYear is the designated base year for market share and
// historical/forecast partitioning when the workbook does not carry one.
const DefaultBaseYear = 2024

// Assemble merges the extracted pieces into the final comparison
// document. Years are collected from the value records only; the
// base year is 2024 when present, otherwise the largest year not
// after 2024, otherwise the start year.
func Assemble(meta domain.Metadata, geo domain.GeographyHierarchy, segments map[string]domain.SegmentGroup, valueRecords, volumeRecords []domain.DataRecord) domain.Document {
	yearSet := make(map[int]bool)
	for _, record := range valueRecords {
		for year := range record.TimeSeries {
			yearSet[year] = true
		}
	}
	years := make([]int, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Ints(years)

	startYear := fallbackStartYear
	forecastYear := fallbackForecastYear
	if len(years) > 0 {
		startYear = years[0]
		forecastYear = years[len(years)-1]
	}

	baseYear := startYear
	if yearSet[DefaultBaseYear] {
		baseYear = DefaultBaseYear
	} else {
		for _, year := range years {
			if year <= DefaultBaseYear {
				baseYear = year
			}
		}
	}

	historical := []int{}
	forecast := []int{}
	for _, year := range years {
		if year <= baseYear {
			historical = append(historical, year)
		} else {
			forecast = append(forecast, year)
		}
	}

	return domain.Document{
		Metadata: domain.DocumentMetadata{
			Metadata:        meta,
			Years:           years,
			StartYear:       startYear,
			BaseYear:        baseYear,
			ForecastYear:    forecastYear,
			HistoricalYears: historical,
			ForecastYears:   forecast,
		},
		Dimensions: domain.Dimensions{
			Geographies: geo,
			Segments:    segments,
		},
		Data: domain.SeriesData{
			Value:  domain.SeriesMatrix{GeographySegmentMatrix: valueRecords},
			Volume: domain.SeriesMatrix{GeographySegmentMatrix: volumeRecords},
		},
	}
}
