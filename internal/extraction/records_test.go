package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmicli/internal/sheet"
	"cmicli/pkg/contracts/domain"
)

func masterFixture() sheet.Grid {
	return sheet.NewGrid([][]string{
		{"Geography", "1st level Segment", "2nd level Segment", "3rd level Segment", "4th level Segment", "2020", "2024"},
		{"India", "By Type", "", "", "", "100", "150"},
		{"North India", "By Type", "Chilli", "", "", "40", "60"},
		{"Punjab", "By Type", "Chilli", "Dried", "", "20", "30"},
		{"", "By Type", "Skipped", "", "", "9", "9"},
		{"Atlantis", "By Type", "", "", "", "N/A", ""},
	})
}

func TestExtractRecords(t *testing.T) {
	geo := BuildGeographyHierarchy(regionFixture(), "India")

	records, err := ExtractRecords(masterFixture(), geo, 2024)
	require.NoError(t, err)
	require.Len(t, records, 4)

	t.Run("geography resolution", func(t *testing.T) {
		india := records[0]
		assert.Equal(t, "India", india.Geography)
		assert.Equal(t, domain.GeographyLevelGlobal, india.GeographyLevel)
		assert.Nil(t, india.ParentGeography)

		north := records[1]
		assert.Equal(t, domain.GeographyLevelRegion, north.GeographyLevel)
		require.NotNil(t, north.ParentGeography)
		assert.Equal(t, "India", *north.ParentGeography)

		punjab := records[2]
		assert.Equal(t, domain.GeographyLevelCountry, punjab.GeographyLevel)
		require.NotNil(t, punjab.ParentGeography)
		assert.Equal(t, "North India", *punjab.ParentGeography)

		atlantis := records[3]
		assert.Equal(t, domain.GeographyLevelCountry, atlantis.GeographyLevel)
		assert.Nil(t, atlantis.ParentGeography)
	})

	t.Run("segment labelling", func(t *testing.T) {
		assert.Equal(t, "By Type", records[0].Segment)
		assert.Equal(t, domain.SegmentLevelLeaf, records[0].SegmentLevel)

		assert.Equal(t, "Chilli", records[1].Segment)
		assert.Equal(t, domain.SegmentLevelLeaf, records[1].SegmentLevel)

		// The deepest populated level names the segment, and rows
		// carrying 3rd/4th level data are labelled "parent".
		assert.Equal(t, "Dried", records[2].Segment)
		assert.Equal(t, domain.SegmentLevelParent, records[2].SegmentLevel)
		assert.Equal(t, domain.SegmentPath{
			Level1: "By Type",
			Level2: "Chilli",
			Level3: "Dried",
		}, records[2].SegmentHierarchy)
	})

	t.Run("time series with tolerant coercion", func(t *testing.T) {
		assert.Equal(t, map[int]float64{2020: 100, 2024: 150}, records[0].TimeSeries)

		// Unparsable and missing cells both read as zero.
		assert.Equal(t, map[int]float64{2020: 0, 2024: 0}, records[3].TimeSeries)
	})

	t.Run("growth rates", func(t *testing.T) {
		assert.InDelta(t, 10.67, records[0].CAGR, 1e-9)
		assert.InDelta(t, 10.67, records[2].CAGR, 1e-9)
		assert.Equal(t, 0.0, records[3].CAGR)
	})

	t.Run("base year shares are fractions summing to one", func(t *testing.T) {
		total := 0.0
		for _, record := range records {
			total += record.MarketShare
		}
		assert.InDelta(t, 1.0, total, 1e-9)

		assert.InDelta(t, 150.0/240.0, records[0].MarketShare, 1e-9)
		assert.InDelta(t, 60.0/240.0, records[1].MarketShare, 1e-9)
		assert.InDelta(t, 30.0/240.0, records[2].MarketShare, 1e-9)
		assert.Equal(t, 0.0, records[3].MarketShare)
	})
}

func TestExtractRecords_Errors(t *testing.T) {
	geo := BuildGeographyHierarchy(sheet.NewGrid(nil), "India")

	t.Run("empty grid", func(t *testing.T) {
		records, err := ExtractRecords(sheet.NewGrid(nil), geo, 2024)

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("missing geography column", func(t *testing.T) {
		grid := sheet.NewGrid([][]string{
			{"Region", "2020"},
			{"India", "10"},
		})

		_, err := ExtractRecords(grid, geo, 2024)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Geography")
	})
}

func TestCAGR(t *testing.T) {
	tests := []struct {
		name       string
		firstYear  int
		lastYear   int
		firstValue float64
		lastValue  float64
		want       float64
	}{
		{"four year growth", 2020, 2024, 100, 150, 10.67},
		{"decade doubling", 2020, 2030, 100, 200, 7.18},
		{"decline", 2020, 2024, 150, 100, -9.64},
		{"zero first value", 2020, 2024, 0, 150, 0.0},
		{"zero last value", 2020, 2024, 100, 0, 0.0},
		{"negative value", 2020, 2024, -5, 150, 0.0},
		{"zero span", 2024, 2024, 100, 150, 0.0},
		{"inverted span", 2024, 2020, 100, 150, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CAGR(tt.firstYear, tt.lastYear, tt.firstValue, tt.lastValue), 1e-9)
		})
	}
}

func TestApplyBaseYearShares(t *testing.T) {
	t.Run("zero total leaves shares untouched", func(t *testing.T) {
		records := []domain.DataRecord{
			{TimeSeries: map[int]float64{2024: 0}},
			{TimeSeries: map[int]float64{2020: 50}},
		}

		ApplyBaseYearShares(records, 2024)

		assert.Equal(t, 0.0, records[0].MarketShare)
		assert.Equal(t, 0.0, records[1].MarketShare)
	})
}

func TestApplyYearSharesPercent(t *testing.T) {
	records := []domain.DataRecord{
		{TimeSeries: map[int]float64{2024: 75}},
		{TimeSeries: map[int]float64{2024: 25}},
	}

	ApplyYearSharesPercent(records, 2024)

	assert.InDelta(t, 75.0, records[0].MarketShare, 1e-9)
	assert.InDelta(t, 25.0, records[1].MarketShare, 1e-9)

	total := records[0].MarketShare + records[1].MarketShare
	assert.InDelta(t, 100.0, total, 1e-9)
}
