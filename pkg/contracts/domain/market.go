package domain

// Geography levels used in extracted data records.
const (
	GeographyLevelGlobal  = "global"
	GeographyLevelRegion  = "region"
	GeographyLevelCountry = "country"
)

// Segment group kinds.
const (
	SegmentKindFlat         = "flat"
	SegmentKindHierarchical = "hierarchical"
)

// Segment levels. Rows carrying 3rd/4th level data are labelled
// "parent" and shallower rows "leaf" — the naming is inverted but
// downstream consumers key on these exact values.
const (
	SegmentLevelLeaf   = "leaf"
	SegmentLevelParent = "parent"
)

// Metadata holds the canonical fields extracted from the Parameters sheet.
type Metadata struct {
	MarketName string `json:"market_name"`
	MarketType string `json:"market_type"`
	Industry   string `json:"industry"`
	Currency   string `json:"currency"`
	ValueUnit  string `json:"value_unit"`
	VolumeUnit string `json:"volume_unit"`
	HasValue   bool   `json:"has_value"`
	HasVolume  bool   `json:"has_volume"`
}

// DocumentMetadata is the metadata section of an assembled document,
// extended with the year partitioning derived from the extracted records.
type DocumentMetadata struct {
	Metadata
	Years           []int `json:"years"`
	StartYear       int   `json:"start_year"`
	BaseYear        int   `json:"base_year"`
	ForecastYear    int   `json:"forecast_year"`
	HistoricalYears []int `json:"historical_years"`
	ForecastYears   []int `json:"forecast_years"`
}

// GeographyHierarchy is the two-level geography model built from the
// Region sheet. Countries maps a region name to its member geographies
// in first-seen column order.
type GeographyHierarchy struct {
	Global         []string            `json:"global"`
	Regions        []string            `json:"regions"`
	Countries      map[string][]string `json:"countries"`
	AllGeographies []string            `json:"all_geographies"`
}

// Resolve classifies a geography name against the hierarchy and
// returns its level and parent. Unknown names fall back to the
// country level with no parent.
func (h GeographyHierarchy) Resolve(name string) (string, *string) {
	for _, g := range h.Global {
		if g == name {
			return GeographyLevelGlobal, nil
		}
	}
	for _, region := range h.Regions {
		if region == name {
			if len(h.Global) > 0 {
				parent := h.Global[0]
				return GeographyLevelRegion, &parent
			}
			return GeographyLevelRegion, nil
		}
	}
	for _, region := range h.Regions {
		for _, member := range h.Countries[region] {
			if member == name {
				parent := region
				return GeographyLevelCountry, &parent
			}
		}
	}
	return GeographyLevelCountry, nil
}

// SegmentGroup describes one segment taxonomy from the Segmentation sheet.
type SegmentGroup struct {
	Kind      string              `json:"type"`
	Items     []string            `json:"items"`
	Hierarchy map[string][]string `json:"hierarchy"`
}

// SegmentPath carries all four segment levels of a data row verbatim;
// absent levels are empty strings.
type SegmentPath struct {
	Level1 string `json:"level_1"`
	Level2 string `json:"level_2"`
	Level3 string `json:"level_3"`
	Level4 string `json:"level_4"`
}

// DataRecord is one extracted row of a master sheet (value or volume
// series). TimeSeries is keyed by year; missing cells are coerced to 0.
type DataRecord struct {
	Geography        string          `json:"geography"`
	GeographyLevel   string          `json:"geography_level"`
	ParentGeography  *string         `json:"parent_geography"`
	SegmentType      string          `json:"segment_type"`
	Segment          string          `json:"segment"`
	SegmentLevel     string          `json:"segment_level"`
	SegmentHierarchy SegmentPath     `json:"segment_hierarchy"`
	TimeSeries       map[int]float64 `json:"time_series"`
	CAGR             float64         `json:"cagr"`
	MarketShare      float64         `json:"market_share"`
}

// Dimensions groups the extracted geography and segment hierarchies.
type Dimensions struct {
	Geographies GeographyHierarchy      `json:"geographies"`
	Segments    map[string]SegmentGroup `json:"segments"`
}

// SeriesMatrix wraps the record list for one series kind.
type SeriesMatrix struct {
	GeographySegmentMatrix []DataRecord `json:"geography_segment_matrix"`
}

// SeriesData holds the value and volume record matrices.
type SeriesData struct {
	Value  SeriesMatrix `json:"value"`
	Volume SeriesMatrix `json:"volume"`
}

// Document is the assembled comparison document written as the final
// JSON artifact of a market workbook conversion.
type Document struct {
	Metadata   DocumentMetadata `json:"metadata"`
	Dimensions Dimensions       `json:"dimensions"`
	Data       SeriesData       `json:"data"`
}
