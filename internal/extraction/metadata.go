package extraction

import (
	"strings"

	"cmicli/internal/sheet"
	"cmicli/pkg/contracts/domain"
)

// Documented defaults for metadata fields the Parameters sheet does
// not populate.
const (
	defaultMarketName = "India Spices Market"
	defaultMarketType = "Country"
	defaultIndustry   = "CMFE"
	defaultCurrency   = "INR"
	defaultValueUnit  = "Cr."
	defaultVolumeUnit = "Kilo Tons"
)

// ExtractMetadata scans the Parameters sheet for key/value pairs.
// Column 0 is the label and column 1 the value; rows with either side
// empty are skipped and unmatched labels are ignored. The rule order
// matters: the unit/currency rules must win over the bare
// "Value"/"Volume" flags, and the flag rules exclude labels that also
// mention "Currency" or "Unit" so those never flip the flags.
func ExtractMetadata(grid sheet.Grid) domain.Metadata {
	var meta domain.Metadata
	var hasValue, hasVolume *bool

	for r := 0; r < grid.NumRows(); r++ {
		label := grid.Cell(r, 0).String()
		value := grid.Cell(r, 1)
		if label == "" || value.IsEmpty() {
			continue
		}
		text := value.String()

		switch {
		case strings.Contains(label, "Report Title"):
			meta.MarketName = text
		case strings.Contains(label, "Market Type"):
			meta.MarketType = text
		case strings.Contains(label, "Industry Type"):
			meta.Industry = text
		case strings.Contains(label, "Value Currency"):
			meta.Currency = text
		case strings.Contains(label, "Value Unit"):
			meta.ValueUnit = text
		case strings.Contains(label, "Volume Unit"):
			meta.VolumeUnit = text
		case strings.Contains(label, "Value") && !strings.Contains(label, "Currency"):
			b := strings.EqualFold(text, "yes")
			hasValue = &b
		case strings.Contains(label, "Volume") && !strings.Contains(label, "Unit"):
			b := strings.EqualFold(text, "yes")
			hasVolume = &b
		}
	}

	if meta.MarketName == "" {
		meta.MarketName = defaultMarketName
	}
	if meta.MarketType == "" {
		meta.MarketType = defaultMarketType
	}
	if meta.Industry == "" {
		meta.Industry = defaultIndustry
	}
	if meta.Currency == "" {
		meta.Currency = defaultCurrency
	}
	if meta.ValueUnit == "" {
		meta.ValueUnit = defaultValueUnit
	}
	if meta.VolumeUnit == "" {
		meta.VolumeUnit = defaultVolumeUnit
	}
	meta.HasValue = hasValue == nil || *hasValue
	meta.HasVolume = hasVolume == nil || *hasVolume

	return meta
}
