package extraction

import (
	"strings"

	"cmicli/internal/sheet"
	"cmicli/pkg/contracts/domain"
)

// hierarchyMarker prefixes segment labels to encode their depth: one
// marker per level below the column's top-level entries.
const hierarchyMarker = ">"

// sheetTitleToken appears as a stray cell in some workbooks and is
// never a real segment type or label.
const sheetTitleToken = "Segmentation"

// BuildSegmentHierarchy reconstructs the per-column segment
// taxonomies from the Segmentation sheet. Row 0 names the segment
// types; within a column, a label's parent is the nearest prior row
// whose marker depth is strictly smaller. A label with no qualifying
// ancestor stays in the item set but gets no hierarchy entry.
func BuildSegmentHierarchy(grid sheet.Grid) map[string]domain.SegmentGroup {
	segments := make(map[string]domain.SegmentGroup)
	if grid.NumRows() == 0 {
		return segments
	}

	for c := 1; c < grid.RowLen(0); c++ {
		segType := grid.Cell(0, c).String()
		if segType == "" || segType == sheetTitleToken {
			continue
		}

		var items []string
		seen := make(map[string]bool)
		hierarchy := make(map[string][]string)

		for r := 1; r < grid.NumRows(); r++ {
			raw := grid.Cell(r, c).String()
			if raw == "" || strings.HasPrefix(raw, sheetTitleToken) {
				continue
			}
			clean := cleanLabel(raw)
			if clean == "" {
				continue
			}
			if !seen[clean] {
				seen[clean] = true
				items = append(items, clean)
			}

			depth := markerDepth(raw)
			if depth == 0 {
				continue
			}
			if parent, ok := findParent(grid, r, c, depth); ok {
				hierarchy[parent] = append(hierarchy[parent], clean)
			}
		}

		kind := domain.SegmentKindFlat
		if len(hierarchy) > 0 {
			kind = domain.SegmentKindHierarchical
		}
		if items == nil {
			items = []string{}
		}
		segments[segType] = domain.SegmentGroup{
			Kind:      kind,
			Items:     items,
			Hierarchy: hierarchy,
		}
	}

	return segments
}

// findParent scans upward from row r in column c for the nearest
// label with depth strictly less than the given depth.
func findParent(grid sheet.Grid, r, c, depth int) (string, bool) {
	for prev := r - 1; prev >= 0; prev-- {
		raw := grid.Cell(prev, c).String()
		if raw == "" {
			continue
		}
		if markerDepth(raw) < depth {
			return cleanLabel(raw), true
		}
	}
	return "", false
}

// markerDepth counts the hierarchy markers in a raw label.
func markerDepth(raw string) int {
	return strings.Count(raw, hierarchyMarker)
}

// cleanLabel strips the leading markers and surrounding whitespace.
func cleanLabel(raw string) string {
	return strings.TrimSpace(strings.TrimLeft(raw, hierarchyMarker))
}
