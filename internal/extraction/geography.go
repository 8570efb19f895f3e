package extraction

import (
	"sort"

	"cmicli/internal/sheet"
	"cmicli/pkg/contracts/domain"
)

// BuildGeographyHierarchy reconstructs the two-level geography model
// from the Region sheet. Row 0 names the regions (cells equal to the
// root geography are skipped); membership of every later cell is
// decided by its column position, not by the row it sits in. This
// column-based attribution matches the source workbook layout and
// must not be "fixed" to a row-wise scheme.
func BuildGeographyHierarchy(grid sheet.Grid, root string) domain.GeographyHierarchy {
	hierarchy := domain.GeographyHierarchy{
		Global:    []string{root},
		Regions:   []string{},
		Countries: map[string][]string{},
	}

	regionByCol := make(map[int]string)
	if grid.NumRows() > 0 {
		for c := 1; c < grid.RowLen(0); c++ {
			name := grid.Cell(0, c).String()
			if name == "" || name == root {
				continue
			}
			regionByCol[c] = name
			hierarchy.Regions = append(hierarchy.Regions, name)
		}
	}

	seen := make(map[string]map[string]bool)
	for r := 1; r < grid.NumRows(); r++ {
		for c := 1; c < grid.RowLen(r); c++ {
			name := grid.Cell(r, c).String()
			if name == "" || name == root {
				continue
			}
			region, ok := regionByCol[c]
			if !ok {
				continue
			}
			if seen[region] == nil {
				seen[region] = make(map[string]bool)
			}
			if seen[region][name] {
				continue
			}
			seen[region][name] = true
			hierarchy.Countries[region] = append(hierarchy.Countries[region], name)
		}
	}

	all := map[string]bool{root: true}
	for _, region := range hierarchy.Regions {
		all[region] = true
		for _, member := range hierarchy.Countries[region] {
			all[member] = true
		}
	}
	hierarchy.AllGeographies = make([]string, 0, len(all))
	for name := range all {
		hierarchy.AllGeographies = append(hierarchy.AllGeographies, name)
	}
	sort.Strings(hierarchy.AllGeographies)

	return hierarchy
}
