package analysis

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cmicli/internal/exporter"
	"cmicli/pkg/contracts/domain"
)

func writeComparableWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Region"))
	region := [][]any{
		{"India", "North India"},
		{"", "Punjab"},
	}
	for i, row := range region {
		require.NoError(t, f.SetSheetRow("Region", fmt.Sprintf("A%d", i+1), &row))
	}

	_, err := f.NewSheet("Segmentation")
	require.NoError(t, err)
	seg := []any{"", "By Type"}
	require.NoError(t, f.SetSheetRow("Segmentation", "A1", &seg))
	item := []any{"", "Chilli"}
	require.NoError(t, f.SetSheetRow("Segmentation", "A2", &item))

	_, err = f.NewSheet("Master Sheet-Value")
	require.NoError(t, err)
	master := [][]any{
		{"Geography", "1st level Segment", 2021, 2024},
		{"India", "By Type", 100, 150},
	}
	for i, row := range master {
		require.NoError(t, f.SetSheetRow("Master Sheet-Value", fmt.Sprintf("A%d", i+1), &row))
	}

	path := filepath.Join(t.TempDir(), "next.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestCompare(t *testing.T) {
	workbook := writeComparableWorkbook(t)

	dataset := filepath.Join(t.TempDir(), "previous.json")
	doc := domain.Document{
		Metadata: domain.DocumentMetadata{
			Years: []int{2020, 2024},
		},
		Dimensions: domain.Dimensions{
			Geographies: domain.GeographyHierarchy{
				AllGeographies: []string{"India", "North India", "Karnataka"},
			},
			Segments: map[string]domain.SegmentGroup{
				"By Type": {},
				"By Form": {},
			},
		},
	}
	require.NoError(t, exporter.WriteJSON(dataset, doc))

	cmp, err := Compare(workbook, dataset)
	require.NoError(t, err)

	assert.Equal(t, []string{"Karnataka"}, cmp.MissingGeographies)
	assert.Equal(t, []string{"Punjab"}, cmp.NewGeographies)
	assert.Equal(t, []int{2020}, cmp.MissingYears)
	assert.Equal(t, []int{2021}, cmp.NewYears)
	assert.Equal(t, 2, cmp.SegmentTypesBefore)
	assert.Equal(t, 1, cmp.SegmentTypesAfter)

	var buf bytes.Buffer
	cmp.Write(&buf)
	out := buf.String()
	assert.Contains(t, out, "COMPARING "+workbook)
	assert.Contains(t, out, "Segment types: 2 before, 1 after")
}

func TestCompare_MissingDataset(t *testing.T) {
	workbook := writeComparableWorkbook(t)

	_, err := Compare(workbook, filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
