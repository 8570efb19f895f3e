package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantKind  Kind
		wantText  string
		wantFloat float64
	}{
		{
			name:     "empty string",
			raw:      "",
			wantKind: Empty,
		},
		{
			name:     "whitespace only",
			raw:      "   ",
			wantKind: Empty,
		},
		{
			name:      "plain text",
			raw:       "North India",
			wantKind:  Text,
			wantText:  "North India",
			wantFloat: 0.0,
		},
		{
			name:      "integer",
			raw:       "2024",
			wantKind:  Number,
			wantText:  "2024",
			wantFloat: 2024,
		},
		{
			name:      "decimal",
			raw:       "12.75",
			wantKind:  Number,
			wantText:  "12.75",
			wantFloat: 12.75,
		},
		{
			name:      "thousands separators",
			raw:       "1,234.5",
			wantKind:  Number,
			wantText:  "1,234.5",
			wantFloat: 1234.5,
		},
		{
			name:      "padded number",
			raw:       " 42 ",
			wantKind:  Number,
			wantText:  "42",
			wantFloat: 42,
		},
		{
			name:      "numeric text with suffix stays text",
			raw:       "2024E",
			wantKind:  Text,
			wantText:  "2024E",
			wantFloat: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := Parse(tt.raw)

			assert.Equal(t, tt.wantKind, cell.Kind())
			assert.Equal(t, tt.wantText, cell.String())
			assert.Equal(t, tt.wantFloat, cell.Float())
		})
	}
}

func TestCellValue_Int(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   int
		wantOK bool
	}{
		{"integer", "2024", 2024, true},
		{"fractional", "2024.5", 0, false},
		{"text", "year", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.raw).Int()

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGrid_Cell(t *testing.T) {
	grid := NewGrid([][]string{
		{"a", "b"},
		{"c"},
	})

	assert.Equal(t, "a", grid.Cell(0, 0).String())
	assert.Equal(t, "c", grid.Cell(1, 0).String())

	// Out-of-range access reads as Empty.
	assert.True(t, grid.Cell(1, 1).IsEmpty())
	assert.True(t, grid.Cell(5, 0).IsEmpty())
	assert.True(t, grid.Cell(-1, 0).IsEmpty())

	assert.Equal(t, 2, grid.NumRows())
	assert.Equal(t, 2, grid.MaxCols())
	assert.Equal(t, 1, grid.RowLen(1))
	assert.Equal(t, 0, grid.RowLen(3))
}
