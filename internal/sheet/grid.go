package sheet

// Grid is a read-only 2-D view of one sheet's cells. Rows may have
// ragged lengths; all access is bounds-tolerant and out-of-range
// cells read as Empty.
type Grid struct {
	rows [][]CellValue
}

// NewGrid parses the raw row data returned by the workbook reader.
func NewGrid(raw [][]string) Grid {
	rows := make([][]CellValue, len(raw))
	for r, rawRow := range raw {
		row := make([]CellValue, len(rawRow))
		for c, cell := range rawRow {
			row[c] = Parse(cell)
		}
		rows[r] = row
	}
	return Grid{rows: rows}
}

// NumRows returns the number of rows in the grid.
func (g Grid) NumRows() int { return len(g.rows) }

// RowLen returns the number of cells in row r, 0 if out of range.
func (g Grid) RowLen(r int) int {
	if r < 0 || r >= len(g.rows) {
		return 0
	}
	return len(g.rows[r])
}

// Cell returns the cell at (r, c), Empty when out of range.
func (g Grid) Cell(r, c int) CellValue {
	if r < 0 || r >= len(g.rows) {
		return CellValue{}
	}
	row := g.rows[r]
	if c < 0 || c >= len(row) {
		return CellValue{}
	}
	return row[c]
}

// MaxCols returns the widest row length in the grid.
func (g Grid) MaxCols() int {
	max := 0
	for _, row := range g.rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}
