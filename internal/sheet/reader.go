package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook wraps an open Excel file and hands out cell grids per sheet.
type Workbook struct {
	f    *excelize.File
	path string
}

// Open opens the workbook at path for reading.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Workbook{f: f, path: path}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Path returns the path the workbook was opened from.
func (w *Workbook) Path() string { return w.path }

// SheetNames lists the sheets in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Grid loads the named sheet as a cell grid. The name must match exactly.
func (w *Workbook) Grid(name string) (Grid, error) {
	rows, err := w.f.GetRows(name)
	if err != nil {
		return Grid{}, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}
	return NewGrid(rows), nil
}

// GridFuzzy loads the first sheet whose name contains the given token,
// compared case-insensitively. It returns the matched sheet name.
func (w *Workbook) GridFuzzy(token string) (Grid, string, error) {
	lower := strings.ToLower(token)
	for _, name := range w.f.GetSheetList() {
		if strings.Contains(strings.ToLower(name), lower) {
			grid, err := w.Grid(name)
			return grid, name, err
		}
	}
	return Grid{}, "", fmt.Errorf("no sheet matching %q in %s", token, w.path)
}
