package sheet

import (
	"strconv"
	"strings"
)

// Kind discriminates the cell value variants.
type Kind int

const (
	Empty Kind = iota
	Text
	Number
)

// CellValue is a tagged spreadsheet cell value. Conversions are
// tolerant: asking a Text cell for its Float yields 0 rather than an
// error, mirroring how the extraction pipelines treat unparsable data.
type CellValue struct {
	kind Kind
	text string
	num  float64
}

// Parse builds a CellValue from the raw string excelize yields for a
// cell. Whitespace-only cells are Empty. Numeric text (with optional
// thousands separators) becomes a Number while retaining its text form.
func Parse(raw string) CellValue {
	text := strings.TrimSpace(raw)
	if text == "" {
		return CellValue{kind: Empty}
	}
	numText := strings.ReplaceAll(text, ",", "")
	if num, err := strconv.ParseFloat(numText, 64); err == nil {
		return CellValue{kind: Number, text: text, num: num}
	}
	return CellValue{kind: Text, text: text}
}

// Kind returns the cell variant.
func (c CellValue) Kind() Kind { return c.kind }

// IsEmpty reports whether the cell carries no value.
func (c CellValue) IsEmpty() bool { return c.kind == Empty }

// String returns the trimmed text of the cell, empty for Empty cells.
func (c CellValue) String() string { return c.text }

// Float returns the numeric value of a Number cell and 0.0 for
// everything else.
func (c CellValue) Float() float64 {
	if c.kind == Number {
		return c.num
	}
	return 0.0
}

// Int returns the cell as an integer when it is a Number with no
// fractional part.
func (c CellValue) Int() (int, bool) {
	if c.kind != Number {
		return 0, false
	}
	n := int(c.num)
	if float64(n) != c.num {
		return 0, false
	}
	return n, true
}
