package tabular

import (
	"fmt"
	"math"
)

// Source exposes the sheets of a dataset.
type Source interface {
	// SheetNames lists sheet names in source order. Index selectors refer to
	// positions in this list.
	SheetNames() []string
	// Rows opens a single-pass iterator over the rows of the named sheet.
	Rows(sheet string) (RowIterator, error)
}

// RowIterator walks the rows of one sheet, first row included.
type RowIterator interface {
	Next() bool
	Row() *Row
	Err() error
	Close() error
}

// Row is one row of a sheet.
type Row struct {
	// Sheet is the owning sheet name.
	Sheet string
	// Number is the 1-based row number within the sheet.
	Number int
	// Cells holds cell values by 0-based column position.
	Cells []any
}

// Cell returns the value at position and whether it holds anything. Empty
// strings count as absent.
func (r *Row) Cell(position int) (any, bool) {
	if r == nil || position < 0 || position >= len(r.Cells) {
		return nil, false
	}

	v := r.Cells[position]
	if v == nil {
		return nil, false
	}

	if s, ok := v.(string); ok && s == "" {
		return nil, false
	}

	return v, true
}

// Open resolves a page selector against src and opens that sheet. A string
// selects by name, an integer (or integral float) by 0-based index.
func Open(src Source, selector any) (RowIterator, error) {
	name, err := SheetName(src, selector)
	if err != nil {
		return nil, err
	}

	it, err := src.Rows(name)
	if err != nil {
		return nil, fmt.Errorf("opening sheet %q: %w", name, err)
	}

	return it, nil
}

// SheetName maps a selector to an existing sheet name.
func SheetName(src Source, selector any) (string, error) {
	names := src.SheetNames()

	if name, ok := selector.(string); ok {
		for _, n := range names {
			if n == name {
				return n, nil
			}
		}

		return "", newMissingSheetError(selector, names)
	}

	idx, ok := sheetIndex(selector)
	if !ok || idx < 0 || idx >= len(names) {
		return "", newMissingSheetError(selector, names)
	}

	return names[idx], nil
}

func sheetIndex(selector any) (int, bool) {
	switch v := selector.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}

		return int(v), true
	default:
		return 0, false
	}
}
