package xlsx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// cell converts the raw text of one cell into a typed value.
func (w *Workbook) cell(sheet string, col, row int, raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}

	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}

	typ, err := w.f.GetCellType(sheet, name)
	if err != nil {
		return nil, fmt.Errorf("cell %s!%s: %w", sheet, name, err)
	}

	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	case excelize.CellTypeDate:
		return parseISODate(raw)
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return raw, nil
		}

		isDate, err := w.isDateCell(sheet, name)
		if err != nil {
			return nil, err
		}

		if isDate {
			t, err := excelize.ExcelDateToTime(n, w.date1904)
			if err != nil {
				return nil, fmt.Errorf("cell %s!%s: %w", sheet, name, err)
			}

			return t, nil
		}

		return number(n), nil
	default:
		return raw, nil
	}
}

func (w *Workbook) isDateCell(sheet, name string) (bool, error) {
	id, err := w.f.GetCellStyle(sheet, name)
	if err != nil {
		return false, fmt.Errorf("cell %s!%s style: %w", sheet, name, err)
	}

	if id == 0 {
		return false, nil
	}

	if isDate, ok := w.dateStyles[id]; ok {
		return isDate, nil
	}

	style, err := w.f.GetStyle(id)
	if err != nil {
		return false, fmt.Errorf("style %d: %w", id, err)
	}

	isDate := builtinDateFormat(style.NumFmt)
	if style.CustomNumFmt != nil {
		isDate = customDateFormat(*style.CustomNumFmt)
	}

	w.dateStyles[id] = isDate

	return isDate, nil
}

func number(n float64) any {
	if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
		return int64(n)
	}

	return n
}

// builtinDateFormat reports whether a built-in number format id is a date
// or time format.
func builtinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	default:
		return false
	}
}

// customDateFormat reports whether a format code contains date or time
// tokens outside quoted text and bracketed sections.
func customDateFormat(code string) bool {
	var (
		quoted  bool
		bracket bool
		escaped bool
	)

	for _, r := range strings.ToLower(code) {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case quoted:
		case r == '[':
			bracket = true
		case r == ']':
			bracket = false
		case bracket:
		case strings.ContainsRune("ymdhs", r):
			return true
		}
	}

	return false
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseISODate(raw string) (any, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return nil, fmt.Errorf("unrecognized ISO 8601 date %q", raw)
}
