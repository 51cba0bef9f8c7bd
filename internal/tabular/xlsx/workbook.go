package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"graph-loader/internal/tabular"
)

// Workbook is a tabular.Source over an Excel file.
type Workbook struct {
	f        *excelize.File
	date1904 bool
	// dateStyles caches whether a style id formats numbers as dates.
	dateStyles map[int]bool
}

// Open opens the workbook at path. Close it when done.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}

	return newWorkbook(f)
}

// OpenReader reads a workbook from r.
func OpenReader(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("reading workbook: %w", err)
	}

	return newWorkbook(f)
}

func newWorkbook(f *excelize.File) (*Workbook, error) {
	props, err := f.GetWorkbookProps()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("reading workbook properties: %w", err)
	}

	wb := &Workbook{f: f, dateStyles: make(map[int]bool)}
	if props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}

	return wb, nil
}

// SheetNames implements tabular.Source.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Rows implements tabular.Source.
func (w *Workbook) Rows(sheet string) (tabular.RowIterator, error) {
	rows, err := w.f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	return &rowIterator{wb: w, sheet: sheet, rows: rows}, nil
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.f.Close()
}

type rowIterator struct {
	wb    *Workbook
	sheet string
	rows  *excelize.Rows

	number int
	row    *tabular.Row
	err    error
}

func (it *rowIterator) Next() bool {
	it.row = nil

	if it.err != nil || !it.rows.Next() {
		if it.err == nil {
			it.err = it.rows.Error()
		}

		return false
	}

	it.number++

	raw, err := it.rows.Columns(excelize.Options{RawCellValue: true})
	if err != nil {
		it.err = fmt.Errorf("sheet %q row %d: %w", it.sheet, it.number, err)
		return false
	}

	cells := make([]any, len(raw))

	for i, s := range raw {
		cells[i], err = it.wb.cell(it.sheet, i+1, it.number, s)
		if err != nil {
			it.err = err
			return false
		}
	}

	it.row = &tabular.Row{Sheet: it.sheet, Number: it.number, Cells: cells}

	return true
}

func (it *rowIterator) Row() *tabular.Row { return it.row }

func (it *rowIterator) Err() error { return it.err }

func (it *rowIterator) Close() error {
	it.row = nil
	return it.rows.Close()
}
