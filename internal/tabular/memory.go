package tabular

import "fmt"

// Memory is an in-memory Source. Sheets keep insertion order.
type Memory struct {
	names  []string
	sheets map[string][][]any
}

// NewMemory returns an empty in-memory source.
func NewMemory() *Memory {
	return &Memory{sheets: make(map[string][][]any)}
}

// AddSheet appends a sheet; rows are used as given, header row included.
// Adding an existing name replaces its rows but keeps its position.
func (m *Memory) AddSheet(name string, rows ...[]any) *Memory {
	if _, exists := m.sheets[name]; !exists {
		m.names = append(m.names, name)
	}

	m.sheets[name] = rows

	return m
}

// SheetNames implements Source.
func (m *Memory) SheetNames() []string {
	return append([]string(nil), m.names...)
}

// Rows implements Source.
func (m *Memory) Rows(sheet string) (RowIterator, error) {
	rows, ok := m.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("memory source has no sheet %q", sheet)
	}

	return &memoryRows{sheet: sheet, rows: rows, pos: -1}, nil
}

type memoryRows struct {
	sheet  string
	rows   [][]any
	pos    int
	closed bool
}

func (it *memoryRows) Next() bool {
	if it.closed || it.pos+1 >= len(it.rows) {
		it.pos = len(it.rows)
		return false
	}

	it.pos++

	return true
}

func (it *memoryRows) Row() *Row {
	if it.pos < 0 || it.pos >= len(it.rows) {
		return nil
	}

	return &Row{Sheet: it.sheet, Number: it.pos + 1, Cells: it.rows[it.pos]}
}

func (it *memoryRows) Err() error { return nil }

func (it *memoryRows) Close() error {
	it.closed = true
	return nil
}
