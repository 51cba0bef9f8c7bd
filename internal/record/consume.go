package record

import (
	"fmt"

	"graph-loader/internal/mapping"
	"graph-loader/internal/tabular"
	"graph-loader/internal/value"
)

// Cursor is a lazy, single-pass sequence of records.
type Cursor struct {
	def  mapping.Definition
	rows tabular.RowIterator

	rec     *Record
	err     error
	started bool
	done    bool
}

// Consume resolves def's page selector without a row, opens that sheet of
// src and returns a cursor over its records. The header row is skipped.
func Consume(src tabular.Source, def mapping.Definition) (*Cursor, error) {
	selector, err := def.Page().Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("%s: resolving page: %w", label(def), err)
	}

	rows, err := tabular.Open(src, selector)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label(def), err)
	}

	return &Cursor{def: def, rows: rows}, nil
}

// Next advances to the next record. It returns false when the sheet is
// exhausted or an error occurred; check Err.
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}

	if !c.started {
		c.started = true

		if !c.rows.Next() {
			return c.finish(c.rows.Err())
		}
	}

	for c.rows.Next() {
		row := c.rows.Row()

		rec, ok, err := FromRow(c.def, row)
		if err != nil {
			return c.finish(fmt.Errorf("%s [%s:%d]: %w", label(c.def), row.Sheet, row.Number, err))
		}

		if ok {
			c.rec = rec
			return true
		}
	}

	return c.finish(c.rows.Err())
}

func (c *Cursor) finish(err error) bool {
	c.done = true
	c.rec = nil
	c.err = err

	return false
}

// Record returns the current record, or nil when the cursor is not
// positioned on one.
func (c *Cursor) Record() *Record {
	return c.rec
}

// Err returns the error that stopped the cursor.
func (c *Cursor) Err() error {
	return c.err
}

// Close releases the underlying row iterator.
func (c *Cursor) Close() error {
	c.done = true
	c.rec = nil

	return c.rows.Close()
}

// Collect drains c and closes it.
func Collect(c *Cursor) ([]*Record, error) {
	var out []*Record

	for c.Next() {
		out = append(out, c.Record())
	}

	err := c.Err()
	if cerr := c.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return nil, err
	}

	return out, nil
}

// FromRow resolves def against one row. It reports false when the
// definition's predicate rejects the row.
func FromRow(def mapping.Definition, row *tabular.Row) (*Record, bool, error) {
	if p := def.Predicate(); p != nil {
		ok, err := p.Eval(row)
		if err != nil {
			return nil, false, fmt.Errorf("only_if: %w", err)
		}

		if !ok {
			return nil, false, nil
		}
	}

	id, err := def.ID().Resolve(row)
	if err != nil {
		return nil, false, fmt.Errorf("id: %w", err)
	}

	labels, err := value.ResolveAll(def.Labels(), row)
	if err != nil {
		return nil, false, fmt.Errorf("labels: %w", err)
	}

	rec := &Record{
		Scope:      def.Scope(),
		ScopeName:  def.Name(),
		ID:         id,
		Labels:     make([]string, len(labels)),
		Properties: make([]Property, 0, def.Properties().Len()),
		Provenance: Provenance{Sheet: row.Sheet, Row: row.Number},
	}

	for i, l := range labels {
		rec.Labels[i] = stringify(l)
	}

	err = def.Properties().Each(func(name string, r value.Resolver) error {
		v, err := r.Resolve(row)
		if err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}

		rec.Properties = append(rec.Properties, Property{Name: name, Value: v})

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if rel, ok := def.(*mapping.Relationship); ok {
		if rec.From, err = endpoint(rel.From(), row); err != nil {
			return nil, false, fmt.Errorf("from: %w", err)
		}

		if rec.To, err = endpoint(rel.To(), row); err != nil {
			return nil, false, fmt.Errorf("to: %w", err)
		}
	}

	return rec, true, nil
}

func endpoint(side mapping.Side, row *tabular.Row) (Endpoint, error) {
	if side.Find != nil {
		key, err := side.Find.Resolve(row)
		if err != nil {
			return Endpoint{}, fmt.Errorf("find: %w", err)
		}

		return Endpoint{Find: key, Deferred: key != nil}, nil
	}

	var ep Endpoint

	if side.Type != nil {
		t, err := side.Type.Resolve(row)
		if err != nil {
			return Endpoint{}, fmt.Errorf("type: %w", err)
		}

		ep.Type = stringify(t)
	}

	if ep.Type == "" {
		ep.Type = side.StaticType
	}

	if side.ID != nil {
		id, err := side.ID.Resolve(row)
		if err != nil {
			return Endpoint{}, fmt.Errorf("id: %w", err)
		}

		ep.ID = id
	}

	return ep, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func label(def mapping.Definition) string {
	name := def.Name()
	if name == "" {
		name = "(anonymous)"
	}

	return fmt.Sprintf("%s %s", def.Scope(), name)
}
