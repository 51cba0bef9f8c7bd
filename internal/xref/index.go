package xref

import (
	"fmt"
	"math"
	"reflect"

	"graph-loader/internal/record"
)

// DuplicatePolicy decides what happens when two entity records share a
// scope name and id.
type DuplicatePolicy int

const (
	// Overwrite keeps the record indexed last.
	Overwrite DuplicatePolicy = iota
	// RejectDuplicates fails with a *DuplicateEntityError.
	RejectDuplicates
)

// String returns the config name of the policy.
func (p DuplicatePolicy) String() string {
	switch p {
	case Overwrite:
		return "overwrite"
	case RejectDuplicates:
		return "reject"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy maps "overwrite" and "reject" to a policy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "overwrite", "":
		return Overwrite, nil
	case "reject":
		return RejectDuplicates, nil
	default:
		return Overwrite, fmt.Errorf("xref: unknown duplicate policy %q (expected overwrite or reject)", s)
	}
}

// Index maps scope name and id to entity records.
type Index struct {
	buckets map[string]map[any]*record.Record
	size    int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{buckets: make(map[string]map[any]*record.Record)}
}

// BuildIndex indexes entities in order under policy.
func BuildIndex(entities []*record.Record, policy DuplicatePolicy) (*Index, error) {
	ix := NewIndex()

	for _, e := range entities {
		if err := ix.Add(e, policy); err != nil {
			return nil, err
		}
	}

	return ix, nil
}

// Add indexes r under its scope name and id.
func (ix *Index) Add(r *record.Record, policy DuplicatePolicy) error {
	bucket, ok := ix.buckets[r.ScopeName]
	if !ok {
		bucket = make(map[any]*record.Record)
		ix.buckets[r.ScopeName] = bucket
	}

	key := Key(r.ID)

	prev, exists := bucket[key]
	if exists && policy == RejectDuplicates {
		return &DuplicateEntityError{ScopeName: r.ScopeName, ID: r.ID, First: prev.Provenance, Second: r.Provenance}
	}

	if !exists {
		ix.size++
	}

	bucket[key] = r

	return nil
}

// Lookup finds the entity of scope name typ with the given id. When it
// fails, hasType tells whether the scope name is known at all.
func (ix *Index) Lookup(typ string, id any) (rec *record.Record, hasType bool) {
	bucket, ok := ix.buckets[typ]
	if !ok {
		return nil, false
	}

	return bucket[Key(id)], true
}

// Len returns the number of distinct indexed entities.
func (ix *Index) Len() int {
	return ix.size
}

// ScopeNames returns the indexed scope names.
func (ix *Index) ScopeNames() []string {
	names := make([]string, 0, len(ix.buckets))
	for n := range ix.buckets {
		names = append(names, n)
	}

	return names
}

// Key normalizes an id for indexing. Integral numbers of every Go numeric
// type collapse to int64, so an id read as int64 from a workbook matches the
// same id written as an int in a mapping file. Strings never match numbers.
func Key(id any) any {
	switch v := id.(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint:
		return uintKey(uint64(v))
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return uintKey(v)
	case float32:
		return floatKey(float64(v))
	case float64:
		return floatKey(v)
	case nil:
		return nil
	}

	if !reflect.TypeOf(id).Comparable() {
		return fmt.Sprintf("%#v", id)
	}

	return id
}

func uintKey(v uint64) any {
	if v > math.MaxInt64 {
		return v
	}

	return int64(v)
}

func floatKey(v float64) any {
	if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
		return int64(v)
	}

	return v
}
