package mapping

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"graph-loader/internal/value"
)

// Registry holds the named transforms and predicates a mapping file can
// refer to.
type Registry struct {
	transforms map[string]value.TransformFunc
	predicates map[string]PredicateFunc
}

// NewRegistry returns a registry preloaded with the built-in transforms and
// predicates.
func NewRegistry() *Registry {
	r := &Registry{
		transforms: make(map[string]value.TransformFunc),
		predicates: make(map[string]PredicateFunc),
	}

	r.RegisterTransform("upper", stringTransform(strings.ToUpper))
	r.RegisterTransform("lower", stringTransform(strings.ToLower))
	r.RegisterTransform("trim", stringTransform(strings.TrimSpace))
	r.RegisterTransform("string", func(v any) (any, error) {
		if v == nil {
			return nil, nil
		}

		return fmt.Sprint(v), nil
	})

	r.RegisterPredicate("present", func(args ...any) bool {
		for _, a := range args {
			if blank(a) {
				return false
			}
		}

		return true
	})
	r.RegisterPredicate("absent", func(args ...any) bool {
		for _, a := range args {
			if !blank(a) {
				return false
			}
		}

		return true
	})
	r.RegisterPredicate("equal", func(args ...any) bool {
		for i := 1; i < len(args); i++ {
			if !Equal(args[0], args[i]) {
				return false
			}
		}

		return true
	})
	r.RegisterPredicate("not_equal", func(args ...any) bool {
		return len(args) >= 2 && !Equal(args[0], args[1])
	})
	r.RegisterPredicate("truthy", func(args ...any) bool {
		for _, a := range args {
			if !truthy(a) {
				return false
			}
		}

		return true
	})

	return r
}

// RegisterTransform adds or replaces a named transform.
func (r *Registry) RegisterTransform(name string, fn value.TransformFunc) {
	r.transforms[name] = fn
}

// RegisterPredicate adds or replaces a named predicate.
func (r *Registry) RegisterPredicate(name string, fn PredicateFunc) {
	r.predicates[name] = fn
}

// Transform returns the named transform.
func (r *Registry) Transform(name string) (value.TransformFunc, bool) {
	fn, ok := r.transforms[name]
	return fn, ok
}

// Predicate returns the named predicate.
func (r *Registry) Predicate(name string) (PredicateFunc, bool) {
	fn, ok := r.predicates[name]
	return fn, ok
}

// TransformNames returns all transform names, sorted.
func (r *Registry) TransformNames() []string {
	return sortedKeys(r.transforms)
}

// PredicateNames returns all predicate names, sorted.
func (r *Registry) PredicateNames() []string {
	return sortedKeys(r.predicates)
}

// Lookup returns a transform that maps values through table, compared by
// their text form. Values missing from the table become otherwise, or pass
// through unchanged when otherwise is nil.
func Lookup(table map[string]any, otherwise any) value.TransformFunc {
	return func(v any) (any, error) {
		if v != nil {
			if out, ok := table[fmt.Sprint(v)]; ok {
				return out, nil
			}
		}

		if otherwise != nil {
			return otherwise, nil
		}

		return v, nil
	}
}

// Equal compares two cell values, treating integral numbers of any numeric
// type as equal to each other.
func Equal(a, b any) bool {
	if na, ok := number(a); ok {
		if nb, ok := number(b); ok {
			return na == nb
		}

		return false
	}

	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}

	return reflect.DeepEqual(a, b)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func blank(v any) bool {
	if v == nil {
		return true
	}

	s, ok := v.(string)

	return ok && strings.TrimSpace(s) == ""
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return strings.TrimSpace(t) != ""
	default:
		if n, ok := number(v); ok {
			return n != 0 && !math.IsNaN(n)
		}

		return true
	}
}

func stringTransform(fn func(string) string) value.TransformFunc {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return v, nil
		}

		return fn(s), nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
