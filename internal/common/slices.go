package common

// UnknownStr is the String() fallback for out-of-range enum values.
const UnknownStr = "unknown"

// Map applies fn to every element of s.
func Map[S ~[]E, E, T any](s S, fn func(E) T) []T {
	out := make([]T, len(s))
	for i, e := range s {
		out[i] = fn(e)
	}

	return out
}
