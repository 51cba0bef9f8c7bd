package value

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrTypeCast is matched by every *TypeCastError.
var ErrTypeCast = errors.New("value: type cast failed")

// TypeCastError reports a cast attempted on an incompatible raw value.
type TypeCastError struct {
	// Target is the cast name ("date").
	Target string
	// Value is the raw value that could not be cast.
	Value any
}

// Error returns the error string.
func (e *TypeCastError) Error() string {
	return fmt.Sprintf("value: unable to cast %v (%T) to %s", e.Value, e.Value, e.Target)
}

// Is reports whether target is ErrTypeCast.
func (e *TypeCastError) Is(target error) bool {
	return target == ErrTypeCast
}

// Cast converts a raw cell value to a declared type.
type Cast interface {
	Name() string
	Apply(v any) (any, error)
}

// CastDate converts date/time cell values to a Date. Only time.Time (and
// Date itself) are accepted.
var CastDate Cast = dateCast{}

var casts = map[string]Cast{
	CastDate.Name(): CastDate,
}

// ParseCast looks up a cast by its declarative name.
func ParseCast(name string) (Cast, error) {
	c, ok := casts[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("value: unknown cast type %q", name)
	}

	return c, nil
}

// CastNames lists the names accepted by ParseCast.
func CastNames() []string {
	return []string{CastDate.Name()}
}

type dateCast struct{}

func (dateCast) Name() string { return "date" }

func (dateCast) Apply(v any) (any, error) {
	switch t := v.(type) {
	case time.Time:
		return DateOf(t), nil
	case Date:
		return t, nil
	default:
		return nil, &TypeCastError{Target: "date", Value: v}
	}
}

// Date is a calendar date without time of day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
