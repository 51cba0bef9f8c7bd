package tabular

import (
	"errors"
	"fmt"
	"strings"

	"graph-loader/internal/match"
)

// ErrMissingSheet is matched by every *MissingSheetError.
var ErrMissingSheet = errors.New("tabular: sheet not found")

// MissingSheetError reports a page selector naming no sheet of the source.
type MissingSheetError struct {
	// Selector is the resolved page selector.
	Selector any
	// Available lists the sheet names of the source.
	Available []string
	// Suggestions are sheet names close to a string selector.
	Suggestions []string
}

func newMissingSheetError(selector any, available []string) *MissingSheetError {
	e := &MissingSheetError{Selector: selector, Available: available}
	if name, ok := selector.(string); ok {
		e.Suggestions = match.Suggest(name, available)
	}

	return e
}

// Error returns the error string.
func (e *MissingSheetError) Error() string {
	msg := fmt.Sprintf("tabular: sheet %#v not found (have %d sheets: %s)",
		e.Selector, len(e.Available), strings.Join(e.Available, ", "))
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf("; did you mean %q?", e.Suggestions[0])
	}

	return msg
}

// Is reports whether target is ErrMissingSheet.
func (e *MissingSheetError) Is(target error) bool {
	return target == ErrMissingSheet
}

// IsMissingSheet returns true if err is or wraps a MissingSheetError.
func IsMissingSheet(err error) bool {
	var e *MissingSheetError
	return errors.As(err, &e)
}
