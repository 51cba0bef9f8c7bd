package cypher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"graph-loader/internal/record"
	"graph-loader/internal/value"
)

// Literal encodes v as a Cypher literal. Dates become date("..."), times
// become datetime("..."), everything else is JSON encoded.
func Literal(v any) (string, error) {
	switch t := v.(type) {
	case value.Date:
		return "date(" + quote(t.String()) + ")", nil
	case *value.Date:
		if t == nil {
			return "null", nil
		}

		return "date(" + quote(t.String()) + ")", nil
	case time.Time:
		return "datetime(" + quote(t.Format(time.RFC3339)) + ")", nil
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding %T literal: %w", v, err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func quote(s string) string {
	out, _ := Literal(s)
	return out
}

// Labels returns ":" followed by the non-empty labels joined by ":", or ""
// when there are none.
func Labels(labels []string) string {
	kept := make([]string, 0, len(labels))

	for _, l := range labels {
		if l != "" {
			kept = append(kept, l)
		}
	}

	if len(kept) == 0 {
		return ""
	}

	return ":" + strings.Join(kept, ":")
}

// Props renders properties as "{key: value, ...}" in order, leaving out nil
// values.
func Props(props []record.Property) (string, error) {
	parts := make([]string, 0, len(props))

	for _, p := range props {
		if p.Value == nil {
			continue
		}

		lit, err := Literal(p.Value)
		if err != nil {
			return "", fmt.Errorf("property %q: %w", p.Name, err)
		}

		parts = append(parts, p.Name+": "+lit)
	}

	return "{" + strings.Join(parts, ", ") + "}", nil
}
