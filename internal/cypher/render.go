package cypher

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"graph-loader/internal/record"
)

const indent = "  "

// Graph is what a script is rendered from.
type Graph struct {
	// Deferred lookups go to the MATCH block.
	Deferred []*record.Record
	// Entities and then Relationships go to the CREATE block.
	Entities      []*record.Record
	Relationships []*record.Record
}

// Identity returns "<scope name>_<id>". A nil id leaves the suffix empty.
func Identity(r *record.Record) string {
	if r.ID == nil {
		return r.ScopeName + "_"
	}

	return fmt.Sprintf("%s_%v", r.ScopeName, r.ID)
}

// Node renders an entity or deferred lookup.
func Node(r *record.Record) (string, error) {
	props, err := Props(r.Properties)
	if err != nil {
		return "", fmt.Errorf("%s: %w", Identity(r), err)
	}

	return "(" + Identity(r) + Labels(r.Labels) + " " + props + ")", nil
}

// Relationship renders a bound relationship record.
func Relationship(r *record.Record) (string, error) {
	if r.From.Node == nil || r.To.Node == nil {
		return "", errors.New("relationship " + r.ScopeName + " " + r.Provenance.String() + ": endpoints are not bound")
	}

	props, err := Props(r.Properties)
	if err != nil {
		return "", fmt.Errorf("relationship %s %s: %w", r.ScopeName, r.Provenance, err)
	}

	return "(" + Identity(r.From.Node) + ")-[" + Labels(r.Labels) + " " + props + "]->(" + Identity(r.To.Node) + ")", nil
}

// Render returns the script for g.
func Render(g Graph) (string, error) {
	var sb strings.Builder

	if err := Write(&sb, g); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Write renders g to w. Nothing is written when an item fails to render.
func Write(w io.Writer, g Graph) error {
	match, err := renderAll(g.Deferred, Node)
	if err != nil {
		return err
	}

	entities, err := renderAll(g.Entities, Node)
	if err != nil {
		return err
	}

	relationships, err := renderAll(g.Relationships, Relationship)
	if err != nil {
		return err
	}

	var sb strings.Builder

	if len(match) > 0 {
		writeBlock(&sb, "MATCH", match)
	}

	writeBlock(&sb, "CREATE", append(entities, relationships...))
	sb.WriteString(";\n")

	_, err = io.WriteString(w, sb.String())

	return err
}

func renderAll(recs []*record.Record, fn func(*record.Record) (string, error)) ([]string, error) {
	out := make([]string, 0, len(recs))

	for _, r := range recs {
		s, err := fn(r)
		if err != nil {
			return nil, err
		}

		out = append(out, s)
	}

	return out, nil
}

func writeBlock(sb *strings.Builder, keyword string, items []string) {
	sb.WriteString(keyword)
	sb.WriteString("\n")

	for i, item := range items {
		sb.WriteString(indent)
		sb.WriteString(item)

		if i < len(items)-1 {
			sb.WriteString(",")
		}

		sb.WriteString("\n")
	}
}
