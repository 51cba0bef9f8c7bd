package cypher

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graph-loader/internal/mapping"
	"graph-loader/internal/record"
	"graph-loader/internal/value"
)

func entity(scope string, id any, labels []string, props ...record.Property) *record.Record {
	return &record.Record{
		Scope:      mapping.ScopeEntity,
		ScopeName:  scope,
		ID:         id,
		Labels:     labels,
		Properties: props,
	}
}

func TestNode(t *testing.T) {
	tests := []struct {
		name     string
		rec      *record.Record
		expected string
	}{
		{
			name: "staff example",
			rec: entity("staff", int64(1), []string{"Staff", "MovieDirector"},
				record.Property{Name: "name", Value: "Ann"}),
			expected: `(staff_1:Staff:MovieDirector {name: "Ann"})`,
		},
		{
			name: "nil property omitted",
			rec: entity("staff", int64(1), []string{"Staff", "MovieDirector"},
				record.Property{Name: "name", Value: "Ann"},
				record.Property{Name: "nickname", Value: nil}),
			expected: `(staff_1:Staff:MovieDirector {name: "Ann"})`,
		},
		{
			name:     "no labels no props",
			rec:      entity("person", "p-7", nil),
			expected: `(person_p-7 {})`,
		},
		{
			name:     "nil id",
			rec:      entity("person", nil, nil, record.Property{Name: "name", Value: "Ann"}),
			expected: `(person_ {name: "Ann"})`,
		},
		{
			name:     "empty labels skipped",
			rec:      entity("person", int64(2), []string{"", "Politico", ""}),
			expected: `(person_2:Politico {})`,
		},
		{
			name: "typed values",
			rec: entity("person", int64(3), nil,
				record.Property{Name: "born", Value: value.Date{Year: 1961, Month: time.August, Day: 4}},
				record.Property{Name: "seen", Value: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)},
				record.Property{Name: "age", Value: int64(62)},
				record.Property{Name: "score", Value: 1.5},
				record.Property{Name: "active", Value: true},
				record.Property{Name: "note", Value: `a "b" <c> & é`},
			),
			expected: `(person_3 {born: date("1961-08-04"), seen: datetime("2020-01-02T03:04:05Z"), ` +
				`age: 62, score: 1.5, active: true, note: "a \"b\" <c> & é"})`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Node(tt.rec)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNodeUnencodableValue(t *testing.T) {
	_, err := Node(entity("x", 1, nil, record.Property{Name: "bad", Value: math.NaN()}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `x_1: property "bad"`)
}

func TestRelationship(t *testing.T) {
	from := entity("person", int64(1), []string{"Politico"})
	to := entity("found", int64(17), nil, record.Property{Name: "id", Value: "uuid-1"})

	rel := (&record.Record{
		Scope:     mapping.ScopeRelationship,
		ScopeName: "KNOWS",
		ID:        int64(1),
		Labels:    []string{"KNOWS"},
	}).Bind(from, to)

	got, err := Relationship(rel)
	require.NoError(t, err)
	assert.Equal(t, `(person_1)-[:KNOWS {}]->(found_17)`, got)

	rel.Labels = nil
	rel.Properties = []record.Property{{Name: "since", Value: int64(2001)}}

	got, err = Relationship(rel)
	require.NoError(t, err)
	assert.Equal(t, `(person_1)-[ {since: 2001}]->(found_17)`, got)
}

func TestRelationshipUnbound(t *testing.T) {
	_, err := Relationship(&record.Record{Scope: mapping.ScopeRelationship, ScopeName: "KNOWS"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoints are not bound")
}

func TestRender(t *testing.T) {
	person := entity("person", int64(1), []string{"Politico"}, record.Property{Name: "name", Value: "Ann"})
	found := entity("found", int64(17), nil, record.Property{Name: "id", Value: "uuid-1"})
	rel := (&record.Record{Scope: mapping.ScopeRelationship, ScopeName: "KNOWS", Labels: []string{"KNOWS"}}).
		Bind(person, found)

	t.Run("with deferred lookups", func(t *testing.T) {
		got, err := Render(Graph{
			Deferred:      []*record.Record{found},
			Entities:      []*record.Record{person},
			Relationships: []*record.Record{rel},
		})
		require.NoError(t, err)

		expected := "MATCH\n" +
			"  (found_17 {id: \"uuid-1\"})\n" +
			"CREATE\n" +
			"  (person_1:Politico {name: \"Ann\"}),\n" +
			"  (person_1)-[:KNOWS {}]->(found_17)\n" +
			";\n"
		assert.Equal(t, expected, got)
	})

	t.Run("without deferred lookups", func(t *testing.T) {
		got, err := Render(Graph{Entities: []*record.Record{person}})
		require.NoError(t, err)
		assert.Equal(t, "CREATE\n  (person_1:Politico {name: \"Ann\"})\n;\n", got)
	})

	t.Run("empty graph", func(t *testing.T) {
		got, err := Render(Graph{})
		require.NoError(t, err)
		assert.Equal(t, "CREATE\n;\n", got)
	})

	t.Run("failure writes nothing", func(t *testing.T) {
		var w countingWriter

		err := Write(&w, Graph{
			Entities:      []*record.Record{person},
			Relationships: []*record.Record{{Scope: mapping.ScopeRelationship}},
		})
		require.Error(t, err)
		assert.Zero(t, w.n)
	})
}

type countingWriter struct{ n int }

func (s *countingWriter) Write(p []byte) (int, error) {
	s.n += len(p)
	return len(p), nil
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "", Labels(nil))
	assert.Equal(t, "", Labels([]string{"", ""}))
	assert.Equal(t, ":A:B", Labels([]string{"A", "", "B"}))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "graph.cypher")

	require.NoError(t, WriteFile(path, "CREATE\n;\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "CREATE\n;\n", string(data))
}
