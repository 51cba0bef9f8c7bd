package record

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graph-loader/internal/mapping"
	"graph-loader/internal/tabular"
	"graph-loader/internal/value"
)

func staffSource() *tabular.Memory {
	born := time.Date(1961, time.August, 4, 0, 0, 0, 0, time.UTC)

	return tabular.NewMemory().
		AddSheet("staff",
			[]any{"id", "name", "role", "birthday"},
			[]any{int64(1), "Ann", "director", born},
			[]any{int64(2), "Bob", "writer", nil},
			[]any{int64(3), "", "writer", nil},
		).
		AddSheet("Cargo Político",
			[]any{"person", "charge", "type", "target"},
			[]any{int64(1), "Mayor", "city", int64(10)},
			[]any{int64(2), "Judge", nil, "uuid-1"},
		)
}

func staffEntity(opts ...mapping.Option) *mapping.Entity {
	base := []mapping.Option{
		mapping.Page("staff"),
		mapping.ID(value.Column(0)),
		mapping.Labels("Staff", value.Column(2, value.WithTransform(mapping.Lookup(
			map[string]any{"director": "MovieDirector"}, nil)))),
		mapping.Property("name", value.Column(1)),
		mapping.Property("nickname", value.Column(9)),
	}

	return mapping.MustEntity("staff", append(base, opts...)...)
}

func TestConsumeSkipsHeaderAndKeepsOrder(t *testing.T) {
	c, err := Consume(staffSource(), staffEntity())
	require.NoError(t, err)

	recs, err := Collect(c)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	first := recs[0]
	assert.Equal(t, mapping.ScopeEntity, first.Scope)
	assert.Equal(t, "staff", first.ScopeName)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, []string{"Staff", "MovieDirector"}, first.Labels)
	assert.Equal(t, []Property{{Name: "name", Value: "Ann"}, {Name: "nickname", Value: nil}}, first.Properties)
	assert.Equal(t, Provenance{Sheet: "staff", Row: 2}, first.Provenance)

	assert.Equal(t, int64(2), recs[1].ID)
	assert.Equal(t, []string{"Staff", "writer"}, recs[1].Labels)
	assert.Equal(t, int64(3), recs[2].ID)
	assert.Equal(t, 4, recs[2].Provenance.Row)
}

func TestConsumePredicate(t *testing.T) {
	always := func(result bool) mapping.PredicateFunc {
		return func(...any) bool { return result }
	}

	tests := []struct {
		name string
		opts []mapping.Option
		ids  []any
	}{
		{"no predicate", nil, []any{int64(1), int64(2), int64(3)}},
		{"always true", []mapping.Option{mapping.OnlyIf(always(true))}, []any{int64(1), int64(2), int64(3)}},
		{"always false", []mapping.Option{mapping.OnlyIf(always(false))}, nil},
		{
			"positional args",
			[]mapping.Option{mapping.OnlyIf(func(args ...any) bool {
				return args[0] != nil && args[1] == "writer"
			}, value.Column(1), value.Column(2))},
			[]any{int64(2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Consume(staffSource(), staffEntity(tt.opts...))
			require.NoError(t, err)

			recs, err := Collect(c)
			require.NoError(t, err)

			var ids []any
			for _, r := range recs {
				ids = append(ids, r.ID)
			}

			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestConsumeRelationship(t *testing.T) {
	rel := mapping.MustRelationship("HAS_POLITICAL_CHARGE",
		mapping.Page(1),
		mapping.ID(value.Column(0)),
		mapping.Labels("PoliticalCharge"),
		mapping.Property("name", value.Column(1)),
		mapping.From(mapping.Static("person", value.Column(0))),
		mapping.To(mapping.Side{
			Type: value.Column(2),
			ID:   value.Column(3),
		}),
	)

	c, err := Consume(staffSource(), rel)
	require.NoError(t, err)

	recs, err := Collect(c)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	r := recs[0]
	assert.True(t, r.IsRelationship())
	assert.Equal(t, Endpoint{Type: "person", ID: int64(1)}, r.From)
	assert.Equal(t, Endpoint{Type: "city", ID: int64(10)}, r.To)
	assert.Equal(t, "Cargo Político", r.Provenance.Sheet)

	assert.Equal(t, Endpoint{Type: "", ID: "uuid-1"}, recs[1].To)
}

func TestConsumeDeferredSide(t *testing.T) {
	rel := mapping.MustRelationship("",
		mapping.Page("Cargo Político"),
		mapping.ID(value.Column(0)),
		mapping.From(mapping.Static("person", value.Column(0))),
		mapping.To(mapping.Find(value.Column(3))),
	)

	c, err := Consume(staffSource(), rel)
	require.NoError(t, err)

	recs, err := Collect(c)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, Endpoint{Find: "uuid-1", Deferred: true}, recs[1].To)
	assert.Empty(t, recs[1].To.Type)
}

func TestConsumeMissingSheet(t *testing.T) {
	_, err := Consume(staffSource(), mapping.MustEntity("x", mapping.Page("staf"), mapping.ID(0)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tabular.ErrMissingSheet))

	var missing *tabular.MissingSheetError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"staff"}, missing.Suggestions)
}

func TestConsumeCastFailure(t *testing.T) {
	e := staffEntity(mapping.Property("birthday", value.Column(3, value.WithCast(value.CastDate))))

	c, err := Consume(staffSource(), e)
	require.NoError(t, err)

	require.True(t, c.Next())
	assert.NotNil(t, c.Record())

	assert.False(t, c.Next())
	assert.Nil(t, c.Record())
	require.Error(t, c.Err())
	assert.True(t, errors.Is(c.Err(), value.ErrTypeCast))
	assert.Contains(t, c.Err().Error(), "entity staff [staff:3]")
	assert.False(t, c.Next())

	require.NoError(t, c.Close())
}

func TestConsumeEmptySheet(t *testing.T) {
	src := tabular.NewMemory().AddSheet("empty").AddSheet("header", []any{"id"})

	for _, page := range []string{"empty", "header"} {
		c, err := Consume(src, mapping.MustEntity("x", mapping.Page(page), mapping.ID(value.Column(0))))
		require.NoError(t, err)

		recs, err := Collect(c)
		require.NoError(t, err)
		assert.Empty(t, recs, page)
	}
}

func TestFromRowStringifiesLabels(t *testing.T) {
	e := mapping.MustEntity("x",
		mapping.Page(0),
		mapping.ID(value.Column(0)),
		mapping.Labels(value.Column(1), int64(7), nil),
	)

	rec, ok, err := FromRow(e, &tabular.Row{Sheet: "s", Number: 2, Cells: []any{"a"}})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"", "7", ""}, rec.Labels)
}
