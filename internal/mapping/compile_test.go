package mapping

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graph-loader/internal/tabular"
	"graph-loader/internal/value"
)

func resolve(t *testing.T, r value.Resolver, row *tabular.Row) any {
	t.Helper()

	v, err := r.Resolve(row)
	require.NoError(t, err)

	return v
}

func TestCompileStaffMapping(t *testing.T) {
	mf, err := Parse([]byte(staffYAML))
	require.NoError(t, err)

	spec, err := Compile(mf, nil)
	require.NoError(t, err)

	require.Len(t, spec.Entities(), 1)
	require.Len(t, spec.Relationships(), 2)

	staff := spec.Entities()[0]
	born := time.Date(1970, time.May, 2, 0, 0, 0, 0, time.UTC)
	row := &tabular.Row{Cells: []any{int64(1), "Ann", "director", born}}

	assert.Equal(t, "staff", resolve(t, staff.Page(), nil))
	assert.Equal(t, int64(1), resolve(t, staff.ID(), row))

	labels := staff.Labels()
	require.Len(t, labels, 2)
	assert.Equal(t, "Staff", resolve(t, labels[0], row))
	assert.Equal(t, "MovieDirector", resolve(t, labels[1], row))
	assert.Equal(t, "ExecutiveProducer", resolve(t, labels[1], &tabular.Row{Cells: []any{1, "Bo", "writer"}}))

	assert.Equal(t, []string{"name", "birthday", "active"}, staff.Properties().Names())

	birthday, _ := staff.Properties().Get("birthday")
	assert.Equal(t, value.DateOf(born), resolve(t, birthday, row))

	require.NotNil(t, staff.Predicate())

	ok, err := staff.Predicate().Eval(row)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = staff.Predicate().Eval(&tabular.Row{Cells: []any{int64(2), ""}})
	require.NoError(t, err)
	assert.False(t, ok)

	charge := spec.Relationships()[0]
	assert.Equal(t, "HAS_POLITICAL_CHARGE", charge.Name())
	assert.Equal(t, 1, resolve(t, charge.Page(), nil))
	assert.Equal(t, "staff", charge.From().StaticType)
	assert.Nil(t, charge.From().Type)
	assert.Empty(t, charge.To().StaticType)
	require.NotNil(t, charge.To().Type)

	anon := spec.Relationships()[1]
	assert.Empty(t, anon.Name())
	assert.True(t, anon.From().Deferred())
	assert.Equal(t, 7, resolve(t, anon.To().ID, nil))
}

func TestCompileMatchesBuilder(t *testing.T) {
	mf, err := Parse([]byte(`
entities:
  - name: person
    page: Personas
    id: {column: 0}
    labels: [Politico]
    properties:
      name: {column: 1, transform: upper}
      party: {column: 2, default: none}
`))
	require.NoError(t, err)

	compiled, err := Compile(mf, nil)
	require.NoError(t, err)

	reg := NewRegistry()
	upper, _ := reg.Transform("upper")

	built := MustEntity("person",
		Page("Personas"),
		ID(value.Column(0)),
		Labels("Politico"),
		Property("name", value.Column(1, value.WithTransform(upper))),
		Property("party", value.Column(2, value.WithDefault("none"))),
	)

	got := compiled.Entities()[0]
	row := &tabular.Row{Cells: []any{int64(9), "ann"}}

	assert.Equal(t, built.Name(), got.Name())
	assert.Equal(t, resolve(t, built.Page(), nil), resolve(t, got.Page(), nil))
	assert.Equal(t, resolve(t, built.ID(), row), resolve(t, got.ID(), row))
	assert.Equal(t, built.Properties().Names(), got.Properties().Names())

	for _, name := range built.Properties().Names() {
		want, _ := built.Properties().Get(name)
		have, _ := got.Properties().Get(name)
		assert.Equal(t, resolve(t, want, row), resolve(t, have, row), name)
	}
}

func TestCompileReportsAllErrors(t *testing.T) {
	mf, err := Parse([]byte(`
entities:
  - {page: 0, id: 0}
  - {name: b, id: {column: 0, type: datetime}}
`))
	require.NoError(t, err)

	_, err = Compile(mf, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Contains(t, err.Error(), "[missing_name]")
	assert.Contains(t, err.Error(), "[missing_page]")
	assert.Contains(t, err.Error(), "[unknown_cast]")
}

func TestCompileCustomPredicate(t *testing.T) {
	mf, err := Parse([]byte(`
entities:
  - name: adult
    page: 0
    id: {column: 0}
    only_if: {args: [{column: 1}, 18], predicate: at_least}
`))
	require.NoError(t, err)

	reg := NewRegistry()
	reg.RegisterPredicate("at_least", func(args ...any) bool {
		age, ok := args[0].(int64)
		return ok && age >= int64(args[1].(int))
	})

	spec, err := Compile(mf, reg)
	require.NoError(t, err)

	p := spec.Entities()[0].Predicate()

	ok, err := p.Eval(&tabular.Row{Cells: []any{"a", int64(20)}})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Eval(&tabular.Row{Cells: []any{"b", int64(12)}})
	require.NoError(t, err)
	assert.False(t, ok)
}
