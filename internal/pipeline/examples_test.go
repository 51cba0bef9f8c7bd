package pipeline

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graph-loader/internal/mapping"
	"graph-loader/internal/tabular"
)

func exampleSpec(t *testing.T, name string) *mapping.Specification {
	t.Helper()

	mf, err := mapping.LoadFile(filepath.Join("..", "..", "examples", name, "mapping.yaml"))
	require.NoError(t, err)

	spec, err := mapping.Compile(mf, nil)
	require.NoError(t, err)

	return spec
}

func TestExamplePoliticians(t *testing.T) {
	src := tabular.NewMemory().
		AddSheet("Politicos",
			[]any{"id", "name", "last_name", "label"},
			[]any{int64(1), "Ana", "Ruiz", "Diputado"},
			[]any{int64(2), "Luis", "Paz", nil},
		).
		AddSheet("Secretarias",
			[]any{"id", "name"},
			[]any{int64(10), "Hacienda"},
		).
		AddSheet("Cargo Político",
			[]any{"person", "name", "party", "period", "notes", "secretariat"},
			[]any{int64(1), "Secretaria", "PAN", "2018-2024", nil, int64(10)},
			[]any{int64(2), "Asesor", "PRI", "2012", nil, int64(10)},
		)

	out, err := Generate(src, exampleSpec(t, "politicians"))
	require.NoError(t, err)

	assert.Equal(t, `CREATE
  (person_1:Politico:Diputado {name: "Ana", last_name: "Ruiz"}),
  (person_2:Politico:MalPolitico {name: "Luis", last_name: "Paz"}),
  (secretariat_10:GovernmentDependency:Secretariat {name: "Hacienda"}),
  (person_1)-[:PoliticalCharge {name: "Secretaria", date_period: "2018-2024", political_party: "PAN"}]->(secretariat_10),
  (person_2)-[:PoliticalCharge {name: "Asesor", date_period: "2012", political_party: "PRI"}]->(secretariat_10)
;
`, out.Script)
}

func TestExampleMovies(t *testing.T) {
	src := tabular.NewMemory().
		AddSheet("staff",
			[]any{"id", "name", "role"},
			[]any{int64(1), "Lana", "director"},
			[]any{int64(2), "Joel", "producer"},
		).
		AddSheet("movie",
			[]any{"id", "name", "year"},
			[]any{int64(1), "The Matrix", int64(1999)},
		).
		AddSheet("actor",
			[]any{"id", "name", "birthday"},
			[]any{int64(1), "Keanu", time.Date(1964, time.September, 2, 0, 0, 0, 0, time.UTC)},
		).
		AddSheet("conections",
			[]any{"from_id", "from_type", "to_id", "to_type", "label", "film_took", "cast_in", "year", "meet_in"},
			[]any{int64(1), "staff", int64(1), "movie", "DIRECTED", nil, nil, int64(1999), nil},
			[]any{int64(1), "actor", int64(1), "movie", "ACTED_IN", nil, "Neo", nil, nil},
			[]any{int64(1), "actor", int64(1), "staff", "MET", nil, nil, nil, "Sydney"},
		)

	out, err := Generate(src, exampleSpec(t, "movies"))
	require.NoError(t, err)

	assert.Equal(t, `CREATE
  (staff_1:Staff:MovieDirector {name: "Lana"}),
  (staff_2:Staff:ExecutiveProducer {name: "Joel"}),
  (movie_1 {name: "The Matrix", year: 1999}),
  (actor_1:Actor {name: "Keanu", birthday: date("1964-09-02")}),
  (staff_1)-[:DIRECTED {year: 1999}]->(movie_1),
  (actor_1)-[:ACTED_IN {cast_in: "Neo"}]->(movie_1),
  (actor_1)-[:MET {meet_in: "Sydney"}]->(staff_1)
;
`, out.Script)
}
