package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	candidates := []string{"staff", "movie", "actor", "conections"}

	t.Run("close misspelling", func(t *testing.T) {
		assert.Equal(t, []string{"staff"}, Suggest("staf", candidates))
	})

	t.Run("nothing close", func(t *testing.T) {
		assert.Empty(t, Suggest("warehouse", candidates))
	})

	t.Run("exact name is not a suggestion", func(t *testing.T) {
		assert.Empty(t, Suggest("movie", []string{"movie"}))
	})

	t.Run("best first and limited", func(t *testing.T) {
		got := SuggestN("name", []string{"names", "nam", "game", "nme", "other"}, 0.5, 2)
		assert.Len(t, got, 2)
		assert.Equal(t, "names", got[0])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, Suggest("", candidates))
	})
}
