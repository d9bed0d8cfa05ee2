package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(list []Card) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Name)
	}
	return out
}

func TestRankKeepsEveryCard(t *testing.T) {
	list := []Card{
		{ID: 1, Name: "Mago Negro"},
		{ID: 2, Name: "Blue-Eyes White Dragon"},
		{ID: 3, Name: "Garota Maga Negra"},
	}

	out := Rank("dragon", list)
	assert.Len(t, out, 3)
	assert.Equal(t, "Blue-Eyes White Dragon", out[0].Name)
	// non-matching cards keep catalog order
	assert.Equal(t, []string{"Mago Negro", "Garota Maga Negra"}, names(out[1:]))
}

func TestRankIsCaseInsensitive(t *testing.T) {
	list := []Card{{ID: 1, Name: "Pot of Greed"}, {ID: 2, Name: "KURIBOH"}}
	out := Rank("kuriboh", list)
	assert.Equal(t, "KURIBOH", out[0].Name)
}

func TestRankEmptyQuery(t *testing.T) {
	list := []Card{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}}
	assert.Equal(t, list, Rank("  ", list))
}
