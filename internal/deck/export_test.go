package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youruser/ygodeck/internal/cards"
)

func TestExportJSONMatchesDeck(t *testing.T) {
	d := New(seqIDs())
	_, _ = d.Add(FromCard(cards.Card{ID: 7, Name: "Pot of Greed", Type: "Spell Card", Images: []string{"img"}}))
	_, _ = d.Add(Manual("Kuriboh", Monster))
	_, _ = d.Add(Manual("Kuriboh", Monster))

	b, err := ExportJSON(d.Entries())
	require.NoError(t, err)

	var got []Entry
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, d.Entries(), got)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "magia", raw[0]["type"])
	assert.Equal(t, "img", raw[0]["imageUrl"])
	assert.Contains(t, raw[0], "apiData")
	assert.NotContains(t, raw[1], "apiData")
}

func TestExportJSONEmptyDeck(t *testing.T) {
	b, err := ExportJSON(New().Entries())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))

	b, err = ExportJSON(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))
}

func TestExportText(t *testing.T) {
	d := New(seqIDs())
	_, _ = d.Add(Manual("Mirror Force", Trap))
	_, _ = d.Add(Manual("Kuriboh", Monster))
	_, _ = d.Add(Manual("Kuriboh", Monster))

	expected := "# Meu Deck\n## monstro (2)\n2x Kuriboh\n## armadilha (1)\n1x Mirror Force"
	assert.Equal(t, expected, ExportText("Meu Deck", d.Entries()))
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name, ext, expected string
	}{
		{"", "json", "meu-deck-yugioh.json"},
		{"Dragões Brancos", "json", "dragoes-brancos.json"},
		{"  Deck #1 -- Final!  ", ".txt", "deck-1-final.txt"},
		{"???", "json", "meu-deck-yugioh.json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FileName(tt.name, tt.ext), tt.name)
	}
}
