package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortugueseByDefault(t *testing.T) {
	tr, err := New("")
	require.NoError(t, err)
	assert.Equal(t, "pt", tr.Lang())

	got := tr.T("copy_limit", map[string]any{"Max": 3})
	assert.Equal(t, "Você já possui o máximo de 3 cópias desta carta!", got)
	assert.Equal(t, "Deck Extra", tr.T("category.extra", nil))
}

func TestEnglish(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)
	assert.Equal(t, "You already have the maximum of 3 copies of this card!", tr.T("copy_limit", map[string]any{"Max": 3}))
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	tr, err := New("de")
	require.NoError(t, err)
	assert.Equal(t, "Magia", tr.T("category.magia", nil))
}

func TestUnknownID(t *testing.T) {
	tr, err := New("pt")
	require.NoError(t, err)
	assert.Equal(t, "no.such.message", tr.T("no.such.message", nil))
}
