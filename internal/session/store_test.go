package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/ygodeck/internal/deck"
)

func TestStoreCreateAndGet(t *testing.T) {
	st, err := NewStore(4, &fakeSearcher{}, nil)
	require.NoError(t, err)

	s := st.Create("Dragões")
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "Dragões", s.Name())

	got, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = st.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreEvictsLeastRecentlyUsed(t *testing.T) {
	st, err := NewStore(2, &fakeSearcher{}, nil)
	require.NoError(t, err)

	a := st.Create("a")
	b := st.Create("b")
	_, err = st.Get(a.ID)
	require.NoError(t, err)

	st.Create("c")
	assert.Equal(t, 2, st.Len())

	_, err = st.Get(b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Get(a.ID)
	assert.NoError(t, err)
}

func TestStoreSessionsAreIndependent(t *testing.T) {
	st, err := NewStore(0, &fakeSearcher{}, nil)
	require.NoError(t, err)

	a := st.Create("")
	b := st.Create("")
	_, err = a.AddManual("Kuriboh", deck.Monster)
	require.NoError(t, err)

	assert.Len(t, a.Entries(), 1)
	assert.Empty(t, b.Entries())

	assert.True(t, st.Delete(a.ID))
	assert.False(t, st.Delete(a.ID))
}
