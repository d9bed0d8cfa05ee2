package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intp(v int) *int { return &v }

func TestNewDetailMonster(t *testing.T) {
	c := Card{
		ID:     46986414,
		Name:   "Dark Magician",
		Type:   "Normal Monster",
		Desc:   "The ultimate wizard in terms of attack and defense.",
		Atk:    intp(2500),
		Def:    intp(2100),
		Images: []string{"https://images.example/46986414.jpg", "https://images.example/alt.jpg"},
	}

	d := NewDetail(c)
	assert.Equal(t, "Dark Magician", d.Name)
	assert.Equal(t, "https://images.example/46986414.jpg", d.ImageURL)
	assert.True(t, d.ShowStats)
	assert.Equal(t, "2500", d.Atk)
	assert.Equal(t, "2100", d.Def)
	assert.False(t, d.Pendulum)
	assert.Equal(t, c.Desc, d.Monster)
}

func TestNewDetailMissingStats(t *testing.T) {
	d := NewDetail(Card{Name: "Link", Type: "Link Monster", Atk: intp(0)})
	assert.True(t, d.ShowStats)
	assert.Equal(t, "0", d.Atk)
	assert.Equal(t, "?", d.Def)
}

func TestNewDetailSpellHasNoStats(t *testing.T) {
	d := NewDetail(Card{Name: "Pot of Greed", Type: "Spell Card", Desc: "Draw 2 cards."})
	assert.False(t, d.ShowStats)
	assert.Empty(t, d.Atk)
	assert.Empty(t, d.Def)
	assert.Empty(t, d.ImageURL)
}

func TestNewDetailPendulum(t *testing.T) {
	d := NewDetail(Card{
		Name: "Odd-Eyes Pendulum Dragon",
		Type: "Pendulum Effect Monster",
		Desc: "[ Pendulum Effect ] Reduce damage. [ Monster Effect ] Double damage.",
	})
	assert.True(t, d.Pendulum)
	assert.Equal(t, "Reduce damage.", d.Description.Pendulum)
	assert.Equal(t, "Double damage.", d.Monster)
}

func TestFindByID(t *testing.T) {
	list := []Card{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	c, ok := FindByID(list, 2)
	assert.True(t, ok)
	assert.Equal(t, "b", c.Name)

	_, ok = FindByID(list, 3)
	assert.False(t, ok)
}
