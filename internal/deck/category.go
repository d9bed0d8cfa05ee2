package deck

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the deck slot a card is shown under.
type Category string

const (
	Monster Category = "monstro"
	Spell   Category = "magia"
	Trap    Category = "armadilha"
	Extra   Category = "extra"
)

var ErrUnknownCategory = errors.New("unknown card category")

// Categories returns the slots in display order.
func Categories() []Category {
	return []Category{Monster, Spell, Trap, Extra}
}

// Classify maps a catalog type string ("Effect Monster", "Spell Card", ...)
// to a deck slot.
func Classify(cardType string) Category {
	t := strings.ToLower(cardType)
	switch {
	case strings.Contains(t, "monster"):
		return Monster
	case strings.Contains(t, "spell"):
		return Spell
	case strings.Contains(t, "trap"):
		return Trap
	default:
		return Extra
	}
}

var aliases = map[string]Category{
	"monstro":    Monster,
	"monster":    Monster,
	"magia":      Spell,
	"spell":      Spell,
	"armadilha":  Trap,
	"trap":       Trap,
	"extra":      Extra,
	"deck extra": Extra,
}

// ParseCategory accepts a slot tag or its English name.
func ParseCategory(s string) (Category, error) {
	c, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}
