package cards

import "strings"

// Card is a catalog card summary as returned by the card database.
// Values are built once at the catalog boundary and never mutated.
type Card struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Desc   string   `json:"desc"`
	Atk    *int     `json:"atk,omitempty"`
	Def    *int     `json:"def,omitempty"`
	Images []string `json:"images"`
}

// ImageURL returns the first image of the card, or "" when it has none.
func (c Card) ImageURL() string {
	if len(c.Images) == 0 {
		return ""
	}
	return c.Images[0]
}

func (c Card) IsMonster() bool {
	return strings.Contains(strings.ToLower(c.Type), "monster")
}

// FindByID returns the card with the given id from list.
func FindByID(list []Card, id int) (Card, bool) {
	for _, c := range list {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}
