package catalog

import (
	"strings"

	"github.com/youruser/ygodeck/internal/cards"
)

// apiResponse is the cardinfo.php response body.
type apiResponse struct {
	Data  []apiCard `json:"data"`
	Error string    `json:"error"`
}

type apiCard struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Desc       string `json:"desc"`
	Atk        *int   `json:"atk"`
	Def        *int   `json:"def"`
	CardImages []struct {
		ImageURL      string `json:"image_url"`
		ImageURLSmall string `json:"image_url_small"`
	} `json:"card_images"`
}

// toCard validates a record and converts it. Records without an id or a
// name are rejected.
func (r apiCard) toCard() (cards.Card, bool) {
	if r.ID == 0 || strings.TrimSpace(r.Name) == "" {
		return cards.Card{}, false
	}
	c := cards.Card{
		ID:     r.ID,
		Name:   r.Name,
		Type:   r.Type,
		Desc:   r.Desc,
		Atk:    r.Atk,
		Def:    r.Def,
		Images: []string{},
	}
	for _, img := range r.CardImages {
		if img.ImageURL != "" {
			c.Images = append(c.Images, img.ImageURL)
		}
	}
	return c, true
}
