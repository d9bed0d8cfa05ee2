package cards

import "strconv"

// Detail is the display form of a selected card.
type Detail struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	Type      string `json:"type"`
	ShowStats bool   `json:"show_stats"`
	Atk       string `json:"atk,omitempty"`
	Def       string `json:"def,omitempty"`
	Pendulum  bool   `json:"pendulum"`
	Description
}

func NewDetail(c Card) Detail {
	d := Detail{
		ID:          c.ID,
		Name:        c.Name,
		ImageURL:    c.ImageURL(),
		Type:        c.Type,
		Pendulum:    HasPendulum(c.Desc),
		Description: FormatDescription(c.Desc),
	}
	if c.IsMonster() {
		d.ShowStats = true
		d.Atk = stat(c.Atk)
		d.Def = stat(c.Def)
	}
	return d
}

func stat(v *int) string {
	if v == nil {
		return "?"
	}
	return strconv.Itoa(*v)
}
