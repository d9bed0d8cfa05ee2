package cards

import "strings"

const (
	PendulumMarker = "[ Pendulum Effect ]"
	MonsterMarker  = "[ Monster Effect ]"
)

// Description is a card's rules text split into its pendulum and monster parts.
type Description struct {
	Pendulum string `json:"pendulum_effect"`
	Monster  string `json:"monster_effect"`
}

func HasPendulum(desc string) bool {
	return strings.Contains(desc, PendulumMarker)
}

// FormatDescription splits desc on the pendulum and monster effect markers.
// Text without the pendulum marker is returned whole as the monster effect.
// With the pendulum marker but no monster marker, the monster effect is empty.
func FormatDescription(desc string) Description {
	_, rest, found := strings.Cut(desc, PendulumMarker)
	if !found {
		return Description{Monster: desc}
	}
	// only the segment up to a second pendulum marker counts
	rest, _, _ = strings.Cut(rest, PendulumMarker)
	pendulum, monster, found := strings.Cut(rest, MonsterMarker)
	if !found {
		return Description{Pendulum: strings.TrimSpace(pendulum)}
	}
	monster, _, _ = strings.Cut(monster, MonsterMarker)
	return Description{
		Pendulum: strings.TrimSpace(pendulum),
		Monster:  strings.TrimSpace(monster),
	}
}
