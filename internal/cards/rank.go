package cards

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// searchable implements fuzzy.Source over card names.
type searchable []Card

func (s searchable) Len() int { return len(s) }

func (s searchable) String(i int) string { return strings.ToLower(s[i].Name) }

// Rank orders list by fuzzy relevance of the card names to query. Cards that
// do not match keep their original relative order after the matches, so no
// card is ever dropped.
func Rank(query string, list []Card) []Card {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(list) < 2 {
		return list
	}

	matches := fuzzy.FindFrom(q, searchable(list))
	out := make([]Card, 0, len(list))
	seen := make([]bool, len(list))
	for _, m := range matches {
		out = append(out, list[m.Index])
		seen[m.Index] = true
	}
	for i, c := range list {
		if !seen[i] {
			out = append(out, c)
		}
	}
	return out
}
