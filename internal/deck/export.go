package deck

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const DefaultName = "meu-deck-yugioh"

// ExportJSON serializes the entries as a JSON array, in the order given.
func ExportJSON(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encoding deck: %w", err)
	}
	return b, nil
}

// ExportText renders a plain deck list, one "Nx Name" line per entry under a
// header for each non-empty category.
func ExportText(name string, entries []Entry) string {
	lines := []string{}
	if name != "" {
		lines = append(lines, "# "+name)
	}
	for _, c := range Categories() {
		es := Filter(entries, FilterOptions{Categories: []Category{c}})
		if len(es) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("## %s (%d)", c, total(es)))
		for _, e := range es {
			lines = append(lines, fmt.Sprintf("%dx %s", e.Quantity, e.Name))
		}
	}
	return strings.Join(lines, "\n")
}

// FileName turns a deck name into a download file name with the given
// extension. Accents are stripped and anything else outside [a-z0-9] becomes
// a single dash.
func FileName(deckName, ext string) string {
	slug := slugify(deckName)
	if slug == "" {
		slug = DefaultName
	}
	return slug + "." + strings.TrimPrefix(ext, ".")
}

func slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
