package deck

import "strings"

type FilterOptions struct {
	Categories []Category
	FreeWords  string
}

func containsAny(hay []string, needles []string) bool {
	for _, n := range needles {
		for _, h := range hay {
			if strings.Contains(h, n) {
				return true
			}
		}
	}
	return false
}

// Filter returns the entries matching every option, keeping deck order.
// Free words match case-insensitively against the name and, for catalog
// cards, the type and rules text.
func Filter(entries []Entry, opt FilterOptions) []Entry {
	var out []Entry
	for _, e := range entries {
		if len(opt.Categories) > 0 {
			matched := false
			for _, c := range opt.Categories {
				if e.Type == c {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if opt.FreeWords != "" {
			hay := []string{strings.ToLower(e.Name)}
			if e.Card != nil {
				hay = append(hay, strings.ToLower(e.Card.Type), strings.ToLower(e.Card.Desc))
			}
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				if !containsAny(hay, []string{strings.ToLower(k)}) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}
