package deck

import (
	"errors"
	"strings"

	nanoid "github.com/matoous/go-nanoid/v2"
	"github.com/youruser/ygodeck/internal/cards"
)

// MaxCopies is the most copies of one card name a deck may hold.
const MaxCopies = 3

var (
	ErrCopyLimit = errors.New("card already has the maximum number of copies")
	ErrEmptyName = errors.New("card name is empty")
)

// Entry is one distinct card name held in the deck.
type Entry struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     Category    `json:"type"`
	Quantity int         `json:"quantity"`
	ImageURL string      `json:"imageUrl,omitempty"`
	Card     *cards.Card `json:"apiData,omitempty"`
}

// Candidate is a card about to be added, from the catalog or typed by hand.
type Candidate struct {
	Name     string
	Type     Category
	ImageURL string
	Card     *cards.Card
}

// FromCard maps a catalog card to a deck candidate.
func FromCard(c cards.Card) Candidate {
	return Candidate{
		Name:     c.Name,
		Type:     Classify(c.Type),
		ImageURL: c.ImageURL(),
		Card:     &c,
	}
}

// Manual builds a candidate from a name and slot entered by hand.
func Manual(name string, category Category) Candidate {
	return Candidate{Name: name, Type: category}
}

// Deck is an insertion-ordered collection of entries, unique by
// case-insensitive name. It is not safe for concurrent use.
type Deck struct {
	entries []Entry
	newID   func() string
}

type Option func(*Deck)

// WithIDGenerator replaces the nanoid entry id generator.
func WithIDGenerator(fn func() string) Option {
	return func(d *Deck) { d.newID = fn }
}

func New(opts ...Option) *Deck {
	d := &Deck{newID: func() string { return nanoid.Must() }}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Add puts one copy of c in the deck and returns the resulting entry.
// A name already held MaxCopies times is rejected with ErrCopyLimit and the
// deck is left unchanged.
func (d *Deck) Add(c Candidate) (Entry, error) {
	if strings.TrimSpace(c.Name) == "" {
		return Entry{}, ErrEmptyName
	}
	if i := d.indexByName(c.Name); i >= 0 {
		e := &d.entries[i]
		if e.Quantity >= MaxCopies {
			return *e, ErrCopyLimit
		}
		e.Quantity = min(e.Quantity+1, MaxCopies)
		return *e, nil
	}

	e := Entry{
		ID:       d.newID(),
		Name:     c.Name,
		Type:     c.Type,
		Quantity: 1,
		ImageURL: c.ImageURL,
		Card:     c.Card,
	}
	d.entries = append(d.entries, e)
	return e, nil
}

// Remove deletes the entry with the given id whatever its quantity.
// It reports whether an entry was removed.
func (d *Deck) Remove(id string) bool {
	for i, e := range d.entries {
		if e.ID == id {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Deck) Get(id string) (Entry, bool) {
	for _, e := range d.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the entries in insertion order.
func (d *Deck) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d *Deck) Len() int { return len(d.entries) }

// Total is the number of card copies in the deck.
func (d *Deck) Total() int {
	return total(d.entries)
}

func (d *Deck) indexByName(name string) int {
	for i, e := range d.entries {
		if strings.EqualFold(e.Name, name) {
			return i
		}
	}
	return -1
}

// Section is the part of a deck shown under one category.
type Section struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
	Entries  []Entry  `json:"entries"`
}

// Group splits the deck into one section per category, in display order.
// Empty categories are included.
func (d *Deck) Group() []Section {
	return GroupEntries(d.entries, "")
}

// GroupEntries is Group over a snapshot, keeping only the entries that
// match every free word.
func GroupEntries(entries []Entry, words string) []Section {
	out := make([]Section, 0, len(Categories()))
	for _, c := range Categories() {
		es := Filter(entries, FilterOptions{Categories: []Category{c}, FreeWords: words})
		if es == nil {
			es = []Entry{}
		}
		out = append(out, Section{Category: c, Count: total(es), Entries: es})
	}
	return out
}

func total(es []Entry) int {
	n := 0
	for _, e := range es {
		n += e.Quantity
	}
	return n
}
