package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/youruser/ygodeck/internal/cards"
	"github.com/youruser/ygodeck/internal/deck"
)

var (
	ErrNotFound      = errors.New("session not found")
	ErrUnknownCard   = errors.New("card is not in the search results")
	ErrUnknownEntry  = errors.New("deck entry not found")
	ErrUnknownFormat = errors.New("unknown export format")
)

// Searcher is the catalog lookup a session delegates to. It never fails:
// lookup errors come back as an empty result.
type Searcher interface {
	Search(ctx context.Context, query string) []cards.Card
}

// Session owns one user's deck together with the search panel and the
// selected card. All methods are safe for concurrent use.
type Session struct {
	ID string

	mu        sync.Mutex
	name      string
	deck      *deck.Deck
	searcher  Searcher
	query     string
	results   []cards.Card
	searching bool
	selected  *cards.Card

	// gen identifies the latest search; responses from older ones are dropped.
	gen    uint64
	cancel context.CancelFunc
}

func New(id, name string, searcher Searcher, d *deck.Deck) *Session {
	if d == nil {
		d = deck.New()
	}
	return &Session{ID: id, name: name, searcher: searcher, deck: d}
}

// SearchResult is what a search call produced. Superseded is set when a
// newer search, a close or an add happened while the lookup was in flight;
// the cards are then not applied to the session.
type SearchResult struct {
	Query      string       `json:"query"`
	Cards      []cards.Card `json:"cards"`
	Superseded bool         `json:"superseded"`
}

// Search opens the search panel and replaces the results with the catalog
// matches for query, ranked by name relevance. Any lookup still in flight is
// canceled.
func (s *Session) Search(ctx context.Context, query string) SearchResult {
	s.mu.Lock()
	s.searching = true
	s.query = query
	gen := s.supersede()
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	found := cards.Rank(query, s.searcher.Search(ctx, query))

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		cancel()
		return SearchResult{Query: query, Cards: found, Superseded: true}
	}
	cancel()
	s.cancel = nil
	s.results = found
	return SearchResult{Query: query, Cards: clone(found)}
}

// CloseSearch closes the panel and drops the results.
func (s *Session) CloseSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeSearch()
}

// AddResult adds one copy of a card from the current search results and
// selects it. The card stays selected when the add is rejected.
func (s *Session) AddResult(cardID int) (deck.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := cards.FindByID(s.results, cardID)
	if !ok {
		return deck.Entry{}, fmt.Errorf("%w: %d", ErrUnknownCard, cardID)
	}
	s.selected = &c
	return s.add(deck.FromCard(c))
}

// AddManual adds one copy of a card typed by hand.
func (s *Session) AddManual(name string, category deck.Category) (deck.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(deck.Manual(strings.TrimSpace(name), category))
}

func (s *Session) add(c deck.Candidate) (deck.Entry, error) {
	e, err := s.deck.Add(c)
	if err != nil {
		return e, err
	}
	s.closeSearch()
	return e, nil
}

// Remove deletes a deck entry. It reports whether the entry existed.
func (s *Session) Remove(entryID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Remove(entryID)
}

// SelectResult selects a card from the current search results.
func (s *Session) SelectResult(cardID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := cards.FindByID(s.results, cardID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownCard, cardID)
	}
	s.selected = &c
	return nil
}

// SelectEntry selects the catalog card behind a deck entry. Entries typed
// by hand have none, which clears the selection.
func (s *Session) SelectEntry(entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.deck.Get(entryID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, entryID)
	}
	s.selected = e.Card
	return nil
}

// Detail returns the display form of the selected card, if any.
func (s *Session) Detail() (cards.Detail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return cards.Detail{}, false
	}
	return cards.NewDetail(*s.selected), true
}

func (s *Session) Rename(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = strings.TrimSpace(name)
}

func (s *Session) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// Entries returns a snapshot of the deck.
func (s *Session) Entries() []deck.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Entries()
}

// View is the state a deck page renders.
type View struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Total     int            `json:"total"`
	Sections  []deck.Section `json:"sections"`
	Searching bool           `json:"searching"`
	Query     string         `json:"query,omitempty"`
	Results   []cards.Card   `json:"results"`
	Selected  *cards.Detail  `json:"selected,omitempty"`
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := View{
		ID:        s.ID,
		Name:      s.name,
		Total:     s.deck.Total(),
		Sections:  s.deck.Group(),
		Searching: s.searching,
		Query:     s.query,
		Results:   clone(s.results),
	}
	if s.selected != nil {
		d := cards.NewDetail(*s.selected)
		v.Selected = &d
	}
	return v
}

// Close cancels any lookup in flight.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supersede()
}

// supersede invalidates the running search and returns the next generation.
func (s *Session) supersede() uint64 {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	return s.gen
}

func (s *Session) closeSearch() {
	s.supersede()
	s.searching = false
	s.query = ""
	s.results = nil
}

func clone(list []cards.Card) []cards.Card {
	out := make([]cards.Card, len(list))
	copy(out, list)
	return out
}
