package session

import (
	"fmt"
	"strings"

	"github.com/youruser/ygodeck/internal/deck"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Artifact is a downloadable deck snapshot.
type Artifact struct {
	FileName    string
	ContentType string
	Body        []byte
}

// Export snapshots the deck in its current order. The session is not
// modified.
func (s *Session) Export(f Format) (Artifact, error) {
	s.mu.Lock()
	name := s.name
	entries := s.deck.Entries()
	s.mu.Unlock()

	switch f {
	case FormatJSON:
		b, err := deck.ExportJSON(entries)
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{
			FileName:    deck.FileName(name, "json"),
			ContentType: "application/json",
			Body:        b,
		}, nil
	case FormatText:
		return Artifact{
			FileName:    deck.FileName(name, "txt"),
			ContentType: "text/plain; charset=utf-8",
			Body:        []byte(deck.ExportText(name, entries)),
		}, nil
	}
	return Artifact{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
