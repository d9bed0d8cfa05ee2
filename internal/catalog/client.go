package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/youruser/ygodeck/internal/cards"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL  = "https://db.ygoprodeck.com/api/v7/cardinfo.php"
	DefaultLanguage = "pt"
	DefaultTimeout  = 12 * time.Second
	MinQueryLength  = 3
)

// Client looks cards up by name fragment in the YGOPRODeck card database.
type Client struct {
	baseURL  string
	language string
	minQuery int
	http     *http.Client
	logger   *zap.Logger
}

type Config struct {
	BaseURL  string
	Language string
	Timeout  time.Duration
	MinQuery int
}

func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MinQuery <= 0 {
		cfg.MinQuery = MinQueryLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		language: cfg.Language,
		minQuery: cfg.MinQuery,
		http:     &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
	}
}

// Search returns the cards whose name matches query. Queries shorter than
// the minimum length return nothing without a request. Lookup failures are
// logged and yield an empty result.
func (c *Client) Search(ctx context.Context, query string) []cards.Card {
	if utf8.RuneCountInString(query) < c.minQuery {
		return []cards.Card{}
	}
	out, err := c.Lookup(ctx, query)
	if err != nil {
		if ctx.Err() == nil {
			c.logger.Warn("card lookup failed", zap.String("query", query), zap.Error(err))
		}
		return []cards.Card{}
	}
	return out
}

// Lookup performs the catalog request and reports failures to the caller.
func (c *Client) Lookup(ctx context.Context, query string) ([]cards.Card, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog url: %w", err)
	}
	q := u.Query()
	q.Set("language", c.language)
	q.Set("fname", query)
	u.RawQuery = q.Encode()

	body, status, err := c.get(ctx, u.String())
	if err != nil {
		return nil, err
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding catalog response (status %d): %w", status, err)
	}
	// the API answers 400 with an error message when nothing matches
	if status == http.StatusBadRequest && resp.Error != "" {
		c.logger.Debug("no catalog match", zap.String("query", query), zap.String("reason", resp.Error))
		return []cards.Card{}, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", status)
	}

	out := make([]cards.Card, 0, len(resp.Data))
	for _, r := range resp.Data {
		card, ok := r.toCard()
		if !ok {
			c.logger.Debug("dropping invalid catalog record", zap.Int("id", r.ID))
			continue
		}
		out = append(out, card)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("requesting catalog: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading catalog response: %w", err)
	}
	return b, resp.StatusCode, nil
}
