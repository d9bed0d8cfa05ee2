package session

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	nanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"

	"github.com/youruser/ygodeck/internal/deck"
)

const DefaultMaxSessions = 1024

// Store keeps the live sessions in memory. When full, the least recently
// used session is dropped.
type Store struct {
	cache    *lru.Cache
	searcher Searcher
	logger   *zap.Logger
}

func NewStore(size int, searcher Searcher, logger *zap.Logger) (*Store, error) {
	if size <= 0 {
		size = DefaultMaxSessions
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{searcher: searcher, logger: logger}
	cache, err := lru.NewWithEvict(size, s.evicted)
	if err != nil {
		return nil, fmt.Errorf("creating session cache: %w", err)
	}
	s.cache = cache
	return s, nil
}

// Create starts an empty session.
func (s *Store) Create(name string) *Session {
	sess := New(nanoid.Must(), name, s.searcher, deck.New())
	s.cache.Add(sess.ID, sess)
	s.logger.Debug("session created", zap.String("session", sess.ID))
	return sess
}

func (s *Store) Get(id string) (*Session, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return v.(*Session), nil
}

func (s *Store) Delete(id string) bool {
	return s.cache.Remove(id)
}

func (s *Store) Len() int { return s.cache.Len() }

func (s *Store) evicted(key, value interface{}) {
	if sess, ok := value.(*Session); ok {
		sess.Close()
	}
	s.logger.Debug("session dropped", zap.Any("session", key))
}
