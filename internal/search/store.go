package search

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/mobimart/mobimart-backend/internal/storage"
	pkgerrors "github.com/mobimart/mobimart-backend/pkg/errors"
	"github.com/mobimart/mobimart-backend/pkg/logger"
)

// MaxRecent bounds the recent-search history.
const MaxRecent = 5

// Store keeps the user's recent search terms, most recent first, deduplicated
// by exact spelling and capped at MaxRecent. Mutations persist synchronously;
// write failures are logged and never surfaced.
type Store struct {
	mu    sync.Mutex
	kv    storage.KV
	logg  *logger.Logger
	terms []string
}

// NewStore hydrates the history from durable storage. Absent or corrupt
// storage yields an empty history, never an error.
func NewStore(ctx context.Context, kv storage.KV, logg *logger.Logger) (*Store, error) {
	if kv == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "kv storage required")
	}
	s := &Store{kv: kv, logg: logg}
	s.hydrate(ctx)
	return s, nil
}

func (s *Store) hydrate(ctx context.Context) {
	raw, err := s.kv.Get(ctx, storage.KeyRecentSearches)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) && s.logg != nil {
			s.logg.Error(ctx, "recent searches hydration failed, starting empty", err)
		}
		return
	}
	var terms []string
	if err := json.Unmarshal([]byte(raw), &terms); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "corrupt recent searches payload, resetting", pkgerrors.Wrap(pkgerrors.CodeStorage, err, "decode recent searches"))
		}
		return
	}
	if len(terms) > MaxRecent {
		terms = terms[:MaxRecent]
	}
	s.terms = terms
}

// Record pushes a term to the front of the history. Blank terms are ignored.
// An existing entry with the exact same spelling is moved to the front
// instead of duplicated; the oldest entry falls off past MaxRecent.
func (s *Store) Record(ctx context.Context, term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]string, 0, len(s.terms)+1)
	kept = append(kept, term)
	for _, t := range s.terms {
		if t == term {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) > MaxRecent {
		kept = kept[:MaxRecent]
	}
	s.terms = kept
	s.persist(ctx)
}

// Terms returns a copy of the history, most recent first.
func (s *Store) Terms() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	terms := make([]string, len(s.terms))
	copy(terms, s.terms)
	return terms
}

// Clear empties the history.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.terms = nil
	s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) {
	terms := s.terms
	if terms == nil {
		terms = []string{}
	}
	payload, err := json.Marshal(terms)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "encode recent searches failed", err)
		}
		return
	}
	if err := s.kv.Set(ctx, storage.KeyRecentSearches, string(payload)); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "persist recent searches failed", pkgerrors.Wrap(pkgerrors.CodeStorage, err, "write recent searches"))
		}
	}
}
