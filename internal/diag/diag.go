// Package diag holds per-session upload diagnostics. A Session is built at
// the entrypoint and handed to the components that need it; nothing in this
// package is attached to process-global state.
package diag

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mwhitfield/user_uploads/internal/classify"
)

// Session aggregates classified failures for one logical session and tags
// every log line with the session ID.
type Session struct {
	id  string
	log *slog.Logger

	mu       sync.Mutex
	failures map[classify.Category]int
}

func NewSession(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	return &Session{
		id:       id,
		log:      logger.With("session", id),
		failures: make(map[classify.Category]int),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Logger returns the session-tagged logger.
func (s *Session) Logger() *slog.Logger {
	return s.log
}

// RecordFailure counts one classified failure and logs it at the category's
// configured level.
func (s *Session) RecordFailure(cat classify.Category, err error) {
	s.mu.Lock()
	s.failures[cat]++
	s.mu.Unlock()

	p := cat.Presentation()
	s.log.Log(context.Background(), p.Level, p.Label,
		"category", string(cat),
		"code", p.Code,
		"error", err,
	)
}

// Snapshot returns a copy of the per-category failure counts.
func (s *Session) Snapshot() map[classify.Category]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[classify.Category]int, len(s.failures))
	for cat, n := range s.failures {
		out[cat] = n
	}
	return out
}
