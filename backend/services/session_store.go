package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"project/backend/models"
)

// SessionStore abstracts quiz-session storage so that sessions can live
// in-memory (default) or in external backing storage for multi-process
// deployments.
type SessionStore interface {
	// Put stores the questions generated for a session token.
	Put(token string, questions []models.QuizQuestion)
	// Take atomically retrieves and deletes a session. Returns false if
	// the token is unknown, expired or already consumed. Single-use:
	// at most one caller ever gets true for a given token.
	Take(token string) ([]models.QuizQuestion, bool)
}

// NewSessionToken mints a fresh random session token.
func NewSessionToken() string {
	return uuid.NewString()
}

type sessionEntry struct {
	questions []models.QuizQuestion
	expiresAt time.Time
}

// MemorySessionStore keeps sessions in a mutex-guarded map with a TTL.
// Entries expire on access and via a background sweep, so tokens that
// are generated but never submitted do not pile up.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemorySessionStore creates a store whose entries expire after ttl.
// A ttl of zero disables expiry.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	s := &MemorySessionStore{
		sessions: make(map[string]sessionEntry),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	if ttl > 0 {
		go s.sweep(ttl)
	}
	return s
}

func (s *MemorySessionStore) Put(token string, questions []models.QuizQuestion) {
	entry := sessionEntry{questions: questions}
	if s.ttl > 0 {
		entry.expiresAt = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.sessions[token] = entry
	s.mu.Unlock()
}

func (s *MemorySessionStore) Take(token string) ([]models.QuizQuestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	delete(s.sessions, token)

	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.questions, true
}

// Close stops the background sweeper.
func (s *MemorySessionStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemorySessionStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for token, entry := range s.sessions {
				if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
					delete(s.sessions, token)
				}
			}
			s.mu.Unlock()
		}
	}
}
