package database

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"studio-service/models"
)

// UpdateFunc is applied to a session inside the store's per-session guard.
// The argument is nil when the session does not exist or has expired; the
// returned session is saved. Returning a nil session skips the save,
// returning an error aborts it.
type UpdateFunc func(session *models.Session) (*models.Session, error)

// SessionStore holds ephemeral per-session state. Get returns (nil, nil) when
// the session does not exist or has expired. All read-modify-write cycles go
// through Update, which serializes them per session id so concurrent
// mutations never lose writes.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Update(ctx context.Context, sessionID string, fn UpdateFunc) error
	Delete(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemorySessionStore is the default store: sessions live in process memory
// with a TTL. Entries are kept as JSON blobs so that callers never share a
// pointer with the store, same contract as the redis store. A background
// sweep reaps abandoned sessions; Stop ends it.
type MemorySessionStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	locks   sync.Map // session id -> *sync.Mutex
	ttl     time.Duration
	stop    chan struct{}
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	s := &MemorySessionStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		stop:    make(chan struct{}),
	}
	go s.sweep()
	return s
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*models.Session, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, sessionID)
		s.mu.Unlock()
		return nil, nil
	}

	var session models.Session
	if err := json.Unmarshal(entry.data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *MemorySessionStore) Save(_ context.Context, session *models.Session) error {
	session.UpdatedAt = time.Now()

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entries[session.ID] = memoryEntry{data: data, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

// Update runs fn under the session's lock so that the load, the mutation and
// the save are one atomic step for that session id.
func (s *MemorySessionStore) Update(ctx context.Context, sessionID string, fn UpdateFunc) error {
	lock, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	updated, err := fn(session)
	if err != nil || updated == nil {
		return err
	}
	return s.Save(ctx, updated)
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
	return nil
}

// sweep reaps expired entries so abandoned sessions do not pin memory until
// their id happens to be polled again.
func (s *MemorySessionStore) sweep() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, entry := range s.entries {
				if now.After(entry.expiresAt) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

// Stop ends the background sweep. Used on shutdown.
func (s *MemorySessionStore) Stop() {
	close(s.stop)
}
