package services

import (
	"context"
	"errors"
	"time"

	"studio-service/catalog"
	"studio-service/database"
	"studio-service/models"
)

// loadOrCreate fetches the session, seeding a fresh one (pre-filled cart,
// idle booking dated today) when none exists yet. For read-only paths; every
// mutation goes through mutateSession instead.
func loadOrCreate(ctx context.Context, store database.SessionStore, sessionID string) (*models.Session, *ServiceError) {
	session, err := store.Get(ctx, sessionID)
	if err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load session"}
	}
	if session == nil {
		session = models.NewSession(sessionID, catalog.SeedCartItems(), time.Now())
	}
	return session, nil
}

// mutateSession applies fn to the session inside the store's per-session
// guard, seeding a fresh session when none exists yet. The store serializes
// concurrent mutations of one session, so fn always sees the latest state
// and its write is never lost to an interleaved request.
func mutateSession(ctx context.Context, store database.SessionStore, sessionID string, fn func(*models.Session) *ServiceError) *ServiceError {
	err := store.Update(ctx, sessionID, func(session *models.Session) (*models.Session, error) {
		if session == nil {
			session = models.NewSession(sessionID, catalog.SeedCartItems(), time.Now())
		}
		if serr := fn(session); serr != nil {
			return nil, serr
		}
		return session, nil
	})
	if err == nil {
		return nil
	}
	var serr *ServiceError
	if errors.As(err, &serr) {
		return serr
	}
	return &ServiceError{StatusCode: 500, Message: "Failed to save session"}
}

// SessionService exposes explicit session teardown (the tab-close analogue).
type SessionService struct {
	store database.SessionStore
}

func NewSessionService(store database.SessionStore) *SessionService {
	return &SessionService{store: store}
}

// Clear discards all state held for the session. Pending booking timers for
// the session will find nothing to update and drop their writes.
func (s *SessionService) Clear(ctx context.Context, sessionID string) *ServiceError {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return &ServiceError{StatusCode: 500, Message: "Failed to clear session"}
	}
	return nil
}
