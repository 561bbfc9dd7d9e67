package services

import (
	"context"
	"sync"
	"time"

	"studio-service/catalog"
	"studio-service/database"
	"studio-service/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingEventPublisher is the seam where a real booking backend would hang.
// The producer yields success or failure exactly once per event.
type BookingEventPublisher interface {
	SendBookingConfirmedEvent(ctx context.Context, event models.BookingConfirmedEvent) error
}

// BookingStatus is the booking flow as shown to the client.
type BookingStatus struct {
	ServiceID   string              `json:"service_id"`
	Date        string              `json:"date"`
	TimeSlot    string              `json:"time_slot"`
	Phase       models.BookingPhase `json:"phase"`
	Celebrating bool                `json:"celebrating"`
	BookingID   string              `json:"booking_id,omitempty"`
	ConfirmedAt *time.Time          `json:"confirmed_at,omitempty"`
	Summary     *BookingSummary     `json:"summary,omitempty"`
}

// BookingSummary is the confirmation dialog content. CartTotal is included
// because the storefront shows the cart total alongside the booking recap.
type BookingSummary struct {
	ServiceName string  `json:"service_name"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	Date        string  `json:"date"`
	TimeSlot    string  `json:"time_slot"`
	CartTotal   float64 `json:"cart_total"`
}

// BookingSelection carries partial selection updates. Nil fields are left
// untouched; selection updates never change the phase.
type BookingSelection struct {
	ServiceID *string `json:"service_id"`
	Date      *string `json:"date"`
	TimeSlot  *string `json:"time_slot"`
}

// BookingService drives the booking state machine. The submission is a mock:
// confirm schedules a timer for the configured delay and the attempt then
// completes unconditionally. Each attempt carries an id minted at submit
// time; a timer that fires for a cleared or superseded attempt writes
// nothing. Every transition runs inside the store's per-session guard, so a
// timer and a handler touching the same session never trample each other.
type BookingService struct {
	store          database.SessionStore
	producer       BookingEventPublisher
	confirmDelay   time.Duration
	celebrationTTL time.Duration
	logger         *zap.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

func NewBookingService(
	store database.SessionStore,
	producer BookingEventPublisher,
	confirmDelay, celebrationTTL time.Duration,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		store:          store,
		producer:       producer,
		confirmDelay:   confirmDelay,
		celebrationTTL: celebrationTTL,
		logger:         logger,
		timers:         make(map[string]*time.Timer),
	}
}

// Get returns the current booking status for the session.
func (s *BookingService) Get(ctx context.Context, sessionID string) (BookingStatus, *ServiceError) {
	var status BookingStatus
	serr := mutateSession(ctx, s.store, sessionID, func(session *models.Session) *ServiceError {
		status = s.status(session)
		return nil
	})
	if serr != nil {
		return BookingStatus{}, serr
	}
	return status, nil
}

// UpdateSelection applies partial field updates. Every field is validated
// against the catalog but the phase is never touched here.
func (s *BookingService) UpdateSelection(ctx context.Context, sessionID string, sel BookingSelection) (BookingStatus, *ServiceError) {
	if sel.ServiceID != nil {
		if _, ok := catalog.ServiceByID(*sel.ServiceID); !ok {
			return BookingStatus{}, &ServiceError{StatusCode: 404, Message: "Unknown service"}
		}
	}
	if sel.TimeSlot != nil && !catalog.ValidTimeSlot(*sel.TimeSlot) {
		return BookingStatus{}, &ServiceError{StatusCode: 400, Message: "Unknown time slot"}
	}
	if sel.Date != nil {
		date, err := time.Parse(models.BookingDateLayout, *sel.Date)
		if err != nil {
			return BookingStatus{}, &ServiceError{StatusCode: 400, Message: "Invalid date, expected YYYY-MM-DD"}
		}
		today, _ := time.Parse(models.BookingDateLayout, time.Now().Format(models.BookingDateLayout))
		if date.Before(today) {
			return BookingStatus{}, &ServiceError{StatusCode: 400, Message: "Date cannot be in the past"}
		}
	}

	var status BookingStatus
	serr := mutateSession(ctx, s.store, sessionID, func(session *models.Session) *ServiceError {
		if sel.ServiceID != nil {
			session.Booking.ServiceID = *sel.ServiceID
		}
		if sel.TimeSlot != nil {
			session.Booking.TimeSlot = *sel.TimeSlot
		}
		if sel.Date != nil {
			session.Booking.Date = *sel.Date
		}
		status = s.status(session)
		return nil
	})
	if serr != nil {
		if serr.StatusCode == 500 {
			s.logger.Error("Failed to save booking selection", zap.String("session_id", sessionID))
		}
		return BookingStatus{}, serr
	}
	return status, nil
}

// OpenConfirmation moves idle -> awaiting_confirmation. Missing selections
// reject the transition with the storefront's prompt.
func (s *BookingService) OpenConfirmation(ctx context.Context, sessionID string) (BookingStatus, *ServiceError) {
	var status BookingStatus
	serr := mutateSession(ctx, s.store, sessionID, func(session *models.Session) *ServiceError {
		if session.Booking.Phase != models.PhaseIdle {
			return &ServiceError{StatusCode: 409, Message: "A booking is already in progress"}
		}
		if !session.Booking.ReadyToConfirm() {
			return &ServiceError{StatusCode: 422, Message: "Please select a service and time before proceeding!"}
		}
		session.Booking.Phase = models.PhaseAwaitingConfirmation
		status = s.status(session)
		return nil
	})
	if serr != nil {
		return BookingStatus{}, serr
	}
	return status, nil
}

// CloseConfirmation dismisses the confirmation dialog without booking.
func (s *BookingService) CloseConfirmation(ctx context.Context, sessionID string) (BookingStatus, *ServiceError) {
	var status BookingStatus
	serr := mutateSession(ctx, s.store, sessionID, func(session *models.Session) *ServiceError {
		switch session.Booking.Phase {
		case models.PhaseIdle:
		case models.PhaseAwaitingConfirmation:
			session.Booking.Phase = models.PhaseIdle
		default:
			return &ServiceError{StatusCode: 409, Message: "Booking is already submitting"}
		}
		status = s.status(session)
		return nil
	})
	if serr != nil {
		return BookingStatus{}, serr
	}
	return status, nil
}

// Confirm moves awaiting_confirmation -> submitting and schedules the mock
// completion. Invoked in any other phase it changes nothing.
func (s *BookingService) Confirm(ctx context.Context, sessionID string) (BookingStatus, *ServiceError) {
	attemptID := uuid.NewString()

	var status BookingStatus
	serr := mutateSession(ctx, s.store, sessionID, func(session *models.Session) *ServiceError {
		if session.Booking.Phase != models.PhaseAwaitingConfirmation {
			return &ServiceError{StatusCode: 409, Message: "Confirmation dialog is not open"}
		}
		session.Booking.Phase = models.PhaseSubmitting
		session.Booking.AttemptID = attemptID
		status = s.status(session)
		return nil
	})
	if serr != nil {
		if serr.StatusCode == 500 {
			s.logger.Error("Failed to save booking state", zap.String("session_id", sessionID))
		}
		return BookingStatus{}, serr
	}

	s.schedule(attemptID, s.confirmDelay, func() {
		s.completeAttempt(sessionID, attemptID)
	})

	return status, nil
}

// completeAttempt finishes the mock submission. The attempt id guards
// against writing into a session that was cleared or re-submitted while the
// timer was pending.
func (s *BookingService) completeAttempt(sessionID, attemptID string) {
	ctx := context.Background()

	var confirmed *models.Session
	err := s.store.Update(ctx, sessionID, func(session *models.Session) (*models.Session, error) {
		confirmed = nil
		if session == nil || session.Booking.AttemptID != attemptID || session.Booking.Phase != models.PhaseSubmitting {
			return nil, nil
		}

		now := time.Now()
		until := now.Add(s.celebrationTTL)
		session.Booking.Phase = models.PhaseConfirmed
		session.Booking.BookingID = uuid.NewString()
		session.Booking.ConfirmedAt = &now
		session.Booking.CelebrationUntil = &until
		confirmed = session
		return session, nil
	})
	if err != nil {
		s.logger.Error("Booking completion failed", zap.String("session_id", sessionID), zap.Error(err))
		return
	}
	if confirmed == nil {
		return
	}

	s.publishConfirmed(ctx, confirmed)
	s.logger.Info("Booking confirmed",
		zap.String("session_id", sessionID),
		zap.String("booking_id", confirmed.Booking.BookingID),
		zap.String("service_id", confirmed.Booking.ServiceID),
	)

	s.schedule(attemptID+":reset", s.celebrationTTL, func() {
		s.resetAttempt(sessionID, attemptID)
	})
}

// resetAttempt closes the celebration window: confirmed -> idle. Selections
// survive the reset.
func (s *BookingService) resetAttempt(sessionID, attemptID string) {
	err := s.store.Update(context.Background(), sessionID, func(session *models.Session) (*models.Session, error) {
		if session == nil || session.Booking.AttemptID != attemptID || session.Booking.Phase != models.PhaseConfirmed {
			return nil, nil
		}

		session.Booking.Phase = models.PhaseIdle
		session.Booking.AttemptID = ""
		session.Booking.BookingID = ""
		session.Booking.ConfirmedAt = nil
		session.Booking.CelebrationUntil = nil
		return session, nil
	})
	if err != nil {
		s.logger.Error("Booking reset failed", zap.String("session_id", sessionID), zap.Error(err))
	}
}

func (s *BookingService) publishConfirmed(ctx context.Context, session *models.Session) {
	if s.producer == nil {
		return
	}

	svc, _ := catalog.ServiceByID(session.Booking.ServiceID)
	event := models.BookingConfirmedEvent{
		Event:       "booking.confirmed",
		SessionID:   session.ID,
		BookingID:   session.Booking.BookingID,
		ServiceID:   session.Booking.ServiceID,
		ServiceName: svc.Name,
		Date:        session.Booking.Date,
		TimeSlot:    session.Booking.TimeSlot,
		Price:       svc.Price,
		Timestamp:   time.Now(),
	}

	if err := s.producer.SendBookingConfirmedEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish booking.confirmed event",
			zap.String("booking_id", event.BookingID), zap.Error(err))
	}
}

// schedule registers a named timer so Close can stop it.
func (s *BookingService) schedule(key string, d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.timers[key] = time.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, key)
		closed := s.closed
		s.mu.Unlock()
		if !closed {
			fn()
		}
	})
}

// Close stops all pending mock-submission timers. Used on shutdown.
func (s *BookingService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for key, timer := range s.timers {
		timer.Stop()
		delete(s.timers, key)
	}
}

func (s *BookingService) status(session *models.Session) BookingStatus {
	status := BookingStatus{
		ServiceID:   session.Booking.ServiceID,
		Date:        session.Booking.Date,
		TimeSlot:    session.Booking.TimeSlot,
		Phase:       session.Booking.Phase,
		Celebrating: session.Booking.Celebrating(time.Now()),
		BookingID:   session.Booking.BookingID,
		ConfirmedAt: session.Booking.ConfirmedAt,
	}

	if session.Booking.Phase != models.PhaseIdle {
		if svc, ok := catalog.ServiceByID(session.Booking.ServiceID); ok {
			status.Summary = &BookingSummary{
				ServiceName: svc.Name,
				Duration:    svc.Duration,
				Price:       svc.Price,
				Date:        session.Booking.Date,
				TimeSlot:    session.Booking.TimeSlot,
				CartTotal:   session.Cart.Total(),
			}
		}
	}
	return status
}
