package models

import "time"

// BookingPhase names a state of the booking flow.
type BookingPhase string

const (
	PhaseIdle                 BookingPhase = "idle"
	PhaseAwaitingConfirmation BookingPhase = "awaiting_confirmation"
	PhaseSubmitting           BookingPhase = "submitting"
	PhaseConfirmed            BookingPhase = "confirmed"
)

// BookingDateLayout is the wire format for the appointment date.
const BookingDateLayout = "2006-01-02"

// BookingState is a session's booking selection and flow position.
// AttemptID identifies the in-flight submission so that a timer firing for a
// stale attempt (session cleared, re-submitted) writes nothing.
type BookingState struct {
	ServiceID        string       `json:"service_id"`
	Date             string       `json:"date"`
	TimeSlot         string       `json:"time_slot"`
	Phase            BookingPhase `json:"phase"`
	AttemptID        string       `json:"attempt_id,omitempty"`
	BookingID        string       `json:"booking_id,omitempty"`
	ConfirmedAt      *time.Time   `json:"confirmed_at,omitempty"`
	CelebrationUntil *time.Time   `json:"celebration_until,omitempty"`
}

// ReadyToConfirm reports whether both required selections are present.
func (b *BookingState) ReadyToConfirm() bool {
	return b.ServiceID != "" && b.TimeSlot != ""
}

// Celebrating reports whether the post-confirmation celebration window is
// still open at the given instant.
func (b *BookingState) Celebrating(now time.Time) bool {
	return b.CelebrationUntil != nil && now.Before(*b.CelebrationUntil)
}

// BookingConfirmedEvent is published when a mock submission completes.
type BookingConfirmedEvent struct {
	Event       string    `json:"event"` // "booking.confirmed"
	SessionID   string    `json:"session_id"`
	BookingID   string    `json:"booking_id"`
	ServiceID   string    `json:"service_id"`
	ServiceName string    `json:"service_name"`
	Date        string    `json:"date"`
	TimeSlot    string    `json:"time_slot"`
	Price       float64   `json:"price"`
	Timestamp   time.Time `json:"timestamp"`
}
