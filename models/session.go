package models

import "time"

// Session is all the ephemeral state held for one client tab: the cart, the
// booking flow, the viewer's blog overlays and the mock auth state. Nothing in
// here survives the session TTL.
type Session struct {
	ID         string          `json:"id"`
	Cart       Cart            `json:"cart"`
	Booking    BookingState    `json:"booking"`
	LikedPosts map[string]bool `json:"liked_posts"`
	SavedPosts map[string]bool `json:"saved_posts"`
	User       *UserProfile    `json:"user,omitempty"`
	Registered *RegisteredUser `json:"registered,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewSession creates a fresh session with the seeded cart and an idle booking
// defaulting to today's date.
func NewSession(id string, seed []CartItem, now time.Time) *Session {
	items := make([]CartItem, len(seed))
	copy(items, seed)
	return &Session{
		ID:   id,
		Cart: Cart{Items: items, UpdatedAt: now},
		Booking: BookingState{
			Date:  now.Format(BookingDateLayout),
			Phase: PhaseIdle,
		},
		LikedPosts: make(map[string]bool),
		SavedPosts: make(map[string]bool),
		UpdatedAt:  now,
	}
}
