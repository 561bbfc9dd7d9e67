package models

// UserProfile is the signed-in identity shown to the client.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisteredUser is a session-scoped account created by the mock register
// flow. The hash exists only so registration behaves like a real account
// would; it dies with the session.
type RegisteredUser struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}
