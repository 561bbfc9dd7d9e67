package services

import (
	"context"

	"studio-service/database"
	"studio-service/models"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthMode distinguishes the two faces of the auth form.
type AuthMode string

const (
	ModeLogin    AuthMode = "login"
	ModeRegister AuthMode = "register"
)

// AuthFields is the raw form input to validate.
type AuthFields struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is a successful login or registration.
type AuthResult struct {
	Profile models.UserProfile
	Token   string
}

var fieldValidator = validator.New()

// Validate checks the form shape: register requires a name, email must look
// like an address, password must be at least 6 characters. Returns one
// message per failing field; an empty map signals success. No credential is
// ever checked against a store.
func Validate(mode AuthMode, fields AuthFields) map[string]string {
	errs := make(map[string]string)

	if mode == ModeRegister && fields.Name == "" {
		errs["name"] = "Name is required"
	}

	if fields.Email == "" {
		errs["email"] = "Email is required"
	} else if fieldValidator.Var(fields.Email, "email") != nil {
		errs["email"] = "Email is invalid"
	}

	if fields.Password == "" {
		errs["password"] = "Password is required"
	} else if len(fields.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	return errs
}

// AuthService is the mock auth flow: shape validation, then a fabricated
// profile. Registration keeps a bcrypt-hashed account in session scope so a
// later login in the same session gets the registered name back; nothing is
// durable.
type AuthService struct {
	store  database.SessionStore
	tokens *TokenService
	logger *zap.Logger
}

func NewAuthService(store database.SessionStore, tokens *TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{store: store, tokens: tokens, logger: logger}
}

// Login signs the session in. The profile is the session's registered user
// when one exists for the email, otherwise the fixed demo record.
func (s *AuthService) Login(ctx context.Context, sessionID, email, password string) (AuthResult, *ServiceError) {
	if errs := Validate(ModeLogin, AuthFields{Email: email, Password: password}); len(errs) > 0 {
		return AuthResult{}, &ServiceError{StatusCode: 422, Message: "Validation failed", Fields: errs}
	}

	token, err := s.tokens.GenerateToken(sessionID, email)
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return AuthResult{}, &ServiceError{StatusCode: 500, Message: "Failed to generate token"}
	}

	var profile models.UserProfile
	serr := mutateSession(ctx, s.store, sessionID, func(session *models.Session) *ServiceError {
		profile = models.UserProfile{Name: "John Doe", Email: email}
		if session.Registered != nil && session.Registered.Email == email {
			profile.Name = session.Registered.Name
		}
		session.User = &profile
		return nil
	})
	if serr != nil {
		return AuthResult{}, serr
	}

	s.logger.Info("User logged in", zap.String("session_id", sessionID), zap.String("email", email))
	return AuthResult{Profile: profile, Token: token}, nil
}

// Register creates a session-scoped account and signs the session in.
func (s *AuthService) Register(ctx context.Context, sessionID, name, email, password string) (AuthResult, *ServiceError) {
	if errs := Validate(ModeRegister, AuthFields{Name: name, Email: email, Password: password}); len(errs) > 0 {
		return AuthResult{}, &ServiceError{StatusCode: 422, Message: "Validation failed", Fields: errs}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, &ServiceError{StatusCode: 500, Message: "Failed to hash password"}
	}

	token, err := s.tokens.GenerateToken(sessionID, email)
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return AuthResult{}, &ServiceError{StatusCode: 500, Message: "Failed to generate token"}
	}

	profile := models.UserProfile{Name: name, Email: email}
	serr := mutateSession(ctx, s.store, sessionID, func(session *models.Session) *ServiceError {
		session.Registered = &models.RegisteredUser{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
		}
		session.User = &profile
		return nil
	})
	if serr != nil {
		return AuthResult{}, serr
	}

	s.logger.Info("User registered", zap.String("session_id", sessionID), zap.String("email", email))
	return AuthResult{Profile: profile, Token: token}, nil
}

// Logout clears the signed-in profile. The registered account, if any, stays
// with the session so the user can sign back in.
func (s *AuthService) Logout(ctx context.Context, sessionID string) *ServiceError {
	return mutateSession(ctx, s.store, sessionID, func(session *models.Session) *ServiceError {
		session.User = nil
		return nil
	})
}

// Me returns the signed-in profile, or 401 when the session is anonymous.
func (s *AuthService) Me(ctx context.Context, sessionID string) (models.UserProfile, *ServiceError) {
	session, serr := loadOrCreate(ctx, s.store, sessionID)
	if serr != nil {
		return models.UserProfile{}, serr
	}
	if session.User == nil {
		return models.UserProfile{}, &ServiceError{StatusCode: 401, Message: "Not logged in"}
	}
	return *session.User, nil
}
