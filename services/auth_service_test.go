package services_test

import (
	"context"
	"testing"
	"time"

	"studio-service/database"
	"studio-service/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService() *services.AuthService {
	store := database.NewMemorySessionStore(time.Minute)
	tokens := services.NewTokenService("test-secret")
	return services.NewAuthService(store, tokens, zap.NewNop())
}

func TestValidate(t *testing.T) {
	t.Run("empty login form", func(t *testing.T) {
		errs := services.Validate(services.ModeLogin, services.AuthFields{})
		assert.Equal(t, "Email is required", errs["email"])
		assert.Equal(t, "Password is required", errs["password"])
		assert.NotContains(t, errs, "name")
	})

	t.Run("malformed email and short password", func(t *testing.T) {
		errs := services.Validate(services.ModeLogin, services.AuthFields{
			Email: "bad", Password: "123",
		})
		assert.Equal(t, "Email is invalid", errs["email"])
		assert.Equal(t, "Password must be at least 6 characters", errs["password"])
	})

	t.Run("register requires a name", func(t *testing.T) {
		errs := services.Validate(services.ModeRegister, services.AuthFields{
			Email: "a@b.com", Password: "abcdef",
		})
		assert.Equal(t, "Name is required", errs["name"])
		assert.Len(t, errs, 1)
	})

	t.Run("well-formed input passes", func(t *testing.T) {
		errs := services.Validate(services.ModeRegister, services.AuthFields{
			Name: "Priya", Email: "a@b.com", Password: "abcdef",
		})
		assert.Empty(t, errs)
	})
}

func TestLoginFabricatesProfile(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	res, serr := svc.Login(ctx, "tab-1", "jane@example.com", "whatever-works")
	require.Nil(t, serr)
	assert.Equal(t, "John Doe", res.Profile.Name)
	assert.Equal(t, "jane@example.com", res.Profile.Email)
	assert.NotEmpty(t, res.Token)

	me, serr := svc.Me(ctx, "tab-1")
	require.Nil(t, serr)
	assert.Equal(t, res.Profile, me)
}

func TestLoginRejectsBadShape(t *testing.T) {
	svc := newAuthService()

	_, serr := svc.Login(context.Background(), "tab-1", "not-an-email", "123")
	require.NotNil(t, serr)
	assert.Equal(t, 422, serr.StatusCode)
	assert.Equal(t, "Email is invalid", serr.Fields["email"])
	assert.Equal(t, "Password must be at least 6 characters", serr.Fields["password"])
}

func TestRegisterThenLoginKeepsName(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	res, serr := svc.Register(ctx, "tab-1", "Priya Sharma", "priya@example.com", "secret1")
	require.Nil(t, serr)
	assert.Equal(t, "Priya Sharma", res.Profile.Name)

	require.Nil(t, svc.Logout(ctx, "tab-1"))

	_, serr = svc.Me(ctx, "tab-1")
	require.NotNil(t, serr)
	assert.Equal(t, 401, serr.StatusCode)

	// logging back in with the registered email restores the registered name
	res, serr = svc.Login(ctx, "tab-1", "priya@example.com", "secret1")
	require.Nil(t, serr)
	assert.Equal(t, "Priya Sharma", res.Profile.Name)

	// a different email still gets the demo record
	res, serr = svc.Login(ctx, "tab-1", "other@example.com", "secret1")
	require.Nil(t, serr)
	assert.Equal(t, "John Doe", res.Profile.Name)
}

func TestRegistrationIsSessionScoped(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, serr := svc.Register(ctx, "tab-a", "Priya Sharma", "priya@example.com", "secret1")
	require.Nil(t, serr)

	res, serr := svc.Login(ctx, "tab-b", "priya@example.com", "secret1")
	require.Nil(t, serr)
	assert.Equal(t, "John Doe", res.Profile.Name)
}

func TestMeRequiresLogin(t *testing.T) {
	svc := newAuthService()

	_, serr := svc.Me(context.Background(), "tab-1")
	require.NotNil(t, serr)
	assert.Equal(t, 401, serr.StatusCode)
	assert.Equal(t, "Not logged in", serr.Message)
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := services.NewTokenService("test-secret")

	token, err := tokens.GenerateToken("tab-1", "jane@example.com")
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, "tab-1", claims["sub"])

	_, err = services.NewTokenService("other-secret").ValidateToken(token)
	assert.Error(t, err)
}
