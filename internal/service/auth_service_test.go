package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nutriblendai/nutriblend-backend/internal/dto"
	"github.com/nutriblendai/nutriblend-backend/internal/utils"
)

func newTestAuthService() (AuthService, *fakeUserRepo, *fakeTokenRepo, *fakeBlacklist) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	blacklist := newFakeBlacklist()

	tokenManager := utils.NewTokenManager(
		"access-secret-key-that-is-at-least-32-chars",
		"refresh-secret-key-that-is-at-least-32-chars",
		"reset-secret-key-that-is-at-least-32-chars!",
		15*time.Minute,
		7*24*time.Hour,
		time.Hour,
	)

	svc := NewAuthService(userRepo, tokenRepo, tokenManager, blacklist, bcrypt.MinCost, 7*24*time.Hour)
	return svc, userRepo, tokenRepo, blacklist
}

func registerTestUser(t *testing.T, svc AuthService) *AuthResult {
	t.Helper()

	result, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "user@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return result
}

func TestRegister(t *testing.T) {
	svc, _, tokenRepo, _ := newTestAuthService()

	result := registerTestUser(t, svc)

	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, int((15 * time.Minute).Seconds()), result.ExpiresIn)
	assert.Equal(t, "user@example.com", result.User.Email)
	assert.Equal(t, 1, tokenRepo.count())

	// The password hash never equals the raw password and never leaks via
	// the claims embedded in either token.
	assert.NotEqual(t, "password123", result.User.PasswordHash)
	assert.NotContains(t, result.AccessToken, "password123")
	assert.NotContains(t, result.RefreshToken, "password123")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "User@Example.com",
		Password: "password456",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "not-an-email",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "user@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestLogin(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	registerTestUser(t, svc)

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginFailuresAreUniform(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	registerTestUser(t, svc)

	_, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	_, errWrong := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestRefreshRotatesTokens(t *testing.T) {
	svc, _, tokenRepo, _ := newTestAuthService()
	first := registerTestUser(t, svc)

	second, err := svc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.NotEmpty(t, second.AccessToken)
	// The consumed record was replaced by the new one.
	assert.Equal(t, 1, tokenRepo.count())
}

// A refresh token succeeds at most once; the second use finds the record
// consumed and fails as invalid.
func TestRefreshTokenSingleUse(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	first := registerTestUser(t, svc)

	_, err := svc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), first.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshGarbageToken(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshAccessTokenRejected(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	result := registerTestUser(t, svc)

	_, err := svc.Refresh(context.Background(), result.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _, tokenRepo, blacklist := newTestAuthService()
	result := registerTestUser(t, svc)

	require.NoError(t, svc.Logout(context.Background(), result.RefreshToken))
	assert.Equal(t, 0, tokenRepo.count())

	blacklisted, err := blacklist.IsTokenBlacklisted(context.Background(), result.RefreshToken)
	require.NoError(t, err)
	assert.True(t, blacklisted)

	_, err = svc.Refresh(context.Background(), result.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutUnknownTokenIsIdempotent(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	assert.NoError(t, svc.Logout(context.Background(), "never-issued"))
}

// Logout does not invalidate outstanding access tokens; they age out on
// their own expiry.
func TestAccessTokenSurvivesLogout(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	result := registerTestUser(t, svc)

	require.NoError(t, svc.Logout(context.Background(), result.RefreshToken))

	claims, err := svc.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	registerTestUser(t, svc)

	resetToken, err := svc.RequestPasswordReset(context.Background(), "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, resetToken)

	require.NoError(t, svc.ResetPassword(context.Background(), resetToken, "newpassword456"))

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "newpassword456",
	})
	assert.NoError(t, err)
}

// Unknown emails produce no error and no token, so the handler response is
// identical either way.
func TestPasswordResetUnknownEmail(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	resetToken, err := svc.RequestPasswordReset(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Empty(t, resetToken)
}

func TestResetPasswordRejectsWrongTokenKind(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	result := registerTestUser(t, svc)

	err := svc.ResetPassword(context.Background(), result.RefreshToken, "newpassword456")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetUser(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	result := registerTestUser(t, svc)

	user, err := svc.GetUser(context.Background(), result.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)

	_, err = svc.GetUser(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
