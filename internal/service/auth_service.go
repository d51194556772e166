package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nutriblendai/nutriblend-backend/internal/domain"
	"github.com/nutriblendai/nutriblend-backend/internal/dto"
	"github.com/nutriblendai/nutriblend-backend/internal/repository"
	"github.com/nutriblendai/nutriblend-backend/internal/utils"
)

// authService implements AuthService interface
type authService struct {
	userRepo     repository.UserRepository
	tokenRepo    repository.TokenRepository
	tokenManager *utils.TokenManager
	blacklist    TokenBlacklist
	bcryptCost   int

	refreshTokenExpiry time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	tokenManager *utils.TokenManager,
	blacklist TokenBlacklist,
	bcryptCost int,
	refreshTokenExpiry time.Duration,
) AuthService {
	return &authService{
		userRepo:           userRepo,
		tokenRepo:          tokenRepo,
		tokenManager:       tokenManager,
		blacklist:          blacklist,
		bcryptCost:         bcryptCost,
		refreshTokenExpiry: refreshTokenExpiry,
	}
}

// Register registers a new user
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*AuthResult, error) {
	if !utils.ValidateEmail(req.Email) {
		return nil, ErrInvalidEmail
	}

	if !utils.ValidatePassword(req.Password) {
		return nil, ErrWeakPassword
	}

	_, err := s.userRepo.GetByEmail(ctx, utils.SanitizeEmail(req.Email))
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        utils.SanitizeEmail(req.Email),
		PasswordHash: passwordHash,
		Name:         req.Name,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueTokenPair(ctx, user)
}

// Login authenticates a user. Unknown email and wrong password produce the
// same error.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, utils.SanitizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokenPair(ctx, user)
}

// Refresh exchanges a refresh token for a new token pair. The stored record
// is consumed atomically before anything is issued, so each refresh token
// succeeds at most once; a concurrent second attempt finds the record gone
// and fails as invalid.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	userID, err := s.tokenManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			// Expired tokens are revoked as a side effect.
			_ = s.tokenRepo.Delete(ctx, hashToken(refreshToken))
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	blacklisted, err := s.blacklist.IsTokenBlacklisted(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	if blacklisted {
		return nil, ErrInvalidToken
	}

	if err := s.tokenRepo.Consume(ctx, hashToken(refreshToken)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to consume token: %w", err)
	}

	// Blacklist is best effort; the store record is already gone.
	_ = s.blacklist.AddToken(ctx, refreshToken, s.refreshTokenExpiry)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return s.issueTokenPair(ctx, user)
}

// Logout revokes the refresh token. Revoking an unknown token is not an
// error.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	_ = s.blacklist.AddToken(ctx, refreshToken, s.refreshTokenExpiry)

	if err := s.tokenRepo.Delete(ctx, hashToken(refreshToken)); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// RequestPasswordReset issues a reset token for an existing account. For an
// unknown email it returns an empty token and no error, so responses cannot
// be used to enumerate accounts.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, utils.SanitizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	resetToken, err := s.tokenManager.GenerateResetToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	return resetToken, nil
}

// ResetPassword overwrites the password hash for the token's user
func (s *authService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	userID, err := s.tokenManager.ValidateResetToken(resetToken)
	if err != nil {
		return ErrInvalidToken
	}

	if !utils.ValidatePassword(newPassword) {
		return ErrWeakPassword
	}

	passwordHash, err := utils.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// GetUser gets user information
func (s *authService) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// ValidateAccessToken validates an access token without consulting any store
func (s *authService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	claims, err := s.tokenManager.ValidateAccessToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// hashToken hashes a token using SHA256 for storage
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
