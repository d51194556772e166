package service

import (
	"context"
	"fmt"

	"github.com/nutriblendai/nutriblend-backend/internal/domain"
)

// AuthResult carries a freshly issued token pair and the owning user
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int // access token expiry in seconds
	User         *domain.User
}

// issueTokenPair mints an access and refresh token and persists the refresh
// token's hash with its expiry.
func (s *authService) issueTokenPair(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.tokenManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, expiresAt, err := s.tokenManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	record := &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: expiresAt,
	}

	if err := s.tokenRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.tokenManager.GetAccessTokenExpiry(),
		User:         user,
	}, nil
}
