package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/nutriblendai/nutriblend-backend/internal/domain"
)

// TokenManager mints and verifies the three token kinds. Each kind is signed
// with its own secret: an access token can never pass the refresh or reset
// verifier and vice versa.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	resetSecret   []byte

	accessTokenExpiry  time.Duration
	refreshTokenExpiry time.Duration
	resetTokenExpiry   time.Duration
}

// NewTokenManager creates a new token manager
func NewTokenManager(accessSecret, refreshSecret, resetSecret string,
	accessExpiry, refreshExpiry, resetExpiry time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:       []byte(accessSecret),
		refreshSecret:      []byte(refreshSecret),
		resetSecret:        []byte(resetSecret),
		accessTokenExpiry:  accessExpiry,
		refreshTokenExpiry: refreshExpiry,
		resetTokenExpiry:   resetExpiry,
	}
}

// GenerateAccessToken generates a short-lived stateless access token
func (t *TokenManager) GenerateAccessToken(userID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     now.Add(t.accessTokenExpiry).Unix(),
		"iat":     now.Unix(),
	})

	tokenString, err := token.SignedString(t.accessSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// GenerateRefreshToken generates a refresh token; the caller persists its
// hash together with the expiry returned here
func (t *TokenManager) GenerateRefreshToken(userID string) (token string, expiresAt time.Time, err error) {
	now := time.Now()
	expiresAt = now.Add(t.refreshTokenExpiry)

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAt.Unix(),
		"iat":     now.Unix(),
		"type":    "refresh",
		"jti":     uuid.New().String(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.refreshSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return signed, expiresAt, nil
}

// GenerateResetToken generates a single-purpose password reset token
func (t *TokenManager) GenerateResetToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(t.resetTokenExpiry).Unix(),
		"iat":     now.Unix(),
		"type":    "reset",
	})

	tokenString, err := token.SignedString(t.resetSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign reset token: %w", err)
	}

	return tokenString, nil
}

// ValidateAccessToken validates an access token and returns its claims.
// Signature and expiry only; no store lookup.
func (t *TokenManager) ValidateAccessToken(tokenString string) (*domain.TokenClaims, error) {
	claims, err := t.parse(tokenString, t.accessSecret)
	if err != nil {
		return nil, err
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid user_id in token")
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid email in token")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid exp in token")
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid iat in token")
	}

	return &domain.TokenClaims{
		UserID: userID,
		Email:  email,
		Exp:    int64(exp),
		Iat:    int64(iat),
	}, nil
}

// ValidateRefreshToken validates a refresh token and returns the user ID.
// Expired tokens surface jwt.ErrTokenExpired so the caller can revoke the
// stored record as a side effect.
func (t *TokenManager) ValidateRefreshToken(tokenString string) (string, error) {
	return t.validateTyped(tokenString, t.refreshSecret, "refresh")
}

// ValidateResetToken validates a password reset token and returns the user ID
func (t *TokenManager) ValidateResetToken(tokenString string) (string, error) {
	return t.validateTyped(tokenString, t.resetSecret, "reset")
}

// GetAccessTokenExpiry returns the access token expiry duration in seconds
func (t *TokenManager) GetAccessTokenExpiry() int {
	return int(t.accessTokenExpiry.Seconds())
}

func (t *TokenManager) validateTyped(tokenString string, secret []byte, kind string) (string, error) {
	claims, err := t.parse(tokenString, secret)
	if err != nil {
		return "", err
	}

	if claims["type"] != kind {
		return "", fmt.Errorf("invalid token type")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", fmt.Errorf("invalid user_id in token")
	}

	return userID, nil
}

func (t *TokenManager) parse(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
