package service

import "errors"

// Service-level failures; handlers map these onto the HTTP error taxonomy.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two are indistinguishable from outside.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailExists is returned on duplicate registration
	ErrEmailExists = errors.New("user already exists")

	// ErrInvalidEmail is returned for malformed email addresses
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when a password fails the policy
	ErrWeakPassword = errors.New("password must be at least 8 characters long")

	// ErrInvalidToken is returned for tokens that fail verification or were
	// already consumed/revoked
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned for refresh tokens past their expiry
	ErrExpiredToken = errors.New("token expired")

	// ErrUserNotFound is returned when a token references a missing user
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidDate is returned for calendar dates not in YYYY-MM-DD form
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")

	// ErrNoActiveGoal is returned when goal-dependent analytics have no goal
	// to work against
	ErrNoActiveGoal = errors.New("no active goal found")

	// ErrAnalysisRefused is returned when the vision model declines to
	// analyze the image
	ErrAnalysisRefused = errors.New("analysis refused by model")

	// ErrAnalysisMalformed is returned when the model's output cannot be
	// parsed into a macro estimate
	ErrAnalysisMalformed = errors.New("malformed analysis response")

	// ErrUpstreamUnavailable is returned when the vision API call itself fails
	ErrUpstreamUnavailable = errors.New("analysis upstream unavailable")
)
