package utils

import (
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates an email address
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePassword validates a password. Minimum 8 characters.
func ValidatePassword(password string) bool {
	return len(password) >= 8
}

// SanitizeEmail sanitizes an email address
func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateDate reports whether s is a calendar date in YYYY-MM-DD form
func ValidateDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// FormatDate renders t as a YYYY-MM-DD calendar date string
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate parses a YYYY-MM-DD calendar date string
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// Today returns the current calendar date string
func Today() string {
	return FormatDate(time.Now())
}
