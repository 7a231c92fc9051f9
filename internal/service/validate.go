package service

import (
	"errors"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation and business errors. Handlers translate these to status codes
// with errors.Is; the message text is the user-facing error body.
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordNoLetter   = errors.New("password must contain at least one letter")
	ErrPasswordNoDigit    = errors.New("password must contain at least one number")
	ErrPasswordTooLong    = errors.New("password must be at most 72 characters")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrMissingTitle       = errors.New("TODO title is required")
	ErrTitleTooLong       = errors.New("title too long")
)

const (
	maxTitleLen = 100
	// bcrypt only hashes the first 72 bytes and rejects anything longer, so
	// the limit is enforced here as a validation rule instead of surfacing
	// bcrypt's error as a 500.
	maxPasswordBytes = 72
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	letterRegex = regexp.MustCompile(`[A-Za-z]`)
	digitRegex  = regexp.MustCompile(`[0-9]`)
)

// normalizeEmail is the uniqueness and lookup key: trimmed, lowercased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// validatePassword checks the rules in fixed order: length, letter presence,
// digit presence, then the bcrypt byte ceiling. The first violated rule is
// the one reported. The minimum counts characters, not bytes.
func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < 8 {
		return ErrPasswordTooShort
	}
	if !letterRegex.MatchString(password) {
		return ErrPasswordNoLetter
	}
	if !digitRegex.MatchString(password) {
		return ErrPasswordNoDigit
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// sanitizeTitle trims and HTML-escapes a raw title so markup is stored inert.
// The length limit applies to the escaped text, since escaping grows it
// (e.g. "<" becomes "&lt;").
func sanitizeTitle(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrMissingTitle
	}
	title := html.EscapeString(trimmed)
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "", ErrTitleTooLong
	}
	return title, nil
}

// IsValidationError reports whether err is a 400-class input error.
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrMissingCredentials),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrPasswordTooShort),
		errors.Is(err, ErrPasswordNoLetter),
		errors.Is(err, ErrPasswordNoDigit),
		errors.Is(err, ErrPasswordTooLong),
		errors.Is(err, ErrMissingTitle),
		errors.Is(err, ErrTitleTooLong):
		return true
	}
	return false
}
