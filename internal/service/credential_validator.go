package service

import (
	"regexp"
	"strings"
	"unicode"

	"renthub/internal/errors"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CredentialValidator validates registration credentials. Pure functions over
// input strings.
type CredentialValidator struct{}

// NewCredentialValidator creates a new credential validator.
func NewCredentialValidator() *CredentialValidator {
	return &CredentialValidator{}
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// Registration and login both normalize, so case/whitespace round-trips.
func (v *CredentialValidator) NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks the normalized address against the format rule.
func (v *CredentialValidator) ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.ErrInvalidEmail
	}
	return nil
}

// ValidatePassword enforces the strength rule: at least 8 characters with an
// uppercase letter, a lowercase letter and a digit.
func (v *CredentialValidator) ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.ErrWeakPassword
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return errors.ErrWeakPassword
	}
	return nil
}
