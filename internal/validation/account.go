// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
)

var (
	handleRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ValidateHandle checks if a handle meets requirements
func ValidateHandle(handle string) error {
	if len(handle) < 3 {
		return fmt.Errorf("handle must be at least 3 characters long")
	}

	if len(handle) > 30 {
		return fmt.Errorf("handle must not exceed 30 characters")
	}

	// Only allow alphanumeric, underscores and hyphens
	if !handleRegex.MatchString(handle) {
		return fmt.Errorf("handle can only contain letters, numbers, underscores, and hyphens")
	}

	// Cannot start or end with underscore/hyphen
	if handle[0] == '_' || handle[0] == '-' || handle[len(handle)-1] == '_' || handle[len(handle)-1] == '-' {
		return fmt.Errorf("handle cannot start or end with underscore or hyphen")
	}

	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	return nil
}

// ValidatePassword checks if a password meets the minimum requirements.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}

	// Prevent unreasonable inputs (bcrypt also caps input length)
	if len(password) > 72 {
		return fmt.Errorf("password must not exceed 72 characters")
	}

	return nil
}
