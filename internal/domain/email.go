package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// lowercase local part, lowercase domain, 2-4 letter top-level label
var emailRegex = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,4}$`)

// ValidateEmail trims the raw value and checks it against the email pattern.
// Returns the trimmed email or ErrInvalidEmail.
func ValidateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if !emailRegex.MatchString(email) {
		return "", fmt.Errorf("%w: invalid email value", ErrValidation)
	}
	return email, nil
}
