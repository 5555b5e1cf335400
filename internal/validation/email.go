package validation

import (
	"errors"
	"net/mail"
)

// ValidateEmail checks an address taken from an activity event or a bearer
// token before an unlock email is sent to it.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email address is required")
	}

	// RFC 5321 total length limit
	if len(email) > 254 {
		return errors.New("email address is too long (max 254 characters)")
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return errors.New("invalid email address format")
	}

	return nil
}
