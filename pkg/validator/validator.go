package validator

import (
	"fmt"
	"regexp"
)

const (
	minEmailLength = 3
	maxEmailLength = 255

	errEmailEmptyFmt   = "email cannot be empty"
	errEmailLengthFmt  = "email must be between %d and %d characters"
	errEmailInvalidFmt = "invalid email format"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email rejects strings that cannot be a mailbox address. Emails are the
// unique key for users and shops, so malformed ones never reach the
// store.
func Email(email string) error {
	if email == "" {
		return fmt.Errorf(errEmailEmptyFmt)
	}

	if len(email) < minEmailLength || len(email) > maxEmailLength {
		return fmt.Errorf(errEmailLengthFmt, minEmailLength, maxEmailLength)
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf(errEmailInvalidFmt)
	}

	return nil
}
