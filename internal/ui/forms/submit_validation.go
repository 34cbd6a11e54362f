// Package forms validates and submits the public contact form.
package forms

import (
	"errors"
	"regexp"
	"strings"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

var (
	ErrMissingFields = errors.New("Please fill in all required fields.")
	ErrInvalidEmail  = errors.New("Please enter a valid email address.")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateContact checks that every field is filled in and that the email
// address is plausible.
func ValidateContact(sub model.ContactSubmission) error {
	if strings.TrimSpace(sub.Name) == "" ||
		strings.TrimSpace(sub.Email) == "" ||
		strings.TrimSpace(sub.Subject) == "" ||
		strings.TrimSpace(sub.Message) == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(strings.TrimSpace(sub.Email)) {
		return ErrInvalidEmail
	}
	return nil
}

// Trimmed returns sub with surrounding whitespace removed from every field.
func Trimmed(sub model.ContactSubmission) model.ContactSubmission {
	return model.ContactSubmission{
		Name:    strings.TrimSpace(sub.Name),
		Email:   strings.TrimSpace(sub.Email),
		Subject: strings.TrimSpace(sub.Subject),
		Message: strings.TrimSpace(sub.Message),
	}
}
