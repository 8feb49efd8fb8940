package models

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinMessageLength is the shortest accepted contact message, in characters.
const MinMessageLength = 10

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrMessageTooShort = errors.New("message too short (minimum 10 characters)")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactSubmission is a contact form post. Honeypot is a hidden field that
// humans leave empty.
type ContactSubmission struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Honeypot string `json:"honeypot"`
}

// IsSpam reports whether the honeypot field was filled in.
func (c ContactSubmission) IsSpam() bool {
	return strings.TrimSpace(c.Honeypot) != ""
}

// Validate checks required fields, email shape and message length.
func (c ContactSubmission) Validate() error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" || strings.TrimSpace(c.Message) == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(c.Email) {
		return ErrInvalidEmail
	}
	if utf8.RuneCountInString(strings.TrimSpace(c.Message)) < MinMessageLength {
		return ErrMessageTooShort
	}
	return nil
}
