// Package validation holds the server-side checks for the public
// submission forms. The checks are pure: they normalize the input and
// report every failing field, leaving persistence to the caller.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Failure reasons reported in FieldError.Reason.
const (
	MissingField    = "MissingField"
	NameTooShort    = "NameTooShort"
	NameTooLong     = "NameTooLong"
	MessageTooShort = "MessageTooShort"
	MessageTooLong  = "MessageTooLong"
	FieldTooLong    = "FieldTooLong"
	InvalidEmail    = "InvalidEmail"
)

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// Prayer request limits. The original site only enforced these through
// form attributes, so they are duplicated here explicitly.
const (
	prayerNameMin    = 2
	prayerNameMax    = 100
	prayerMessageMin = 10
	prayerMessageMax = 500
)

// Contact form limits.
const (
	contactMessageMin = 10
	contactMessageMax = 2000
	contactFieldMax   = 255
)

// PrayerSubmission validates and normalizes a prayer request
// submission. It returns the trimmed name and message together with all
// field errors found; the pair is only usable when the slice is empty.
// Lengths are counted in characters, not bytes, so multibyte names and
// messages are bounded the same way ASCII ones are.
func PrayerSubmission(name, message string) (string, string, []FieldError) {
	var errs []FieldError

	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)

	switch nameLen := utf8.RuneCountInString(name); {
	case name == "":
		errs = append(errs, FieldError{"name", MissingField, "Name is required."})
	case nameLen < prayerNameMin:
		errs = append(errs, FieldError{"name", NameTooShort, "Name must be at least 2 characters."})
	case nameLen > prayerNameMax:
		errs = append(errs, FieldError{"name", NameTooLong, "Name must be at most 100 characters."})
	}

	switch messageLen := utf8.RuneCountInString(message); {
	case message == "":
		errs = append(errs, FieldError{"message", MissingField, "Message is required."})
	case messageLen < prayerMessageMin:
		errs = append(errs, FieldError{"message", MessageTooShort, "Message must be at least 10 characters."})
	case messageLen > prayerMessageMax:
		errs = append(errs, FieldError{"message", MessageTooLong, "Message must be at most 500 characters."})
	}

	return name, message, errs
}

// ContactSubmission validates and normalizes a contact form submission.
func ContactSubmission(name, email, subject, message string) (string, string, string, string, []FieldError) {
	var errs []FieldError

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)

	if name == "" {
		errs = append(errs, FieldError{"name", MissingField, "Name is required."})
	} else if utf8.RuneCountInString(name) > contactFieldMax {
		errs = append(errs, FieldError{"name", FieldTooLong, "Name must be at most 255 characters."})
	}

	switch {
	case email == "":
		errs = append(errs, FieldError{"email", MissingField, "Email is required."})
	case utf8.RuneCountInString(email) > contactFieldMax || !emailRegex.MatchString(email):
		errs = append(errs, FieldError{"email", InvalidEmail, "Email address is not valid."})
	}

	if subject == "" {
		errs = append(errs, FieldError{"subject", MissingField, "Subject is required."})
	} else if utf8.RuneCountInString(subject) > contactFieldMax {
		errs = append(errs, FieldError{"subject", FieldTooLong, "Subject must be at most 255 characters."})
	}

	switch messageLen := utf8.RuneCountInString(message); {
	case message == "":
		errs = append(errs, FieldError{"message", MissingField, "Message is required."})
	case messageLen < contactMessageMin:
		errs = append(errs, FieldError{"message", MessageTooShort, "Message must be at least 10 characters."})
	case messageLen > contactMessageMax:
		errs = append(errs, FieldError{"message", MessageTooLong, "Message must be at most 2000 characters."})
	}

	return name, email, subject, message, errs
}
