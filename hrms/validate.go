/*
validate.go - Field-level invariants for employee and attendance records

PURPOSE:
  Pure validation functions invoked before any store mutation. Each
  returns nil or a ValidationError wrapping ErrInvalidFormat (malformed)
  or ErrInvalidValue (well-formed but outside the allowed domain).
  No validator has side effects; a failed validation never leaves
  partial state.

SEE ALSO:
  - errors.go: Error taxonomy
  - directory.go, ledger.go: Call sites
*/
package hrms

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidatePhone accepts exactly 10 ASCII digits.
func ValidatePhone(s string) error {
	if !phonePattern.MatchString(s) {
		return invalidFormat("phone", "phone number must be exactly 10 digits")
	}
	return nil
}

// ValidateFullName accepts names of trimmed length >= 2.
func ValidateFullName(s string) error {
	if utf8.RuneCountInString(strings.TrimSpace(s)) < 2 {
		return invalidFormat("full_name", "full name must be at least 2 characters")
	}
	return nil
}

// ValidateEmail accepts syntactically plausible addresses.
func ValidateEmail(s string) error {
	if !emailPattern.MatchString(s) {
		return invalidFormat("email", "invalid email address")
	}
	return nil
}

// ValidateDepartment accepts members of the canonical department set.
func ValidateDepartment(s string) error {
	for _, d := range departments {
		if s == d {
			return nil
		}
	}
	return invalidValue("department", "invalid department: "+s)
}

// ValidateStatus accepts Present or Absent.
func ValidateStatus(s string) error {
	if Status(s) != StatusPresent && Status(s) != StatusAbsent {
		return invalidValue("status", `status must be either "Present" or "Absent"`)
	}
	return nil
}

// ValidateDateNotFuture rejects dates strictly after today (server local
// date).
func ValidateDateNotFuture(d Date) error {
	if d.After(Today()) {
		return invalidValue("date", "date cannot be in the future")
	}
	return nil
}
