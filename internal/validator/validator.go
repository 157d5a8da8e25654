// Package validator checks raw text input before a record is constructed.
//
// All functions are pure and stateless. They depend on nothing else in the
// module so the shell can run them against user input without touching the
// model or the store.
package validator

import (
	"regexp"
	"strconv"
	"strings"
)

// Roll numbers are letters and digits only, no whitespace or punctuation.
var rollNumberPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// IsValidText reports whether s is non-empty after trimming leading and
// trailing whitespace. Used for free-text fields like name and course.
func IsValidText(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidGrade reports whether g is on the 0-5 grade scale.
func IsValidGrade(g int) bool {
	return g >= 0 && g <= 5
}

// IsValidGradeText reports whether s parses as a base-10 integer that
// satisfies IsValidGrade. Parse failure is a plain false, never an error.
func IsValidGradeText(s string) bool {
	g, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return IsValidGrade(g)
}

// IsValidRollNumber reports whether the trimmed s is non-empty and contains
// only letters and digits.
func IsValidRollNumber(s string) bool {
	if !IsValidText(s) {
		return false
	}
	return rollNumberPattern.MatchString(strings.TrimSpace(s))
}
