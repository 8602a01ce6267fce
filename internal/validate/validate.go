// Package validate holds the per-field form validation shared by
// signup, contact, and checkout.
package validate

import (
	"regexp"
	"sort"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
)

// FieldErrors maps field name to a user-facing message. It implements
// error so services can return it before attempting any mutation.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

func Email(s string) bool {
	return emailRegex.MatchString(s)
}

// Phone accepts exactly 10 digits.
func Phone(s string) bool {
	return phoneRegex.MatchString(s)
}

func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
