package helpers

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperPattern = regexp.MustCompile(`[A-Z]`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

const MinPasswordLength = 6

// ValidEmail: non-empty and shaped like local@domain.tld
func ValidEmail(email string) bool {
	return email != "" && emailPattern.MatchString(email)
}

// ValidPassword: at least 6 chars after trimming, one uppercase letter, one digit.
func ValidPassword(password string) bool {
	p := strings.TrimSpace(password)
	if len(p) < MinPasswordLength {
		return false
	}
	return upperPattern.MatchString(p) && digitPattern.MatchString(p)
}
