// Package validate holds the input format checks shared by the
// registration and purchase prompts.
package validate

import (
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var (
	emailRe   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	mobileRe  = regexp.MustCompile(`^[0-9]{10}$`)
	pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)
	digitRe   = regexp.MustCompile(`[0-9]`)
)

// Email reports whether the string looks like an email address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Mobile requires exactly 10 digits.
func Mobile(s string) bool {
	return mobileRe.MatchString(s)
}

// Pincode requires exactly 6 digits.
func Pincode(s string) bool {
	return pincodeRe.MatchString(s)
}

// Password requires a minimum of 6 characters.
func Password(s string) bool {
	return len(s) >= 6
}

// PlaceName rejects empty strings and strings containing digits; used for
// city and state entries in addresses.
func PlaceName(s string) bool {
	return s != "" && !digitRe.MatchString(s)
}

// Date parses a YYYY-MM-DD calendar date.
func Date(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
