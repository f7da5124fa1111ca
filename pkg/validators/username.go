package validators

import "regexp"

// Compiled once at startup and shared read-only between requests
var (
	usernameStart       = regexp.MustCompile(`^[a-z]`)
	usernameValidChars  = regexp.MustCompile(`^[a-z0-9_.-]+$`)
	usernameConsecutive = regexp.MustCompile(`[_.-]{2,}`)
	usernameEndsSpecial = regexp.MustCompile(`[_.-]$`)
)

func UsernameValidator(u string) error {
	if len(u) < 6 || len(u) > 30 {
		return &ValidationError{
			Field:   "usr",
			Message: "Username must be between 6 and 30 characters",
		}
	}

	if !usernameStart.MatchString(u) ||
		!usernameValidChars.MatchString(u) ||
		usernameConsecutive.MatchString(u) ||
		usernameEndsSpecial.MatchString(u) {
		return &ValidationError{
			Field:   "usr",
			Message: "Username must start with a letter and contain only letters, numbers, and the characters: ._-",
		}
	}

	return nil
}
