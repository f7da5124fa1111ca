package validators

import "regexp"

var emailShape = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func EmailValidator(e string) error {
	if len(e) < 6 || len(e) > 320 {
		return &ValidationError{
			Field:   "email",
			Message: "Email must be between 6 and 320 characters",
		}
	}

	if !emailShape.MatchString(e) {
		return &ValidationError{
			Field:   "email",
			Message: "Invalid email",
		}
	}

	return nil
}
