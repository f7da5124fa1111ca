package validators

import (
	"fmt"
	"regexp"
)

var nameValidChars = regexp.MustCompile(`^[a-zA-ZàáâäãåąčćęèéêëėįìíîïłńòóôöõøùúûüųūÿýżźñçčšžÀÁÂÄÃÅĄĆČĖĘÈÉÊËÌÍÎÏĮŁŃÒÓÔÖÕØÙÚÛÜŲŪŸÝŻŹÑßÇŒÆČŠŽ∂ð ,.'-]+$`)

// NameValidator checks an optional first or last name. The label names
// the field in the client-facing message, e.g. "First name".
func NameValidator(field, label, name string) error {
	if len(name) < 2 || len(name) > 255 {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between 2 and 255 characters", label),
		}
	}

	if !nameValidChars.MatchString(name) {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s contains invalid characters", label),
		}
	}

	return nil
}
