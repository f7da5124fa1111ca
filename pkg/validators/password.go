package validators

func PasswordValidator(pwd, confirm string) error {
	if len(pwd) < 8 {
		return &ValidationError{
			Field:   "pwd",
			Message: "Password must be at least 8 characters",
		}
	}

	if pwd != confirm {
		return &ValidationError{
			Field:   "cpwd",
			Message: "Passwords do not match",
		}
	}

	return nil
}
