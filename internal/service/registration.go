package service

import (
	"fmt"

	"nullbyte/account-api/internal/model"
	"nullbyte/account-api/internal/store"
	"nullbyte/account-api/pkg/security"
	"nullbyte/account-api/pkg/validators"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// ConflictError is returned when a registration would violate the
// uniqueness of username or email. Field is empty when the insert
// itself tripped the constraint and the offending column is unknown.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	switch e.Field {
	case "email":
		return "Email already exists"
	case "usr":
		return "Username already exists"
	default:
		return "Username or email already exists"
	}
}

type RegisterInput struct {
	Username        string
	Password        string
	ConfirmPassword string
	FirstName       *string
	LastName        *string
	Email           string
}

// Registration runs the provisioning pipeline: validate, check
// uniqueness, hash the password, insert the row together with its
// verification token, then hand the verification link to the mailer.
type Registration struct {
	Store  *store.AccountStore
	Argon  *security.ArgonHash
	Mailer Mailer
}

func NewRegistration(s *store.AccountStore, a *security.ArgonHash, m Mailer) *Registration {
	return &Registration{
		Store:  s,
		Argon:  a,
		Mailer: m,
	}
}

// Register provisions a new unverified account and returns its ID.
// Any failure halts the pipeline immediately; nothing is retried and
// no partial state survives into the next attempt.
func (r *Registration) Register(in *RegisterInput) (string, error) {
	if err := r.validate(in); err != nil {
		return "", err
	}

	emailExists, usernameExists, err := r.Store.ExistsByEmailOrUsername(in.Email, in.Username)
	if err != nil {
		return "", fmt.Errorf("failed to check if email or username exists, %w", err)
	}

	if emailExists {
		return "", &ConflictError{Field: "email"}
	}

	if usernameExists {
		return "", &ConflictError{Field: "usr"}
	}

	hash, err := r.Argon.GenerateFromPassword(in.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password, %w", err)
	}

	verifToken, err := security.MakeVerificationToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate verification token, %w", err)
	}

	u := &model.User{
		ID:                uuid.NewString(),
		Username:          in.Username,
		PasswordHash:      hash,
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Email:             in.Email,
		VerificationToken: &verifToken,
	}

	if err := r.Store.Insert(u); err != nil {
		if err == store.ErrDuplicate {
			// The pre-check raced against a concurrent registration
			// and the unique constraint caught it
			return "", &ConflictError{}
		}

		return "", fmt.Errorf("failed to insert user, %w", err)
	}

	// The account is committed at this point. A mail failure leaves it
	// unverified rather than rolling it back.
	if err := r.Mailer.SendVerificationMail(in.Email, verifyLink(verifToken)); err != nil {
		zap.L().Error("Failed to send verification email",
			zap.Error(err),
			zap.String("userID", u.ID),
		)
	}

	return u.ID, nil
}

// Validation mirrors the request field order. The first failure wins,
// the rest are never evaluated.
func (r *Registration) validate(in *RegisterInput) error {
	if err := validators.UsernameValidator(in.Username); err != nil {
		return err
	}

	if err := validators.PasswordValidator(in.Password, in.ConfirmPassword); err != nil {
		return err
	}

	if in.FirstName != nil {
		if err := validators.NameValidator("fname", "First name", *in.FirstName); err != nil {
			return err
		}
	}

	if in.LastName != nil {
		if err := validators.NameValidator("lname", "Last name", *in.LastName); err != nil {
			return err
		}
	}

	return validators.EmailValidator(in.Email)
}

func verifyLink(token string) string {
	scheme := "http"
	if viper.GetBool("host.ssl.enabled") {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/api/v1/verify_email?token=%s",
		scheme, viper.GetString("host.domain"), token)
}
