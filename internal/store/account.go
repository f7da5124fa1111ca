// Package store contains the transactional account operations. All
// uniqueness and single-use guarantees live here, backed by database
// constraints rather than process-level locks, so multiple instances
// can safely share one database.
package store

import (
	"errors"

	"nullbyte/account-api/internal/model"

	"gorm.io/gorm"
)

var (
	// ErrDuplicate means the insert hit the unique constraint on
	// username or email
	ErrDuplicate = errors.New("username or email already taken")

	// ErrTokenNotFound covers both unknown and already-consumed
	// verification tokens. Consumed tokens are cleared on redemption,
	// so the two cases are indistinguishable on purpose.
	ErrTokenNotFound = errors.New("verification token not found")
)

type AccountStore struct {
	db *gorm.DB
}

func NewAccountStore(db *gorm.DB) *AccountStore {
	return &AccountStore{db: db}
}

// ExistsByEmailOrUsername runs both existence checks in a single
// round-trip. The result is advisory only, used to pick a friendly
// error message. The unique constraints checked by Insert remain the
// authoritative guard against races.
func (s *AccountStore) ExistsByEmailOrUsername(email, username string) (emailExists, usernameExists bool, err error) {
	var row struct {
		EmailExists    bool
		UsernameExists bool
	}

	err = s.db.Raw(`
		SELECT
			EXISTS (SELECT 1 FROM users WHERE email = ?) AS email_exists,
			EXISTS (SELECT 1 FROM users WHERE username = ?) AS username_exists`,
		email, username,
	).Scan(&row).Error
	if err != nil {
		return false, false, err
	}

	return row.EmailExists, row.UsernameExists, nil
}

// Insert creates the account row. The verification token travels on the
// same row, so token and account are committed together. A uniqueness
// violation comes back as ErrDuplicate no matter which column tripped it.
func (s *AccountStore) Insert(u *model.User) error {
	if err := s.db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}

		return err
	}

	return nil
}

// RedeemVerificationToken flips the account behind token to verified and
// clears the token in one transaction. Replaying a consumed token
// returns ErrTokenNotFound instead of re-verifying.
func (s *AccountStore) RedeemVerificationToken(token string) (username string, err error) {
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var u model.User

		err := tx.
			Select("id", "username").
			Where("verification_token = ?", token).
			First(&u).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTokenNotFound
			}

			return err
		}

		res := tx.Model(&model.User{}).
			Where("id = ? AND verification_token = ?", u.ID, token).
			Updates(map[string]any{
				"verified":           true,
				"verification_token": nil,
			})
		if res.Error != nil {
			return res.Error
		}

		// A concurrent redemption can consume the token between the
		// read and the update; the re-evaluated WHERE then matches
		// nothing. That loser must miss like any replay.
		if res.RowsAffected == 0 {
			return ErrTokenNotFound
		}

		username = u.Username
		return nil
	})
	if err != nil {
		return "", err
	}

	return username, nil
}

// FindByID returns the account with the given ID, or nil when no such
// account exists. Absence is a valid result here, not an error.
func (s *AccountStore) FindByID(id string) (*model.User, error) {
	var u model.User

	err := s.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &u, nil
}

// FindByLogin looks an account up by username or email, used by the
// login endpoint. Returns nil when neither matches.
func (s *AccountStore) FindByLogin(login string) (*model.User, error) {
	var u model.User

	err := s.db.Where("username = ? OR email = ?", login, login).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &u, nil
}
