package service

import (
	"nullbyte/account-api/internal/store"
)

// Verification redeems emailed verification tokens
type Verification struct {
	Store *store.AccountStore
}

func NewVerification(s *store.AccountStore) *Verification {
	return &Verification{Store: s}
}

// Verify marks the account behind token as verified and returns its
// username. Unknown and already-consumed tokens both come back as
// store.ErrTokenNotFound.
func (v *Verification) Verify(token string) (string, error) {
	return v.Store.RedeemVerificationToken(token)
}
