package security

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 32 random bytes, hex encoded. Far above the minimum entropy needed
// for a single-use emailed link.
const verificationTokenSize = 32

// MakeVerificationToken returns a fresh opaque email-verification token
func MakeVerificationToken() (string, error) {
	b := make([]byte, verificationTokenSize)

	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// MakeAuthToken mints the HS256 session token for userID. The signing
// secret is read once at startup and handed in by the caller.
func MakeAuthToken(secret []byte, userID string, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	})

	return t.SignedString(secret)
}
