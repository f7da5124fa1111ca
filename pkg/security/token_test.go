package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeVerificationToken(t *testing.T) {
	tok, err := MakeVerificationToken()
	require.NoError(t, err)

	// 32 bytes hex encoded
	assert.Len(t, tok, 64)

	other, err := MakeVerificationToken()
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}

func TestMakeAuthToken(t *testing.T) {
	signed, err := MakeAuthToken([]byte("test-secret"), "4f0c7c39-90ba-42cb-b34f-9a3e6a4d81c5", time.Hour)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(tk *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "4f0c7c39-90ba-42cb-b34f-9a3e6a4d81c5", sub)

	exp, err := token.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
}

func TestMakeAuthTokenRejectsWrongSecret(t *testing.T) {
	signed, err := MakeAuthToken([]byte("test-secret"), "4f0c7c39-90ba-42cb-b34f-9a3e6a4d81c5", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(tk *jwt.Token) (any, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
