package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsernameValidator(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  string
	}{
		{name: "valid simple", username: "johndoe"},
		{name: "valid with specials", username: "john.doe_99-x"},
		{name: "valid min length", username: "abcdef"},
		{name: "valid max length", username: "a" + strings.Repeat("b", 29)},
		{name: "too short", username: "abcde", wantErr: "between 6 and 30"},
		{name: "too long", username: "a" + strings.Repeat("b", 30), wantErr: "between 6 and 30"},
		{name: "empty", username: "", wantErr: "between 6 and 30"},
		{name: "starts with digit", username: "1johndoe", wantErr: "must start with a letter"},
		{name: "starts with uppercase", username: "Johndoe", wantErr: "must start with a letter"},
		{name: "uppercase inside", username: "johNdoe", wantErr: "must start with a letter"},
		{name: "illegal character", username: "john@doe", wantErr: "must start with a letter"},
		{name: "consecutive specials", username: "john..doe", wantErr: "must start with a letter"},
		{name: "mixed consecutive specials", username: "john._doe", wantErr: "must start with a letter"},
		{name: "trailing special", username: "johndoe-", wantErr: "must start with a letter"},
		{name: "trailing underscore", username: "johndoe_", wantErr: "must start with a letter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := UsernameValidator(tt.username)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "usr", vErr.Field)
		})
	}
}

func TestNameValidator(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{name: "plain", value: "John"},
		{name: "accented", value: "Zoë"},
		{name: "hyphenated", value: "Anne-Marie"},
		{name: "apostrophe", value: "O'Brien"},
		{name: "with space", value: "Mary Jane"},
		{name: "too short", value: "J", wantErr: "between 2 and 255"},
		{name: "too long", value: strings.Repeat("a", 256), wantErr: "between 2 and 255"},
		{name: "digits", value: "John3", wantErr: "invalid characters"},
		{name: "symbols", value: "John!", wantErr: "invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NameValidator("fname", "First name", tt.value)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "First name")
		})
	}
}

func TestNameValidatorUsesLabel(t *testing.T) {
	err := NameValidator("lname", "Last name", "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Last name")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "lname", vErr.Field)
}

func TestPasswordValidator(t *testing.T) {
	tests := []struct {
		name    string
		pwd     string
		confirm string
		wantErr string
	}{
		{name: "valid", pwd: "longenough1", confirm: "longenough1"},
		{name: "exactly 8", pwd: "12345678", confirm: "12345678"},
		{name: "too short", pwd: "1234567", confirm: "1234567", wantErr: "at least 8 characters"},
		{name: "empty", pwd: "", confirm: "", wantErr: "at least 8 characters"},
		{name: "mismatch", pwd: "longenough1", confirm: "longenough2", wantErr: "do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PasswordValidator(tt.pwd, tt.confirm)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEmailValidator(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr string
	}{
		{name: "valid", email: "john@example.com"},
		{name: "valid with plus", email: "john+tag@example.co.uk"},
		{name: "too short", email: "a@b.c", wantErr: "between 6 and 320"},
		{name: "too long", email: strings.Repeat("a", 310) + "@example.com", wantErr: "between 6 and 320"},
		{name: "no at sign", email: "john.example.com", wantErr: "Invalid email"},
		{name: "no domain dot", email: "john@example", wantErr: "Invalid email"},
		{name: "short tld", email: "john@example.c", wantErr: "Invalid email"},
		{name: "spaces", email: "john doe@example.com", wantErr: "Invalid email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EmailValidator(tt.email)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
