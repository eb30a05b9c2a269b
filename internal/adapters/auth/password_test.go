package auth

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_GenerateSalt(t *testing.T) {
	h := NewBcryptHasher(10)
	hexRe := regexp.MustCompile(`^[0-9a-f]{64}$`)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		salt, err := h.GenerateSalt()
		require.NoError(t, err)
		assert.Regexp(t, hexRe, salt, "salt should be 64 hex characters")
		assert.False(t, seen[salt], "salts should not repeat")
		seen[salt] = true
	}
}

func TestBcryptHasher_Hash_and_Compare(t *testing.T) {
	h := NewBcryptHasher(10)
	salt, err := h.GenerateSalt()
	require.NoError(t, err)
	password := "congreso!2026-música"

	hash, err := h.Hash(salt, password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	require.NoError(t, h.Compare(hash, salt, password))
}

func TestBcryptHasher_Compare_mismatches(t *testing.T) {
	h := NewBcryptHasher(10)
	salt, err := h.GenerateSalt()
	require.NoError(t, err)
	otherSalt, err := h.GenerateSalt()
	require.NoError(t, err)
	hash, err := h.Hash(salt, "entrada-correcta")
	require.NoError(t, err)

	tests := []struct {
		name     string
		salt     string
		password string
	}{
		{name: "wrong password", salt: salt, password: "entrada-incorrecta"},
		{name: "wrong salt", salt: otherSalt, password: "entrada-correcta"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, h.Compare(hash, tt.salt, tt.password))
		})
	}
}
