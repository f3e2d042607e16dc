package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{
			name:     "known vector",
			password: "test",
			want:     "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		},
		{
			// Стандартный вектор SHA-256 для пустой строки: подтверждает,
			// что digest совместим с уже сохраненными хешами
			name:     "empty string vector",
			password: "",
			want:     "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashPassword(tt.password)
			assert.Equal(t, tt.want, hash)

			// SHA-256 хеш всегда 64 символа (hex-encoded, 32 bytes * 2)
			assert.Len(t, hash, 64)
			assert.Regexp(t, "^[a-f0-9]{64}$", hash, "должен быть lowercase hex")
		})
	}
}

func TestHashPassword_Deterministic(t *testing.T) {
	// Одинаковый вход = одинаковый хеш
	hash1 := HashPassword("secret123")
	hash2 := HashPassword("secret123")
	assert.Equal(t, hash1, hash2)

	// Разный вход = разный хеш
	assert.NotEqual(t, hash1, HashPassword("secret124"))
}

func TestVerifyPassword(t *testing.T) {
	hash := HashPassword("my_secret_password")
	require.NotEmpty(t, hash)

	assert.True(t, VerifyPassword("my_secret_password", hash))
	assert.False(t, VerifyPassword("wrong_password", hash))
	assert.False(t, VerifyPassword("my_secret_password", "not-a-hash"))
	assert.False(t, VerifyPassword("", hash))
}
