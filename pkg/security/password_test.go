package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordAndCheck(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("secret124", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	h1, err := HashPassword("secret123")
	require.NoError(t, err)
	h2, err := HashPassword("secret123")
	require.NoError(t, err)

	// 相同明文每次产生不同哈希
	assert.NotEqual(t, h1, h2)
}

func TestValidatePasswordStrength(t *testing.T) {
	assert.Error(t, ValidatePasswordStrength(""))
	assert.Error(t, ValidatePasswordStrength("12345"))
	assert.Error(t, ValidatePasswordStrength(strings.Repeat("a", 73)))
	assert.NoError(t, ValidatePasswordStrength("123456"))
	assert.NoError(t, ValidatePasswordStrength(strings.Repeat("a", 72)))
}

func TestHashPasswordRejectsWeakPassword(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)

	_, err = HashPassword("abc")
	assert.Error(t, err)
}

func TestCheckPasswordHashWithGarbageHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("secret123", "not-a-bcrypt-hash"))
}
