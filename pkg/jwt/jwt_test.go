package jwt

import (
	"testing"
	"time"

	"ttland-cms/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(accessExpiry time.Duration) {
	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{
			SigningKey:    "unit-test-signing-key",
			AccessExpiry:  accessExpiry,
			RefreshExpiry: 168 * time.Hour,
			Issuer:        "ttland-cms",
		},
	}
}

func TestGenerateTokenPairAndParse(t *testing.T) {
	testConfig(time.Hour)
	manager := NewJWTManager()

	access, refresh, err := manager.GenerateTokenPair("user-1")
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	claims, err := manager.ParseToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserId)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, "ttland-cms", claims.Issuer)

	claims, err = manager.ParseToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserId)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestParseTokenOfTypeRejectsWrongType(t *testing.T) {
	testConfig(time.Hour)
	manager := NewJWTManager()

	access, refresh, err := manager.GenerateTokenPair("user-1")
	require.NoError(t, err)

	_, err = manager.ParseTokenOfType(refresh, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = manager.ParseTokenOfType(access, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestParseTokenExpired(t *testing.T) {
	testConfig(-time.Minute)
	manager := NewJWTManager()

	access, err := manager.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = manager.ParseToken(access)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseTokenMalformed(t *testing.T) {
	testConfig(time.Hour)
	manager := NewJWTManager()

	_, err := manager.ParseToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseTokenWrongKey(t *testing.T) {
	testConfig(time.Hour)
	manager := NewJWTManager()

	access, err := manager.GenerateAccessToken("user-1")
	require.NoError(t, err)

	config.AppConfig.JWT.SigningKey = "another-key"
	other := NewJWTManager()

	_, err = other.ParseToken(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRefreshAccessToken(t *testing.T) {
	testConfig(time.Hour)
	manager := NewJWTManager()

	access, refresh, err := manager.GenerateTokenPair("user-1")
	require.NoError(t, err)

	newAccess, err := manager.RefreshAccessToken(refresh)
	require.NoError(t, err)

	claims, err := manager.ParseTokenOfType(newAccess, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserId)

	// access 令牌不能用于刷新
	_, err = manager.RefreshAccessToken(access)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}
