package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeIsOpenAndAlwaysOK(t *testing.T) {
	resetDB(t)

	w := doJSON(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeMap(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Contains(t, body["message"], "working")
}

func TestLoginSuccess(t *testing.T) {
	resetDB(t)
	user := seedUser(t, "mika@example.com", "secret123")

	w := doJSON(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "mika@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeMap(t, w)
	assert.NotEmpty(t, body["access"])
	assert.NotEmpty(t, body["refresh"])
	assert.Equal(t, user.Id, body["user_id"])
	assert.Equal(t, "mika@example.com", body["email"])
	assert.Equal(t, "Admin", body["role"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "password_hash")
}

// 账号不存在与密码错误必须是同一个 401，防止账号枚举
func TestLoginFailureIsUniform(t *testing.T) {
	resetDB(t)
	seedUser(t, "mika@example.com", "secret123")

	unknown := doJSON(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	wrongPass := doJSON(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "mika@example.com",
		"password": "wrong-password",
	})

	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, unknown.Body.String(), wrongPass.Body.String())
}

func TestLoginValidation(t *testing.T) {
	resetDB(t)

	w := doJSON(t, http.MethodPost, "/auth/login", "", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeMap(t, w)
	assert.Contains(t, body, "email")
	assert.Contains(t, body, "password")

	// 登录只要求字段存在，不校验邮箱格式
	w = doJSON(t, http.MethodPost, "/auth/login", "", gin.H{"email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body = decodeMap(t, w)
	assert.Contains(t, body, "password")
	assert.NotContains(t, body, "email")
}

func TestRefreshFlow(t *testing.T) {
	resetDB(t)
	seedUser(t, "mika@example.com", "secret123")

	login := doJSON(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "mika@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, login.Code)
	tokens := decodeMap(t, login)

	w := doJSON(t, http.MethodPost, "/auth/refresh", "", gin.H{
		"refresh": tokens["refresh"],
	})
	require.Equal(t, http.StatusOK, w.Code)

	newAccess := decodeMap(t, w)["access"].(string)
	require.NotEmpty(t, newAccess)

	// 换来的 access 能通过认证
	list := doJSON(t, http.MethodGet, "/stores", newAccess, nil)
	assert.Equal(t, http.StatusOK, list.Code)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	resetDB(t)
	seedUser(t, "mika@example.com", "secret123")

	login := doJSON(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "mika@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, login.Code)
	tokens := decodeMap(t, login)

	w := doJSON(t, http.MethodPost, "/auth/refresh", "", gin.H{
		"refresh": tokens["access"],
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	resetDB(t)

	w := doJSON(t, http.MethodGet, "/stores", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, http.MethodGet, "/stores", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshTokenRejectedOnProtectedRoute(t *testing.T) {
	resetDB(t)
	seedUser(t, "mika@example.com", "secret123")

	login := doJSON(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "mika@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, login.Code)
	refresh := decodeMap(t, login)["refresh"].(string)

	w := doJSON(t, http.MethodGet, "/stores", refresh, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// 删除用户即撤销其全部已签发令牌
func TestDeletedUserTokenIsRevoked(t *testing.T) {
	resetDB(t)
	admin := seedUser(t, "admin@example.com", "secret123")
	victim := seedUser(t, "victim@example.com", "secret123")
	victimToken := accessTokenFor(t, victim.Id)

	ok := doJSON(t, http.MethodGet, "/stores", victimToken, nil)
	require.Equal(t, http.StatusOK, ok.Code)

	del := doJSON(t, http.MethodDelete, "/users/"+victim.Id, accessTokenFor(t, admin.Id), nil)
	require.Equal(t, http.StatusNoContent, del.Code)

	revoked := doJSON(t, http.MethodGet, "/stores", victimToken, nil)
	assert.Equal(t, http.StatusUnauthorized, revoked.Code)
}
