package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateNeverExposesPassword(t *testing.T) {
	resetDB(t)
	token := authedToken(t)

	created := doJSON(t, http.MethodPost, "/users", token, gin.H{
		"username": "rin",
		"email":    "rin@example.com",
		"password": "secret123",
		"role":     "Staff",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	user := decodeMap(t, created)
	assert.NotEmpty(t, user["id"])
	assert.Equal(t, "rin", user["username"])
	assert.Equal(t, "Staff", user["role"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")

	// 列表与详情同样不带密码字段
	list := doJSON(t, http.MethodGet, "/users", token, nil)
	require.Equal(t, http.StatusOK, list.Code)
	for _, row := range decodeList(t, list) {
		assert.NotContains(t, row, "password")
		assert.NotContains(t, row, "password_hash")
	}

	// 入库的是哈希，明文能登录
	login := doJSON(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "rin@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, login.Code)
}

func TestUserCreateDefaultsRoleCast(t *testing.T) {
	resetDB(t)
	token := authedToken(t)

	created := doJSON(t, http.MethodPost, "/users", token, gin.H{
		"email":    "rin@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	assert.Equal(t, "Cast", decodeMap(t, created)["role"])
}

func TestUserCreateValidation(t *testing.T) {
	resetDB(t)
	token := authedToken(t)

	w := doJSON(t, http.MethodPost, "/users", token, gin.H{
		"email": "not-an-email",
		"role":  "Boss",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeMap(t, w)
	assert.Contains(t, body, "email")
	assert.Contains(t, body, "password")
	assert.Contains(t, body, "role")
}

func TestUserDuplicateEmail(t *testing.T) {
	resetDB(t)
	token := authedToken(t)

	first := doJSON(t, http.MethodPost, "/users", token, gin.H{
		"email":    "rin@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	dup := doJSON(t, http.MethodPost, "/users", token, gin.H{
		"email":    "rin@example.com",
		"password": "another123",
	})
	require.Equal(t, http.StatusBadRequest, dup.Code)
	assert.Contains(t, decodeMap(t, dup), "email")
}

func TestUserUpdateEmptyPasswordKeepsOldHash(t *testing.T) {
	resetDB(t)
	token := authedToken(t)

	created := doJSON(t, http.MethodPost, "/users", token, gin.H{
		"username": "rin",
		"email":    "rin@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeMap(t, created)["id"].(string)

	updated := doJSON(t, http.MethodPut, "/users/"+id, token, gin.H{
		"username": "rin-2",
		"email":    "rin@example.com",
		"role":     "Manager",
	})
	require.Equal(t, http.StatusOK, updated.Code)
	assert.Equal(t, "rin-2", decodeMap(t, updated)["username"])

	// 未传 password，旧密码继续有效
	login := doJSON(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "rin@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, login.Code)
}

// 整体更新缺省 role 时回落到默认值 Cast，与创建时一致
func TestUserPutOmittedRoleFallsBackToDefault(t *testing.T) {
	resetDB(t)
	token := authedToken(t)

	created := doJSON(t, http.MethodPost, "/users", token, gin.H{
		"email":    "rin@example.com",
		"password": "secret123",
		"role":     "Manager",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeMap(t, created)["id"].(string)

	updated := doJSON(t, http.MethodPut, "/users/"+id, token, gin.H{
		"email": "rin@example.com",
	})
	require.Equal(t, http.StatusOK, updated.Code)
	assert.Equal(t, "Cast", decodeMap(t, updated)["role"])

	got := decodeMap(t, doJSON(t, http.MethodGet, "/users/"+id, token, nil))
	assert.Equal(t, "Cast", got["role"])
}

func TestUserPatchPassword(t *testing.T) {
	resetDB(t)
	token := authedToken(t)

	created := doJSON(t, http.MethodPost, "/users", token, gin.H{
		"email":    "rin@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeMap(t, created)["id"].(string)

	patched := doJSON(t, http.MethodPatch, "/users/"+id, token, gin.H{
		"password": "changed456",
	})
	require.Equal(t, http.StatusOK, patched.Code)

	old := doJSON(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "rin@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, old.Code)

	fresh := doJSON(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "rin@example.com",
		"password": "changed456",
	})
	assert.Equal(t, http.StatusOK, fresh.Code)
}
