package middleware_test

import (
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"ttland-cms/config"
	"ttland-cms/db"
	"ttland-cms/middleware"
	"ttland-cms/model"
	"ttland-cms/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var engine *gin.Engine

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{
			SigningKey:    "middleware-test-key",
			AccessExpiry:  time.Hour,
			RefreshExpiry: 168 * time.Hour,
			Issuer:        "ttland-cms",
		},
	}

	conn, err := gorm.Open(sqlite.Open("file:mwtest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("open test db: %v", err)
	}
	db.Dao = conn
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("migrate test db: %v", err)
	}

	engine = gin.New()
	engine.GET("/ping", middleware.Jwt(), func(c *gin.Context) {
		principal, _ := middleware.GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"user_id": principal.UserId})
	})

	os.Exit(m.Run())
}

func seedUser(t *testing.T) *model.CmsUser {
	t.Helper()
	user := model.CmsUser{Email: "mw@example.com", PasswordHash: "x", Role: model.RoleCast}
	require.NoError(t, db.Dao.Create(&user).Error)
	return &user
}

func ping(token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestJwtMissingToken(t *testing.T) {
	w := ping("")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJwtGarbageToken(t *testing.T) {
	w := ping("not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJwtValidTokenAttachesPrincipal(t *testing.T) {
	user := seedUser(t)
	defer db.Dao.Delete(user)

	token, err := jwt.NewJWTManager().GenerateAccessToken(user.Id)
	require.NoError(t, err)

	w := ping(token)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, user.Id, body["user_id"])
}

func TestJwtRejectsRefreshToken(t *testing.T) {
	user := seedUser(t)
	defer db.Dao.Delete(user)

	_, refresh, err := jwt.NewJWTManager().GenerateTokenPair(user.Id)
	require.NoError(t, err)

	w := ping(refresh)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJwtRejectsTokenOfDeletedUser(t *testing.T) {
	user := seedUser(t)
	token, err := jwt.NewJWTManager().GenerateAccessToken(user.Id)
	require.NoError(t, err)

	require.NoError(t, db.Dao.Delete(user).Error)

	w := ping(token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJwtExpiredToken(t *testing.T) {
	user := seedUser(t)
	defer db.Dao.Delete(user)

	config.AppConfig.JWT.AccessExpiry = -time.Minute
	token, err := jwt.NewJWTManager().GenerateAccessToken(user.Id)
	require.NoError(t, err)
	config.AppConfig.JWT.AccessExpiry = time.Hour

	w := ping(token)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Token has expired", body["detail"])
}
