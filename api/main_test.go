package api_test

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"ttland-cms/config"
	"ttland-cms/db"
	"ttland-cms/model"
	"ttland-cms/pkg/jwt"
	"ttland-cms/pkg/security"
	"ttland-cms/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testRouter *gin.Engine

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{
			SigningKey:    "api-test-signing-key",
			AccessExpiry:  time.Hour,
			RefreshExpiry: 168 * time.Hour,
			Issuer:        "ttland-cms",
		},
	}

	// 共享内存库，开启外键以验证级联删除
	conn, err := gorm.Open(sqlite.Open("file:apitest?mode=memory&cache=shared&_foreign_keys=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("open test db: %v", err)
	}
	db.Dao = conn

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("migrate test db: %v", err)
	}

	testRouter = gin.New()
	router.Init(testRouter)

	os.Exit(m.Run())
}

func resetDB(t *testing.T) {
	t.Helper()
	tables := []string{
		"visit_records",
		"daily_summaries",
		"performance_targets",
		"customers_profile",
		"customers_detail",
		"customer_preferences",
		"customers",
		"staff_members",
		"users",
		"stores",
	}
	for _, table := range tables {
		require.NoError(t, db.Dao.Exec("DELETE FROM "+table).Error)
	}
}

func seedUser(t *testing.T, email, password string) *model.CmsUser {
	t.Helper()
	hash, err := security.HashPassword(password)
	require.NoError(t, err)
	user := model.CmsUser{
		Username:     "tester",
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	require.NoError(t, db.Dao.Create(&user).Error)
	return &user
}

// authedToken 建一个可登录用户并签发其 access 令牌
func authedToken(t *testing.T) string {
	t.Helper()
	user := seedUser(t, "operator@example.com", "secret123")
	return accessTokenFor(t, user.Id)
}

func accessTokenFor(t *testing.T, userId string) string {
	t.Helper()
	token, err := jwt.NewJWTManager().GenerateAccessToken(userId)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		payload = b
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
