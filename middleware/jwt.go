package middleware

import (
	"errors"
	"strings"

	"ttland-cms/db"
	"ttland-cms/model"
	"ttland-cms/pkg/jwt"
	"ttland-cms/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PrincipalKey 上下文中的认证主体键
const PrincipalKey = "principal"

// Principal 认证通过后附加到请求的最小身份对象。
// 只携带用户ID，不携带角色能力；下游处理器只能依赖它。
type Principal struct {
	UserId          string
	IsAuthenticated bool
}

// Jwt 中间件：校验 Bearer access 令牌并解析出 users 表中的用户。
// token 中缺少 user_id、或对应用户已被删除，都按无效令牌处理，
// 因此删除用户即撤销其所有已签发令牌。
func Jwt() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Request.Header.Get("Authorization")
		if token == "" {
			response.AbortUnauthorized(c, "Authentication credentials were not provided.")
			return
		}
		// 去掉Bearer前缀
		if len(token) > 7 && strings.EqualFold(token[:7], "Bearer ") {
			token = token[7:]
		}

		manager := jwt.NewJWTManager()
		claims, err := manager.ParseTokenOfType(token, jwt.TokenTypeAccess)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.AbortUnauthorized(c, "Token has expired")
				return
			}
			response.AbortUnauthorized(c, "Invalid token")
			return
		}

		if claims.UserId == "" {
			response.AbortUnauthorized(c, "Token has no user_id")
			return
		}

		var user model.CmsUser
		if err := db.Dao.First(&user, "id = ?", claims.UserId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.AbortUnauthorized(c, "User not found")
				return
			}
			response.ServerError(c, err)
			c.Abort()
			return
		}

		c.Set(PrincipalKey, Principal{UserId: user.Id, IsAuthenticated: true})
		c.Next()
	}
}

// GetPrincipal 从上下文取出认证主体
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
