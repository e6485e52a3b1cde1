package api

import (
	"ttland-cms/inout"
	"ttland-cms/pkg/jwt"
	"ttland-cms/pkg/monitoring"
	"ttland-cms/pkg/response"
	"ttland-cms/pkg/security"
	"ttland-cms/services/cms_service"

	"github.com/gin-gonic/gin"
)

var Auth = &auth{}

type auth struct{}

var authUserService = &cms_service.UserService{}

const invalidCredentials = "Invalid email or password"

// Login 邮箱+密码换取 access/refresh 令牌对。
// 账号不存在与密码错误返回完全相同的 401，避免账号枚举。
func (auth) Login(c *gin.Context) {
	var params inout.LoginReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}

	user, err := authUserService.GetByEmail(params.Email)
	if err != nil {
		if cms_service.IsNotFound(err) {
			response.Unauthorized(c, invalidCredentials)
			return
		}
		response.ServerError(c, err)
		return
	}

	if !security.CheckPasswordHash(params.Password, user.PasswordHash) {
		response.Unauthorized(c, invalidCredentials)
		return
	}

	manager := jwt.NewJWTManager()
	access, refresh, err := manager.GenerateTokenPair(user.Id)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	monitoring.RecordUserLogin()

	response.Success(c, inout.LoginRes{
		Access:  access,
		Refresh: refresh,
		UserId:  user.Id,
		Email:   user.Email,
		Role:    user.Role,
	})
}

// Refresh 用 refresh 令牌换取新的 access 令牌
func (auth) Refresh(c *gin.Context) {
	var params inout.RefreshReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}

	manager := jwt.NewJWTManager()
	access, err := manager.RefreshAccessToken(params.Refresh)
	if err != nil {
		response.Unauthorized(c, "Token is invalid or expired")
		return
	}

	response.Success(c, inout.RefreshRes{Access: access})
}
