package api

import (
	"errors"

	"ttland-cms/pkg/response"
	"ttland-cms/services/cms_service"

	"github.com/gin-gonic/gin"
)

// handleServiceError 服务层错误到HTTP状态的统一映射
func handleServiceError(c *gin.Context, err error) {
	var fieldErr *cms_service.FieldError
	switch {
	case errors.As(err, &fieldErr):
		response.BadRequest(c, gin.H{fieldErr.Field: fieldErr.Message})
	case cms_service.IsNotFound(err):
		response.NotFound(c)
	default:
		response.ServerError(c, err)
	}
}
