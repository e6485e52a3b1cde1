package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 删除成功响应
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest 按字段返回校验错误
func BadRequest(c *gin.Context, fields gin.H) {
	c.JSON(http.StatusBadRequest, fields)
}

// Unauthorized 认证失败响应
func Unauthorized(c *gin.Context, detail string) {
	c.JSON(http.StatusUnauthorized, gin.H{"detail": detail})
}

// AbortUnauthorized 认证失败并中断请求
func AbortUnauthorized(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
}

// ServerError 服务器内部错误响应
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}

// ValidationError 将绑定错误转换为按字段的 400 响应
func ValidationError(c *gin.Context, err error) {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		fields := gin.H{}
		for _, fe := range verrs {
			fields[fe.Field()] = messageForTag(fe)
		}
		BadRequest(c, fields)
		return
	}
	if terr, ok := err.(*json.UnmarshalTypeError); ok && terr.Field != "" {
		BadRequest(c, gin.H{terr.Field: fmt.Sprintf("Invalid value, expected %s.", terr.Type)})
		return
	}
	BadRequest(c, gin.H{"detail": err.Error()})
}

// messageForTag 校验标签到错误消息
func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fe.Value())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}
