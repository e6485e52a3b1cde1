package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home 健康检查，无需认证，恒定返回成功
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "TTLAND CMS API is working!",
		"status":  "success",
		"data":    "Ready to connect with React",
	})
}
