package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// Recovery 自定义恢复中间件
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		err := fmt.Sprintf("panic recovered: %v", recovered)
		stack := string(debug.Stack())

		log.Printf("[PANIC RECOVERY] %s\n%s", err, stack)

		if gin.Mode() == gin.DebugMode {
			// 开发环境返回详细错误信息
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"detail": "服务器内部错误",
				"panic":  fmt.Sprintf("%v", recovered),
			})
		} else {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"detail": "服务器内部错误",
			})
		}
	})
}
