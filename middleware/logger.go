package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger 请求日志中间件
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		// 慢请求与错误请求提升日志级别
		if status >= 500 {
			log.Printf("[ERROR] %s %s - %d (%v)", c.Request.Method, path, status, latency)
		} else if latency > time.Second {
			log.Printf("[SLOW] %s %s - %d (%v)", c.Request.Method, path, status, latency)
		} else {
			log.Printf("[REQ] %s %s - %d (%v)", c.Request.Method, path, status, latency)
		}
	}
}
