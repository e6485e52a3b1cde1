package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ttland-cms/config"
	"ttland-cms/db"
	"ttland-cms/middleware"
	"ttland-cms/pkg/monitoring"
	"ttland-cms/router"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 构建时注入的变量
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-version", "--version", "-v":
			fmt.Printf("TTLAND CMS\n")
			fmt.Printf("Version: %s\n", Version)
			fmt.Printf("Build Time: %s\n", BuildTime)
			fmt.Printf("Git Commit: %s\n", GitCommit)
			return
		}
	}

	// 初始化配置
	if err := config.InitConfig(); err != nil {
		log.Fatalf("配置初始化失败: %v", err)
	}
	cfg := config.GetConfig()

	// 设置时区
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		log.Fatalf("无法加载时区: %v", err)
	}
	time.Local = loc

	// 初始化数据库
	db.Init()

	gin.SetMode(cfg.Server.Mode)
	app := gin.New()

	// 全局中间件
	app.Use(middleware.Recovery())
	app.Use(middleware.Logger())
	app.Use(middleware.Cors())
	app.Use(monitoring.PrometheusMiddleware())

	// 监控指标端点
	app.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.Init(app)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      app,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("服务器启动在端口 :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("服务器强制关闭: %v", err)
	}

	log.Printf("服务器已安全关闭")
}
