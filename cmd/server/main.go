package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SlpAus/game-night-vote-backend/api"
	"github.com/SlpAus/game-night-vote-backend/internal/media"
	"github.com/SlpAus/game-night-vote-backend/internal/platform/config"
	"github.com/SlpAus/game-night-vote-backend/internal/platform/database"
	"github.com/SlpAus/game-night-vote-backend/internal/platform/health"
	"github.com/SlpAus/game-night-vote-backend/internal/platform/shutdown"
	"github.com/SlpAus/game-night-vote-backend/internal/platform/startup"
	"github.com/SlpAus/game-night-vote-backend/pkg/lifecycle"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env仅在本地开发时存在，加载失败可以忽略
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("无法加载配置: %v", err))
	}

	database.InitDB(cfg.Database)
	database.InitRedis(cfg.Database.Redis)
	media.Configure(cfg.Media)

	// 1. 阻塞式获取初始Run ID
	health.InitializeRunID()

	// 2. 执行应用首次启动初始化流程
	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 3. 阻塞式执行一次启动后健康检查
	fmt.Println("正在执行启动后健康检查...")
	health.PerformCheck()

	// 4. 异步启动后台的持续健康检查器
	go health.StartRedisHealthCheck()

	// 5. 创建生命周期管理器并启动后台服务
	gracefulManager := lifecycle.NewManager()
	forcefulManager := lifecycle.NewManager()

	if cfg.Media.Prefetch {
		prefetchHandle, err := gracefulManager.NewServiceHandle("media-prefetcher")
		if err != nil {
			panic(fmt.Sprintf("无法注册媒体预取器: %v", err))
		}
		go media.StartPrefetcher(prefetchHandle)
	}

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 投票页面的静态文件
	r.Static("/static", "./web/static")

	api.SetupRoutes(r)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("Failed to start server: " + err.Error())
		}
	}()

	// 6. 阻塞等待停机信号，协调优雅停机
	coordinator := shutdown.NewCoordinator(gracefulManager, forcefulManager)
	coordinator.ListenForSignalsAndShutdown(server)
}
