package main

import (
	"time"

	"go-splendor/config"
	"go-splendor/logger"
	"go-splendor/repository"
	"go-splendor/router"
	"go-splendor/utils"
	"go-splendor/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := repository.InitRedis(cfg); err != nil {
		logger.L.Fatal("❌ Redis 初始化失败", zap.Error(err))
	}
	if err := repository.InitMySQL(cfg); err != nil {
		logger.L.Fatal("❌ MySQL 初始化失败", zap.Error(err))
	}
	utils.Init(cfg)
	ws.Init(cfg)

	r := gin.Default()

	// 设置 CORS 中间件，允许所有域名、所有方法、所有 header
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	router.InitRouter(r)

	logger.L.Info("🚀 服务启动", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.L.Fatal("❌ 服务退出", zap.Error(err))
	}
}
