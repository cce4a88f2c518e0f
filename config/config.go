package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr         string
	RedisAddr        string
	RedisDB          int
	RedisPassword    string
	MySQLDSN         string
	JWTAccessSecret  string
	JWTRefreshSecret string
	AIStepDelay      time.Duration
	AIStrategy       string
	LogLevel         string
	GameLogDir       string
}

// Load 先读 .env（没有就跳过），再读环境变量，未设置的用默认值
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("读取 %s 失败: %w", f, err)
		}
	}

	cfg := &Config{
		HTTPAddr:         getEnv("HTTP_ADDR", ":8000"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		MySQLDSN:         getEnv("MYSQL_DSN", ""),
		JWTAccessSecret:  getEnv("JWT_ACCESS_SECRET", "access-secret"),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET", "refresh-secret"),
		AIStrategy:       getEnv("AI_STRATEGY", "cascade"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		GameLogDir:       getEnv("GAME_LOG_DIR", "./game_logs"),
	}

	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("REDIS_DB 不是整数: %w", err)
	}
	cfg.RedisDB = db

	delay, err := time.ParseDuration(getEnv("AI_STEP_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("AI_STEP_DELAY 格式错误: %w", err)
	}
	cfg.AIStepDelay = delay

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
