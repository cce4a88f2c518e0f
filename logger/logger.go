package logger

import (
	"fmt"

	"go-splendor/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L 全局日志，Init 之前是空实现
var L = zap.NewNop()

// Init 根据配置的日志级别初始化全局日志，debug 级别使用开发模式输出
func Init(cfg *config.Config) error {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("日志级别 %q 无效: %w", cfg.LogLevel, err)
	}

	zc := zap.NewProductionConfig()
	if level == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := zc.Build()
	if err != nil {
		return fmt.Errorf("创建日志失败: %w", err)
	}
	L = l
	zap.ReplaceGlobals(l)
	return nil
}

func Sync() {
	_ = L.Sync()
}
