package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-splendor/config"
	"go-splendor/logger"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// DB 对局结果库，未配置 MYSQL_DSN 时为 nil
var DB *sql.DB

const createGameResults = `CREATE TABLE IF NOT EXISTS game_results (
	id          BIGINT AUTO_INCREMENT PRIMARY KEY,
	room_id     VARCHAR(64) NOT NULL,
	player_id   VARCHAR(64) NOT NULL,
	is_ai       BOOLEAN     NOT NULL,
	points      INT         NOT NULL,
	cards       INT         NOT NULL,
	winner      BOOLEAN     NOT NULL,
	finished_at DATETIME    NOT NULL,
	INDEX idx_player (player_id)
)`

type GameResult struct {
	RoomID     string
	PlayerID   string
	IsAI       bool
	Points     int
	Cards      int
	Winner     bool
	FinishedAt time.Time
}

type PlayerStats struct {
	PlayerID   string `json:"playerID"`
	Games      int    `json:"games"`
	Wins       int    `json:"wins"`
	BestPoints int    `json:"bestPoints"`
}

func InitMySQL(cfg *config.Config) error {
	if cfg.MySQLDSN == "" {
		logger.L.Warn("⚠️ 未配置 MYSQL_DSN，不记录对局结果")
		return nil
	}
	dsn, err := mysql.ParseDSN(cfg.MySQLDSN)
	if err != nil {
		return fmt.Errorf("MYSQL_DSN 格式错误: %w", err)
	}
	dsn.ParseTime = true

	connector, err := mysql.NewConnector(dsn)
	if err != nil {
		return fmt.Errorf("创建 MySQL 连接失败: %w", err)
	}
	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.PingContext(Ctx); err != nil {
		return fmt.Errorf("MySQL 连接失败: %w", err)
	}
	if _, err := db.ExecContext(Ctx, createGameResults); err != nil {
		return fmt.Errorf("创建 game_results 表失败: %w", err)
	}
	DB = db
	logger.L.Info("✅ MySQL 连接成功", zap.String("addr", dsn.Addr), zap.String("db", dsn.DBName))
	return nil
}

// SaveGameResults 一局的所有玩家结果在一个事务里写入
func SaveGameResults(ctx context.Context, db *sql.DB, results []GameResult) error {
	if db == nil || len(results) == 0 {
		return nil
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("开启事务失败: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO game_results (room_id, player_id, is_ai, points, cards, winner, finished_at) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("准备语句失败: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.ExecContext(ctx, r.RoomID, r.PlayerID, r.IsAI, r.Points, r.Cards, r.Winner, r.FinishedAt); err != nil {
			return fmt.Errorf("写入玩家 %s 的结果失败: %w", r.PlayerID, err)
		}
	}
	return tx.Commit()
}

func QueryPlayerStats(ctx context.Context, db *sql.DB, playerID string) (*PlayerStats, error) {
	stats := &PlayerStats{PlayerID: playerID}
	if db == nil {
		return stats, nil
	}
	row := db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(winner), 0), COALESCE(MAX(points), 0) FROM game_results WHERE player_id = ?`,
		playerID)
	if err := row.Scan(&stats.Games, &stats.Wins, &stats.BestPoints); err != nil {
		return nil, fmt.Errorf("查询玩家 %s 战绩失败: %w", playerID, err)
	}
	return stats, nil
}
