package ws

import (
	"encoding/json"
	"fmt"
	"time"

	"go-splendor/ai"
	"go-splendor/config"
	"go-splendor/dto"
	"go-splendor/logger"
	"go-splendor/repository"
	"go-splendor/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	aiStepDelay = time.Second
	aiStrategy  = ai.StrategyCascade
	gameLogDir  = "./game_logs"
)

// Init 读取 AI 节奏、默认策略和日志目录
func Init(cfg *config.Config) {
	aiStepDelay = cfg.AIStepDelay
	if cfg.AIStrategy != "" {
		aiStrategy = cfg.AIStrategy
	}
	if cfg.GameLogDir != "" {
		gameLogDir = cfg.GameLogDir
	}
}

// 消息处理函数类型
type messageHandler func(conn ReadWriteConn, rdb *redis.Client, roomID, playerID string, msgMap map[string]interface{})

// 消息处理函数映射
var messageHandlers = map[string]messageHandler{
	"ready":         handleReadyMessage,
	"get_gem":       handleCommandMessage,
	"undo_gem":      handleCommandMessage,
	"buy_card":      handleCommandMessage,
	"preserve_card": handleCommandMessage,
	"preserve_deck": handleCommandMessage,
	"discard_gem":   handleCommandMessage,
	"end_turn":      handleCommandMessage,
	"play_audio":    handlePlayAudioMessage,
	"restart_game":  handleRestartGameMessage,
	"game_end":      handleGameEndMessage,
}

type WriteOnlyConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// 读写接口，供真实客户端连接用，支持读取消息
type ReadWriteConn interface {
	WriteOnlyConn
	ReadMessage() (messageType int, p []byte, err error)
}

// 持续监听客户端消息，处理后把新局面同步给房间内所有玩家
func listenAndBroadcastMessages(conn ReadWriteConn, roomID, playerID string) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			logger.L.Info("读取消息失败", zap.String("player", playerID), zap.Error(err))
			break
		}
		msgMap := make(map[string]interface{})
		if err := json.Unmarshal(msg, &msgMap); err != nil {
			logger.L.Warn("消息解析失败", zap.String("player", playerID), zap.Error(err))
			continue
		}
		msgMap["playerID"] = playerID

		msgType, _ := msgMap["type"].(string)
		handler, found := messageHandlers[msgType]
		if !found {
			logger.L.Warn("⚠️ 未知的消息类型", zap.String("type", msgType))
			continue
		}
		handler(conn, repository.Rdb, roomID, playerID, msgMap)
		BroadcastToRoom(roomID)
	}
}

// playerFromToken 浏览器的 WebSocket 不能带 Authorization 头，token 走 query
func playerFromToken(token, userID string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("缺少 token")
	}
	claims, err := utils.ParseAccessToken(token)
	if err != nil {
		return "", fmt.Errorf("token 无效或已过期")
	}
	if userID != "" && userID != claims.UserID {
		return "", fmt.Errorf("userID 与 token 不一致")
	}
	return claims.UserID, nil
}

// WebSocket 主入口（处理每个连接）
func HandleWebSocket(c *gin.Context) {
	wsConn, err := upgradeConnection(c)
	if err != nil {
		return
	}
	defer wsConn.Close()
	conn := &dto.RealConn{Conn: wsConn}

	roomID := c.Query("roomID")
	if roomID == "" {
		sendError(conn, "", "缺少 roomID")
		return
	}
	// 玩家 ID 以 token 为准，userID 只做核对
	playerID, err := playerFromToken(c.Query("token"), c.Query("userID"))
	if err != nil {
		logger.L.Info("WebSocket 鉴权失败", zap.String("roomID", roomID), zap.Error(err))
		sendError(conn, "", err.Error())
		return
	}

	if err := validateAndJoinRoom(roomID, playerID, conn); err != nil {
		logger.L.Info("加入房间失败", zap.String("roomID", roomID), zap.String("player", playerID), zap.Error(err))
		sendError(conn, "", err.Error())
		return
	}
	BroadcastToRoom(roomID)
	// 离开时清理资源
	defer cleanupOnDisconnect(roomID, playerID, wsConn)
	listenAndBroadcastMessages(conn, roomID, playerID)
}
