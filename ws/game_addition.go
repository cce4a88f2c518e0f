package ws

import (
	"go-splendor/entities"
	"go-splendor/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

func handleReadyMessage(conn ReadWriteConn, rdb *redis.Client, roomID, playerID string, msgMap map[string]interface{}) {
	setReady(roomID, playerID)

	roomInfo, err := GetRoomInfo(roomID)
	if err != nil {
		logger.L.Warn("❌ 无法获取房间信息", zap.Error(err))
		return
	}
	started, err := startGameIfReady(roomID, roomInfo)
	if err != nil {
		logger.L.Error("❌ 开局失败", zap.String("roomID", roomID), zap.Error(err))
		sendError(conn, "", err.Error())
		return
	}
	if !started {
		return
	}

	if err := SetRoomStatus(rdb, roomID, true); err != nil {
		logger.L.Warn("❌ 设置房间状态失败", zap.Error(err))
	}
	if err := SetGameStatus(rdb, roomID, entities.RoomStatusPlaying); err != nil {
		logger.L.Warn("❌ 设置游戏状态失败", zap.Error(err))
	}
	setGameStartTime(roomID)
	if snap := currentSnapshot(roomID); snap != nil {
		if err := SaveSnapshot(roomID, snap); err != nil {
			logger.L.Warn("❌ 保存局面失败", zap.Error(err))
		}
	}
	logger.L.Info("🎲 游戏开始", zap.String("roomID", roomID), zap.Uint64("seed", roomInfo.Seed))
}

// handlePlayAudioMessage 只转发，不做任何播放
func handlePlayAudioMessage(conn ReadWriteConn, rdb *redis.Client, roomID string, playerID string, msgMap map[string]interface{}) {
	audioType, ok := msgMap["payload"].(string)
	if !ok {
		sendError(conn, "", "消息格式错误")
		return
	}

	msg := map[string]interface{}{
		"type":     "audio",
		"message":  audioType,
		"playerID": playerID,
	}
	for _, pc := range onlineConns(roomID) {
		if pc.IsAI {
			continue
		}
		if err := writeJSON(pc.Conn, msg); err != nil {
			logger.L.Warn("❌ 发送音频消息失败", zap.String("player", pc.PlayerID), zap.Error(err))
		}
	}
}

func handleRestartGameMessage(conn ReadWriteConn, rdb *redis.Client, roomID string, playerID string, msgMap map[string]interface{}) {
	if s := getSession(roomID); s == nil || !s.game.Finished() {
		sendError(conn, "", "游戏还没有结束，不能重开")
		return
	}
	roomInfo, err := GetRoomInfo(roomID)
	if err != nil {
		logger.L.Warn("❌ 无法获取房间信息", zap.Error(err))
		return
	}

	roomInfo.Seed = rand.Uint64()
	if err := SetSeed(rdb, roomID, roomInfo.Seed); err != nil {
		logger.L.Warn("❌ 保存种子失败", zap.Error(err))
	}
	s, err := restartSession(roomID, roomInfo)
	if err != nil {
		logger.L.Error("❌ 重开失败", zap.String("roomID", roomID), zap.Error(err))
		sendError(conn, "", err.Error())
		return
	}
	// 重置上次操作
	if err := clearLastData(roomID); err != nil {
		logger.L.Warn("❌ 清除最近操作失败", zap.Error(err))
	}
	SetGameStatus(rdb, roomID, entities.RoomStatusPlaying)
	setGameStartTime(roomID)
	if err := SaveSnapshot(roomID, s.game.Snapshot()); err != nil {
		logger.L.Warn("❌ 保存局面失败", zap.Error(err))
	}
	logger.L.Info("🔄 游戏重开", zap.String("roomID", roomID), zap.String("by", playerID), zap.Uint64("seed", roomInfo.Seed))
}

// handleGameEndMessage 客户端结束对局；引擎还没判定结束时视为放弃本局
func handleGameEndMessage(conn ReadWriteConn, rdb *redis.Client, roomID string, playerID string, msgMap map[string]interface{}) {
	if err := SetGameStatus(rdb, roomID, entities.RoomStatusEnd); err != nil {
		logger.L.Warn("设置游戏状态失败", zap.Error(err))
		return
	}

	roomLock.Lock()
	if s := sessions[roomID]; s != nil && !s.game.Finished() {
		delete(sessions, roomID)
		logger.L.Warn("⚠️ 对局被提前结束", zap.String("roomID", roomID), zap.String("by", playerID))
	}
	roomLock.Unlock()

	logger.L.Info("✅ 游戏日志保存于", zap.String("path", getGameLogFilePath(roomID)))
}
