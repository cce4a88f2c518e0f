package ws

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"time"

	"go-splendor/dto"
	"go-splendor/engine"
	"go-splendor/entities"
	"go-splendor/logger"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WriteGameLog 每条成功执行的命令追加一行到本局的日志文件
func WriteGameLog(roomID, playerID string, cmd engine.Command, events []engine.Event, snap *engine.Snapshot) {
	logPath := getGameLogFilePath(roomID)
	go func() {
		if err := os.MkdirAll(path.Dir(logPath), 0755); err != nil {
			logger.L.Warn("❌ 创建日志目录失败", zap.Error(err))
			return
		}

		entry := map[string]interface{}{
			"timestamp": time.Now().Format("2006-01-02 15:04:05"),
			"playerID":  playerID,
			"command":   cmd,
			"events":    events,
			"snapshot":  snap,
		}
		jsonEntry, err := json.Marshal(entry)
		if err != nil {
			logger.L.Warn("❌ 序列化日志 entry 失败", zap.Error(err))
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logger.L.Warn("❌ 打开游戏日志文件失败", zap.Error(err))
			return
		}
		defer f.Close()

		if _, err := f.Write(append(jsonEntry, ',', '\n')); err != nil {
			logger.L.Warn("❌ 写入日志失败", zap.Error(err))
		}
	}()
}

// buildSyncMessage 给某个玩家的同步消息，只有轮到该玩家时才附带合法操作
func buildSyncMessage(playerID string, roomInfo *entities.RoomInfo, players []dto.RoomPlayer, snap *engine.Snapshot) dto.SyncMessage {
	msg := dto.SyncMessage{
		Type:         "sync",
		PlayerID:     playerID,
		RoomInfo:     roomInfo,
		Players:      players,
		Snapshot:     snap,
		LegalActions: []engine.Command{},
	}
	if snap == nil {
		return msg
	}
	msg.CurrentPlayer = snap.CurrentPlayer().ID
	if msg.CurrentPlayer == playerID && !snap.Finished {
		msg.LegalActions = engine.LegalActions(snap)
	}
	return msg
}

func currentSnapshot(roomID string) *engine.Snapshot {
	if s := getSession(roomID); s != nil {
		return s.game.Snapshot()
	}
	return nil
}

func writeJSON(conn WriteOnlyConn, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("❌ 编码 JSON 失败: %w", err)
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

func onlineConns(roomID string) []dto.PlayerConn {
	roomLock.Lock()
	defer roomLock.Unlock()
	conns := make([]dto.PlayerConn, 0, len(Rooms[roomID]))
	for _, pc := range Rooms[roomID] {
		if pc.Online && pc.Conn != nil {
			conns = append(conns, pc)
		}
	}
	return conns
}

// BroadcastToRoom 把最新局面同步给房间内所有在线玩家（包括 AI 的虚拟连接）
func BroadcastToRoom(roomID string) {
	roomInfo, err := GetRoomInfo(roomID)
	if err != nil {
		logger.L.Warn("获取房间信息失败", zap.String("roomID", roomID), zap.Error(err))
		return
	}
	players, _ := RoomPlayers(roomID)
	snap := currentSnapshot(roomID)

	for _, pc := range onlineConns(roomID) {
		if err := writeJSON(pc.Conn, buildSyncMessage(pc.PlayerID, roomInfo, players, snap)); err != nil {
			logger.L.Warn("广播失败，关闭连接", zap.String("player", pc.PlayerID), zap.Error(err))
			pc.Conn.Close()
		}
	}
}

func broadcastEvents(roomID string, events []engine.Event) {
	if len(events) == 0 {
		return
	}
	msg := dto.EventsMessage{Type: "events", Events: events}
	for _, pc := range onlineConns(roomID) {
		if pc.IsAI {
			continue
		}
		if err := writeJSON(pc.Conn, msg); err != nil {
			logger.L.Warn("❌ 发送事件失败", zap.String("player", pc.PlayerID), zap.Error(err))
		}
	}
}

func sendError(conn WriteOnlyConn, kind, message string) {
	if err := writeJSON(conn, dto.ErrorMessage{Type: "error", Kind: kind, Message: message}); err != nil {
		logger.L.Warn("❌ 发送错误消息失败", zap.Error(err))
	}
}
