package ws

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-splendor/engine"
	"go-splendor/entities"
	"go-splendor/logger"
	"go-splendor/repository"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type gemMessage struct {
	Payload entities.TokenType `mapstructure:"payload"`
}

type cardMessage struct {
	Payload      int  `mapstructure:"payload"`
	FromReserved bool `mapstructure:"fromReserved"`
}

type deckMessage struct {
	Payload int `mapstructure:"payload"`
}

// parseCommand 把客户端消息翻译成引擎命令
func parseCommand(msgType string, msgMap map[string]interface{}) (engine.Command, error) {
	switch msgType {
	case "get_gem", "undo_gem", "discard_gem":
		var m gemMessage
		if err := decodeMessage(msgMap, &m); err != nil {
			return engine.Command{}, fmt.Errorf("消息格式错误: %w", err)
		}
		if !m.Payload.Valid() {
			return engine.Command{}, fmt.Errorf("未知的宝石类型 %q", m.Payload)
		}
		switch msgType {
		case "get_gem":
			return engine.CollectTokenCommand(m.Payload), nil
		case "undo_gem":
			return engine.UndoCollectTokenCommand(m.Payload), nil
		}
		return engine.DiscardTokenCommand(m.Payload), nil
	case "buy_card", "preserve_card":
		var m cardMessage
		if err := decodeMessage(msgMap, &m); err != nil {
			return engine.Command{}, fmt.Errorf("消息格式错误: %w", err)
		}
		if msgType == "buy_card" {
			return engine.BuyCardCommand(m.Payload, m.FromReserved), nil
		}
		return engine.ReserveCardCommand(m.Payload), nil
	case "preserve_deck":
		var m deckMessage
		if err := decodeMessage(msgMap, &m); err != nil {
			return engine.Command{}, fmt.Errorf("消息格式错误: %w", err)
		}
		return engine.ReserveFromDeckCommand(m.Payload), nil
	case "end_turn":
		return engine.EndTurnCommand(), nil
	}
	return engine.Command{}, fmt.Errorf("未知的消息类型 %q", msgType)
}

func handleCommandMessage(conn ReadWriteConn, rdb *redis.Client, roomID string, playerID string, msgMap map[string]interface{}) {
	msgType, _ := msgMap["type"].(string)
	cmd, err := parseCommand(msgType, msgMap)
	if err != nil {
		logger.L.Warn("❌ 消息解析失败", zap.String("player", playerID), zap.Error(err))
		sendError(conn, "", err.Error())
		return
	}
	applyCommand(conn, roomID, playerID, cmd)
}

// applyCommand 以发送者的身份交给引擎执行，回合归属由引擎在同一把锁里校验；被拒绝时只通知发送者
func applyCommand(conn WriteOnlyConn, roomID, playerID string, cmd engine.Command) {
	s := getSession(roomID)
	if s == nil {
		sendError(conn, "", "游戏还没有开始")
		return
	}

	cmd = cmd.By(playerID)
	snap, events, err := s.game.Apply(cmd)
	if err != nil {
		logger.L.Info("命令被拒绝",
			zap.String("roomID", roomID),
			zap.String("player", playerID),
			zap.Stringer("command", cmd),
			zap.String("reason", engine.Reason(err)),
		)
		sendError(conn, errorKind(err), engine.Reason(err))
		if snap == nil {
			return
		}
	}
	afterCommand(roomID, playerID, cmd, snap, events)
}

func errorKind(err error) string {
	var ee *engine.EngineError
	if errors.As(err, &ee) {
		return ee.Kind.Error()
	}
	return ""
}

// afterCommand 命令提交之后：记录最近操作、保存局面、更新房间状态、广播事件
func afterCommand(roomID, playerID string, cmd engine.Command, snap *engine.Snapshot, events []engine.Event) {
	if err := SetLastData(roomID, playerID, string(cmd.Kind), cmd); err != nil {
		logger.L.Warn("❌ 保存最近操作失败", zap.Error(err))
	}
	if err := SaveSnapshot(roomID, snap); err != nil {
		logger.L.Warn("❌ 保存局面失败", zap.Error(err))
	}
	updateGameStatus(roomID, snap)
	WriteGameLog(roomID, playerID, cmd, events, snap)
	broadcastEvents(roomID, events)
}

// updateGameStatus 有人到 15 分进入最后一轮，引擎判定结束后记录结果
func updateGameStatus(roomID string, snap *engine.Snapshot) {
	roomInfo, err := GetRoomInfo(roomID)
	if err != nil {
		logger.L.Warn("❌ 获取房间信息失败", zap.Error(err))
		return
	}

	if snap.Finished {
		if roomInfo.GameStatus == entities.RoomStatusEnd {
			return
		}
		if err := SetGameStatus(repository.Rdb, roomID, entities.RoomStatusEnd); err != nil {
			logger.L.Warn("设置游戏状态失败", zap.Error(err))
		}
		go recordResults(roomID, snap)
		return
	}

	if roomInfo.GameStatus != entities.RoomStatusPlaying {
		return
	}
	for _, p := range snap.Players {
		if p.VictoryPoints() >= engine.WinningPoints {
			if err := SetGameStatus(repository.Rdb, roomID, entities.RoomStatusLastTurn); err != nil {
				logger.L.Warn("设置游戏状态失败", zap.Error(err))
			}
			return
		}
	}
}

func gameResults(roomID string, snap *engine.Snapshot, finishedAt time.Time) []repository.GameResult {
	results := make([]repository.GameResult, 0, len(snap.Players))
	for i, p := range snap.Players {
		results = append(results, repository.GameResult{
			RoomID:     roomID,
			PlayerID:   p.ID,
			IsAI:       p.IsAI,
			Points:     p.VictoryPoints(),
			Cards:      len(p.Purchased),
			Winner:     i == snap.WinnerIndex,
			FinishedAt: finishedAt,
		})
	}
	return results
}

func recordResults(roomID string, snap *engine.Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := repository.SaveGameResults(ctx, repository.DB, gameResults(roomID, snap, time.Now())); err != nil {
		logger.L.Error("❌ 保存对局结果失败", zap.String("roomID", roomID), zap.Error(err))
		return
	}
	logger.L.Info("🏆 对局结果已保存", zap.String("roomID", roomID), zap.Int("winner", snap.WinnerIndex))
}
