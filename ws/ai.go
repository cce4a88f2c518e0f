package ws

import (
	"time"

	"go-splendor/logger"

	"go.uber.org/zap"
)

// MaybeRunAIIfNeeded 轮到 AI 时启动一个协程逐步执行，同一房间同时只有一个
func MaybeRunAIIfNeeded(roomID string) bool {
	s := getSession(roomID)
	if s == nil {
		return false
	}
	if !s.aiRunning.CompareAndSwap(false, true) {
		return false
	}
	go runAI(roomID, s)
	return true
}

// runAI 每隔 aiStepDelay 执行一个子步骤并广播，直到轮到真人或游戏结束
func runAI(roomID string, s *gameSession) {
	defer s.aiRunning.Store(false)

	for {
		time.Sleep(aiStepDelay)
		if getSession(roomID) != s {
			return // 房间被删除或重开
		}
		before := s.game.Snapshot()
		if before.Finished || !before.CurrentPlayer().IsAI {
			return
		}
		playerID := before.CurrentPlayer().ID

		res, err := s.runner.Step()
		if err != nil {
			logger.L.Error("❌ AI 执行失败", zap.String("roomID", roomID), zap.String("player", playerID), zap.Error(err))
			return
		}
		if res.Command.Kind == "" {
			return
		}
		logger.L.Info("🤖 AI 执行操作",
			zap.String("roomID", roomID),
			zap.String("player", playerID),
			zap.Stringer("command", res.Command),
		)
		afterCommand(roomID, playerID, res.Command, res.Snapshot, res.Events)
		BroadcastToRoom(roomID)
	}
}
