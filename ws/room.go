package ws

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"go-splendor/ai"
	"go-splendor/dto"
	"go-splendor/engine"
	"go-splendor/entities"
	"go-splendor/logger"
	"go-splendor/repository"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// 房间内的所有连接，按入座顺序排列
var Rooms = make(map[string][]dto.PlayerConn)
var roomLock sync.Mutex

// gameSession 房间里正在进行的一局
type gameSession struct {
	game      *engine.Game
	runner    *ai.TurnRunner
	aiRunning atomic.Bool
}

var sessions = make(map[string]*gameSession)

func IsAIPlayer(playerID string) bool {
	return strings.HasPrefix(playerID, "ai_")
}

// RoomPlayers 房间内玩家的拷贝
func RoomPlayers(roomID string) ([]dto.RoomPlayer, bool) {
	roomLock.Lock()
	defer roomLock.Unlock()
	conns, ok := Rooms[roomID]
	if !ok {
		return nil, false
	}
	players := make([]dto.RoomPlayer, 0, len(conns))
	for _, pc := range conns {
		players = append(players, dto.RoomPlayer{
			PlayerID: pc.PlayerID,
			Online:   pc.Online,
			IsAI:     pc.IsAI,
			Ready:    pc.Ready,
		})
	}
	return players, true
}

func RoomIDs() []string {
	roomLock.Lock()
	defer roomLock.Unlock()
	ids := make([]string, 0, len(Rooms))
	for id := range Rooms {
		ids = append(ids, id)
	}
	return ids
}

func OpenRoom(roomID string) {
	roomLock.Lock()
	defer roomLock.Unlock()
	Rooms[roomID] = []dto.PlayerConn{}
}

func RemoveRoom(roomID string) {
	roomLock.Lock()
	defer roomLock.Unlock()
	for _, pc := range Rooms[roomID] {
		if pc.Conn != nil && !pc.IsAI {
			pc.Conn.Close()
		}
	}
	delete(Rooms, roomID)
	delete(sessions, roomID)
}

func getSession(roomID string) *gameSession {
	roomLock.Lock()
	defer roomLock.Unlock()
	return sessions[roomID]
}

// reconnect 已在房间里的玩家换上新连接，旧连接关闭，旧的读循环随之退出
func reconnect(roomID, playerID string, conn ReadWriteConn) bool {
	roomLock.Lock()
	defer roomLock.Unlock()

	for i, pc := range Rooms[roomID] {
		if pc.PlayerID != playerID || pc.IsAI {
			continue
		}
		if old := pc.Conn; old != nil && old != conn {
			old.Close()
		}
		Rooms[roomID][i].Conn = conn
		Rooms[roomID][i].Online = true
		logger.L.Info("玩家重连成功", zap.String("roomID", roomID), zap.String("player", playerID))
		return true
	}
	return false
}

// 校验房间是否有空位，并将玩家加入房间；已在房间里的玩家视为重连
func validateAndJoinRoom(roomID, playerID string, conn ReadWriteConn) error {
	if reconnect(roomID, playerID, conn) {
		return nil
	}
	roomInfo, err := GetRoomInfo(roomID)
	if err != nil {
		return err
	}

	roomLock.Lock()
	defer roomLock.Unlock()

	if playerSeat(roomID, playerID) >= 0 {
		return fmt.Errorf("玩家 %s 已在房间中", playerID)
	}
	if IsAIPlayer(playerID) {
		return fmt.Errorf("玩家ID不能以 ai_ 开头")
	}
	if len(Rooms[roomID]) >= roomInfo.MaxPlayers {
		return fmt.Errorf("房间已满")
	}
	if sessions[roomID] != nil {
		return fmt.Errorf("游戏已经开始")
	}

	Rooms[roomID] = append(Rooms[roomID], dto.PlayerConn{
		PlayerID: playerID,
		Conn:     conn,
		Online:   true,
	})
	logger.L.Info("玩家加入房间", zap.String("roomID", roomID), zap.String("player", playerID))
	return nil
}

// playerSeat 调用方需持有 roomLock
func playerSeat(roomID, playerID string) int {
	for i, pc := range Rooms[roomID] {
		if pc.PlayerID == playerID {
			return i
		}
	}
	return -1
}

// JoinRoomAsAI AI 座位用虚拟连接加入，并且一直处于准备状态
func JoinRoomAsAI(roomID, playerID string, maxPlayers int) error {
	roomLock.Lock()
	defer roomLock.Unlock()

	if len(Rooms[roomID]) >= maxPlayers {
		return fmt.Errorf("房间 %s 已满，AI %s 无法加入", roomID, playerID)
	}
	Rooms[roomID] = append(Rooms[roomID], dto.PlayerConn{
		PlayerID: playerID,
		Conn:     &VirtualConn{PlayerID: playerID, RoomID: roomID},
		Online:   true,
		IsAI:     true,
		Ready:    true,
	})
	logger.L.Info("🤖 AI 玩家加入房间", zap.String("roomID", roomID), zap.String("player", playerID))
	return nil
}

// 玩家断开连接后，标记为离线，保留座位等待重连
func cleanupOnDisconnect(roomID, playerID string, conn *websocket.Conn) {
	roomLock.Lock()
	for i, pc := range Rooms[roomID] {
		if pc.PlayerID != playerID {
			continue
		}
		if rc, ok := pc.Conn.(*dto.RealConn); ok && rc.Conn == conn {
			Rooms[roomID][i].Online = false
			Rooms[roomID][i].Conn = nil
			logger.L.Info("玩家标记为离线", zap.String("roomID", roomID), zap.String("player", playerID))
		}
		break
	}
	roomLock.Unlock()

	roomInfo, err := GetRoomInfo(roomID)
	if err != nil {
		logger.L.Error("❌ 获取房间信息失败", zap.Error(err))
		return
	}
	if roomInfo.RoomStatus {
		SetRoomStatus(repository.Rdb, roomID, false)
	}
	BroadcastToRoom(roomID)
}

func setReady(roomID, playerID string) {
	roomLock.Lock()
	defer roomLock.Unlock()
	for i, pc := range Rooms[roomID] {
		if pc.PlayerID == playerID {
			Rooms[roomID][i].Ready = true
		}
	}
}

// startGameIfReady 坐满并且都准备好后开局，返回是否开局
func startGameIfReady(roomID string, roomInfo *entities.RoomInfo) (bool, error) {
	roomLock.Lock()
	defer roomLock.Unlock()

	if sessions[roomID] != nil {
		return false, nil
	}
	conns := Rooms[roomID]
	if len(conns) < roomInfo.MaxPlayers {
		return false, nil
	}
	configs := make([]engine.PlayerConfig, 0, len(conns))
	for _, pc := range conns {
		if !pc.Ready {
			return false, nil
		}
		configs = append(configs, engine.PlayerConfig{ID: pc.PlayerID, Name: pc.PlayerID, IsAI: pc.IsAI})
	}

	s, err := newSession(configs, roomInfo.Seed, roomInfo.Strategy)
	if err != nil {
		return false, err
	}
	sessions[roomID] = s
	return true, nil
}

func newSession(configs []engine.PlayerConfig, seed uint64, strategyName string) (*gameSession, error) {
	g, err := engine.Setup(configs, seed, engine.WithLogger(logger.L))
	if err != nil {
		return nil, fmt.Errorf("初始化游戏失败: %w", err)
	}
	if strategyName == "" {
		strategyName = aiStrategy
	}
	strategy, err := ai.StrategyByName(strategyName)
	if err != nil {
		return nil, err
	}
	policy := ai.NewPolicy(strategy, seed)
	logger.L.Info("🤖 AI 策略", zap.String("strategy", policy.Strategy().Name()), zap.Uint64("seed", seed))
	return &gameSession{
		game:   g,
		runner: ai.NewTurnRunner(g, policy, logger.L),
	}, nil
}

// restartSession 用新的种子重开一局，座位不变
func restartSession(roomID string, roomInfo *entities.RoomInfo) (*gameSession, error) {
	roomLock.Lock()
	defer roomLock.Unlock()

	conns := Rooms[roomID]
	configs := make([]engine.PlayerConfig, 0, len(conns))
	for _, pc := range conns {
		configs = append(configs, engine.PlayerConfig{ID: pc.PlayerID, Name: pc.PlayerID, IsAI: pc.IsAI})
	}
	s, err := newSession(configs, roomInfo.Seed, roomInfo.Strategy)
	if err != nil {
		return nil, err
	}
	sessions[roomID] = s
	return s, nil
}
