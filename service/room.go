package service

import (
	"fmt"
	"strings"

	"go-splendor/ai"
	"go-splendor/dto"
	"go-splendor/entities"
	"go-splendor/logger"
	"go-splendor/repository"
	"go-splendor/ws"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

func shortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

func CreateRoom(params dto.CreateRoomRequest) (string, error) {
	if params.AIPlayers >= params.MaxPlayers {
		return "", fmt.Errorf("至少要留一个真人座位")
	}
	if _, err := ai.StrategyByName(params.Strategy); err != nil {
		return "", err
	}

	// 生成唯一 Room ID（8位）
	roomID := shortID()
	info := entities.RoomInfo{
		MaxPlayers: params.MaxPlayers,
		GameStatus: entities.RoomStatusWaiting,
		RoomStatus: false,
		UserID:     params.UserID,
		Seed:       rand.Uint64(),
		Strategy:   params.Strategy,
	}
	if err := ws.SetRoomInfo(repository.Rdb, repository.Ctx, roomID, info); err != nil {
		return "", fmt.Errorf("初始化房间信息失败: %w", err)
	}

	ws.OpenRoom(roomID)
	for i := 0; i < params.AIPlayers; i++ {
		if err := ws.JoinRoomAsAI(roomID, "ai_"+shortID(), params.MaxPlayers); err != nil {
			return "", err
		}
	}
	logger.L.Info("✅ 房间创建成功",
		zap.String("roomID", roomID),
		zap.Int("maxPlayers", params.MaxPlayers),
		zap.Int("aiPlayers", params.AIPlayers),
	)
	return roomID, nil
}

func DeleteRoom(params dto.DeleteRoomRequest) error {
	ctx := repository.Ctx
	rdb := repository.Rdb

	// 用 SCAN 查找所有以 room:{RoomID}: 开头的 key
	prefix := fmt.Sprintf("room:%s:", params.RoomID)
	var cursor uint64
	var keysToDelete []string

	for {
		keys, cur, err := rdb.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("扫描房间相关 key 失败: %w", err)
		}
		keysToDelete = append(keysToDelete, keys...)
		cursor = cur
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		return fmt.Errorf("房间不存在或无相关数据")
	}

	if _, err := rdb.Del(ctx, keysToDelete...).Result(); err != nil {
		return fmt.Errorf("删除房间相关 key 失败: %w", err)
	}
	ws.RemoveRoom(params.RoomID)
	return nil
}

func roomInfo(roomID string) (*dto.RoomInfo, error) {
	players, ok := ws.RoomPlayers(roomID)
	if !ok {
		return nil, fmt.Errorf("房间 %s 不存在", roomID)
	}
	info, err := ws.GetRoomInfo(roomID)
	if err != nil {
		return nil, err
	}
	return &dto.RoomInfo{
		RoomID:     roomID,
		UserID:     info.UserID,
		MaxPlayers: info.MaxPlayers,
		Status:     info.RoomStatus,
		GameStatus: info.GameStatus,
		RoomPlayer: players,
	}, nil
}

func GetRoomList() ([]dto.RoomInfo, error) {
	rooms := make([]dto.RoomInfo, 0)
	for _, roomID := range ws.RoomIDs() {
		room, err := roomInfo(roomID)
		if err != nil {
			// Redis 里已经没有的房间直接清掉
			ws.RemoveRoom(roomID)
			continue
		}
		rooms = append(rooms, *room)
	}
	return rooms, nil
}

// GetRoomDetail 房间信息、保存的局面和每个玩家最近一次操作
func GetRoomDetail(roomID string) (*dto.RoomDetail, error) {
	room, err := roomInfo(roomID)
	if err != nil {
		return nil, err
	}
	snap, err := ws.LoadSnapshot(roomID)
	if err != nil {
		return nil, err
	}
	detail := &dto.RoomDetail{
		RoomInfo:    *room,
		Snapshot:    snap,
		LastActions: make(map[string]interface{}),
	}
	for _, p := range room.RoomPlayer {
		if last, err := ws.GetLastData(roomID, p.PlayerID); err == nil {
			detail.LastActions[p.PlayerID] = last
		}
	}
	return detail, nil
}

func GetOnlinePlayer() int {
	online := 0
	for _, roomID := range ws.RoomIDs() {
		players, _ := ws.RoomPlayers(roomID)
		for _, p := range players {
			if p.Online && !p.IsAI {
				online++
			}
		}
	}
	return online
}
