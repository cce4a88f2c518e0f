package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go-splendor/engine"
	"go-splendor/entities"
	"go-splendor/logger"
	"go-splendor/repository"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func roomInfoKey(roomID string) string {
	return fmt.Sprintf("room:%s:roomInfo", roomID)
}

// SetRoomInfo 设置房间的全部信息（Hash）
func SetRoomInfo(rdb *redis.Client, ctx context.Context, roomID string, info entities.RoomInfo) error {
	data := map[string]interface{}{
		"gameStatus": string(info.GameStatus),
		"roomStatus": strconv.FormatBool(info.RoomStatus),
		"maxPlayers": strconv.Itoa(info.MaxPlayers),
		"userID":     info.UserID,
		"seed":       strconv.FormatUint(info.Seed, 10),
		"strategy":   info.Strategy,
	}

	if err := rdb.HSet(ctx, roomInfoKey(roomID), data).Err(); err != nil {
		return fmt.Errorf("❌ 设置房间信息失败: %w", err)
	}
	return nil
}

// GetRoomInfo 获取房间的全部信息（Hash）
func GetRoomInfo(roomID string) (*entities.RoomInfo, error) {
	roomInfoMap, err := repository.Rdb.HGetAll(repository.Ctx, roomInfoKey(roomID)).Result()
	if err != nil {
		return nil, fmt.Errorf("❌ 获取房间信息失败: %w", err)
	}
	if len(roomInfoMap) == 0 {
		return nil, fmt.Errorf("房间信息为空")
	}
	return parseRoomInfo(roomInfoMap)
}

func parseRoomInfo(m map[string]string) (*entities.RoomInfo, error) {
	roomStatus, err := strconv.ParseBool(m["roomStatus"])
	if err != nil {
		return nil, fmt.Errorf("roomStatus 字段解析失败: %w", err)
	}
	roomInfo := &entities.RoomInfo{
		RoomStatus: roomStatus,
		GameStatus: entities.RoomStatus(m["gameStatus"]),
		UserID:     m["userID"],
		Strategy:   m["strategy"],
	}
	if s := m["maxPlayers"]; s != "" {
		if roomInfo.MaxPlayers, err = strconv.Atoi(s); err != nil {
			return nil, fmt.Errorf("maxPlayers 字段解析失败: %w", err)
		}
	}
	if s := m["seed"]; s != "" {
		if roomInfo.Seed, err = strconv.ParseUint(s, 10, 64); err != nil {
			return nil, fmt.Errorf("seed 字段解析失败: %w", err)
		}
	}
	return roomInfo, nil
}

func SetGameStatus(rdb *redis.Client, roomID string, status entities.RoomStatus) error {
	if err := rdb.HSet(repository.Ctx, roomInfoKey(roomID), "gameStatus", string(status)).Err(); err != nil {
		return fmt.Errorf("更新房间 %s 游戏状态失败: %w", roomID, err)
	}
	logger.L.Info("房间状态已更新", zap.String("roomID", roomID), zap.String("gameStatus", string(status)))
	return nil
}

func SetRoomStatus(rdb *redis.Client, roomID string, status bool) error {
	if err := rdb.HSet(repository.Ctx, roomInfoKey(roomID), "roomStatus", strconv.FormatBool(status)).Err(); err != nil {
		return fmt.Errorf("更新房间状态失败: %w", err)
	}
	return nil
}

func SetSeed(rdb *redis.Client, roomID string, seed uint64) error {
	return rdb.HSet(repository.Ctx, roomInfoKey(roomID), "seed", strconv.FormatUint(seed, 10)).Err()
}

// SaveSnapshot 保存最新局面，房间详情接口和断线重连都从这里读
func SaveSnapshot(roomID string, snap *engine.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("局面序列化失败: %w", err)
	}
	key := fmt.Sprintf("room:%s:snapshot", roomID)
	if err := repository.Rdb.Set(repository.Ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("保存局面失败: %w", err)
	}
	return nil
}

// LoadSnapshot 还没开局时返回 nil
func LoadSnapshot(roomID string) (*engine.Snapshot, error) {
	key := fmt.Sprintf("room:%s:snapshot", roomID)
	val, err := repository.Rdb.Get(repository.Ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取局面失败: %w", err)
	}
	var snap engine.Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, fmt.Errorf("局面解析失败: %w", err)
	}
	return &snap, nil
}

func setGameStartTime(roomID string) {
	startKey := fmt.Sprintf("room:%s:game_start_time", roomID)
	repository.Rdb.Set(repository.Ctx, startKey, time.Now().Format("20060102_150405"), 0)
}
