package ws

import (
	"encoding/json"
	"fmt"

	"go-splendor/repository"
)

type LastAction struct {
	Action   string          `json:"action"` // engine.CommandKind
	PlayerID string          `json:"playerID"`
	Payload  json.RawMessage `json:"payload"` // 原始 JSON 数据，延迟反序列化
}

// SetLastData 保存玩家最近一次成功执行的命令
func SetLastData(roomID, playerID string, action string, payload interface{}) error {
	lastDataKey := fmt.Sprintf("room:%s:last_data", roomID)

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("序列化 Payload 失败: %w", err)
	}

	bytes, err := json.Marshal(LastAction{
		Action:   action,
		PlayerID: playerID,
		Payload:  raw,
	})
	if err != nil {
		return fmt.Errorf("序列化 LastAction 失败: %w", err)
	}

	field := fmt.Sprintf("player:%s", playerID)
	return repository.Rdb.HSet(repository.Ctx, lastDataKey, field, bytes).Err()
}

func GetLastData(roomID, playerID string) (*LastAction, error) {
	lastDataKey := fmt.Sprintf("room:%s:last_data", roomID)
	field := fmt.Sprintf("player:%s", playerID)

	val, err := repository.Rdb.HGet(repository.Ctx, lastDataKey, field).Result()
	if err != nil {
		return nil, err
	}

	var action LastAction
	if err := json.Unmarshal([]byte(val), &action); err != nil {
		return nil, fmt.Errorf("反序列化 LastAction 失败: %w", err)
	}
	return &action, nil
}

func clearLastData(roomID string) error {
	return repository.Rdb.Del(repository.Ctx, fmt.Sprintf("room:%s:last_data", roomID)).Err()
}
