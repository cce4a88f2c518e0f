// virtual_conn.go
package ws

import (
	"encoding/json"
	"fmt"

	"go-splendor/dto"
)

var _ ReadWriteConn = (*VirtualConn)(nil) // 编译期断言实现

// VirtualConn AI 座位的连接，收到同步消息后如果轮到自己就启动 AI
type VirtualConn struct {
	PlayerID string
	RoomID   string
}

func (v *VirtualConn) WriteMessage(messageType int, data []byte) error {
	var msg dto.SyncMessage
	if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "sync" {
		return nil
	}
	if msg.CurrentPlayer == v.PlayerID && msg.Snapshot != nil && !msg.Snapshot.Finished {
		MaybeRunAIIfNeeded(v.RoomID)
	}
	return nil
}

func (v *VirtualConn) ReadMessage() (messageType int, p []byte, err error) {
	return 0, nil, fmt.Errorf("virtual connection cannot read")
}

func (v *VirtualConn) Close() error {
	return nil
}
