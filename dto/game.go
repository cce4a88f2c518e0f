package dto

import (
	"sync"

	"go-splendor/engine"
	"go-splendor/entities"

	"github.com/gorilla/websocket"
)

type ConnInterface interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// RealConn 真实客户端连接，websocket 不允许并发写，这里串行化
type RealConn struct {
	*websocket.Conn
	mu sync.Mutex
}

func (r *RealConn) WriteMessage(messageType int, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Conn.WriteMessage(messageType, data)
}

func (r *RealConn) Close() error {
	return r.Conn.Close()
}

// 玩家连接对象结构体
type PlayerConn struct {
	PlayerID string
	Conn     ConnInterface
	Online   bool
	IsAI     bool
	Ready    bool
}

// SyncMessage 每次状态变化后推给每个玩家的完整局面
type SyncMessage struct {
	Type          string             `json:"type"`
	PlayerID      string             `json:"playerId"`
	CurrentPlayer string             `json:"currentPlayer"`
	RoomInfo      *entities.RoomInfo `json:"roomInfo"`
	Players       []RoomPlayer       `json:"players"`
	Snapshot      *engine.Snapshot   `json:"snapshot,omitempty"`
	LegalActions  []engine.Command   `json:"legalActions"` // 只有轮到自己时才有
}

type EventsMessage struct {
	Type   string         `json:"type"`
	Events []engine.Event `json:"events"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}
