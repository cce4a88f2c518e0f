package dto

import (
	"go-splendor/engine"
	"go-splendor/entities"
)

type RoomPlayer struct {
	PlayerID string `json:"playerID"`
	Online   bool   `json:"online"`
	IsAI     bool   `json:"isAI"`
	Ready    bool   `json:"ready"`
}

type RoomInfo struct {
	RoomID     string              `json:"roomID"`
	UserID     string              `json:"userID"`
	MaxPlayers int                 `json:"maxPlayers"`
	Status     bool                `json:"status"`
	GameStatus entities.RoomStatus `json:"gameStatus"`
	RoomPlayer []RoomPlayer        `json:"roomPlayer"`
}

// RoomDetail 房间信息加上最近一次保存的局面
type RoomDetail struct {
	RoomInfo
	Snapshot    *engine.Snapshot       `json:"snapshot,omitempty"`
	LastActions map[string]interface{} `json:"lastActions"`
}

type CreateRoomRequest struct {
	MaxPlayers int    `json:"maxPlayers" binding:"required,min=2,max=4"`
	UserID     string `json:"userID"`
	AIPlayers  int    `json:"aiPlayers" binding:"min=0,max=3"`
	Strategy   string `json:"strategy"`
}

type CreateRoomResponse struct {
	Room_id string `json:"room_id" binding:"required"`
}

type DeleteRoomRequest struct {
	RoomID string `json:"roomID" binding:"required"`
}

type GetRoomList struct {
	Rooms []RoomInfo `json:"rooms"`
}

type GuestLoginRequest struct {
	UserID string `json:"userID"`
}

type TokenResponse struct {
	UserID       string `json:"userID"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
