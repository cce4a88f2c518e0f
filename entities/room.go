package entities

type RoomInfo struct {
	RoomStatus bool       `json:"roomStatus"`
	GameStatus RoomStatus `json:"gameStatus"`
	MaxPlayers int        `json:"maxPlayers"`
	UserID     string     `json:"userID"`
	Seed       uint64     `json:"seed"`
	Strategy   string     `json:"strategy"` // AI 策略，空为默认
}

type RoomStatus string

const (
	RoomStatusWaiting  RoomStatus = "waiting"   // 等待玩家加入房间
	RoomStatusPlaying  RoomStatus = "playing"   // 游戏进行中
	RoomStatusLastTurn RoomStatus = "last_turn" // 有人达到 15 分，打完这一轮
	RoomStatusEnd      RoomStatus = "end"
)
