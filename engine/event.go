package engine

import "go-splendor/entities"

type EventType string

const (
	EventTokenCollected EventType = "token_collected"
	EventTokenReturned  EventType = "token_returned" // 撤销本回合拿的宝石
	EventTokenDiscarded EventType = "token_discarded"
	EventCardBought     EventType = "card_bought"
	EventCardReserved   EventType = "card_reserved"
	EventNobleClaimed   EventType = "noble_claimed"
	EventTurnEnded      EventType = "turn_ended"
	EventGameEnded      EventType = "game_ended"
)

// Event 引擎对外发出的事件，统计、音效、界面只读不回写
type Event struct {
	Type        EventType            `json:"type"`
	PlayerIndex int                  `json:"playerIndex"`
	PlayerID    string               `json:"playerID"`
	Round       int                  `json:"round"`
	Token       entities.TokenType   `json:"token,omitempty"`
	Card        *entities.NormalCard `json:"card,omitempty"`
	Noble       *entities.NobleCard  `json:"noble,omitempty"`
	FromDeck    bool                 `json:"fromDeck,omitempty"`
	Wildcard    bool                 `json:"wildcard,omitempty"` // 预定时是否拿到万能宝石
	WinnerIndex *int                 `json:"winnerIndex,omitempty"` // 只有 game_ended 带
	WinnerID    string               `json:"winnerID,omitempty"`
	Points      int                  `json:"points"`
}
