package engine

import "go-splendor/entities"

const (
	TierCount    = 3
	VisibleSlots = 4
)

// Snapshot 某一时刻的完整局面，所有字段都是拷贝，修改不会影响引擎
type Snapshot struct {
	Seed                    uint64                            `json:"seed"`
	Round                   int                               `json:"round"`
	CurrentPlayerIndex      int                               `json:"currentPlayerIndex"`
	Players                 []*PlayerState                    `json:"players"`
	Supply                  *TokenSupply                      `json:"supply"`
	Visible                 [TierCount][]*entities.NormalCard `json:"visible"` // nil 表示该位置已空
	DeckCounts              [TierCount]int                    `json:"deckCounts"`
	Nobles                  []entities.NobleCard              `json:"nobles"`
	TokensCollectedThisTurn int                               `json:"tokensCollectedThisTurn"`
	CollectedTypesThisTurn  []entities.TokenType              `json:"collectedTypesThisTurn"`
	TurnAction              TurnAction                        `json:"turnAction"`
	Finished                bool                              `json:"finished"`
	WinnerIndex             int                               `json:"winnerIndex"` // 未结束时为 -1
}

func (s *Snapshot) CurrentPlayer() *PlayerState {
	return s.Players[s.CurrentPlayerIndex]
}

// Count 快照里的宝石池数量，让快照也能用于规则判断
func (s *Snapshot) Count(t entities.TokenType) int {
	return s.Supply.Count(t)
}

// VisibleCards 桌面上翻开的卡牌（跳过空位），按等级、位置排列
func (s *Snapshot) VisibleCards() []*entities.NormalCard {
	cards := make([]*entities.NormalCard, 0, TierCount*VisibleSlots)
	for tier := range s.Visible {
		for _, c := range s.Visible[tier] {
			if c != nil {
				cards = append(cards, c)
			}
		}
	}
	return cards
}

func (s *Snapshot) FindVisible(cardID int) *entities.NormalCard {
	for _, c := range s.VisibleCards() {
		if c.ID == cardID {
			return c
		}
	}
	return nil
}

// HasCollected 本回合是否已经拿过该颜色
func (s *Snapshot) HasCollected(t entities.TokenType) bool {
	for _, c := range s.CollectedTypesThisTurn {
		if c == t {
			return true
		}
	}
	return false
}

// CanCollect 当前玩家此刻能否拿该颜色
func (s *Snapshot) CanCollect(t entities.TokenType) bool {
	return CanCollectToken(t, s, s.TurnAction, s.CollectedTypesThisTurn)
}
