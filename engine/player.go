package engine

import "go-splendor/entities"

const (
	MaxHandTokens   = 10
	MaxReservedCard = 3
	WinningPoints   = 15
)

type PlayerConfig struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	IsAI bool   `json:"isAI"`
}

// PlayerState 玩家在整局游戏中的持有物
type PlayerState struct {
	ID        string                     `json:"id"`
	Name      string                     `json:"name"`
	IsAI      bool                       `json:"isAI"`
	Tokens    map[entities.TokenType]int `json:"tokens"`
	Purchased []entities.NormalCard      `json:"purchased"`
	Reserved  []entities.NormalCard      `json:"reserved"`
	Nobles    []entities.NobleCard       `json:"nobles"`
}

func NewPlayerState(cfg PlayerConfig) *PlayerState {
	p := &PlayerState{
		ID:        cfg.ID,
		Name:      cfg.Name,
		IsAI:      cfg.IsAI,
		Tokens:    make(map[entities.TokenType]int, len(entities.AllTokenTypes)),
		Purchased: []entities.NormalCard{},
		Reserved:  []entities.NormalCard{},
		Nobles:    []entities.NobleCard{},
	}
	for _, t := range entities.AllTokenTypes {
		p.Tokens[t] = 0
	}
	return p
}

func (p *PlayerState) TokenCount(t entities.TokenType) int {
	return p.Tokens[t]
}

func (p *PlayerState) TotalTokenCount() int {
	total := 0
	for _, n := range p.Tokens {
		total += n
	}
	return total
}

// BonusCount 已购买卡牌中该颜色折扣的数量
func (p *PlayerState) BonusCount(t entities.TokenType) int {
	n := 0
	for _, c := range p.Purchased {
		if c.Bonus == t {
			n++
		}
	}
	return n
}

func (p *PlayerState) Bonuses() map[entities.TokenType]int {
	b := make(map[entities.TokenType]int, len(entities.StandardTokenTypes))
	for _, c := range p.Purchased {
		b[c.Bonus]++
	}
	return b
}

func (p *PlayerState) VictoryPoints() int {
	points := 0
	for _, c := range p.Purchased {
		points += c.Points
	}
	for _, n := range p.Nobles {
		points += n.Points
	}
	return points
}

func (p *PlayerState) ReservedIndex(cardID int) int {
	for i, c := range p.Reserved {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}

func (p *PlayerState) addTokens(tokens map[entities.TokenType]int) {
	for t, n := range tokens {
		p.Tokens[t] += n
	}
}

func (p *PlayerState) removeTokens(tokens map[entities.TokenType]int) {
	for t, n := range tokens {
		p.Tokens[t] -= n
	}
}

func (p *PlayerState) Clone() *PlayerState {
	c := *p
	c.Tokens = make(map[entities.TokenType]int, len(p.Tokens))
	for t, n := range p.Tokens {
		c.Tokens[t] = n
	}
	c.Purchased = make([]entities.NormalCard, len(p.Purchased))
	for i, card := range p.Purchased {
		c.Purchased[i] = card.Clone()
	}
	c.Reserved = make([]entities.NormalCard, len(p.Reserved))
	for i, card := range p.Reserved {
		c.Reserved[i] = card.Clone()
	}
	c.Nobles = make([]entities.NobleCard, len(p.Nobles))
	for i, n := range p.Nobles {
		c.Nobles[i] = n.Clone()
	}
	return &c
}
