package entities

type TokenType string

const (
	TokenWhite TokenType = "White"
	TokenBlue  TokenType = "Blue"
	TokenGreen TokenType = "Green"
	TokenRed   TokenType = "Red"
	TokenBlack TokenType = "Black"
	TokenGold  TokenType = "Gold" // 万能宝石，只能通过预定获得
)

// 五种普通宝石，遍历时统一使用这个顺序保证结果稳定
var StandardTokenTypes = []TokenType{TokenWhite, TokenBlue, TokenGreen, TokenRed, TokenBlack}

// 全部宝石类型（含万能宝石）
var AllTokenTypes = []TokenType{TokenWhite, TokenBlue, TokenGreen, TokenRed, TokenBlack, TokenGold}

func (t TokenType) IsStandard() bool {
	switch t {
	case TokenWhite, TokenBlue, TokenGreen, TokenRed, TokenBlack:
		return true
	}
	return false
}

func (t TokenType) IsWildcard() bool {
	return t == TokenGold
}

func (t TokenType) Valid() bool {
	return t.IsStandard() || t.IsWildcard()
}

const NoblePoints = 3

type NormalCard struct {
	ID     int               `json:"id"`     // 卡牌ID
	Level  int               `json:"level"`  // 1/2/3
	Bonus  TokenType         `json:"bonus"`  // 折扣颜色，只会是普通宝石
	Points int               `json:"points"` // 荣誉分
	Cost   map[TokenType]int `json:"cost"`   // 五色费用
}

func (c NormalCard) Clone() NormalCard {
	cost := make(map[TokenType]int, len(c.Cost))
	for t, n := range c.Cost {
		cost[t] = n
	}
	c.Cost = cost
	return c
}

type NobleCard struct {
	ID          string            `json:"id"`          // e.g., "N1"
	Requirement map[TokenType]int `json:"requirement"` // 奖励条件，只看折扣卡数量
	Points      int               `json:"points"`      // 固定 3 分
}

func (n NobleCard) Clone() NobleCard {
	req := make(map[TokenType]int, len(n.Requirement))
	for t, c := range n.Requirement {
		req[t] = c
	}
	n.Requirement = req
	return n
}
