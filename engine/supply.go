package engine

import (
	"fmt"

	"go-splendor/entities"
)

const WildcardSupply = 5

// 按人数决定每种普通宝石的数量
func standardSupplyFor(players int) int {
	switch players {
	case 2:
		return 4
	case 3:
		return 5
	default:
		return 7
	}
}

// TokenSupply 公共宝石池，只做数量的增减，不关心回合规则
type TokenSupply struct {
	Counts  map[entities.TokenType]int `json:"counts"`
	Initial map[entities.TokenType]int `json:"initial"`
}

func NewTokenSupply(players int) *TokenSupply {
	s := &TokenSupply{
		Counts:  make(map[entities.TokenType]int, len(entities.AllTokenTypes)),
		Initial: make(map[entities.TokenType]int, len(entities.AllTokenTypes)),
	}
	for _, t := range entities.StandardTokenTypes {
		s.Counts[t] = standardSupplyFor(players)
	}
	s.Counts[entities.TokenGold] = WildcardSupply
	for t, n := range s.Counts {
		s.Initial[t] = n
	}
	return s
}

func (s *TokenSupply) Count(t entities.TokenType) int {
	return s.Counts[t]
}

func (s *TokenSupply) InitialCount(t entities.TokenType) int {
	return s.Initial[t]
}

func (s *TokenSupply) CanTake(t entities.TokenType, n int) bool {
	return n >= 0 && s.Counts[t] >= n
}

// Take 从池中取出 n 个宝石
func (s *TokenSupply) Take(t entities.TokenType, n int) (map[entities.TokenType]int, error) {
	if !t.Valid() {
		return nil, newError(ErrIllegalAction, "未知的宝石类型 %q", t)
	}
	if !s.CanTake(t, n) {
		return nil, newError(ErrInsufficientSupply, "%s 只剩 %d 个，想拿 %d 个", t, s.Counts[t], n)
	}
	s.Counts[t] -= n
	return map[entities.TokenType]int{t: n}, nil
}

// Return 宝石放回池中
func (s *TokenSupply) Return(tokens map[entities.TokenType]int) {
	for t, n := range tokens {
		if n > 0 {
			s.Counts[t] += n
		}
	}
}

func (s *TokenSupply) Clone() *TokenSupply {
	c := &TokenSupply{
		Counts:  make(map[entities.TokenType]int, len(s.Counts)),
		Initial: make(map[entities.TokenType]int, len(s.Initial)),
	}
	for t, n := range s.Counts {
		c.Counts[t] = n
	}
	for t, n := range s.Initial {
		c.Initial[t] = n
	}
	return c
}

func (s *TokenSupply) String() string {
	return fmt.Sprint(s.Counts)
}
