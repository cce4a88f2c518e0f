package ai

import (
	"fmt"
	"sort"
	"strings"

	"go-splendor/engine"
	"go-splendor/entities"

	"golang.org/x/exp/rand"
)

// Strategy 根据快照给出下一条命令，只读快照，不修改任何状态
type Strategy interface {
	Name() string
	Decide(s *engine.Snapshot, rng *rand.Rand) engine.Command
}

const (
	StrategyCascade  = "cascade"
	StrategyWeighted = "weighted"
)

func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "", StrategyCascade:
		return CascadeStrategy{}, nil
	case StrategyWeighted:
		return NewWeightedStrategy(), nil
	}
	return nil, fmt.Errorf("未知的 AI 策略: %s", name)
}

// Policy 策略加上可注入的随机数，种子相同则决策完全一致
type Policy struct {
	strategy Strategy
	rng      *rand.Rand
}

func NewPolicy(strategy Strategy, seed uint64) *Policy {
	if strategy == nil {
		strategy = CascadeStrategy{}
	}
	return &Policy{
		strategy: strategy,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (p *Policy) Strategy() Strategy {
	return p.strategy
}

func (p *Policy) Decide(s *engine.Snapshot) engine.Command {
	if s.Finished {
		return engine.EndTurnCommand()
	}
	return p.strategy.Decide(s, p.rng)
}

// 按分数从高到低排序桌面卡牌，同分保持桌面顺序
func rankedVisible(s *engine.Snapshot) []*entities.NormalCard {
	cards := s.VisibleCards()
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Points > cards[j].Points
	})
	return cards
}

func pick[T any](rng *rand.Rand, items []T) T {
	if len(items) == 1 {
		return items[0]
	}
	return items[rng.Intn(len(items))]
}

// collectionOpen 本回合还能不能继续拿宝石
func collectionOpen(s *engine.Snapshot) bool {
	if s.TurnAction == engine.TurnActionBought || s.TurnAction == engine.TurnActionReserved {
		return false
	}
	return s.TokensCollectedThisTurn < 3
}

// anyLegalToken 兜底：按固定顺序找第一个合法的颜色
func anyLegalToken(s *engine.Snapshot) (entities.TokenType, bool) {
	for _, t := range entities.StandardTokenTypes {
		if s.CanCollect(t) {
			return t, true
		}
	}
	return "", false
}
