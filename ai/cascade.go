package ai

import (
	"go-splendor/engine"
	"go-splendor/entities"

	"golang.org/x/exp/rand"
)

const (
	reserveMinShortfall = 1
	reserveMaxShortfall = 5
	targetCardCount     = 3
)

// CascadeStrategy 默认策略，按优先级依次尝试：
// 买得起就买分最高的 → 预定差得不多的有分卡 → 拿前三张目标卡最缺的宝石 → 结束回合
type CascadeStrategy struct{}

func (CascadeStrategy) Name() string {
	return StrategyCascade
}

func (c CascadeStrategy) Decide(s *engine.Snapshot, rng *rand.Rand) engine.Command {
	p := s.CurrentPlayer()

	if engine.CanBuyCard(s.TurnAction) {
		if card := c.bestAffordable(s, p, rng); card != nil {
			return engine.BuyCardCommand(card.ID, false)
		}
		if engine.CanReserve(p) {
			if card := c.reserveTarget(s, p); card != nil {
				return engine.ReserveCardCommand(card.ID)
			}
		}
	}

	if t, ok := c.chooseToken(s, p, rng); ok {
		return engine.CollectTokenCommand(t)
	}
	return engine.EndTurnCommand()
}

func (CascadeStrategy) bestAffordable(s *engine.Snapshot, p *engine.PlayerState, rng *rand.Rand) *entities.NormalCard {
	var best []*entities.NormalCard
	for _, card := range s.VisibleCards() {
		if !engine.CanAffordCard(p, card) {
			continue
		}
		switch {
		case len(best) == 0 || card.Points > best[0].Points:
			best = []*entities.NormalCard{card}
		case card.Points == best[0].Points:
			best = append(best, card)
		}
	}
	if len(best) == 0 {
		return nil
	}
	return pick(rng, best)
}

// reserveTarget 买不起的卡中按分数从高到低，找第一张缺口在 [1,5] 且有分的
func (CascadeStrategy) reserveTarget(s *engine.Snapshot, p *engine.PlayerState) *entities.NormalCard {
	for _, card := range rankedVisible(s) {
		if card.Points <= 0 || engine.CanAffordCard(p, card) {
			continue
		}
		short := engine.TotalShortfall(p, card)
		if short >= reserveMinShortfall && short <= reserveMaxShortfall {
			return card
		}
	}
	return nil
}

func (CascadeStrategy) chooseToken(s *engine.Snapshot, p *engine.PlayerState, rng *rand.Rand) (entities.TokenType, bool) {
	if !collectionOpen(s) {
		return "", false
	}

	// 前三张高分卡的累计缺口
	need := make(map[entities.TokenType]int)
	ranked := rankedVisible(s)
	for i := 0; i < len(ranked) && i < targetCardCount; i++ {
		for t, n := range engine.ComputeShortfall(p, ranked[i]) {
			need[t] += n
		}
	}

	var fresh, available []entities.TokenType
	for _, t := range entities.StandardTokenTypes {
		if s.Count(t) <= 0 {
			continue
		}
		available = append(available, t)
		if !s.HasCollected(t) {
			fresh = append(fresh, t)
		}
	}

	var choice entities.TokenType
	var best []entities.TokenType
	for _, t := range fresh {
		if need[t] <= 0 {
			continue
		}
		switch {
		case len(best) == 0 || need[t] > need[best[0]]:
			best = []entities.TokenType{t}
		case need[t] == need[best[0]]:
			best = append(best, t)
		}
	}
	switch {
	case len(best) > 0:
		choice = pick(rng, best)
	case len(fresh) > 0:
		choice = pick(rng, fresh)
	case len(available) > 0:
		choice = pick(rng, available)
	default:
		return "", false
	}

	if s.CanCollect(choice) {
		return choice, true
	}
	return anyLegalToken(s)
}
