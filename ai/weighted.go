package ai

import (
	"sort"

	"go-splendor/engine"
	"go-splendor/entities"

	"golang.org/x/exp/rand"
)

// WeightedStrategy 备选策略：给每张卡打分，预定区的卡也算目标，拿宝石时考虑稀缺度。
// 与 CascadeStrategy 的平局处理和预定阈值不同，二者不混用
type WeightedStrategy struct {
	PointsWeight        float64
	EfficiencyWeight    float64
	BonusWeight         float64
	NobleWeight         float64
	ScarcityThreshold   int
	ScarcityBoost       float64
	ReserveMaxShortfall int
}

func NewWeightedStrategy() *WeightedStrategy {
	return &WeightedStrategy{
		PointsWeight:        2,
		EfficiencyWeight:    1.5,
		BonusWeight:         1,
		NobleWeight:         0.5,
		ScarcityThreshold:   4,
		ScarcityBoost:       1.25,
		ReserveMaxShortfall: 3,
	}
}

func (*WeightedStrategy) Name() string {
	return StrategyWeighted
}

type target struct {
	card     *entities.NormalCard
	reserved bool
	score    float64
}

func (w *WeightedStrategy) Decide(s *engine.Snapshot, rng *rand.Rand) engine.Command {
	p := s.CurrentPlayer()
	targets := w.rankTargets(s, p)

	if engine.CanBuyCard(s.TurnAction) {
		var best []target
		for _, tg := range targets {
			if !engine.CanAffordCard(p, tg.card) {
				continue
			}
			switch {
			case len(best) == 0 || tg.score > best[0].score:
				best = []target{tg}
			case tg.score == best[0].score:
				best = append(best, tg)
			}
		}
		if len(best) > 0 {
			tg := pick(rng, best)
			return engine.BuyCardCommand(tg.card.ID, tg.reserved)
		}

		if engine.CanReserve(p) {
			for _, tg := range targets {
				if tg.reserved || tg.card.Points <= 0 {
					continue
				}
				short := engine.TotalShortfall(p, tg.card)
				if short >= 1 && short <= w.ReserveMaxShortfall {
					return engine.ReserveCardCommand(tg.card.ID)
				}
			}
		}
	}

	if t, ok := w.chooseToken(s, p, targets); ok {
		return engine.CollectTokenCommand(t)
	}
	return engine.EndTurnCommand()
}

// Score 单张卡的最终得分
func (w *WeightedStrategy) Score(s *engine.Snapshot, p *engine.PlayerState, card *entities.NormalCard) float64 {
	for _, tg := range w.rankTargets(s, p) {
		if tg.card.ID == card.ID {
			return tg.score
		}
	}
	needed := w.neededBonuses(p, w.topTargets(s, p))
	return w.baseScore(s, p, card) + w.bonusScore(card, needed)
}

// rankTargets 桌面和预定区的卡按得分从高到低
func (w *WeightedStrategy) rankTargets(s *engine.Snapshot, p *engine.PlayerState) []target {
	targets := w.collectTargets(s, p)
	needed := w.neededBonuses(p, topN(targets, targetCardCount))
	for i := range targets {
		targets[i].score += w.bonusScore(targets[i].card, needed)
	}
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].score > targets[j].score
	})
	return targets
}

// collectTargets 只含基础分（不含折扣需求项），已按基础分排序
func (w *WeightedStrategy) collectTargets(s *engine.Snapshot, p *engine.PlayerState) []target {
	var targets []target
	for _, card := range s.VisibleCards() {
		targets = append(targets, target{card: card, score: w.baseScore(s, p, card)})
	}
	for i := range p.Reserved {
		card := &p.Reserved[i]
		targets = append(targets, target{card: card, reserved: true, score: w.baseScore(s, p, card)})
	}
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].score > targets[j].score
	})
	return targets
}

func (w *WeightedStrategy) topTargets(s *engine.Snapshot, p *engine.PlayerState) []target {
	return topN(w.collectTargets(s, p), targetCardCount)
}

func topN(targets []target, n int) []target {
	if len(targets) > n {
		return targets[:n]
	}
	return targets
}

func (w *WeightedStrategy) baseScore(s *engine.Snapshot, p *engine.PlayerState, card *entities.NormalCard) float64 {
	points := float64(card.Points)
	effective := 0
	for _, t := range entities.StandardTokenTypes {
		if n := card.Cost[t] - p.BonusCount(t); n > 0 {
			effective += n
		}
	}
	return w.PointsWeight*points +
		w.EfficiencyWeight*points/float64(max(1, effective)) +
		w.NobleWeight*nobleProximity(s, p, card)
}

func (w *WeightedStrategy) bonusScore(card *entities.NormalCard, needed map[entities.TokenType]bool) float64 {
	if needed[card.Bonus] {
		return w.BonusWeight
	}
	return 0
}

// neededBonuses 目标卡扣除折扣后仍需要的颜色
func (w *WeightedStrategy) neededBonuses(p *engine.PlayerState, targets []target) map[entities.TokenType]bool {
	needed := make(map[entities.TokenType]bool)
	bonuses := p.Bonuses()
	for _, tg := range targets {
		for _, t := range entities.StandardTokenTypes {
			if tg.card.Cost[t]-bonuses[t] > 0 {
				needed[t] = true
			}
		}
	}
	return needed
}

// nobleProximity 这张卡的折扣离某位贵族越近信号越强，取值 0~1
func nobleProximity(s *engine.Snapshot, p *engine.PlayerState, card *entities.NormalCard) float64 {
	best := 0.0
	bonuses := p.Bonuses()
	for i := range s.Nobles {
		req := s.Nobles[i].Requirement
		if bonuses[card.Bonus] >= req[card.Bonus] {
			continue
		}
		missing := 0
		for t, n := range req {
			if d := n - bonuses[t]; d > 0 {
				missing += d
			}
		}
		if signal := 1 / float64(missing); signal > best {
			best = signal
		}
	}
	return best
}

func (w *WeightedStrategy) chooseToken(s *engine.Snapshot, p *engine.PlayerState, targets []target) (entities.TokenType, bool) {
	if !collectionOpen(s) {
		return "", false
	}

	desire := make(map[entities.TokenType]float64)
	for _, tg := range topN(targets, targetCardCount) {
		weight := max(tg.score, 1)
		for t, n := range engine.ComputeShortfall(p, tg.card) {
			desire[t] += float64(n) * weight
		}
	}
	for t := range desire {
		if s.Count(t) <= w.ScarcityThreshold {
			desire[t] *= w.ScarcityBoost
		}
	}

	// 第二个宝石：同色还缺并且池子够，就拿两个同色
	if s.TokensCollectedThisTurn == 1 {
		first := s.CollectedTypesThisTurn[0]
		if desire[first] > 0 && s.CanCollect(first) {
			return first, true
		}
	}

	var best entities.TokenType
	bestDesire := 0.0
	for _, t := range entities.StandardTokenTypes {
		if s.HasCollected(t) || !s.CanCollect(t) {
			continue
		}
		if desire[t] > bestDesire {
			best, bestDesire = t, desire[t]
		}
	}
	if bestDesire > 0 {
		return best, true
	}
	return anyLegalToken(s)
}
