package engine

import "go-splendor/entities"

// 规则判断全部是纯函数，控制器和 AI 共用

// TokenCounter 能查询宝石数量的对象（公共池或快照里的池）
type TokenCounter interface {
	Count(t entities.TokenType) int
}

// ComputeShortfall 扣除折扣和同色宝石后每种颜色还差多少（不算万能宝石）
func ComputeShortfall(p *PlayerState, c *entities.NormalCard) map[entities.TokenType]int {
	shortfall := make(map[entities.TokenType]int)
	for _, t := range entities.StandardTokenTypes {
		need := c.Cost[t] - p.BonusCount(t) - p.Tokens[t]
		if need > 0 {
			shortfall[t] = need
		}
	}
	return shortfall
}

func TotalShortfall(p *PlayerState, c *entities.NormalCard) int {
	total := 0
	for _, n := range ComputeShortfall(p, c) {
		total += n
	}
	return total
}

// CanAffordCard 剩余缺口合计不超过万能宝石数量即可购买
func CanAffordCard(p *PlayerState, c *entities.NormalCard) bool {
	return TotalShortfall(p, c) <= p.Tokens[entities.TokenGold]
}

// Payment 购买需要交出的宝石：先用折扣，再用同色宝石，最后用万能宝石补足
func Payment(p *PlayerState, c *entities.NormalCard) (map[entities.TokenType]int, bool) {
	paid := make(map[entities.TokenType]int)
	gold := 0
	for _, t := range entities.StandardTokenTypes {
		need := c.Cost[t] - p.BonusCount(t)
		if need <= 0 {
			continue
		}
		fromTokens := min(need, p.Tokens[t])
		if fromTokens > 0 {
			paid[t] = fromTokens
		}
		gold += need - fromTokens
	}
	if gold > p.Tokens[entities.TokenGold] {
		return nil, false
	}
	if gold > 0 {
		paid[entities.TokenGold] = gold
	}
	return paid, true
}

// CheckCollectToken 判断本回合能否再拿一个该颜色的宝石，collected 为本回合已拿宝石（按顺序）
func CheckCollectToken(t entities.TokenType, supply TokenCounter, action TurnAction, collected []entities.TokenType) error {
	if t.IsWildcard() {
		return illegal("万能宝石只能通过预定获得")
	}
	if !t.IsStandard() {
		return illegal("未知的宝石类型 %q", t)
	}
	if action == TurnActionBought || action == TurnActionReserved {
		return illegal("本回合已经购买或预定过卡牌")
	}
	if supply.Count(t) <= 0 {
		return illegal("%s 宝石已经被拿完", t)
	}

	switch len(collected) {
	case 0:
		return nil
	case 1:
		if collected[0] != t {
			return nil
		}
		// 拿第一个之前至少有 4 个才能拿两个同色
		if supply.Count(t)+1 >= 4 {
			return nil
		}
		return illegal("%s 宝石少于 4 个，不能拿两个同色", t)
	case 2:
		if collected[0] == collected[1] {
			return illegal("已经拿了两个同色宝石")
		}
		if t == collected[0] || t == collected[1] {
			return illegal("第三个宝石必须是不同颜色")
		}
		return nil
	default:
		return illegal("本回合已经拿满 3 个宝石")
	}
}

func CanCollectToken(t entities.TokenType, supply TokenCounter, action TurnAction, collected []entities.TokenType) bool {
	return CheckCollectToken(t, supply, action, collected) == nil
}

// CanBuyCard 购买和预定都必须是本回合唯一的动作
func CanBuyCard(action TurnAction) bool {
	return action == TurnActionNone
}

func CanReserve(p *PlayerState) bool {
	return len(p.Reserved) < MaxReservedCard
}

func CanEndTurn(p *PlayerState) bool {
	return p.TotalTokenCount() <= MaxHandTokens
}

func CanDiscard(p *PlayerState, t entities.TokenType) bool {
	return p.Tokens[t] > 0 && p.TotalTokenCount() > MaxHandTokens
}

// NobleSatisfied 贵族只看折扣卡，不看手里的宝石
func NobleSatisfied(p *PlayerState, n *entities.NobleCard) bool {
	for t, required := range n.Requirement {
		if p.BonusCount(t) < required {
			return false
		}
	}
	return true
}
