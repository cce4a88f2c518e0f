package engine

import "go-splendor/entities"

// LegalActions 当前玩家此刻所有合法的命令，不修改状态
func (g *Game) LegalActions() []Command {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.finished {
		return nil
	}
	return LegalActions(g.snapshotLocked())
}

// LegalActions 根据快照列出合法命令。从空牌堆预定不会列出
func LegalActions(s *Snapshot) []Command {
	if s.Finished {
		return nil
	}
	p := s.CurrentPlayer()
	actions := make([]Command, 0, 16)

	for _, t := range entities.StandardTokenTypes {
		if s.CanCollect(t) {
			actions = append(actions, CollectTokenCommand(t))
		}
	}

	undone := make(map[entities.TokenType]bool)
	for _, t := range s.CollectedTypesThisTurn {
		if !undone[t] && p.Tokens[t] > 0 {
			undone[t] = true
			actions = append(actions, UndoCollectTokenCommand(t))
		}
	}

	if CanBuyCard(s.TurnAction) {
		visible := s.VisibleCards()
		for _, c := range visible {
			if CanAffordCard(p, c) {
				actions = append(actions, BuyCardCommand(c.ID, false))
			}
		}
		for i := range p.Reserved {
			if CanAffordCard(p, &p.Reserved[i]) {
				actions = append(actions, BuyCardCommand(p.Reserved[i].ID, true))
			}
		}
		if CanReserve(p) {
			for _, c := range visible {
				actions = append(actions, ReserveCardCommand(c.ID))
			}
			for tier := 0; tier < TierCount; tier++ {
				if s.DeckCounts[tier] > 0 {
					actions = append(actions, ReserveFromDeckCommand(tier+1))
				}
			}
		}
	}

	if p.TotalTokenCount() > MaxHandTokens {
		for _, t := range entities.AllTokenTypes {
			if CanDiscard(p, t) {
				actions = append(actions, DiscardTokenCommand(t))
			}
		}
	}

	if CanEndTurn(p) {
		actions = append(actions, EndTurnCommand())
	}
	return actions
}
