package engine

import (
	"fmt"
	"testing"

	"go-splendor/entities"

	"github.com/stretchr/testify/require"
)

func testPlayers(n int) []PlayerConfig {
	cfgs := make([]PlayerConfig, n)
	for i := range cfgs {
		cfgs[i] = PlayerConfig{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Player %d", i)}
	}
	return cfgs
}

func costOf(pairs ...interface{}) map[entities.TokenType]int {
	c := map[entities.TokenType]int{}
	for i := 0; i < len(pairs); i += 2 {
		c[pairs[i].(entities.TokenType)] = pairs[i+1].(int)
	}
	return c
}

// 测试用的小卡池：1 级全部白色折扣、花费蓝绿各 1；3 级正好 4 张（没有牌堆）
func testCatalog() ([TierCount][]entities.NormalCard, []entities.NobleCard) {
	var cards [TierCount][]entities.NormalCard
	for i := 0; i < 6; i++ {
		points := 0
		if i >= 4 {
			points = 1
		}
		cards[0] = append(cards[0], entities.NormalCard{
			ID: 101 + i, Level: 1, Bonus: entities.TokenWhite, Points: points,
			Cost: costOf(entities.TokenBlue, 1, entities.TokenGreen, 1),
		})
	}
	for i := 0; i < 5; i++ {
		cards[1] = append(cards[1], entities.NormalCard{
			ID: 201 + i, Level: 2, Bonus: entities.StandardTokenTypes[i], Points: 2,
			Cost: costOf(entities.TokenRed, 2, entities.TokenBlack, 2),
		})
	}
	for i := 0; i < 4; i++ {
		cards[2] = append(cards[2], entities.NormalCard{
			ID: 301 + i, Level: 3, Bonus: entities.TokenRed, Points: 5,
			Cost: costOf(entities.TokenWhite, 3),
		})
	}
	nobles := []entities.NobleCard{
		{ID: "N1", Requirement: costOf(entities.TokenWhite, 1), Points: entities.NoblePoints},
		{ID: "N2", Requirement: costOf(entities.TokenWhite, 1, entities.TokenBlue, 1), Points: entities.NoblePoints},
		{ID: "N3", Requirement: costOf(entities.TokenRed, 3), Points: entities.NoblePoints},
	}
	return cards, nobles
}

func newTestGame(t *testing.T, players int) *Game {
	t.Helper()
	cards, nobles := testCatalog()
	g, err := Setup(testPlayers(players), 42, WithCatalog(cards, nobles))
	require.NoError(t, err)
	return g
}

// giveTokens 从公共池移给玩家，保持宝石守恒
func giveTokens(t *testing.T, g *Game, idx int, tokens map[entities.TokenType]int) {
	t.Helper()
	for tt, n := range tokens {
		taken, err := g.supply.Take(tt, n)
		require.NoError(t, err)
		g.players[idx].addTokens(taken)
	}
}

func firstVisible(t *testing.T, s *Snapshot, tier int) *entities.NormalCard {
	t.Helper()
	for _, c := range s.Visible[tier-1] {
		if c != nil {
			return c
		}
	}
	t.Fatalf("tier %d has no visible card", tier)
	return nil
}

func requireConserved(t *testing.T, s *Snapshot) {
	t.Helper()
	for _, tt := range entities.AllTokenTypes {
		total := s.Supply.Count(tt)
		for _, p := range s.Players {
			total += p.TokenCount(tt)
		}
		require.Equal(t, s.Supply.InitialCount(tt), total, "token %s not conserved", tt)
	}
}
