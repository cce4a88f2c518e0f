package engine

import (
	"testing"

	"go-splendor/entities"

	"github.com/stretchr/testify/require"
)

type fakeSupply map[entities.TokenType]int

func (f fakeSupply) Count(t entities.TokenType) int { return f[t] }

const (
	white = entities.TokenWhite
	blue  = entities.TokenBlue
	green = entities.TokenGreen
	red   = entities.TokenRed
	black = entities.TokenBlack
	gold  = entities.TokenGold
)

func TestCanCollectToken(t *testing.T) {
	full := fakeSupply{white: 4, blue: 4, green: 4, red: 4, black: 4, gold: 5}

	tests := []struct {
		name      string
		token     entities.TokenType
		supply    fakeSupply
		action    TurnAction
		collected []entities.TokenType
		legal     bool
	}{
		{"wildcard is never collectible", gold, full, TurnActionNone, nil, false},
		{"blocked after buying", red, full, TurnActionBought, nil, false},
		{"blocked after reserving", red, full, TurnActionReserved, nil, false},
		{"empty pile", red, fakeSupply{red: 0}, TurnActionNone, nil, false},
		{"first token of any type", red, fakeSupply{red: 1}, TurnActionNone, nil, true},
		{"second same type, pile was 4", red, fakeSupply{red: 3}, TurnActionCollecting, []entities.TokenType{red}, true},
		{"second same type, pile was 7", red, fakeSupply{red: 6}, TurnActionCollecting, []entities.TokenType{red}, true},
		{"second same type, pile was 3", red, fakeSupply{red: 2}, TurnActionCollecting, []entities.TokenType{red}, false},
		{"second different type", blue, fakeSupply{red: 3, blue: 1}, TurnActionCollecting, []entities.TokenType{red}, true},
		{"third distinct type", green, full, TurnActionCollecting, []entities.TokenType{red, blue}, true},
		{"third repeats first", red, full, TurnActionCollecting, []entities.TokenType{red, blue}, false},
		{"third repeats second", blue, full, TurnActionCollecting, []entities.TokenType{red, blue}, false},
		{"third after same-type double, same", red, full, TurnActionCollecting, []entities.TokenType{red, red}, false},
		{"third after same-type double, different", green, full, TurnActionCollecting, []entities.TokenType{red, red}, false},
		{"fourth token", black, full, TurnActionCollecting, []entities.TokenType{red, blue, green}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCollectToken(tt.token, tt.supply, tt.action, tt.collected)
			require.Equal(t, tt.legal, CanCollectToken(tt.token, tt.supply, tt.action, tt.collected))
			if tt.legal {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrIllegalAction)
				require.NotEmpty(t, Reason(err))
			}
		})
	}
}

func playerWith(bonuses, tokens map[entities.TokenType]int) *PlayerState {
	p := NewPlayerState(PlayerConfig{ID: "p"})
	id := 1000
	for t, n := range bonuses {
		for i := 0; i < n; i++ {
			p.Purchased = append(p.Purchased, entities.NormalCard{ID: id, Level: 1, Bonus: t})
			id++
		}
	}
	p.addTokens(tokens)
	return p
}

func TestAffordability(t *testing.T) {
	t.Run("bonus and tokens short by one without wildcard", func(t *testing.T) {
		p := playerWith(costOf(red, 2), costOf(red, 1))
		card := &entities.NormalCard{ID: 1, Bonus: blue, Cost: costOf(red, 4)}

		require.Equal(t, map[entities.TokenType]int{red: 1}, ComputeShortfall(p, card))
		require.False(t, CanAffordCard(p, card))

		p.addTokens(costOf(gold, 1))
		require.True(t, CanAffordCard(p, card))
	})

	t.Run("wildcards cover the aggregate deficit across types", func(t *testing.T) {
		card := &entities.NormalCard{ID: 2, Bonus: red, Cost: costOf(white, 2, blue, 2)}

		p := playerWith(nil, costOf(white, 1, blue, 1, gold, 2))
		require.Equal(t, 2, TotalShortfall(p, card))
		require.True(t, CanAffordCard(p, card))

		p = playerWith(nil, costOf(white, 1, blue, 1, gold, 1))
		require.False(t, CanAffordCard(p, card))
	})

	t.Run("surplus of one type never covers another", func(t *testing.T) {
		p := playerWith(nil, costOf(white, 5))
		card := &entities.NormalCard{ID: 3, Bonus: red, Cost: costOf(blue, 1)}
		require.False(t, CanAffordCard(p, card))
	})

	t.Run("bonuses alone can pay", func(t *testing.T) {
		p := playerWith(costOf(green, 3), nil)
		card := &entities.NormalCard{ID: 4, Bonus: red, Cost: costOf(green, 3)}
		require.Empty(t, ComputeShortfall(p, card))
		require.True(t, CanAffordCard(p, card))
	})
}

func TestPayment(t *testing.T) {
	p := playerWith(costOf(white, 1), costOf(white, 3, blue, 1, gold, 2))
	card := &entities.NormalCard{ID: 5, Bonus: red, Cost: costOf(white, 3, blue, 2)}

	paid, ok := Payment(p, card)
	require.True(t, ok)
	require.Equal(t, map[entities.TokenType]int{white: 2, blue: 1, gold: 1}, paid)

	poor := playerWith(nil, costOf(blue, 1))
	_, ok = Payment(poor, card)
	require.False(t, ok)
}

func TestTurnGates(t *testing.T) {
	require.True(t, CanBuyCard(TurnActionNone))
	require.False(t, CanBuyCard(TurnActionCollecting))
	require.False(t, CanBuyCard(TurnActionBought))
	require.False(t, CanBuyCard(TurnActionReserved))

	p := playerWith(nil, costOf(white, 4, blue, 4, green, 2))
	require.True(t, CanEndTurn(p))
	require.False(t, CanDiscard(p, white))

	p.addTokens(costOf(red, 1))
	require.False(t, CanEndTurn(p))
	require.True(t, CanDiscard(p, red))
	require.False(t, CanDiscard(p, black))
}

func TestNobleSatisfied(t *testing.T) {
	noble := &entities.NobleCard{ID: "N", Requirement: costOf(red, 3, green, 3), Points: 3}

	require.False(t, NobleSatisfied(playerWith(costOf(red, 3), costOf(green, 10)), noble),
		"held tokens never count toward nobles")
	require.True(t, NobleSatisfied(playerWith(costOf(red, 3, green, 4), nil), noble))
}
