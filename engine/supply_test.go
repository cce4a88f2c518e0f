package engine

import (
	"testing"

	"go-splendor/entities"

	"github.com/stretchr/testify/require"
)

func TestNewTokenSupply(t *testing.T) {
	tests := []struct {
		players  int
		standard int
	}{
		{2, 4},
		{3, 5},
		{4, 7},
	}
	for _, tt := range tests {
		s := NewTokenSupply(tt.players)
		for _, typ := range entities.StandardTokenTypes {
			require.Equal(t, tt.standard, s.Count(typ), "%d players, %s", tt.players, typ)
			require.Equal(t, tt.standard, s.InitialCount(typ))
		}
		require.Equal(t, WildcardSupply, s.Count(entities.TokenGold))
	}
}

func TestTokenSupplyTake(t *testing.T) {
	t.Run("take then return restores count", func(t *testing.T) {
		s := NewTokenSupply(2)
		taken, err := s.Take(entities.TokenRed, 2)
		require.NoError(t, err)
		require.Equal(t, 2, s.Count(entities.TokenRed))

		s.Return(taken)
		require.Equal(t, 4, s.Count(entities.TokenRed))
	})

	t.Run("take beyond pool fails and leaves pool unchanged", func(t *testing.T) {
		s := NewTokenSupply(2)
		_, err := s.Take(entities.TokenBlue, 5)
		require.ErrorIs(t, err, ErrInsufficientSupply)
		require.Equal(t, 4, s.Count(entities.TokenBlue))
		require.False(t, s.CanTake(entities.TokenBlue, 5))
		require.True(t, s.CanTake(entities.TokenBlue, 4))
	})

	t.Run("clone is independent", func(t *testing.T) {
		s := NewTokenSupply(3)
		c := s.Clone()
		_, err := c.Take(entities.TokenGold, 1)
		require.NoError(t, err)
		require.Equal(t, WildcardSupply, s.Count(entities.TokenGold))
		require.Equal(t, WildcardSupply-1, c.Count(entities.TokenGold))
	})
}
