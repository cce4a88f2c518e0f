package engine

import (
	"encoding/json"
	"testing"

	"go-splendor/entities"

	"github.com/stretchr/testify/require"
)

func TestEventJSON(t *testing.T) {
	t.Run("seat 0 winner keeps its index", func(t *testing.T) {
		g := newTestGame(t, 2)
		for i := 0; i < 3; i++ {
			g.players[0].Purchased = append(g.players[0].Purchased, entities.NormalCard{
				ID: 700 + i, Level: 3, Bonus: black, Points: 5,
			})
		}
		_, _, err := g.EndTurn()
		require.NoError(t, err)
		_, events, err := g.EndTurn()
		require.NoError(t, err)
		end := events[len(events)-1]
		require.Equal(t, EventGameEnded, end.Type)

		data, err := json.Marshal(end)
		require.NoError(t, err)
		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &raw))
		idx, ok := raw["winnerIndex"]
		require.True(t, ok)
		require.EqualValues(t, 0, idx)
		require.EqualValues(t, 15, raw["points"])

		var back Event
		require.NoError(t, json.Unmarshal(data, &back))
		require.NotNil(t, back.WinnerIndex)
		require.Equal(t, 0, *back.WinnerIndex)
		require.Equal(t, "p0", back.WinnerID)
	})

	t.Run("zero points and no winner on a plain turn end", func(t *testing.T) {
		g := newTestGame(t, 2)
		_, events, err := g.EndTurn()
		require.NoError(t, err)

		data, err := json.Marshal(events[0])
		require.NoError(t, err)
		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &raw))
		require.Contains(t, raw, "points")
		require.EqualValues(t, 0, raw["points"])
		require.NotContains(t, raw, "winnerIndex")
	})
}
