package ws

import (
	"encoding/json"
	"testing"
	"time"

	"go-splendor/dto"
	"go-splendor/engine"
	"go-splendor/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		msg     map[string]interface{}
		want    engine.Command
		wantErr bool
	}{
		{"get gem", map[string]interface{}{"type": "get_gem", "payload": "Red"}, engine.CollectTokenCommand(entities.TokenRed), false},
		{"undo gem", map[string]interface{}{"type": "undo_gem", "payload": "Blue"}, engine.UndoCollectTokenCommand(entities.TokenBlue), false},
		{"discard gold", map[string]interface{}{"type": "discard_gem", "payload": "Gold"}, engine.DiscardTokenCommand(entities.TokenGold), false},
		{"unknown gem", map[string]interface{}{"type": "get_gem", "payload": "Purple"}, engine.Command{}, true},
		{"buy visible", map[string]interface{}{"type": "buy_card", "payload": float64(12)}, engine.BuyCardCommand(12, false), false},
		{"buy reserved from string id", map[string]interface{}{"type": "buy_card", "payload": "34", "fromReserved": true}, engine.BuyCardCommand(34, true), false},
		{"reserve card", map[string]interface{}{"type": "preserve_card", "payload": float64(7)}, engine.ReserveCardCommand(7), false},
		{"reserve deck", map[string]interface{}{"type": "preserve_deck", "payload": "2"}, engine.ReserveFromDeckCommand(2), false},
		{"bad card id", map[string]interface{}{"type": "buy_card", "payload": "abc"}, engine.Command{}, true},
		{"end turn", map[string]interface{}{"type": "end_turn"}, engine.EndTurnCommand(), false},
		{"unknown", map[string]interface{}{"type": "place_tile"}, engine.Command{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.msg["playerID"] = "u1"
			got, err := parseCommand(tt.msg["type"].(string), tt.msg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newTestSnapshot(t *testing.T) *engine.Snapshot {
	t.Helper()
	g, err := engine.Setup([]engine.PlayerConfig{{ID: "u1"}, {ID: "ai_1", IsAI: true}}, 11)
	require.NoError(t, err)
	return g.Snapshot()
}

func TestBuildSyncMessage(t *testing.T) {
	snap := newTestSnapshot(t)
	info := &entities.RoomInfo{MaxPlayers: 2, GameStatus: entities.RoomStatusPlaying}

	mine := buildSyncMessage("u1", info, nil, snap)
	assert.Equal(t, "sync", mine.Type)
	assert.Equal(t, "u1", mine.CurrentPlayer)
	assert.Equal(t, engine.LegalActions(snap), mine.LegalActions)

	other := buildSyncMessage("ai_1", info, nil, snap)
	assert.Empty(t, other.LegalActions)

	waiting := buildSyncMessage("u1", info, nil, nil)
	assert.Empty(t, waiting.CurrentPlayer)
	assert.NotNil(t, waiting.LegalActions)
}

func TestVirtualConnIgnoresOtherMessages(t *testing.T) {
	conn := &VirtualConn{PlayerID: "ai_1", RoomID: "no-such-room"}
	require.NoError(t, conn.WriteMessage(1, []byte(`{"type":"events","events":[]}`)))
	require.NoError(t, conn.WriteMessage(1, []byte(`not json`)))

	data, err := json.Marshal(dto.SyncMessage{Type: "sync", CurrentPlayer: "ai_1", Snapshot: newTestSnapshot(t)})
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(1, data))
	require.False(t, MaybeRunAIIfNeeded("no-such-room"))

	_, _, err = conn.ReadMessage()
	require.Error(t, err)
}

func TestGameResults(t *testing.T) {
	snap := newTestSnapshot(t)
	snap.WinnerIndex = 1
	snap.Players[1].Purchased = append(snap.Players[1].Purchased, entities.NormalCard{ID: 1, Points: 4})
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	results := gameResults("r1", snap, at)
	require.Len(t, results, 2)
	assert.False(t, results[0].Winner)
	assert.Equal(t, "ai_1", results[1].PlayerID)
	assert.True(t, results[1].IsAI)
	assert.True(t, results[1].Winner)
	assert.Equal(t, 4, results[1].Points)
	assert.Equal(t, 1, results[1].Cards)
	assert.Equal(t, at, results[1].FinishedAt)
}

func TestParseRoomInfo(t *testing.T) {
	info, err := parseRoomInfo(map[string]string{
		"roomStatus": "true",
		"gameStatus": "playing",
		"maxPlayers": "3",
		"userID":     "u1",
		"seed":       "18446744073709551615",
		"strategy":   "weighted",
	})
	require.NoError(t, err)
	assert.Equal(t, &entities.RoomInfo{
		RoomStatus: true,
		GameStatus: entities.RoomStatusPlaying,
		MaxPlayers: 3,
		UserID:     "u1",
		Seed:       18446744073709551615,
		Strategy:   "weighted",
	}, info)

	_, err = parseRoomInfo(map[string]string{"roomStatus": "maybe"})
	require.Error(t, err)
}

func TestIsAIPlayer(t *testing.T) {
	assert.True(t, IsAIPlayer("ai_3f2a"))
	assert.False(t, IsAIPlayer("guest_ai"))
}
