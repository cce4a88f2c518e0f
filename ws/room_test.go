package ws

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"go-splendor/dto"
	"go-splendor/engine"
	"go-splendor/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn 记录写出的消息和是否被关闭
type fakeConn struct {
	mu     sync.Mutex
	writes [][]byte
	closed bool
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, data)
	return nil
}

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	return 0, nil, errors.New("closed")
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) lastError(t *testing.T) dto.ErrorMessage {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.writes)
	var msg dto.ErrorMessage
	require.NoError(t, json.Unmarshal(f.writes[len(f.writes)-1], &msg))
	require.Equal(t, "error", msg.Type)
	return msg
}

func withRoom(t *testing.T, roomID string, conns []dto.PlayerConn) {
	t.Helper()
	roomLock.Lock()
	Rooms[roomID] = conns
	roomLock.Unlock()
	t.Cleanup(func() {
		roomLock.Lock()
		delete(Rooms, roomID)
		delete(sessions, roomID)
		roomLock.Unlock()
	})
}

func TestReconnect(t *testing.T) {
	old := &fakeConn{}
	withRoom(t, "r-reconnect", []dto.PlayerConn{
		{PlayerID: "u1", Conn: old, Online: true},
		{PlayerID: "ai_1", Conn: &VirtualConn{PlayerID: "ai_1", RoomID: "r-reconnect"}, Online: true, IsAI: true},
	})

	fresh := &fakeConn{}
	require.True(t, reconnect("r-reconnect", "u1", fresh))
	assert.True(t, old.closed)
	assert.False(t, fresh.closed)

	players, ok := RoomPlayers("r-reconnect")
	require.True(t, ok)
	require.Len(t, players, 2)
	assert.True(t, players[0].Online)

	roomLock.Lock()
	assert.Same(t, fresh, Rooms["r-reconnect"][0].Conn)
	roomLock.Unlock()

	assert.False(t, reconnect("r-reconnect", "ai_1", &fakeConn{}))
	assert.False(t, reconnect("r-reconnect", "u9", &fakeConn{}))
}

func TestApplyCommandRejectsOffTurnPlayer(t *testing.T) {
	s, err := newSession([]engine.PlayerConfig{{ID: "u1"}, {ID: "u2"}}, 7, "")
	require.NoError(t, err)
	withRoom(t, "r-turn", nil)
	roomLock.Lock()
	sessions["r-turn"] = s
	roomLock.Unlock()
	before := s.game.Snapshot()

	conn := &fakeConn{}
	applyCommand(conn, "r-turn", "u2", engine.EndTurnCommand())
	msg := conn.lastError(t)
	assert.Equal(t, engine.ErrIllegalAction.Error(), msg.Kind)
	assert.Equal(t, before, s.game.Snapshot())

	applyCommand(conn, "no-such-room", "u1", engine.EndTurnCommand())
	assert.Equal(t, "游戏还没有开始", conn.lastError(t).Message)
}

func TestPlayerFromToken(t *testing.T) {
	token, err := utils.GenerateAccessToken("guest_7")
	require.NoError(t, err)

	id, err := playerFromToken(token, "")
	require.NoError(t, err)
	assert.Equal(t, "guest_7", id)

	id, err = playerFromToken(token, "guest_7")
	require.NoError(t, err)
	assert.Equal(t, "guest_7", id)

	_, err = playerFromToken(token, "someone_else")
	assert.Error(t, err)
	_, err = playerFromToken("", "guest_7")
	assert.Error(t, err)
	_, err = playerFromToken("garbage", "")
	assert.Error(t, err)
}
