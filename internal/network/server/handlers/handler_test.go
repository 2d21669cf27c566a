package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/kaboom/internal/arena"
	"github.com/palemoky/kaboom/internal/game/room"
	"github.com/palemoky/kaboom/internal/network/server/storage"
	"github.com/palemoky/kaboom/internal/protocol"
	"github.com/palemoky/kaboom/internal/protocol/codec"
	"github.com/palemoky/kaboom/internal/testutil"
)

// fakeServer 测试用的服务器上下文，统计默认关闭
type fakeServer struct {
	rooms *room.RoomManager
	arena *arena.Arena
	stats *storage.StatsStore
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		rooms: room.NewRoomManager(),
		arena: arena.NewArena(),
	}
}

func (s *fakeServer) GetRoomManager() *room.RoomManager { return s.rooms }
func (s *fakeServer) GetArena() *arena.Arena            { return s.arena }
func (s *fakeServer) GetStats() *storage.StatsStore     { return s.stats }
func (s *fakeServer) GetOnlineCount() int               { return 0 }

func rawMessage(t *testing.T, msgType protocol.MessageType, payload string) *protocol.Message {
	t.Helper()
	return &protocol.Message{Type: msgType, Payload: json.RawMessage(payload)}
}

func TestHandle_JoinGame(t *testing.T) {
	srv := newFakeServer()
	h := NewHandler(srv)

	alice := &testutil.SimpleClient{ID: "sid-alice"}
	h.Handle(alice, rawMessage(t, protocol.MsgJoinGame, `{"name":"Alice"}`))

	assert.Equal(t, "Alice", alice.Name)
	assert.NotEmpty(t, alice.RoomID)
	require.NotEmpty(t, alice.MessagesOfType(protocol.MsgGameStateUpdate))

	// The second join completes the room and deals the game
	bob := &testutil.SimpleClient{ID: "sid-bob"}
	h.Handle(bob, rawMessage(t, protocol.MsgJoinGame, `{"name":"Bob"}`))

	msgs := bob.MessagesOfType(protocol.MsgGameStateUpdate)
	require.NotEmpty(t, msgs)
	state, err := codec.ParsePayload[protocol.GameStatePayload](msgs[len(msgs)-1])
	require.NoError(t, err)
	assert.Equal(t, string(room.StatusPlaying), state.Status)
	assert.Len(t, state.Players, 2)
}

func TestHandle_FullTurnFlow(t *testing.T) {
	srv := newFakeServer()
	h := NewHandler(srv)

	alice := &testutil.SimpleClient{ID: "sid-alice"}
	bob := &testutil.SimpleClient{ID: "sid-bob"}
	h.Handle(alice, rawMessage(t, protocol.MsgJoinGame, `{"name":"Alice"}`))
	h.Handle(bob, rawMessage(t, protocol.MsgJoinGame, `{"name":"Bob"}`))

	r := srv.rooms.GetRoom(alice.RoomID)
	require.NotNil(t, r)

	// Whoever holds the turn draws, then replaces position 0
	current := alice
	if lastState(t, bob).CurrentTurnID == bob.ID {
		current = bob
	}

	h.Handle(current, rawMessage(t, protocol.MsgDrawCard, ``))
	assert.Empty(t, current.MessagesOfType(protocol.MsgError))
	state := lastState(t, current)
	require.NotNil(t, state.DrawnCard)

	h.Handle(current, rawMessage(t, protocol.MsgReplaceCard, `{"position":0}`))
	assert.Empty(t, current.MessagesOfType(protocol.MsgError))
	state = lastState(t, current)
	assert.Nil(t, state.DrawnCard)
	assert.NotEqual(t, current.ID, state.CurrentTurnID)
	assert.Equal(t, 1, state.DiscardCount)
}

func TestHandle_TurnViolationOnlyToOffender(t *testing.T) {
	srv := newFakeServer()
	h := NewHandler(srv)

	alice := &testutil.SimpleClient{ID: "sid-alice"}
	bob := &testutil.SimpleClient{ID: "sid-bob"}
	h.Handle(alice, rawMessage(t, protocol.MsgJoinGame, `{"name":"Alice"}`))
	h.Handle(bob, rawMessage(t, protocol.MsgJoinGame, `{"name":"Bob"}`))

	waiting := alice
	if lastState(t, bob).CurrentTurnID == alice.ID {
		waiting = bob
	}
	other := alice
	if waiting == alice {
		other = bob
	}
	other.Messages = nil

	h.Handle(waiting, rawMessage(t, protocol.MsgDrawCard, ``))

	errs := waiting.MessagesOfType(protocol.MsgError)
	require.Len(t, errs, 1)
	payload, err := codec.ParsePayload[protocol.ErrorPayload](errs[0])
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeGameNotRdy, payload.Code)
	assert.Empty(t, other.Messages)
}

func TestHandle_DrawWithoutRoom(t *testing.T) {
	h := NewHandler(newFakeServer())
	loner := &testutil.SimpleClient{ID: "sid-loner"}

	h.Handle(loner, rawMessage(t, protocol.MsgDrawCard, ``))

	errs := loner.MessagesOfType(protocol.MsgError)
	require.Len(t, errs, 1)
	payload, err := codec.ParsePayload[protocol.ErrorPayload](errs[0])
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeNotInRoom, payload.Code)
}

func TestHandle_UnknownMessageType(t *testing.T) {
	h := NewHandler(newFakeServer())
	c := &testutil.SimpleClient{ID: "sid-1"}

	h.Handle(c, rawMessage(t, "teleport", `{}`))

	errs := c.MessagesOfType(protocol.MsgError)
	require.Len(t, errs, 1)
	payload, err := codec.ParsePayload[protocol.ErrorPayload](errs[0])
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeInvalidMsg, payload.Code)
}

func TestHandle_Ping(t *testing.T) {
	h := NewHandler(newFakeServer())
	c := &testutil.SimpleClient{ID: "sid-1"}

	h.Handle(c, rawMessage(t, protocol.MsgPing, `{"timestamp":12345}`))

	pongs := c.MessagesOfType(protocol.MsgPong)
	require.Len(t, pongs, 1)
	payload, err := codec.ParsePayload[protocol.PongPayload](pongs[0])
	require.NoError(t, err)
	assert.Equal(t, int64(12345), payload.ClientTimestamp)
	assert.NotZero(t, payload.ServerTimestamp)
}

func TestHandle_PlayerData(t *testing.T) {
	srv := newFakeServer()
	h := NewHandler(srv)

	mover := &testutil.SimpleClient{ID: "sid-1"}
	watcher := &testutil.SimpleClient{ID: "sid-2"}
	srv.arena.HandleConnect(mover)
	srv.arena.HandleConnect(watcher)
	watcher.Messages = nil

	h.Handle(mover, rawMessage(t, protocol.MsgPlayerData, `{"x":42.5,"dir":"up"}`))

	pos, ok := srv.arena.Position("sid-1")
	require.True(t, ok)
	assert.Equal(t, 42.5, pos.X)
	assert.Equal(t, "up", pos.Dir)
	assert.Len(t, watcher.MessagesOfType(protocol.MsgPlayerMoved), 1)
}

func TestHandle_MalformedPlayerDataDropped(t *testing.T) {
	srv := newFakeServer()
	h := NewHandler(srv)

	mover := &testutil.SimpleClient{ID: "sid-1"}
	watcher := &testutil.SimpleClient{ID: "sid-2"}
	srv.arena.HandleConnect(mover)
	srv.arena.HandleConnect(watcher)
	mover.Messages = nil
	watcher.Messages = nil

	h.Handle(mover, rawMessage(t, protocol.MsgPlayerData, `{"x":"sideways"}`))

	// Silently discarded: no error reply, no broadcast, no state change
	assert.Empty(t, mover.Messages)
	assert.Empty(t, watcher.Messages)
	pos, _ := srv.arena.Position("sid-1")
	assert.Equal(t, float64(arena.SpawnX), pos.X)
}

func TestHandle_GetStatsDisabled(t *testing.T) {
	h := NewHandler(newFakeServer())
	c := &testutil.SimpleClient{ID: "sid-1"}

	h.Handle(c, rawMessage(t, protocol.MsgGetStats, ``))

	errs := c.MessagesOfType(protocol.MsgError)
	require.Len(t, errs, 1)
	payload, err := codec.ParsePayload[protocol.ErrorPayload](errs[0])
	require.NoError(t, err)
	assert.Contains(t, payload.Message, "not enabled")
}

func TestHandle_GetStatsEnabled(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	srv := newFakeServer()
	srv.stats = storage.NewStatsStore(client)
	h := NewHandler(srv)

	c := &testutil.SimpleClient{ID: "sid-1", Name: "Alice"}
	h.Handle(c, rawMessage(t, protocol.MsgGetStats, ``))

	results := c.MessagesOfType(protocol.MsgStatsResult)
	require.Len(t, results, 1)
	payload, err := codec.ParsePayload[protocol.StatsResultPayload](results[0])
	require.NoError(t, err)
	// No history yet: identity filled in, counters at zero
	assert.Equal(t, "sid-1", payload.PlayerID)
	assert.Equal(t, "Alice", payload.PlayerName)
	assert.Zero(t, payload.GamesJoined)
}

// lastState 取该客户端收到的最后一条状态更新
func lastState(t *testing.T, c *testutil.SimpleClient) *protocol.GameStatePayload {
	t.Helper()
	msgs := c.MessagesOfType(protocol.MsgGameStateUpdate)
	require.NotEmpty(t, msgs)
	state, err := codec.ParsePayload[protocol.GameStatePayload](msgs[len(msgs)-1])
	require.NoError(t, err)
	return state
}
