package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexhaven/hexhaven/internal/client"
	"github.com/hexhaven/hexhaven/internal/game"
	"github.com/hexhaven/hexhaven/internal/protocol"
	"github.com/hexhaven/hexhaven/internal/testutil"
)

// fixture is a dispatcher wired to recording fakes, plus the listener of
// the most recently joined game.
type fixture struct {
	session  *client.Session
	d        *client.Dispatcher
	sender   *testutil.SimpleSender
	lobby    *testutil.RecordingLobby
	listener *testutil.RecordingListener
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		sender: &testutil.SimpleSender{},
		lobby:  &testutil.RecordingLobby{},
	}
	f.session = client.NewSession("alice")
	f.session.Lobby = f.lobby
	f.session.ListenerFactory = func(*game.Game) client.Listener {
		f.listener = &testutil.RecordingListener{}
		return f.listener
	}
	f.d = client.NewDispatcher(f.session, f.sender)
	return f
}

// joinGame runs the server's join sequence for one game and seats alice.
func (f *fixture) joinGame(t *testing.T, name string, others ...string) *game.Game {
	t.Helper()
	f.d.Handle(&protocol.JoinGameAuth{Game: name}, false)
	f.d.Handle(&protocol.SitDown{Game: name, Nickname: "alice", PlayerNumber: 0}, false)
	for i, nick := range others {
		f.d.Handle(&protocol.SitDown{Game: name, Nickname: nick, PlayerNumber: i + 1}, false)
	}
	g := f.session.Game(name)
	require.NotNil(t, g)
	return g
}

func TestDispatcher_NilMessageIsDropped(t *testing.T) {
	f := newFixture(t)
	assert.NotPanics(t, func() { f.d.Handle(nil, false) })
	assert.NotPanics(t, func() { f.d.Handle(protocol.Decode("garbage"), false) })
}

func TestDispatcher_UnknownGameIsNoOp(t *testing.T) {
	f := newFixture(t)
	assert.NotPanics(t, func() {
		f.d.Handle(&protocol.Turn{Game: "nowhere", PlayerNumber: 1}, false)
		f.d.Handle(&protocol.PlayerElement{Game: "nowhere", PlayerNumber: 0,
			Action: protocol.ActionGain, ElementType: protocol.ElemOre, Amount: 3}, false)
	})
	assert.Nil(t, f.listener)
}

func TestDispatcher_PanicInHandlerIsContained(t *testing.T) {
	f := newFixture(t)
	f.joinGame(t, "seaside")

	// A seat far out of range makes the seating code panic; the dispatch
	// boundary must swallow it and keep the connection usable.
	assert.NotPanics(t, func() {
		f.d.Handle(&protocol.SitDown{Game: "seaside", Nickname: "evil", PlayerNumber: 99}, false)
	})

	f.d.Handle(&protocol.GameState{Game: "seaside", State: game.StateStart1A}, false)
	assert.Equal(t, 1, f.listener.Count("GameStateChanged"))
}

func TestDispatcher_SendFailureDoesNotPanic(t *testing.T) {
	f := newFixture(t)
	sender := new(testutil.MockSender)
	sender.On("Put", "1003|42", false).Return(assert.AnError)
	d := client.NewDispatcher(f.session, sender)

	assert.NotPanics(t, func() {
		d.Handle(&protocol.ServerPing{SleepTime: 42}, false)
	})
	sender.AssertExpectations(t)
}
