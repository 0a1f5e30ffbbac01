package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexhaven/hexhaven/internal/capability"
	"github.com/hexhaven/hexhaven/internal/game"
	"github.com/hexhaven/hexhaven/internal/protocol"
)

func TestVersion_SameVersionNeedsNoNegotiation(t *testing.T) {
	f := newFixture(t)

	f.d.Handle(&protocol.Version{Number: capability.ClientVersion,
		VersText: "2.0.00", Build: "JM20250101"}, false)

	info := f.session.Info(false)
	assert.True(t, info.SupportsOptions())
	assert.True(t, info.AllOptionsReceived())
	assert.Empty(t, f.sender.Sent())

	ev := f.lobby.Last("ServerVersion")
	require.NotNil(t, ev)
	assert.Equal(t, capability.ClientVersion, ev.Args[0])
}

func TestVersion_NewerServerIsAskedForChangedOptions(t *testing.T) {
	f := newFixture(t)

	f.d.Handle(&protocol.Version{Number: 2100, VersText: "2.1.00", Build: "JM20260101"}, false)

	require.Len(t, f.sender.Lines, 1)
	assert.Equal(t, "1201|-,1", f.sender.Sent()[0])
	assert.False(t, f.session.Info(false).AllOptionsReceived())
}

func TestVersion_OlderServerIsAskedAboutNewerOptions(t *testing.T) {
	f := newFixture(t)

	f.d.Handle(&protocol.Version{Number: 1201, VersText: "1.2.01", Build: "JM20130101"}, false)

	info := f.session.Info(false)
	assert.False(t, info.AllOptionsReceived())

	// Underscore keys do not fit the old wire format; the rest of the
	// too-new options are asked about by key.
	require.Len(t, f.sender.Lines, 1)
	assert.Equal(t, "1201|SBL SC,0", f.sender.Sent()[0])

	_, ok := info.Option("_SC_CLVI")
	assert.False(t, ok)
	_, ok = info.Option("_SC_PIRI")
	assert.False(t, ok)
	_, ok = info.Option("SBL")
	assert.True(t, ok)
	_, ok = info.Option("PL")
	assert.True(t, ok)
}

func TestVersion_PreOptionsServerDisablesNegotiation(t *testing.T) {
	f := newFixture(t)

	f.d.Handle(&protocol.Version{Number: 1100, VersText: "1.1.00", Build: "JM20080101"}, false)

	info := f.session.Info(false)
	assert.False(t, info.SupportsOptions())
	assert.True(t, info.AllOptionsReceived())
	assert.Equal(t, 1, f.lobby.Count("OptionsRequestComplete"))
}

func TestStatus_OptionValueTooNewNamesTheOptions(t *testing.T) {
	f := newFixture(t)

	f.d.Handle(&protocol.Status{Value: protocol.StatusOptValueTooNew,
		Text: "requested option value is too new,seaside,VP"}, false)

	ev := f.lobby.Last("Status")
	require.NotNil(t, ev)
	text := ev.Args[1].(string)
	assert.Contains(t, text, "seaside")
	assert.Contains(t, text, "Victory points to win: #")
}

func TestStatus_OptionValueTooNewMalformedTextIsShownRaw(t *testing.T) {
	f := newFixture(t)

	f.d.Handle(&protocol.Status{Value: protocol.StatusOptValueTooNew,
		Text: "just some text"}, false)

	ev := f.lobby.Last("Status")
	require.NotNil(t, ev)
	assert.Equal(t, "just some text", ev.Args[1])
}

func TestServerPing_TakeoverDisconnectsEveryGame(t *testing.T) {
	f := newFixture(t)
	f.joinGame(t, "seaside")

	f.d.Handle(&protocol.ServerPing{SleepTime: -1}, false)

	assert.Nil(t, f.session.Game("seaside"))
	assert.Equal(t, 1, f.listener.Count("GameDisconnected"))
	assert.Empty(t, f.sender.Sent(), "a takeover ping is not echoed")
}

func TestGamesWithOptions_StripsUnjoinableMarker(t *testing.T) {
	f := newFixture(t)

	f.d.Handle(&protocol.GamesWithOptions{Games: []protocol.GameInfo{
		{Name: "open", Opts: "PL=4;VP=t12"},
		{Name: protocol.UnjoinableGamePrefix + "future", Opts: "-"},
	}}, false)

	assert.Equal(t, 2, f.lobby.Count("GameAdded"))
	ev := f.lobby.Last("GameAdded")
	require.NotNil(t, ev)
	assert.Equal(t, "future", ev.Args[0])
	assert.True(t, ev.Args[2].(bool))
}

func TestJoinGameAuth_UsesRememberedOptions(t *testing.T) {
	f := newFixture(t)
	f.d.Handle(&protocol.GamesWithOptions{Games: []protocol.GameInfo{
		{Name: "sixes", Opts: "PL=6"},
	}}, false)

	f.d.Handle(&protocol.JoinGameAuth{Game: "sixes"}, false)

	g := f.session.Game("sixes")
	require.NotNil(t, g)
	assert.Equal(t, 6, g.MaxPlayers())
}

func TestDeleteGame_DisconnectsJoinedReplica(t *testing.T) {
	f := newFixture(t)
	f.joinGame(t, "seaside")

	f.d.Handle(&protocol.DeleteGame{Game: "seaside"}, false)

	assert.Nil(t, f.session.Game("seaside"))
	assert.Equal(t, 1, f.listener.Count("GameDisconnected"))
	assert.Equal(t, 1, f.lobby.Count("GameRemoved"))
}

func TestJoinGame_OwnNicknameIsNotAnnounced(t *testing.T) {
	f := newFixture(t)
	f.joinGame(t, "seaside")

	f.d.Handle(&protocol.JoinGame{Game: "seaside", Nickname: "alice"}, false)
	assert.Equal(t, 0, f.listener.Count("PlayerJoined"))

	f.d.Handle(&protocol.JoinGame{Game: "seaside", Nickname: "bob"}, false)
	assert.Equal(t, 1, f.listener.Count("PlayerJoined"))
}

func TestGameStats_ReportsEndOnlyWhenGameIsOver(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")

	f.d.Handle(&protocol.GameStats{Game: "seaside",
		Scores: []int{5, 7, 0, 0}, Robots: []bool{false, false, false, false}}, false)
	assert.Equal(t, 1, f.lobby.Count("GameStatsUpdated"))
	assert.Equal(t, 0, f.listener.Count("GameEnded"))

	g.SetState(game.StateOver)
	f.d.Handle(&protocol.GameStats{Game: "seaside",
		Scores: []int{5, 10, 0, 0}, Robots: []bool{false, false, false, false}}, false)
	assert.Equal(t, 1, f.listener.Count("GameEnded"))
}

func TestGameTextMsg_ServerNicknameBecomesEmpty(t *testing.T) {
	f := newFixture(t)
	f.joinGame(t, "seaside")

	f.d.Handle(&protocol.GameTextMsg{Game: "seaside",
		Nickname: protocol.ServerNickname, Text: "bob rolled a 7."}, false)

	ev := f.listener.Last("MessageReceived")
	require.NotNil(t, ev)
	assert.Equal(t, "", ev.Args[0])
	assert.Equal(t, "bob rolled a 7.", ev.Args[1])
}
