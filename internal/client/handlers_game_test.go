package client_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexhaven/hexhaven/internal/game"
	"github.com/hexhaven/hexhaven/internal/protocol"
)

func TestGameStarted_OnceViaGameState(t *testing.T) {
	f := newFixture(t)
	f.joinGame(t, "seaside", "bob")

	f.d.Handle(&protocol.GameState{Game: "seaside", State: game.StateStart1A}, false)
	f.d.Handle(&protocol.GameState{Game: "seaside", State: game.StateStart1B}, false)

	assert.Equal(t, 1, f.listener.Count("GameStarted"))
	names := f.listener.Names()
	started, stated := -1, -1
	for i, n := range names {
		if n == "GameStarted" && started < 0 {
			started = i
		}
		if n == "GameStateChanged" && stated < 0 {
			stated = i
		}
	}
	assert.Less(t, started, stated, "start notification precedes the state it starts into")
}

func TestGameStarted_OnceViaStartGameThenState(t *testing.T) {
	f := newFixture(t)
	f.joinGame(t, "seaside", "bob")

	f.d.Handle(&protocol.StartGame{Game: "seaside"}, false)
	f.d.Handle(&protocol.GameState{Game: "seaside", State: game.StateStart1A}, false)

	assert.Equal(t, 1, f.listener.Count("GameStarted"))
}

func TestGameStarted_OnceViaTurnCarryingState(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")

	f.d.Handle(&protocol.Turn{Game: "seaside", PlayerNumber: 1, State: game.StateRollOrCard}, false)

	assert.Equal(t, 1, f.listener.Count("GameStarted"))
	assert.Equal(t, game.StateRollOrCard, g.State())
	assert.Equal(t, 1, g.CurrentPlayer())
	assert.Equal(t, 1, f.listener.Count("PlayerTurnSet"))
}

func TestTurn_RunsStartOfTurnBookkeeping(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")
	g.SetFirstPlayer(0)

	bob := g.Player(1)
	bob.Inventory().AddDevCard(1, game.CardNew, game.DevCardMonopoly)
	bob.SetPlayedDevCard(true)

	f.d.Handle(&protocol.Turn{Game: "seaside", PlayerNumber: 1, State: game.StateRollOrCard}, false)
	assert.Equal(t, 1, bob.Inventory().Amount(game.CardOld, game.DevCardMonopoly))
	assert.False(t, bob.HasPlayedDevCard())

	f.d.Handle(&protocol.Turn{Game: "seaside", PlayerNumber: 0, State: game.StateRollOrCard}, false)
	assert.Equal(t, 1, g.RoundCount())
}

func TestTurn_OtherPlayersHandsAreLeftAlone(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")
	alice := g.Player(0)
	alice.Inventory().AddDevCard(1, game.CardNew, game.DevCardKnight)

	// Bob's turn starting must not age the card alice bought this turn.
	f.d.Handle(&protocol.Turn{Game: "seaside", PlayerNumber: 1, State: game.StateRollOrCard}, false)

	assert.Equal(t, 1, alice.Inventory().Amount(game.CardNew, game.DevCardKnight))
	assert.Equal(t, 0, alice.Inventory().Amount(game.CardOld, game.DevCardKnight))
}

func TestBoardLayout2_AppliesNamedParts(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside")

	msg := protocol.Decode("1102|seaside,3,HL=1 2 3,NL=8 6 9,PL=1 -1 3,RH=2312,PH=1803,CV=10 11,FO=42")
	require.NotNil(t, msg)
	f.d.Handle(msg, false)

	b := g.Board()
	assert.Equal(t, game.BoardEncodingLarge, b.Encoding())
	assert.Equal(t, []int{1, 2, 3}, b.HexLayout())
	assert.Equal(t, []int{8, 6, 9}, b.NumberLayout())
	assert.Equal(t, []int{1, -1, 3}, b.PortLayout())
	assert.Equal(t, 2312, b.RobberHex())
	assert.Equal(t, 1803, b.PirateHex())
	assert.Equal(t, []int{10, 11}, b.VillageAndClothLayout())
	assert.Equal(t, []int{42}, b.AddedPart("FO"), "uninterpreted parts are preserved")
	assert.Equal(t, 1, f.listener.Count("BoardLayoutUpdated"))
}

func TestMoveRobber_NegativeCoordinateIsPirate(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside")
	b := g.Board()
	b.SetRobberHex(100, false)
	b.SetPirateHex(200, false)

	f.d.Handle(&protocol.MoveRobber{Game: "seaside", PlayerNumber: 0, Coordinates: -300}, false)
	assert.Equal(t, 300, b.PirateHex())
	assert.Equal(t, 200, b.PrevPirateHex())
	assert.Equal(t, 100, b.RobberHex(), "robber untouched by a pirate move")

	ev := f.listener.Last("RobberMoved")
	require.NotNil(t, ev)
	assert.Equal(t, []any{300, true}, ev.Args)

	f.d.Handle(&protocol.MoveRobber{Game: "seaside", PlayerNumber: 0, Coordinates: 400}, false)
	assert.Equal(t, 400, b.RobberHex())
	assert.Equal(t, 100, b.PrevRobberHex())
}

func TestLargestArmyMessage_NotifiesOnlyOnHolderChange(t *testing.T) {
	f := newFixture(t)
	f.joinGame(t, "seaside", "bob")

	f.d.Handle(&protocol.LargestArmy{Game: "seaside", PlayerNumber: 1}, false)
	assert.Equal(t, 1, f.listener.Count("LargestArmyRefresh"))

	// Repeating the same holder is not a change.
	f.d.Handle(&protocol.LargestArmy{Game: "seaside", PlayerNumber: 1}, false)
	assert.Equal(t, 1, f.listener.Count("LargestArmyRefresh"))

	f.d.Handle(&protocol.LargestArmy{Game: "seaside", PlayerNumber: -1}, false)
	assert.Equal(t, 2, f.listener.Count("LargestArmyRefresh"))
}

func TestSitDown_ResendsChosenFace(t *testing.T) {
	f := newFixture(t)
	f.session.SetLastFaceID(7)
	f.d.Handle(&protocol.JoinGameAuth{Game: "seaside"}, false)

	f.d.Handle(&protocol.SitDown{Game: "seaside", Nickname: "alice", PlayerNumber: 2}, false)

	require.Len(t, f.sender.Lines, 1)
	assert.True(t, strings.HasSuffix(f.sender.Sent()[0], "|seaside,2,7"))

	// Another player sitting down sends nothing.
	f.d.Handle(&protocol.SitDown{Game: "seaside", Nickname: "bob", PlayerNumber: 1}, false)
	assert.Len(t, f.sender.Lines, 1)
}

func TestResetBoardAuth_ReplacesReplica(t *testing.T) {
	f := newFixture(t)
	old := f.joinGame(t, "seaside", "bob")
	old.Player(0).Resources().Add(game.Wheat, 4)
	old.SetState(game.StatePlay1)

	f.d.Handle(&protocol.ResetBoardAuth{Game: "seaside", RejoinPlayerNumber: 0, RequestingPlayer: 1}, false)

	fresh := f.session.Game("seaside")
	require.NotNil(t, fresh)
	assert.NotSame(t, old, fresh)
	assert.True(t, fresh.WasReset())
	assert.Equal(t, "alice", fresh.Player(0).Name())
	assert.Equal(t, 0, fresh.Player(0).Resources().Total())
	assert.Equal(t, 1, f.listener.Count("BoardReset"))
}

func TestDiceResultResources_ReconcilesTotals(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")
	bob := g.Player(1)
	bob.Resources().Add(game.UnknownResource, 2)

	// bob gains 1 ore; the server says his hand is now 3, which matches.
	msg := protocol.Decode("1111|seaside,1,3,0 1 0 0 0")
	require.NotNil(t, msg)
	f.d.Handle(msg, false)
	assert.Equal(t, 3, bob.Resources().Total())
	assert.Equal(t, 1, bob.Resources().Amount(game.Ore))

	// A total that disagrees rebuilds the hand as unknown cards.
	msg = protocol.Decode("1111|seaside,1,9,1 0 0 0 0")
	require.NotNil(t, msg)
	f.d.Handle(msg, false)
	assert.Equal(t, 9, bob.Resources().Amount(game.UnknownResource))
	assert.Equal(t, 9, bob.Resources().Total())
}

func TestRollDicePrompt_OnlyForOwnSeat(t *testing.T) {
	f := newFixture(t)
	f.joinGame(t, "seaside", "bob")

	f.d.Handle(&protocol.RollDicePrompt{Game: "seaside", PlayerNumber: 1}, false)
	assert.Equal(t, 0, f.listener.Count("RequestedDiceRoll"))

	f.d.Handle(&protocol.RollDicePrompt{Game: "seaside", PlayerNumber: 0}, false)
	assert.Equal(t, 1, f.listener.Count("RequestedDiceRoll"))
}

func TestChoosePlayerRequest_TrailingChoiceMeansNone(t *testing.T) {
	f := newFixture(t)
	f.joinGame(t, "seaside", "bob", "carol")

	f.d.Handle(&protocol.ChoosePlayerRequest{Game: "seaside",
		Choices: []bool{false, true, true, false, true}}, false)

	ev := f.listener.Last("RequestedChoosePlayer")
	require.NotNil(t, ev)
	players := ev.Args[0].([]*game.Player)
	require.Len(t, players, 2)
	assert.Equal(t, "bob", players[0].Name())
	assert.Equal(t, "carol", players[1].Name())
	assert.True(t, ev.Args[1].(bool))
}
