package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexhaven/hexhaven/internal/game"
	"github.com/hexhaven/hexhaven/internal/protocol"
)

func TestDevCardAction_DrawAndPlay(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")
	bob := g.Player(1)

	f.d.Handle(&protocol.DevCardAction{Game: "seaside", PlayerNumber: 1,
		Action: protocol.DevCardDraw, CardType: game.DevCardMonopoly}, true)
	assert.Equal(t, 1, bob.Inventory().Amount(game.CardNew, game.DevCardMonopoly))

	bob.Inventory().NewToOld()
	f.d.Handle(&protocol.DevCardAction{Game: "seaside", PlayerNumber: 1,
		Action: protocol.DevCardPlay, CardType: game.DevCardMonopoly}, true)
	assert.Equal(t, 0, bob.Inventory().Total())
}

func TestDevCardAction_AddOldMarksPlayable(t *testing.T) {
	f := newFixture(t)
	f.joinGame(t, "seaside", "bob")

	f.d.Handle(&protocol.DevCardAction{Game: "seaside", PlayerNumber: 1,
		Action: protocol.DevCardAddOld, CardType: game.DevCardRoads}, true)
	ev := f.listener.Last("PlayerDevCardUpdated")
	require.NotNil(t, ev)
	assert.True(t, ev.Args[1].(bool))

	f.d.Handle(&protocol.DevCardAction{Game: "seaside", PlayerNumber: 1,
		Action: protocol.DevCardAddNew, CardType: game.DevCardRoads}, true)
	ev = f.listener.Last("PlayerDevCardUpdated")
	require.NotNil(t, ev)
	assert.False(t, ev.Args[1].(bool))
}

func TestDevCardAction_LegacyServerCodesAreTranslated(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")
	bob := g.Player(1)

	// A 1.x server still sends knight as 0 and unknown as 9.
	f.session.SetRemoteVersion(1201, "JM20130101", "")

	f.d.Handle(&protocol.DevCardAction{Game: "seaside", PlayerNumber: 1,
		Action: protocol.DevCardDraw, CardType: game.LegacyDevCardKnight}, false)
	assert.Equal(t, 1, bob.Inventory().Amount(game.CardNew, game.DevCardKnight))

	f.d.Handle(&protocol.DevCardAction{Game: "seaside", PlayerNumber: 1,
		Action: protocol.DevCardAddOld, CardType: game.LegacyDevCardUnknown}, false)
	assert.Equal(t, 1, bob.Inventory().Amount(game.CardOld, game.DevCardUnknown))
}

func TestDevCardAction_ModernServerCodesPassThrough(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")
	bob := g.Player(1)

	f.session.SetRemoteVersion(2000, "JM20250101", "")

	f.d.Handle(&protocol.DevCardAction{Game: "seaside", PlayerNumber: 1,
		Action: protocol.DevCardDraw, CardType: game.DevCardKnight}, false)
	assert.Equal(t, 1, bob.Inventory().Amount(game.CardNew, game.DevCardKnight))
	assert.Equal(t, 0, bob.Inventory().Amount(game.CardNew, game.DevCardUnknown))
}

func TestDevCardCount_UpdatesDeck(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside")

	f.d.Handle(&protocol.DevCardCount{Game: "seaside", Count: 19}, false)
	assert.Equal(t, 19, g.DevCardDeck())
	assert.Equal(t, 1, f.listener.Count("DevCardDeckUpdated"))
}

func TestSetPlayedDevCard_SetsFlag(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")

	f.d.Handle(&protocol.SetPlayedDevCard{Game: "seaside", PlayerNumber: 1, Played: true}, false)
	assert.True(t, g.Player(1).HasPlayedDevCard())
}
