package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexhaven/hexhaven/internal/game"
	"github.com/hexhaven/hexhaven/internal/protocol"
)

func TestPlayerElement_GainAndLose(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")
	bob := g.Player(1)

	f.d.Handle(&protocol.PlayerElement{Game: "seaside", PlayerNumber: 1,
		Action: protocol.ActionGain, ElementType: protocol.ElemOre, Amount: 3}, false)
	assert.Equal(t, 3, bob.Resources().Amount(game.Ore))

	f.d.Handle(&protocol.PlayerElement{Game: "seaside", PlayerNumber: 1,
		Action: protocol.ActionLose, ElementType: protocol.ElemOre, Amount: 2}, false)
	assert.Equal(t, 1, bob.Resources().Amount(game.Ore))

	ev := f.listener.Last("PlayerElementUpdated")
	require.NotNil(t, ev)
	assert.Same(t, bob, ev.Args[0])
}

func TestPlayerElement_LoseDeficitDrainsUnknown(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")
	bob := g.Player(1)
	bob.Resources().Add(game.Sheep, 1)
	bob.Resources().Add(game.UnknownResource, 3)

	// Losing 2 sheep when only 1 is known takes the other from the unknown
	// bucket.
	f.d.Handle(&protocol.PlayerElement{Game: "seaside", PlayerNumber: 1,
		Action: protocol.ActionLose, ElementType: protocol.ElemSheep, Amount: 2}, false)

	assert.Equal(t, 0, bob.Resources().Amount(game.Sheep))
	assert.Equal(t, 2, bob.Resources().Amount(game.UnknownResource))
}

func TestPlayerElement_LoseUnknownConvertsHand(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")
	bob := g.Player(1)
	bob.Resources().Add(game.Wheat, 2)
	bob.Resources().Add(game.Wood, 1)

	f.d.Handle(&protocol.PlayerElement{Game: "seaside", PlayerNumber: 1,
		Action: protocol.ActionLose, ElementType: protocol.ElemUnknownResource, Amount: 1}, false)

	assert.Equal(t, 0, bob.Resources().Amount(game.Wheat))
	assert.Equal(t, 0, bob.Resources().Amount(game.Wood))
	assert.Equal(t, 2, bob.Resources().Amount(game.UnknownResource))
	assert.Equal(t, 2, bob.Resources().Total())
}

func TestPlayerElements_BulkUpdate(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside")
	alice := g.Player(0)

	f.d.Handle(&protocol.PlayerElements{Game: "seaside", PlayerNumber: 0,
		Action: protocol.ActionSet, Elements: []protocol.ElementAmount{
			{ElementType: protocol.ElemRoads, Amount: 13},
			{ElementType: protocol.ElemSettlements, Amount: 4},
			{ElementType: protocol.ElemClay, Amount: 2},
		}}, false)

	assert.Equal(t, 13, alice.NumPieces(game.PieceRoad))
	assert.Equal(t, 4, alice.NumPieces(game.PieceSettlement))
	assert.Equal(t, 2, alice.Resources().Amount(game.Clay))
	assert.Equal(t, 3, f.listener.Count("PlayerElementUpdated"))
}

func TestPlayerElement_ClothSupplyTargetsBoard(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside")
	g.Board().SetCloth(5)

	f.d.Handle(&protocol.PlayerElement{Game: "seaside", PlayerNumber: -1,
		Action: protocol.ActionLose, ElementType: protocol.ElemScenarioClothCount, Amount: 2}, false)

	assert.Equal(t, 3, g.Board().Cloth())
}

func TestPlayerElement_KnightsRefreshLargestArmyOnChange(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")
	bob := g.Player(1)

	f.d.Handle(&protocol.PlayerElement{Game: "seaside", PlayerNumber: 1,
		Action: protocol.ActionSet, ElementType: protocol.ElemNumKnights, Amount: 3}, false)

	assert.Same(t, bob, g.PlayerWithLargestArmy())
	assert.Equal(t, 1, f.listener.Count("LargestArmyRefresh"))

	// More knights for the same holder is not a change of holder.
	f.d.Handle(&protocol.PlayerElement{Game: "seaside", PlayerNumber: 1,
		Action: protocol.ActionGain, ElementType: protocol.ElemNumKnights, Amount: 1}, false)
	assert.Equal(t, 1, f.listener.Count("LargestArmyRefresh"))
}

func TestResourceCount_MatchIsNoOp(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")
	bob := g.Player(1)
	bob.Resources().Add(game.Ore, 2)
	bob.Resources().Add(game.UnknownResource, 1)

	f.d.Handle(&protocol.ResourceCount{Game: "seaside", PlayerNumber: 1, Count: 3}, false)

	assert.Equal(t, 2, bob.Resources().Amount(game.Ore))
	assert.Equal(t, 0, f.listener.Count("PlayerResourcesUpdated"))
}

func TestResourceCount_MismatchRebuildsAsUnknown(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")
	bob := g.Player(1)
	bob.Resources().Add(game.Ore, 2)

	f.d.Handle(&protocol.ResourceCount{Game: "seaside", PlayerNumber: 1, Count: 5}, false)

	assert.Equal(t, 0, bob.Resources().Amount(game.Ore))
	assert.Equal(t, 5, bob.Resources().Amount(game.UnknownResource))
	assert.Equal(t, 1, f.listener.Count("PlayerResourcesUpdated"))
}

func TestResourceCount_OwnMismatchIsLeftAlone(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside")
	alice := g.Player(0)
	alice.Resources().Add(game.Wood, 4)

	// Our own hand is fully itemized by the server; a disagreement is logged
	// but never rewritten into unknowns.
	f.d.Handle(&protocol.ResourceCount{Game: "seaside", PlayerNumber: 0, Count: 9}, false)

	assert.Equal(t, 4, alice.Resources().Amount(game.Wood))
	assert.Equal(t, 0, alice.Resources().Amount(game.UnknownResource))
}
