package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexhaven/hexhaven/internal/game"
	"github.com/hexhaven/hexhaven/internal/protocol"
)

func TestMakeOffer_SetsCurrentOffer(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")
	bob := g.Player(1)

	f.d.Handle(&protocol.MakeOffer{Game: "seaside", From: 1,
		To:   []bool{true, false, false, false},
		Give: []int{0, 2, 0, 0, 0},
		Get:  []int{1, 0, 0, 0, 0}}, false)

	offer := bob.CurrentOffer()
	require.NotNil(t, offer)
	assert.Equal(t, 1, offer.From)
	assert.Equal(t, []bool{true, false, false, false}, offer.To)
	assert.Equal(t, 2, offer.Give.Amount(game.Ore))
	assert.Equal(t, 1, offer.Get.Amount(game.Clay))
	assert.Equal(t, 1, f.listener.Count("RequestedTrade"))
}

func TestClearOffer_NegativeSeatClearsEveryone(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")
	g.Player(0).SetCurrentOffer(&game.TradeOffer{From: 0})
	g.Player(1).SetCurrentOffer(&game.TradeOffer{From: 1})

	f.d.Handle(&protocol.ClearOffer{Game: "seaside", PlayerNumber: -1}, false)

	assert.Nil(t, g.Player(0).CurrentOffer())
	assert.Nil(t, g.Player(1).CurrentOffer())

	ev := f.listener.Last("RequestedTradeClear")
	require.NotNil(t, ev)
	assert.Nil(t, ev.Args[0])
}

func TestClearOffer_SingleSeat(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")
	g.Player(0).SetCurrentOffer(&game.TradeOffer{From: 0})
	g.Player(1).SetCurrentOffer(&game.TradeOffer{From: 1})

	f.d.Handle(&protocol.ClearOffer{Game: "seaside", PlayerNumber: 1}, false)

	assert.NotNil(t, g.Player(0).CurrentOffer())
	assert.Nil(t, g.Player(1).CurrentOffer())
}

func TestRejectOffer_NotifiesWithPlayer(t *testing.T) {
	f := newFixture(t)
	g := f.joinGame(t, "seaside", "bob")

	f.d.Handle(&protocol.RejectOffer{Game: "seaside", PlayerNumber: 1}, false)

	ev := f.listener.Last("RequestedTradeRejection")
	require.NotNil(t, ev)
	assert.Same(t, g.Player(1), ev.Args[0])
}
