package client

import (
	"github.com/hexhaven/hexhaven/internal/game"
	"github.com/hexhaven/hexhaven/internal/protocol"
)

func (d *Dispatcher) handleMakeOffer(msg protocol.Message, _ bool) {
	m := msg.(*protocol.MakeOffer)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	p := g.Player(m.From)
	if p == nil {
		return
	}
	offer := &game.TradeOffer{
		From: m.From,
		To:   m.To,
		Give: game.NewResourceSet(m.Give[0], m.Give[1], m.Give[2], m.Give[3], m.Give[4]),
		Get:  game.NewResourceSet(m.Get[0], m.Get[1], m.Get[2], m.Get[3], m.Get[4]),
	}
	p.SetCurrentOffer(offer)
	if l != nil {
		l.RequestedTrade(p)
	}
}

func (d *Dispatcher) handleClearOffer(msg protocol.Message, _ bool) {
	m := msg.(*protocol.ClearOffer)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	var p *game.Player
	if m.PlayerNumber >= 0 {
		p = g.Player(m.PlayerNumber)
		if p == nil {
			return
		}
		p.SetCurrentOffer(nil)
	} else {
		for seat := 0; seat < g.MaxPlayers(); seat++ {
			if pl := g.Player(seat); pl != nil {
				pl.SetCurrentOffer(nil)
			}
		}
	}
	if l != nil {
		l.RequestedTradeClear(p)
	}
}

func (d *Dispatcher) handleRejectOffer(msg protocol.Message, _ bool) {
	m := msg.(*protocol.RejectOffer)
	g, l := d.gameAndListener(m.Game)
	if g == nil || l == nil {
		return
	}
	l.RequestedTradeRejection(g.Player(m.PlayerNumber))
}

func (d *Dispatcher) handleClearTradeMsg(msg protocol.Message, _ bool) {
	m := msg.(*protocol.ClearTradeMsg)
	g, l := d.gameAndListener(m.Game)
	if g == nil || l == nil {
		return
	}
	var p *game.Player
	if m.PlayerNumber >= 0 {
		p = g.Player(m.PlayerNumber)
	}
	l.RequestedTradeReset(p)
}
