package client

import (
	"github.com/hexhaven/hexhaven/internal/game"
	"github.com/hexhaven/hexhaven/internal/protocol"
)

// translateDevCardType maps a wire card code to this client's numbering.
// Servers older than the renumbering send knight and unknown with swapped
// codes; every other code is unchanged.
func (d *Dispatcher) translateDevCardType(ctype int, isPractice bool) int {
	if d.session.Caps(isPractice).SupportsNewDevCardTypes() {
		return ctype
	}
	switch ctype {
	case game.LegacyDevCardKnight:
		return game.DevCardKnight
	case game.LegacyDevCardUnknown:
		return game.DevCardUnknown
	}
	return ctype
}

func (d *Dispatcher) handleDevCardAction(msg protocol.Message, isPractice bool) {
	m := msg.(*protocol.DevCardAction)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	p := g.Player(m.PlayerNumber)
	if p == nil {
		return
	}
	ctype := d.translateDevCardType(m.CardType, isPractice)

	inv := p.Inventory()
	switch m.Action {
	case protocol.DevCardDraw:
		inv.AddDevCard(1, game.CardNew, ctype)
	case protocol.DevCardPlay:
		inv.RemoveDevCard(game.CardOld, ctype)
	case protocol.DevCardAddOld:
		inv.AddDevCard(1, game.CardOld, ctype)
	case protocol.DevCardAddNew:
		inv.AddDevCard(1, game.CardNew, ctype)
	default:
		return
	}
	if l != nil {
		l.PlayerDevCardUpdated(p, m.Action == protocol.DevCardAddOld)
	}
}

func (d *Dispatcher) handleDevCardCount(msg protocol.Message, _ bool) {
	m := msg.(*protocol.DevCardCount)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	g.SetDevCardDeck(m.Count)
	if l != nil {
		l.DevCardDeckUpdated()
	}
}

func (d *Dispatcher) handleSetPlayedDevCard(msg protocol.Message, _ bool) {
	m := msg.(*protocol.SetPlayedDevCard)
	g, _ := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	if p := g.Player(m.PlayerNumber); p != nil {
		p.SetPlayedDevCard(m.Played)
	}
}
