package client

import (
	"github.com/hexhaven/hexhaven/internal/game"
	"github.com/hexhaven/hexhaven/internal/logger"
	"github.com/hexhaven/hexhaven/internal/protocol"
)

// elementSimple applies a counter action to a current value.
func elementSimple(action, current, amount int) int {
	switch action {
	case protocol.ActionSet:
		return amount
	case protocol.ActionGain:
		return current + amount
	case protocol.ActionLose:
		return current - amount
	}
	return current
}

// applyResourceElement updates one resource counter. Losing unknown cards
// means the server knows less about this hand than the counters claim, so
// the whole hand is converted to unknown before subtracting.
func applyResourceElement(p *game.Player, action, rtype, amount int) {
	rs := p.Resources()
	switch action {
	case protocol.ActionSet:
		rs.SetAmount(rtype, amount)
	case protocol.ActionGain:
		rs.Add(rtype, amount)
	case protocol.ActionLose:
		if rtype == game.UnknownResource {
			rs.ConvertToUnknown()
		}
		rs.Subtract(rtype, amount)
	}
}

// applyElement routes one (action, type, amount) update to the right
// counter and emits the matching listener event.
func (d *Dispatcher) applyElement(g *game.Game, l Listener, pn, action, etype, amount int) {
	// The cloth supply is the only counter that can target the game itself.
	if pn < 0 {
		if etype == protocol.ElemScenarioClothCount {
			g.Board().SetCloth(elementSimple(action, g.Board().Cloth(), amount))
		}
		return
	}
	p := g.Player(pn)
	if p == nil {
		return
	}

	notify := func(u UpdateType) {
		if l != nil {
			l.PlayerElementUpdated(p, u)
		}
	}

	switch etype {
	case protocol.ElemClay, protocol.ElemOre, protocol.ElemSheep,
		protocol.ElemWheat, protocol.ElemWood, protocol.ElemUnknownResource:
		applyResourceElement(p, action, etype, amount)
		notify(UpdateClay + UpdateType(etype-protocol.ElemClay))

	case protocol.ElemRoads:
		p.SetNumPieces(game.PieceRoad, elementSimple(action, p.NumPieces(game.PieceRoad), amount))
		notify(UpdateRoad)
	case protocol.ElemSettlements:
		p.SetNumPieces(game.PieceSettlement, elementSimple(action, p.NumPieces(game.PieceSettlement), amount))
		notify(UpdateSettlement)
	case protocol.ElemCities:
		p.SetNumPieces(game.PieceCity, elementSimple(action, p.NumPieces(game.PieceCity), amount))
		notify(UpdateCity)
	case protocol.ElemShips:
		p.SetNumPieces(game.PieceShip, elementSimple(action, p.NumPieces(game.PieceShip), amount))
		notify(UpdateShip)

	case protocol.ElemNumKnights:
		old := g.PlayerWithLargestArmy()
		p.SetNumKnights(elementSimple(action, p.NumKnights(), amount))
		g.UpdateLargestArmy()
		notify(UpdateKnight)
		if now := g.PlayerWithLargestArmy(); l != nil && now != old {
			l.LargestArmyRefresh(old, now)
		}

	case protocol.ElemAskSpecialBuild:
		asked := amount != 0
		p.SetAskedSpecialBuild(asked)
		if asked && l != nil {
			l.RequestedSpecialBuild(p)
		}

	case protocol.ElemNumPickGoldHexResources:
		p.SetNeedToPickGoldHexResources(elementSimple(action, p.NeedToPickGoldHexResources(), amount))
		notify(UpdateGoldPicks)

	case protocol.ElemScenarioSVP:
		p.SetSpecialVP(elementSimple(action, p.SpecialVP(), amount))
		notify(UpdateSpecialVictoryPoints)

	case protocol.ElemScenarioClothCount:
		p.SetCloth(elementSimple(action, p.Cloth(), amount))
		notify(UpdateCloth)

	case protocol.ElemScenarioWarshipCount:
		p.SetNumWarships(elementSimple(action, p.NumWarships(), amount))
		notify(UpdateWarship)

	default:
		logger.LogInfo("unknown player element type %d ignored", etype)
	}
}

func (d *Dispatcher) handlePlayerElement(msg protocol.Message, _ bool) {
	m := msg.(*protocol.PlayerElement)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	d.applyElement(g, l, m.PlayerNumber, m.Action, m.ElementType, m.Amount)
}

func (d *Dispatcher) handlePlayerElements(msg protocol.Message, _ bool) {
	m := msg.(*protocol.PlayerElements)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	for _, e := range m.Elements {
		d.applyElement(g, l, m.PlayerNumber, m.Action, e.ElementType, e.Amount)
	}
}

// handleResourceCount reconciles a hand against the server's authoritative
// total. A mismatch for another player means our per-type counters drifted;
// the hand becomes that many unknown cards. A mismatch for our own player is
// a bug worth logging, since the server itemizes everything we gain or lose.
func (d *Dispatcher) handleResourceCount(msg protocol.Message, _ bool) {
	m := msg.(*protocol.ResourceCount)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	p := g.Player(m.PlayerNumber)
	if p == nil {
		return
	}
	rs := p.Resources()
	if rs.Total() == m.Count {
		return
	}
	if p.Name() == d.session.Nickname {
		logger.LogError("own resource total %d disagrees with server count %d in game %s",
			rs.Total(), m.Count, m.Game)
		return
	}
	rs.Clear()
	rs.SetAmount(game.UnknownResource, m.Count)
	if l != nil {
		l.PlayerResourcesUpdated(p)
	}
}
