package client

import (
	"github.com/hexhaven/hexhaven/internal/game"
	"github.com/hexhaven/hexhaven/internal/protocol"
)

// applyGameState is the single path for every game phase change no matter
// which message carried it. Leaving the NEW state fires GameStarted exactly
// once, before the state notification, so observers see the ordering
// "started, then first real state".
func (d *Dispatcher) applyGameState(g *game.Game, l Listener, state int) {
	started := g.State() == game.StateNew && state != game.StateNew
	g.SetState(state)
	if l == nil {
		return
	}
	if started {
		l.GameStarted()
	}
	l.GameStateChanged(state)
}

// handleSitDown seats a player. Seating changes run under the game monitor
// because the UI reads seat assignments from other goroutines.
func (d *Dispatcher) handleSitDown(msg protocol.Message, isPractice bool) {
	m := msg.(*protocol.SitDown)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}

	g.Lock()
	if g.IsSeatVacant(m.PlayerNumber) {
		g.AddPlayer(m.Nickname, m.PlayerNumber)
	}
	p := g.Player(m.PlayerNumber)
	p.SetName(m.Nickname)
	p.SetRobot(m.IsRobot)
	g.Unlock()

	if l != nil {
		l.PlayerSitdown(m.PlayerNumber, m.Nickname)
	}

	// Sitting down resets our face on the server; re-send the one we last
	// chose.
	if m.Nickname == d.session.Nickname {
		if face := d.session.LastFaceID(); face != 1 {
			cf := &protocol.ChangeFace{Game: m.Game, PlayerNumber: m.PlayerNumber, FaceID: face}
			d.put(cf.Command(), isPractice)
		}
	}
}

func (d *Dispatcher) handleBoardLayout(msg protocol.Message, _ bool) {
	m := msg.(*protocol.BoardLayout)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	b := g.Board()
	b.SetEncoding(game.BoardEncoding4Player)
	b.SetHexLayout(m.HexLayout)
	b.SetNumberLayout(m.NumberLayout)
	b.SetRobberHex(m.RobberHex, false)
	if l != nil {
		l.BoardLayoutUpdated()
	}
}

func (d *Dispatcher) handleBoardLayout2(msg protocol.Message, _ bool) {
	m := msg.(*protocol.BoardLayout2)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	b := g.Board()
	b.SetEncoding(m.Encoding)

	extra := map[string][]int{}
	for name, vals := range m.Parts {
		switch name {
		case protocol.PartHexLayout:
			b.SetHexLayout(vals)
		case protocol.PartNumberLayout:
			b.SetNumberLayout(vals)
		case protocol.PartPortLayout:
			b.SetPortLayout(vals)
		case protocol.PartLandHexLayout:
			b.SetLandHexLayout(vals)
		case protocol.PartRobberHex:
			b.SetRobberHex(m.IntPart(name), false)
		case protocol.PartPirateHex:
			b.SetPirateHex(m.IntPart(name), false)
		case protocol.PartPlayerExcluded:
			b.SetPlayerExcludedAreas(vals)
		case protocol.PartRobberExcluded:
			b.SetRobberExcludedAreas(vals)
		case protocol.PartVillagesCloth:
			b.SetVillageAndClothLayout(vals)
		default:
			extra[name] = vals
		}
	}
	if len(extra) > 0 {
		b.SetAddedParts(extra)
	}
	if l != nil {
		l.BoardLayoutUpdated()
	}
}

func (d *Dispatcher) handlePotentialSettlements(msg protocol.Message, _ bool) {
	m := msg.(*protocol.PotentialSettlements)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	g.Board().SetPotentialSettlements(m.PlayerNumber, m.Nodes)
	if l != nil {
		l.BoardPotentialsUpdated()
	}
}

func (d *Dispatcher) handleStartGame(msg protocol.Message, _ bool) {
	m := msg.(*protocol.StartGame)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	if g.State() == game.StateNew {
		d.applyGameState(g, l, game.StateStart1A)
	}
}

func (d *Dispatcher) handleGameState(msg protocol.Message, _ bool) {
	m := msg.(*protocol.GameState)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	d.applyGameState(g, l, m.State)
}

func (d *Dispatcher) handleSetTurn(msg protocol.Message, _ bool) {
	m := msg.(*protocol.SetTurn)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	g.SetCurrentPlayer(m.PlayerNumber)
	if l != nil {
		l.PlayerTurnSet(m.PlayerNumber)
	}
}

func (d *Dispatcher) handleFirstPlayer(msg protocol.Message, _ bool) {
	m := msg.(*protocol.FirstPlayer)
	g, _ := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	g.SetFirstPlayer(m.PlayerNumber)
}

// handleTurn starts a new player's turn: state change first when the
// message carries one, then the turn bookkeeping.
func (d *Dispatcher) handleTurn(msg protocol.Message, _ bool) {
	m := msg.(*protocol.Turn)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	if m.State != 0 {
		d.applyGameState(g, l, m.State)
	}
	g.SetCurrentPlayer(m.PlayerNumber)
	g.UpdateAtTurn()
	if l != nil {
		l.PlayerTurnSet(m.PlayerNumber)
	}
}

func (d *Dispatcher) handleRollDicePrompt(msg protocol.Message, _ bool) {
	m := msg.(*protocol.RollDicePrompt)
	g, l := d.gameAndListener(m.Game)
	if g == nil || l == nil {
		return
	}
	p := g.Player(m.PlayerNumber)
	if p != nil && p.Name() == d.session.Nickname {
		l.RequestedDiceRoll()
	}
}

func (d *Dispatcher) handleDiceResult(msg protocol.Message, _ bool) {
	m := msg.(*protocol.DiceResult)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	g.SetCurrentDice(m.Result)
	if l != nil {
		l.DiceRolled(g.Player(g.CurrentPlayer()), m.Result)
	}
}

// handleDiceResultResources applies each player's itemized gains from the
// roll. The server's per-player total is authoritative; when our replica
// disagrees after applying the gains, the hand is rebuilt as unknown cards.
func (d *Dispatcher) handleDiceResultResources(msg protocol.Message, _ bool) {
	m := msg.(*protocol.DiceResultResources)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}

	seats := make([]int, 0, len(m.Gains))
	totals := make([]int, 0, len(m.Gains))
	for _, gain := range m.Gains {
		p := g.Player(gain.PlayerNumber)
		if p == nil {
			continue
		}
		rs := p.Resources()
		for i, amt := range gain.Amounts {
			rs.Add(game.Clay+i, amt)
		}
		if rs.Total() != gain.Total {
			rs.Clear()
			rs.SetAmount(game.UnknownResource, gain.Total)
		}
		seats = append(seats, gain.PlayerNumber)
		totals = append(totals, gain.Total)
		if l != nil {
			l.PlayerResourcesUpdated(p)
		}
	}
	if l != nil {
		l.DiceRolledResources(seats, totals)
	}
}

func (d *Dispatcher) handlePutPiece(msg protocol.Message, _ bool) {
	m := msg.(*protocol.PutPiece)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	p := g.Player(m.PlayerNumber)
	if p == nil {
		return
	}
	if n := p.NumPieces(m.PieceType); n > 0 {
		p.SetNumPieces(m.PieceType, n-1)
	}
	if l != nil {
		l.PlayerPiecePlaced(p, m.Coordinates, m.PieceType)
	}
}

func (d *Dispatcher) handleMovePiece(msg protocol.Message, _ bool) {
	m := msg.(*protocol.MovePiece)
	g, l := d.gameAndListener(m.Game)
	if g == nil || l == nil {
		return
	}
	l.PlayerPieceMoved(g.Player(m.PlayerNumber), m.FromCoord, m.ToCoord, m.PieceType)
}

// handleMoveRobber moves the robber, or the pirate ship when the coordinate
// is negative.
func (d *Dispatcher) handleMoveRobber(msg protocol.Message, _ bool) {
	m := msg.(*protocol.MoveRobber)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	hex := m.Coordinates
	isPirate := hex < 0
	if isPirate {
		hex = -hex
		g.Board().SetPirateHex(hex, true)
	} else {
		g.Board().SetRobberHex(hex, true)
	}
	if l != nil {
		l.RobberMoved(hex, isPirate)
	}
}

func (d *Dispatcher) handleDiscardRequest(msg protocol.Message, _ bool) {
	m := msg.(*protocol.DiscardRequest)
	if _, l := d.gameAndListener(m.Game); l != nil {
		l.RequestedDiscard(m.NumDiscards)
	}
}

func (d *Dispatcher) handlePickResourcesRequest(msg protocol.Message, _ bool) {
	m := msg.(*protocol.PickResourcesRequest)
	if _, l := d.gameAndListener(m.Game); l != nil {
		l.RequestedResourceSelect(m.Count)
	}
}

// handleChoosePlayerRequest resolves the victim choices to player records. A
// choices list longer than the seat count, with the extra entry set, means
// declining to rob is allowed.
func (d *Dispatcher) handleChoosePlayerRequest(msg protocol.Message, _ bool) {
	m := msg.(*protocol.ChoosePlayerRequest)
	g, l := d.gameAndListener(m.Game)
	if g == nil || l == nil {
		return
	}
	canChooseNone := len(m.Choices) > g.MaxPlayers() && m.Choices[len(m.Choices)-1]
	var players []*game.Player
	for seat, ok := range m.Choices {
		if ok && seat < g.MaxPlayers() {
			players = append(players, g.Player(seat))
		}
	}
	l.RequestedChoosePlayer(players, canChooseNone)
}

func (d *Dispatcher) handleChangeFace(msg protocol.Message, _ bool) {
	m := msg.(*protocol.ChangeFace)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	p := g.Player(m.PlayerNumber)
	if p == nil {
		return
	}
	p.SetFaceID(m.FaceID)
	if p.Name() == d.session.Nickname {
		d.session.SetLastFaceID(m.FaceID)
	}
	if l != nil {
		l.PlayerFaceChanged(p, m.FaceID)
	}
}

func (d *Dispatcher) handleLongestRoad(msg protocol.Message, _ bool) {
	m := msg.(*protocol.LongestRoad)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	old := g.PlayerWithLongestRoad()
	var now *game.Player
	if m.PlayerNumber >= 0 {
		now = g.Player(m.PlayerNumber)
	}
	g.SetPlayerWithLongestRoad(now)
	if l != nil && old != now {
		l.LongestRoadRefresh(old, now)
	}
}

func (d *Dispatcher) handleLargestArmy(msg protocol.Message, _ bool) {
	m := msg.(*protocol.LargestArmy)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	old := g.PlayerWithLargestArmy()
	var now *game.Player
	if m.PlayerNumber >= 0 {
		now = g.Player(m.PlayerNumber)
	}
	g.SetPlayerWithLargestArmy(now)
	if l != nil && old != now {
		l.LargestArmyRefresh(old, now)
	}
}

func (d *Dispatcher) handleSetSeatLock(msg protocol.Message, _ bool) {
	m := msg.(*protocol.SetSeatLock)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	g.SetSeatLock(m.PlayerNumber, m.Locked)
	if l != nil {
		l.SeatLockUpdated()
	}
}

// handleResetBoardAuth replaces the replica with a fresh copy keeping the
// same name and seats; layout and state messages for the new board follow.
func (d *Dispatcher) handleResetBoardAuth(msg protocol.Message, _ bool) {
	m := msg.(*protocol.ResetBoardAuth)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	fresh := g.ResetAsCopy()
	d.session.ReplaceGame(fresh)
	if l != nil {
		l.BoardReset(fresh, m.RejoinPlayerNumber, m.RequestingPlayer)
	}
}

func (d *Dispatcher) handleResetBoardVoteRequest(msg protocol.Message, _ bool) {
	m := msg.(*protocol.ResetBoardVoteRequest)
	g, l := d.gameAndListener(m.Game)
	if g == nil || l == nil {
		return
	}
	l.BoardResetVoteRequested(g.Player(m.RequestingPlayer))
}

func (d *Dispatcher) handleResetBoardVote(msg protocol.Message, _ bool) {
	m := msg.(*protocol.ResetBoardVote)
	g, l := d.gameAndListener(m.Game)
	if g == nil || l == nil {
		return
	}
	l.BoardResetVoteCast(g.Player(m.PlayerNumber), m.Vote)
}

func (d *Dispatcher) handleResetBoardReject(msg protocol.Message, _ bool) {
	m := msg.(*protocol.ResetBoardReject)
	if _, l := d.gameAndListener(m.Game); l != nil {
		l.BoardResetVoteRejected()
	}
}
