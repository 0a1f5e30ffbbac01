// Package game holds the client-side replica of one game's authoritative
// state: board, players, resources, development cards, and the turn/phase
// machine. The replica is mutated only by applying decoded server messages;
// it never makes game-logic decisions of its own.
package game

import (
	"fmt"
	"sync"
)

// Game states, ordered along the forward-only progression the server drives.
const (
	StateNew = 0

	// Board-reset interlude: waiting for robot players to leave before the
	// reset copy takes over.
	StateResetWaitRobotDismiss = 4

	StateStart1A = 5  // first settlement
	StateStart1B = 6  // first road
	StateStart2A = 10 // second settlement
	StateStart2B = 11 // second road
	StateStart3A = 12 // third settlement (some scenarios)
	StateStart3B = 13 // third road

	StateRollOrCard = 15 // roll the dice or play a card
	StatePlay1      = 20 // done rolling, normal play

	StatePlacingRoad       = 30
	StatePlacingSettlement = 31
	StatePlacingCity       = 32
	StatePlacingRobber     = 33
	StatePlacingPirate     = 34
	StatePlacingShip       = 35
	StatePlacingFreeRoad1  = 40
	StatePlacingFreeRoad2  = 41

	StateWaitingForDiscards  = 50
	StateWaitingForChoice    = 51 // choosing a robbery victim
	StateWaitingForDiscovery = 52
	StateWaitingForMonopoly  = 53
	StateWaitingForPicks     = 54 // gold hex resource picks

	StateOver     = 1000
	StateResetOld = 1001 // replaced by a reset copy; kept only for cleanup
)

// NoPlayer marks "no seat" in holder fields and messages.
const NoPlayer = -1

// MaxPlayers is the seat count of a standard game; games created with the
// 6-player option hold two more.
const MaxPlayers = 4

// Game is the client's in-memory mirror of one game on the server.
//
// Game is not internally synchronized for every field: the network reader
// owns mutation. Multi-step mutations that another goroutine could observe
// half-done go through Lock/Unlock, the game's coarse advisory monitor.
type Game struct {
	monitor sync.Mutex

	name       string
	isPractice bool
	opts       map[string]*Option

	maxPlayers int
	players    []*Player
	seatLocks  []bool

	board *Board
	state int

	currentPlayer int
	firstPlayer   int
	currentDice   int
	turnCount     int
	roundCount    int
	devCardDeck   int

	longestRoadHolder int
	largestArmyHolder int

	wasReset bool
}

// New creates an empty replica for the named game. opts may be nil.
func New(name string, opts map[string]*Option) *Game {
	maxPlayers := MaxPlayers
	if opt, ok := opts["PL"]; ok && opt.IntValue > maxPlayers {
		maxPlayers = opt.IntValue
	}
	g := &Game{
		name:              name,
		opts:              opts,
		maxPlayers:        maxPlayers,
		players:           make([]*Player, maxPlayers),
		seatLocks:         make([]bool, maxPlayers),
		board:             NewBoard(),
		state:             StateNew,
		currentPlayer:     NoPlayer,
		firstPlayer:       NoPlayer,
		longestRoadHolder: NoPlayer,
		largestArmyHolder: NoPlayer,
	}
	for i := range g.players {
		g.players[i] = newPlayer(i, g)
	}
	return g
}

// Lock acquires the game's coarse monitor around multi-step mutations.
func (g *Game) Lock() { g.monitor.Lock() }

// Unlock releases the monitor.
func (g *Game) Unlock() { g.monitor.Unlock() }

// Name returns the game's name, its unique key on this connection.
func (g *Game) Name() string { return g.name }

// IsPractice reports whether this replica belongs to the practice server.
func (g *Game) IsPractice() bool { return g.isPractice }

// SetPractice marks this replica as belonging to the practice server.
func (g *Game) SetPractice(p bool) { g.isPractice = p }

// Options returns the game's option map, nil when created without options.
func (g *Game) Options() map[string]*Option { return g.opts }

// MaxPlayers returns the seat count.
func (g *Game) MaxPlayers() int { return g.maxPlayers }

// Board returns the game's board.
func (g *Game) Board() *Board { return g.board }

// State returns the game's current state.
func (g *Game) State() int { return g.state }

// SetState sets the game's state. Transitions come only from the server.
func (g *Game) SetState(state int) { g.state = state }

// Player returns the player at a seat.
func (g *Game) Player(seat int) *Player { return g.players[seat] }

// PlayerByName finds a seated player by nickname, nil if not seated.
func (g *Game) PlayerByName(name string) *Player {
	for _, p := range g.players {
		if p.name == name {
			return p
		}
	}
	return nil
}

// AddPlayer seats a nickname. The seat may already be occupied by the same
// name (server re-sends sit-downs during join).
func (g *Game) AddPlayer(name string, seat int) error {
	if seat < 0 || seat >= g.maxPlayers {
		return fmt.Errorf("game %s: seat %d out of range", g.name, seat)
	}
	if name == "" {
		return fmt.Errorf("game %s: empty player name for seat %d", g.name, seat)
	}
	g.players[seat].name = name
	return nil
}

// RemovePlayer vacates the seat held by nickname, resetting its record.
func (g *Game) RemovePlayer(name string) {
	for seat, p := range g.players {
		if p.name == name {
			g.players[seat] = newPlayer(seat, g)
			return
		}
	}
}

// IsSeatVacant reports whether a seat has no player.
func (g *Game) IsSeatVacant(seat int) bool {
	return g.players[seat].name == ""
}

// SeatLocked reports whether a seat is locked against robot replacement.
func (g *Game) SeatLocked(seat int) bool { return g.seatLocks[seat] }

// SetSeatLock locks or unlocks a seat.
func (g *Game) SetSeatLock(seat int, locked bool) { g.seatLocks[seat] = locked }

// CurrentPlayer returns the seat whose turn it is, NoPlayer before start.
func (g *Game) CurrentPlayer() int { return g.currentPlayer }

// SetCurrentPlayer sets the seat whose turn it is.
func (g *Game) SetCurrentPlayer(seat int) { g.currentPlayer = seat }

// FirstPlayer returns the seat that went first.
func (g *Game) FirstPlayer() int { return g.firstPlayer }

// SetFirstPlayer records the seat that goes first.
func (g *Game) SetFirstPlayer(seat int) { g.firstPlayer = seat }

// CurrentDice returns the latest dice total, 0 before the first roll.
func (g *Game) CurrentDice() int { return g.currentDice }

// SetCurrentDice records the latest dice total.
func (g *Game) SetCurrentDice(roll int) { g.currentDice = roll }

// RoundCount returns how many full rounds have begun.
func (g *Game) RoundCount() int { return g.roundCount }

// TurnCount returns how many turns have begun since normal play started.
func (g *Game) TurnCount() int { return g.turnCount }

// DevCardDeck returns the number of cards left in the development deck.
func (g *Game) DevCardDeck() int { return g.devCardDeck }

// SetDevCardDeck sets the development deck count.
func (g *Game) SetDevCardDeck(n int) { g.devCardDeck = n }

// UpdateAtTurn runs the start-of-turn bookkeeping after the current player
// changes: reset the dice, age the new current player's dev cards, and when
// normal play has begun, count turns and rounds. Placement turns before the
// first roll do not count toward the round number.
func (g *Game) UpdateAtTurn() {
	if g.firstPlayer == NoPlayer {
		g.firstPlayer = g.currentPlayer
	}
	g.currentDice = 0
	if g.currentPlayer >= 0 && g.currentPlayer < len(g.players) {
		p := g.players[g.currentPlayer]
		p.inventory.NewToOld()
		p.playedDevCard = false
		p.askedSpecial = false
	}
	if g.state == StateRollOrCard {
		g.turnCount++
		if g.currentPlayer == g.firstPlayer {
			g.roundCount++
		}
	}
}

// PlayerWithLongestRoad returns the longest-road holder, nil when no one
// qualifies.
func (g *Game) PlayerWithLongestRoad() *Player {
	if g.longestRoadHolder == NoPlayer {
		return nil
	}
	return g.players[g.longestRoadHolder]
}

// SetPlayerWithLongestRoad sets the longest-road holder; nil clears it.
func (g *Game) SetPlayerWithLongestRoad(p *Player) {
	if p == nil {
		g.longestRoadHolder = NoPlayer
	} else {
		g.longestRoadHolder = p.seat
	}
}

// PlayerWithLargestArmy returns the largest-army holder, nil when no one
// qualifies.
func (g *Game) PlayerWithLargestArmy() *Player {
	if g.largestArmyHolder == NoPlayer {
		return nil
	}
	return g.players[g.largestArmyHolder]
}

// SetPlayerWithLargestArmy sets the largest-army holder; nil clears it.
func (g *Game) SetPlayerWithLargestArmy(p *Player) {
	if p == nil {
		g.largestArmyHolder = NoPlayer
	} else {
		g.largestArmyHolder = p.seat
	}
}

// UpdateLargestArmy recomputes the largest-army holder after a knight-count
// change. The threshold is three knights; the current holder keeps ties.
func (g *Game) UpdateLargestArmy() {
	size := 2
	if g.largestArmyHolder != NoPlayer {
		size = g.players[g.largestArmyHolder].knights
	}
	for seat, p := range g.players {
		if p.knights > size {
			g.largestArmyHolder = seat
			size = p.knights
		}
	}
}

// WasReset reports whether this replica came from a board reset.
func (g *Game) WasReset() bool { return g.wasReset }

// ResetAsCopy builds the replacement replica for a board reset: same name,
// options, and seated players, fresh board and play state. The old replica
// should be discarded afterwards.
func (g *Game) ResetAsCopy() *Game {
	reset := New(g.name, g.opts)
	reset.isPractice = g.isPractice
	reset.wasReset = true
	for seat, p := range g.players {
		if p.name != "" {
			reset.players[seat].name = p.name
			reset.players[seat].isRobot = p.isRobot
			reset.players[seat].faceID = p.faceID
		}
	}
	return reset
}
