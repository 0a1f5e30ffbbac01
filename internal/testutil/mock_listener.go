//go:build !production

package testutil

import (
	"sync"

	"github.com/hexhaven/hexhaven/internal/client"
	"github.com/hexhaven/hexhaven/internal/game"
)

// Event is one recorded listener callback.
type Event struct {
	Name string
	Args []any
}

// RecordingListener captures every game event in order, for asserting on
// what a handler emitted and in what sequence.
type RecordingListener struct {
	mu     sync.Mutex
	Events []Event
}

var _ client.Listener = (*RecordingListener)(nil)

func (r *RecordingListener) record(name string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Event{Name: name, Args: args})
}

// Names returns the recorded event names in order.
func (r *RecordingListener) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.Events))
	for i, e := range r.Events {
		names[i] = e.Name
	}
	return names
}

// Count returns how many times the named event was recorded.
func (r *RecordingListener) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.Events {
		if e.Name == name {
			n++
		}
	}
	return n
}

// Last returns the most recent event with the given name, nil if none.
func (r *RecordingListener) Last(name string) *Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Name == name {
			e := r.Events[i]
			return &e
		}
	}
	return nil
}

func (r *RecordingListener) PlayerJoined(nickname string) { r.record("PlayerJoined", nickname) }

func (r *RecordingListener) PlayerLeft(nickname string, player *game.Player) {
	r.record("PlayerLeft", nickname, player)
}

func (r *RecordingListener) PlayerSitdown(seat int, nickname string) {
	r.record("PlayerSitdown", seat, nickname)
}

func (r *RecordingListener) PlayerTurnSet(seat int) { r.record("PlayerTurnSet", seat) }

func (r *RecordingListener) PlayerPiecePlaced(player *game.Player, coordinate, pieceType int) {
	r.record("PlayerPiecePlaced", player, coordinate, pieceType)
}

func (r *RecordingListener) PlayerPieceMoved(player *game.Player, from, to, pieceType int) {
	r.record("PlayerPieceMoved", player, from, to, pieceType)
}

func (r *RecordingListener) PlayerElementUpdated(player *game.Player, utype client.UpdateType) {
	r.record("PlayerElementUpdated", player, utype)
}

func (r *RecordingListener) PlayerResourcesUpdated(player *game.Player) {
	r.record("PlayerResourcesUpdated", player)
}

func (r *RecordingListener) PlayerDevCardUpdated(player *game.Player, addedPlayable bool) {
	r.record("PlayerDevCardUpdated", player, addedPlayable)
}

func (r *RecordingListener) PlayerFaceChanged(player *game.Player, faceID int) {
	r.record("PlayerFaceChanged", player, faceID)
}

func (r *RecordingListener) DiceRolled(player *game.Player, roll int) {
	r.record("DiceRolled", player, roll)
}

func (r *RecordingListener) DiceRolledResources(seats []int, totals []int) {
	r.record("DiceRolledResources", seats, totals)
}

func (r *RecordingListener) BoardLayoutUpdated() { r.record("BoardLayoutUpdated") }

func (r *RecordingListener) BoardPotentialsUpdated() { r.record("BoardPotentialsUpdated") }

func (r *RecordingListener) BoardReset(newGame *game.Game, rejoinSeat, requestingSeat int) {
	r.record("BoardReset", newGame, rejoinSeat, requestingSeat)
}

func (r *RecordingListener) BoardResetVoteRequested(requestor *game.Player) {
	r.record("BoardResetVoteRequested", requestor)
}

func (r *RecordingListener) BoardResetVoteCast(voter *game.Player, vote bool) {
	r.record("BoardResetVoteCast", voter, vote)
}

func (r *RecordingListener) BoardResetVoteRejected() { r.record("BoardResetVoteRejected") }

func (r *RecordingListener) RobberMoved(newHex int, isPirate bool) {
	r.record("RobberMoved", newHex, isPirate)
}

func (r *RecordingListener) DevCardDeckUpdated() { r.record("DevCardDeckUpdated") }

func (r *RecordingListener) SeatLockUpdated() { r.record("SeatLockUpdated") }

func (r *RecordingListener) LargestArmyRefresh(old, now *game.Player) {
	r.record("LargestArmyRefresh", old, now)
}

func (r *RecordingListener) LongestRoadRefresh(old, now *game.Player) {
	r.record("LongestRoadRefresh", old, now)
}

func (r *RecordingListener) GameStarted() { r.record("GameStarted") }

func (r *RecordingListener) GameStateChanged(state int) { r.record("GameStateChanged", state) }

func (r *RecordingListener) GameEnded(scores []int) { r.record("GameEnded", scores) }

func (r *RecordingListener) GameMembersListed(names []string) {
	r.record("GameMembersListed", names)
}

func (r *RecordingListener) GameDisconnected(errorMessage string) {
	r.record("GameDisconnected", errorMessage)
}

func (r *RecordingListener) MessageReceived(nickname, text string) {
	r.record("MessageReceived", nickname, text)
}

func (r *RecordingListener) RequestedDiscard(count int) { r.record("RequestedDiscard", count) }

func (r *RecordingListener) RequestedResourceSelect(count int) {
	r.record("RequestedResourceSelect", count)
}

func (r *RecordingListener) RequestedChoosePlayer(choices []*game.Player, canChooseNone bool) {
	r.record("RequestedChoosePlayer", choices, canChooseNone)
}

func (r *RecordingListener) RequestedTrade(offerer *game.Player) {
	r.record("RequestedTrade", offerer)
}

func (r *RecordingListener) RequestedTradeClear(offerer *game.Player) {
	r.record("RequestedTradeClear", offerer)
}

func (r *RecordingListener) RequestedTradeRejection(rejecter *game.Player) {
	r.record("RequestedTradeRejection", rejecter)
}

func (r *RecordingListener) RequestedTradeReset(player *game.Player) {
	r.record("RequestedTradeReset", player)
}

func (r *RecordingListener) RequestedSpecialBuild(player *game.Player) {
	r.record("RequestedSpecialBuild", player)
}

func (r *RecordingListener) RequestedDiceRoll() { r.record("RequestedDiceRoll") }
