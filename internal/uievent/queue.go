// Package uievent decouples message handling from the user interface. The
// network reader must never block on a slow UI, so game events are posted to
// a buffered queue and replayed to the real listener on a consumer
// goroutine.
package uievent

import (
	"sync"

	"github.com/hexhaven/hexhaven/internal/client"
	"github.com/hexhaven/hexhaven/internal/game"
	"github.com/hexhaven/hexhaven/internal/logger"
)

// DefaultBufferSize holds roughly one full join sequence of a 6-player game.
const DefaultBufferSize = 256

// Queue is a client.Listener that forwards every event to an inner listener
// on its own goroutine. Posting never blocks; when the buffer is full the
// event is dropped and logged, which only happens if the UI goroutine has
// stalled.
type Queue struct {
	inner client.Listener
	ch    chan func(client.Listener)
	done  chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewQueue wraps inner in a buffered queue and starts its consumer.
func NewQueue(inner client.Listener) *Queue {
	q := &Queue{
		inner: inner,
		ch:    make(chan func(client.Listener), DefaultBufferSize),
		done:  make(chan struct{}),
	}
	go q.run()
	return q
}

// Close stops the consumer after it drains the events already queued.
// Events posted afterwards are discarded. Safe to call more than once.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()
	<-q.done
}

func (q *Queue) run() {
	defer close(q.done)
	for ev := range q.ch {
		ev(q.inner)
	}
}

func (q *Queue) post(ev func(client.Listener)) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	select {
	case q.ch <- ev:
	default:
		logger.LogError("ui event queue full, dropping event")
	}
}

func (q *Queue) PlayerJoined(nickname string) {
	q.post(func(l client.Listener) { l.PlayerJoined(nickname) })
}

func (q *Queue) PlayerLeft(nickname string, player *game.Player) {
	q.post(func(l client.Listener) { l.PlayerLeft(nickname, player) })
}

func (q *Queue) PlayerSitdown(seat int, nickname string) {
	q.post(func(l client.Listener) { l.PlayerSitdown(seat, nickname) })
}

func (q *Queue) PlayerTurnSet(seat int) {
	q.post(func(l client.Listener) { l.PlayerTurnSet(seat) })
}

func (q *Queue) PlayerPiecePlaced(player *game.Player, coordinate, pieceType int) {
	q.post(func(l client.Listener) { l.PlayerPiecePlaced(player, coordinate, pieceType) })
}

func (q *Queue) PlayerPieceMoved(player *game.Player, from, to, pieceType int) {
	q.post(func(l client.Listener) { l.PlayerPieceMoved(player, from, to, pieceType) })
}

func (q *Queue) PlayerElementUpdated(player *game.Player, utype client.UpdateType) {
	q.post(func(l client.Listener) { l.PlayerElementUpdated(player, utype) })
}

func (q *Queue) PlayerResourcesUpdated(player *game.Player) {
	q.post(func(l client.Listener) { l.PlayerResourcesUpdated(player) })
}

func (q *Queue) PlayerDevCardUpdated(player *game.Player, addedPlayable bool) {
	q.post(func(l client.Listener) { l.PlayerDevCardUpdated(player, addedPlayable) })
}

func (q *Queue) PlayerFaceChanged(player *game.Player, faceID int) {
	q.post(func(l client.Listener) { l.PlayerFaceChanged(player, faceID) })
}

func (q *Queue) DiceRolled(player *game.Player, roll int) {
	q.post(func(l client.Listener) { l.DiceRolled(player, roll) })
}

func (q *Queue) DiceRolledResources(seats []int, totals []int) {
	q.post(func(l client.Listener) { l.DiceRolledResources(seats, totals) })
}

func (q *Queue) BoardLayoutUpdated() {
	q.post(func(l client.Listener) { l.BoardLayoutUpdated() })
}

func (q *Queue) BoardPotentialsUpdated() {
	q.post(func(l client.Listener) { l.BoardPotentialsUpdated() })
}

func (q *Queue) BoardReset(newGame *game.Game, rejoinSeat, requestingSeat int) {
	q.post(func(l client.Listener) { l.BoardReset(newGame, rejoinSeat, requestingSeat) })
}

func (q *Queue) BoardResetVoteRequested(requestor *game.Player) {
	q.post(func(l client.Listener) { l.BoardResetVoteRequested(requestor) })
}

func (q *Queue) BoardResetVoteCast(voter *game.Player, vote bool) {
	q.post(func(l client.Listener) { l.BoardResetVoteCast(voter, vote) })
}

func (q *Queue) BoardResetVoteRejected() {
	q.post(func(l client.Listener) { l.BoardResetVoteRejected() })
}

func (q *Queue) RobberMoved(newHex int, isPirate bool) {
	q.post(func(l client.Listener) { l.RobberMoved(newHex, isPirate) })
}

func (q *Queue) DevCardDeckUpdated() {
	q.post(func(l client.Listener) { l.DevCardDeckUpdated() })
}

func (q *Queue) SeatLockUpdated() {
	q.post(func(l client.Listener) { l.SeatLockUpdated() })
}

func (q *Queue) LargestArmyRefresh(old, now *game.Player) {
	q.post(func(l client.Listener) { l.LargestArmyRefresh(old, now) })
}

func (q *Queue) LongestRoadRefresh(old, now *game.Player) {
	q.post(func(l client.Listener) { l.LongestRoadRefresh(old, now) })
}

func (q *Queue) GameStarted() {
	q.post(func(l client.Listener) { l.GameStarted() })
}

func (q *Queue) GameStateChanged(state int) {
	q.post(func(l client.Listener) { l.GameStateChanged(state) })
}

func (q *Queue) GameEnded(scores []int) {
	q.post(func(l client.Listener) { l.GameEnded(scores) })
}

func (q *Queue) GameMembersListed(names []string) {
	q.post(func(l client.Listener) { l.GameMembersListed(names) })
}

func (q *Queue) GameDisconnected(errorMessage string) {
	q.post(func(l client.Listener) { l.GameDisconnected(errorMessage) })
}

func (q *Queue) MessageReceived(nickname, text string) {
	q.post(func(l client.Listener) { l.MessageReceived(nickname, text) })
}

func (q *Queue) RequestedDiscard(count int) {
	q.post(func(l client.Listener) { l.RequestedDiscard(count) })
}

func (q *Queue) RequestedResourceSelect(count int) {
	q.post(func(l client.Listener) { l.RequestedResourceSelect(count) })
}

func (q *Queue) RequestedChoosePlayer(choices []*game.Player, canChooseNone bool) {
	q.post(func(l client.Listener) { l.RequestedChoosePlayer(choices, canChooseNone) })
}

func (q *Queue) RequestedTrade(offerer *game.Player) {
	q.post(func(l client.Listener) { l.RequestedTrade(offerer) })
}

func (q *Queue) RequestedTradeClear(offerer *game.Player) {
	q.post(func(l client.Listener) { l.RequestedTradeClear(offerer) })
}

func (q *Queue) RequestedTradeRejection(rejecter *game.Player) {
	q.post(func(l client.Listener) { l.RequestedTradeRejection(rejecter) })
}

func (q *Queue) RequestedTradeReset(player *game.Player) {
	q.post(func(l client.Listener) { l.RequestedTradeReset(player) })
}

func (q *Queue) RequestedSpecialBuild(player *game.Player) {
	q.post(func(l client.Listener) { l.RequestedSpecialBuild(player) })
}

func (q *Queue) RequestedDiceRoll() {
	q.post(func(l client.Listener) { l.RequestedDiceRoll() })
}
