package client

import (
	"time"

	"github.com/hexhaven/hexhaven/internal/game"
	"github.com/hexhaven/hexhaven/internal/logger"
	"github.com/hexhaven/hexhaven/internal/protocol"
)

// Sender carries outbound commands back to a server. isPractice selects the
// in-process practice server instead of the remote connection.
type Sender interface {
	Put(cmd string, isPractice bool) error
}

// handlerFunc processes one decoded inbound message.
type handlerFunc func(d *Dispatcher, msg protocol.Message, isPractice bool)

// Dispatcher routes decoded server messages to their handlers and applies
// them to the session's game replicas. All handling runs on the caller's
// goroutine; the network layer calls Handle sequentially per connection, so
// handlers never race each other for the same connection.
type Dispatcher struct {
	session  *Session
	sender   Sender
	handlers map[protocol.MessageType]handlerFunc

	// watchdog finalizes option negotiation if the server goes quiet.
	watchdog *negotiationWatchdog
}

// NewDispatcher wires the handler table for a session.
func NewDispatcher(session *Session, sender Sender) *Dispatcher {
	d := &Dispatcher{
		session: session,
		sender:  sender,
	}
	d.watchdog = newNegotiationWatchdog(d)
	d.handlers = map[protocol.MessageType]handlerFunc{
		// Connection and lobby.
		protocol.MsgVersion:            (*Dispatcher).handleVersion,
		protocol.MsgStatus:             (*Dispatcher).handleStatus,
		protocol.MsgRejectConnection:   (*Dispatcher).handleRejectConnection,
		protocol.MsgServerPing:         (*Dispatcher).handleServerPing,
		protocol.MsgChannels:           (*Dispatcher).handleChannels,
		protocol.MsgBroadcastTextMsg:   (*Dispatcher).handleBroadcastTextMsg,
		protocol.MsgGames:              (*Dispatcher).handleGames,
		protocol.MsgGamesWithOptions:   (*Dispatcher).handleGamesWithOptions,
		protocol.MsgNewGame:            (*Dispatcher).handleNewGame,
		protocol.MsgNewGameWithOptions: (*Dispatcher).handleNewGameWithOptions,
		protocol.MsgDeleteGame:         (*Dispatcher).handleDeleteGame,
		protocol.MsgJoinGameAuth:       (*Dispatcher).handleJoinGameAuth,
		protocol.MsgJoinGame:           (*Dispatcher).handleJoinGame,
		protocol.MsgLeaveGame:          (*Dispatcher).handleLeaveGame,
		protocol.MsgGameMembers:        (*Dispatcher).handleGameMembers,
		protocol.MsgGameStats:          (*Dispatcher).handleGameStats,
		protocol.MsgGameTextMsg:        (*Dispatcher).handleGameTextMsg,
		protocol.MsgGameServerText:     (*Dispatcher).handleGameServerText,

		// Seating, board, and game flow.
		protocol.MsgSitDown:               (*Dispatcher).handleSitDown,
		protocol.MsgBoardLayout:           (*Dispatcher).handleBoardLayout,
		protocol.MsgBoardLayout2:          (*Dispatcher).handleBoardLayout2,
		protocol.MsgPotentialSettlements:  (*Dispatcher).handlePotentialSettlements,
		protocol.MsgStartGame:             (*Dispatcher).handleStartGame,
		protocol.MsgGameState:             (*Dispatcher).handleGameState,
		protocol.MsgSetTurn:               (*Dispatcher).handleSetTurn,
		protocol.MsgFirstPlayer:           (*Dispatcher).handleFirstPlayer,
		protocol.MsgTurn:                  (*Dispatcher).handleTurn,
		protocol.MsgRollDicePrompt:        (*Dispatcher).handleRollDicePrompt,
		protocol.MsgDiceResult:            (*Dispatcher).handleDiceResult,
		protocol.MsgDiceResultResources:   (*Dispatcher).handleDiceResultResources,
		protocol.MsgPutPiece:              (*Dispatcher).handlePutPiece,
		protocol.MsgMovePiece:             (*Dispatcher).handleMovePiece,
		protocol.MsgMoveRobber:            (*Dispatcher).handleMoveRobber,
		protocol.MsgDiscardRequest:        (*Dispatcher).handleDiscardRequest,
		protocol.MsgPickResourcesRequest:  (*Dispatcher).handlePickResourcesRequest,
		protocol.MsgChoosePlayerRequest:   (*Dispatcher).handleChoosePlayerRequest,
		protocol.MsgChangeFace:            (*Dispatcher).handleChangeFace,
		protocol.MsgLongestRoad:           (*Dispatcher).handleLongestRoad,
		protocol.MsgLargestArmy:           (*Dispatcher).handleLargestArmy,
		protocol.MsgSetSeatLock:           (*Dispatcher).handleSetSeatLock,
		protocol.MsgResetBoardAuth:        (*Dispatcher).handleResetBoardAuth,
		protocol.MsgResetBoardVoteRequest: (*Dispatcher).handleResetBoardVoteRequest,
		protocol.MsgResetBoardVote:        (*Dispatcher).handleResetBoardVote,
		protocol.MsgResetBoardReject:      (*Dispatcher).handleResetBoardReject,

		// Player elements and hand contents.
		protocol.MsgPlayerElement:  (*Dispatcher).handlePlayerElement,
		protocol.MsgPlayerElements: (*Dispatcher).handlePlayerElements,
		protocol.MsgResourceCount:  (*Dispatcher).handleResourceCount,

		// Trading.
		protocol.MsgMakeOffer:     (*Dispatcher).handleMakeOffer,
		protocol.MsgClearOffer:    (*Dispatcher).handleClearOffer,
		protocol.MsgRejectOffer:   (*Dispatcher).handleRejectOffer,
		protocol.MsgClearTradeMsg: (*Dispatcher).handleClearTradeMsg,

		// Development cards.
		protocol.MsgDevCardAction:    (*Dispatcher).handleDevCardAction,
		protocol.MsgDevCardCount:     (*Dispatcher).handleDevCardCount,
		protocol.MsgSetPlayedDevCard: (*Dispatcher).handleSetPlayedDevCard,

		// Game-option negotiation.
		protocol.MsgGameOptionGetDefaults: (*Dispatcher).handleGameOptionGetDefaults,
		protocol.MsgGameOptionInfo:        (*Dispatcher).handleGameOptionInfo,
		protocol.MsgScenarioInfo:          (*Dispatcher).handleScenarioInfo,
	}
	return d
}

// Session exposes the dispatcher's session for callers that embed it.
func (d *Dispatcher) Session() *Session { return d.session }

// SetNegotiationTimeout adjusts how long option negotiation may stay quiet
// before the watchdog finalizes it.
func (d *Dispatcher) SetNegotiationTimeout(t time.Duration) {
	d.watchdog.setTimeout(t)
}

// Handle applies one decoded message. A nil message (unknown or malformed
// line) is dropped. A panicking handler is logged and does not take down the
// reader goroutine; the connection keeps processing later messages.
func (d *Dispatcher) Handle(msg protocol.Message, isPractice bool) {
	if msg == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.LogError("handler panic on message type %d: %v", msg.Type(), r)
			logger.LogPanic(r)
		}
	}()

	h, ok := d.handlers[msg.Type()]
	if !ok {
		logger.LogInfo("no handler for message type %d", msg.Type())
		return
	}
	h(d, msg, isPractice)
}

// put sends a command line, logging instead of failing the handler when the
// connection is gone.
func (d *Dispatcher) put(cmd string, isPractice bool) {
	if d.sender == nil {
		return
	}
	if err := d.sender.Put(cmd, isPractice); err != nil {
		logger.LogError("send failed: %v", err)
	}
}

// gameAndListener resolves a game message to its replica and listener.
// Messages for games we are not in resolve to a nil replica and handlers
// treat that as a no-op.
func (d *Dispatcher) gameAndListener(name string) (*game.Game, Listener) {
	g := d.session.Game(name)
	if g == nil {
		return nil, nil
	}
	return g, d.session.Listener(name)
}
