// Package protocol defines the wire messages exchanged with a hexhaven
// server and the line codec that decodes them.
//
// The wire format is line oriented: one message per line, an integer type
// tag, then "|", then the message body. Body fields are separated by ","
// and numeric lists within a field by " ". Game-scoped messages carry the
// game name as the first body field.
package protocol

// Field separators of the wire format.
const (
	Sep  = "|"
	Sep2 = ","
	Sep3 = " "
)

// MessageType is the integer tag of a wire message.
type MessageType int

// Session and lobby messages.
const (
	MsgVersion MessageType = 1000 + iota
	MsgStatus
	MsgRejectConnection
	MsgServerPing
	MsgChannels
	MsgBroadcastTextMsg
	MsgGames
	MsgGamesWithOptions
	MsgNewGame
	MsgNewGameWithOptions
	MsgDeleteGame
	MsgJoinGameAuth
	MsgJoinGame
	MsgLeaveGame
	MsgGameMembers
	MsgGameStats
	MsgGameTextMsg
	MsgGameServerText
)

// In-game messages.
const (
	MsgSitDown MessageType = 1100 + iota
	MsgBoardLayout
	MsgBoardLayout2
	MsgPotentialSettlements
	MsgStartGame
	MsgGameState
	MsgSetTurn
	MsgFirstPlayer
	MsgTurn
	MsgRollDicePrompt
	MsgDiceResult
	MsgDiceResultResources
	MsgPlayerElement
	MsgPlayerElements
	MsgResourceCount
	MsgPutPiece
	MsgMovePiece
	MsgMoveRobber
	MsgDiscardRequest
	MsgPickResourcesRequest
	MsgChoosePlayerRequest
	MsgMakeOffer
	MsgClearOffer
	MsgRejectOffer
	MsgClearTradeMsg
	MsgDevCardCount
	MsgDevCardAction
	MsgSetPlayedDevCard
	MsgChangeFace
	MsgLongestRoad
	MsgLargestArmy
	MsgSetSeatLock
	MsgResetBoardAuth
	MsgResetBoardVoteRequest
	MsgResetBoardVote
	MsgResetBoardReject
)

// Game-type negotiation messages.
const (
	MsgGameOptionGetDefaults MessageType = 1200 + iota
	MsgGameOptionGetInfos
	MsgGameOptionInfo
	MsgScenarioInfo
)

// Message is a decoded wire message. Concrete types are one struct per
// message type; none of them mutate anything on decode.
type Message interface {
	Type() MessageType
}

// GameMessage is implemented by messages scoped to a single game.
type GameMessage interface {
	Message
	GameName() string
}
