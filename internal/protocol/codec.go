package protocol

import (
	"strconv"
	"strings"
)

// Decode parses one wire line into a typed message.
//
// Decode is total: an unknown type tag or a malformed body yields nil, never
// an error, so newer servers can send message types this client does not
// know about without breaking the connection.
func Decode(line string) Message {
	tag, body, found := strings.Cut(line, Sep)
	if !found {
		return nil
	}
	t, err := strconv.Atoi(tag)
	if err != nil {
		return nil
	}
	parse, ok := decoders[MessageType(t)]
	if !ok {
		return nil
	}
	return parse(newReader(body))
}

// decoders maps every known type tag to its body parser. Parsers return nil
// for malformed bodies.
var decoders = map[MessageType]func(*reader) Message{
	MsgVersion:               parseVersion,
	MsgStatus:                parseStatus,
	MsgRejectConnection:      parseRejectConnection,
	MsgServerPing:            parseServerPing,
	MsgChannels:              parseChannels,
	MsgBroadcastTextMsg:      parseBroadcastTextMsg,
	MsgGames:                 parseGames,
	MsgGamesWithOptions:      parseGamesWithOptions,
	MsgNewGame:               parseNewGame,
	MsgNewGameWithOptions:    parseNewGameWithOptions,
	MsgDeleteGame:            parseDeleteGame,
	MsgJoinGameAuth:          parseJoinGameAuth,
	MsgJoinGame:              parseJoinGame,
	MsgLeaveGame:             parseLeaveGame,
	MsgGameMembers:           parseGameMembers,
	MsgGameStats:             parseGameStats,
	MsgGameTextMsg:           parseGameTextMsg,
	MsgGameServerText:        parseGameServerText,
	MsgSitDown:               parseSitDown,
	MsgBoardLayout:           parseBoardLayout,
	MsgBoardLayout2:          parseBoardLayout2,
	MsgPotentialSettlements:  parsePotentialSettlements,
	MsgStartGame:             parseStartGame,
	MsgGameState:             parseGameState,
	MsgSetTurn:               parseSetTurn,
	MsgFirstPlayer:           parseFirstPlayer,
	MsgTurn:                  parseTurn,
	MsgRollDicePrompt:        parseRollDicePrompt,
	MsgDiceResult:            parseDiceResult,
	MsgDiceResultResources:   parseDiceResultResources,
	MsgPlayerElement:         parsePlayerElement,
	MsgPlayerElements:        parsePlayerElements,
	MsgResourceCount:         parseResourceCount,
	MsgPutPiece:              parsePutPiece,
	MsgMovePiece:             parseMovePiece,
	MsgMoveRobber:            parseMoveRobber,
	MsgDiscardRequest:        parseDiscardRequest,
	MsgPickResourcesRequest:  parsePickResourcesRequest,
	MsgChoosePlayerRequest:   parseChoosePlayerRequest,
	MsgMakeOffer:             parseMakeOffer,
	MsgClearOffer:            parseClearOffer,
	MsgRejectOffer:           parseRejectOffer,
	MsgClearTradeMsg:         parseClearTradeMsg,
	MsgDevCardCount:          parseDevCardCount,
	MsgDevCardAction:         parseDevCardAction,
	MsgSetPlayedDevCard:      parseSetPlayedDevCard,
	MsgChangeFace:            parseChangeFace,
	MsgLongestRoad:           parseLongestRoad,
	MsgLargestArmy:           parseLargestArmy,
	MsgSetSeatLock:           parseSetSeatLock,
	MsgResetBoardAuth:        parseResetBoardAuth,
	MsgResetBoardVoteRequest: parseResetBoardVoteRequest,
	MsgResetBoardVote:        parseResetBoardVote,
	MsgResetBoardReject:      parseResetBoardReject,
	MsgGameOptionGetDefaults: parseGameOptionGetDefaults,
	MsgGameOptionInfo:        parseGameOptionInfo,
	MsgScenarioInfo:          parseScenarioInfo,
}

// reader walks a message body field by field. The first parse failure
// latches; callers check failed() once after reading everything.
type reader struct {
	fields []string
	pos    int
	bad    bool
}

func newReader(body string) *reader {
	if body == "" {
		return &reader{}
	}
	return &reader{fields: strings.Split(body, Sep2)}
}

func (r *reader) failed() bool { return r.bad }

// str reads the next field as-is. Empty fields are valid.
func (r *reader) str() string {
	if r.pos >= len(r.fields) {
		r.bad = true
		return ""
	}
	s := r.fields[r.pos]
	r.pos++
	return s
}

// rest joins all remaining fields back together; used for free text that may
// itself contain the field separator.
func (r *reader) rest() string {
	if r.pos >= len(r.fields) {
		r.bad = true
		return ""
	}
	s := strings.Join(r.fields[r.pos:], Sep2)
	r.pos = len(r.fields)
	return s
}

func (r *reader) int() int {
	n, err := strconv.Atoi(r.str())
	if err != nil {
		r.bad = true
	}
	return n
}

func (r *reader) bool() bool {
	return r.int() != 0
}

// ints reads the next field as a space-separated integer list.
func (r *reader) ints() []int {
	f := r.str()
	if r.bad || f == "" {
		return nil
	}
	parts := strings.Split(f, Sep3)
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			r.bad = true
			return nil
		}
		out[i] = n
	}
	return out
}

// bools reads the next field as a space-separated 0/1 list.
func (r *reader) bools() []bool {
	ns := r.ints()
	if r.bad {
		return nil
	}
	out := make([]bool, len(ns))
	for i, n := range ns {
		out[i] = n != 0
	}
	return out
}

// remaining reports how many unread fields are left.
func (r *reader) remaining() int {
	return len(r.fields) - r.pos
}

// itoa is shorthand used by the encoders.
func itoa(n int) string { return strconv.Itoa(n) }

func btoa(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, Sep3)
}

// command assembles an outbound wire line.
func command(t MessageType, fields ...string) string {
	return itoa(int(t)) + Sep + strings.Join(fields, Sep2)
}
