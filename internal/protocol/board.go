package protocol

import "strings"

// SitDown seats a player (human or robot) at a game.
type SitDown struct {
	Game         string
	Nickname     string
	PlayerNumber int
	IsRobot      bool
}

func (*SitDown) Type() MessageType  { return MsgSitDown }
func (m *SitDown) GameName() string { return m.Game }

func parseSitDown(r *reader) Message {
	m := &SitDown{Game: r.str(), Nickname: r.str(), PlayerNumber: r.int(), IsRobot: r.bool()}
	if r.failed() {
		return nil
	}
	return m
}

// BoardLayout carries the legacy fixed-size 4-player board: hex layout,
// number layout, robber hex. Newer servers send BoardLayout2 instead.
type BoardLayout struct {
	Game         string
	HexLayout    []int
	NumberLayout []int
	RobberHex    int
}

func (*BoardLayout) Type() MessageType  { return MsgBoardLayout }
func (m *BoardLayout) GameName() string { return m.Game }

func parseBoardLayout(r *reader) Message {
	m := &BoardLayout{Game: r.str(), HexLayout: r.ints(), NumberLayout: r.ints(), RobberHex: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// Well-known part names of a BoardLayout2 message.
const (
	PartHexLayout      = "HL"
	PartNumberLayout   = "NL"
	PartRobberHex      = "RH"
	PartPirateHex      = "PH"
	PartPortLayout     = "PL"
	PartLandHexLayout  = "LH"
	PartPlayerExcluded = "PX"
	PartRobberExcluded = "RX"
	PartVillagesCloth  = "CV"
	PartFortressLayout = "FO"
)

// BoardLayout2 is the self-describing board layout: an encoding format
// number plus named integer-list parts. Unknown part names are preserved so
// newer scenario layouts still round-trip into the board's added parts.
type BoardLayout2 struct {
	Game     string
	Encoding int
	Parts    map[string][]int
}

func (*BoardLayout2) Type() MessageType  { return MsgBoardLayout2 }
func (m *BoardLayout2) GameName() string { return m.Game }

// IntPart returns the single-value part named key, or 0 if absent.
func (m *BoardLayout2) IntPart(key string) int {
	v := m.Parts[key]
	if len(v) == 0 {
		return 0
	}
	return v[0]
}

// IntArrayPart returns the list part named key, or nil if absent.
func (m *BoardLayout2) IntArrayPart(key string) []int {
	return m.Parts[key]
}

func parseBoardLayout2(r *reader) Message {
	m := &BoardLayout2{Game: r.str(), Encoding: r.int(), Parts: map[string][]int{}}
	for r.remaining() > 0 {
		name, vals, found := strings.Cut(r.str(), "=")
		if !found || name == "" {
			return nil
		}
		nums := newReader(vals)
		m.Parts[name] = nums.ints()
		if nums.failed() {
			return nil
		}
	}
	if r.failed() {
		return nil
	}
	return m
}

// PotentialSettlements lists the node coordinates where a player may build.
// PlayerNumber -1 applies to all players.
type PotentialSettlements struct {
	Game         string
	PlayerNumber int
	Nodes        []int
}

func (*PotentialSettlements) Type() MessageType  { return MsgPotentialSettlements }
func (m *PotentialSettlements) GameName() string { return m.Game }

func parsePotentialSettlements(r *reader) Message {
	m := &PotentialSettlements{Game: r.str(), PlayerNumber: r.int()}
	if r.remaining() > 0 {
		m.Nodes = r.ints()
	}
	if r.failed() {
		return nil
	}
	return m
}

// PutPiece announces a piece placed on the board.
type PutPiece struct {
	Game         string
	PlayerNumber int
	PieceType    int
	Coordinates  int
}

func (*PutPiece) Type() MessageType  { return MsgPutPiece }
func (m *PutPiece) GameName() string { return m.Game }

func parsePutPiece(r *reader) Message {
	m := &PutPiece{Game: r.str(), PlayerNumber: r.int(), PieceType: r.int(), Coordinates: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// MovePiece announces a piece moved between coordinates (ships, scenarios).
type MovePiece struct {
	Game         string
	PlayerNumber int
	PieceType    int
	FromCoord    int
	ToCoord      int
}

func (*MovePiece) Type() MessageType  { return MsgMovePiece }
func (m *MovePiece) GameName() string { return m.Game }

func parseMovePiece(r *reader) Message {
	m := &MovePiece{Game: r.str(), PlayerNumber: r.int(), PieceType: r.int(), FromCoord: r.int(), ToCoord: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// MoveRobber announces the robber's new hex. A negative coordinate means the
// pirate ship moved to the absolute value instead.
type MoveRobber struct {
	Game         string
	PlayerNumber int
	Coordinates  int
}

func (*MoveRobber) Type() MessageType  { return MsgMoveRobber }
func (m *MoveRobber) GameName() string { return m.Game }

func parseMoveRobber(r *reader) Message {
	m := &MoveRobber{Game: r.str(), PlayerNumber: r.int(), Coordinates: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// ResetBoardAuth starts a board reset: same game name and players, fresh
// layout and state to follow.
type ResetBoardAuth struct {
	Game               string
	RejoinPlayerNumber int
	RequestingPlayer   int
}

func (*ResetBoardAuth) Type() MessageType  { return MsgResetBoardAuth }
func (m *ResetBoardAuth) GameName() string { return m.Game }

func parseResetBoardAuth(r *reader) Message {
	m := &ResetBoardAuth{Game: r.str(), RejoinPlayerNumber: r.int(), RequestingPlayer: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// ResetBoardVoteRequest asks the other players to vote on a reset.
type ResetBoardVoteRequest struct {
	Game             string
	RequestingPlayer int
}

func (*ResetBoardVoteRequest) Type() MessageType  { return MsgResetBoardVoteRequest }
func (m *ResetBoardVoteRequest) GameName() string { return m.Game }

func parseResetBoardVoteRequest(r *reader) Message {
	m := &ResetBoardVoteRequest{Game: r.str(), RequestingPlayer: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// ResetBoardVote reports one player's vote on a reset request.
type ResetBoardVote struct {
	Game         string
	PlayerNumber int
	Vote         bool
}

func (*ResetBoardVote) Type() MessageType  { return MsgResetBoardVote }
func (m *ResetBoardVote) GameName() string { return m.Game }

func parseResetBoardVote(r *reader) Message {
	m := &ResetBoardVote{Game: r.str(), PlayerNumber: r.int(), Vote: r.bool()}
	if r.failed() {
		return nil
	}
	return m
}

// ResetBoardReject reports that the reset vote failed.
type ResetBoardReject struct {
	Game string
}

func (*ResetBoardReject) Type() MessageType  { return MsgResetBoardReject }
func (m *ResetBoardReject) GameName() string { return m.Game }

func parseResetBoardReject(r *reader) Message {
	m := &ResetBoardReject{Game: r.str()}
	if r.failed() {
		return nil
	}
	return m
}
