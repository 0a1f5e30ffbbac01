package protocol

// Version is the server's version report, sent once at connect.
type Version struct {
	Number   int    // protocol version number, e.g. 2000
	VersText string // human-readable version string
	Build    string // build identifier
	Features string // semicolon-separated server feature flags ("" before protocol 1190)
}

func (*Version) Type() MessageType { return MsgVersion }

func parseVersion(r *reader) Message {
	m := &Version{Number: r.int(), VersText: r.str(), Build: r.str()}
	if r.remaining() > 0 {
		m.Features = r.str()
	}
	if r.failed() {
		return nil
	}
	return m
}

// Command encodes the client's own version report.
func (m *Version) Command() string {
	return command(MsgVersion, itoa(m.Number), m.VersText, m.Build, m.Features)
}

// Status codes sent with a Status message.
const (
	StatusOK               = 0
	StatusNotOK            = 1
	StatusPasswordWrong    = 2
	StatusOKDebugMode      = 3
	StatusOptValueTooNew   = 4
	StatusNewGameNameTaken = 5
)

// Status is the server's response to an authentication or game-creation
// request. Text may hold composite sub-fields depending on Value.
type Status struct {
	Value int
	Text  string
}

func (*Status) Type() MessageType { return MsgStatus }

func parseStatus(r *reader) Message {
	m := &Status{Value: r.int(), Text: r.rest()}
	if r.failed() {
		return nil
	}
	return m
}

// RejectConnection means the server refused this client; the connection is
// about to close.
type RejectConnection struct {
	Text string
}

func (*RejectConnection) Type() MessageType { return MsgRejectConnection }

func parseRejectConnection(r *reader) Message {
	m := &RejectConnection{Text: r.rest()}
	if r.failed() {
		return nil
	}
	return m
}

// ServerPing must be echoed back so the server knows we are alive.
// SleepTime of -1 means this client was kicked by another with the same name.
type ServerPing struct {
	SleepTime int
}

func (*ServerPing) Type() MessageType { return MsgServerPing }

func parseServerPing(r *reader) Message {
	m := &ServerPing{SleepTime: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// Command encodes the ping echo.
func (m *ServerPing) Command() string {
	return command(MsgServerPing, itoa(m.SleepTime))
}

// Channels lists the chat channels available on this server.
type Channels struct {
	Channels []string
}

func (*Channels) Type() MessageType { return MsgChannels }

func parseChannels(r *reader) Message {
	m := &Channels{}
	for r.remaining() > 0 {
		m.Channels = append(m.Channels, r.str())
	}
	if r.failed() {
		return nil
	}
	return m
}

// BroadcastTextMsg is an announcement to everyone connected.
type BroadcastTextMsg struct {
	Text string
}

func (*BroadcastTextMsg) Type() MessageType { return MsgBroadcastTextMsg }

func parseBroadcastTextMsg(r *reader) Message {
	m := &BroadcastTextMsg{Text: r.rest()}
	if r.failed() {
		return nil
	}
	return m
}

// UnjoinableGamePrefix marks game names the server knows this client's
// version cannot join.
const UnjoinableGamePrefix = "⇩"

// Games lists the games currently on the server (pre-options servers).
type Games struct {
	Games []string
}

func (*Games) Type() MessageType { return MsgGames }

func parseGames(r *reader) Message {
	m := &Games{}
	for r.remaining() > 0 {
		m.Games = append(m.Games, r.str())
	}
	if r.failed() {
		return nil
	}
	return m
}

// GameInfo is one entry of a GamesWithOptions list.
type GameInfo struct {
	Name       string
	Opts       string // packed game options, may be ""
	MinVersion int
}

// GamesWithOptions lists games along with their packed option strings.
type GamesWithOptions struct {
	Games []GameInfo
}

func (*GamesWithOptions) Type() MessageType { return MsgGamesWithOptions }

func parseGamesWithOptions(r *reader) Message {
	m := &GamesWithOptions{}
	for r.remaining() >= 3 {
		m.Games = append(m.Games, GameInfo{Name: r.str(), Opts: r.str(), MinVersion: r.int()})
	}
	if r.failed() || r.remaining() != 0 {
		return nil
	}
	return m
}

// NewGame announces a game just created on the server.
type NewGame struct {
	Game string
}

func (*NewGame) Type() MessageType  { return MsgNewGame }
func (m *NewGame) GameName() string { return m.Game }

func parseNewGame(r *reader) Message {
	m := &NewGame{Game: r.str()}
	if r.failed() {
		return nil
	}
	return m
}

// NewGameWithOptions announces a just-created game and its options.
type NewGameWithOptions struct {
	Game       string
	Opts       string
	MinVersion int
}

func (*NewGameWithOptions) Type() MessageType  { return MsgNewGameWithOptions }
func (m *NewGameWithOptions) GameName() string { return m.Game }

func parseNewGameWithOptions(r *reader) Message {
	m := &NewGameWithOptions{Game: r.str(), Opts: r.str(), MinVersion: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// DeleteGame announces a game removed from the server.
type DeleteGame struct {
	Game string
}

func (*DeleteGame) Type() MessageType  { return MsgDeleteGame }
func (m *DeleteGame) GameName() string { return m.Game }

func parseDeleteGame(r *reader) Message {
	m := &DeleteGame{Game: r.str()}
	if r.failed() {
		return nil
	}
	return m
}

// JoinGameAuth authorizes this client's request to join a game; the server
// will follow up with the full game state.
type JoinGameAuth struct {
	Game string
}

func (*JoinGameAuth) Type() MessageType  { return MsgJoinGameAuth }
func (m *JoinGameAuth) GameName() string { return m.Game }

func parseJoinGameAuth(r *reader) Message {
	m := &JoinGameAuth{Game: r.str()}
	if r.failed() {
		return nil
	}
	return m
}

// JoinGame announces that a member (player or observer) joined a game.
type JoinGame struct {
	Game     string
	Nickname string
}

func (*JoinGame) Type() MessageType  { return MsgJoinGame }
func (m *JoinGame) GameName() string { return m.Game }

func parseJoinGame(r *reader) Message {
	m := &JoinGame{Game: r.str(), Nickname: r.str()}
	if r.failed() {
		return nil
	}
	return m
}

// LeaveGame announces that a member left a game.
type LeaveGame struct {
	Game     string
	Nickname string
}

func (*LeaveGame) Type() MessageType  { return MsgLeaveGame }
func (m *LeaveGame) GameName() string { return m.Game }

func parseLeaveGame(r *reader) Message {
	m := &LeaveGame{Game: r.str(), Nickname: r.str()}
	if r.failed() {
		return nil
	}
	return m
}

// GameMembers lists everyone in the game; the server sends it as the last
// step of the join sequence, just before gameplay messages begin.
type GameMembers struct {
	Game    string
	Members []string
}

func (*GameMembers) Type() MessageType  { return MsgGameMembers }
func (m *GameMembers) GameName() string { return m.Game }

func parseGameMembers(r *reader) Message {
	m := &GameMembers{Game: r.str()}
	for r.remaining() > 0 {
		m.Members = append(m.Members, r.str())
	}
	if r.failed() {
		return nil
	}
	return m
}

// GameStats reports final scores and which seats were robots.
type GameStats struct {
	Game   string
	Scores []int
	Robots []bool
}

func (*GameStats) Type() MessageType  { return MsgGameStats }
func (m *GameStats) GameName() string { return m.Game }

func parseGameStats(r *reader) Message {
	m := &GameStats{Game: r.str(), Scores: r.ints(), Robots: r.bools()}
	if r.failed() {
		return nil
	}
	return m
}

// ServerNickname is the reserved member name used by pre-2000 servers for
// their own game text.
const ServerNickname = "Server"

// GameTextMsg is chat or server text within a game.
type GameTextMsg struct {
	Game     string
	Nickname string
	Text     string
}

func (*GameTextMsg) Type() MessageType  { return MsgGameTextMsg }
func (m *GameTextMsg) GameName() string { return m.Game }

func parseGameTextMsg(r *reader) Message {
	m := &GameTextMsg{Game: r.str(), Nickname: r.str(), Text: r.rest()}
	if r.failed() {
		return nil
	}
	return m
}

// GameServerText is text from the server itself (protocol 2000 and newer).
type GameServerText struct {
	Game string
	Text string
}

func (*GameServerText) Type() MessageType  { return MsgGameServerText }
func (m *GameServerText) GameName() string { return m.Game }

func parseGameServerText(r *reader) Message {
	m := &GameServerText{Game: r.str(), Text: r.rest()}
	if r.failed() {
		return nil
	}
	return m
}
