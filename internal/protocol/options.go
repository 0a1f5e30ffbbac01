package protocol

import "strings"

// EndOfListKey marks the end of a server's option-info response stream.
const EndOfListKey = "-"

// GameOptionGetDefaults carries the server's default value for every game
// option it knows, packed as "key=value;key=value". The client also sends an
// empty one to ask for the list.
type GameOptionGetDefaults struct {
	Opts string
}

func (*GameOptionGetDefaults) Type() MessageType { return MsgGameOptionGetDefaults }

func parseGameOptionGetDefaults(r *reader) Message {
	m := &GameOptionGetDefaults{}
	if r.remaining() > 0 {
		m.Opts = r.rest()
	}
	return m
}

// Command encodes the client's request for defaults.
func (m *GameOptionGetDefaults) Command() string {
	return command(MsgGameOptionGetDefaults, m.Opts)
}

// GameOptionGetInfos asks the server to describe the named options.
// An empty key list sends the end-of-list key alone, meaning "describe every
// option changed since my version".
type GameOptionGetInfos struct {
	Keys      []string
	WantsI18n bool
}

func (*GameOptionGetInfos) Type() MessageType { return MsgGameOptionGetInfos }

// Command encodes the outbound info request.
func (m *GameOptionGetInfos) Command() string {
	keys := m.Keys
	if len(keys) == 0 {
		keys = []string{EndOfListKey}
	}
	fields := []string{strings.Join(keys, Sep3), btoa(m.WantsI18n)}
	return command(MsgGameOptionGetInfos, fields...)
}

// Option types of a GameOptionInfo reply.
const (
	OptTypeUnknown = iota
	OptTypeBool
	OptTypeInt
	OptTypeIntBool
	OptTypeEnum
	OptTypeStr
)

// GameOptionInfo describes one game option. A reply with the end-of-list key
// and unknown type terminates the negotiation round.
type GameOptionInfo struct {
	Key          string
	OptType      int
	MinVersion   int
	DefaultValue string
	Desc         string
}

func (*GameOptionInfo) Type() MessageType { return MsgGameOptionInfo }

func parseGameOptionInfo(r *reader) Message {
	m := &GameOptionInfo{Key: r.str(), OptType: r.int(), MinVersion: r.int(), DefaultValue: r.str(), Desc: r.rest()}
	if r.failed() {
		return nil
	}
	return m
}

// IsEndOfList reports whether this reply terminates the server's option-info
// stream.
func (m *GameOptionInfo) IsEndOfList() bool {
	return m.Key == EndOfListKey && m.OptType == OptTypeUnknown
}

// ScenarioInfo describes one scenario, reports a key as unknown, or marks
// the end of the scenario-info stream.
type ScenarioInfo struct {
	Key         string
	IsUnknown   bool
	NoMoreScens bool
	MinVersion  int
	Desc        string
}

func (*ScenarioInfo) Type() MessageType { return MsgScenarioInfo }

func parseScenarioInfo(r *reader) Message {
	m := &ScenarioInfo{Key: r.str()}
	if m.Key == EndOfListKey {
		m.NoMoreScens = true
		return m
	}
	m.IsUnknown = r.bool()
	m.MinVersion = r.int()
	m.Desc = r.rest()
	if r.failed() {
		return nil
	}
	return m
}
