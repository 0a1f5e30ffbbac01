package client

import (
	"sync"
	"time"

	"github.com/hexhaven/hexhaven/internal/game"
	"github.com/hexhaven/hexhaven/internal/protocol"
)

// ServerInfo tracks one connection's negotiated game-type metadata: which
// game options and scenarios the server knows, and how far the connect-time
// handshake has progressed. The client keeps one for the remote server and
// one for the practice server, because the handshake is stateful.
type ServerInfo struct {
	mu sync.Mutex

	// OptionSet is this connection's working option catalog. Nil when the
	// server is too old to speak the options protocol at all.
	optionSet map[string]*game.Option

	allOptionsReceived bool
	defaultsReceived   bool
	askedDefaults      bool
	askedDefaultsAt    time.Time

	allScenInfoReceived bool
	scenKeys            map[string]bool
}

// NewServerInfo returns negotiation state seeded with this client version's
// known options.
func NewServerInfo() *ServerInfo {
	return &ServerInfo{
		optionSet: game.KnownOptions(),
		scenKeys:  map[string]bool{},
	}
}

// AllOptionsReceived reports whether the option handshake is complete for
// this connection (or the server cannot negotiate at all).
func (si *ServerInfo) AllOptionsReceived() bool {
	si.mu.Lock()
	defer si.mu.Unlock()
	return si.allOptionsReceived
}

// SupportsOptions reports whether this connection negotiates options.
func (si *ServerInfo) SupportsOptions() bool {
	si.mu.Lock()
	defer si.mu.Unlock()
	return si.optionSet != nil
}

// Option returns one entry of the working catalog.
func (si *ServerInfo) Option(key string) (*game.Option, bool) {
	si.mu.Lock()
	defer si.mu.Unlock()
	o, ok := si.optionSet[key]
	if !ok {
		return nil, false
	}
	return o.Copy(), true
}

// OptionKeys lists the working catalog's keys.
func (si *ServerInfo) OptionKeys() []string {
	si.mu.Lock()
	defer si.mu.Unlock()
	keys := make([]string, 0, len(si.optionSet))
	for k := range si.optionSet {
		keys = append(keys, k)
	}
	return keys
}

// DisableOptions marks the server too old for the options protocol; no
// further negotiation happens on this connection.
func (si *ServerInfo) DisableOptions() {
	si.mu.Lock()
	defer si.mu.Unlock()
	si.optionSet = nil
	si.allOptionsReceived = true
}

// RemoveOption drops an option from the working catalog, e.g. one whose key
// cannot be sent to this server's wire format.
func (si *ServerInfo) RemoveOption(key string) {
	si.mu.Lock()
	defer si.mu.Unlock()
	delete(si.optionSet, key)
}

// NoMoreOptions records that the server has nothing more to send. When
// askedDefaults is set, the defaults round is also marked complete.
func (si *ServerInfo) NoMoreOptions(askedDefaults bool) {
	si.mu.Lock()
	defer si.mu.Unlock()
	si.allOptionsReceived = true
	if askedDefaults {
		si.defaultsReceived = true
		si.askedDefaults = true
		si.askedDefaultsAt = time.Now()
	}
}

// MarkDefaultsRequested records that we asked the server for its defaults.
func (si *ServerInfo) MarkDefaultsRequested() {
	si.mu.Lock()
	defer si.mu.Unlock()
	si.askedDefaults = true
	si.askedDefaultsAt = time.Now()
}

// DefaultsReceived reports whether the defaults round completed.
func (si *ServerInfo) DefaultsReceived() bool {
	si.mu.Lock()
	defer si.mu.Unlock()
	return si.defaultsReceived
}

// ReceiveDefaults merges the server's default option values into the working
// catalog and returns the keys we do not recognize, nil when all are known.
// Unknown keys mean the negotiation needs another round.
func (si *ServerInfo) ReceiveDefaults(servOpts map[string]*game.Option) []string {
	si.mu.Lock()
	defer si.mu.Unlock()

	if len(si.optionSet) == 0 {
		si.optionSet = servOpts
	} else {
		for key, opt := range servOpts {
			si.optionSet[key] = opt
		}
	}

	unknowns := game.FindUnknowns(servOpts)
	si.allOptionsReceived = unknowns == nil
	si.defaultsReceived = true
	return unknowns
}

// ReceiveInfo applies one option-info reply. Returns true when the reply was
// the end-of-list marker, i.e. every option is now known.
func (si *ServerInfo) ReceiveInfo(mes *protocol.GameOptionInfo) bool {
	si.mu.Lock()
	defer si.mu.Unlock()

	if mes.IsEndOfList() {
		si.allOptionsReceived = true
		return true
	}

	opt := &game.Option{
		Key:        mes.Key,
		OptType:    mes.OptType,
		MinVersion: mes.MinVersion,
		Desc:       mes.Desc,
		LastModVer: mes.MinVersion,
	}
	if mes.OptType != game.OptUnknown {
		opt.SetPacked(mes.DefaultValue)
		game.AddKnownOption(opt)
		si.optionSet[mes.Key] = opt
	} else {
		// Server says this option no longer exists.
		delete(si.optionSet, mes.Key)
	}
	return false
}

// AllScenarioInfoReceived reports whether the scenario stream ended.
func (si *ServerInfo) AllScenarioInfoReceived() bool {
	si.mu.Lock()
	defer si.mu.Unlock()
	return si.allScenInfoReceived
}

// ReceiveScenarioInfo applies one scenario-info reply.
func (si *ServerInfo) ReceiveScenarioInfo(mes *protocol.ScenarioInfo) {
	si.mu.Lock()
	defer si.mu.Unlock()

	if mes.NoMoreScens {
		si.allScenInfoReceived = true
		return
	}
	if mes.IsUnknown {
		game.RemoveUnknownScenario(mes.Key)
	} else {
		game.AddKnownScenario(&game.Scenario{Key: mes.Key, MinVersion: mes.MinVersion, Desc: mes.Desc})
	}
	si.scenKeys[mes.Key] = true
}

// KnowsScenario reports whether the server already described this scenario
// key on this connection.
func (si *ServerInfo) KnowsScenario(key string) bool {
	si.mu.Lock()
	defer si.mu.Unlock()
	return si.allScenInfoReceived || si.scenKeys[key]
}
