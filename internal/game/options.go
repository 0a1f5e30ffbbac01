package game

import (
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Option value types. Values match the wire codes of a GameOptionInfo reply.
const (
	OptUnknown = iota
	OptBool
	OptInt
	OptIntBool
	OptEnum
	OptStr
)

// Option is one game option: a rule variant with a typed value, known to
// specific protocol version ranges. Options are compared across client and
// server catalogs during the connect-time negotiation.
type Option struct {
	Key        string
	OptType    int
	MinVersion int // oldest protocol version that understands this option
	LastModVer int // protocol version at which this option last changed

	BoolValue bool
	IntValue  int
	StrValue  string
	Desc      string
}

// Copy returns an independent copy of the option.
func (o *Option) Copy() *Option {
	cp := *o
	return &cp
}

// packedValue encodes the option's current value for the wire.
func (o *Option) packedValue() string {
	switch o.OptType {
	case OptBool:
		if o.BoolValue {
			return "t"
		}
		return "f"
	case OptInt, OptEnum:
		return strconv.Itoa(o.IntValue)
	case OptIntBool:
		prefix := "f"
		if o.BoolValue {
			prefix = "t"
		}
		return prefix + strconv.Itoa(o.IntValue)
	case OptStr:
		return o.StrValue
	default:
		return "?"
	}
}

// SetPacked decodes a wire value into the option, false if malformed.
func (o *Option) SetPacked(v string) bool {
	return o.setFromPacked(v)
}

// setFromPacked decodes a wire value into the option, false if malformed.
func (o *Option) setFromPacked(v string) bool {
	switch o.OptType {
	case OptBool:
		if v != "t" && v != "f" {
			return false
		}
		o.BoolValue = v == "t"
	case OptInt, OptEnum:
		n, err := strconv.Atoi(v)
		if err != nil {
			return false
		}
		o.IntValue = n
	case OptIntBool:
		if len(v) < 2 || (v[0] != 't' && v[0] != 'f') {
			return false
		}
		n, err := strconv.Atoi(v[1:])
		if err != nil {
			return false
		}
		o.BoolValue = v[0] == 't'
		o.IntValue = n
	case OptStr:
		o.StrValue = v
	default:
		o.StrValue = v
	}
	return true
}

// knownOptions is this client version's built-in option catalog. Guarded by
// knownMu because negotiation updates it from the reader thread while UI
// code may enumerate it.
var (
	knownMu      sync.Mutex
	knownOptions = buildKnownOptions()
)

func buildKnownOptions() map[string]*Option {
	opts := []*Option{
		{Key: "PL", OptType: OptInt, MinVersion: 1107, LastModVer: 1107, IntValue: 4, Desc: "Maximum # players"},
		{Key: "PLB", OptType: OptBool, MinVersion: 1108, LastModVer: 1108, Desc: "Use 6-player board"},
		{Key: "RD", OptType: OptBool, MinVersion: 1107, LastModVer: 1107, Desc: "Robber can't return to the desert"},
		{Key: "N7", OptType: OptIntBool, MinVersion: 1107, LastModVer: 1107, IntValue: 7, Desc: "Roll no 7s during first # rounds"},
		{Key: "BC", OptType: OptIntBool, MinVersion: 1107, LastModVer: 1107, BoolValue: true, IntValue: 4, Desc: "Break up clumps of # or more same-type hexes/ports"},
		{Key: "NT", OptType: OptBool, MinVersion: 1107, LastModVer: 1107, Desc: "No trading allowed between players"},
		{Key: "VP", OptType: OptIntBool, MinVersion: 1107, LastModVer: 1107, IntValue: 10, Desc: "Victory points to win: #"},
		{Key: "SBL", OptType: OptBool, MinVersion: 2000, LastModVer: 2000, Desc: "Use large sea board"},
		{Key: "SC", OptType: OptStr, MinVersion: 2000, LastModVer: 2000, Desc: "Game scenario"},
		{Key: "_SC_CLVI", OptType: OptBool, MinVersion: 2000, LastModVer: 2000, Desc: "Scenario: cloth trade with villages"},
		{Key: "_SC_PIRI", OptType: OptBool, MinVersion: 2000, LastModVer: 2000, Desc: "Scenario: pirate islands and fortresses"},
	}
	m := make(map[string]*Option, len(opts))
	for _, o := range opts {
		m[o.Key] = o
	}
	return m
}

// KnownOptions returns a fresh copy of the known-option catalog, safe for
// the caller to modify.
func KnownOptions() map[string]*Option {
	knownMu.Lock()
	defer knownMu.Unlock()
	m := make(map[string]*Option, len(knownOptions))
	for k, o := range knownOptions {
		m[k] = o.Copy()
	}
	return m
}

// KnownOption returns a copy of one catalog entry.
func KnownOption(key string) (*Option, bool) {
	knownMu.Lock()
	defer knownMu.Unlock()
	o, ok := knownOptions[key]
	if !ok {
		return nil, false
	}
	return o.Copy(), true
}

// AddKnownOption inserts or replaces a catalog entry; negotiation calls this
// as the server describes options newer than this client.
func AddKnownOption(o *Option) {
	knownMu.Lock()
	defer knownMu.Unlock()
	knownOptions[o.Key] = o.Copy()
}

// OptionsNewerThan lists known options changed after the given protocol
// version, sorted by key for deterministic wire output.
func OptionsNewerThan(version int) []*Option {
	knownMu.Lock()
	defer knownMu.Unlock()
	var out []*Option
	for _, o := range knownOptions {
		if o.LastModVer > version {
			out = append(out, o.Copy())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// ParseOptionsToMap decodes a packed "key=value;key=value" option string.
// Keys absent from the known catalog come back with OptUnknown type; a
// malformed pair is dropped rather than failing the whole set.
func ParseOptionsToMap(packed string) map[string]*Option {
	out := map[string]*Option{}
	if packed == "" || packed == "-" {
		return out
	}
	for _, pair := range strings.Split(packed, ";") {
		key, val, found := strings.Cut(pair, "=")
		if !found || key == "" {
			continue
		}
		opt, ok := KnownOption(key)
		if !ok {
			opt = &Option{Key: key, OptType: OptUnknown}
		}
		if !opt.setFromPacked(val) {
			continue
		}
		out[key] = opt
	}
	return out
}

// PackOptionsToString encodes options for the wire, sorted by key.
// Returns "-" for an empty set, the wire's "no options" marker.
func PackOptionsToString(opts map[string]*Option) string {
	if len(opts) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(opts[k].packedValue())
	}
	return sb.String()
}

// FindUnknowns lists the keys in opts whose type is OptUnknown, nil if none.
func FindUnknowns(opts map[string]*Option) []string {
	var unknowns []string
	for k, o := range opts {
		if o.OptType == OptUnknown {
			unknowns = append(unknowns, k)
		}
	}
	sort.Strings(unknowns)
	return unknowns
}
