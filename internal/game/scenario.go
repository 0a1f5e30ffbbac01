package game

import "sync"

// Scenario is one game scenario known to this client or described by the
// server during negotiation.
type Scenario struct {
	Key        string
	MinVersion int
	Desc       string
}

var (
	scenMu         sync.Mutex
	knownScenarios = map[string]*Scenario{
		"SC_CLVI": {Key: "SC_CLVI", MinVersion: 2000, Desc: "Cloth Trade with neutral villages"},
		"SC_PIRI": {Key: "SC_PIRI", MinVersion: 2000, Desc: "Pirate Islands and Fortresses"},
		"SC_FOG":  {Key: "SC_FOG", MinVersion: 2000, Desc: "Fog Islands"},
		"SC_4ISL": {Key: "SC_4ISL", MinVersion: 2000, Desc: "The Four Islands"},
	}
)

// KnownScenario returns a copy of one scenario catalog entry.
func KnownScenario(key string) (*Scenario, bool) {
	scenMu.Lock()
	defer scenMu.Unlock()
	sc, ok := knownScenarios[key]
	if !ok {
		return nil, false
	}
	cp := *sc
	return &cp, true
}

// AddKnownScenario inserts or replaces a scenario catalog entry.
func AddKnownScenario(sc *Scenario) {
	scenMu.Lock()
	defer scenMu.Unlock()
	cp := *sc
	knownScenarios[sc.Key] = &cp
}

// RemoveUnknownScenario drops a scenario the server reported as unknown, so
// this client stops offering it for new games on that server.
func RemoveUnknownScenario(key string) {
	scenMu.Lock()
	defer scenMu.Unlock()
	delete(knownScenarios, key)
}
