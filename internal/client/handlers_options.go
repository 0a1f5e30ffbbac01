package client

import (
	"github.com/hexhaven/hexhaven/internal/game"
	"github.com/hexhaven/hexhaven/internal/protocol"
)

// RequestGameOptionDefaults starts (or finishes, if the catalog is already
// complete) the defaults round of option negotiation for one connection.
// The UI calls this before showing a new-game form.
func (d *Dispatcher) RequestGameOptionDefaults(isPractice bool) {
	info := d.session.Info(isPractice)
	if !info.SupportsOptions() || (info.AllOptionsReceived() && info.DefaultsReceived()) {
		d.optionsComplete(isPractice)
		return
	}
	info.MarkDefaultsRequested()
	d.put((&protocol.GameOptionGetDefaults{}).Command(), isPractice)
	d.watchdog.arm(isPractice)
}

// optionsComplete stops the watchdog and tells the lobby the negotiated
// catalog is ready to use.
func (d *Dispatcher) optionsComplete(isPractice bool) {
	d.watchdog.stop(isPractice)
	if lobby := d.session.Lobby; lobby != nil {
		lobby.OptionsRequestComplete(isPractice)
	}
}

// handleGameOptionGetDefaults merges the server's defaults. Keys we have
// never heard of trigger one more round asking the server to describe them;
// otherwise negotiation is done.
func (d *Dispatcher) handleGameOptionGetDefaults(msg protocol.Message, isPractice bool) {
	m := msg.(*protocol.GameOptionGetDefaults)
	info := d.session.Info(isPractice)

	unknowns := info.ReceiveDefaults(game.ParseOptionsToMap(m.Opts))
	if unknowns == nil {
		d.optionsComplete(isPractice)
		return
	}
	req := &protocol.GameOptionGetInfos{
		Keys:      unknowns,
		WantsI18n: d.session.Caps(isPractice).SupportsI18N(),
	}
	d.put(req.Command(), isPractice)
	d.watchdog.arm(isPractice)
}

// handleGameOptionInfo applies one reply of an option-info stream. The
// end-of-list reply finishes negotiation; anything else rearms the watchdog
// while we wait for the rest of the stream.
func (d *Dispatcher) handleGameOptionInfo(msg protocol.Message, isPractice bool) {
	m := msg.(*protocol.GameOptionInfo)
	if d.session.Info(isPractice).ReceiveInfo(m) {
		d.optionsComplete(isPractice)
		return
	}
	d.watchdog.arm(isPractice)
}

func (d *Dispatcher) handleScenarioInfo(msg protocol.Message, isPractice bool) {
	m := msg.(*protocol.ScenarioInfo)
	d.session.Info(isPractice).ReceiveScenarioInfo(m)
}
