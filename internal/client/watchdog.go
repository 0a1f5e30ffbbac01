package client

import (
	"sync"
	"time"

	"github.com/hexhaven/hexhaven/internal/logger"
)

// defaultNegotiationTimeout bounds how long the client waits for the server
// to finish answering an option-info request before assuming the rest of the
// replies were lost.
const defaultNegotiationTimeout = 5 * time.Second

// negotiationWatchdog finalizes game-option negotiation when the server goes
// quiet mid-handshake. It runs off the reader goroutine; every option reply
// rearms it, and the end-of-list reply stops it. The remote and practice
// connections negotiate independently, so each has its own timer.
type negotiationWatchdog struct {
	d       *Dispatcher
	timeout time.Duration

	mu     sync.Mutex
	timers [2]*time.Timer
}

func newNegotiationWatchdog(d *Dispatcher) *negotiationWatchdog {
	return &negotiationWatchdog{d: d, timeout: defaultNegotiationTimeout}
}

func timerIndex(isPractice bool) int {
	if isPractice {
		return 1
	}
	return 0
}

// setTimeout replaces the timeout used for negotiations armed afterwards.
func (w *negotiationWatchdog) setTimeout(t time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.timeout = t
}

// arm starts or restarts the timeout for one connection's negotiation.
func (w *negotiationWatchdog) arm(isPractice bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := timerIndex(isPractice)
	if w.timers[i] != nil {
		w.timers[i].Stop()
	}
	w.timers[i] = time.AfterFunc(w.timeout, func() { w.expire(isPractice) })
}

// stop cancels one connection's pending timeout, if any.
func (w *negotiationWatchdog) stop(isPractice bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := timerIndex(isPractice)
	if w.timers[i] != nil {
		w.timers[i].Stop()
		w.timers[i] = nil
	}
}

func (w *negotiationWatchdog) expire(isPractice bool) {
	info := w.d.session.Info(isPractice)
	if info.AllOptionsReceived() {
		return
	}
	logger.LogError("game option negotiation timed out, using known defaults")
	info.NoMoreOptions(!info.DefaultsReceived())
	if lobby := w.d.session.Lobby; lobby != nil {
		lobby.OptionsRequestComplete(isPractice)
	}
}
