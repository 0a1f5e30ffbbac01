//go:build !production

package testutil

import (
	"sync"

	"github.com/hexhaven/hexhaven/internal/client"
)

// RecordingLobby captures connection-level events in order.
type RecordingLobby struct {
	mu     sync.Mutex
	Events []Event
}

var _ client.LobbyListener = (*RecordingLobby)(nil)

func (r *RecordingLobby) record(name string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Event{Name: name, Args: args})
}

// Count returns how many times the named event was recorded.
func (r *RecordingLobby) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.Events {
		if e.Name == name {
			n++
		}
	}
	return n
}

// Last returns the most recent event with the given name, nil if none.
func (r *RecordingLobby) Last(name string) *Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Name == name {
			e := r.Events[i]
			return &e
		}
	}
	return nil
}

func (r *RecordingLobby) ServerVersion(version int, versText, build string) {
	r.record("ServerVersion", version, versText, build)
}

func (r *RecordingLobby) Status(statusValue int, text string, isDebugMode bool) {
	r.record("Status", statusValue, text, isDebugMode)
}

func (r *RecordingLobby) ChannelsListed(names []string) { r.record("ChannelsListed", names) }

func (r *RecordingLobby) BroadcastReceived(text string) { r.record("BroadcastReceived", text) }

func (r *RecordingLobby) GameAdded(name, opts string, cannotJoin bool) {
	r.record("GameAdded", name, opts, cannotJoin)
}

func (r *RecordingLobby) GameRemoved(name string) { r.record("GameRemoved", name) }

func (r *RecordingLobby) GameStatsUpdated(name string, scores []int, robots []bool) {
	r.record("GameStatsUpdated", name, scores, robots)
}

func (r *RecordingLobby) ConnectionRejected(text string) { r.record("ConnectionRejected", text) }

func (r *RecordingLobby) OptionsRequestComplete(isPractice bool) {
	r.record("OptionsRequestComplete", isPractice)
}
