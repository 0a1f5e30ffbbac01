package uievent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexhaven/hexhaven/internal/testutil"
	"github.com/hexhaven/hexhaven/internal/uievent"
)

func TestQueue_ForwardsInOrder(t *testing.T) {
	rec := &testutil.RecordingListener{}
	q := uievent.NewQueue(rec)

	q.GameStarted()
	q.GameStateChanged(5)
	q.PlayerSitdown(2, "bob")
	q.PlayerTurnSet(2)
	q.Close()

	assert.Equal(t,
		[]string{"GameStarted", "GameStateChanged", "PlayerSitdown", "PlayerTurnSet"},
		rec.Names())
	ev := rec.Last("PlayerSitdown")
	assert.Equal(t, []any{2, "bob"}, ev.Args)
}

func TestQueue_CloseDrainsPendingEvents(t *testing.T) {
	rec := &testutil.RecordingListener{}
	q := uievent.NewQueue(rec)

	for i := 0; i < 100; i++ {
		q.DiceRolled(nil, 7)
	}
	q.Close()

	assert.Equal(t, 100, rec.Count("DiceRolled"))
}

func TestQueue_PostAfterCloseIsDropped(t *testing.T) {
	rec := &testutil.RecordingListener{}
	q := uievent.NewQueue(rec)

	q.GameStarted()
	q.Close()

	assert.NotPanics(t, func() { q.GameStateChanged(5) })
	assert.NotPanics(t, q.Close)
	assert.Equal(t, 1, rec.Count("GameStarted"))
	assert.Equal(t, 0, rec.Count("GameStateChanged"))
}

func TestQueue_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	rec := &testutil.RecordingListener{}
	// A listener that never consumes: block the consumer goroutine on the
	// first event, then overfill the buffer.
	release := make(chan struct{})
	blocker := &blockingListener{RecordingListener: rec, release: release}
	q := uievent.NewQueue(blocker)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < uievent.DefaultBufferSize+10; i++ {
			q.GameStateChanged(i)
		}
	}()
	<-done // posting must never block, even with a stuck consumer
	close(release)
	q.Close()

	assert.LessOrEqual(t, rec.Count("GameStateChanged"), uievent.DefaultBufferSize+1)
}

type blockingListener struct {
	*testutil.RecordingListener
	release chan struct{}
	blocked bool
}

func (b *blockingListener) GameStateChanged(state int) {
	if !b.blocked {
		b.blocked = true
		<-b.release
	}
	b.RecordingListener.GameStateChanged(state)
}
