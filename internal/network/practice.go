package network

import (
	"sync"

	"github.com/hexhaven/hexhaven/internal/apperrors"
	"github.com/hexhaven/hexhaven/internal/logger"
)

// Practice pipes protocol lines to and from an in-process practice server,
// mirroring Conn's shape without any socket. The embedded server consumes
// ServerLines and answers through Deliver.
type Practice struct {
	// OnLine receives each line the practice server sends back.
	OnLine func(line string)

	toServer chan string
	done     chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewPractice returns an unstarted practice pipe.
func NewPractice() *Practice {
	return &Practice{
		toServer: make(chan string, 256),
		done:     make(chan struct{}),
	}
}

// Send queues one line for the practice server.
func (p *Practice) Send(line string) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return apperrors.ErrNotConnected
	}
	p.mu.Unlock()

	select {
	case p.toServer <- line:
		return nil
	case <-p.done:
		return apperrors.ErrNotConnected
	}
}

// ServerLines is the stream of client lines the practice server consumes.
func (p *Practice) ServerLines() <-chan string {
	return p.toServer
}

// Deliver hands one server line to the client, on the caller's goroutine.
// The practice server calls this sequentially, matching the remote reader.
func (p *Practice) Deliver(line string) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
		}
	}()
	if p.OnLine != nil {
		p.OnLine(line)
	}
}

// Close shuts the pipe down. Safe to call more than once.
func (p *Practice) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.done)
}
