//go:build !production

package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockSender is a testify mock of the dispatcher's Sender.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Put(cmd string, isPractice bool) error {
	args := m.Called(cmd, isPractice)
	return args.Error(0)
}

// SentLine is one command captured by SimpleSender.
type SentLine struct {
	Cmd        string
	IsPractice bool
}

// SimpleSender records outbound commands without testify, for tests that
// only inspect what was sent.
type SimpleSender struct {
	mu    sync.Mutex
	Lines []SentLine
}

func (s *SimpleSender) Put(cmd string, isPractice bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Lines = append(s.Lines, SentLine{Cmd: cmd, IsPractice: isPractice})
	return nil
}

// Sent returns the captured command lines in order.
func (s *SimpleSender) Sent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]string, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = l.Cmd
	}
	return lines
}
