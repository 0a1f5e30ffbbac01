package client

import (
	"sync"

	"github.com/hexhaven/hexhaven/internal/capability"
	"github.com/hexhaven/hexhaven/internal/game"
)

// ListenerFactory builds the per-game event listener when the server admits
// us to a game. Returning nil is allowed; the session then tracks the game
// silently.
type ListenerFactory func(g *game.Game) Listener

// Session is the client-side state shared by all message handlers: which
// games we are in, who listens to each, and what we know about each server.
// It is mutated only from the dispatch goroutine, except where noted.
type Session struct {
	Nickname string

	// ListenerFactory, when set, is invoked once per joined game.
	ListenerFactory ListenerFactory

	// Lobby receives connection-level events. May be nil.
	Lobby LobbyListener

	mu            sync.Mutex
	games         map[string]*game.Game
	listeners     map[string]Listener
	serverGames   map[string]string // lobby game name -> packed options
	remoteVersion int
	remoteBuild   string
	remoteFeats   string
	lastFaceID    int

	// RemoteInfo and PracticeInfo hold the per-connection negotiation state.
	RemoteInfo   *ServerInfo
	PracticeInfo *ServerInfo
}

// NewSession returns an empty session for the given player nickname.
func NewSession(nickname string) *Session {
	return &Session{
		Nickname:     nickname,
		games:        map[string]*game.Game{},
		listeners:    map[string]Listener{},
		serverGames:  map[string]string{},
		lastFaceID:   1,
		RemoteInfo:   NewServerInfo(),
		PracticeInfo: NewServerInfo(),
	}
}

// Caps returns the capability set for the given connection.
func (s *Session) Caps(isPractice bool) capability.Caps {
	if isPractice {
		return capability.ForPractice()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return capability.Caps{ServerVersion: s.remoteVersion}
}

// Info returns the negotiation state for the given connection.
func (s *Session) Info(isPractice bool) *ServerInfo {
	if isPractice {
		return s.PracticeInfo
	}
	return s.RemoteInfo
}

// SetRemoteVersion records the remote server's version report.
func (s *Session) SetRemoteVersion(version int, build, feats string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remoteVersion = version
	s.remoteBuild = build
	s.remoteFeats = feats
}

// RemoteVersion returns the remote server's reported version, 0 before the
// report arrives.
func (s *Session) RemoteVersion() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remoteVersion
}

// Game returns the joined game with this name, nil if we are not in it.
func (s *Session) Game(name string) *game.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.games[name]
}

// Listener returns the event listener for a joined game, nil if none.
func (s *Session) Listener(gameName string) Listener {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listeners[gameName]
}

// AddGame registers a newly joined game and builds its listener.
func (s *Session) AddGame(g *game.Game) Listener {
	var l Listener
	if s.ListenerFactory != nil {
		l = s.ListenerFactory(g)
	}
	s.mu.Lock()
	s.games[g.Name()] = g
	if l != nil {
		s.listeners[g.Name()] = l
	}
	s.mu.Unlock()
	return l
}

// ReplaceGame swaps in a new replica for a game we are already in, keeping
// its listener. Used when the server resets a board.
func (s *Session) ReplaceGame(g *game.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.Name()] = g
}

// RemoveGame forgets a game we left or were removed from. Returns its
// listener so the caller can deliver a final event.
func (s *Session) RemoveGame(name string) Listener {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.listeners[name]
	delete(s.games, name)
	delete(s.listeners, name)
	return l
}

// GameNames lists the games this session is currently in.
func (s *Session) GameNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.games))
	for n := range s.games {
		names = append(names, n)
	}
	return names
}

// RememberServerGame records a lobby game and its packed options string, so
// a later join can build the replica with the right rules.
func (s *Session) RememberServerGame(name, packedOpts string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serverGames[name] = packedOpts
}

// ForgetServerGame drops a lobby game the server deleted.
func (s *Session) ForgetServerGame(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.serverGames, name)
}

// ServerGameOptions returns the packed options string remembered for a lobby
// game, "" if unknown.
func (s *Session) ServerGameOptions(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serverGames[name]
}

// LastFaceID returns the face icon we last chose, re-sent when sitting down.
func (s *Session) LastFaceID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFaceID
}

// SetLastFaceID records a face change so the next sit-down reuses it.
func (s *Session) SetLastFaceID(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id > 0 {
		s.lastFaceID = id
	}
}
