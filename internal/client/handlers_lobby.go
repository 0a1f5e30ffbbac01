package client

import (
	"fmt"
	"strings"

	"github.com/hexhaven/hexhaven/internal/capability"
	"github.com/hexhaven/hexhaven/internal/game"
	"github.com/hexhaven/hexhaven/internal/logger"
	"github.com/hexhaven/hexhaven/internal/protocol"
)

// handleVersion records the server's version report and makes the opening
// move of game-option negotiation, which depends on the version gap:
// a same-version server needs no negotiation, a newer server is asked to
// describe every option we have never heard of, and for an older server we
// drop the options it cannot understand.
func (d *Dispatcher) handleVersion(msg protocol.Message, isPractice bool) {
	m := msg.(*protocol.Version)
	if !isPractice {
		d.session.SetRemoteVersion(m.Number, m.Build, m.Features)
	}
	if lobby := d.session.Lobby; lobby != nil {
		lobby.ServerVersion(m.Number, m.VersText, m.Build)
	}

	caps := d.session.Caps(isPractice)
	info := d.session.Info(isPractice)
	switch {
	case !caps.SupportsGameOptions():
		info.DisableOptions()
		d.optionsComplete(isPractice)
	case m.Number == capability.ClientVersion:
		info.NoMoreOptions(false)
	case m.Number > capability.ClientVersion:
		req := &protocol.GameOptionGetInfos{WantsI18n: caps.SupportsI18N()}
		d.put(req.Command(), isPractice)
		d.watchdog.arm(isPractice)
	default:
		// Ask the older server what it knows about options added or changed
		// since its version. Keys its wire format cannot carry are dropped
		// instead of asked about.
		tooNew := game.OptionsNewerThan(m.Number)
		if !caps.SupportsLongOptionNames() {
			kept := tooNew[:0]
			for _, o := range tooNew {
				if capability.IsLongOptionName(o.Key) {
					info.RemoveOption(o.Key)
				} else {
					kept = append(kept, o)
				}
			}
			tooNew = kept
		}
		if len(tooNew) == 0 {
			info.NoMoreOptions(false)
			return
		}
		keys := make([]string, len(tooNew))
		for i, o := range tooNew {
			keys[i] = o.Key
		}
		req := &protocol.GameOptionGetInfos{Keys: keys, WantsI18n: caps.SupportsI18N()}
		d.put(req.Command(), isPractice)
		d.watchdog.arm(isPractice)
	}
}

func (d *Dispatcher) handleStatus(msg protocol.Message, isPractice bool) {
	m := msg.(*protocol.Status)
	if m.Value != protocol.StatusOK && m.Value != protocol.StatusOKDebugMode {
		logger.LogInfo("server status %d: %s", m.Value, m.Text)
	}
	text := m.Text
	if m.Value == protocol.StatusOptValueTooNew {
		text = d.describeRejectedOptions(m.Text, isPractice)
	}
	if lobby := d.session.Lobby; lobby != nil {
		lobby.Status(m.Value, text, m.Value == protocol.StatusOKDebugMode)
	}
}

// describeRejectedOptions expands a value-too-new status into a message
// naming the options the server refused. The text's sub-fields are
// "errMsg,gameName,key,key..."; option keys are replaced by their catalog
// descriptions when known. Text that does not split into those sub-fields
// is shown raw.
func (d *Dispatcher) describeRejectedOptions(text string, isPractice bool) string {
	fields := strings.Split(text, protocol.Sep2)
	if len(fields) < 3 {
		return text
	}
	errMsg, gameName, keys := fields[0], fields[1], fields[2:]

	info := d.session.Info(isPractice)
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = key
		if opt, ok := info.Option(key); ok && opt.Desc != "" {
			names[i] = opt.Desc
		}
	}
	return fmt.Sprintf("Cannot create game %s: %s: %s", gameName, errMsg, strings.Join(names, "; "))
}

func (d *Dispatcher) handleRejectConnection(msg protocol.Message, _ bool) {
	m := msg.(*protocol.RejectConnection)
	logger.LogError("connection rejected: %s", m.Text)
	if lobby := d.session.Lobby; lobby != nil {
		lobby.ConnectionRejected(m.Text)
	}
}

// handleServerPing echoes the ping so the server keeps the connection. A
// sleep time of -1 means another client took over this nickname and every
// game on this connection is dead.
func (d *Dispatcher) handleServerPing(msg protocol.Message, isPractice bool) {
	m := msg.(*protocol.ServerPing)
	if m.SleepTime == -1 {
		for _, name := range d.session.GameNames() {
			if l := d.session.RemoveGame(name); l != nil {
				l.GameDisconnected("Connection replaced by another client with this nickname")
			}
		}
		return
	}
	d.put(m.Command(), isPractice)
}

func (d *Dispatcher) handleChannels(msg protocol.Message, _ bool) {
	m := msg.(*protocol.Channels)
	if lobby := d.session.Lobby; lobby != nil {
		lobby.ChannelsListed(m.Channels)
	}
}

func (d *Dispatcher) handleBroadcastTextMsg(msg protocol.Message, _ bool) {
	m := msg.(*protocol.BroadcastTextMsg)
	if lobby := d.session.Lobby; lobby != nil {
		lobby.BroadcastReceived(m.Text)
	}
}

// addLobbyGame records one game from a lobby listing, stripping the
// unjoinable marker the server prepends for games our version cannot enter.
func (d *Dispatcher) addLobbyGame(name, opts string) {
	cannotJoin := strings.HasPrefix(name, protocol.UnjoinableGamePrefix)
	if cannotJoin {
		name = strings.TrimPrefix(name, protocol.UnjoinableGamePrefix)
	}
	d.session.RememberServerGame(name, opts)
	if lobby := d.session.Lobby; lobby != nil {
		lobby.GameAdded(name, opts, cannotJoin)
	}
}

func (d *Dispatcher) handleGames(msg protocol.Message, _ bool) {
	m := msg.(*protocol.Games)
	for _, name := range m.Games {
		d.addLobbyGame(name, "")
	}
}

func (d *Dispatcher) handleGamesWithOptions(msg protocol.Message, _ bool) {
	m := msg.(*protocol.GamesWithOptions)
	for _, gi := range m.Games {
		d.addLobbyGame(gi.Name, gi.Opts)
	}
}

func (d *Dispatcher) handleNewGame(msg protocol.Message, _ bool) {
	m := msg.(*protocol.NewGame)
	d.addLobbyGame(m.Game, "")
}

func (d *Dispatcher) handleNewGameWithOptions(msg protocol.Message, _ bool) {
	m := msg.(*protocol.NewGameWithOptions)
	d.addLobbyGame(m.Game, m.Opts)
}

func (d *Dispatcher) handleDeleteGame(msg protocol.Message, _ bool) {
	m := msg.(*protocol.DeleteGame)
	d.session.ForgetServerGame(m.Game)
	if l := d.session.RemoveGame(m.Game); l != nil {
		l.GameDisconnected("Game was deleted by the server")
	}
	if lobby := d.session.Lobby; lobby != nil {
		lobby.GameRemoved(m.Game)
	}
}

// handleJoinGameAuth builds the local replica for a game the server just
// admitted us to; the full state arrives in the messages that follow.
func (d *Dispatcher) handleJoinGameAuth(msg protocol.Message, isPractice bool) {
	m := msg.(*protocol.JoinGameAuth)
	if d.session.Game(m.Game) != nil {
		return
	}
	opts := game.ParseOptionsToMap(d.session.ServerGameOptions(m.Game))
	g := game.New(m.Game, opts)
	g.SetPractice(isPractice)
	d.session.AddGame(g)
}

func (d *Dispatcher) handleJoinGame(msg protocol.Message, _ bool) {
	m := msg.(*protocol.JoinGame)
	_, l := d.gameAndListener(m.Game)
	if l == nil {
		return
	}
	if m.Nickname != d.session.Nickname {
		l.PlayerJoined(m.Nickname)
	}
}

func (d *Dispatcher) handleLeaveGame(msg protocol.Message, _ bool) {
	m := msg.(*protocol.LeaveGame)
	g, l := d.gameAndListener(m.Game)
	if g == nil {
		return
	}
	p := g.PlayerByName(m.Nickname)
	if p != nil {
		g.RemovePlayer(m.Nickname)
	}
	if l != nil {
		l.PlayerLeft(m.Nickname, p)
	}
}

func (d *Dispatcher) handleGameMembers(msg protocol.Message, _ bool) {
	m := msg.(*protocol.GameMembers)
	if _, l := d.gameAndListener(m.Game); l != nil {
		l.GameMembersListed(m.Members)
	}
}

func (d *Dispatcher) handleGameStats(msg protocol.Message, _ bool) {
	m := msg.(*protocol.GameStats)
	if lobby := d.session.Lobby; lobby != nil {
		lobby.GameStatsUpdated(m.Game, m.Scores, m.Robots)
	}
	g, l := d.gameAndListener(m.Game)
	if g == nil || l == nil {
		return
	}
	if g.State() >= game.StateOver {
		l.GameEnded(m.Scores)
	}
}

func (d *Dispatcher) handleGameTextMsg(msg protocol.Message, _ bool) {
	m := msg.(*protocol.GameTextMsg)
	if _, l := d.gameAndListener(m.Game); l != nil {
		nickname := m.Nickname
		if nickname == protocol.ServerNickname {
			nickname = ""
		}
		l.MessageReceived(nickname, m.Text)
	}
}

func (d *Dispatcher) handleGameServerText(msg protocol.Message, _ bool) {
	m := msg.(*protocol.GameServerText)
	if _, l := d.gameAndListener(m.Game); l != nil {
		l.MessageReceived("", m.Text)
	}
}
