package main

import (
	"log"

	"github.com/hexhaven/hexhaven/internal/client"
	"github.com/hexhaven/hexhaven/internal/game"
)

// consoleLobby prints connection-level events.
type consoleLobby struct{}

func (*consoleLobby) ServerVersion(version int, versText, build string) {
	log.Printf("server version %d (%s build %s)", version, versText, build)
}

func (*consoleLobby) Status(statusValue int, text string, isDebugMode bool) {
	log.Printf("server status %d: %s", statusValue, text)
	if isDebugMode {
		log.Println("server is running in debug mode")
	}
}

func (*consoleLobby) ChannelsListed(names []string) { log.Printf("channels: %v", names) }

func (*consoleLobby) BroadcastReceived(text string) { log.Printf("** %s", text) }

func (*consoleLobby) GameAdded(name, opts string, cannotJoin bool) {
	if cannotJoin {
		log.Printf("game %q (requires newer client)", name)
		return
	}
	log.Printf("game %q opts=%q", name, opts)
}

func (*consoleLobby) GameRemoved(name string) { log.Printf("game %q removed", name) }

func (*consoleLobby) GameStatsUpdated(name string, scores []int, robots []bool) {
	log.Printf("game %q final scores %v", name, scores)
}

func (*consoleLobby) ConnectionRejected(text string) { log.Printf("rejected: %s", text) }

func (*consoleLobby) OptionsRequestComplete(isPractice bool) {
	log.Println("game options ready")
}

// consoleGame prints the events of one game.
type consoleGame struct {
	name string
}

func (c *consoleGame) logf(format string, args ...any) {
	log.Printf("[%s] "+format, append([]any{c.name}, args...)...)
}

func pname(p *game.Player) string {
	if p == nil {
		return "(nobody)"
	}
	return p.Name()
}

func (c *consoleGame) PlayerJoined(nickname string) { c.logf("%s joined", nickname) }

func (c *consoleGame) PlayerLeft(nickname string, _ *game.Player) { c.logf("%s left", nickname) }

func (c *consoleGame) PlayerSitdown(seat int, nickname string) {
	c.logf("%s sat down at seat %d", nickname, seat)
}

func (c *consoleGame) PlayerTurnSet(seat int) { c.logf("turn: seat %d", seat) }

func (c *consoleGame) PlayerPiecePlaced(p *game.Player, coordinate, pieceType int) {
	c.logf("%s placed piece type %d at 0x%X", pname(p), pieceType, coordinate)
}

func (c *consoleGame) PlayerPieceMoved(p *game.Player, from, to, pieceType int) {
	c.logf("%s moved piece type %d 0x%X -> 0x%X", pname(p), pieceType, from, to)
}

func (c *consoleGame) PlayerElementUpdated(*game.Player, client.UpdateType) {}

func (c *consoleGame) PlayerResourcesUpdated(p *game.Player) {
	c.logf("%s now holds %d resources", pname(p), p.Resources().Total())
}

func (c *consoleGame) PlayerDevCardUpdated(p *game.Player, addedPlayable bool) {
	c.logf("%s dev cards changed", pname(p))
}

func (c *consoleGame) PlayerFaceChanged(p *game.Player, faceID int) {}

func (c *consoleGame) DiceRolled(p *game.Player, roll int) {
	c.logf("%s rolled %d", pname(p), roll)
}

func (c *consoleGame) DiceRolledResources(seats []int, totals []int) {}

func (c *consoleGame) BoardLayoutUpdated() { c.logf("board layout received") }

func (c *consoleGame) BoardPotentialsUpdated() {}

func (c *consoleGame) BoardReset(_ *game.Game, rejoinSeat, requestingSeat int) {
	c.logf("board reset by seat %d", requestingSeat)
}

func (c *consoleGame) BoardResetVoteRequested(requestor *game.Player) {
	c.logf("%s asks to reset the board", pname(requestor))
}

func (c *consoleGame) BoardResetVoteCast(voter *game.Player, vote bool) {
	c.logf("%s voted %v on reset", pname(voter), vote)
}

func (c *consoleGame) BoardResetVoteRejected() { c.logf("board reset rejected") }

func (c *consoleGame) RobberMoved(newHex int, isPirate bool) {
	if isPirate {
		c.logf("pirate moved to 0x%X", newHex)
		return
	}
	c.logf("robber moved to 0x%X", newHex)
}

func (c *consoleGame) DevCardDeckUpdated() {}

func (c *consoleGame) SeatLockUpdated() {}

func (c *consoleGame) LargestArmyRefresh(old, now *game.Player) {
	c.logf("largest army: %s (was %s)", pname(now), pname(old))
}

func (c *consoleGame) LongestRoadRefresh(old, now *game.Player) {
	c.logf("longest road: %s (was %s)", pname(now), pname(old))
}

func (c *consoleGame) GameStarted() { c.logf("game started") }

func (c *consoleGame) GameStateChanged(state int) { c.logf("state -> %d", state) }

func (c *consoleGame) GameEnded(scores []int) { c.logf("game over, scores %v", scores) }

func (c *consoleGame) GameMembersListed(names []string) { c.logf("members: %v", names) }

func (c *consoleGame) GameDisconnected(errorMessage string) {
	c.logf("disconnected: %s", errorMessage)
}

func (c *consoleGame) MessageReceived(nickname, text string) {
	if nickname == "" {
		c.logf("* %s", text)
		return
	}
	c.logf("<%s> %s", nickname, text)
}

func (c *consoleGame) RequestedDiscard(count int) { c.logf("discard %d resources", count) }

func (c *consoleGame) RequestedResourceSelect(count int) { c.logf("pick %d resources", count) }

func (c *consoleGame) RequestedChoosePlayer(choices []*game.Player, canChooseNone bool) {
	c.logf("choose a player to rob (%d choices)", len(choices))
}

func (c *consoleGame) RequestedTrade(offerer *game.Player) {
	c.logf("%s offers a trade", pname(offerer))
}

func (c *consoleGame) RequestedTradeClear(offerer *game.Player) {}

func (c *consoleGame) RequestedTradeRejection(rejecter *game.Player) {
	c.logf("%s rejects the trade", pname(rejecter))
}

func (c *consoleGame) RequestedTradeReset(*game.Player) {}

func (c *consoleGame) RequestedSpecialBuild(p *game.Player) {
	c.logf("%s asks to special build", pname(p))
}

func (c *consoleGame) RequestedDiceRoll() { c.logf("your turn to roll") }
