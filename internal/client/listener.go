package client

import "github.com/hexhaven/hexhaven/internal/game"

// UpdateType names which player counter a PlayerElementUpdated event refers
// to, so observers can refresh one display instead of everything.
type UpdateType int

const (
	UpdateClay UpdateType = iota
	UpdateOre
	UpdateSheep
	UpdateWheat
	UpdateWood
	UpdateUnknownResource
	UpdateRoad
	UpdateSettlement
	UpdateCity
	UpdateShip
	UpdateKnight
	UpdateSpecialVictoryPoints
	UpdateCloth
	UpdateWarship
	UpdateGoldPicks
)

// Listener is the observer for one game: every method is a domain event
// carrying already-resolved game objects, never raw wire messages. The UI
// layer implements it; handlers must tolerate a nil Listener for games being
// observed without one.
type Listener interface {
	PlayerJoined(nickname string)
	// PlayerLeft carries the seated player's record, nil if the member was
	// only observing.
	PlayerLeft(nickname string, player *game.Player)
	PlayerSitdown(seat int, nickname string)
	PlayerTurnSet(seat int)
	PlayerPiecePlaced(player *game.Player, coordinate, pieceType int)
	PlayerPieceMoved(player *game.Player, from, to, pieceType int)
	PlayerElementUpdated(player *game.Player, utype UpdateType)
	// PlayerResourcesUpdated fires when a player's whole hand changed at
	// once, e.g. a reconciliation against the server's total.
	PlayerResourcesUpdated(player *game.Player)
	PlayerDevCardUpdated(player *game.Player, addedPlayable bool)
	PlayerFaceChanged(player *game.Player, faceID int)

	DiceRolled(player *game.Player, roll int)
	DiceRolledResources(seats []int, totals []int)

	BoardLayoutUpdated()
	BoardPotentialsUpdated()
	BoardReset(newGame *game.Game, rejoinSeat, requestingSeat int)
	BoardResetVoteRequested(requestor *game.Player)
	BoardResetVoteCast(voter *game.Player, vote bool)
	BoardResetVoteRejected()
	RobberMoved(newHex int, isPirate bool)

	DevCardDeckUpdated()
	SeatLockUpdated()

	// LargestArmyRefresh and LongestRoadRefresh fire only when the holder
	// actually changed; either side may be nil.
	LargestArmyRefresh(old, now *game.Player)
	LongestRoadRefresh(old, now *game.Player)

	GameStarted()
	GameStateChanged(state int)
	GameEnded(scores []int)
	GameMembersListed(names []string)
	GameDisconnected(errorMessage string)

	// MessageReceived delivers in-game text; nickname is "" for text from
	// the server itself.
	MessageReceived(nickname, text string)

	RequestedDiscard(count int)
	RequestedResourceSelect(count int)
	RequestedChoosePlayer(choices []*game.Player, canChooseNone bool)
	RequestedTrade(offerer *game.Player)
	// RequestedTradeClear reports a retracted offer; nil means all seats.
	RequestedTradeClear(offerer *game.Player)
	RequestedTradeRejection(rejecter *game.Player)
	// RequestedTradeReset clears trade response text; nil means all seats.
	RequestedTradeReset(player *game.Player)
	RequestedSpecialBuild(player *game.Player)
	RequestedDiceRoll()
}

// LobbyListener observes connection-scoped events that are not tied to one
// game. It too may be nil.
type LobbyListener interface {
	ServerVersion(version int, versText, build string)
	// Status delivers the server's auth/game-creation status text;
	// isDebugMode reports a server running with debug commands enabled.
	Status(statusValue int, text string, isDebugMode bool)
	ChannelsListed(names []string)
	BroadcastReceived(text string)
	GameAdded(name, opts string, cannotJoin bool)
	GameRemoved(name string)
	GameStatsUpdated(name string, scores []int, robots []bool)
	ConnectionRejected(text string)
	// OptionsRequestComplete fires when the game-option negotiation for a
	// connection finishes, including by watchdog timeout.
	OptionsRequestComplete(isPractice bool)
}
