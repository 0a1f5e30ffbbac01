package protocol

// StartGame announces that the game is leaving the NEW state.
type StartGame struct {
	Game string
}

func (*StartGame) Type() MessageType  { return MsgStartGame }
func (m *StartGame) GameName() string { return m.Game }

func parseStartGame(r *reader) Message {
	m := &StartGame{Game: r.str()}
	if r.failed() {
		return nil
	}
	return m
}

// GameState sets the game's current state.
type GameState struct {
	Game  string
	State int
}

func (*GameState) Type() MessageType  { return MsgGameState }
func (m *GameState) GameName() string { return m.Game }

func parseGameState(r *reader) Message {
	m := &GameState{Game: r.str(), State: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// SetTurn sets the current player without the start-of-turn bookkeeping done
// for Turn.
type SetTurn struct {
	Game         string
	PlayerNumber int
}

func (*SetTurn) Type() MessageType  { return MsgSetTurn }
func (m *SetTurn) GameName() string { return m.Game }

func parseSetTurn(r *reader) Message {
	m := &SetTurn{Game: r.str(), PlayerNumber: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// FirstPlayer records which seat goes first this game.
type FirstPlayer struct {
	Game         string
	PlayerNumber int
}

func (*FirstPlayer) Type() MessageType  { return MsgFirstPlayer }
func (m *FirstPlayer) GameName() string { return m.Game }

func parseFirstPlayer(r *reader) Message {
	m := &FirstPlayer{Game: r.str(), PlayerNumber: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// Turn begins a new player's turn. Servers at protocol 2000 and newer also
// carry the game state the turn begins in; State is 0 when absent.
type Turn struct {
	Game         string
	PlayerNumber int
	State        int
}

func (*Turn) Type() MessageType  { return MsgTurn }
func (m *Turn) GameName() string { return m.Game }

func parseTurn(r *reader) Message {
	m := &Turn{Game: r.str(), PlayerNumber: r.int()}
	if r.remaining() > 0 {
		m.State = r.int()
	}
	if r.failed() {
		return nil
	}
	return m
}

// RollDicePrompt tells the named seat to roll or play a card.
type RollDicePrompt struct {
	Game         string
	PlayerNumber int
}

func (*RollDicePrompt) Type() MessageType  { return MsgRollDicePrompt }
func (m *RollDicePrompt) GameName() string { return m.Game }

func parseRollDicePrompt(r *reader) Message {
	m := &RollDicePrompt{Game: r.str(), PlayerNumber: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// DiceResult reports the dice total for the current player's roll.
type DiceResult struct {
	Game   string
	Result int
}

func (*DiceResult) Type() MessageType  { return MsgDiceResult }
func (m *DiceResult) GameName() string { return m.Game }

func parseDiceResult(r *reader) Message {
	m := &DiceResult{Game: r.str(), Result: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// PlayerGain is one player's resource gains from a dice roll: the player's
// new total plus per-type amounts gained (clay, ore, sheep, wheat, wood).
type PlayerGain struct {
	PlayerNumber int
	Total        int
	Amounts      []int
}

// DiceResultResources itemizes what each player gained from the roll, so the
// client needs no per-type PlayerElement deltas for its own bookkeeping.
type DiceResultResources struct {
	Game  string
	Gains []PlayerGain
}

func (*DiceResultResources) Type() MessageType  { return MsgDiceResultResources }
func (m *DiceResultResources) GameName() string { return m.Game }

func parseDiceResultResources(r *reader) Message {
	m := &DiceResultResources{Game: r.str()}
	for r.remaining() >= 3 {
		m.Gains = append(m.Gains, PlayerGain{PlayerNumber: r.int(), Total: r.int(), Amounts: r.ints()})
	}
	if r.failed() || r.remaining() != 0 || len(m.Gains) == 0 {
		return nil
	}
	return m
}

// DiscardRequest tells this client's player to discard half their hand.
type DiscardRequest struct {
	Game        string
	NumDiscards int
}

func (*DiscardRequest) Type() MessageType  { return MsgDiscardRequest }
func (m *DiscardRequest) GameName() string { return m.Game }

func parseDiscardRequest(r *reader) Message {
	m := &DiscardRequest{Game: r.str(), NumDiscards: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// PickResourcesRequest asks this client's player to pick free resources
// (gold hex or discovery).
type PickResourcesRequest struct {
	Game  string
	Count int
}

func (*PickResourcesRequest) Type() MessageType  { return MsgPickResourcesRequest }
func (m *PickResourcesRequest) GameName() string { return m.Game }

func parsePickResourcesRequest(r *reader) Message {
	m := &PickResourcesRequest{Game: r.str(), Count: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// ChoosePlayerRequest asks this client's player to choose a robbery victim.
// Choices is indexed by seat; a trailing extra entry set true means choosing
// no one is allowed (scenario rule).
type ChoosePlayerRequest struct {
	Game    string
	Choices []bool
}

func (*ChoosePlayerRequest) Type() MessageType  { return MsgChoosePlayerRequest }
func (m *ChoosePlayerRequest) GameName() string { return m.Game }

func parseChoosePlayerRequest(r *reader) Message {
	m := &ChoosePlayerRequest{Game: r.str(), Choices: r.bools()}
	if r.failed() || m.Choices == nil {
		return nil
	}
	return m
}

// ChangeFace sets a player's face icon.
type ChangeFace struct {
	Game         string
	PlayerNumber int
	FaceID       int
}

func (*ChangeFace) Type() MessageType  { return MsgChangeFace }
func (m *ChangeFace) GameName() string { return m.Game }

func parseChangeFace(r *reader) Message {
	m := &ChangeFace{Game: r.str(), PlayerNumber: r.int(), FaceID: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// Command encodes an outbound face change request.
func (m *ChangeFace) Command() string {
	return command(MsgChangeFace, m.Game, itoa(m.PlayerNumber), itoa(m.FaceID))
}

// LongestRoad sets which player holds longest road; -1 means no one.
type LongestRoad struct {
	Game         string
	PlayerNumber int
}

func (*LongestRoad) Type() MessageType  { return MsgLongestRoad }
func (m *LongestRoad) GameName() string { return m.Game }

func parseLongestRoad(r *reader) Message {
	m := &LongestRoad{Game: r.str(), PlayerNumber: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// LargestArmy sets which player holds largest army; -1 means no one.
type LargestArmy struct {
	Game         string
	PlayerNumber int
}

func (*LargestArmy) Type() MessageType  { return MsgLargestArmy }
func (m *LargestArmy) GameName() string { return m.Game }

func parseLargestArmy(r *reader) Message {
	m := &LargestArmy{Game: r.str(), PlayerNumber: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// SetSeatLock locks or unlocks a seat against robots being replaced.
type SetSeatLock struct {
	Game         string
	PlayerNumber int
	Locked       bool
}

func (*SetSeatLock) Type() MessageType  { return MsgSetSeatLock }
func (m *SetSeatLock) GameName() string { return m.Game }

func parseSetSeatLock(r *reader) Message {
	m := &SetSeatLock{Game: r.str(), PlayerNumber: r.int(), Locked: r.bool()}
	if r.failed() {
		return nil
	}
	return m
}
