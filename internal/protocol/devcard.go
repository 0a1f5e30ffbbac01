package protocol

// Actions of a DevCardAction message.
const (
	DevCardDraw = iota + 300
	DevCardPlay
	DevCardAddOld
	DevCardAddNew
)

// DevCardCount sets the number of cards left in the development deck.
type DevCardCount struct {
	Game  string
	Count int
}

func (*DevCardCount) Type() MessageType  { return MsgDevCardCount }
func (m *DevCardCount) GameName() string { return m.Game }

func parseDevCardCount(r *reader) Message {
	m := &DevCardCount{Game: r.str(), Count: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// DevCardAction adds a card to or removes a card from a player's inventory.
// CardType uses the server's numbering, which changed at protocol 2000; the
// handler translates legacy codes before touching game state.
type DevCardAction struct {
	Game         string
	PlayerNumber int
	Action       int
	CardType     int
}

func (*DevCardAction) Type() MessageType  { return MsgDevCardAction }
func (m *DevCardAction) GameName() string { return m.Game }

func parseDevCardAction(r *reader) Message {
	m := &DevCardAction{Game: r.str(), PlayerNumber: r.int(), Action: r.int(), CardType: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// SetPlayedDevCard sets whether a player has already played a development
// card this turn.
type SetPlayedDevCard struct {
	Game         string
	PlayerNumber int
	Played       bool
}

func (*SetPlayedDevCard) Type() MessageType  { return MsgSetPlayedDevCard }
func (m *SetPlayedDevCard) GameName() string { return m.Game }

func parseSetPlayedDevCard(r *reader) Message {
	m := &SetPlayedDevCard{Game: r.str(), PlayerNumber: r.int(), Played: r.bool()}
	if r.failed() {
		return nil
	}
	return m
}
