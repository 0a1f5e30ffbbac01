package protocol

// Actions of a PlayerElement update.
const (
	ActionSet = iota + 100
	ActionGain
	ActionLose
)

// Element types of a PlayerElement update. The first six match the resource
// type constants in the game package.
const (
	ElemClay = iota + 1
	ElemOre
	ElemSheep
	ElemWheat
	ElemWood
	ElemUnknownResource

	ElemRoads
	ElemSettlements
	ElemCities
	ElemShips
	ElemNumKnights
	ElemAskSpecialBuild
	ElemNumPickGoldHexResources
	ElemScenarioSVP
	ElemScenarioClothCount
	ElemScenarioWarshipCount
)

// PlayerElement is a single counter delta for one player. PlayerNumber -1
// targets game-level state for the few element types that allow it.
type PlayerElement struct {
	Game         string
	PlayerNumber int
	Action       int
	ElementType  int
	Amount       int
}

func (*PlayerElement) Type() MessageType  { return MsgPlayerElement }
func (m *PlayerElement) GameName() string { return m.Game }

func parsePlayerElement(r *reader) Message {
	m := &PlayerElement{Game: r.str(), PlayerNumber: r.int(), Action: r.int(), ElementType: r.int(), Amount: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// ElementAmount is one (type, amount) pair of a bulk PlayerElements update.
type ElementAmount struct {
	ElementType int
	Amount      int
}

// PlayerElements applies one action to several element types at once, e.g.
// paying a building cost.
type PlayerElements struct {
	Game         string
	PlayerNumber int
	Action       int
	Elements     []ElementAmount
}

func (*PlayerElements) Type() MessageType  { return MsgPlayerElements }
func (m *PlayerElements) GameName() string { return m.Game }

func parsePlayerElements(r *reader) Message {
	m := &PlayerElements{Game: r.str(), PlayerNumber: r.int(), Action: r.int()}
	for r.remaining() >= 2 {
		m.Elements = append(m.Elements, ElementAmount{ElementType: r.int(), Amount: r.int()})
	}
	if r.failed() || r.remaining() != 0 || len(m.Elements) == 0 {
		return nil
	}
	return m
}

// ResourceCount reports a player's total hand size, used to reconcile hands
// the client cannot see.
type ResourceCount struct {
	Game         string
	PlayerNumber int
	Count        int
}

func (*ResourceCount) Type() MessageType  { return MsgResourceCount }
func (m *ResourceCount) GameName() string { return m.Game }

func parseResourceCount(r *reader) Message {
	m := &ResourceCount{Game: r.str(), PlayerNumber: r.int(), Count: r.int()}
	if r.failed() {
		return nil
	}
	return m
}
