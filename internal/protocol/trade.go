package protocol

// MakeOffer announces a player's trade offer. Give and Get are per-type
// amounts (clay, ore, sheep, wheat, wood); To flags which seats it targets.
type MakeOffer struct {
	Game string
	From int
	To   []bool
	Give []int
	Get  []int
}

func (*MakeOffer) Type() MessageType  { return MsgMakeOffer }
func (m *MakeOffer) GameName() string { return m.Game }

func parseMakeOffer(r *reader) Message {
	m := &MakeOffer{Game: r.str(), From: r.int(), To: r.bools(), Give: r.ints(), Get: r.ints()}
	if r.failed() || len(m.Give) != 5 || len(m.Get) != 5 {
		return nil
	}
	return m
}

// ClearOffer retracts a player's trade offer; PlayerNumber -1 clears all.
type ClearOffer struct {
	Game         string
	PlayerNumber int
}

func (*ClearOffer) Type() MessageType  { return MsgClearOffer }
func (m *ClearOffer) GameName() string { return m.Game }

func parseClearOffer(r *reader) Message {
	m := &ClearOffer{Game: r.str(), PlayerNumber: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// RejectOffer announces that a player rejected the current offers.
type RejectOffer struct {
	Game         string
	PlayerNumber int
}

func (*RejectOffer) Type() MessageType  { return MsgRejectOffer }
func (m *RejectOffer) GameName() string { return m.Game }

func parseRejectOffer(r *reader) Message {
	m := &RejectOffer{Game: r.str(), PlayerNumber: r.int()}
	if r.failed() {
		return nil
	}
	return m
}

// ClearTradeMsg clears the trade response text shown for a seat;
// PlayerNumber -1 clears all seats.
type ClearTradeMsg struct {
	Game         string
	PlayerNumber int
}

func (*ClearTradeMsg) Type() MessageType  { return MsgClearTradeMsg }
func (m *ClearTradeMsg) GameName() string { return m.Game }

func parseClearTradeMsg(r *reader) Message {
	m := &ClearTradeMsg{Game: r.str(), PlayerNumber: r.int()}
	if r.failed() {
		return nil
	}
	return m
}
