package game

// Board encoding formats.
const (
	// BoardEncoding4Player is the original fixed-size 4-player encoding;
	// the only format a legacy BoardLayout message can carry.
	BoardEncoding4Player = 1
	// BoardEncoding6Player extends the original with two more seats.
	BoardEncoding6Player = 2
	// BoardEncodingLarge is the self-describing large-board encoding made of
	// named layout parts.
	BoardEncodingLarge = 3
)

// Board is the client's mirror of the game board. Layouts arrive whole from
// the server; the client never derives them.
type Board struct {
	encoding int

	hexLayout    []int
	numberLayout []int
	portLayout   []int
	landHexes    []int
	robberHex    int
	prevRobber   int
	pirateHex    int
	prevPirate   int

	// Large-board extras, keyed by layout part name. Holds parts this
	// client version does not interpret, so they survive a round-trip.
	addedParts map[string][]int

	playerExcludedAreas []int
	robberExcludedAreas []int
	villagesAndCloth    []int
	cloth               int

	// Legal settlement nodes, by seat. Seat -1 holds the set shared by all
	// players.
	potentials map[int][]int
}

// NewBoard returns an empty board in the original 4-player encoding.
func NewBoard() *Board {
	return &Board{encoding: BoardEncoding4Player, robberHex: -1, pirateHex: -1}
}

// Encoding returns the board's encoding format.
func (b *Board) Encoding() int { return b.encoding }

// SetEncoding sets the board's encoding format.
func (b *Board) SetEncoding(enc int) { b.encoding = enc }

// HexLayout returns the hex terrain layout.
func (b *Board) HexLayout() []int { return b.hexLayout }

// SetHexLayout replaces the hex terrain layout.
func (b *Board) SetHexLayout(hexes []int) { b.hexLayout = hexes }

// NumberLayout returns the dice-number layout.
func (b *Board) NumberLayout() []int { return b.numberLayout }

// SetNumberLayout replaces the dice-number layout.
func (b *Board) SetNumberLayout(numbers []int) { b.numberLayout = numbers }

// PortLayout returns the port layout, nil when the encoding implies it.
func (b *Board) PortLayout() []int { return b.portLayout }

// SetPortLayout replaces the port layout.
func (b *Board) SetPortLayout(ports []int) { b.portLayout = ports }

// LandHexLayout returns the large-board land hex list.
func (b *Board) LandHexLayout() []int { return b.landHexes }

// SetLandHexLayout replaces the large-board land hex list.
func (b *Board) SetLandHexLayout(hexes []int) { b.landHexes = hexes }

// RobberHex returns the robber's current hex, -1 before placement.
func (b *Board) RobberHex() int { return b.robberHex }

// PrevRobberHex returns where the robber was before its last move.
func (b *Board) PrevRobberHex() int { return b.prevRobber }

// SetRobberHex places the robber. rememberPrevious keeps the old hex
// reachable for observers that animate the move.
func (b *Board) SetRobberHex(hex int, rememberPrevious bool) {
	if rememberPrevious {
		b.prevRobber = b.robberHex
	} else {
		b.prevRobber = -1
	}
	b.robberHex = hex
}

// PirateHex returns the pirate ship's current hex, -1 when not in play.
func (b *Board) PirateHex() int { return b.pirateHex }

// PrevPirateHex returns where the pirate was before its last move.
func (b *Board) PrevPirateHex() int { return b.prevPirate }

// SetPirateHex places the pirate ship.
func (b *Board) SetPirateHex(hex int, rememberPrevious bool) {
	if rememberPrevious {
		b.prevPirate = b.pirateHex
	} else {
		b.prevPirate = -1
	}
	b.pirateHex = hex
}

// AddedPart returns the named extra layout part, nil if absent.
func (b *Board) AddedPart(key string) []int {
	return b.addedParts[key]
}

// SetAddedParts stores extra layout parts from a self-describing layout.
func (b *Board) SetAddedParts(parts map[string][]int) {
	b.addedParts = parts
}

// SetPlayerExcludedAreas marks land areas players may not build in.
func (b *Board) SetPlayerExcludedAreas(areas []int) { b.playerExcludedAreas = areas }

// PlayerExcludedAreas returns land areas players may not build in.
func (b *Board) PlayerExcludedAreas() []int { return b.playerExcludedAreas }

// SetRobberExcludedAreas marks land areas the robber may not enter.
func (b *Board) SetRobberExcludedAreas(areas []int) { b.robberExcludedAreas = areas }

// RobberExcludedAreas returns land areas the robber may not enter.
func (b *Board) RobberExcludedAreas() []int { return b.robberExcludedAreas }

// SetVillageAndClothLayout stores the cloth-trade scenario layout.
func (b *Board) SetVillageAndClothLayout(layout []int) { b.villagesAndCloth = layout }

// VillageAndClothLayout returns the cloth-trade scenario layout.
func (b *Board) VillageAndClothLayout() []int { return b.villagesAndCloth }

// SetPotentialSettlements records where a seat may legally build a
// settlement. Seat -1 applies the set to all players.
func (b *Board) SetPotentialSettlements(seat int, nodes []int) {
	if b.potentials == nil {
		b.potentials = map[int][]int{}
	}
	b.potentials[seat] = nodes
}

// PotentialSettlements returns the legal settlement nodes for a seat,
// falling back to the all-players set.
func (b *Board) PotentialSettlements(seat int) []int {
	if nodes, ok := b.potentials[seat]; ok {
		return nodes
	}
	return b.potentials[-1]
}

// Cloth returns the undistributed cloth remaining on the board.
func (b *Board) Cloth() int { return b.cloth }

// SetCloth sets the undistributed cloth remaining on the board.
func (b *Board) SetCloth(n int) { b.cloth = n }
