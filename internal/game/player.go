package game

// Playing piece types.
const (
	PieceRoad = iota
	PieceSettlement
	PieceCity
	PieceShip

	PieceTypeCount
)

// Starting piece counts per player.
var startingPieces = [PieceTypeCount]int{
	PieceRoad:       15,
	PieceSettlement: 5,
	PieceCity:       4,
	PieceShip:       15,
}

// Player is one seat's record inside a Game. It is plain data plus small
// named mutators; only message handlers mutate it.
type Player struct {
	seat int
	game *Game

	name    string
	isRobot bool
	faceID  int

	pieces    [PieceTypeCount]int
	resources *ResourceSet
	inventory *Inventory

	knights       int
	specialVP     int
	cloth         int
	warships      int
	goldHexPicks  int
	askedSpecial  bool
	playedDevCard bool

	currentOffer *TradeOffer
}

func newPlayer(seat int, game *Game) *Player {
	return &Player{
		seat:      seat,
		game:      game,
		pieces:    startingPieces,
		resources: &ResourceSet{},
		inventory: &Inventory{},
	}
}

// Seat returns this player's seat index.
func (p *Player) Seat() int { return p.seat }

// Name returns this player's nickname, "" for a vacant seat.
func (p *Player) Name() string { return p.name }

// SetName sets this player's nickname.
func (p *Player) SetName(name string) { p.name = name }

// IsRobot reports whether this seat is a robot.
func (p *Player) IsRobot() bool { return p.isRobot }

// SetRobot sets the robot flag.
func (p *Player) SetRobot(isRobot bool) { p.isRobot = isRobot }

// FaceID returns this player's face icon.
func (p *Player) FaceID() int { return p.faceID }

// SetFaceID sets this player's face icon.
func (p *Player) SetFaceID(id int) { p.faceID = id }

// NumPieces returns how many pieces of one type the player has left to place.
func (p *Player) NumPieces(ptype int) int { return p.pieces[ptype] }

// SetNumPieces sets the remaining count of one piece type.
func (p *Player) SetNumPieces(ptype, amount int) { p.pieces[ptype] = amount }

// Resources returns the player's hand.
func (p *Player) Resources() *ResourceSet { return p.resources }

// Inventory returns the player's development cards.
func (p *Player) Inventory() *Inventory { return p.inventory }

// NumKnights returns how many soldier cards the player has played.
func (p *Player) NumKnights() int { return p.knights }

// SetNumKnights sets the played-soldier count.
func (p *Player) SetNumKnights(n int) { p.knights = n }

// SpecialVP returns the player's scenario special victory points.
func (p *Player) SpecialVP() int { return p.specialVP }

// SetSpecialVP sets the player's scenario special victory points.
func (p *Player) SetSpecialVP(n int) { p.specialVP = n }

// Cloth returns the player's cloth count (cloth-trade scenario).
func (p *Player) Cloth() int { return p.cloth }

// SetCloth sets the player's cloth count.
func (p *Player) SetCloth(n int) { p.cloth = n }

// NumWarships returns the player's warship count (pirate scenario).
func (p *Player) NumWarships() int { return p.warships }

// SetNumWarships sets the player's warship count.
func (p *Player) SetNumWarships(n int) { p.warships = n }

// NeedToPickGoldHexResources returns how many free resources the player must
// still pick.
func (p *Player) NeedToPickGoldHexResources() int { return p.goldHexPicks }

// SetNeedToPickGoldHexResources sets the pending free-resource pick count.
func (p *Player) SetNeedToPickGoldHexResources(n int) { p.goldHexPicks = n }

// AskedSpecialBuild reports whether the player asked to special-build
// (6-player rule).
func (p *Player) AskedSpecialBuild() bool { return p.askedSpecial }

// SetAskedSpecialBuild sets the special-build request flag.
func (p *Player) SetAskedSpecialBuild(asked bool) { p.askedSpecial = asked }

// HasPlayedDevCard reports whether the player already played a development
// card this turn.
func (p *Player) HasPlayedDevCard() bool { return p.playedDevCard }

// SetPlayedDevCard sets the played-a-card-this-turn flag.
func (p *Player) SetPlayedDevCard(played bool) { p.playedDevCard = played }

// CurrentOffer returns the player's open trade offer, nil when none.
func (p *Player) CurrentOffer() *TradeOffer { return p.currentOffer }

// SetCurrentOffer replaces the player's open trade offer; nil clears it.
func (p *Player) SetCurrentOffer(offer *TradeOffer) { p.currentOffer = offer }
