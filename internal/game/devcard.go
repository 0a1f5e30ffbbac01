package game

// Development card types, using the numbering of protocol 2000 and newer.
const (
	DevCardUnknown = iota
	DevCardRoads
	DevCardDiscovery
	DevCardMonopoly
	DevCardChapel
	DevCardLibrary
	DevCardUniversity
	DevCardTemple
	DevCardTowers
	DevCardKnight

	DevCardTypeCount
)

// Card codes used by servers older than protocol 2000, before the types were
// renumbered. Only these two differ from the modern numbering.
const (
	LegacyDevCardKnight  = 0
	LegacyDevCardUnknown = 9
)

// Card ages within an inventory. New cards were bought this turn and cannot
// be played yet.
const (
	CardNew = iota
	CardOld
)

// Inventory is one player's development cards, counted per type and age.
type Inventory struct {
	counts [2][DevCardTypeCount]int
}

// Amount returns the count of one card type at one age.
func (inv *Inventory) Amount(age, ctype int) int {
	return inv.counts[age][ctype]
}

// Total returns the number of cards in the inventory.
func (inv *Inventory) Total() int {
	total := 0
	for age := CardNew; age <= CardOld; age++ {
		for ctype := 0; ctype < DevCardTypeCount; ctype++ {
			total += inv.counts[age][ctype]
		}
	}
	return total
}

// AddDevCard adds cards of one type at one age.
func (inv *Inventory) AddDevCard(amount, age, ctype int) {
	inv.counts[age][ctype] += amount
}

// RemoveDevCard removes one card of a type at an age. If none of that exact
// card is tracked, an Unknown card of the same age is removed instead, since
// the server may reveal cards this client only knew as Unknown.
func (inv *Inventory) RemoveDevCard(age, ctype int) {
	if inv.counts[age][ctype] > 0 {
		inv.counts[age][ctype]--
		return
	}
	if inv.counts[age][DevCardUnknown] > 0 {
		inv.counts[age][DevCardUnknown]--
	}
}

// NewToOld ages every newly bought card so it becomes playable.
func (inv *Inventory) NewToOld() {
	for ctype := 0; ctype < DevCardTypeCount; ctype++ {
		inv.counts[CardOld][ctype] += inv.counts[CardNew][ctype]
		inv.counts[CardNew][ctype] = 0
	}
}
