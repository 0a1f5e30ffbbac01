package game

// TradeOffer is one player's open offer: give these resources, get those,
// directed at the seats flagged in To.
type TradeOffer struct {
	From int
	To   []bool
	Give *ResourceSet
	Get  *ResourceSet
}
