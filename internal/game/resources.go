package game

// Resource types. Unknown is the bucket for resources whose type this client
// cannot see (other players' hidden hands).
const (
	Clay = iota + 1
	Ore
	Sheep
	Wheat
	Wood
	UnknownResource

	MinResource = Clay
	MaxResource = UnknownResource
)

// ResourceSet is a player's hand of resources, five known types plus the
// Unknown bucket. All mutation clamps so no count goes negative.
type ResourceSet struct {
	amounts [MaxResource + 1]int
}

// NewResourceSet returns a set holding the given known amounts
// (clay, ore, sheep, wheat, wood).
func NewResourceSet(clay, ore, sheep, wheat, wood int) *ResourceSet {
	rs := &ResourceSet{}
	rs.amounts[Clay] = clay
	rs.amounts[Ore] = ore
	rs.amounts[Sheep] = sheep
	rs.amounts[Wheat] = wheat
	rs.amounts[Wood] = wood
	return rs
}

// Amount returns the count of one resource type.
func (rs *ResourceSet) Amount(rtype int) int {
	return rs.amounts[rtype]
}

// SetAmount sets the count of one resource type.
func (rs *ResourceSet) SetAmount(rtype, amt int) {
	rs.amounts[rtype] = amt
}

// Add increases one resource type.
func (rs *ResourceSet) Add(rtype, amt int) {
	rs.amounts[rtype] += amt
}

// Subtract decreases one resource type. Taking more than the set holds of
// that type zeroes it and drains the difference from the Unknown bucket,
// because the server may know about resources this client never saw typed.
func (rs *ResourceSet) Subtract(rtype, amt int) {
	if amt > rs.amounts[rtype] {
		rs.amounts[UnknownResource] -= amt - rs.amounts[rtype]
		rs.amounts[rtype] = 0
		if rs.amounts[UnknownResource] < 0 {
			rs.amounts[UnknownResource] = 0
		}
	} else {
		rs.amounts[rtype] -= amt
	}
}

// Total returns the hand size including the Unknown bucket.
func (rs *ResourceSet) Total() int {
	total := 0
	for t := MinResource; t <= MaxResource; t++ {
		total += rs.amounts[t]
	}
	return total
}

// KnownTotal returns the hand size excluding the Unknown bucket.
func (rs *ResourceSet) KnownTotal() int {
	return rs.Total() - rs.amounts[UnknownResource]
}

// Clear empties the set.
func (rs *ResourceSet) Clear() {
	rs.amounts = [MaxResource + 1]int{}
}

// ConvertToUnknown collapses the whole hand into the Unknown bucket,
// discarding type information.
func (rs *ResourceSet) ConvertToUnknown() {
	total := rs.Total()
	rs.Clear()
	rs.amounts[UnknownResource] = total
}

// Copy returns an independent copy of the set.
func (rs *ResourceSet) Copy() *ResourceSet {
	cp := *rs
	return &cp
}
