package counters

import "fmt"

// Kind names a counter variety. Boost counters carry their power/toughness
// delta in the name ("+1/+1"); everything else is a plain named counter.
type Kind string

const (
	KindP1P1       Kind = "+1/+1"
	KindM1M1       Kind = "-1/-1"
	KindCharge     Kind = "charge"
	KindLoyalty    Kind = "loyalty"
	KindStun       Kind = "stun"
	KindShield     Kind = "shield"
	KindTime       Kind = "time"
	KindExperience Kind = "experience"
	// KindAny matches every counter kind in restriction comparisons.
	KindAny Kind = "any"
)

// String returns the display name of the counter kind.
func (k Kind) String() string { return string(k) }

// Boost reports the power/toughness delta a single counter of this kind
// contributes, or (0, 0, false) for non-boost counters.
func (k Kind) Boost() (power, toughness int, ok bool) {
	switch k {
	case KindP1P1:
		return 1, 1, true
	case KindM1M1:
		return -1, -1, true
	}
	return 0, 0, false
}

// BoostKind builds the counter kind for an arbitrary power/toughness boost,
// e.g. BoostKind(2, 2) == "+2/+2".
func BoostKind(power, toughness int) Kind {
	return Kind(fmt.Sprintf("%+d/%+d", power, toughness))
}
