package targeting

// CompareOp is the operator used in a numeric comparison restriction.
type CompareOp int

const (
	LessThan CompareOp = iota
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
)

// Comparison is a single numeric predicate against a card characteristic
// (power, toughness, mana value, counter count).
type Comparison struct {
	Op    CompareOp
	Value int
}

// Matches evaluates the comparison against v.
func (c Comparison) Matches(v int) bool {
	switch c.Op {
	case LessThan:
		return v < c.Value
	case LessThanOrEqual:
		return v <= c.Value
	case GreaterThan:
		return v > c.Value
	case GreaterThanOrEqual:
		return v >= c.Value
	}
	return false
}

// ControllerRelation constrains the controller of a candidate relative to the
// controller of the asking card.
type ControllerRelation int

const (
	// ControllerSelf requires the candidate to share a controller with the
	// asking card.
	ControllerSelf ControllerRelation = iota
	// ControllerOpponent requires the candidate to be controlled by an
	// opponent of the asking card's controller.
	ControllerOpponent
)

// RestrictionKind discriminates the closed set of restriction predicates.
type RestrictionKind int

const (
	RestrictionAttacking RestrictionKind = iota
	RestrictionCastFromHand
	RestrictionChosenThisSession
	RestrictionController
	RestrictionControllerHandEmpty
	RestrictionControllerJustCast
	RestrictionCounterCount
	RestrictionDuringControllersTurn
	RestrictionEnteredBattlefieldThisTurn
	RestrictionHasActivatedAbility
	RestrictionInGraveyard
	RestrictionInLocation
	RestrictionManaValue
	RestrictionNonToken
	RestrictionNotChosenThisSession
	RestrictionNotKeywords
	RestrictionNotOfType
	RestrictionNotSelf
	RestrictionOfType
	RestrictionOnBattlefield
	RestrictionPower
	RestrictionSelf
	RestrictionTapped
	RestrictionToughness
)

// Restriction is one predicate in an implicitly-conjoined restriction list.
// Only the fields relevant to Kind are populated; construct values through
// the helper constructors below so malformed restrictions cannot be built.
type Restriction struct {
	Kind RestrictionKind

	// Controller relation, for RestrictionController.
	Relation ControllerRelation

	// Comparison, for RestrictionPower / RestrictionToughness /
	// RestrictionManaValue / RestrictionCounterCount.
	Compare Comparison

	// CounterKind names the counter compared by RestrictionCounterCount.
	// Empty means any counter.
	CounterKind string

	// Locations, for RestrictionInLocation.
	Locations []Location

	// Types and Subtypes, for RestrictionOfType / RestrictionNotOfType.
	Types    []string
	Subtypes []string

	// Keywords, for RestrictionNotKeywords.
	Keywords []string

	// Count and Nested, for RestrictionEnteredBattlefieldThisTurn. At least
	// Count cards matching Nested must have entered the battlefield this
	// turn.
	Count  int
	Nested []Restriction
}

func Attacking() Restriction       { return Restriction{Kind: RestrictionAttacking} }
func CastFromHand() Restriction    { return Restriction{Kind: RestrictionCastFromHand} }
func ChosenThisSession() Restriction {
	return Restriction{Kind: RestrictionChosenThisSession}
}
func Controller(rel ControllerRelation) Restriction {
	return Restriction{Kind: RestrictionController, Relation: rel}
}
func ControllerHandEmpty() Restriction {
	return Restriction{Kind: RestrictionControllerHandEmpty}
}
func ControllerJustCast() Restriction {
	return Restriction{Kind: RestrictionControllerJustCast}
}
func CounterCount(kind string, cmp Comparison) Restriction {
	return Restriction{Kind: RestrictionCounterCount, CounterKind: kind, Compare: cmp}
}
func DuringControllersTurn() Restriction {
	return Restriction{Kind: RestrictionDuringControllersTurn}
}
func EnteredBattlefieldThisTurn(count int, nested ...Restriction) Restriction {
	return Restriction{Kind: RestrictionEnteredBattlefieldThisTurn, Count: count, Nested: nested}
}
func HasActivatedAbility() Restriction {
	return Restriction{Kind: RestrictionHasActivatedAbility}
}
func InGraveyard() Restriction { return Restriction{Kind: RestrictionInGraveyard} }
func InLocation(locations ...Location) Restriction {
	return Restriction{Kind: RestrictionInLocation, Locations: locations}
}
func ManaValue(cmp Comparison) Restriction {
	return Restriction{Kind: RestrictionManaValue, Compare: cmp}
}
func NonToken() Restriction { return Restriction{Kind: RestrictionNonToken} }
func NotChosenThisSession() Restriction {
	return Restriction{Kind: RestrictionNotChosenThisSession}
}
func NotKeywords(keywords ...string) Restriction {
	return Restriction{Kind: RestrictionNotKeywords, Keywords: keywords}
}
func NotOfType(types, subtypes []string) Restriction {
	return Restriction{Kind: RestrictionNotOfType, Types: types, Subtypes: subtypes}
}
func NotSelf() Restriction { return Restriction{Kind: RestrictionNotSelf} }
func OfType(types, subtypes []string) Restriction {
	return Restriction{Kind: RestrictionOfType, Types: types, Subtypes: subtypes}
}
func OnBattlefield() Restriction { return Restriction{Kind: RestrictionOnBattlefield} }
func Power(cmp Comparison) Restriction {
	return Restriction{Kind: RestrictionPower, Compare: cmp}
}
func Self() Restriction   { return Restriction{Kind: RestrictionSelf} }
func Tapped() Restriction { return Restriction{Kind: RestrictionTapped} }
func Toughness(cmp Comparison) Restriction {
	return Restriction{Kind: RestrictionToughness, Compare: cmp}
}

// Creatures is the restriction list shared by most creature-targeting
// effects.
func Creatures() []Restriction {
	return []Restriction{OfType([]string{"Creature"}, nil), OnBattlefield()}
}
