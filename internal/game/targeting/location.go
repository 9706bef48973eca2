package targeting

// Location identifies one of the fixed card zones. A card is in exactly one
// location at any time; LocationAnywhere is only meaningful inside
// restrictions.
type Location int

const (
	LocationLibrary Location = iota
	LocationHand
	LocationBattlefield
	LocationGraveyard
	LocationExile
	LocationStack
	// LocationAnywhere matches every zone when used in a restriction.
	LocationAnywhere
)

// String returns the display name of the location.
func (l Location) String() string {
	switch l {
	case LocationLibrary:
		return "library"
	case LocationHand:
		return "hand"
	case LocationBattlefield:
		return "battlefield"
	case LocationGraveyard:
		return "graveyard"
	case LocationExile:
		return "exile"
	case LocationStack:
		return "stack"
	case LocationAnywhere:
		return "anywhere"
	}
	return "unknown"
}

// Matches reports whether a card in zone satisfies this location.
func (l Location) Matches(zone Location) bool {
	return l == LocationAnywhere || l == zone
}
