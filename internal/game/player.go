package game

// Player is a player entity: life totals and the ordered card lists for each
// of the player's zones. The library is ordered with the top of the library
// at the end of the slice.
type Player struct {
	ID   PlayerID
	Name string

	Life               int
	LifeGainedThisTurn int
	Lost               bool

	Library     []CardID
	Hand        []CardID
	Battlefield []CardID
	Graveyard   []CardID
	Exile       []CardID
}

// TopOfLibrary returns the top card of the library, or false if it is empty.
func (p *Player) TopOfLibrary() (CardID, bool) {
	if len(p.Library) == 0 {
		return InvalidCard, false
	}
	return p.Library[len(p.Library)-1], true
}

func removeCard(list []CardID, card CardID) []CardID {
	for i, id := range list {
		if id == card {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
