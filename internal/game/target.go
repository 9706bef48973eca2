package game

import "fmt"

// TargetKind discriminates target descriptors.
type TargetKind int

const (
	TargetBattlefield TargetKind = iota
	TargetPlayer
	TargetGraveyard
	TargetLibrary
	TargetHand
	TargetStack
)

// ActiveTarget is a claimed or claimable target: a permanent, a player, a
// card in a non-battlefield zone, or an entry on the stack. It is a value
// type so it can key sets and be compared across recomputations.
type ActiveTarget struct {
	Kind    TargetKind
	Card    CardID
	Player  PlayerID
	StackID string
}

// BattlefieldTarget targets a permanent.
func BattlefieldTarget(card CardID) ActiveTarget {
	return ActiveTarget{Kind: TargetBattlefield, Card: card}
}

// PlayerTarget targets a player.
func PlayerTarget(player PlayerID) ActiveTarget {
	return ActiveTarget{Kind: TargetPlayer, Player: player}
}

// GraveyardTarget targets a card in a graveyard.
func GraveyardTarget(card CardID) ActiveTarget {
	return ActiveTarget{Kind: TargetGraveyard, Card: card}
}

// LibraryTarget targets a card in a library.
func LibraryTarget(card CardID) ActiveTarget {
	return ActiveTarget{Kind: TargetLibrary, Card: card}
}

// HandTarget targets a card in a hand.
func HandTarget(card CardID) ActiveTarget {
	return ActiveTarget{Kind: TargetHand, Card: card}
}

// StackTarget targets a spell or ability on the stack.
func StackTarget(id string) ActiveTarget {
	return ActiveTarget{Kind: TargetStack, StackID: id}
}

// Display renders the target for option lists.
func (t ActiveTarget) Display(db *Database) string {
	switch t.Kind {
	case TargetBattlefield, TargetGraveyard, TargetLibrary, TargetHand:
		if card, ok := db.Card(t.Card); ok {
			return card.Face.Name
		}
		return fmt.Sprintf("card %d", t.Card)
	case TargetPlayer:
		if player, ok := db.Player(t.Player); ok {
			return player.Name
		}
		return fmt.Sprintf("player %d", t.Player)
	case TargetStack:
		if entry, ok := db.Stack.Entry(t.StackID); ok {
			if card, cardOK := db.Card(entry.Card); cardOK {
				return card.Face.Name
			}
		}
		return "stack entry"
	}
	return "unknown target"
}
