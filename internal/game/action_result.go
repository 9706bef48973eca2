package game

import (
	"github.com/Jesterhearts/piece-go/internal/game/counters"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// ActionResult is one atomic, settled game mutation. The full set of
// variants is closed: every state change the engine can make flows through
// ApplyActionResults, which switches exhaustively over these types. Adding
// a variant means adding a case there.
type ActionResult interface {
	isActionResult()
}

// CastCard puts a card onto the stack as a spell with its chosen targets,
// modes and X.
type CastCard struct {
	Card    CardID
	Targets [][]ActiveTarget
	From    targeting.Location
	X       *int
	Modes   []int
}

// CastFreely casts a card without paying costs (cascade, discover). Target
// selection happens as a follow-on resolution.
type CastFreely struct {
	Card CardID
	From targeting.Location
}

// AddAbilityToStack puts an activated ability onto the stack.
type AddAbilityToStack struct {
	Source  CardID
	Ability AbilityID
	Targets [][]ActiveTarget
	X       *int
}

// AddTriggerToStack puts a triggered ability onto the stack.
type AddTriggerToStack struct {
	Source  CardID
	Trigger *TriggeredAbility
	Targets [][]ActiveTarget
}

// AddCounters places counters on a permanent.
type AddCounters struct {
	Card  CardID
	Kind  counters.Kind
	Count int
}

// RemoveCounters removes counters from a permanent.
type RemoveCounters struct {
	Card  CardID
	Kind  counters.Kind
	Count int
}

// AddModifier activates an already-uploaded modifier.
type AddModifier struct {
	Modifier ModifierID
}

// ApplyModifierToTargets uploads a modifier and attaches it to the given
// permanents.
type ApplyModifierToTargets struct {
	Spec    ModifierSpec
	Source  CardID
	Targets []ActiveTarget
}

// AddToBattlefield puts a card directly onto the battlefield.
type AddToBattlefield struct {
	Card   CardID
	Tapped bool
}

// CounterSpell removes a stack entry and puts its card into the graveyard.
type CounterSpell struct {
	StackID string
}

// CopyStackEntry puts a copy of a stack entry on top of the stack under the
// given player's control, with the original's targets, modes and X.
type CopyStackEntry struct {
	StackID    string
	Controller PlayerID
}

// CreateToken creates a fresh token under a player's control.
type CreateToken struct {
	Controller PlayerID
	Face       CardFace
}

// CreateTokenCopy creates a token copy of an existing permanent, optionally
// with extra counters.
type CreateTokenCopy struct {
	Controller PlayerID
	Copying    CardID
	Counters   []AddCounters
}

// DamageTarget deals damage to a permanent or player.
type DamageTarget struct {
	Target ActiveTarget
	Amount int
	Source CardID
}

// DeclareAttackers marks the chosen creatures as attacking and taps them.
type DeclareAttackers struct {
	Cards []CardID
}

// DestroyEach destroys every permanent matching the restrictions.
type DestroyEach struct {
	Source       CardID
	Restrictions []targeting.Restriction
}

// DestroyTarget destroys one permanent.
type DestroyTarget struct {
	Card CardID
}

// Discard moves cards from hand to graveyard.
type Discard struct {
	Player PlayerID
	Cards  []CardID
}

// DrawCards draws from the top of a player's library.
type DrawCards struct {
	Player PlayerID
	Count  int
}

// ExileTarget exiles a permanent, optionally only until the source leaves
// the battlefield.
type ExileTarget struct {
	Card              CardID
	Source            CardID
	UntilSourceLeaves bool
}

// GainLife adds to a player's life total.
type GainLife struct {
	Player PlayerID
	Amount int
}

// LoseLife subtracts from a player's life total.
type LoseLife struct {
	Player PlayerID
	Amount int
}

// Mill puts cards from the top of a library into the graveyard.
type Mill struct {
	Player PlayerID
	Count  int
}

// MoveCard moves a card to a zone; ToBottom selects the bottom of the
// library, Tapped applies when the destination is the battlefield.
type MoveCard struct {
	Card     CardID
	To       targeting.Location
	ToBottom bool
	Tapped   bool
}

// PermanentToGraveyard puts a permanent into its owner's graveyard.
type PermanentToGraveyard struct {
	Card   CardID
	Reason LeaveReason
}

// ReturnToHand returns a card to its owner's hand.
type ReturnToHand struct {
	Card CardID
}

// Shuffle shuffles a player's library.
type Shuffle struct {
	Player PlayerID
}

// StackToGraveyard moves a resolved or countered stack card to the
// graveyard.
type StackToGraveyard struct {
	Card CardID
}

// TapPermanent taps a permanent.
type TapPermanent struct {
	Card CardID
}

// UntapPermanent untaps a permanent.
type UntapPermanent struct {
	Card CardID
}

// Cascade reveals cards from the top of the library until one with mana
// value below the threshold appears, offers to cast it, and bottoms the
// rest.
type Cascade struct {
	Controller PlayerID
	ManaValue  int
}

// UpdateStackEntries replaces the stack contents after a reorder.
type UpdateStackEntries struct {
	Entries []StackEntry
}

// ExamineTopCards reveals the top cards of a library and distributes them
// among destinations.
type ExamineTopCards struct {
	Player       PlayerID
	Count        int
	Destinations []*Destination
	Reveal       bool
}

func (CastCard) isActionResult()               {}
func (CastFreely) isActionResult()             {}
func (AddAbilityToStack) isActionResult()      {}
func (AddTriggerToStack) isActionResult()      {}
func (AddCounters) isActionResult()            {}
func (RemoveCounters) isActionResult()         {}
func (AddModifier) isActionResult()            {}
func (ApplyModifierToTargets) isActionResult() {}
func (AddToBattlefield) isActionResult()       {}
func (CopyStackEntry) isActionResult()         {}
func (CounterSpell) isActionResult()           {}
func (CreateToken) isActionResult()            {}
func (CreateTokenCopy) isActionResult()        {}
func (DamageTarget) isActionResult()           {}
func (DeclareAttackers) isActionResult()       {}
func (DestroyEach) isActionResult()            {}
func (DestroyTarget) isActionResult()          {}
func (Discard) isActionResult()                {}
func (DrawCards) isActionResult()              {}
func (ExileTarget) isActionResult()            {}
func (GainLife) isActionResult()               {}
func (LoseLife) isActionResult()               {}
func (Mill) isActionResult()                   {}
func (MoveCard) isActionResult()               {}
func (PermanentToGraveyard) isActionResult()   {}
func (ReturnToHand) isActionResult()           {}
func (Shuffle) isActionResult()                {}
func (StackToGraveyard) isActionResult()       {}
func (TapPermanent) isActionResult()           {}
func (UntapPermanent) isActionResult()         {}
func (Cascade) isActionResult()                {}
func (UpdateStackEntries) isActionResult()     {}
func (ExamineTopCards) isActionResult()        {}
