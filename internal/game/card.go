package game

import (
	"github.com/Jesterhearts/piece-go/internal/game/counters"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// CardFace is the base characteristic set of a card: the already-parsed,
// already-validated descriptor handed to the engine by the card-data
// subsystem. The engine never mutates a face; the layered modifier engine
// derives the card's effective characteristics from it.
type CardFace struct {
	Name      string
	ManaValue int
	Colors    []string
	Types     []string
	Subtypes  []string
	Keywords  []string

	// Power and Toughness are nil for non-creatures.
	Power     *int
	Toughness *int

	// SpellEffects run when the card resolves from the stack.
	SpellEffects []Effect
	// ETBEffects run when the card enters the battlefield.
	ETBEffects []Effect
	// Activated abilities printed on the card.
	Activated []ActivatedAbilityDef
	// Triggered abilities printed on the card.
	Triggered []TriggeredAbility
	// StaticModifiers are continuous effects that are active while the card
	// is on the battlefield and deactivate when it leaves.
	StaticModifiers []ModifierSpec

	// Enchantment/instant/sorcery classification is carried by Types; a card
	// is a permanent unless it is an instant or sorcery.
}

// IsPermanent reports whether this face stays on the battlefield when it
// resolves.
func (f *CardFace) IsPermanent() bool {
	for _, t := range f.Types {
		if t == "Instant" || t == "Sorcery" {
			return false
		}
	}
	return true
}

// HasType reports whether the face's type line includes t.
func (f *CardFace) HasType(t string) bool {
	return containsString(f.Types, t)
}

// Modified is the derived characteristic snapshot of a card, the output of
// the layered modifier engine. It must be recomputed, never assumed
// stale-but-readable, before any rules query that follows a mutation.
type Modified struct {
	Power     *int
	Toughness *int
	Types     []string
	Subtypes  []string
	Keywords  []string
	Colors    []string
	Activated []AbilityID
	Triggered []TriggeredAbility
}

// HasType reports whether the snapshot's type line includes t.
func (m *Modified) HasType(t string) bool { return containsString(m.Types, t) }

// HasSubtype reports whether the snapshot includes the subtype s.
func (m *Modified) HasSubtype(s string) bool { return containsString(m.Subtypes, s) }

// HasKeyword reports whether the snapshot includes the keyword k.
func (m *Modified) HasKeyword(k string) bool { return containsString(m.Keywords, k) }

// Card is a card entity in the arena: identity, ownership, current zone,
// base and modified characteristics, counters and transient flags.
type Card struct {
	ID         CardID
	Owner      PlayerID
	Controller PlayerID
	Zone       targeting.Location

	Face     CardFace
	Modified Modified

	// Cloning, when non-nil, replaces Face as the base the layered engine
	// resets to.
	Cloning *CardFace

	Counters *counters.Counters
	Damage   int

	Tapped        bool
	Attacking     bool
	SummoningSick bool
	Revealed      bool
	Token         bool

	// CastFrom records the zone the card was cast from, nil if the card was
	// not cast (tokens, cards put directly onto the battlefield).
	CastFrom *targeting.Location

	// EnteredTurn is the turn number the card last entered the battlefield.
	EnteredTurn int

	// baseActivated holds the ability ids uploaded for the printed
	// activated abilities; modifiers may grant more.
	baseActivated []AbilityID
}

// clearTransientState resets everything that does not follow a card across
// zone changes.
func (c *Card) clearTransientState() {
	c.Tapped = false
	c.Attacking = false
	c.SummoningSick = false
	c.Revealed = false
	c.Damage = 0
	c.CastFrom = nil
	c.Cloning = nil
	c.Counters = counters.NewCounters()
}

// ActivatedAbilityDef describes one activated ability as printed on a card
// or granted by a modifier.
type ActivatedAbilityDef struct {
	Text    string
	Cost    AbilityCost
	Effects []Effect
	// SorcerySpeed abilities may only be activated when the stack is empty
	// during the controller's turn.
	SorcerySpeed bool
}

// AbilityCost is the non-mana portion of an activation cost.
type AbilityCost struct {
	TapThis       bool
	SacrificeThis bool
	// SacrificeRestrictions, when non-empty, requires sacrificing a
	// permanent matching the restrictions as part of the cost.
	SacrificeRestrictions []targeting.Restriction
	Life                  int
}

// Free reports whether the cost requires no payment at all.
func (c AbilityCost) Free() bool {
	return !c.TapThis && !c.SacrificeThis && len(c.SacrificeRestrictions) == 0 && c.Life == 0
}

// ActivatedAbility is an activated ability uploaded into the arena, either
// printed on its source or granted by a modifier.
type ActivatedAbility struct {
	ID     AbilityID
	Source CardID
	Def    ActivatedAbilityDef
	// Granted marks abilities added by a modifier; they are garbage
	// collected when the granting modifier deactivates.
	Granted bool
}

// TriggerSource identifies the event class a triggered ability watches.
type TriggerSource int

const (
	TriggerEnteredBattlefield TriggerSource = iota
	TriggerLeftBattlefield
	TriggerTapped
	TriggerCast
	TriggerPutIntoGraveyard
)

// TriggeredAbility describes a triggered ability: when the trigger source
// fires for a card passing the restrictions, the effects go on the stack.
type TriggeredAbility struct {
	Trigger TriggerSource
	// Restrictions filter the card that caused the event, evaluated from
	// the perspective of the ability's source.
	Restrictions []targeting.Restriction
	Effects      []Effect
	Text         string
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
