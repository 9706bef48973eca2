package game

import (
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
	"go.uber.org/zap"
)

// Duration classifies how long a continuous effect lasts.
type Duration int

const (
	DurationPermanently Duration = iota
	DurationUntilEndOfTurn
	DurationUntilSourceLeaves
)

// ModifierScope controls which cards a modifier may apply to before its
// restriction list is consulted.
type ModifierScope int

const (
	// ScopeAttached applies only to cards in the modifier's modifying set.
	ScopeAttached ModifierScope = iota
	// ScopeEntireBattlefield applies to every card on the battlefield.
	ScopeEntireBattlefield
	// ScopeGlobal applies to every card regardless of zone.
	ScopeGlobal
)

// ModifierSpec is the characteristic delta or ability grant a modifier
// applies, together with the layer it applies in, its duration and the
// restriction list limiting which cards it affects.
type ModifierSpec struct {
	Layer        Layer
	Duration     Duration
	Scope        ModifierScope
	Restrictions []targeting.Restriction

	AddPower     int
	AddToughness int
	SetPower     *int
	SetToughness *int

	AddTypes          []string
	AddSubtypes       []string
	RemoveAllSubtypes bool

	AddKeywords    []string
	RemoveKeywords []string
	// RemoveAllAbilities revokes every activated ability in the ability
	// layer.
	RemoveAllAbilities bool
	// GrantAbilities adds activated abilities; the granted entities are
	// garbage collected when the modifier deactivates.
	GrantAbilities []ActivatedAbilityDef
}

// Modifier is a continuous effect in play. It stays inert until activated
// and is recomputed into affected cards' modified snapshots by the layered
// modifier engine.
type Modifier struct {
	ID        ModifierID
	Source    CardID
	Spec      ModifierSpec
	Timestamp int
	Temporary bool
	Active    bool
	Modifying map[CardID]struct{}

	grantedAbilities []AbilityID
}

// UploadTemporaryModifier creates an inactive temporary modifier sourced
// from the given card, uploading any abilities it will grant, and returns
// its id. Temporary modifiers are garbage collected when deactivated.
func (db *Database) UploadTemporaryModifier(source CardID, spec ModifierSpec) ModifierID {
	return db.uploadModifier(source, spec, true)
}

// UploadModifier creates an inactive permanent modifier.
func (db *Database) UploadModifier(source CardID, spec ModifierSpec) ModifierID {
	return db.uploadModifier(source, spec, false)
}

func (db *Database) uploadModifier(source CardID, spec ModifierSpec, temporary bool) ModifierID {
	db.nextModifier++
	id := db.nextModifier

	mod := &Modifier{
		ID:        id,
		Source:    source,
		Spec:      spec,
		Timestamp: db.NextTimestamp(),
		Temporary: temporary,
		Modifying: make(map[CardID]struct{}),
	}
	for _, def := range spec.GrantAbilities {
		mod.grantedAbilities = append(mod.grantedAbilities, db.uploadAbility(source, def, true))
	}
	db.modifiers[id] = mod
	db.modifierOrder = append(db.modifierOrder, id)

	db.logger.Debug("uploaded modifier",
		zap.Int("modifier", int(id)),
		zap.Int("source", int(source)),
		zap.Bool("temporary", temporary),
	)
	return id
}

// Modifier looks up a modifier by id.
func (db *Database) Modifier(id ModifierID) (*Modifier, bool) {
	m, ok := db.modifiers[id]
	return m, ok
}

// MustModifier looks up a modifier that must exist.
func (db *Database) MustModifier(id ModifierID) *Modifier {
	m, ok := db.modifiers[id]
	if !ok {
		panic("no such modifier")
	}
	return m
}

// ModifierIDs returns all modifier ids in creation order.
func (db *Database) ModifierIDs() []ModifierID {
	out := make([]ModifierID, len(db.modifierOrder))
	copy(out, db.modifierOrder)
	return out
}

// ActivateModifier switches a modifier on and recomputes every card it
// could affect.
func (db *Database) ActivateModifier(id ModifierID) {
	mod := db.MustModifier(id)
	if mod.Active {
		return
	}
	mod.Active = true
	db.recomputeForModifier(mod)
}

// AttachModifier adds cards to the modifier's modifying set, activating it
// if necessary, and recomputes the attached cards.
func (db *Database) AttachModifier(id ModifierID, cards ...CardID) {
	mod := db.MustModifier(id)
	mod.Active = true
	for _, card := range cards {
		mod.Modifying[card] = struct{}{}
	}
	for _, card := range cards {
		db.ApplyModifiersLayered(card)
	}
}

// DeactivateModifier switches a modifier off, clears its modifying set,
// garbage-collects any abilities it granted, drops it if temporary, and
// recomputes every card that was affected. A single deactivation can change
// several cards' characteristics at once.
func (db *Database) DeactivateModifier(id ModifierID) {
	mod := db.MustModifier(id)
	mod.Active = false

	affected := make([]CardID, 0, len(mod.Modifying))
	for card := range mod.Modifying {
		affected = append(affected, card)
	}
	if mod.Spec.Scope != ScopeAttached {
		affected = db.Battlefield()
	}
	mod.Modifying = make(map[CardID]struct{})

	if mod.Temporary {
		for _, abilityID := range mod.grantedAbilities {
			db.GCAbility(abilityID)
		}
		delete(db.modifiers, id)
		for i, mid := range db.modifierOrder {
			if mid == id {
				db.modifierOrder = append(db.modifierOrder[:i], db.modifierOrder[i+1:]...)
				break
			}
		}
	}

	for _, card := range affected {
		if _, ok := db.cards[card]; ok {
			db.ApplyModifiersLayered(card)
		}
	}
	db.logger.Debug("deactivated modifier", zap.Int("modifier", int(id)), zap.Int("affected", len(affected)))
}

// GrantedAbilities returns the ability ids this modifier granted.
func (m *Modifier) GrantedAbilities() []AbilityID {
	out := make([]AbilityID, len(m.grantedAbilities))
	copy(out, m.grantedAbilities)
	return out
}

func (db *Database) recomputeForModifier(mod *Modifier) {
	switch mod.Spec.Scope {
	case ScopeAttached:
		for card := range mod.Modifying {
			db.ApplyModifiersLayered(card)
		}
	default:
		for _, card := range db.Battlefield() {
			db.ApplyModifiersLayered(card)
		}
	}
}

// activateStaticModifiers uploads and activates the static continuous
// effects printed on a card when it arrives on the battlefield. They carry
// an until-source-leaves duration so leaving the battlefield tears them
// down.
func (db *Database) activateStaticModifiers(id CardID) {
	card := db.MustCard(id)
	for _, spec := range card.Face.StaticModifiers {
		spec.Duration = DurationUntilSourceLeaves
		if spec.Scope == ScopeAttached {
			spec.Scope = ScopeEntireBattlefield
		}
		modID := db.UploadTemporaryModifier(id, spec)
		db.ActivateModifier(modID)
	}
}

// EndOfTurnCleanup deactivates until-end-of-turn modifiers, collects
// garbage abilities, clears damage and per-turn tracking, and untaps the
// incoming active player's permanents.
func (db *Database) EndOfTurnCleanup() {
	for _, id := range db.ModifierIDs() {
		mod := db.MustModifier(id)
		if mod.Active && mod.Spec.Duration == DurationUntilEndOfTurn {
			db.DeactivateModifier(id)
		}
	}
	db.CollectGarbage()

	for _, cid := range db.Battlefield() {
		card := db.MustCard(cid)
		card.Damage = 0
		card.Attacking = false
	}
	for _, pid := range db.Players() {
		db.MustPlayer(pid).LifeGainedThisTurn = 0
	}
}

// BeginTurn advances the turn to the given player, untapping their
// permanents and clearing summoning sickness.
func (db *Database) BeginTurn(player PlayerID) {
	db.Turn.Number++
	db.Turn.ActivePlayer = player
	db.Turn.Priority = player
	db.Turn.Phase = PhaseBeginning
	db.Log.LogNewTurn(player, db.Turn.Number)

	for _, cid := range db.CardsInZone(player, targeting.LocationBattlefield) {
		card := db.MustCard(cid)
		card.Tapped = false
		card.SummoningSick = false
	}
}
