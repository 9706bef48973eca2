package game

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// ErrCannotCancel is returned when cancelling a resolution that has already
// applied a mutation.
var ErrCannotCancel = errors.New("cannot cancel after results have applied")

// ErrNoSuchEntity is returned when a caller references a card, ability or
// stack entry that does not exist.
var ErrNoSuchEntity = errors.New("no such entity")

// CastCardFrom begins casting a card from the given zone. The returned
// resolution collects X, modes and targets, then puts the spell on the
// stack; until the first choice settles into an applied mutation it can be
// cancelled.
func CastCardFrom(db *Database, id CardID, from targeting.Location) *PendingResults {
	card := db.MustCard(id)
	results := NewPendingResults(db)
	results.AddCardToStack(id, from)
	for _, effect := range card.Face.SpellEffects {
		if xs, ok := effect.(XSource); ok {
			results.PushChooseX(NewChooseX(card.Controller, xs.MaxX(db, id)))
		}
		if ms, ok := effect.(ModalSource); ok {
			results.PushChooseMode(NewChooseModes(id, card.Controller, ms.ModeList()))
		}
		if effect.WantsTargets(db, id) > 0 {
			results.PushChooseTargets(NewChooseTargets(db, effect, id, card.Controller))
		}
	}
	return results
}

// ActivateAbility begins activating an ability: cost-payment steps go to
// the front of the queue, target selection after them, and the ability goes
// on the stack once everything settles.
func ActivateAbility(db *Database, abilityID AbilityID) (*PendingResults, error) {
	ability, ok := db.Ability(abilityID)
	if !ok {
		return nil, fmt.Errorf("activate ability %d: %w", abilityID, ErrNoSuchEntity)
	}
	source, ok := db.Card(ability.Source)
	if !ok {
		return nil, fmt.Errorf("activate ability %d: source: %w", abilityID, ErrNoSuchEntity)
	}
	if !containsAbility(source.Modified.Activated, abilityID) {
		return nil, fmt.Errorf("ability %d is not available on %s", abilityID, source.Face.Name)
	}
	if ability.Def.SorcerySpeed {
		if !db.Stack.IsEmpty() || db.Turn.ActivePlayer != source.Controller {
			return nil, fmt.Errorf("ability %d may only be activated at sorcery speed", abilityID)
		}
	}
	cost := ability.Def.Cost
	if cost.TapThis {
		if source.Tapped {
			return nil, fmt.Errorf("cannot tap %s: already tapped", source.Face.Name)
		}
		if source.Modified.HasType("Creature") && source.SummoningSick {
			return nil, fmt.Errorf("cannot tap %s: summoning sick", source.Face.Name)
		}
	}

	results := NewPendingResults(db)
	results.AddAbilityToStack(ability.Source, abilityID)
	for _, effect := range ability.Def.Effects {
		if xs, ok := effect.(XSource); ok {
			results.PushChooseX(NewChooseX(source.Controller, xs.MaxX(db, ability.Source)))
		}
		if effect.WantsTargets(db, ability.Source) > 0 {
			results.PushChooseTargets(NewChooseTargets(db, effect, ability.Source, source.Controller))
		}
	}

	// Cost steps are prepended one at a time, so push in reverse of the
	// order they should be paid.
	if cost.Life > 0 {
		results.PushPayCost(NewPayLife(source.Controller, cost.Life))
	}
	if len(cost.SacrificeRestrictions) > 0 {
		results.PushPayCost(NewSacrificePermanent(ability.Source, source.Controller, cost.SacrificeRestrictions))
	}
	if cost.SacrificeThis {
		results.PushPayCost(NewSacrificeThisCost(ability.Source))
	}
	if cost.TapThis {
		results.PushPayCost(NewTapThisCost(ability.Source))
	}
	return results, nil
}

// ResolveTopOfStack pops and resolves the top stack entry. Targets chosen
// when the entry was put on the stack are revalidated: invalid ones are
// dropped, and an entry whose every chosen target is gone fizzles.
func ResolveTopOfStack(db *Database) (*PendingResults, error) {
	entry, err := db.Stack.Pop()
	if err != nil {
		return nil, err
	}

	// Settled work applies in stages so a later interactive step of the
	// same entry sees the mutations of earlier effects.
	results := NewPendingResults(db)
	results.ApplyInStages()
	card, ok := db.Card(entry.Card)
	if !ok {
		return nil, fmt.Errorf("resolve stack entry %s: %w", entry.ID, ErrNoSuchEntity)
	}
	if entry.X != nil {
		results.SetX(*entry.X)
	}

	var effects []Effect
	switch entry.Kind {
	case StackEntrySpell:
		effects = card.Face.SpellEffects
	case StackEntryActivated:
		effects = db.MustAbility(entry.Ability).Def.Effects
	case StackEntryTriggered:
		effects = entry.Trigger.Effects
	}

	session := results.Session()
	fizzled := false
	if n := countTargetsChosen(entry.Targets); n > 0 {
		valid := revalidateTargets(db, effects, entry, session)
		if countTargetsChosen(valid) == 0 {
			fizzled = true
		}
		entry.Targets = valid
	}

	if fizzled {
		db.Logger().Debug("stack entry fizzled")
		if entry.Kind == StackEntrySpell && !entry.Copy {
			results.PushSettled(StackToGraveyard{Card: entry.Card})
		}
		return results, nil
	}

	// Target groups are stored in the order they were chosen at cast:
	// top-level targeting effects first, then the targeting effects of each
	// recorded mode.
	group := 0
	modeGroup := 0
	for _, effect := range effects {
		if effect.WantsTargets(db, entry.Card) > 0 {
			modeGroup++
		}
	}
	modeIdx := 0
	for _, effect := range effects {
		if effect.WantsTargets(db, entry.Card) > 0 {
			var targets []ActiveTarget
			if group < len(entry.Targets) {
				targets = entry.Targets[group]
			}
			group++
			if len(targets) > 0 || entry.Kind == StackEntrySpell || entry.Kind == StackEntryActivated {
				effect.PushBehaviorWithTargets(db, targets, entry.Card, entry.Controller, results)
			} else {
				// Triggered abilities pick targets as they resolve.
				results.PushChooseTargets(NewChooseTargets(db, effect, entry.Card, entry.Controller))
			}
			continue
		}
		if ms, ok := effect.(ModalSource); ok {
			mode, recorded := recordedMode(ms, entry.Modes, modeIdx)
			modeIdx++
			if !recorded {
				// No mode on the entry (a trigger's modal effect): ask now.
				results.PushChooseMode(NewChooseModes(entry.Card, entry.Controller, ms.ModeList()))
				continue
			}
			for _, sub := range mode.Effects {
				if sub.WantsTargets(db, entry.Card) > 0 {
					var targets []ActiveTarget
					if modeGroup < len(entry.Targets) {
						targets = entry.Targets[modeGroup]
					}
					modeGroup++
					sub.PushBehaviorWithTargets(db, targets, entry.Card, entry.Controller, results)
				} else {
					sub.PushPendingBehavior(db, entry.Card, entry.Controller, results)
				}
			}
			continue
		}
		effect.PushPendingBehavior(db, entry.Card, entry.Controller, results)
	}

	switch entry.Kind {
	case StackEntrySpell:
		db.Log.LogSpellResolved(entry.Card, entry.Controller)
		switch {
		case entry.Copy && card.Face.IsPermanent():
			// A copy of a permanent spell becomes a token of it.
			results.PushSettled(CreateTokenCopy{Controller: entry.Controller, Copying: entry.Card})
		case entry.Copy:
			// A copy of an instant or sorcery just ceases to exist.
		case card.Face.IsPermanent():
			results.PushSettled(AddToBattlefield{Card: entry.Card})
		default:
			results.PushSettled(StackToGraveyard{Card: entry.Card})
		}
	}
	return results, nil
}

// CounterStackEntry counters the stack entry with the given id.
func CounterStackEntry(db *Database, id string) (*PendingResults, error) {
	if _, ok := db.Stack.Entry(id); !ok {
		return nil, fmt.Errorf("counter stack entry %s: %w", id, ErrNoSuchEntity)
	}
	results := NewPendingResults(db)
	results.PushSettled(CounterSpell{StackID: id})
	return results, nil
}

// RemoveIllegalEntries drops stack entries that can no longer resolve: the
// entry's card is gone, or a non-copy entry's card has left the stack zone
// (an ability source leaving is fine, the ability resolves independently).
// Returns the removed entries, bottom first.
func RemoveIllegalEntries(db *Database) []StackEntry {
	var removed []StackEntry
	for _, entry := range db.Stack.List() {
		card, ok := db.Card(entry.Card)
		illegal := !ok
		if ok && entry.Kind == StackEntrySpell && !entry.Copy && card.Zone != targeting.LocationStack {
			illegal = true
		}
		if illegal {
			db.Stack.Remove(entry.ID)
			db.Logger().Debug("removed illegal stack entry", zap.String("entry", entry.ID))
			removed = append(removed, entry)
		}
	}
	return removed
}

// recordedMode looks up the mode recorded on the entry for the idx'th modal
// effect. Reports false when no mode was recorded, as for a trigger whose
// modal effect picks its mode on resolution.
func recordedMode(ms ModalSource, recorded []int, idx int) (Mode, bool) {
	if idx >= len(recorded) {
		return Mode{}, false
	}
	modes := ms.ModeList()
	pick := recorded[idx]
	if pick < 0 || pick >= len(modes) {
		return Mode{}, false
	}
	return modes[pick], true
}

// targetingSlots lists the effects that own a target group on the entry, in
// group order: top-level targeting effects first, then the targeting effects
// of each recorded mode.
func targetingSlots(db *Database, effects []Effect, entry StackEntry) []Effect {
	var slots []Effect
	for _, effect := range effects {
		if effect.WantsTargets(db, entry.Card) > 0 {
			slots = append(slots, effect)
		}
	}
	modeIdx := 0
	for _, effect := range effects {
		ms, ok := effect.(ModalSource)
		if !ok {
			continue
		}
		mode, recorded := recordedMode(ms, entry.Modes, modeIdx)
		modeIdx++
		if !recorded {
			continue
		}
		for _, sub := range mode.Effects {
			if sub.WantsTargets(db, entry.Card) > 0 {
				slots = append(slots, sub)
			}
		}
	}
	return slots
}

// revalidateTargets recomputes each targeting effect's valid set and keeps
// only the chosen targets still inside it.
func revalidateTargets(db *Database, effects []Effect, entry StackEntry, session LogID) [][]ActiveTarget {
	out := make([][]ActiveTarget, len(entry.Targets))
	for group, effect := range targetingSlots(db, effects, entry) {
		if group >= len(entry.Targets) {
			break
		}
		valid := effect.ValidTargets(db, entry.Card, session, entry.Controller, map[ActiveTarget]struct{}{})
		validSet := make(map[ActiveTarget]struct{}, len(valid))
		for _, t := range valid {
			validSet[t] = struct{}{}
		}
		for _, chosen := range entry.Targets[group] {
			if _, ok := validSet[chosen]; ok {
				out[group] = append(out[group], chosen)
			}
		}
	}
	return out
}

func countTargetsChosen(groups [][]ActiveTarget) int {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	return n
}

func containsAbility(haystack []AbilityID, needle AbilityID) bool {
	for _, id := range haystack {
		if id == needle {
			return true
		}
	}
	return false
}
