package game

import (
	"sort"

	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// Layer orders continuous-effect application. The set is an ordered,
// extensible enumeration: modifiers apply layer by layer, and within a
// layer by creation timestamp.
type Layer int

const (
	LayerCopy Layer = 1 + iota
	LayerControl
	LayerText
	LayerType
	LayerAbility
	LayerPowerToughness
)

var layerOrder = []Layer{
	LayerCopy,
	LayerControl,
	LayerText,
	LayerType,
	LayerAbility,
	LayerPowerToughness,
}

// ApplyModifiersLayered recomputes the card's modified snapshot: reset to
// the base characteristics (or the cloned face), then fold in every active
// modifier whose scope and restrictions admit the card, in (layer,
// timestamp) order. Callers must invoke this after any mutation that could
// change legality, power/toughness, types or abilities.
func (db *Database) ApplyModifiersLayered(id CardID) {
	card, ok := db.cards[id]
	if !ok {
		return
	}
	onBattlefield := card.Zone == targeting.LocationBattlefield

	base := &card.Face
	if card.Cloning != nil {
		base = card.Cloning
	}

	modified := Modified{
		Types:    append([]string(nil), base.Types...),
		Subtypes: append([]string(nil), base.Subtypes...),
		Keywords: append([]string(nil), base.Keywords...),
		Colors:   append([]string(nil), base.Colors...),
	}
	if base.Power != nil {
		p := *base.Power
		modified.Power = &p
	}
	if base.Toughness != nil {
		t := *base.Toughness
		modified.Toughness = &t
	}
	modified.Activated = append(modified.Activated, card.baseActivated...)
	modified.Triggered = append(modified.Triggered, base.Triggered...)

	candidates := make([]*Modifier, 0)
	for _, modID := range db.modifierOrder {
		mod := db.modifiers[modID]
		if !mod.Active {
			continue
		}
		switch mod.Spec.Scope {
		case ScopeGlobal:
		case ScopeEntireBattlefield:
			if !onBattlefield {
				continue
			}
		case ScopeAttached:
			if _, attached := mod.Modifying[id]; !attached {
				continue
			}
		}
		candidates = append(candidates, mod)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Spec.Layer != candidates[j].Spec.Layer {
			return candidates[i].Spec.Layer < candidates[j].Spec.Layer
		}
		return candidates[i].Timestamp < candidates[j].Timestamp
	})

	for _, layer := range layerOrder {
		for _, mod := range candidates {
			if mod.Spec.Layer != layer {
				continue
			}
			if !db.passesGivenAttributes(id, db.Log.CurrentSession(), mod.Source, mod.Spec.Restrictions, card, &modified) {
				continue
			}
			applyModifierToSnapshot(mod, &modified)
		}
	}

	card.Modified = modified
}

func applyModifierToSnapshot(mod *Modifier, snapshot *Modified) {
	spec := &mod.Spec

	for _, t := range spec.AddTypes {
		if !containsString(snapshot.Types, t) {
			snapshot.Types = append(snapshot.Types, t)
		}
	}
	if spec.RemoveAllSubtypes {
		snapshot.Subtypes = nil
	}
	for _, s := range spec.AddSubtypes {
		if !containsString(snapshot.Subtypes, s) {
			snapshot.Subtypes = append(snapshot.Subtypes, s)
		}
	}

	if spec.RemoveAllAbilities {
		snapshot.Activated = nil
		snapshot.Keywords = nil
	}
	for _, k := range spec.AddKeywords {
		if !containsString(snapshot.Keywords, k) {
			snapshot.Keywords = append(snapshot.Keywords, k)
		}
	}
	if len(spec.RemoveKeywords) > 0 {
		kept := snapshot.Keywords[:0]
		for _, k := range snapshot.Keywords {
			if !containsString(spec.RemoveKeywords, k) {
				kept = append(kept, k)
			}
		}
		snapshot.Keywords = kept
	}
	snapshot.Activated = append(snapshot.Activated, mod.grantedAbilities...)

	if spec.SetPower != nil {
		p := *spec.SetPower
		snapshot.Power = &p
	}
	if spec.SetToughness != nil {
		t := *spec.SetToughness
		snapshot.Toughness = &t
	}
	if snapshot.Power != nil {
		p := *snapshot.Power + spec.AddPower
		snapshot.Power = &p
	}
	if snapshot.Toughness != nil {
		t := *snapshot.Toughness + spec.AddToughness
		snapshot.Toughness = &t
	}
}

// RecomputeAll re-derives every live card's modified snapshot. Invoked
// after batched mutations so later rule queries never read stale state.
func (db *Database) RecomputeAll() {
	for _, id := range db.Cards() {
		db.ApplyModifiersLayered(id)
	}
}
