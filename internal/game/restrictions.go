package game

import (
	"github.com/Jesterhearts/piece-go/internal/game/counters"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// PassesRestrictions reports whether the entity qualifies under the
// restriction list, asked from the perspective of source within the given
// log session. Evaluation is pure with respect to the session snapshot:
// repeated evaluation against unchanged state yields the same answer, so
// callers may recompute target sets after any state-changing sub-step.
func (db *Database) PassesRestrictions(id CardID, session LogID, source CardID, restrictions []targeting.Restriction) bool {
	card, ok := db.cards[id]
	if !ok {
		return false
	}
	return db.passesGivenAttributes(id, session, source, restrictions, card, &card.Modified)
}

// passesGivenAttributes is the core evaluator, parameterized over the
// attribute snapshot so the layered engine can evaluate in-progress
// characteristics while folding modifiers.
func (db *Database) passesGivenAttributes(
	id CardID,
	session LogID,
	source CardID,
	restrictions []targeting.Restriction,
	card *Card,
	attrs *Modified,
) bool {
	for i := range restrictions {
		r := &restrictions[i]
		switch r.Kind {
		case targeting.RestrictionAttacking:
			if !card.Attacking {
				return false
			}

		case targeting.RestrictionCastFromHand:
			if card.CastFrom == nil || *card.CastFrom != targeting.LocationHand {
				return false
			}

		case targeting.RestrictionChosenThisSession:
			if !db.sessionHas(session, EntryCardChosen, id) {
				return false
			}

		case targeting.RestrictionController:
			sourceController := db.MustCard(source).Controller
			switch r.Relation {
			case targeting.ControllerSelf:
				if card.Controller != sourceController {
					return false
				}
			case targeting.ControllerOpponent:
				if card.Controller == sourceController {
					return false
				}
			}

		case targeting.RestrictionControllerHandEmpty:
			if len(db.MustPlayer(card.Controller).Hand) > 0 {
				return false
			}

		case targeting.RestrictionControllerJustCast:
			found := false
			for _, entry := range db.Log.Session(session) {
				if entry.Kind != EntryCast {
					continue
				}
				if cast, ok := db.Card(entry.Card); ok && cast.Controller == card.Controller {
					found = true
					break
				}
			}
			if !found {
				return false
			}

		case targeting.RestrictionCounterCount:
			count := 0
			if r.CounterKind == "" || counters.Kind(r.CounterKind) == counters.KindAny {
				count = card.Counters.Total()
			} else {
				count = card.Counters.Count(r.CounterKind)
			}
			if !r.Compare.Matches(count) {
				return false
			}

		case targeting.RestrictionDuringControllersTurn:
			if card.Controller != db.Turn.ActivePlayer {
				return false
			}

		case targeting.RestrictionEnteredBattlefieldThisTurn:
			entered := 0
			for _, cid := range db.Battlefield() {
				c := db.MustCard(cid)
				if c.EnteredTurn != db.Turn.Number {
					continue
				}
				if db.PassesRestrictions(cid, session, source, r.Nested) {
					entered++
				}
			}
			if entered < r.Count {
				return false
			}

		case targeting.RestrictionHasActivatedAbility:
			if len(attrs.Activated) == 0 {
				return false
			}

		case targeting.RestrictionInGraveyard:
			if card.Zone != targeting.LocationGraveyard {
				return false
			}

		case targeting.RestrictionInLocation:
			matched := false
			for _, loc := range r.Locations {
				if loc.Matches(card.Zone) {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}

		case targeting.RestrictionManaValue:
			if !r.Compare.Matches(card.Face.ManaValue) {
				return false
			}

		case targeting.RestrictionNonToken:
			if card.Token {
				return false
			}

		case targeting.RestrictionNotChosenThisSession:
			if db.sessionHas(session, EntryCardChosen, id) {
				return false
			}

		case targeting.RestrictionNotKeywords:
			for _, k := range r.Keywords {
				if containsString(attrs.Keywords, k) {
					return false
				}
			}

		case targeting.RestrictionNotOfType:
			if len(r.Types) > 0 {
				for _, t := range attrs.Types {
					if containsString(r.Types, t) {
						return false
					}
				}
			}
			if len(r.Subtypes) > 0 {
				for _, s := range attrs.Subtypes {
					if containsString(r.Subtypes, s) {
						return false
					}
				}
			}

		case targeting.RestrictionNotSelf:
			if id == source {
				return false
			}

		case targeting.RestrictionOfType:
			if len(r.Types) > 0 {
				matched := false
				for _, t := range r.Types {
					if containsString(attrs.Types, t) {
						matched = true
						break
					}
				}
				if !matched {
					return false
				}
			}
			if len(r.Subtypes) > 0 {
				matched := false
				for _, s := range r.Subtypes {
					if containsString(attrs.Subtypes, s) {
						matched = true
						break
					}
				}
				if !matched {
					return false
				}
			}

		case targeting.RestrictionOnBattlefield:
			if card.Zone != targeting.LocationBattlefield {
				return false
			}

		case targeting.RestrictionPower:
			power := attrValueWithBoosts(attrs.Power, card, true)
			if power == nil || !r.Compare.Matches(*power) {
				return false
			}

		case targeting.RestrictionSelf:
			if id != source {
				return false
			}

		case targeting.RestrictionTapped:
			if !card.Tapped {
				return false
			}

		case targeting.RestrictionToughness:
			toughness := attrValueWithBoosts(attrs.Toughness, card, false)
			if toughness == nil || !r.Compare.Matches(*toughness) {
				return false
			}
		}
	}
	return true
}

func (db *Database) sessionHas(session LogID, kind EntryKind, card CardID) bool {
	for _, entry := range db.Log.Session(session) {
		if entry.Kind == kind && entry.Card == card {
			return true
		}
	}
	return false
}

func attrValueWithBoosts(base *int, card *Card, power bool) *int {
	if base == nil {
		return nil
	}
	v := *base
	for _, name := range card.Counters.Names() {
		p, t, isBoost := counters.Kind(name).Boost()
		if !isBoost {
			continue
		}
		if power {
			v += p * card.Counters.Count(name)
		} else {
			v += t * card.Counters.Count(name)
		}
	}
	return &v
}
