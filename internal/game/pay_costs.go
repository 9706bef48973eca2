package game

import (
	"fmt"

	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// PayCosts bundles the non-mana components of an ability or spell cost into
// pending steps. Cost steps sit at the front of the queue so every cost is
// fully paid before the effect's own choices begin, and once any cost
// payment applies, the action can no longer be cancelled.

// TapThisCost taps the ability's source as a cost.
type TapThisCost struct {
	source CardID
	paid   bool
}

// NewTapThisCost creates a tap-cost step for the source permanent.
func NewTapThisCost(source CardID) *TapThisCost {
	return &TapThisCost{source: source}
}

func (t *TapThisCost) RecomputeTargets(db *Database, alreadyChosen map[ActiveTarget]struct{}) bool {
	return false
}

func (t *TapThisCost) Options(db *Database) Options {
	return Options{Kind: OptionsOptional}
}

func (t *TapThisCost) TargetForOption(db *Database, option int) (ActiveTarget, bool) {
	return ActiveTarget{}, false
}

func (t *TapThisCost) Description(db *Database) string {
	return fmt.Sprintf("tap %s", db.MustCard(t.source).Face.Name)
}

func (t *TapThisCost) IsEmpty() bool { return t.paid }

func (t *TapThisCost) Cancelable(db *Database) bool { return !t.paid }

func (t *TapThisCost) MakeChoice(db *Database, choice *int, results *PendingResults) bool {
	t.paid = true
	results.PushSettled(TapPermanent{Card: t.source})
	return true
}

// PayLife pays life as a cost.
type PayLife struct {
	player PlayerID
	amount int
	paid   bool
}

// NewPayLife creates a pay-life cost step.
func NewPayLife(player PlayerID, amount int) *PayLife {
	return &PayLife{player: player, amount: amount}
}

func (p *PayLife) RecomputeTargets(db *Database, alreadyChosen map[ActiveTarget]struct{}) bool {
	return false
}

func (p *PayLife) Options(db *Database) Options {
	return Options{Kind: OptionsOptional}
}

func (p *PayLife) TargetForOption(db *Database, option int) (ActiveTarget, bool) {
	return ActiveTarget{}, false
}

func (p *PayLife) Description(db *Database) string {
	return fmt.Sprintf("pay %d life", p.amount)
}

func (p *PayLife) IsEmpty() bool { return p.paid || p.amount == 0 }

func (p *PayLife) Cancelable(db *Database) bool { return !p.paid }

func (p *PayLife) MakeChoice(db *Database, choice *int, results *PendingResults) bool {
	p.paid = true
	results.PushSettled(LoseLife{Player: p.player, Amount: p.amount})
	return true
}

// SacrificeThisCost sacrifices the ability's own source as a cost.
type SacrificeThisCost struct {
	source CardID
	paid   bool
}

// NewSacrificeThisCost creates a sacrifice-self cost step.
func NewSacrificeThisCost(source CardID) *SacrificeThisCost {
	return &SacrificeThisCost{source: source}
}

func (s *SacrificeThisCost) RecomputeTargets(db *Database, alreadyChosen map[ActiveTarget]struct{}) bool {
	return false
}

func (s *SacrificeThisCost) Options(db *Database) Options {
	return Options{Kind: OptionsOptional}
}

func (s *SacrificeThisCost) TargetForOption(db *Database, option int) (ActiveTarget, bool) {
	return ActiveTarget{}, false
}

func (s *SacrificeThisCost) Description(db *Database) string {
	return fmt.Sprintf("sacrifice %s", db.MustCard(s.source).Face.Name)
}

func (s *SacrificeThisCost) IsEmpty() bool { return s.paid }

func (s *SacrificeThisCost) Cancelable(db *Database) bool { return !s.paid }

func (s *SacrificeThisCost) MakeChoice(db *Database, choice *int, results *PendingResults) bool {
	s.paid = true
	results.PushInvalidTarget(BattlefieldTarget(s.source))
	results.PushSettled(PermanentToGraveyard{Card: s.source, Reason: LeaveSacrificed})
	return true
}

// SacrificePermanent chooses and sacrifices a permanent matching the cost's
// restrictions.
type SacrificePermanent struct {
	source       CardID
	controller   PlayerID
	restrictions []targeting.Restriction
	valid        []CardID
	chosen       *CardID
}

// NewSacrificePermanent creates a sacrifice-cost step; the restrictions are
// evaluated from the perspective of the ability's source.
func NewSacrificePermanent(source CardID, controller PlayerID, restrictions []targeting.Restriction) *SacrificePermanent {
	return &SacrificePermanent{source: source, controller: controller, restrictions: restrictions}
}

func (s *SacrificePermanent) RecomputeTargets(db *Database, alreadyChosen map[ActiveTarget]struct{}) bool {
	session := db.Log.CurrentSession()
	var valid []CardID
	for _, id := range db.MustPlayer(s.controller).Battlefield {
		if !db.PassesRestrictions(id, session, s.source, s.restrictions) {
			continue
		}
		if _, claimed := alreadyChosen[BattlefieldTarget(id)]; claimed {
			continue
		}
		valid = append(valid, id)
	}
	changed := len(valid) != len(s.valid)
	if !changed {
		for i := range valid {
			if valid[i] != s.valid[i] {
				changed = true
				break
			}
		}
	}
	s.valid = valid
	return changed
}

func (s *SacrificePermanent) Options(db *Database) Options {
	choices := make([]Choice, 0, len(s.valid))
	for i, id := range s.valid {
		choices = append(choices, Choice{Index: i, Label: db.MustCard(id).Face.Name})
	}
	return Options{Kind: OptionsMandatory, Choices: choices}
}

func (s *SacrificePermanent) TargetForOption(db *Database, option int) (ActiveTarget, bool) {
	if option < 0 || option >= len(s.valid) {
		return ActiveTarget{}, false
	}
	return BattlefieldTarget(s.valid[option]), true
}

func (s *SacrificePermanent) Description(db *Database) string {
	return "choose a permanent to sacrifice"
}

func (s *SacrificePermanent) IsEmpty() bool { return s.chosen != nil }

func (s *SacrificePermanent) Cancelable(db *Database) bool { return s.chosen == nil }

func (s *SacrificePermanent) MakeChoice(db *Database, choice *int, results *PendingResults) bool {
	if choice == nil {
		if len(s.valid) == 1 {
			zero := 0
			choice = &zero
		} else {
			return false
		}
	}
	if *choice < 0 || *choice >= len(s.valid) {
		return false
	}
	id := s.valid[*choice]
	s.chosen = &id
	results.PushInvalidTarget(BattlefieldTarget(id))
	results.PushSettled(PermanentToGraveyard{Card: id, Reason: LeaveSacrificed})
	return true
}
