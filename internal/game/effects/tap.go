package effects

import (
	"github.com/Jesterhearts/piece-go/internal/game"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// TapTarget taps a chosen permanent.
type TapTarget struct {
	Restrictions []targeting.Restriction
}

func (e TapTarget) NeedsTargets(db *game.Database, source game.CardID) int { return 1 }
func (e TapTarget) WantsTargets(db *game.Database, source game.CardID) int { return 1 }

func (e TapTarget) ValidTargets(
	db *game.Database,
	source game.CardID,
	session game.LogID,
	controller game.PlayerID,
	alreadyChosen map[game.ActiveTarget]struct{},
) []game.ActiveTarget {
	var out []game.ActiveTarget
	for _, target := range battlefieldTargets(db, source, session, e.Restrictions, alreadyChosen) {
		if db.Tapped(target.Card) {
			continue
		}
		out = append(out, target)
	}
	return out
}

func (e TapTarget) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushChooseTargets(game.NewChooseTargets(db, e, source, controller))
}

func (e TapTarget) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	for _, target := range targets {
		results.PushSettled(game.TapPermanent{Card: target.Card})
	}
}

func (e TapTarget) Description() string { return "tap target permanent" }

// TapThis taps the effect's own source.
type TapThis struct {
	game.NonTargeting
}

func (e TapThis) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushSettled(game.TapPermanent{Card: source})
}

func (e TapThis) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}

// UntapTarget untaps a chosen permanent.
type UntapTarget struct {
	Restrictions []targeting.Restriction
}

func (e UntapTarget) NeedsTargets(db *game.Database, source game.CardID) int { return 1 }
func (e UntapTarget) WantsTargets(db *game.Database, source game.CardID) int { return 1 }

func (e UntapTarget) ValidTargets(
	db *game.Database,
	source game.CardID,
	session game.LogID,
	controller game.PlayerID,
	alreadyChosen map[game.ActiveTarget]struct{},
) []game.ActiveTarget {
	var out []game.ActiveTarget
	for _, target := range battlefieldTargets(db, source, session, e.Restrictions, alreadyChosen) {
		if !db.Tapped(target.Card) {
			continue
		}
		out = append(out, target)
	}
	return out
}

func (e UntapTarget) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushChooseTargets(game.NewChooseTargets(db, e, source, controller))
}

func (e UntapTarget) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	for _, target := range targets {
		results.PushSettled(game.UntapPermanent{Card: target.Card})
	}
}

func (e UntapTarget) Description() string { return "untap target permanent" }
