package effects

import (
	"github.com/Jesterhearts/piece-go/internal/game"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// ReturnTargetToHand returns a chosen permanent to its owner's hand.
type ReturnTargetToHand struct {
	Restrictions []targeting.Restriction
}

func (e ReturnTargetToHand) NeedsTargets(db *game.Database, source game.CardID) int { return 1 }
func (e ReturnTargetToHand) WantsTargets(db *game.Database, source game.CardID) int { return 1 }

func (e ReturnTargetToHand) ValidTargets(
	db *game.Database,
	source game.CardID,
	session game.LogID,
	controller game.PlayerID,
	alreadyChosen map[game.ActiveTarget]struct{},
) []game.ActiveTarget {
	return battlefieldTargets(db, source, session, e.Restrictions, alreadyChosen)
}

func (e ReturnTargetToHand) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushChooseTargets(game.NewChooseTargets(db, e, source, controller))
}

func (e ReturnTargetToHand) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	for _, target := range targets {
		results.PushSettled(game.ReturnToHand{Card: target.Card})
	}
}

func (e ReturnTargetToHand) Description() string { return "return target to its owner's hand" }

// ReturnSelfToHand returns the effect's source to its owner's hand.
type ReturnSelfToHand struct {
	game.NonTargeting
}

func (e ReturnSelfToHand) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushSettled(game.ReturnToHand{Card: source})
}

func (e ReturnSelfToHand) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}
