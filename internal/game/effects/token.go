package effects

import (
	"github.com/Jesterhearts/piece-go/internal/game"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// CreateToken creates a token under the controller's control.
type CreateToken struct {
	game.NonTargeting
	Face  game.CardFace
	Count int
}

func (e CreateToken) count() int {
	if e.Count <= 0 {
		return 1
	}
	return e.Count
}

func (e CreateToken) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	for i := 0; i < e.count(); i++ {
		results.PushSettled(game.CreateToken{Controller: controller, Face: e.Face})
	}
}

func (e CreateToken) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}

func (e CreateToken) Description() string { return "create a token" }

// CopyTargetAsToken creates a token copy of a chosen permanent, optionally
// entering with extra counters.
type CopyTargetAsToken struct {
	Restrictions []targeting.Restriction
	Counters     []game.AddCounters
}

func (e CopyTargetAsToken) NeedsTargets(db *game.Database, source game.CardID) int { return 1 }
func (e CopyTargetAsToken) WantsTargets(db *game.Database, source game.CardID) int { return 1 }

func (e CopyTargetAsToken) ValidTargets(
	db *game.Database,
	source game.CardID,
	session game.LogID,
	controller game.PlayerID,
	alreadyChosen map[game.ActiveTarget]struct{},
) []game.ActiveTarget {
	return battlefieldTargets(db, source, session, e.Restrictions, alreadyChosen)
}

func (e CopyTargetAsToken) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushChooseTargets(game.NewChooseTargets(db, e, source, controller))
}

func (e CopyTargetAsToken) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	for _, target := range targets {
		counters := make([]game.AddCounters, len(e.Counters))
		copy(counters, e.Counters)
		results.PushSettled(game.CreateTokenCopy{
			Controller: controller,
			Copying:    target.Card,
			Counters:   counters,
		})
	}
}

func (e CopyTargetAsToken) Description() string { return "create a token copy of target" }
