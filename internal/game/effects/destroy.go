package effects

import (
	"github.com/Jesterhearts/piece-go/internal/game"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// DestroyTarget destroys a chosen permanent.
type DestroyTarget struct {
	Restrictions []targeting.Restriction
}

func (e DestroyTarget) NeedsTargets(db *game.Database, source game.CardID) int { return 1 }
func (e DestroyTarget) WantsTargets(db *game.Database, source game.CardID) int { return 1 }

func (e DestroyTarget) ValidTargets(
	db *game.Database,
	source game.CardID,
	session game.LogID,
	controller game.PlayerID,
	alreadyChosen map[game.ActiveTarget]struct{},
) []game.ActiveTarget {
	return battlefieldTargets(db, source, session, e.Restrictions, alreadyChosen)
}

func (e DestroyTarget) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushChooseTargets(game.NewChooseTargets(db, e, source, controller))
}

func (e DestroyTarget) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	for _, target := range targets {
		results.PushSettled(game.DestroyTarget{Card: target.Card})
	}
}

func (e DestroyTarget) Description() string { return "destroy target permanent" }

// DestroyEach destroys every permanent matching the restrictions; it does
// not target.
type DestroyEach struct {
	game.NonTargeting
	Restrictions []targeting.Restriction
}

func (e DestroyEach) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushSettled(game.DestroyEach{Source: source, Restrictions: e.Restrictions})
}

func (e DestroyEach) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}

func (e DestroyEach) Description() string { return "destroy each matching permanent" }
