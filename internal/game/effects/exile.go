package effects

import (
	"github.com/Jesterhearts/piece-go/internal/game"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// ExileTarget exiles a chosen permanent. With UntilSourceLeaves set the
// exiled card returns to the battlefield when the effect's source leaves.
type ExileTarget struct {
	Restrictions      []targeting.Restriction
	UntilSourceLeaves bool
}

func (e ExileTarget) NeedsTargets(db *game.Database, source game.CardID) int { return 1 }
func (e ExileTarget) WantsTargets(db *game.Database, source game.CardID) int { return 1 }

func (e ExileTarget) ValidTargets(
	db *game.Database,
	source game.CardID,
	session game.LogID,
	controller game.PlayerID,
	alreadyChosen map[game.ActiveTarget]struct{},
) []game.ActiveTarget {
	return battlefieldTargets(db, source, session, e.Restrictions, alreadyChosen)
}

func (e ExileTarget) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushChooseTargets(game.NewChooseTargets(db, e, source, controller))
}

func (e ExileTarget) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	for _, target := range targets {
		results.PushSettled(game.ExileTarget{
			Card:              target.Card,
			Source:            source,
			UntilSourceLeaves: e.UntilSourceLeaves,
		})
	}
}

func (e ExileTarget) Description() string { return "exile target permanent" }
