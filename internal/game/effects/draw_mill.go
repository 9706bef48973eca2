package effects

import (
	"fmt"

	"github.com/Jesterhearts/piece-go/internal/game"
)

// ControllerDraws draws cards for the effect's controller.
type ControllerDraws struct {
	game.NonTargeting
	Count int
}

func (e ControllerDraws) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushSettled(game.DrawCards{Player: controller, Count: e.Count})
}

func (e ControllerDraws) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}

func (e ControllerDraws) Description() string { return fmt.Sprintf("draw %d cards", e.Count) }

// TargetPlayerDraws draws cards for a chosen player.
type TargetPlayerDraws struct {
	Count int
}

func (e TargetPlayerDraws) NeedsTargets(db *game.Database, source game.CardID) int { return 1 }
func (e TargetPlayerDraws) WantsTargets(db *game.Database, source game.CardID) int { return 1 }

func (e TargetPlayerDraws) ValidTargets(
	db *game.Database,
	source game.CardID,
	session game.LogID,
	controller game.PlayerID,
	alreadyChosen map[game.ActiveTarget]struct{},
) []game.ActiveTarget {
	return playerTargets(db, alreadyChosen)
}

func (e TargetPlayerDraws) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushChooseTargets(game.NewChooseTargets(db, e, source, controller))
}

func (e TargetPlayerDraws) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	for _, target := range targets {
		results.PushSettled(game.DrawCards{Player: target.Player, Count: e.Count})
	}
}

func (e TargetPlayerDraws) Description() string {
	return fmt.Sprintf("target player draws %d cards", e.Count)
}

// Mill puts cards from the top of a chosen player's library into their
// graveyard.
type Mill struct {
	Count int
}

func (e Mill) NeedsTargets(db *game.Database, source game.CardID) int { return 1 }
func (e Mill) WantsTargets(db *game.Database, source game.CardID) int { return 1 }

func (e Mill) ValidTargets(
	db *game.Database,
	source game.CardID,
	session game.LogID,
	controller game.PlayerID,
	alreadyChosen map[game.ActiveTarget]struct{},
) []game.ActiveTarget {
	return playerTargets(db, alreadyChosen)
}

func (e Mill) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushChooseTargets(game.NewChooseTargets(db, e, source, controller))
}

func (e Mill) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	for _, target := range targets {
		results.PushSettled(game.Mill{Player: target.Player, Count: e.Count})
	}
}

func (e Mill) Description() string { return fmt.Sprintf("mill %d cards", e.Count) }
