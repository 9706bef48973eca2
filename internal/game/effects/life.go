package effects

import (
	"fmt"

	"github.com/Jesterhearts/piece-go/internal/game"
)

// ControllerGainsLife adds life for the effect's controller.
type ControllerGainsLife struct {
	game.NonTargeting
	Amount int
}

func (e ControllerGainsLife) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushSettled(game.GainLife{Player: controller, Amount: e.Amount})
}

func (e ControllerGainsLife) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}

func (e ControllerGainsLife) Description() string { return fmt.Sprintf("gain %d life", e.Amount) }

// EachOpponentLosesLife drains life from every opponent of the controller.
type EachOpponentLosesLife struct {
	game.NonTargeting
	Amount int
}

func (e EachOpponentLosesLife) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	for _, opponent := range db.Opponents(controller) {
		results.PushSettled(game.LoseLife{Player: opponent, Amount: e.Amount})
	}
}

func (e EachOpponentLosesLife) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}

func (e EachOpponentLosesLife) Description() string {
	return fmt.Sprintf("each opponent loses %d life", e.Amount)
}
