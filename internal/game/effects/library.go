package effects

import (
	"fmt"

	"github.com/Jesterhearts/piece-go/internal/game"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// Scry examines the top cards of the controller's library and sends each to
// the top or bottom.
type Scry struct {
	game.NonTargeting
	Count int
}

func (e Scry) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushSettled(game.ExamineTopCards{
		Player: controller,
		Count:  e.Count,
		Destinations: []*game.Destination{
			{Location: targeting.LocationLibrary, Count: -1},
			{Location: targeting.LocationLibrary, Count: -1, ToBottom: true},
		},
	})
}

func (e Scry) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}

func (e Scry) Description() string { return fmt.Sprintf("scry %d", e.Count) }

// Surveil examines the top cards and sends each to the graveyard or back on
// top.
type Surveil struct {
	game.NonTargeting
	Count int
}

func (e Surveil) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushSettled(game.ExamineTopCards{
		Player: controller,
		Count:  e.Count,
		Destinations: []*game.Destination{
			{Location: targeting.LocationLibrary, Count: -1},
			{Location: targeting.LocationGraveyard, Count: -1},
		},
	})
}

func (e Surveil) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}

func (e Surveil) Description() string { return fmt.Sprintf("surveil %d", e.Count) }

// DiscardCards makes the controller choose and discard cards from hand.
type DiscardCards struct {
	game.NonTargeting
	Count int
}

func (e DiscardCards) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	if e.Count <= 0 {
		return
	}
	// Candidates are read from the hand as the step runs, not snapshotted
	// here, so cards another effect of the same resolution put there count.
	results.PushChooseDiscards(game.NewChooseDiscards(controller, e.Count))
}

func (e DiscardCards) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}

func (e DiscardCards) Description() string { return fmt.Sprintf("discard %d cards", e.Count) }

// Cascade reveals from the top of the library until a nonland card with
// lower mana value appears and offers to cast it free.
type Cascade struct {
	game.NonTargeting
}

func (e Cascade) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushSettled(game.Cascade{
		Controller: controller,
		ManaValue:  db.MustCard(source).Face.ManaValue,
	})
}

func (e Cascade) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}

func (e Cascade) Description() string { return "cascade" }
