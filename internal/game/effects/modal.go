package effects

import "github.com/Jesterhearts/piece-go/internal/game"

// Modal presents a choice of modes; the chosen mode's effects are enqueued
// on the pending queue rather than dispatched recursively.
type Modal struct {
	game.NonTargeting
	Modes []game.Mode
}

func (e Modal) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushChooseMode(game.NewChooseModes(source, controller, e.Modes))
}

func (e Modal) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}

// ModeList exposes the modes so a cast can record the pick on its stack
// entry before resolution.
func (e Modal) ModeList() []game.Mode { return e.Modes }

func (e Modal) Description() string { return "choose a mode" }

// Sequence runs a list of effects in order. Each sub-effect is enqueued,
// never invoked recursively, so arbitrarily deep compositions cannot grow
// the call stack.
type Sequence struct {
	game.NonTargeting
	Effects []game.Effect
}

func (e Sequence) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	for _, effect := range e.Effects {
		if effect.WantsTargets(db, source) > 0 {
			results.PushChooseTargets(game.NewChooseTargets(db, effect, source, controller))
		} else {
			effect.PushPendingBehavior(db, source, controller, results)
		}
	}
}

func (e Sequence) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}

// IfControllerHandEmpty chooses between two effect bundles based on whether
// the controller's hand is empty when it settles.
type IfControllerHandEmpty struct {
	game.NonTargeting
	Then []game.Effect
	Else []game.Effect
}

func (e IfControllerHandEmpty) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	branch := e.Else
	if len(db.MustPlayer(controller).Hand) == 0 {
		branch = e.Then
	}
	Sequence{Effects: branch}.PushPendingBehavior(db, source, controller, results)
}

func (e IfControllerHandEmpty) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}
