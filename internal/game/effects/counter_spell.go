package effects

import "github.com/Jesterhearts/piece-go/internal/game"

// CounterTargetSpell counters a spell on the stack.
type CounterTargetSpell struct{}

func (e CounterTargetSpell) NeedsTargets(db *game.Database, source game.CardID) int { return 1 }
func (e CounterTargetSpell) WantsTargets(db *game.Database, source game.CardID) int { return 1 }

func (e CounterTargetSpell) ValidTargets(
	db *game.Database,
	source game.CardID,
	session game.LogID,
	controller game.PlayerID,
	alreadyChosen map[game.ActiveTarget]struct{},
) []game.ActiveTarget {
	var out []game.ActiveTarget
	for _, entry := range db.Stack.List() {
		if entry.Kind != game.StackEntrySpell {
			continue
		}
		// A spell cannot counter itself.
		if entry.Card == source {
			continue
		}
		target := game.StackTarget(entry.ID)
		if _, claimed := alreadyChosen[target]; claimed {
			continue
		}
		out = append(out, target)
	}
	return out
}

func (e CounterTargetSpell) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushChooseTargets(game.NewChooseTargets(db, e, source, controller))
}

func (e CounterTargetSpell) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	for _, target := range targets {
		results.PushSettled(game.CounterSpell{StackID: target.StackID})
	}
}

func (e CounterTargetSpell) Description() string { return "counter target spell" }

// CopyTargetSpell copies a spell on the stack; the copier controls the copy,
// which keeps the original's targets.
type CopyTargetSpell struct{}

func (e CopyTargetSpell) NeedsTargets(db *game.Database, source game.CardID) int { return 1 }
func (e CopyTargetSpell) WantsTargets(db *game.Database, source game.CardID) int { return 1 }

func (e CopyTargetSpell) ValidTargets(
	db *game.Database,
	source game.CardID,
	session game.LogID,
	controller game.PlayerID,
	alreadyChosen map[game.ActiveTarget]struct{},
) []game.ActiveTarget {
	var out []game.ActiveTarget
	for _, entry := range db.Stack.List() {
		if entry.Kind != game.StackEntrySpell || entry.Card == source {
			continue
		}
		target := game.StackTarget(entry.ID)
		if _, claimed := alreadyChosen[target]; claimed {
			continue
		}
		out = append(out, target)
	}
	return out
}

func (e CopyTargetSpell) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushChooseTargets(game.NewChooseTargets(db, e, source, controller))
}

func (e CopyTargetSpell) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	for _, target := range targets {
		results.PushSettled(game.CopyStackEntry{StackID: target.StackID, Controller: controller})
	}
}

func (e CopyTargetSpell) Description() string { return "copy target spell" }
