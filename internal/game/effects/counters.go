package effects

import (
	"fmt"

	"github.com/Jesterhearts/piece-go/internal/game"
	"github.com/Jesterhearts/piece-go/internal/game/counters"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// TargetGainsCounters puts counters on a chosen permanent.
type TargetGainsCounters struct {
	Kind         counters.Kind
	Count        int
	Restrictions []targeting.Restriction
}

func (e TargetGainsCounters) NeedsTargets(db *game.Database, source game.CardID) int { return 1 }
func (e TargetGainsCounters) WantsTargets(db *game.Database, source game.CardID) int { return 1 }

func (e TargetGainsCounters) ValidTargets(
	db *game.Database,
	source game.CardID,
	session game.LogID,
	controller game.PlayerID,
	alreadyChosen map[game.ActiveTarget]struct{},
) []game.ActiveTarget {
	return battlefieldTargets(db, source, session, e.Restrictions, alreadyChosen)
}

func (e TargetGainsCounters) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushChooseTargets(game.NewChooseTargets(db, e, source, controller))
}

func (e TargetGainsCounters) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	for _, target := range targets {
		results.PushSettled(game.AddCounters{Card: target.Card, Kind: e.Kind, Count: e.Count})
	}
}

func (e TargetGainsCounters) Description() string {
	return fmt.Sprintf("put %d %s counters on target", e.Count, e.Kind)
}

// SelfGainsCounters puts counters on the effect's source.
type SelfGainsCounters struct {
	game.NonTargeting
	Kind  counters.Kind
	Count int
}

func (e SelfGainsCounters) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushSettled(game.AddCounters{Card: source, Kind: e.Kind, Count: e.Count})
}

func (e SelfGainsCounters) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}

func (e SelfGainsCounters) Description() string {
	return fmt.Sprintf("put %d %s counters on this", e.Count, e.Kind)
}
