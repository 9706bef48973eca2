package effects

import (
	"github.com/Jesterhearts/piece-go/internal/game"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// ModifyTarget attaches a continuous effect to a chosen permanent. The
// modifier's duration comes from Spec; until-end-of-turn pump spells and
// permanent auras both route through here.
type ModifyTarget struct {
	Spec         game.ModifierSpec
	Restrictions []targeting.Restriction
}

func (e ModifyTarget) NeedsTargets(db *game.Database, source game.CardID) int { return 1 }
func (e ModifyTarget) WantsTargets(db *game.Database, source game.CardID) int { return 1 }

func (e ModifyTarget) ValidTargets(
	db *game.Database,
	source game.CardID,
	session game.LogID,
	controller game.PlayerID,
	alreadyChosen map[game.ActiveTarget]struct{},
) []game.ActiveTarget {
	return battlefieldTargets(db, source, session, e.Restrictions, alreadyChosen)
}

func (e ModifyTarget) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushChooseTargets(game.NewChooseTargets(db, e, source, controller))
}

func (e ModifyTarget) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	spec := e.Spec
	spec.Scope = game.ScopeAttached
	results.PushSettled(game.ApplyModifierToTargets{Spec: spec, Source: source, Targets: targets})
}

func (e ModifyTarget) Description() string { return "modify target permanent" }

// ModifySelf attaches a continuous effect to the effect's own source.
type ModifySelf struct {
	game.NonTargeting
	Spec game.ModifierSpec
}

func (e ModifySelf) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	spec := e.Spec
	spec.Scope = game.ScopeAttached
	results.PushSettled(game.ApplyModifierToTargets{
		Spec:    spec,
		Source:  source,
		Targets: []game.ActiveTarget{game.BattlefieldTarget(source)},
	})
}

func (e ModifySelf) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}

// BattlefieldModifier applies a continuous effect across the battlefield
// without targeting; Spec's restriction list limits which permanents it
// actually changes.
type BattlefieldModifier struct {
	game.NonTargeting
	Spec game.ModifierSpec
}

func (e BattlefieldModifier) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	spec := e.Spec
	if spec.Scope == game.ScopeAttached {
		spec.Scope = game.ScopeEntireBattlefield
	}
	id := db.UploadTemporaryModifier(source, spec)
	results.PushSettled(game.AddModifier{Modifier: id})
}

func (e BattlefieldModifier) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	e.PushPendingBehavior(db, source, controller, results)
}

func (e BattlefieldModifier) Description() string { return "apply a battlefield-wide effect" }
