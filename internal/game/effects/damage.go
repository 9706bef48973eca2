package effects

import (
	"fmt"

	"github.com/Jesterhearts/piece-go/internal/game"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// DealDamage deals a fixed amount of damage to each chosen target. Targets
// are battlefield permanents matching the restrictions, plus players when
// AnyTarget is set.
type DealDamage struct {
	Amount       int
	Restrictions []targeting.Restriction
	AnyTarget    bool
	// Count is the number of targets; zero means one.
	Count int
}

func (e DealDamage) count() int {
	if e.Count <= 0 {
		return 1
	}
	return e.Count
}

func (e DealDamage) NeedsTargets(db *game.Database, source game.CardID) int { return e.count() }
func (e DealDamage) WantsTargets(db *game.Database, source game.CardID) int { return e.count() }

func (e DealDamage) ValidTargets(
	db *game.Database,
	source game.CardID,
	session game.LogID,
	controller game.PlayerID,
	alreadyChosen map[game.ActiveTarget]struct{},
) []game.ActiveTarget {
	out := battlefieldTargets(db, source, session, e.Restrictions, alreadyChosen)
	if e.AnyTarget {
		out = append(out, playerTargets(db, alreadyChosen)...)
	}
	return out
}

func (e DealDamage) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushChooseTargets(game.NewChooseTargets(db, e, source, controller))
}

func (e DealDamage) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	for _, target := range targets {
		results.PushSettled(game.DamageTarget{Target: target, Amount: e.Amount, Source: source})
	}
}

func (e DealDamage) Description() string {
	return fmt.Sprintf("deal %d damage", e.Amount)
}

// DealXDamage deals damage equal to the X chosen when its source was cast.
// X is paid in life, so the cap is the controller's life total.
type DealXDamage struct {
	Restrictions []targeting.Restriction
	AnyTarget    bool
}

func (e DealXDamage) NeedsTargets(db *game.Database, source game.CardID) int { return 1 }
func (e DealXDamage) WantsTargets(db *game.Database, source game.CardID) int { return 1 }

func (e DealXDamage) MaxX(db *game.Database, source game.CardID) int {
	life := db.MustPlayer(db.MustCard(source).Controller).Life
	if life < 0 {
		return 0
	}
	return life
}

func (e DealXDamage) ValidTargets(
	db *game.Database,
	source game.CardID,
	session game.LogID,
	controller game.PlayerID,
	alreadyChosen map[game.ActiveTarget]struct{},
) []game.ActiveTarget {
	out := battlefieldTargets(db, source, session, e.Restrictions, alreadyChosen)
	if e.AnyTarget {
		out = append(out, playerTargets(db, alreadyChosen)...)
	}
	return out
}

func (e DealXDamage) PushPendingBehavior(db *game.Database, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	results.PushChooseTargets(game.NewChooseTargets(db, e, source, controller))
}

func (e DealXDamage) PushBehaviorWithTargets(db *game.Database, targets []game.ActiveTarget, source game.CardID, controller game.PlayerID, results *game.PendingResults) {
	amount := 0
	if x := results.X(); x != nil {
		amount = *x
	}
	for _, target := range targets {
		results.PushSettled(game.DamageTarget{Target: target, Amount: amount, Source: source})
	}
}

func (e DealXDamage) Description() string { return "deal X damage" }
