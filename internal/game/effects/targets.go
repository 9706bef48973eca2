// Package effects is the catalog of concrete game effects. Every effect
// implements game.Effect: target computation is always derived fresh from
// the database, and behaviors settle into ActionResults or enqueue further
// pending work instead of mutating state directly.
package effects

import (
	"github.com/Jesterhearts/piece-go/internal/game"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// battlefieldTargets computes battlefield targets matching the restrictions,
// excluding targets already claimed in the same resolution.
func battlefieldTargets(
	db *game.Database,
	source game.CardID,
	session game.LogID,
	restrictions []targeting.Restriction,
	alreadyChosen map[game.ActiveTarget]struct{},
) []game.ActiveTarget {
	var out []game.ActiveTarget
	for _, id := range db.Battlefield() {
		if !db.PassesRestrictions(id, session, source, restrictions) {
			continue
		}
		target := game.BattlefieldTarget(id)
		if _, claimed := alreadyChosen[target]; claimed {
			continue
		}
		out = append(out, target)
	}
	return out
}

// playerTargets computes player targets, excluding already-claimed ones.
func playerTargets(db *game.Database, alreadyChosen map[game.ActiveTarget]struct{}) []game.ActiveTarget {
	var out []game.ActiveTarget
	for _, id := range db.PlayersAPNAP() {
		target := game.PlayerTarget(id)
		if _, claimed := alreadyChosen[target]; claimed {
			continue
		}
		out = append(out, target)
	}
	return out
}

// graveyardTargets computes graveyard targets matching the restrictions.
func graveyardTargets(
	db *game.Database,
	source game.CardID,
	session game.LogID,
	restrictions []targeting.Restriction,
	alreadyChosen map[game.ActiveTarget]struct{},
) []game.ActiveTarget {
	var out []game.ActiveTarget
	for _, pid := range db.PlayersAPNAP() {
		for _, id := range db.CardsInZone(pid, targeting.LocationGraveyard) {
			if !db.PassesRestrictions(id, session, source, restrictions) {
				continue
			}
			target := game.GraveyardTarget(id)
			if _, claimed := alreadyChosen[target]; claimed {
				continue
			}
			out = append(out, target)
		}
	}
	return out
}
