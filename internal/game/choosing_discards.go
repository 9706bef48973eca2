package game

import "fmt"

// ChooseDiscards makes a player pick cards from hand to discard. The hand is
// re-read on every pass, so cards drawn by earlier effects of the same
// resolution are candidates too.
type ChooseDiscards struct {
	controller PlayerID
	count      int
	candidates []CardID
	chosen     []CardID
	primed     bool
}

// NewChooseDiscards creates a discard-selection step for count cards.
func NewChooseDiscards(controller PlayerID, count int) *ChooseDiscards {
	return &ChooseDiscards{controller: controller, count: count}
}

func (c *ChooseDiscards) RecomputeTargets(db *Database, alreadyChosen map[ActiveTarget]struct{}) bool {
	var fresh []CardID
	for _, id := range db.MustPlayer(c.controller).Hand {
		if !c.hasChosen(id) {
			fresh = append(fresh, id)
		}
	}
	changed := !c.primed || len(fresh) != len(c.candidates)
	if !changed {
		for i := range fresh {
			if fresh[i] != c.candidates[i] {
				changed = true
				break
			}
		}
	}
	c.primed = true
	c.candidates = fresh
	return changed
}

func (c *ChooseDiscards) Options(db *Database) Options {
	choices := make([]Choice, 0, len(c.candidates))
	for i, id := range c.candidates {
		choices = append(choices, Choice{Index: i, Label: db.MustCard(id).Face.Name})
	}
	return Options{Kind: OptionsMandatory, Choices: choices}
}

func (c *ChooseDiscards) TargetForOption(db *Database, option int) (ActiveTarget, bool) {
	return ActiveTarget{}, false
}

func (c *ChooseDiscards) Description(db *Database) string {
	return fmt.Sprintf("choose %d cards to discard", c.count-len(c.chosen))
}

func (c *ChooseDiscards) IsEmpty() bool {
	return len(c.chosen) >= c.count || (c.primed && len(c.candidates) == 0)
}

func (c *ChooseDiscards) skipWhenEmpty() bool { return true }

func (c *ChooseDiscards) Cancelable(db *Database) bool { return false }

func (c *ChooseDiscards) MakeChoice(db *Database, choice *int, results *PendingResults) bool {
	if c.IsEmpty() {
		return true
	}
	if choice == nil {
		// A lone candidate for a mandatory discard decides nothing.
		if len(c.candidates) == 1 {
			c.take(db, 0, results)
			return c.IsEmpty()
		}
		return false
	}
	if *choice < 0 || *choice >= len(c.candidates) {
		return false
	}
	c.take(db, *choice, results)
	return c.IsEmpty()
}

func (c *ChooseDiscards) take(db *Database, idx int, results *PendingResults) {
	id := c.candidates[idx]
	c.candidates = append(c.candidates[:idx], c.candidates[idx+1:]...)
	c.chosen = append(c.chosen, id)
	db.Log.LogCardChosen(id)
	results.PushSettled(Discard{Player: c.controller, Cards: []CardID{id}})
}

func (c *ChooseDiscards) hasChosen(id CardID) bool {
	for _, chosen := range c.chosen {
		if chosen == id {
			return true
		}
	}
	return false
}
