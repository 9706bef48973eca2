package game

import "fmt"

// ChooseTargets drives target selection for one effect. It recomputes its
// valid-target set before every presentation so removed or already-claimed
// targets can never be chosen.
type ChooseTargets struct {
	effect     Effect
	validLeft  []ActiveTarget
	chosen     []ActiveTarget
	source     CardID
	controller PlayerID
	skipped    bool
}

// NewChooseTargets creates a target-selection step for the given effect.
func NewChooseTargets(db *Database, effect Effect, source CardID, controller PlayerID) *ChooseTargets {
	return &ChooseTargets{
		effect:     effect,
		source:     source,
		controller: controller,
	}
}

func (c *ChooseTargets) RecomputeTargets(db *Database, alreadyChosen map[ActiveTarget]struct{}) bool {
	session := db.Log.CurrentSession()
	valid := c.effect.ValidTargets(db, c.source, session, c.controller, alreadyChosen)
	changed := len(valid) != len(c.validLeft)
	if !changed {
		for i := range valid {
			if valid[i] != c.validLeft[i] {
				changed = true
				break
			}
		}
	}
	c.validLeft = valid
	return changed
}

func (c *ChooseTargets) Options(db *Database) Options {
	wants := c.effect.WantsTargets(db, c.source)
	needs := c.effect.NeedsTargets(db, c.source)
	choices := make([]Choice, 0, len(c.validLeft))
	for i, target := range c.validLeft {
		choices = append(choices, Choice{Index: i, Label: target.Display(db)})
	}
	if len(c.chosen) >= needs && wants > needs {
		return Options{Kind: OptionsOptional, Choices: choices}
	}
	if needs == 0 {
		return Options{Kind: OptionsOptional, Choices: choices}
	}
	return Options{Kind: OptionsMandatory, Choices: choices}
}

func (c *ChooseTargets) TargetForOption(db *Database, option int) (ActiveTarget, bool) {
	if option < 0 || option >= len(c.validLeft) {
		return ActiveTarget{}, false
	}
	return c.validLeft[option], true
}

func (c *ChooseTargets) Description(db *Database) string {
	return fmt.Sprintf("targets for %s", EffectDescription(c.effect))
}

func (c *ChooseTargets) IsEmpty() bool {
	return c.skipped || (len(c.validLeft) == 0 && len(c.chosen) == 0)
}

func (c *ChooseTargets) skipWhenEmpty() bool { return true }

// Cancelable: target choices can always be abandoned before anything has
// been applied.
func (c *ChooseTargets) Cancelable(db *Database) bool { return true }

func (c *ChooseTargets) choicesComplete(db *Database) bool {
	wants := c.effect.WantsTargets(db, c.source)
	if len(c.chosen) >= wants {
		return true
	}
	return len(c.validLeft) == 0
}

func (c *ChooseTargets) canSkip(db *Database) bool {
	return len(c.chosen) >= c.effect.NeedsTargets(db, c.source)
}

func (c *ChooseTargets) MakeChoice(db *Database, choice *int, results *PendingResults) bool {
	if choice == nil {
		// With exactly one legal target and at least one still required,
		// the single target is chosen automatically.
		if len(c.validLeft) == 1 && len(c.chosen) < c.effect.NeedsTargets(db, c.source) {
			c.take(0, results)
		} else if c.canSkip(db) {
			c.skipped = true
			c.finish(db, results)
			return true
		} else {
			return false
		}
	} else {
		if *choice < 0 || *choice >= len(c.validLeft) {
			return false
		}
		c.take(*choice, results)
	}

	if c.choicesComplete(db) {
		c.finish(db, results)
		return true
	}
	return false
}

func (c *ChooseTargets) take(index int, results *PendingResults) {
	target := c.validLeft[index]
	c.chosen = append(c.chosen, target)
	results.PushInvalidTarget(target)
	c.validLeft = append(c.validLeft[:index], c.validLeft[index+1:]...)
}

func (c *ChooseTargets) finish(db *Database, results *PendingResults) {
	results.PushEffectTargets(db, c.effect, c.chosen, c.source)
}
