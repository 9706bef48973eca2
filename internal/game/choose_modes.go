package game

// ChooseModes selects one mode of a modal spell or ability and queues the
// chosen mode's effects.
type ChooseModes struct {
	source     CardID
	controller PlayerID
	modes      []Mode
	chosen     *int
}

// NewChooseModes creates a mode-selection step.
func NewChooseModes(source CardID, controller PlayerID, modes []Mode) *ChooseModes {
	return &ChooseModes{source: source, controller: controller, modes: modes}
}

func (c *ChooseModes) RecomputeTargets(db *Database, alreadyChosen map[ActiveTarget]struct{}) bool {
	return false
}

func (c *ChooseModes) Options(db *Database) Options {
	choices := make([]Choice, 0, len(c.modes))
	for i, mode := range c.modes {
		choices = append(choices, Choice{Index: i, Label: mode.Label})
	}
	return Options{Kind: OptionsMandatory, Choices: choices}
}

func (c *ChooseModes) TargetForOption(db *Database, option int) (ActiveTarget, bool) {
	return ActiveTarget{}, false
}

func (c *ChooseModes) Description(db *Database) string { return "choose a mode" }

func (c *ChooseModes) IsEmpty() bool { return c.chosen != nil || len(c.modes) == 0 }

func (c *ChooseModes) skipWhenEmpty() bool { return true }

func (c *ChooseModes) Cancelable(db *Database) bool { return true }

func (c *ChooseModes) MakeChoice(db *Database, choice *int, results *PendingResults) bool {
	if choice == nil {
		return false
	}
	if *choice < 0 || *choice >= len(c.modes) {
		return false
	}
	c.chosen = choice
	results.PushChosenMode(*choice)
	mode := c.modes[*choice]
	for _, effect := range mode.Effects {
		if effect.WantsTargets(db, c.source) > 0 {
			results.PushChooseTargets(NewChooseTargets(db, effect, c.source, c.controller))
		} else if !results.stackPending() {
			// Effects of a spell being cast wait on the stack; only
			// immediately-resolving modes dispatch now.
			effect.PushPendingBehavior(db, c.source, c.controller, results)
		}
	}
	return true
}
