package game

import "fmt"

// ChooseX picks the X value for a spell or ability as it is put on the
// stack. X is paid in life when the choice settles, which bounds it by the
// controller's life total.
type ChooseX struct {
	controller PlayerID
	max        int
	chosen     bool
}

// NewChooseX creates an X-selection step over 0..max.
func NewChooseX(controller PlayerID, max int) *ChooseX {
	return &ChooseX{controller: controller, max: max}
}

func (c *ChooseX) RecomputeTargets(db *Database, alreadyChosen map[ActiveTarget]struct{}) bool {
	return false
}

func (c *ChooseX) Options(db *Database) Options {
	choices := make([]Choice, 0, c.max+1)
	for x := 0; x <= c.max; x++ {
		choices = append(choices, Choice{Index: x, Label: fmt.Sprintf("X=%d", x)})
	}
	return Options{Kind: OptionsMandatory, Choices: choices}
}

func (c *ChooseX) TargetForOption(db *Database, option int) (ActiveTarget, bool) {
	return ActiveTarget{}, false
}

func (c *ChooseX) Description(db *Database) string { return "choose X (paid in life)" }

func (c *ChooseX) IsEmpty() bool { return c.chosen || c.max < 0 }

func (c *ChooseX) skipWhenEmpty() bool { return true }

func (c *ChooseX) Cancelable(db *Database) bool { return true }

func (c *ChooseX) MakeChoice(db *Database, choice *int, results *PendingResults) bool {
	if choice == nil || *choice < 0 || *choice > c.max {
		return false
	}
	c.chosen = true
	results.SetX(*choice)
	if *choice > 0 {
		results.PushSettled(LoseLife{Player: c.controller, Amount: *choice})
	}
	return true
}
