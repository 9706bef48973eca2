package game

// organizingStack reorders a set of stack entries. The caller picks entries
// one at a time; picked entries re-enter the stack in pick order, so the
// last picked entry resolves first.
type organizingStack struct {
	remaining []StackEntry
	ordered   []StackEntry
}

func newOrganizingStack(entries []StackEntry) *organizingStack {
	return &organizingStack{remaining: entries}
}

func (o *organizingStack) RecomputeTargets(db *Database, alreadyChosen map[ActiveTarget]struct{}) bool {
	return false
}

func (o *organizingStack) Options(db *Database) Options {
	choices := make([]Choice, 0, len(o.remaining))
	for i, entry := range o.remaining {
		label := "stack entry"
		if card, ok := db.Card(entry.Card); ok {
			label = card.Face.Name
		}
		choices = append(choices, Choice{Index: i, Label: label})
	}
	return Options{Kind: OptionsMandatory, Choices: choices}
}

func (o *organizingStack) TargetForOption(db *Database, option int) (ActiveTarget, bool) {
	if option < 0 || option >= len(o.remaining) {
		return ActiveTarget{}, false
	}
	return StackTarget(o.remaining[option].ID), true
}

func (o *organizingStack) Description(db *Database) string {
	return "choose the next entry to put on the stack"
}

func (o *organizingStack) IsEmpty() bool { return len(o.remaining) == 0 }

func (o *organizingStack) skipWhenEmpty() bool { return true }

func (o *organizingStack) Cancelable(db *Database) bool { return false }

func (o *organizingStack) MakeChoice(db *Database, choice *int, results *PendingResults) bool {
	if choice == nil {
		if len(o.remaining) == 1 {
			zero := 0
			choice = &zero
		} else {
			return false
		}
	}
	if *choice < 0 || *choice >= len(o.remaining) {
		return false
	}
	o.ordered = append(o.ordered, o.remaining[*choice])
	o.remaining = append(o.remaining[:*choice], o.remaining[*choice+1:]...)
	if len(o.remaining) == 0 {
		results.PushSettled(UpdateStackEntries{Entries: o.ordered})
		return true
	}
	return false
}
