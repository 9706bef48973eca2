package game

// declaringAttackers selects which untapped, non-summoning-sick creatures
// attack. Picks accumulate on the step and settle together when the
// declaration finishes; an empty choice finishes it.
type declaringAttackers struct {
	attacker   PlayerID
	candidates []CardID
	declared   []CardID
	presented  bool
}

func newDeclaringAttackers(db *Database, attacker PlayerID) *declaringAttackers {
	return &declaringAttackers{attacker: attacker}
}

func (d *declaringAttackers) RecomputeTargets(db *Database, alreadyChosen map[ActiveTarget]struct{}) bool {
	var valid []CardID
	for _, id := range db.MustPlayer(d.attacker).Battlefield {
		card := db.MustCard(id)
		if !card.Modified.HasType("Creature") || card.Tapped || card.SummoningSick || card.Attacking {
			continue
		}
		if d.isDeclared(id) {
			continue
		}
		valid = append(valid, id)
	}
	changed := len(valid) != len(d.candidates)
	if !changed {
		for i := range valid {
			if valid[i] != d.candidates[i] {
				changed = true
				break
			}
		}
	}
	d.candidates = valid
	return changed
}

func (d *declaringAttackers) isDeclared(id CardID) bool {
	for _, declared := range d.declared {
		if declared == id {
			return true
		}
	}
	return false
}

func (d *declaringAttackers) Options(db *Database) Options {
	choices := make([]Choice, 0, len(d.candidates))
	for i, id := range d.candidates {
		choices = append(choices, Choice{Index: i, Label: db.MustCard(id).Face.Name})
	}
	return Options{Kind: OptionsOptional, Choices: choices}
}

func (d *declaringAttackers) TargetForOption(db *Database, option int) (ActiveTarget, bool) {
	if option < 0 || option >= len(d.candidates) {
		return ActiveTarget{}, false
	}
	return BattlefieldTarget(d.candidates[option]), true
}

func (d *declaringAttackers) Description(db *Database) string {
	return "declare attackers"
}

func (d *declaringAttackers) IsEmpty() bool { return len(d.candidates) == 0 }

func (d *declaringAttackers) Cancelable(db *Database) bool { return len(d.declared) == 0 }

func (d *declaringAttackers) MakeChoice(db *Database, choice *int, results *PendingResults) bool {
	if choice == nil {
		if !d.presented {
			d.presented = true
			return false
		}
		results.PushSettled(DeclareAttackers{Cards: d.declared})
		return true
	}
	d.presented = true
	if *choice < 0 || *choice >= len(d.candidates) {
		return false
	}
	d.declared = append(d.declared, d.candidates[*choice])
	d.candidates = append(d.candidates[:*choice], d.candidates[*choice+1:]...)
	if len(d.candidates) == 0 {
		results.PushSettled(DeclareAttackers{Cards: d.declared})
		return true
	}
	return false
}
