package game

import "github.com/Jesterhearts/piece-go/internal/game/targeting"

// ChooseCast offers to cast one of a set of revealed cards without paying
// its mana cost (cascade, discover). Declining sends the candidates to a
// fallback destination.
type ChooseCast struct {
	controller PlayerID
	candidates []CardID
	from       targeting.Location
	// where unchosen/declined cards go
	fallback  targeting.Location
	toBottom  bool
	presented bool
	done      bool
}

// NewChooseCast creates a choose-to-cast step over revealed candidates.
func NewChooseCast(controller PlayerID, candidates []CardID, from, fallback targeting.Location, toBottom bool) *ChooseCast {
	return &ChooseCast{
		controller: controller,
		candidates: candidates,
		from:       from,
		fallback:   fallback,
		toBottom:   toBottom,
	}
}

func (c *ChooseCast) RecomputeTargets(db *Database, alreadyChosen map[ActiveTarget]struct{}) bool {
	return false
}

func (c *ChooseCast) Options(db *Database) Options {
	choices := make([]Choice, 0, len(c.candidates))
	for i, id := range c.candidates {
		choices = append(choices, Choice{Index: i, Label: "cast " + db.MustCard(id).Face.Name})
	}
	return Options{Kind: OptionsOptional, Choices: choices}
}

func (c *ChooseCast) TargetForOption(db *Database, option int) (ActiveTarget, bool) {
	if option < 0 || option >= len(c.candidates) {
		return ActiveTarget{}, false
	}
	return LibraryTarget(c.candidates[option]), true
}

func (c *ChooseCast) Description(db *Database) string {
	return "cast a revealed card without paying its cost"
}

func (c *ChooseCast) IsEmpty() bool { return c.done || len(c.candidates) == 0 }

func (c *ChooseCast) skipWhenEmpty() bool { return true }

func (c *ChooseCast) Cancelable(db *Database) bool { return false }

func (c *ChooseCast) MakeChoice(db *Database, choice *int, results *PendingResults) bool {
	// The offer must surface at least once before an empty choice counts
	// as declining it.
	if choice == nil && !c.presented {
		c.presented = true
		return false
	}
	c.done = true
	var castIdx = -1
	if choice != nil && *choice >= 0 && *choice < len(c.candidates) {
		castIdx = *choice
	}
	for i, id := range c.candidates {
		if i == castIdx {
			results.PushSettled(CastFreely{Card: id, From: c.from})
			continue
		}
		results.PushSettled(MoveCard{Card: id, To: c.fallback, ToBottom: c.toBottom})
	}
	return true
}
