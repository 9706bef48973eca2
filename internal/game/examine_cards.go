package game

import "github.com/Jesterhearts/piece-go/internal/game/targeting"

// Destination is one place an examined card may be sent, with a cap on how
// many cards may go there.
type Destination struct {
	Location targeting.Location
	Count    int
	ToBottom bool
	Tapped   bool
	sent     int
}

// Label renders the destination for option lists.
func (d *Destination) Label() string {
	if d.ToBottom {
		return "bottom of library"
	}
	return d.Location.String()
}

func (d *Destination) full() bool {
	return d.Count >= 0 && d.sent >= d.Count
}

// ExamineCards presents a set of cards and distributes each to one of a set
// of destinations. It backs scry (top/bottom of library), discard
// (hand→graveyard), surveil and tutoring.
type ExamineCards struct {
	controller   PlayerID
	cards        []CardID
	destinations []*Destination
	reveal       bool
	// selection state: a card picked but not yet routed
	picked *CardID
}

// NewExamineCards creates an examine/distribute step over the given cards.
func NewExamineCards(controller PlayerID, cards []CardID, destinations []*Destination, reveal bool) *ExamineCards {
	return &ExamineCards{
		controller:   controller,
		cards:        cards,
		destinations: destinations,
		reveal:       reveal,
	}
}

func (e *ExamineCards) RecomputeTargets(db *Database, alreadyChosen map[ActiveTarget]struct{}) bool {
	kept := e.cards[:0]
	changed := false
	for _, id := range e.cards {
		if _, ok := db.Card(id); ok {
			kept = append(kept, id)
		} else {
			changed = true
		}
	}
	e.cards = kept
	return changed
}

func (e *ExamineCards) Options(db *Database) Options {
	if e.picked == nil {
		choices := make([]Choice, 0, len(e.cards))
		for i, id := range e.cards {
			choices = append(choices, Choice{Index: i, Label: db.MustCard(id).Face.Name})
		}
		return Options{Kind: OptionsMandatory, Choices: choices}
	}
	var choices []Choice
	for i, dest := range e.destinations {
		if dest.full() {
			continue
		}
		choices = append(choices, Choice{Index: i, Label: dest.Label()})
	}
	return Options{Kind: OptionsMandatory, Choices: choices}
}

func (e *ExamineCards) TargetForOption(db *Database, option int) (ActiveTarget, bool) {
	if e.picked != nil {
		return ActiveTarget{}, false
	}
	if option < 0 || option >= len(e.cards) {
		return ActiveTarget{}, false
	}
	return LibraryTarget(e.cards[option]), true
}

func (e *ExamineCards) Description(db *Database) string {
	if e.picked != nil {
		return "choose where to put " + db.MustCard(*e.picked).Face.Name
	}
	return "choose a card"
}

func (e *ExamineCards) IsEmpty() bool { return e.done() && e.picked == nil }

// done reports whether distribution is over: no cards left, or nowhere left
// to put them.
func (e *ExamineCards) done() bool {
	return len(e.cards) == 0 || e.openDestinations() == 0
}

func (e *ExamineCards) skipWhenEmpty() bool { return true }

func (e *ExamineCards) Cancelable(db *Database) bool { return false }

func (e *ExamineCards) MakeChoice(db *Database, choice *int, results *PendingResults) bool {
	if e.picked == nil {
		if choice == nil {
			// With one card and one open destination nothing is actually
			// being decided.
			if len(e.cards) == 1 && e.openDestinations() == 1 {
				id := e.cards[0]
				e.cards = e.cards[:0]
				e.route(db, id, e.firstOpenDestination(), results)
				return e.done()
			}
			return false
		}
		if *choice < 0 || *choice >= len(e.cards) {
			return false
		}
		id := e.cards[*choice]
		e.cards = append(e.cards[:*choice], e.cards[*choice+1:]...)
		if e.openDestinations() == 1 {
			e.route(db, id, e.firstOpenDestination(), results)
			return e.done()
		}
		e.picked = &id
		return false
	}

	if choice == nil || *choice < 0 || *choice >= len(e.destinations) {
		return false
	}
	dest := e.destinations[*choice]
	if dest.full() {
		return false
	}
	id := *e.picked
	e.picked = nil
	e.route(db, id, dest, results)
	return e.done()
}

func (e *ExamineCards) openDestinations() int {
	n := 0
	for _, dest := range e.destinations {
		if !dest.full() {
			n++
		}
	}
	return n
}

func (e *ExamineCards) firstOpenDestination() *Destination {
	for _, dest := range e.destinations {
		if !dest.full() {
			return dest
		}
	}
	return e.destinations[len(e.destinations)-1]
}

func (e *ExamineCards) route(db *Database, id CardID, dest *Destination, results *PendingResults) {
	dest.sent++
	if e.reveal {
		db.MustCard(id).Revealed = true
	}
	db.Log.LogCardChosen(id)
	results.PushSettled(MoveCard{
		Card:     id,
		To:       dest.Location,
		ToBottom: dest.ToBottom,
		Tapped:   dest.Tapped,
	})
}
