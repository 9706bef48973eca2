package game

import "sort"

type firing struct {
	source     CardID
	trigger    TriggeredAbility
	controller PlayerID
	order      int
}

// QueueTriggers scans the battlefield for triggered abilities listening to
// the event, filters them by their restriction lists against the card that
// caused the event, orders simultaneous firings by the configured policy,
// and queues each onto the stack. Targets for a trigger's effects are
// chosen when the trigger resolves.
func QueueTriggers(db *Database, results *PendingResults, event TriggerSource, subject CardID) {
	session := db.Log.CurrentSession()

	order := make(map[CardID]int, len(db.Cards()))
	for i, id := range db.Cards() {
		order[id] = i
	}

	var firings []firing
	for _, listener := range db.Battlefield() {
		card := db.MustCard(listener)
		for _, trig := range card.Modified.Triggered {
			if trig.Trigger != event {
				continue
			}
			if !db.PassesRestrictions(subject, session, listener, trig.Restrictions) {
				continue
			}
			firings = append(firings, firing{
				source:     listener,
				trigger:    trig,
				controller: card.Controller,
				order:      order[listener],
			})
		}
	}
	if len(firings) == 0 {
		return
	}

	switch db.TriggerOrder {
	case TriggerOrderTimestamp:
		sort.SliceStable(firings, func(i, j int) bool {
			return firings[i].order < firings[j].order
		})
	default:
		rank := make(map[PlayerID]int, len(db.Players()))
		for i, pid := range db.PlayersAPNAP() {
			rank[pid] = i
		}
		sort.SliceStable(firings, func(i, j int) bool {
			if rank[firings[i].controller] != rank[firings[j].controller] {
				return rank[firings[i].controller] < rank[firings[j].controller]
			}
			return firings[i].order < firings[j].order
		})
	}

	for _, f := range firings {
		trig := f.trigger
		results.PushSettled(AddTriggerToStack{Source: f.source, Trigger: &trig})
	}
}
