package game

import (
	"math/rand"

	"github.com/Jesterhearts/piece-go/internal/game/targeting"
	"go.uber.org/zap"
)

// ApplyActionResults executes a batch of settled actions against the
// database. It is the single dispatch site for the closed ActionResult set;
// every variant is handled here and nowhere else. The returned resolution
// carries any follow-on work the mutations produced (triggered abilities,
// enter-the-battlefield effects, new choices) and is nil when there is
// none.
func ApplyActionResults(db *Database, session LogID, actions []ActionResult) *PendingResults {
	follow := &PendingResults{
		session:          session,
		allChosenTargets: make(map[ActiveTarget]struct{}),
	}
	for _, action := range actions {
		applyActionResult(db, session, action, follow)
	}
	if follow.IsEmpty() {
		return nil
	}
	return follow
}

func applyActionResult(db *Database, session LogID, action ActionResult, follow *PendingResults) {
	switch a := action.(type) {
	case CastCard:
		card := db.MustCard(a.Card)
		from := a.From
		card.CastFrom = &from
		db.MoveToStackZone(a.Card)
		db.Stack.Push(StackEntry{
			Kind:       StackEntrySpell,
			Card:       a.Card,
			Controller: card.Controller,
			Targets:    a.Targets,
			Modes:      a.Modes,
			X:          a.X,
		})
		db.Log.LogCast(a.Card)
		QueueTriggers(db, follow, TriggerCast, a.Card)

	case CastFreely:
		follow.Extend(CastCardFrom(db, a.Card, a.From))

	case AddAbilityToStack:
		ability := db.MustAbility(a.Ability)
		db.Stack.Push(StackEntry{
			Kind:       StackEntryActivated,
			Card:       a.Source,
			Ability:    a.Ability,
			Controller: db.MustCard(ability.Source).Controller,
			Targets:    a.Targets,
			X:          a.X,
		})
		db.Log.LogAbilityActivated(a.Source)

	case AddTriggerToStack:
		db.Stack.Push(StackEntry{
			Kind:       StackEntryTriggered,
			Card:       a.Source,
			Trigger:    a.Trigger,
			Controller: db.MustCard(a.Source).Controller,
			Targets:    a.Targets,
		})

	case AddCounters:
		if card, ok := db.Card(a.Card); ok {
			card.Counters.Add(string(a.Kind), a.Count)
		}

	case RemoveCounters:
		if card, ok := db.Card(a.Card); ok {
			card.Counters.Remove(string(a.Kind), a.Count)
		}

	case AddModifier:
		db.ActivateModifier(a.Modifier)

	case ApplyModifierToTargets:
		var cards []CardID
		for _, target := range a.Targets {
			if target.Kind == TargetBattlefield {
				if _, ok := db.Card(target.Card); ok {
					cards = append(cards, target.Card)
				}
			}
		}
		if len(cards) == 0 {
			return
		}
		id := db.UploadTemporaryModifier(a.Source, a.Spec)
		db.AttachModifier(id, cards...)

	case AddToBattlefield:
		db.MoveToBattlefield(a.Card, a.Tapped)
		queueETB(db, follow, a.Card)

	case CopyStackEntry:
		entry, ok := db.Stack.Entry(a.StackID)
		if !ok {
			return
		}
		entry.ID = ""
		entry.Controller = a.Controller
		entry.Copy = true
		id := db.Stack.Push(entry)
		db.Logger().Debug("copied stack entry",
			zap.String("original", a.StackID),
			zap.String("copy", id),
		)

	case CounterSpell:
		entry, ok := db.Stack.Remove(a.StackID)
		if !ok {
			return
		}
		db.Logger().Debug("countered", zap.String("entry", entry.ID))
		if entry.Kind == StackEntrySpell {
			db.MoveToGraveyard(entry.Card)
		}

	case CreateToken:
		id := db.UploadToken(a.Face, a.Controller)
		queueETB(db, follow, id)

	case CreateTokenCopy:
		source := db.MustCard(a.Copying)
		face := source.Face
		if source.Cloning != nil {
			face = *source.Cloning
		}
		id := db.UploadToken(face, a.Controller)
		for _, ac := range a.Counters {
			db.MustCard(id).Counters.Add(string(ac.Kind), ac.Count)
		}
		queueETB(db, follow, id)

	case DamageTarget:
		switch a.Target.Kind {
		case TargetPlayer:
			player := db.MustPlayer(a.Target.Player)
			player.Life -= a.Amount
			if player.Life <= 0 {
				player.Lost = true
			}
		case TargetBattlefield:
			card, ok := db.Card(a.Target.Card)
			if !ok || card.Zone != targeting.LocationBattlefield {
				return
			}
			card.Damage += a.Amount
			if toughness, has := db.Toughness(card.ID); has && card.Damage >= toughness {
				applyActionResult(db, session, PermanentToGraveyard{Card: card.ID, Reason: LeaveDestroyed}, follow)
			}
		}

	case DeclareAttackers:
		for _, id := range a.Cards {
			card, ok := db.Card(id)
			if !ok {
				continue
			}
			card.Attacking = true
			if !card.Modified.HasKeyword("Vigilance") {
				db.TapCard(id)
				QueueTriggers(db, follow, TriggerTapped, id)
			}
		}

	case DestroyEach:
		for _, id := range db.Battlefield() {
			if !db.PassesRestrictions(id, session, a.Source, a.Restrictions) {
				continue
			}
			applyActionResult(db, session, DestroyTarget{Card: id}, follow)
		}

	case DestroyTarget:
		card, ok := db.Card(a.Card)
		if !ok || card.Zone != targeting.LocationBattlefield {
			return
		}
		if card.Modified.HasKeyword("Indestructible") {
			return
		}
		applyActionResult(db, session, PermanentToGraveyard{Card: a.Card, Reason: LeaveDestroyed}, follow)

	case Discard:
		for _, id := range a.Cards {
			if !db.IsInLocation(id, targeting.LocationHand) {
				continue
			}
			db.Log.LogDiscarded(id)
			db.MoveToGraveyard(id)
		}

	case DrawCards:
		player := db.MustPlayer(a.Player)
		for i := 0; i < a.Count; i++ {
			top, ok := player.TopOfLibrary()
			if !ok {
				player.Lost = true
				return
			}
			db.MoveToHand(top)
		}

	case ExileTarget:
		if _, ok := db.Card(a.Card); !ok {
			return
		}
		db.MoveToExile(a.Card)
		if a.UntilSourceLeaves {
			db.RegisterExiledUntilLeaves(a.Source, a.Card)
		}

	case GainLife:
		player := db.MustPlayer(a.Player)
		player.Life += a.Amount
		player.LifeGainedThisTurn += a.Amount

	case LoseLife:
		player := db.MustPlayer(a.Player)
		player.Life -= a.Amount
		if player.Life <= 0 {
			player.Lost = true
		}

	case Mill:
		player := db.MustPlayer(a.Player)
		for i := 0; i < a.Count; i++ {
			top, ok := player.TopOfLibrary()
			if !ok {
				return
			}
			db.MoveToGraveyard(top)
			QueueTriggers(db, follow, TriggerPutIntoGraveyard, top)
		}

	case MoveCard:
		if _, ok := db.Card(a.Card); !ok {
			return
		}
		switch a.To {
		case targeting.LocationBattlefield:
			applyActionResult(db, session, AddToBattlefield{Card: a.Card, Tapped: a.Tapped}, follow)
		case targeting.LocationGraveyard:
			db.MoveToGraveyard(a.Card)
			QueueTriggers(db, follow, TriggerPutIntoGraveyard, a.Card)
		case targeting.LocationHand:
			db.MoveToHand(a.Card)
		case targeting.LocationExile:
			db.MoveToExile(a.Card)
		case targeting.LocationLibrary:
			if a.ToBottom {
				db.MoveToLibraryBottom(a.Card)
			} else {
				db.MoveToLibraryTop(a.Card)
			}
		}

	case PermanentToGraveyard:
		card, ok := db.Card(a.Card)
		if !ok {
			return
		}
		wasBattlefield := card.Zone == targeting.LocationBattlefield
		db.moveCard(a.Card, targeting.LocationGraveyard, a.Reason, false)
		if wasBattlefield {
			QueueTriggers(db, follow, TriggerLeftBattlefield, a.Card)
		}
		if _, still := db.Card(a.Card); still {
			QueueTriggers(db, follow, TriggerPutIntoGraveyard, a.Card)
		}

	case ReturnToHand:
		if _, ok := db.Card(a.Card); !ok {
			return
		}
		fromBattlefield := db.IsInLocation(a.Card, targeting.LocationBattlefield)
		db.MoveToHand(a.Card)
		if fromBattlefield {
			QueueTriggers(db, follow, TriggerLeftBattlefield, a.Card)
		}

	case Shuffle:
		player := db.MustPlayer(a.Player)
		rand.Shuffle(len(player.Library), func(i, j int) {
			player.Library[i], player.Library[j] = player.Library[j], player.Library[i]
		})

	case StackToGraveyard:
		db.MoveToGraveyard(a.Card)

	case TapPermanent:
		if db.Tapped(a.Card) {
			return
		}
		db.TapCard(a.Card)
		QueueTriggers(db, follow, TriggerTapped, a.Card)

	case UntapPermanent:
		db.UntapCard(a.Card)

	case Cascade:
		applyCascade(db, a, follow)

	case UpdateStackEntries:
		db.Stack.Replace(a.Entries)

	case ExamineTopCards:
		player := db.MustPlayer(a.Player)
		count := a.Count
		if count > len(player.Library) {
			count = len(player.Library)
		}
		cards := make([]CardID, 0, count)
		for i := 0; i < count; i++ {
			cards = append(cards, player.Library[len(player.Library)-1-i])
		}
		follow.PushExamineCards(NewExamineCards(a.Player, cards, a.Destinations, a.Reveal))

	default:
		panic("unhandled action result")
	}
}

// queueETB fires enter-the-battlefield work for a card that just arrived:
// its own enter effects, then any battlefield trigger listening for the
// event.
func queueETB(db *Database, follow *PendingResults, id CardID) {
	card, ok := db.Card(id)
	if !ok {
		return
	}
	for _, effect := range card.Face.ETBEffects {
		if effect.WantsTargets(db, id) > 0 {
			follow.PushChooseTargets(NewChooseTargets(db, effect, id, card.Controller))
		} else {
			effect.PushPendingBehavior(db, id, card.Controller, follow)
		}
	}
	QueueTriggers(db, follow, TriggerEnteredBattlefield, id)
}

// applyCascade reveals cards from the top of the library until one with
// mana value strictly below the threshold appears, offers to cast it, and
// bottoms the rest in random order.
func applyCascade(db *Database, a Cascade, follow *PendingResults) {
	player := db.MustPlayer(a.Controller)

	var revealed []CardID
	var hit CardID = InvalidCard
	for i := len(player.Library) - 1; i >= 0; i-- {
		id := player.Library[i]
		card := db.MustCard(id)
		card.Revealed = true
		if !card.Face.HasType("Land") && card.Face.ManaValue < a.ManaValue {
			hit = id
			break
		}
		revealed = append(revealed, id)
	}

	rand.Shuffle(len(revealed), func(i, j int) {
		revealed[i], revealed[j] = revealed[j], revealed[i]
	})
	for _, id := range revealed {
		follow.PushSettled(MoveCard{Card: id, To: targeting.LocationLibrary, ToBottom: true})
	}
	if hit != InvalidCard {
		follow.PushChooseCast(NewChooseCast(
			a.Controller,
			[]CardID{hit},
			targeting.LocationLibrary,
			targeting.LocationLibrary,
			true,
		))
	}
}
