package game

import (
	"fmt"

	"github.com/Jesterhearts/piece-go/internal/game/counters"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
	"go.uber.org/zap"
)

// Database is the arena owning all mutable game state: cards, players,
// modifiers, abilities, the stack, the game log and turn tracking. All
// cross-references are by id, never by pointer, so entities can be relocated
// or dropped without invalidating other state. There is one logical writer
// at a time; components resolve ids through the database on demand.
type Database struct {
	logger *zap.Logger

	Log   *Log
	Turn  Turn
	Stack *Stack

	// TriggerOrder is the configured tie-break for simultaneous triggers.
	TriggerOrder TriggerOrder

	players     map[PlayerID]*Player
	playerOrder []PlayerID

	cards     map[CardID]*Card
	cardOrder []CardID

	modifiers     map[ModifierID]*Modifier
	modifierOrder []ModifierID

	abilities map[AbilityID]*ActivatedAbility

	// exiledUntilLeaves maps a source card to cards it exiled for as long
	// as it remains on the battlefield.
	exiledUntilLeaves map[CardID][]CardID

	// gcAbilities holds ability ids no longer referenced by any card. They
	// cannot be dropped immediately because the stack may still reference
	// them; they are collected during end-of-turn cleanup.
	gcAbilities []AbilityID

	nextCard     CardID
	nextPlayer   PlayerID
	nextModifier ModifierID
	nextAbility  AbilityID
	timestamp    int
}

// NewDatabase creates an empty database. A nil logger is replaced with a
// no-op logger.
func NewDatabase(logger *zap.Logger) *Database {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Database{
		logger:            logger,
		Log:               NewLog(logger),
		Stack:             NewStack(),
		TriggerOrder:      TriggerOrderAPNAP,
		players:           make(map[PlayerID]*Player),
		cards:             make(map[CardID]*Card),
		modifiers:         make(map[ModifierID]*Modifier),
		abilities:         make(map[AbilityID]*ActivatedAbility),
		exiledUntilLeaves: make(map[CardID][]CardID),
	}
}

// Logger exposes the database logger for collaborating components.
func (db *Database) Logger() *zap.Logger { return db.logger }

// NextTimestamp issues the next modifier ordering timestamp.
func (db *Database) NextTimestamp() int {
	db.timestamp++
	return db.timestamp
}

// AddPlayer creates a player with the given starting life and returns its
// id. The first player added becomes the active player.
func (db *Database) AddPlayer(name string, life int) PlayerID {
	db.nextPlayer++
	id := db.nextPlayer
	db.players[id] = &Player{ID: id, Name: name, Life: life}
	db.playerOrder = append(db.playerOrder, id)
	if len(db.playerOrder) == 1 {
		db.Turn.ActivePlayer = id
		db.Turn.Priority = id
		db.Turn.Number = 1
	}
	return id
}

// Player looks up a player by id.
func (db *Database) Player(id PlayerID) (*Player, bool) {
	p, ok := db.players[id]
	return p, ok
}

// MustPlayer looks up a player that must exist; a missing id is a
// programming error.
func (db *Database) MustPlayer(id PlayerID) *Player {
	p, ok := db.players[id]
	if !ok {
		panic(fmt.Sprintf("no such player: %d", id))
	}
	return p
}

// Players returns all player ids in turn order.
func (db *Database) Players() []PlayerID {
	out := make([]PlayerID, len(db.playerOrder))
	copy(out, db.playerOrder)
	return out
}

// PlayersAPNAP returns all player ids starting with the active player, then
// proceeding in turn order.
func (db *Database) PlayersAPNAP() []PlayerID {
	out := make([]PlayerID, 0, len(db.playerOrder))
	start := 0
	for i, id := range db.playerOrder {
		if id == db.Turn.ActivePlayer {
			start = i
			break
		}
	}
	for i := 0; i < len(db.playerOrder); i++ {
		out = append(out, db.playerOrder[(start+i)%len(db.playerOrder)])
	}
	return out
}

// Opponents returns every player except the given one, in APNAP order.
func (db *Database) Opponents(of PlayerID) []PlayerID {
	var out []PlayerID
	for _, id := range db.PlayersAPNAP() {
		if id != of {
			out = append(out, id)
		}
	}
	return out
}

// UploadCard creates a card entity from a face descriptor in the given
// player's named zone and returns its id. Printed activated abilities are
// uploaded alongside the card.
func (db *Database) UploadCard(face CardFace, owner PlayerID, zone targeting.Location) CardID {
	db.nextCard++
	id := db.nextCard

	card := &Card{
		ID:         id,
		Owner:      owner,
		Controller: owner,
		Zone:       zone,
		Face:       face,
		Counters:   counters.NewCounters(),
	}
	db.cards[id] = card
	db.cardOrder = append(db.cardOrder, id)

	for _, def := range face.Activated {
		card.baseActivated = append(card.baseActivated, db.uploadAbility(id, def, false))
	}

	list := db.zoneList(owner, zone)
	*list = append(*list, id)

	db.ApplyModifiersLayered(id)

	db.logger.Debug("uploaded card",
		zap.Int("card", int(id)),
		zap.String("name", face.Name),
		zap.String("zone", zone.String()),
	)
	return id
}

// UploadToken creates a token directly onto the battlefield.
func (db *Database) UploadToken(face CardFace, controller PlayerID) CardID {
	id := db.UploadCard(face, controller, targeting.LocationBattlefield)
	card := db.MustCard(id)
	card.Token = true
	card.SummoningSick = card.Modified.HasType("Creature")
	card.EnteredTurn = db.Turn.Number
	db.Log.LogEnteredBattlefield(id)
	db.activateStaticModifiers(id)
	db.ApplyModifiersLayered(id)
	return id
}

// Card looks up a card by id.
func (db *Database) Card(id CardID) (*Card, bool) {
	c, ok := db.cards[id]
	return c, ok
}

// MustCard looks up a card that must exist; a missing id is a programming
// error.
func (db *Database) MustCard(id CardID) *Card {
	c, ok := db.cards[id]
	if !ok {
		panic(fmt.Sprintf("no such card: %d", id))
	}
	return c
}

// DropCard removes a card entity entirely (tokens ceasing to exist).
func (db *Database) DropCard(id CardID) {
	card, ok := db.cards[id]
	if !ok {
		return
	}
	db.removeFromZone(card)
	db.detachFromModifiers(id)
	for _, abilityID := range card.baseActivated {
		delete(db.abilities, abilityID)
	}
	delete(db.cards, id)
	for i, cid := range db.cardOrder {
		if cid == id {
			db.cardOrder = append(db.cardOrder[:i], db.cardOrder[i+1:]...)
			break
		}
	}
}

// Cards returns every live card id in creation order.
func (db *Database) Cards() []CardID {
	out := make([]CardID, len(db.cardOrder))
	copy(out, db.cardOrder)
	return out
}

// Ability looks up an activated ability by id.
func (db *Database) Ability(id AbilityID) (*ActivatedAbility, bool) {
	a, ok := db.abilities[id]
	return a, ok
}

// MustAbility looks up an ability that must exist.
func (db *Database) MustAbility(id AbilityID) *ActivatedAbility {
	a, ok := db.abilities[id]
	if !ok {
		panic(fmt.Sprintf("no such ability: %d", id))
	}
	return a
}

func (db *Database) uploadAbility(source CardID, def ActivatedAbilityDef, granted bool) AbilityID {
	db.nextAbility++
	id := db.nextAbility
	db.abilities[id] = &ActivatedAbility{ID: id, Source: source, Def: def, Granted: granted}
	return id
}

// Battlefield returns every card on the battlefield, players in turn order.
func (db *Database) Battlefield() []CardID {
	var out []CardID
	for _, pid := range db.playerOrder {
		out = append(out, db.players[pid].Battlefield...)
	}
	return out
}

// CardsInZone returns the ordered contents of one player's zone.
func (db *Database) CardsInZone(player PlayerID, zone targeting.Location) []CardID {
	list := db.zoneList(player, zone)
	out := make([]CardID, len(*list))
	copy(out, *list)
	return out
}

func (db *Database) zoneList(player PlayerID, zone targeting.Location) *[]CardID {
	p := db.MustPlayer(player)
	switch zone {
	case targeting.LocationLibrary:
		return &p.Library
	case targeting.LocationHand:
		return &p.Hand
	case targeting.LocationBattlefield:
		return &p.Battlefield
	case targeting.LocationGraveyard:
		return &p.Graveyard
	case targeting.LocationExile:
		return &p.Exile
	}
	panic(fmt.Sprintf("no zone list for location %v", zone))
}

// IsInLocation reports whether the card currently occupies the location.
func (db *Database) IsInLocation(id CardID, zone targeting.Location) bool {
	card, ok := db.cards[id]
	return ok && zone.Matches(card.Zone)
}

// Power returns the card's effective power: the modified snapshot plus any
// boost counters. ok is false for cards with no power.
func (db *Database) Power(id CardID) (int, bool) {
	card := db.MustCard(id)
	if card.Modified.Power == nil {
		return 0, false
	}
	power := *card.Modified.Power
	for _, name := range card.Counters.Names() {
		if p, _, isBoost := counters.Kind(name).Boost(); isBoost {
			power += p * card.Counters.Count(name)
		}
	}
	return power, true
}

// Toughness returns the card's effective toughness including boost
// counters. ok is false for cards with no toughness.
func (db *Database) Toughness(id CardID) (int, bool) {
	card := db.MustCard(id)
	if card.Modified.Toughness == nil {
		return 0, false
	}
	toughness := *card.Modified.Toughness
	for _, name := range card.Counters.Names() {
		if _, t, isBoost := counters.Kind(name).Boost(); isBoost {
			toughness += t * card.Counters.Count(name)
		}
	}
	return toughness, true
}

// Tapped reports whether the card is tapped.
func (db *Database) Tapped(id CardID) bool {
	return db.MustCard(id).Tapped
}

// TapCard taps a card and records the event in the game log.
func (db *Database) TapCard(id CardID) {
	card := db.MustCard(id)
	if card.Tapped {
		return
	}
	card.Tapped = true
	db.Log.LogTapped(id)
}

// UntapCard untaps a card.
func (db *Database) UntapCard(id CardID) {
	db.MustCard(id).Tapped = false
}

// RegisterExiledUntilLeaves records that source exiled card for as long as
// source stays on the battlefield.
func (db *Database) RegisterExiledUntilLeaves(source, card CardID) {
	db.exiledUntilLeaves[source] = append(db.exiledUntilLeaves[source], card)
}

func (db *Database) removeFromZone(card *Card) {
	list := db.zoneList(card.Owner, card.Zone)
	*list = removeCard(*list, card.ID)
}

// MoveToGraveyard moves a card to its owner's graveyard.
func (db *Database) MoveToGraveyard(id CardID) {
	db.moveCard(id, targeting.LocationGraveyard, LeavePutIntoGraveyard, false)
}

// MoveToHand moves a card to its owner's hand.
func (db *Database) MoveToHand(id CardID) {
	db.moveCard(id, targeting.LocationHand, LeaveReturnedToHand, false)
}

// MoveToExile moves a card to its owner's exile zone.
func (db *Database) MoveToExile(id CardID) {
	db.moveCard(id, targeting.LocationExile, LeaveExiled, false)
}

// MoveToLibraryTop moves a card to the top of its owner's library.
func (db *Database) MoveToLibraryTop(id CardID) {
	db.moveCard(id, targeting.LocationLibrary, LeaveReturnedToLibrary, false)
}

// MoveToLibraryBottom moves a card to the bottom of its owner's library.
func (db *Database) MoveToLibraryBottom(id CardID) {
	db.moveCard(id, targeting.LocationLibrary, LeaveReturnedToLibrary, true)
}

// MoveToStackZone relocates a card into the stack zone while a spell entry
// references it.
func (db *Database) MoveToStackZone(id CardID) {
	card := db.MustCard(id)
	db.removeFromZone(card)
	card.Zone = targeting.LocationStack
}

// MoveToBattlefield puts a card onto the battlefield under its controller,
// clearing stale state, starting summoning sickness for creatures, and
// activating the card's static continuous effects.
func (db *Database) MoveToBattlefield(id CardID, entersTapped bool) {
	card := db.MustCard(id)
	if card.Zone == targeting.LocationBattlefield {
		return
	}
	castFrom := card.CastFrom
	if card.Zone != targeting.LocationStack {
		db.removeFromZone(card)
	}
	card.clearTransientState()
	card.CastFrom = castFrom
	card.Zone = targeting.LocationBattlefield
	card.Tapped = entersTapped
	card.EnteredTurn = db.Turn.Number
	list := db.zoneList(card.Controller, targeting.LocationBattlefield)
	*list = append(*list, id)

	db.ApplyModifiersLayered(id)
	card.SummoningSick = card.Modified.HasType("Creature")

	db.Log.LogEnteredBattlefield(id)
	db.activateStaticModifiers(id)
	db.ApplyModifiersLayered(id)
}

// moveCard is the shared zone-transition path for non-battlefield
// destinations. Tokens cease to exist instead of changing zones.
func (db *Database) moveCard(id CardID, to targeting.Location, reason LeaveReason, toBottom bool) {
	card := db.MustCard(id)
	if card.Token && to != targeting.LocationBattlefield {
		db.leaveBattlefield(card, reason)
		db.DropCard(id)
		return
	}

	wasBattlefield := card.Zone == targeting.LocationBattlefield
	if card.Zone != targeting.LocationStack {
		db.removeFromZone(card)
	}
	if wasBattlefield {
		db.leaveBattlefield(card, reason)
	}

	card.clearTransientState()
	card.Zone = to
	list := db.zoneList(card.Owner, to)
	if toBottom {
		*list = append([]CardID{id}, *list...)
	} else {
		*list = append(*list, id)
	}
	db.ApplyModifiersLayered(id)
}

// leaveBattlefield handles everything tied to a permanent's presence on the
// battlefield: logging, deactivating modifiers it sourced, returning cards
// it exiled with a leave-duration, and detaching it from other modifiers.
func (db *Database) leaveBattlefield(card *Card, reason LeaveReason) {
	db.Log.LogLeftBattlefield(card.ID, reason)

	for _, modID := range db.ModifierIDs() {
		mod := db.MustModifier(modID)
		if mod.Source == card.ID && mod.Spec.Duration == DurationUntilSourceLeaves && mod.Active {
			db.DeactivateModifier(modID)
		}
	}
	db.detachFromModifiers(card.ID)

	if exiled, ok := db.exiledUntilLeaves[card.ID]; ok {
		delete(db.exiledUntilLeaves, card.ID)
		for _, returned := range exiled {
			if db.IsInLocation(returned, targeting.LocationExile) {
				db.MoveToBattlefield(returned, false)
			}
		}
	}
}

// detachFromModifiers removes the card from every modifier's modifying set
// and recomputes its characteristics afterwards.
func (db *Database) detachFromModifiers(id CardID) {
	for _, modID := range db.ModifierIDs() {
		mod := db.MustModifier(modID)
		if _, ok := mod.Modifying[id]; ok {
			delete(mod.Modifying, id)
		}
	}
}

// GCAbility marks an ability id for end-of-turn garbage collection.
func (db *Database) GCAbility(id AbilityID) {
	db.gcAbilities = append(db.gcAbilities, id)
}

// CollectGarbage drops abilities queued for collection. Called during
// end-of-turn cleanup once nothing on the stack can reference them.
func (db *Database) CollectGarbage() {
	for _, id := range db.gcAbilities {
		delete(db.abilities, id)
	}
	db.gcAbilities = nil
}
