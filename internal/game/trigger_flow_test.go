package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jesterhearts/piece-go/internal/game"
	"github.com/Jesterhearts/piece-go/internal/game/effects"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

func watcherFace(name string, trigger game.TriggerSource) game.CardFace {
	face := creature(name, 1, 1)
	face.Triggered = []game.TriggeredAbility{{
		Trigger: trigger,
		Effects: []game.Effect{effects.ControllerGainsLife{Amount: 1}},
		Text:    name + " trigger",
	}}
	return face
}

func TestDeathTriggerDrainsLife(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bob := db.AddPlayer("Bob", 20)

	artist := creature("Blood Artist", 0, 1)
	artist.Triggered = []game.TriggeredAbility{{
		Trigger:      game.TriggerPutIntoGraveyard,
		Restrictions: []targeting.Restriction{targeting.OfType([]string{"Creature"}, nil)},
		Effects: []game.Effect{
			effects.ControllerGainsLife{Amount: 1},
			effects.EachOpponentLosesLife{Amount: 1},
		},
	}}
	db.UploadCard(artist, alice, targeting.LocationBattlefield)
	victim := db.UploadCard(creature("Grizzly Bears", 2, 2), bob, targeting.LocationBattlefield)

	follow := game.ApplyActionResults(db, db.Log.NewSession(), []game.ActionResult{
		game.DestroyTarget{Card: victim},
	})
	require.NotNil(t, follow)
	require.Equal(t, game.Complete, advance(t, db, follow))
	require.Equal(t, 1, db.Stack.Len())

	rpr, err := game.ResolveTopOfStack(db)
	require.NoError(t, err)
	require.Equal(t, game.Complete, advance(t, db, rpr))

	assert.Equal(t, 21, db.MustPlayer(alice).Life)
	assert.Equal(t, 19, db.MustPlayer(bob).Life)
}

func TestTriggerRestrictionsFilterSubject(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)

	artist := creature("Blood Artist", 0, 1)
	artist.Triggered = []game.TriggeredAbility{{
		Trigger:      game.TriggerPutIntoGraveyard,
		Restrictions: []targeting.Restriction{targeting.OfType([]string{"Creature"}, nil)},
		Effects:      []game.Effect{effects.ControllerGainsLife{Amount: 1}},
	}}
	db.UploadCard(artist, alice, targeting.LocationBattlefield)
	relic := db.UploadCard(game.CardFace{Name: "Relic", Types: []string{"Artifact"}}, alice, targeting.LocationBattlefield)

	follow := game.ApplyActionResults(db, db.Log.NewSession(), []game.ActionResult{
		game.DestroyTarget{Card: relic},
	})
	assert.Nil(t, follow)
	assert.True(t, db.Stack.IsEmpty())
}

func TestSimultaneousTriggersOrderedAPNAP(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bob := db.AddPlayer("Bob", 20)

	// Bob's watcher is older, but Alice is the active player: her trigger
	// goes on the stack first and therefore resolves last.
	bobWatcher := db.UploadCard(watcherFace("Bob Watcher", game.TriggerEnteredBattlefield), bob, targeting.LocationBattlefield)
	aliceWatcher := db.UploadCard(watcherFace("Alice Watcher", game.TriggerEnteredBattlefield), alice, targeting.LocationBattlefield)

	newcomer := db.UploadCard(creature("Grizzly Bears", 2, 2), alice, targeting.LocationHand)
	follow := game.ApplyActionResults(db, db.Log.NewSession(), []game.ActionResult{
		game.AddToBattlefield{Card: newcomer},
	})
	require.NotNil(t, follow)
	require.Equal(t, game.Complete, advance(t, db, follow))

	entries := db.Stack.List()
	require.Len(t, entries, 2)
	assert.Equal(t, aliceWatcher, entries[0].Card)
	assert.Equal(t, bobWatcher, entries[1].Card)
}

func TestSimultaneousTriggersOrderedByTimestamp(t *testing.T) {
	db := game.NewDatabase(nil)
	db.TriggerOrder = game.TriggerOrderTimestamp
	alice := db.AddPlayer("Alice", 20)
	bob := db.AddPlayer("Bob", 20)

	bobWatcher := db.UploadCard(watcherFace("Bob Watcher", game.TriggerEnteredBattlefield), bob, targeting.LocationBattlefield)
	aliceWatcher := db.UploadCard(watcherFace("Alice Watcher", game.TriggerEnteredBattlefield), alice, targeting.LocationBattlefield)

	newcomer := db.UploadCard(creature("Grizzly Bears", 2, 2), alice, targeting.LocationHand)
	follow := game.ApplyActionResults(db, db.Log.NewSession(), []game.ActionResult{
		game.AddToBattlefield{Card: newcomer},
	})
	require.NotNil(t, follow)
	require.Equal(t, game.Complete, advance(t, db, follow))

	entries := db.Stack.List()
	require.Len(t, entries, 2)
	assert.Equal(t, bobWatcher, entries[0].Card)
	assert.Equal(t, aliceWatcher, entries[1].Card)
}

func TestTriggeredAbilityPicksTargetsAtResolution(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bob := db.AddPlayer("Bob", 20)

	watcher := creature("Flametongue", 4, 2)
	watcher.Triggered = []game.TriggeredAbility{{
		Trigger:      game.TriggerEnteredBattlefield,
		Restrictions: []targeting.Restriction{targeting.Self()},
		Effects:      []game.Effect{effects.DealDamage{Amount: 4, Restrictions: targeting.Creatures()}},
	}}
	db.UploadCard(creature("Alpine Grizzly", 4, 2), bob, targeting.LocationBattlefield)
	victim := db.UploadCard(creature("Leaf Gilder", 2, 1), bob, targeting.LocationBattlefield)

	flametongue := db.UploadCard(watcher, alice, targeting.LocationHand)
	follow := game.ApplyActionResults(db, db.Log.NewSession(), []game.ActionResult{
		game.AddToBattlefield{Card: flametongue},
	})
	require.NotNil(t, follow)
	require.Equal(t, game.Complete, advance(t, db, follow))
	require.Equal(t, 1, db.Stack.Len())

	// No target is locked in yet; the choice arrives when the trigger
	// resolves.
	rpr, err := game.ResolveTopOfStack(db)
	require.NoError(t, err)
	require.Equal(t, game.PendingChoice, advance(t, db, rpr))
	pick(t, db, rpr, "Leaf Gilder")
	require.Equal(t, game.Complete, advance(t, db, rpr))

	assert.Equal(t, targeting.LocationGraveyard, db.MustCard(victim).Zone)
	assert.True(t, db.Stack.IsEmpty())
}

func TestETBEffectDrawsCard(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	db.UploadCard(creature("Library Card", 1, 1), alice, targeting.LocationLibrary)

	visionary := creature("Elvish Visionary", 1, 1)
	visionary.ETBEffects = []game.Effect{effects.ControllerDraws{Count: 1}}
	elf := db.UploadCard(visionary, alice, targeting.LocationHand)

	pr := game.CastCardFrom(db, elf, targeting.LocationHand)
	require.Equal(t, game.Complete, advance(t, db, pr))

	rpr, err := game.ResolveTopOfStack(db)
	require.NoError(t, err)
	require.Equal(t, game.Complete, advance(t, db, rpr))

	assert.Equal(t, targeting.LocationBattlefield, db.MustCard(elf).Zone)
	assert.Len(t, db.MustPlayer(alice).Hand, 1)
}

func TestCastTriggerFires(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	db.UploadCard(watcherFace("Spell Watcher", game.TriggerCast), alice, targeting.LocationBattlefield)

	spell := db.UploadCard(sorcery("Divination", effects.ControllerDraws{Count: 2}), alice, targeting.LocationHand)
	pr := game.CastCardFrom(db, spell, targeting.LocationHand)
	require.Equal(t, game.Complete, advance(t, db, pr))

	// The cast trigger goes on the stack above the spell itself.
	entries := db.Stack.List()
	require.Len(t, entries, 2)
	assert.Equal(t, game.StackEntrySpell, entries[0].Kind)
	assert.Equal(t, game.StackEntryTriggered, entries[1].Kind)

	rpr, err := game.ResolveTopOfStack(db)
	require.NoError(t, err)
	require.Equal(t, game.Complete, advance(t, db, rpr))
	assert.Equal(t, 21, db.MustPlayer(alice).Life)
}
