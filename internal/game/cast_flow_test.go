package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jesterhearts/piece-go/internal/game"
	"github.com/Jesterhearts/piece-go/internal/game/effects"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

func TestCastDamageSpellKillsCreature(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bob := db.AddPlayer("Bob", 20)

	grizzly := db.UploadCard(creature("Alpine Grizzly", 4, 2), bob, targeting.LocationBattlefield)
	bolt := db.UploadCard(instant("Lightning Strike",
		effects.DealDamage{Amount: 3, AnyTarget: true, Restrictions: targeting.Creatures()},
	), alice, targeting.LocationHand)

	pr := game.CastCardFrom(db, bolt, targeting.LocationHand)
	require.Equal(t, game.PendingChoice, advance(t, db, pr))
	pick(t, db, pr, "Alpine Grizzly")
	require.Equal(t, game.Complete, advance(t, db, pr))

	require.Equal(t, 1, db.Stack.Len())
	assert.Equal(t, targeting.LocationStack, db.MustCard(bolt).Zone)
	assert.NotContains(t, db.MustPlayer(alice).Hand, bolt)

	rpr, err := game.ResolveTopOfStack(db)
	require.NoError(t, err)
	require.Equal(t, game.Complete, advance(t, db, rpr))

	assert.Equal(t, targeting.LocationGraveyard, db.MustCard(grizzly).Zone)
	assert.Equal(t, targeting.LocationGraveyard, db.MustCard(bolt).Zone)
	assert.True(t, db.Stack.IsEmpty())
}

func TestCastDamageSpellAtPlayer(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bob := db.AddPlayer("Bob", 20)

	bolt := db.UploadCard(instant("Lightning Strike",
		effects.DealDamage{Amount: 3, AnyTarget: true, Restrictions: targeting.Creatures()},
	), alice, targeting.LocationHand)

	pr := game.CastCardFrom(db, bolt, targeting.LocationHand)
	require.Equal(t, game.PendingChoice, advance(t, db, pr))
	pick(t, db, pr, "Bob")
	require.Equal(t, game.Complete, advance(t, db, pr))

	rpr, err := game.ResolveTopOfStack(db)
	require.NoError(t, err)
	require.Equal(t, game.Complete, advance(t, db, rpr))

	assert.Equal(t, 17, db.MustPlayer(bob).Life)
	assert.Equal(t, 20, db.MustPlayer(alice).Life)
}

func TestCancelBeforeAnyMutation(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bob := db.AddPlayer("Bob", 20)
	db.UploadCard(creature("Alpine Grizzly", 4, 2), bob, targeting.LocationBattlefield)

	bolt := db.UploadCard(instant("Lightning Strike",
		effects.DealDamage{Amount: 3, Restrictions: targeting.Creatures()},
	), alice, targeting.LocationHand)

	pr := game.CastCardFrom(db, bolt, targeting.LocationHand)
	require.Equal(t, game.PendingChoice, advance(t, db, pr))

	require.True(t, pr.CanCancel(db))
	require.NoError(t, pr.Cancel(db))

	assert.True(t, db.Stack.IsEmpty())
	assert.Equal(t, targeting.LocationHand, db.MustCard(bolt).Zone)
	assert.True(t, pr.IsEmpty())
}

func TestCancelFailsAfterApply(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)

	draw := db.UploadCard(sorcery("Divination", effects.ControllerDraws{Count: 2}), alice, targeting.LocationHand)

	pr := game.CastCardFrom(db, draw, targeting.LocationHand)
	require.Equal(t, game.Complete, advance(t, db, pr))

	assert.False(t, pr.CanCancel(db))
	assert.ErrorIs(t, pr.Cancel(db), game.ErrCannotCancel)
	assert.Equal(t, 1, db.Stack.Len())
}

func TestTargetsAreExclusiveAcrossSteps(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bob := db.AddPlayer("Bob", 20)

	first := db.UploadCard(creature("Runeclaw Bear", 2, 2), bob, targeting.LocationBattlefield)
	second := db.UploadCard(creature("Leaf Gilder", 2, 1), bob, targeting.LocationBattlefield)
	db.UploadCard(creature("Elvish Visionary", 1, 1), bob, targeting.LocationBattlefield)

	forked := db.UploadCard(instant("Twin Bolt",
		effects.DealDamage{Amount: 1, Restrictions: targeting.Creatures()},
		effects.DealDamage{Amount: 1, Restrictions: targeting.Creatures()},
	), alice, targeting.LocationHand)

	pr := game.CastCardFrom(db, forked, targeting.LocationHand)
	require.Equal(t, game.PendingChoice, advance(t, db, pr))
	pick(t, db, pr, "Runeclaw Bear")

	require.Equal(t, game.PendingChoice, advance(t, db, pr))
	labels := optionLabels(db, pr)
	assert.NotContains(t, labels, "Runeclaw Bear")
	assert.Contains(t, labels, "Leaf Gilder")
	assert.Contains(t, labels, "Elvish Visionary")

	pick(t, db, pr, "Leaf Gilder")
	require.Equal(t, game.Complete, advance(t, db, pr))

	entries := db.Stack.List()
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Targets, 2)
	assert.Equal(t, []game.ActiveTarget{game.BattlefieldTarget(first)}, entries[0].Targets[0])
	assert.Equal(t, []game.ActiveTarget{game.BattlefieldTarget(second)}, entries[0].Targets[1])
}

func TestSpellFizzlesWhenAllTargetsLeave(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bob := db.AddPlayer("Bob", 20)

	grizzly := db.UploadCard(creature("Alpine Grizzly", 4, 2), bob, targeting.LocationBattlefield)
	murder := db.UploadCard(instant("Murder",
		effects.DestroyTarget{Restrictions: targeting.Creatures()},
	), alice, targeting.LocationHand)

	pr := game.CastCardFrom(db, murder, targeting.LocationHand)
	require.Equal(t, game.Complete, advance(t, db, pr))

	// The only target dies in response.
	game.ApplyActionResults(db, db.Log.NewSession(), []game.ActionResult{
		game.DestroyTarget{Card: grizzly},
	})
	require.Equal(t, targeting.LocationGraveyard, db.MustCard(grizzly).Zone)

	rpr, err := game.ResolveTopOfStack(db)
	require.NoError(t, err)
	require.Equal(t, game.Complete, advance(t, db, rpr))

	assert.Equal(t, targeting.LocationGraveyard, db.MustCard(murder).Zone)
	assert.True(t, db.Stack.IsEmpty())
}

func TestCounterTargetSpellThroughTheStack(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bob := db.AddPlayer("Bob", 20)

	bolt := db.UploadCard(instant("Lightning Strike",
		effects.DealDamage{Amount: 3, AnyTarget: true},
	), alice, targeting.LocationHand)
	cancel := db.UploadCard(instant("Cancel", effects.CounterTargetSpell{}), bob, targeting.LocationHand)

	pr := game.CastCardFrom(db, bolt, targeting.LocationHand)
	require.Equal(t, game.PendingChoice, advance(t, db, pr))
	pick(t, db, pr, "Bob")
	require.Equal(t, game.Complete, advance(t, db, pr))

	// Bob answers with the counterspell; its single legal target is chosen
	// automatically.
	cpr := game.CastCardFrom(db, cancel, targeting.LocationHand)
	require.Equal(t, game.Complete, advance(t, db, cpr))
	require.Equal(t, 2, db.Stack.Len())

	rpr, err := game.ResolveTopOfStack(db)
	require.NoError(t, err)
	require.Equal(t, game.Complete, advance(t, db, rpr))

	assert.True(t, db.Stack.IsEmpty())
	assert.Equal(t, targeting.LocationGraveyard, db.MustCard(bolt).Zone)
	assert.Equal(t, targeting.LocationGraveyard, db.MustCard(cancel).Zone)
	assert.Equal(t, 20, db.MustPlayer(bob).Life)
}

func TestCounterStackEntryDirect(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	db.AddPlayer("Bob", 20)

	draw := db.UploadCard(sorcery("Divination", effects.ControllerDraws{Count: 2}), alice, targeting.LocationHand)
	pr := game.CastCardFrom(db, draw, targeting.LocationHand)
	require.Equal(t, game.Complete, advance(t, db, pr))

	entries := db.Stack.List()
	require.Len(t, entries, 1)

	cpr, err := game.CounterStackEntry(db, entries[0].ID)
	require.NoError(t, err)
	require.Equal(t, game.Complete, advance(t, db, cpr))

	assert.True(t, db.Stack.IsEmpty())
	assert.Equal(t, targeting.LocationGraveyard, db.MustCard(draw).Zone)

	_, err = game.CounterStackEntry(db, "missing")
	assert.ErrorIs(t, err, game.ErrNoSuchEntity)
}

func TestActivateTapAbility(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bob := db.AddPlayer("Bob", 20)

	pinger := db.UploadCard(game.CardFace{
		Name:      "Prodigal Pyromancer",
		Types:     []string{"Creature"},
		Power:     ip(1),
		Toughness: ip(1),
		Activated: []game.ActivatedAbilityDef{{
			Text:    "{T}: Prodigal Pyromancer deals 1 damage to any target.",
			Cost:    game.AbilityCost{TapThis: true},
			Effects: []game.Effect{effects.DealDamage{Amount: 1, AnyTarget: true, Restrictions: targeting.Creatures()}},
		}},
	}, alice, targeting.LocationBattlefield)

	abilityID := db.MustCard(pinger).Modified.Activated[0]

	pr, err := game.ActivateAbility(db, abilityID)
	require.NoError(t, err)
	require.Equal(t, game.PendingChoice, advance(t, db, pr))
	pick(t, db, pr, "Bob")
	require.Equal(t, game.Complete, advance(t, db, pr))

	assert.True(t, db.Tapped(pinger))
	require.Equal(t, 1, db.Stack.Len())

	rpr, err := game.ResolveTopOfStack(db)
	require.NoError(t, err)
	require.Equal(t, game.Complete, advance(t, db, rpr))
	assert.Equal(t, 19, db.MustPlayer(bob).Life)

	// Tapped sources cannot pay a tap cost again.
	_, err = game.ActivateAbility(db, abilityID)
	assert.Error(t, err)

	// Bouncing the permanent clears its tapped state.
	game.ApplyActionResults(db, db.Log.NewSession(), []game.ActionResult{
		game.ReturnToHand{Card: pinger},
	})
	assert.Equal(t, targeting.LocationHand, db.MustCard(pinger).Zone)
	assert.False(t, db.MustCard(pinger).Tapped)
}

func TestActivateTapAbilityWhileSummoningSick(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)

	pinger := db.UploadCard(game.CardFace{
		Name:      "Prodigal Pyromancer",
		Types:     []string{"Creature"},
		Power:     ip(1),
		Toughness: ip(1),
		Activated: []game.ActivatedAbilityDef{{
			Cost:    game.AbilityCost{TapThis: true},
			Effects: []game.Effect{effects.DealDamage{Amount: 1, AnyTarget: true}},
		}},
	}, alice, targeting.LocationHand)

	game.ApplyActionResults(db, db.Log.NewSession(), []game.ActionResult{
		game.AddToBattlefield{Card: pinger},
	})
	require.True(t, db.MustCard(pinger).SummoningSick)

	abilityID := db.MustCard(pinger).Modified.Activated[0]
	_, err := game.ActivateAbility(db, abilityID)
	assert.Error(t, err)

	db.BeginTurn(alice)
	_, err = game.ActivateAbility(db, abilityID)
	assert.NoError(t, err)
}

func TestSorcerySpeedActivation(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bob := db.AddPlayer("Bob", 20)

	mine := db.UploadCard(game.CardFace{
		Name:  "Own Relic",
		Types: []string{"Artifact"},
		Activated: []game.ActivatedAbilityDef{{
			SorcerySpeed: true,
			Effects:      []game.Effect{effects.ControllerGainsLife{Amount: 1}},
		}},
	}, alice, targeting.LocationBattlefield)
	theirs := db.UploadCard(game.CardFace{
		Name:  "Their Relic",
		Types: []string{"Artifact"},
		Activated: []game.ActivatedAbilityDef{{
			SorcerySpeed: true,
			Effects:      []game.Effect{effects.ControllerGainsLife{Amount: 1}},
		}},
	}, bob, targeting.LocationBattlefield)

	// Not the controller's turn.
	_, err := game.ActivateAbility(db, db.MustCard(theirs).Modified.Activated[0])
	assert.Error(t, err)

	// Stack must be empty.
	db.Stack.Push(game.StackEntry{Kind: game.StackEntrySpell})
	_, err = game.ActivateAbility(db, db.MustCard(mine).Modified.Activated[0])
	assert.Error(t, err)
	_, _ = db.Stack.Pop()

	_, err = game.ActivateAbility(db, db.MustCard(mine).Modified.Activated[0])
	assert.NoError(t, err)
}

func TestSacrificeCostPaysBeforeEffect(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	db.AddPlayer("Bob", 20)

	vampire := db.UploadCard(game.CardFace{
		Name:      "Bloodthrone Vampire",
		Types:     []string{"Creature"},
		Power:     ip(1),
		Toughness: ip(1),
		Activated: []game.ActivatedAbilityDef{{
			Text: "Sacrifice a creature: +2/+2 until end of turn.",
			Cost: game.AbilityCost{SacrificeRestrictions: targeting.Creatures()},
			Effects: []game.Effect{effects.ModifySelf{Spec: game.ModifierSpec{
				Layer:        game.LayerPowerToughness,
				Duration:     game.DurationUntilEndOfTurn,
				AddPower:     2,
				AddToughness: 2,
			}}},
		}},
	}, alice, targeting.LocationBattlefield)
	fodder := db.UploadCard(creature("Grizzly Bears", 2, 2), alice, targeting.LocationBattlefield)

	pr, err := game.ActivateAbility(db, db.MustCard(vampire).Modified.Activated[0])
	require.NoError(t, err)
	require.Equal(t, game.PendingChoice, advance(t, db, pr))
	assert.Equal(t, "choose a permanent to sacrifice", pr.Description(db))
	pick(t, db, pr, "Grizzly Bears")
	require.Equal(t, game.Complete, advance(t, db, pr))

	assert.Equal(t, targeting.LocationGraveyard, db.MustCard(fodder).Zone)
	require.Equal(t, 1, db.Stack.Len())

	rpr, err := game.ResolveTopOfStack(db)
	require.NoError(t, err)
	require.Equal(t, game.Complete, advance(t, db, rpr))

	power, _ := db.Power(vampire)
	assert.Equal(t, 3, power)

	db.EndOfTurnCleanup()
	power, _ = db.Power(vampire)
	assert.Equal(t, 1, power)
}

func TestPayLifeCost(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)

	relic := db.UploadCard(game.CardFace{
		Name:  "Blood Relic",
		Types: []string{"Artifact"},
		Activated: []game.ActivatedAbilityDef{{
			Cost:    game.AbilityCost{Life: 2},
			Effects: []game.Effect{effects.ControllerDraws{Count: 1}},
		}},
	}, alice, targeting.LocationBattlefield)
	db.UploadCard(creature("Grizzly Bears", 2, 2), alice, targeting.LocationLibrary)

	pr, err := game.ActivateAbility(db, db.MustCard(relic).Modified.Activated[0])
	require.NoError(t, err)
	require.Equal(t, game.Complete, advance(t, db, pr))
	assert.Equal(t, 18, db.MustPlayer(alice).Life)

	rpr, err := game.ResolveTopOfStack(db)
	require.NoError(t, err)
	require.Equal(t, game.Complete, advance(t, db, rpr))
	assert.Len(t, db.MustPlayer(alice).Hand, 1)
}

func TestScryOrdersLibrary(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)

	bottom := db.UploadCard(creature("Bottom", 1, 1), alice, targeting.LocationLibrary)
	second := db.UploadCard(creature("Second", 1, 1), alice, targeting.LocationLibrary)
	top := db.UploadCard(creature("Top", 1, 1), alice, targeting.LocationLibrary)

	spell := db.UploadCard(sorcery("Portent", effects.Scry{Count: 2}), alice, targeting.LocationHand)
	pr := game.CastCardFrom(db, spell, targeting.LocationHand)
	require.Equal(t, game.Complete, advance(t, db, pr))

	rpr, err := game.ResolveTopOfStack(db)
	require.NoError(t, err)

	// Send "Top" to the bottom, keep "Second" on top.
	require.Equal(t, game.PendingChoice, advance(t, db, rpr))
	pick(t, db, rpr, "Top")
	require.Equal(t, game.PendingChoice, advance(t, db, rpr))
	pick(t, db, rpr, "bottom of library")
	require.Equal(t, game.PendingChoice, advance(t, db, rpr))
	pick(t, db, rpr, "Second")
	require.Equal(t, game.PendingChoice, advance(t, db, rpr))
	pick(t, db, rpr, "library")
	require.Equal(t, game.Complete, advance(t, db, rpr))

	assert.Equal(t, []game.CardID{top, bottom, second}, db.MustPlayer(alice).Library)
}

func TestDiscardDownToCount(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)

	keep := db.UploadCard(creature("Keep", 1, 1), alice, targeting.LocationHand)
	toss := db.UploadCard(creature("Toss", 1, 1), alice, targeting.LocationHand)

	pr := game.NewPendingResults(db)
	effects.DiscardCards{Count: 1}.PushPendingBehavior(db, keep, alice, pr)

	require.Equal(t, game.PendingChoice, advance(t, db, pr))
	pick(t, db, pr, "Toss")
	require.Equal(t, game.Complete, advance(t, db, pr))

	assert.Equal(t, targeting.LocationGraveyard, db.MustCard(toss).Zone)
	assert.Equal(t, []game.CardID{keep}, db.MustPlayer(alice).Hand)
}

func TestPermanentSpellEntersBattlefield(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)

	bear := db.UploadCard(creature("Grizzly Bears", 2, 2), alice, targeting.LocationHand)
	pr := game.CastCardFrom(db, bear, targeting.LocationHand)
	require.Equal(t, game.Complete, advance(t, db, pr))

	rpr, err := game.ResolveTopOfStack(db)
	require.NoError(t, err)
	require.Equal(t, game.Complete, advance(t, db, rpr))

	card := db.MustCard(bear)
	assert.Equal(t, targeting.LocationBattlefield, card.Zone)
	assert.True(t, card.SummoningSick)
	require.NotNil(t, card.CastFrom)
	assert.Equal(t, targeting.LocationHand, *card.CastFrom)
}
