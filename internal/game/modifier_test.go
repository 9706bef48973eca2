package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jesterhearts/piece-go/internal/game/counters"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

func TestStaticModifierAppliesAndRevertsWhenSourceLeaves(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bob := db.AddPlayer("Bob", 20)

	mine := db.UploadCard(creatureFace("Alpine Grizzly", 4, 2), alice, targeting.LocationBattlefield)
	theirs := db.UploadCard(creatureFace("Leaf Gilder", 2, 1), bob, targeting.LocationBattlefield)

	anthem := db.UploadCard(CardFace{
		Name:  "Glorious Anthem",
		Types: []string{"Enchantment"},
		StaticModifiers: []ModifierSpec{{
			Layer: LayerPowerToughness,
			Restrictions: []targeting.Restriction{
				targeting.OfType([]string{"Creature"}, nil),
				targeting.OnBattlefield(),
				targeting.Controller(targeting.ControllerSelf),
			},
			AddPower:     2,
			AddToughness: 2,
		}},
	}, alice, targeting.LocationHand)
	db.MoveToBattlefield(anthem, false)

	power, ok := db.Power(mine)
	require.True(t, ok)
	assert.Equal(t, 6, power)
	toughness, _ := db.Toughness(mine)
	assert.Equal(t, 4, toughness)

	// The opponent's creature is outside the anthem's controller restriction.
	power, _ = db.Power(theirs)
	assert.Equal(t, 2, power)

	ApplyActionResults(db, db.Log.NewSession(), []ActionResult{
		PermanentToGraveyard{Card: anthem, Reason: LeaveDestroyed},
	})
	db.RecomputeAll()

	power, _ = db.Power(mine)
	assert.Equal(t, 4, power)
	toughness, _ = db.Toughness(mine)
	assert.Equal(t, 2, toughness)
}

func TestTemporaryModifierRemovedAtEndOfTurn(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bear := db.UploadCard(creatureFace("Grizzly Bears", 2, 2), alice, targeting.LocationBattlefield)

	id := db.UploadTemporaryModifier(bear, ModifierSpec{
		Layer:        LayerPowerToughness,
		Duration:     DurationUntilEndOfTurn,
		AddPower:     4,
		AddToughness: 4,
	})
	db.AttachModifier(id, bear)

	power, _ := db.Power(bear)
	assert.Equal(t, 6, power)

	db.EndOfTurnCleanup()

	power, _ = db.Power(bear)
	assert.Equal(t, 2, power)
	_, ok := db.Modifier(id)
	assert.False(t, ok, "temporary modifier should be dropped on deactivation")
}

func TestRecomputeIsIdempotent(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bear := db.UploadCard(creatureFace("Grizzly Bears", 2, 2), alice, targeting.LocationBattlefield)

	id := db.UploadTemporaryModifier(bear, ModifierSpec{
		Layer:    LayerPowerToughness,
		AddPower: 3,
	})
	db.AttachModifier(id, bear)

	first, _ := db.Power(bear)
	db.RecomputeAll()
	db.RecomputeAll()
	second, _ := db.Power(bear)
	assert.Equal(t, first, second)
	assert.Equal(t, 5, second)
}

func TestSetPowerOverridesEarlierAdds(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bear := db.UploadCard(creatureFace("Grizzly Bears", 2, 2), alice, targeting.LocationBattlefield)

	add := db.UploadTemporaryModifier(bear, ModifierSpec{
		Layer:    LayerPowerToughness,
		AddPower: 2,
	})
	db.AttachModifier(add, bear)
	set := db.UploadTemporaryModifier(bear, ModifierSpec{
		Layer:        LayerPowerToughness,
		SetPower:     intp(0),
		SetToughness: intp(1),
	})
	db.AttachModifier(set, bear)

	// The later timestamp wins: the set replaces the boosted value.
	power, _ := db.Power(bear)
	assert.Equal(t, 0, power)
	toughness, _ := db.Toughness(bear)
	assert.Equal(t, 1, toughness)

	db.DeactivateModifier(set)
	power, _ = db.Power(bear)
	assert.Equal(t, 4, power)
}

func TestBoostCountersStackOnModifiedValues(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bear := db.UploadCard(creatureFace("Grizzly Bears", 2, 2), alice, targeting.LocationBattlefield)

	ApplyActionResults(db, db.Log.NewSession(), []ActionResult{
		AddCounters{Card: bear, Kind: counters.KindP1P1, Count: 2},
	})
	db.RecomputeAll()

	power, _ := db.Power(bear)
	assert.Equal(t, 4, power)
	toughness, _ := db.Toughness(bear)
	assert.Equal(t, 4, toughness)

	mod := db.UploadTemporaryModifier(bear, ModifierSpec{Layer: LayerPowerToughness, AddPower: 1})
	db.AttachModifier(mod, bear)
	power, _ = db.Power(bear)
	assert.Equal(t, 5, power)
}

func TestRemoveAllAbilitiesRevokesActivation(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	pinger := db.UploadCard(CardFace{
		Name:      "Prodigal Pyromancer",
		Types:     []string{"Creature"},
		Power:     intp(1),
		Toughness: intp(1),
		Activated: []ActivatedAbilityDef{{
			Text: "{T}: deal 1 damage",
			Cost: AbilityCost{TapThis: true},
		}},
	}, alice, targeting.LocationBattlefield)

	card := db.MustCard(pinger)
	require.Len(t, card.Modified.Activated, 1)
	abilityID := card.Modified.Activated[0]

	mod := db.UploadTemporaryModifier(pinger, ModifierSpec{
		Layer:              LayerAbility,
		RemoveAllAbilities: true,
	})
	db.AttachModifier(mod, pinger)

	assert.Empty(t, db.MustCard(pinger).Modified.Activated)
	_, err := ActivateAbility(db, abilityID)
	assert.Error(t, err)

	db.DeactivateModifier(mod)
	assert.Len(t, db.MustCard(pinger).Modified.Activated, 1)
}

func TestGrantedAbilityCollectedAfterDeactivation(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bear := db.UploadCard(creatureFace("Grizzly Bears", 2, 2), alice, targeting.LocationBattlefield)

	mod := db.UploadTemporaryModifier(bear, ModifierSpec{
		Layer: LayerAbility,
		GrantAbilities: []ActivatedAbilityDef{{
			Text: "{T}: granted",
			Cost: AbilityCost{TapThis: true},
		}},
	})
	db.AttachModifier(mod, bear)

	granted := db.MustModifier(mod).GrantedAbilities()
	require.Len(t, granted, 1)
	assert.Contains(t, db.MustCard(bear).Modified.Activated, granted[0])

	db.DeactivateModifier(mod)
	assert.NotContains(t, db.MustCard(bear).Modified.Activated, granted[0])

	// The ability entity survives until end-of-turn garbage collection, in
	// case the stack still references it.
	_, ok := db.Ability(granted[0])
	assert.True(t, ok)
	db.EndOfTurnCleanup()
	_, ok = db.Ability(granted[0])
	assert.False(t, ok)
}

func TestCloningReplacesBaseCharacteristics(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bear := db.UploadCard(creatureFace("Grizzly Bears", 2, 2), alice, targeting.LocationBattlefield)

	clone := creatureFace("Alpine Grizzly", 4, 2)
	db.MustCard(bear).Cloning = &clone
	db.ApplyModifiersLayered(bear)

	power, _ := db.Power(bear)
	assert.Equal(t, 4, power)
	assert.Equal(t, "Grizzly Bears", db.MustCard(bear).Face.Name)
}
