package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

func applyOne(db *Database, action ActionResult) *PendingResults {
	return ApplyActionResults(db, db.Log.NewSession(), []ActionResult{action})
}

func TestLethalDamageDestroys(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bear := db.UploadCard(creatureFace("Grizzly Bears", 2, 2), alice, targeting.LocationBattlefield)

	applyOne(db, DamageTarget{Target: BattlefieldTarget(bear), Amount: 1})
	assert.Equal(t, targeting.LocationBattlefield, db.MustCard(bear).Zone)
	assert.Equal(t, 1, db.MustCard(bear).Damage)

	applyOne(db, DamageTarget{Target: BattlefieldTarget(bear), Amount: 1})
	assert.Equal(t, targeting.LocationGraveyard, db.MustCard(bear).Zone)
}

func TestDamageToPlayerCanLoseTheGame(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 3)

	applyOne(db, DamageTarget{Target: PlayerTarget(alice), Amount: 3})
	player := db.MustPlayer(alice)
	assert.Equal(t, 0, player.Life)
	assert.True(t, player.Lost)
}

func TestDestroySkipsIndestructible(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	wall := db.UploadCard(creatureFace("Darksteel Myr", 0, 1, "Indestructible"), alice, targeting.LocationBattlefield)

	applyOne(db, DestroyTarget{Card: wall})
	assert.Equal(t, targeting.LocationBattlefield, db.MustCard(wall).Zone)
}

func TestDestroyEachMatchesRestrictions(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bob := db.AddPlayer("Bob", 20)
	mine := db.UploadCard(creatureFace("Grizzly Bears", 2, 2), alice, targeting.LocationBattlefield)
	theirs := db.UploadCard(creatureFace("Leaf Gilder", 2, 1), bob, targeting.LocationBattlefield)
	land := db.UploadCard(CardFace{Name: "Forest", Types: []string{"Land"}}, bob, targeting.LocationBattlefield)

	wrath := db.UploadCard(CardFace{Name: "Day of Judgment", Types: []string{"Sorcery"}}, alice, targeting.LocationHand)
	applyOne(db, DestroyEach{Source: wrath, Restrictions: targeting.Creatures()})

	assert.Equal(t, targeting.LocationGraveyard, db.MustCard(mine).Zone)
	assert.Equal(t, targeting.LocationGraveyard, db.MustCard(theirs).Zone)
	assert.Equal(t, targeting.LocationBattlefield, db.MustCard(land).Zone)
}

func TestDrawFromEmptyLibraryLoses(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	db.UploadCard(creatureFace("Grizzly Bears", 2, 2), alice, targeting.LocationLibrary)

	applyOne(db, DrawCards{Player: alice, Count: 2})
	player := db.MustPlayer(alice)
	assert.Len(t, player.Hand, 1)
	assert.True(t, player.Lost)
}

func TestTokenCeasesToExistLeavingBattlefield(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)

	applyOne(db, CreateToken{Controller: alice, Face: creatureFace("Soldier", 1, 1)})
	battlefield := db.MustPlayer(alice).Battlefield
	require.Len(t, battlefield, 1)
	token := battlefield[0]

	applyOne(db, ReturnToHand{Card: token})
	_, ok := db.Card(token)
	assert.False(t, ok)
	assert.Empty(t, db.MustPlayer(alice).Hand)
}

func TestTokenCopyUsesCurrentBase(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bear := db.UploadCard(creatureFace("Grizzly Bears", 2, 2), alice, targeting.LocationBattlefield)
	clone := creatureFace("Alpine Grizzly", 4, 2)
	db.MustCard(bear).Cloning = &clone

	applyOne(db, CreateTokenCopy{Controller: alice, Copying: bear})

	battlefield := db.MustPlayer(alice).Battlefield
	require.Len(t, battlefield, 2)
	copyID := battlefield[1]
	assert.Equal(t, "Alpine Grizzly", db.MustCard(copyID).Face.Name)
	assert.True(t, db.MustCard(copyID).Token)
	assert.True(t, db.MustCard(copyID).SummoningSick)
}

func TestExileUntilSourceLeavesReturnsCard(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bob := db.AddPlayer("Bob", 20)
	light := db.UploadCard(CardFace{Name: "Banishing Light", Types: []string{"Enchantment"}}, alice, targeting.LocationBattlefield)
	bear := db.UploadCard(creatureFace("Grizzly Bears", 2, 2), bob, targeting.LocationBattlefield)

	applyOne(db, ExileTarget{Card: bear, Source: light, UntilSourceLeaves: true})
	assert.Equal(t, targeting.LocationExile, db.MustCard(bear).Zone)

	applyOne(db, PermanentToGraveyard{Card: light, Reason: LeaveDestroyed})
	assert.Equal(t, targeting.LocationBattlefield, db.MustCard(bear).Zone)
	assert.Equal(t, []CardID{bear}, db.MustPlayer(bob).Battlefield)
}

func TestDeclareAttackersRespectsVigilance(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	watcher := db.UploadCard(creatureFace("Serra Angel", 4, 4, "Vigilance"), alice, targeting.LocationBattlefield)
	bear := db.UploadCard(creatureFace("Grizzly Bears", 2, 2), alice, targeting.LocationBattlefield)

	applyOne(db, DeclareAttackers{Cards: []CardID{watcher, bear}})

	assert.True(t, db.MustCard(watcher).Attacking)
	assert.False(t, db.MustCard(watcher).Tapped)
	assert.True(t, db.MustCard(bear).Attacking)
	assert.True(t, db.MustCard(bear).Tapped)
}

func TestMillMovesTopCards(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bottom := db.UploadCard(creatureFace("One", 1, 1), alice, targeting.LocationLibrary)
	middle := db.UploadCard(creatureFace("Two", 1, 1), alice, targeting.LocationLibrary)
	top := db.UploadCard(creatureFace("Three", 1, 1), alice, targeting.LocationLibrary)

	applyOne(db, Mill{Player: alice, Count: 2})

	player := db.MustPlayer(alice)
	assert.Equal(t, []CardID{bottom}, player.Library)
	assert.Equal(t, []CardID{top, middle}, player.Graveyard)
}

func TestDiscardOnlyTouchesHand(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	held := db.UploadCard(creatureFace("Held", 1, 1), alice, targeting.LocationHand)
	fielded := db.UploadCard(creatureFace("Fielded", 1, 1), alice, targeting.LocationBattlefield)

	applyOne(db, Discard{Player: alice, Cards: []CardID{held, fielded}})

	assert.Equal(t, targeting.LocationGraveyard, db.MustCard(held).Zone)
	assert.Equal(t, targeting.LocationBattlefield, db.MustCard(fielded).Zone)
}

func TestReturnToHandClearsTransientState(t *testing.T) {
	db := NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	bear := db.UploadCard(creatureFace("Grizzly Bears", 2, 2), alice, targeting.LocationBattlefield)
	db.TapCard(bear)
	db.MustCard(bear).Damage = 1

	applyOne(db, ReturnToHand{Card: bear})

	card := db.MustCard(bear)
	assert.Equal(t, targeting.LocationHand, card.Zone)
	assert.False(t, card.Tapped)
	assert.Zero(t, card.Damage)
}
