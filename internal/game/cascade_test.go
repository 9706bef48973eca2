package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jesterhearts/piece-go/internal/game"
	"github.com/Jesterhearts/piece-go/internal/game/effects"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

func TestCascadeHitsFirstCheaperNonland(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)

	// Library from bottom to top: the top land and the expensive creature
	// are revealed and bottomed; the cheap sorcery is the cascade hit.
	gift := db.UploadCard(game.CardFace{
		Name:         "Gift",
		ManaValue:    1,
		Types:        []string{"Sorcery"},
		SpellEffects: []game.Effect{effects.ControllerGainsLife{Amount: 3}},
	}, alice, targeting.LocationLibrary)
	giant := db.UploadCard(game.CardFace{
		Name:      "Giant",
		ManaValue: 5,
		Types:     []string{"Creature"},
		Power:     ip(5),
		Toughness: ip(5),
	}, alice, targeting.LocationLibrary)
	forest := db.UploadCard(game.CardFace{Name: "Forest", Types: []string{"Land"}}, alice, targeting.LocationLibrary)

	pr := game.NewPendingResults(db)
	pr.PushSettled(game.Cascade{Controller: alice, ManaValue: 3})

	require.Equal(t, game.PendingChoice, advance(t, db, pr))
	pick(t, db, pr, "cast Gift")
	require.Equal(t, game.Complete, advance(t, db, pr))

	// The hit went on the stack; the other revealed cards are bottomed.
	require.Equal(t, 1, db.Stack.Len())
	assert.Equal(t, targeting.LocationStack, db.MustCard(gift).Zone)
	library := db.MustPlayer(alice).Library
	require.Len(t, library, 2)
	assert.Contains(t, library, giant)
	assert.Contains(t, library, forest)

	rpr, err := game.ResolveTopOfStack(db)
	require.NoError(t, err)
	require.Equal(t, game.Complete, advance(t, db, rpr))
	assert.Equal(t, 23, db.MustPlayer(alice).Life)
}

func TestCascadeDeclined(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)

	gift := db.UploadCard(game.CardFace{
		Name:         "Gift",
		ManaValue:    1,
		Types:        []string{"Sorcery"},
		SpellEffects: []game.Effect{effects.ControllerGainsLife{Amount: 3}},
	}, alice, targeting.LocationLibrary)

	pr := game.NewPendingResults(db)
	pr.PushSettled(game.Cascade{Controller: alice, ManaValue: 3})

	require.Equal(t, game.PendingChoice, advance(t, db, pr))
	require.Equal(t, game.Complete, advance(t, db, pr))

	assert.True(t, db.Stack.IsEmpty())
	assert.Equal(t, targeting.LocationLibrary, db.MustCard(gift).Zone)
}

func TestCascadeWithNoHitBottomsEverything(t *testing.T) {
	db := game.NewDatabase(nil)
	alice := db.AddPlayer("Alice", 20)
	db.UploadCard(game.CardFace{Name: "Forest", Types: []string{"Land"}}, alice, targeting.LocationLibrary)
	db.UploadCard(game.CardFace{Name: "Forest", Types: []string{"Land"}}, alice, targeting.LocationLibrary)

	pr := game.NewPendingResults(db)
	pr.PushSettled(game.Cascade{Controller: alice, ManaValue: 2})
	require.Equal(t, game.Complete, advance(t, db, pr))

	assert.True(t, db.Stack.IsEmpty())
	assert.Len(t, db.MustPlayer(alice).Library, 2)
}
