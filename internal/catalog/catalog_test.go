package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jesterhearts/piece-go/internal/game"
)

func TestBuiltinRegistry(t *testing.T) {
	r := Builtin()
	require.Greater(t, r.Len(), 10)

	grizzly, ok := r.Get("Alpine Grizzly")
	require.True(t, ok)
	assert.Equal(t, 4, *grizzly.Power)
	assert.Equal(t, 2, *grizzly.Toughness)
	assert.True(t, grizzly.IsPermanent())

	strike := r.MustGet("Lightning Strike")
	assert.False(t, strike.IsPermanent())
	require.Len(t, strike.SpellEffects, 1)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(game.CardFace{Name: "Once"})
	assert.Panics(t, func() {
		r.Register(game.CardFace{Name: "Once"})
	})
}

func TestNamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(game.CardFace{Name: "Zephyr"})
	r.Register(game.CardFace{Name: "Aether"})
	assert.Equal(t, []string{"Aether", "Zephyr"}, r.Names())
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"Creature", "Artifact"}, splitList("Creature, Artifact"))
}
