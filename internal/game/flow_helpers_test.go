package game_test

import (
	"testing"

	"github.com/Jesterhearts/piece-go/internal/game"
)

func ip(v int) *int { return &v }

func creature(name string, power, toughness int, keywords ...string) game.CardFace {
	return game.CardFace{
		Name:      name,
		Types:     []string{"Creature"},
		Keywords:  keywords,
		Power:     ip(power),
		Toughness: ip(toughness),
	}
}

func sorcery(name string, spellEffects ...game.Effect) game.CardFace {
	return game.CardFace{Name: name, Types: []string{"Sorcery"}, SpellEffects: spellEffects}
}

func instant(name string, spellEffects ...game.Effect) game.CardFace {
	return game.CardFace{Name: name, Types: []string{"Instant"}, SpellEffects: spellEffects}
}

// advance drives the resolution with no choices until it either completes
// or needs one.
func advance(t *testing.T, db *game.Database, pr *game.PendingResults) game.ResolutionResult {
	t.Helper()
	for i := 0; i < 100; i++ {
		res := pr.Resolve(db, nil)
		if res != game.TryAgain {
			return res
		}
	}
	t.Fatal("resolution did not settle within bound")
	return game.PendingChoice
}

// pick submits the option with the given label for the front pending step.
func pick(t *testing.T, db *game.Database, pr *game.PendingResults, label string) {
	t.Helper()
	opts := pr.Options(db)
	for _, choice := range opts.Choices {
		if choice.Label == label {
			idx := choice.Index
			pr.Resolve(db, &idx)
			return
		}
	}
	t.Fatalf("no option labeled %q at %q; have %v", label, pr.Description(db), opts.Choices)
}

func optionLabels(db *game.Database, pr *game.PendingResults) []string {
	var out []string
	for _, choice := range pr.Options(db).Choices {
		out = append(out, choice.Label)
	}
	return out
}
