package catalog

import (
	"github.com/Jesterhearts/piece-go/internal/game"
	"github.com/Jesterhearts/piece-go/internal/game/effects"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

// Builtin returns the registry of scripted cards shipped with the engine.
func Builtin() *Registry {
	r := NewRegistry()

	r.Register(game.CardFace{
		Name:      "Alpine Grizzly",
		ManaValue: 3,
		Colors:    []string{"Green"},
		Types:     []string{"Creature"},
		Subtypes:  []string{"Bear"},
		Power:     intPtr(4),
		Toughness: intPtr(2),
	})

	r.Register(game.CardFace{
		Name:      "Leaf Gilder",
		ManaValue: 2,
		Colors:    []string{"Green"},
		Types:     []string{"Creature"},
		Subtypes:  []string{"Elf", "Druid"},
		Power:     intPtr(2),
		Toughness: intPtr(1),
	})

	r.Register(game.CardFace{
		Name:      "Lightning Strike",
		ManaValue: 2,
		Colors:    []string{"Red"},
		Types:     []string{"Instant"},
		SpellEffects: []game.Effect{
			effects.DealDamage{Amount: 3, AnyTarget: true, Restrictions: targeting.Creatures()},
		},
	})

	r.Register(game.CardFace{
		Name:      "Titanic Growth",
		ManaValue: 2,
		Colors:    []string{"Green"},
		Types:     []string{"Instant"},
		SpellEffects: []game.Effect{
			effects.ModifyTarget{
				Spec: game.ModifierSpec{
					Layer:        game.LayerPowerToughness,
					Duration:     game.DurationUntilEndOfTurn,
					AddPower:     4,
					AddToughness: 4,
				},
				Restrictions: targeting.Creatures(),
			},
		},
	})

	r.Register(game.CardFace{
		Name:      "Glorious Anthem",
		ManaValue: 3,
		Colors:    []string{"White"},
		Types:     []string{"Enchantment"},
		StaticModifiers: []game.ModifierSpec{
			{
				Layer:        game.LayerPowerToughness,
				Scope:        game.ScopeEntireBattlefield,
				AddPower:     1,
				AddToughness: 1,
				Restrictions: append(targeting.Creatures(), targeting.Controller(targeting.ControllerSelf)),
			},
		},
	})

	r.Register(game.CardFace{
		Name:      "Cancel",
		ManaValue: 3,
		Colors:    []string{"Blue"},
		Types:     []string{"Instant"},
		SpellEffects: []game.Effect{
			effects.CounterTargetSpell{},
		},
	})

	r.Register(game.CardFace{
		Name:      "Divination",
		ManaValue: 3,
		Colors:    []string{"Blue"},
		Types:     []string{"Sorcery"},
		SpellEffects: []game.Effect{
			effects.ControllerDraws{Count: 2},
		},
	})

	r.Register(game.CardFace{
		Name:      "Murder",
		ManaValue: 3,
		Colors:    []string{"Black"},
		Types:     []string{"Instant"},
		SpellEffects: []game.Effect{
			effects.DestroyTarget{Restrictions: targeting.Creatures()},
		},
	})

	r.Register(game.CardFace{
		Name:      "Day of Judgment",
		ManaValue: 4,
		Colors:    []string{"White"},
		Types:     []string{"Sorcery"},
		SpellEffects: []game.Effect{
			effects.DestroyEach{Restrictions: targeting.Creatures()},
		},
	})

	r.Register(game.CardFace{
		Name:      "Unsummon",
		ManaValue: 1,
		Colors:    []string{"Blue"},
		Types:     []string{"Instant"},
		SpellEffects: []game.Effect{
			effects.ReturnTargetToHand{Restrictions: targeting.Creatures()},
		},
	})

	r.Register(game.CardFace{
		Name:      "Prodigal Pyromancer",
		ManaValue: 3,
		Colors:    []string{"Red"},
		Types:     []string{"Creature"},
		Subtypes:  []string{"Human", "Wizard"},
		Power:     intPtr(1),
		Toughness: intPtr(1),
		Activated: []game.ActivatedAbilityDef{
			{
				Text: "{T}: Prodigal Pyromancer deals 1 damage to any target.",
				Cost: game.AbilityCost{TapThis: true},
				Effects: []game.Effect{
					effects.DealDamage{Amount: 1, AnyTarget: true, Restrictions: targeting.Creatures()},
				},
			},
		},
	})

	r.Register(game.CardFace{
		Name:      "Blood Artist",
		ManaValue: 2,
		Colors:    []string{"Black"},
		Types:     []string{"Creature"},
		Subtypes:  []string{"Vampire"},
		Power:     intPtr(0),
		Toughness: intPtr(1),
		Triggered: []game.TriggeredAbility{
			{
				Trigger:      game.TriggerPutIntoGraveyard,
				Restrictions: []targeting.Restriction{targeting.OfType([]string{"Creature"}, nil)},
				Effects: []game.Effect{
					effects.ControllerGainsLife{Amount: 1},
					effects.EachOpponentLosesLife{Amount: 1},
				},
				Text: "Whenever this or another creature dies, target player loses 1 life and you gain 1 life.",
			},
		},
	})

	r.Register(game.CardFace{
		Name:      "Elvish Visionary",
		ManaValue: 2,
		Colors:    []string{"Green"},
		Types:     []string{"Creature"},
		Subtypes:  []string{"Elf", "Shaman"},
		Power:     intPtr(1),
		Toughness: intPtr(1),
		ETBEffects: []game.Effect{
			effects.ControllerDraws{Count: 1},
		},
	})

	r.Register(game.CardFace{
		Name:      "Raise the Alarm",
		ManaValue: 2,
		Colors:    []string{"White"},
		Types:     []string{"Instant"},
		SpellEffects: []game.Effect{
			effects.CreateToken{
				Count: 2,
				Face: game.CardFace{
					Name:      "Soldier Token",
					Colors:    []string{"White"},
					Types:     []string{"Creature"},
					Subtypes:  []string{"Soldier"},
					Power:     intPtr(1),
					Toughness: intPtr(1),
				},
			},
		},
	})

	r.Register(game.CardFace{
		Name:      "Banishing Light",
		ManaValue: 3,
		Colors:    []string{"White"},
		Types:     []string{"Enchantment"},
		ETBEffects: []game.Effect{
			effects.ExileTarget{
				Restrictions:      []targeting.Restriction{targeting.NotSelf(), targeting.OnBattlefield()},
				UntilSourceLeaves: true,
			},
		},
	})

	r.Register(game.CardFace{
		Name:      "Bloodsoaked Champion",
		ManaValue: 1,
		Colors:    []string{"Black"},
		Types:     []string{"Creature"},
		Subtypes:  []string{"Human", "Warrior"},
		Power:     intPtr(2),
		Toughness: intPtr(1),
		Keywords:  []string{"Haste"},
	})

	r.Register(game.CardFace{
		Name:      "Bloodthrone Vampire",
		ManaValue: 2,
		Colors:    []string{"Black"},
		Types:     []string{"Creature"},
		Subtypes:  []string{"Vampire"},
		Power:     intPtr(1),
		Toughness: intPtr(1),
		Activated: []game.ActivatedAbilityDef{
			{
				Text: "Sacrifice a creature: Bloodthrone Vampire gets +2/+2 until end of turn.",
				Cost: game.AbilityCost{SacrificeRestrictions: targeting.Creatures()},
				Effects: []game.Effect{
					effects.ModifySelf{
						Spec: game.ModifierSpec{
							Layer:        game.LayerPowerToughness,
							Duration:     game.DurationUntilEndOfTurn,
							AddPower:     2,
							AddToughness: 2,
						},
					},
				},
			},
		},
	})

	r.Register(game.CardFace{
		Name:      "Sign in Blood",
		ManaValue: 2,
		Colors:    []string{"Black"},
		Types:     []string{"Sorcery"},
		SpellEffects: []game.Effect{
			effects.TargetPlayerDraws{Count: 2},
		},
	})

	r.Register(game.CardFace{
		Name:      "Preordain",
		ManaValue: 1,
		Colors:    []string{"Blue"},
		Types:     []string{"Sorcery"},
		SpellEffects: []game.Effect{
			effects.Scry{Count: 2},
			effects.ControllerDraws{Count: 1},
		},
	})

	r.Register(game.CardFace{
		Name:      "Careful Study",
		ManaValue: 1,
		Colors:    []string{"Blue"},
		Types:     []string{"Sorcery"},
		SpellEffects: []game.Effect{
			effects.ControllerDraws{Count: 2},
			effects.DiscardCards{Count: 2},
		},
	})

	r.Register(game.CardFace{
		Name:      "Blaze",
		ManaValue: 1,
		Colors:    []string{"Red"},
		Types:     []string{"Sorcery"},
		SpellEffects: []game.Effect{
			effects.DealXDamage{AnyTarget: true, Restrictions: targeting.Creatures()},
		},
	})

	r.Register(game.CardFace{
		Name:      "Tyrant's Choice",
		ManaValue: 2,
		Colors:    []string{"Black"},
		Types:     []string{"Sorcery"},
		SpellEffects: []game.Effect{
			effects.Modal{Modes: []game.Mode{
				{Label: "each opponent loses 4 life", Effects: []game.Effect{effects.EachOpponentLosesLife{Amount: 4}}},
				{Label: "you gain 4 life", Effects: []game.Effect{effects.ControllerGainsLife{Amount: 4}}},
			}},
		},
	})

	r.Register(game.CardFace{
		Name:      "Maelstrom Colossus",
		ManaValue: 8,
		Types:     []string{"Artifact", "Creature"},
		Subtypes:  []string{"Golem"},
		Power:     intPtr(7),
		Toughness: intPtr(7),
		SpellEffects: []game.Effect{
			effects.Cascade{},
		},
	})

	r.Register(game.CardFace{
		Name:     "Forest",
		Types:    []string{"Land"},
		Subtypes: []string{"Forest"},
	})

	return r
}
