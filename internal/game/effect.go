package game

// Effect is the uniform dispatch contract every game effect implements.
//
// The lifetime of an effect: it is first moved into a PendingResults by
// PushPendingBehavior (targets unknown; the effect decides what choices to
// present) or PushBehaviorWithTargets (targets already chosen, e.g. picked
// when the spell was put on the stack). Target selection happens inside
// PendingResults, which calls back into PushBehaviorWithTargets once the
// chosen set is final. Settled ActionResults are then applied in a batch so
// the engine can still cancel before the first mutation. Compound effects
// never recurse in-process: they enqueue further bundles on the pending
// queue instead.
type Effect interface {
	// NeedsTargets is the minimum number of targets the effect requires;
	// zero for non-targeting effects.
	NeedsTargets(db *Database, source CardID) int
	// WantsTargets is the maximum number of targets the effect will accept.
	WantsTargets(db *Database, source CardID) int
	// ValidTargets computes the currently legal target set, fresh on every
	// call, excluding targets already claimed in the same resolution.
	ValidTargets(db *Database, source CardID, session LogID, controller PlayerID, alreadyChosen map[ActiveTarget]struct{}) []ActiveTarget
	// PushPendingBehavior seeds the pending queue for this effect when no
	// targets have been chosen yet.
	PushPendingBehavior(db *Database, source CardID, controller PlayerID, results *PendingResults)
	// PushBehaviorWithTargets settles the effect given its final targets,
	// producing ActionResults and/or follow-on bundles.
	PushBehaviorWithTargets(db *Database, targets []ActiveTarget, source CardID, controller PlayerID, results *PendingResults)
}

// ModalSource is implemented by effects whose behavior is picked from a
// fixed list of modes when the spell is put on the stack. The chosen mode
// indices travel on the stack entry, so a copy of the spell keeps them.
type ModalSource interface {
	ModeList() []Mode
}

// XSource is implemented by effects whose magnitude is an X the caster
// picks, and pays for in life, when the spell or ability is put on the
// stack.
type XSource interface {
	MaxX(db *Database, source CardID) int
}

// Describer is implemented by effects that carry display text for option
// lists and logs.
type Describer interface {
	Description() string
}

// EffectDescription returns the effect's display text, or a fallback.
func EffectDescription(effect Effect) string {
	if d, ok := effect.(Describer); ok {
		return d.Description()
	}
	return "effect"
}

// NonTargeting provides the target-protocol defaults for effects that never
// target; embed it to implement the targeting half of the contract.
type NonTargeting struct{}

func (NonTargeting) NeedsTargets(*Database, CardID) int { return 0 }
func (NonTargeting) WantsTargets(*Database, CardID) int { return 0 }
func (NonTargeting) ValidTargets(*Database, CardID, LogID, PlayerID, map[ActiveTarget]struct{}) []ActiveTarget {
	return nil
}

// Mode is one arm of a modal effect.
type Mode struct {
	Label   string
	Effects []Effect
}
