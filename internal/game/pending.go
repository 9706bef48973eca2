package game

import (
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
	"go.uber.org/zap"
)

// pendingStep is one unit of not-yet-finished resolution work. The engine
// drives the front step of the queue: RecomputeTargets keeps its option set
// fresh, Options/Description present it to the caller, and MakeChoice
// consumes one caller choice (nil meaning "use default / done"), returning
// true once the step has finished and pushed its consequences into the
// results.
type pendingStep interface {
	Cancelable(db *Database) bool
	RecomputeTargets(db *Database, alreadyChosen map[ActiveTarget]struct{}) bool
	Options(db *Database) Options
	TargetForOption(db *Database, option int) (ActiveTarget, bool)
	Description(db *Database) string
	IsEmpty() bool
	MakeChoice(db *Database, choice *int, results *PendingResults) bool
}

type stackSourceKind int

const (
	stackSourceCard stackSourceKind = iota
	stackSourceAbility
	stackSourceTrigger
)

// stackSource is a spell or ability waiting to be put onto the stack once
// all of its choices have settled.
type stackSource struct {
	kind    stackSourceKind
	card    CardID
	ability AbilityID
	trigger *TriggeredAbility
}

// PendingResults is the step-wise resolution state machine driving one or
// more effects to completion. The caller alternates between inspecting
// Options and calling Resolve with a choice until Resolve reports Complete.
type PendingResults struct {
	session LogID

	pending []pendingStep

	chosenModes      []int
	chosenTargets    [][]ActiveTarget
	allChosenTargets map[ActiveTarget]struct{}

	settled []ActionResult

	addToStack []stackSource
	castFrom   *targeting.Location
	xIs        *int

	applyInStages bool
	applied       bool
}

// NewPendingResults creates an empty resolution session tagged with a fresh
// log session marker.
func NewPendingResults(db *Database) *PendingResults {
	return &PendingResults{
		session:          db.Log.NewSession(),
		allChosenTargets: make(map[ActiveTarget]struct{}),
	}
}

// Session returns the log session marker for this resolution.
func (pr *PendingResults) Session() LogID { return pr.session }

// PushSettled appends an action result to the immediate-apply list.
func (pr *PendingResults) PushSettled(action ActionResult) {
	pr.settled = append(pr.settled, action)
}

// PushStep appends a pending step to the back of the queue.
func (pr *PendingResults) PushStep(step pendingStep) {
	pr.pending = append(pr.pending, step)
}

// PushStepFront prepends a pending step; cost-payment sub-steps go to the
// front so costs are paid before the primary effect executes.
func (pr *PendingResults) PushStepFront(step pendingStep) {
	pr.pending = append([]pendingStep{step}, pr.pending...)
}

// PushChooseTargets queues a target-selection step.
func (pr *PendingResults) PushChooseTargets(step *ChooseTargets) {
	pr.PushStep(step)
}

// PushChooseMode queues a mode-selection step.
func (pr *PendingResults) PushChooseMode(step *ChooseModes) {
	pr.PushStep(step)
}

// PushExamineCards queues an examine/distribute step (scry, discard,
// tutoring).
func (pr *PendingResults) PushExamineCards(step *ExamineCards) {
	pr.PushStep(step)
}

// PushPayCost queues a cost-payment step at the front of the queue.
func (pr *PendingResults) PushPayCost(step pendingStep) {
	if step.IsEmpty() {
		return
	}
	pr.PushStepFront(step)
}

// PushChooseCast queues a choose-to-cast step (cascade, discover).
func (pr *PendingResults) PushChooseCast(step *ChooseCast) {
	pr.PushStep(step)
}

// PushChooseDiscards queues a discard-selection step.
func (pr *PendingResults) PushChooseDiscards(step *ChooseDiscards) {
	pr.PushStep(step)
}

// PushChooseX queues an X-selection step.
func (pr *PendingResults) PushChooseX(step *ChooseX) {
	pr.PushStep(step)
}

// SetOrganizeStack queues a stack-reordering step over the given entries.
func (pr *PendingResults) SetOrganizeStack(entries []StackEntry) {
	pr.PushStep(newOrganizingStack(entries))
}

// SetDeclareAttackers queues an attacker-declaration step.
func (pr *PendingResults) SetDeclareAttackers(db *Database, attacker PlayerID) {
	pr.PushStep(newDeclaringAttackers(db, attacker))
}

// AddCardToStack records that the source card should be put onto the stack
// as a spell once all pending choices settle.
func (pr *PendingResults) AddCardToStack(card CardID, from targeting.Location) {
	pr.addToStack = append(pr.addToStack, stackSource{kind: stackSourceCard, card: card})
	f := from
	pr.castFrom = &f
}

// AddAbilityToStack records that the activated ability should be put onto
// the stack once all pending choices settle.
func (pr *PendingResults) AddAbilityToStack(source CardID, ability AbilityID) {
	pr.addToStack = append(pr.addToStack, stackSource{kind: stackSourceAbility, card: source, ability: ability})
}

// AddTriggerToStack records a triggered ability for the stack.
func (pr *PendingResults) AddTriggerToStack(source CardID, trigger *TriggeredAbility) {
	pr.addToStack = append(pr.addToStack, stackSource{kind: stackSourceTrigger, card: source, trigger: trigger})
}

// SetX records the chosen X value for the resolution.
func (pr *PendingResults) SetX(x int) { pr.xIs = &x }

// X returns the chosen X value, if any.
func (pr *PendingResults) X() *int { return pr.xIs }

// ApplyInStages makes settled actions apply as soon as each step finishes
// instead of batching them until the queue drains. Used by resolutions that
// interleave choices with visible state changes (combat, staged reveals).
func (pr *PendingResults) ApplyInStages() {
	pr.applyInStages = true
	pr.addToStack = nil
}

// PushChosenMode records a chosen mode index.
func (pr *PendingResults) PushChosenMode(choice int) {
	pr.chosenModes = append(pr.chosenModes, choice)
}

// PushInvalidTarget claims a target so later steps' recomputations exclude
// it.
func (pr *PendingResults) PushInvalidTarget(target ActiveTarget) {
	pr.allChosenTargets[target] = struct{}{}
}

// AllCurrentlyTargeted exposes the set of targets claimed so far in this
// resolution.
func (pr *PendingResults) AllCurrentlyTargeted() map[ActiveTarget]struct{} {
	return pr.allChosenTargets
}

// Options returns the current option list, recomputing the target sets of
// every queued step first so stale indices can never be presented.
func (pr *PendingResults) Options(db *Database) Options {
	for _, step := range pr.pending {
		step.RecomputeTargets(db, pr.allChosenTargets)
	}
	if len(pr.pending) > 0 {
		return pr.pending[0].Options(db)
	}
	return Options{Kind: OptionsOptional}
}

// TargetForOption maps an option index of the front step to its target.
func (pr *PendingResults) TargetForOption(db *Database, option int) (ActiveTarget, bool) {
	if len(pr.pending) == 0 {
		return ActiveTarget{}, false
	}
	return pr.pending[0].TargetForOption(db, option)
}

// Description describes the front pending step for presentation.
func (pr *PendingResults) Description(db *Database) string {
	if len(pr.pending) == 0 {
		return ""
	}
	return pr.pending[0].Description(db)
}

// IsEmpty reports whether nothing remains to choose, settle or stack.
func (pr *PendingResults) IsEmpty() bool {
	return len(pr.pending) == 0 && len(pr.settled) == 0 && len(pr.addToStack) == 0
}

// OnlyImmediateResults reports whether the remaining work needs no caller
// input, refreshing each step's option set first.
func (pr *PendingResults) OnlyImmediateResults(db *Database) bool {
	for _, step := range pr.pending {
		step.RecomputeTargets(db, pr.allChosenTargets)
		if !step.IsEmpty() {
			return false
		}
	}
	return true
}

// CanCancel reports whether the whole in-flight action can still be
// abandoned: only while no ActionResult has been applied, since applied
// mutations cannot be undone.
func (pr *PendingResults) CanCancel(db *Database) bool {
	if pr.applied {
		return false
	}
	if len(pr.pending) == 0 {
		return true
	}
	return pr.pending[0].Cancelable(db)
}

// Cancel abandons the in-flight action. It fails once any mutation has been
// applied; cancelled resolutions leave no trace in game state.
func (pr *PendingResults) Cancel(db *Database) error {
	if !pr.CanCancel(db) {
		return ErrCannotCancel
	}
	pr.pending = nil
	pr.settled = nil
	pr.addToStack = nil
	pr.chosenModes = nil
	pr.chosenTargets = nil
	pr.allChosenTargets = make(map[ActiveTarget]struct{})
	return nil
}

// Extend merges a follow-on resolution produced by applying action results
// into this one.
func (pr *PendingResults) Extend(other *PendingResults) {
	if other == nil || other.IsEmpty() {
		return
	}
	pr.pending = append(pr.pending, other.pending...)
	pr.settled = append(pr.settled, other.settled...)
	pr.addToStack = append(pr.addToStack, other.addToStack...)
	for target := range other.allChosenTargets {
		pr.allChosenTargets[target] = struct{}{}
	}
	if other.castFrom != nil {
		pr.castFrom = other.castFrom
	}
	if other.xIs != nil {
		pr.xIs = other.xIs
	}
	pr.applyInStages = pr.applyInStages || other.applyInStages
}

// Resolve advances the resolution by one step. A nil choice means "use the
// default / decline". The caller loops: TryAgain means call again with no
// choice, PendingChoice means supply one of Options' indices, Complete
// means every effect settled.
func (pr *PendingResults) Resolve(db *Database, choice *int) ResolutionResult {
	// Staged resolutions flush settled work before anything else, so every
	// later step computes its options against the effects of earlier ones.
	// The flush never consumes the caller's choice.
	if pr.applyInStages {
		for len(pr.settled) > 0 {
			pr.applyBatch(db)
		}
	}

	recomputed := false
	for _, step := range pr.pending {
		if step.RecomputeTargets(db, pr.allChosenTargets) {
			recomputed = true
		}
	}
	if recomputed {
		return TryAgain
	}

	// Steps that became empty (a cost fully paid by earlier choices, an
	// optional selection with no legal options) drop out silently.
	kept := pr.pending[:0]
	for _, step := range pr.pending {
		if skippable, ok := step.(interface{ skipWhenEmpty() bool }); ok && skippable.skipWhenEmpty() && step.IsEmpty() {
			continue
		}
		kept = append(kept, step)
	}
	pr.pending = kept

	if len(pr.pending) == 0 {
		if len(pr.addToStack) > 0 {
			source := pr.addToStack[0]
			pr.addToStack = pr.addToStack[1:]
			switch source.kind {
			case stackSourceCard:
				from := targeting.LocationHand
				if pr.castFrom != nil {
					from = *pr.castFrom
				}
				db.Logger().Debug("casting card", zap.Int("card", int(source.card)))
				pr.settled = append(pr.settled, CastCard{
					Card:    source.card,
					Targets: pr.chosenTargets,
					From:    from,
					X:       pr.xIs,
					Modes:   pr.chosenModes,
				})
			case stackSourceAbility:
				pr.settled = append(pr.settled, AddAbilityToStack{
					Source:  source.card,
					Ability: source.ability,
					Targets: pr.chosenTargets,
					X:       pr.xIs,
				})
			case stackSourceTrigger:
				pr.settled = append(pr.settled, AddTriggerToStack{
					Source:  source.card,
					Trigger: source.trigger,
					Targets: pr.chosenTargets,
				})
			}
			pr.chosenModes = nil
			pr.chosenTargets = nil
		}

		if len(pr.settled) > 0 {
			pr.applyBatch(db)
		}
		if pr.IsEmpty() {
			return Complete
		}
		return TryAgain
	}

	step := pr.pending[0]
	pr.pending = pr.pending[1:]
	if step.MakeChoice(db, choice, pr) {
		return TryAgain
	}
	pr.pending = append([]pendingStep{step}, pr.pending...)
	return PendingChoice
}

// applyBatch executes the queued settled actions against the database,
// marks the resolution irreversible, resyncs derived characteristics, and
// merges any follow-on work.
func (pr *PendingResults) applyBatch(db *Database) {
	pr.applied = true
	actions := pr.settled
	pr.settled = nil
	followUp := ApplyActionResults(db, pr.session, actions)
	db.RecomputeAll()
	pr.Extend(followUp)
}

func (pr *PendingResults) stackPending() bool { return len(pr.addToStack) > 0 }

// PushEffectTargets is the bridge ChooseTargets uses to hand a finished
// target set back to its effect and record the chosen group.
func (pr *PendingResults) PushEffectTargets(db *Database, effect Effect, targets []ActiveTarget, source CardID) {
	pr.chosenTargets = append(pr.chosenTargets, targets)
	controller := db.MustCard(source).Controller
	if len(pr.addToStack) == 0 {
		effect.PushBehaviorWithTargets(db, targets, source, controller, pr)
	}
}
