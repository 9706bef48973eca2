package game

// Phase is the opaque turn-phase enumeration supplied by the external turn
// tracker. The engine only needs it for restriction evaluation and cleanup
// boundaries.
type Phase int

const (
	PhaseBeginning Phase = iota
	PhaseFirstMain
	PhaseCombat
	PhaseSecondMain
	PhaseEnding
)

// TriggerOrder selects the deterministic tie-break applied when several
// triggered abilities fire simultaneously.
type TriggerOrder string

const (
	// TriggerOrderAPNAP orders the active player's triggers first, then each
	// other player in turn order, stable by creation time within a player.
	TriggerOrderAPNAP TriggerOrder = "apnap"
	// TriggerOrderTimestamp orders triggers purely by creation time.
	TriggerOrderTimestamp TriggerOrder = "timestamp"
)

// Turn tracks whose turn it is and which phase the external turn tracker has
// reached.
type Turn struct {
	Number       int
	ActivePlayer PlayerID
	Priority     PlayerID
	Phase        Phase
}
