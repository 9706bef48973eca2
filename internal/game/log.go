package game

import "go.uber.org/zap"

// LogID tags a session of related log entries. Restriction predicates ask
// "has X happened since this action began" by filtering entries on the
// session marker instead of re-deriving history from mutable state.
type LogID int

// LeaveReason records why a card left the battlefield.
type LeaveReason int

const (
	LeaveExiled LeaveReason = iota
	LeavePutIntoGraveyard
	LeaveReturnedToHand
	LeaveReturnedToLibrary
	LeaveSacrificed
	LeaveDestroyed
)

// EntryKind discriminates game log entries.
type EntryKind int

const (
	EntryNewTurn EntryKind = iota
	EntryCast
	EntryTapped
	EntryCardChosen
	EntryLeftBattlefield
	EntryEnteredBattlefield
	EntryAbilityActivated
	EntrySpellResolved
	EntryDiscarded
)

// Entry is one append-only record of a notable game event.
type Entry struct {
	Kind   EntryKind
	Card   CardID
	Player PlayerID
	Reason LeaveReason
	Turn   int
}

type taggedEntry struct {
	session LogID
	entry   Entry
}

// Log is the append-only, session-tagged game event log.
type Log struct {
	entries []taggedEntry
	current LogID
	logger  *zap.Logger
}

// NewLog creates an empty log. A nil logger is replaced with a no-op.
func NewLog(logger *zap.Logger) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{logger: logger}
}

// NewSession advances the session marker and returns it. Each interactive
// action begins a fresh session.
func (l *Log) NewSession() LogID {
	l.current++
	return l.current
}

// CurrentSession returns the session marker without advancing it.
func (l *Log) CurrentSession() LogID {
	return l.current
}

// Session returns the entries recorded under the given session marker.
func (l *Log) Session(id LogID) []Entry {
	var out []Entry
	for _, te := range l.entries {
		if te.session == id {
			out = append(out, te.entry)
		}
	}
	return out
}

// All returns every recorded entry in order.
func (l *Log) All() []Entry {
	out := make([]Entry, len(l.entries))
	for i, te := range l.entries {
		out[i] = te.entry
	}
	return out
}

func (l *Log) add(entry Entry) {
	l.entries = append(l.entries, taggedEntry{session: l.current, entry: entry})
}

// LogNewTurn records the start of a player's turn.
func (l *Log) LogNewTurn(player PlayerID, turn int) {
	l.logger.Debug("new turn", zap.Int("player", int(player)), zap.Int("turn", turn))
	l.add(Entry{Kind: EntryNewTurn, Player: player, Turn: turn})
}

// LogCast records a card being cast.
func (l *Log) LogCast(card CardID) {
	l.logger.Debug("cast", zap.Int("card", int(card)))
	l.add(Entry{Kind: EntryCast, Card: card})
}

// LogTapped records a card becoming tapped.
func (l *Log) LogTapped(card CardID) {
	l.logger.Debug("tapped", zap.Int("card", int(card)))
	l.add(Entry{Kind: EntryTapped, Card: card})
}

// LogCardChosen records a card being chosen during resolution.
func (l *Log) LogCardChosen(card CardID) {
	l.logger.Debug("card chosen", zap.Int("card", int(card)))
	l.add(Entry{Kind: EntryCardChosen, Card: card})
}

// LogLeftBattlefield records a card leaving the battlefield and why.
func (l *Log) LogLeftBattlefield(card CardID, reason LeaveReason) {
	l.logger.Debug("left battlefield", zap.Int("card", int(card)), zap.Int("reason", int(reason)))
	l.add(Entry{Kind: EntryLeftBattlefield, Card: card, Reason: reason})
}

// LogEnteredBattlefield records a card entering the battlefield.
func (l *Log) LogEnteredBattlefield(card CardID) {
	l.logger.Debug("entered battlefield", zap.Int("card", int(card)))
	l.add(Entry{Kind: EntryEnteredBattlefield, Card: card})
}

// LogAbilityActivated records an ability activation.
func (l *Log) LogAbilityActivated(card CardID) {
	l.logger.Debug("ability activated", zap.Int("card", int(card)))
	l.add(Entry{Kind: EntryAbilityActivated, Card: card})
}

// LogSpellResolved records a spell finishing resolution.
func (l *Log) LogSpellResolved(card CardID, controller PlayerID) {
	l.logger.Debug("spell resolved", zap.Int("card", int(card)), zap.Int("controller", int(controller)))
	l.add(Entry{Kind: EntrySpellResolved, Card: card, Player: controller})
}

// LogDiscarded records a discard.
func (l *Log) LogDiscarded(card CardID) {
	l.logger.Debug("discarded", zap.Int("card", int(card)))
	l.add(Entry{Kind: EntryDiscarded, Card: card})
}
