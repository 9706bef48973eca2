package game

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrStackEmpty is returned when popping or resolving an empty stack.
var ErrStackEmpty = errors.New("stack empty")

// StackEntryKind describes the type of object on the stack.
type StackEntryKind string

const (
	// StackEntrySpell represents a card cast as a spell.
	StackEntrySpell StackEntryKind = "SPELL"
	// StackEntryActivated represents an activated ability.
	StackEntryActivated StackEntryKind = "ACTIVATED"
	// StackEntryTriggered represents a triggered ability.
	StackEntryTriggered StackEntryKind = "TRIGGERED"
)

// StackEntry is a single object awaiting resolution: a card cast as a spell,
// or an ability with its source. It carries the target groups (one per
// effect), chosen modes and X value picked when it was put on the stack.
type StackEntry struct {
	ID         string
	Kind       StackEntryKind
	Card       CardID
	Ability    AbilityID
	Trigger    *TriggeredAbility
	Controller PlayerID
	Targets    [][]ActiveTarget
	Modes      []int
	X          *int
	// Copy marks an entry created by a copy effect; it resolves like the
	// original but never moves the card out of its zone.
	Copy bool
}

// Source returns the card the entry resolves from: the spell itself, or the
// ability's source.
func (e StackEntry) Source() CardID { return e.Card }

// Stack is the LIFO container of spells and abilities awaiting resolution.
// Entries are never reordered except by an explicit reordering effect.
type Stack struct {
	mu      sync.Mutex
	entries []StackEntry
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{entries: make([]StackEntry, 0, 16)}
}

// Push adds an entry on top of the stack, assigning it an id if it has none,
// and returns the id.
func (s *Stack) Push(entry StackEntry) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	s.entries = append(s.entries, entry)
	return entry.ID
}

// Pop removes and returns the top entry.
func (s *Stack) Pop() (StackEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return StackEntry{}, ErrStackEmpty
	}
	idx := len(s.entries) - 1
	entry := s.entries[idx]
	s.entries = s.entries[:idx]
	return entry, nil
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() (StackEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return StackEntry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Entry returns the entry with the given id from anywhere in the stack.
func (s *Stack) Entry(id string) (StackEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx := len(s.entries) - 1; idx >= 0; idx-- {
		if s.entries[idx].ID == id {
			return s.entries[idx], true
		}
	}
	return StackEntry{}, false
}

// Remove deletes an entry from anywhere in the stack by id.
func (s *Stack) Remove(id string) (StackEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx := len(s.entries) - 1; idx >= 0; idx-- {
		if s.entries[idx].ID == id {
			entry := s.entries[idx]
			s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
			return entry, true
		}
	}
	return StackEntry{}, false
}

// List returns a copy of all entries, topmost last.
func (s *Stack) List() []StackEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	cpy := make([]StackEntry, len(s.entries))
	copy(cpy, s.entries)
	return cpy
}

// Replace swaps the stack contents for the given entries, bottom first. Used
// by explicit reordering effects only.
func (s *Stack) Replace(entries []StackEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries[:0], entries...)
}

// IsEmpty reports whether the stack is empty.
func (s *Stack) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries) == 0
}

// Len returns the number of entries on the stack.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
