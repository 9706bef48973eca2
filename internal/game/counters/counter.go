package counters

import "sort"

// Counter is a named counter with a non-negative count.
type Counter struct {
	Name  string
	Count int
}

// NewCounter creates a counter with the given name and count. A non-positive
// count is normalized to 1.
func NewCounter(name string, count int) *Counter {
	if count <= 0 {
		count = 1
	}
	return &Counter{Name: name, Count: count}
}

// Add increases the counter by amount. Negative amounts are ignored.
func (c *Counter) Add(amount int) {
	if amount > 0 {
		c.Count += amount
	}
}

// Remove decreases the counter by amount, never below zero.
func (c *Counter) Remove(amount int) {
	if amount <= 0 {
		return
	}
	if c.Count >= amount {
		c.Count -= amount
	} else {
		c.Count = 0
	}
}

// Copy creates a deep copy of the counter.
func (c *Counter) Copy() *Counter {
	return &Counter{Name: c.Name, Count: c.Count}
}

// Counters is a collection of counters on a single permanent or player,
// keyed by counter name.
type Counters struct {
	Counters map[string]*Counter
}

// NewCounters creates an empty collection.
func NewCounters() *Counters {
	return &Counters{Counters: make(map[string]*Counter)}
}

// Add adds count counters of the given kind, merging with any existing
// counter of the same name.
func (cs *Counters) Add(name string, count int) {
	if count <= 0 {
		return
	}
	if existing, ok := cs.Counters[name]; ok {
		existing.Add(count)
		return
	}
	cs.Counters[name] = NewCounter(name, count)
}

// Remove removes up to count counters of the given kind and returns the
// number actually removed. The entry is dropped once it reaches zero.
func (cs *Counters) Remove(name string, count int) int {
	existing, ok := cs.Counters[name]
	if !ok || count <= 0 {
		return 0
	}
	removed := count
	if existing.Count < count {
		removed = existing.Count
	}
	existing.Remove(count)
	if existing.Count == 0 {
		delete(cs.Counters, name)
	}
	return removed
}

// Count returns the number of counters of the given kind.
func (cs *Counters) Count(name string) int {
	if existing, ok := cs.Counters[name]; ok {
		return existing.Count
	}
	return 0
}

// Total returns the number of counters of every kind combined.
func (cs *Counters) Total() int {
	total := 0
	for _, c := range cs.Counters {
		total += c.Count
	}
	return total
}

// Names returns the counter names present, sorted for deterministic
// iteration.
func (cs *Counters) Names() []string {
	names := make([]string, 0, len(cs.Counters))
	for name := range cs.Counters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Copy creates a deep copy of the collection.
func (cs *Counters) Copy() *Counters {
	cpy := NewCounters()
	for name, c := range cs.Counters {
		cpy.Counters[name] = c.Copy()
	}
	return cpy
}
