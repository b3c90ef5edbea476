package intern

import (
	"sync"
	"sync/atomic"

	"github.com/hupe1980/classmap/internal/hash"
)

// Str is an interned string.
type Str struct {
	s    string
	hash uint32
	refs atomic.Int64
}

// New returns a Str that is not registered in any table.
// It compares equal to an interned Str with the same content.
func New(s string) *Str {
	return &Str{s: s, hash: hash.String(s)}
}

// String returns the underlying string.
func (s *Str) String() string { return s.s }

// Hash returns the cached name hash.
func (s *Str) Hash() uint32 { return s.hash }

// Retain increments the reference count.
func (s *Str) Retain() { s.refs.Add(1) }

// Release decrements the reference count.
func (s *Str) Release() {
	if s.refs.Add(-1) < 0 {
		panic("intern: release of unretained name " + s.s)
	}
}

// Refs returns the current reference count.
func (s *Str) Refs() int64 { return s.refs.Load() }

// Hash returns the name hash of s without interning it.
func Hash(s string) uint32 { return hash.String(s) }

// Equal reports whether a and b name the same string.
// Identity is checked first, then hash, then content.
func Equal(a, b *Str) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.hash == b.hash && a.s == b.s
}

// Table interns strings to unique *Str values.
// It is safe for concurrent use.
type Table struct {
	mu     sync.RWMutex
	byName map[string]*Str
}

// Default is the process-wide table.
var Default = NewTable()

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{byName: make(map[string]*Str, 256)}
}

// Intern returns the canonical Str for s, creating it if needed.
func (t *Table) Intern(s string) *Str {
	t.mu.RLock()
	if str, ok := t.byName[s]; ok {
		t.mu.RUnlock()
		return str
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()

	if str, ok := t.byName[s]; ok {
		return str
	}
	str := New(s)
	t.byName[s] = str
	return str
}

// Lookup returns the canonical Str for s if it has been interned.
func (t *Table) Lookup(s string) (*Str, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	str, ok := t.byName[s]
	return str, ok
}

// Len returns the number of interned strings.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byName)
}

// Sweep drops every string with a zero reference count and returns how many
// were removed.
func (t *Table) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for s, str := range t.byName {
		if str.Refs() == 0 {
			delete(t.byName, s)
			removed++
		}
	}
	return removed
}
