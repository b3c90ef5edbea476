package classmap

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"
	"unsafe"

	"github.com/hupe1980/classmap/intern"
	"github.com/hupe1980/classmap/internal/probe"
	"github.com/hupe1980/classmap/resource"
)

// entry is one slot. key == nil marks the slot unused.
type entry struct {
	key   *intern.Str
	value Member
	index uint32
}

const (
	// BaseSize is the size of the Map header in bytes.
	BaseSize = int64(unsafe.Sizeof(Map{}))
	// EntrySize is the size of one slot in bytes.
	EntrySize = int64(unsafe.Sizeof(entry{}))
)

// Map resolves attribute names to their Member and dense slot index.
//
// A Map is populated once by New and is immutable afterwards, so any number
// of goroutines may call Lookup concurrently. Clear and Close must not run
// concurrently with lookups.
type Map struct {
	entries  []entry
	mask     uint32
	capacity uint32
	count    uint32

	reserved int64
	rc       *resource.Controller
	logger   *Logger
	metrics  MetricsCollector
}

// PlanCapacity returns the slot count New allocates for n names.
func PlanCapacity(n int) uint32 {
	return probe.Capacity(n)
}

// New builds a Map from pairs, assigning indices 0..len(pairs)-1 in input
// order.
//
// Every pair is validated before any slot is written; on error no Map is
// returned. Errors are *ErrTypeMismatch, *ErrDuplicateName or
// ErrOutOfMemory. More pairs than the largest table can hold is
// ErrInvalidInput.
func New(pairs []Pair, opts ...Option) (*Map, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	start := time.Now()
	capacity := probe.Capacity(len(pairs))
	m, err := build(pairs, capacity, &o)
	elapsed := time.Since(start)

	o.metricsCollector.RecordBuild(len(pairs), capacity, elapsed, err)
	if err != nil {
		o.logger.LogBuild(len(pairs), capacity, 0, elapsed, err)
		return nil, err
	}
	o.logger.LogBuild(len(pairs), capacity, m.ByteSize(), elapsed, nil)
	return m, nil
}

// FromMembers builds a Map from parallel name and member slices.
func FromMembers(names []string, members []Member, opts ...Option) (*Map, error) {
	if len(names) != len(members) {
		return nil, fmt.Errorf("%w: %d names for %d members", ErrInvalidInput, len(names), len(members))
	}
	pairs := make([]Pair, len(names))
	for i, name := range names {
		pairs[i] = Pair{Key: name, Value: members[i]}
	}
	return New(pairs, opts...)
}

// FromMap builds a Map from a Go map. Names are inserted in sorted order so
// the assigned indices are deterministic.
func FromMap(members map[string]Member, opts ...Option) (*Map, error) {
	names := slices.Sorted(maps.Keys(members))
	pairs := make([]Pair, len(names))
	for i, name := range names {
		pairs[i] = Pair{Key: name, Value: members[name]}
	}
	return New(pairs, opts...)
}

func validate(pairs []Pair) error {
	for i, p := range pairs {
		switch k := p.Key.(type) {
		case *intern.Str:
			if k == nil {
				return &ErrTypeMismatch{Role: "key", Index: i, Got: p.Key, Expected: "str"}
			}
		case string:
		default:
			return &ErrTypeMismatch{Role: "key", Index: i, Got: p.Key, Expected: "str"}
		}
		if _, ok := p.Value.(Member); !ok {
			return &ErrTypeMismatch{Role: "value", Index: i, Got: p.Value, Expected: "Member"}
		}
	}
	return nil
}

// checkCount rejects entry counts no plannable capacity can hold within
// the load factor.
func checkCount(n int) error {
	if limit := probe.MaxLoad(probe.MaxCapacity); uint64(n) > uint64(limit) {
		return fmt.Errorf("%w: %d entries exceed the maximum of %d", ErrInvalidInput, n, limit)
	}
	return nil
}

func build(pairs []Pair, capacity uint32, o *options) (*Map, error) {
	if err := checkCount(len(pairs)); err != nil {
		return nil, err
	}
	if err := validate(pairs); err != nil {
		return nil, err
	}

	size := BaseSize + int64(capacity)*EntrySize
	if err := o.controller.AcquireMemory(size); err != nil {
		if errors.Is(err, resource.ErrMemoryLimitExceeded) {
			return nil, fmt.Errorf("%w: class map of %d slots (%d bytes): %w", ErrOutOfMemory, capacity, size, err)
		}
		return nil, err
	}

	m := &Map{
		entries:  make([]entry, capacity),
		mask:     capacity - 1,
		capacity: capacity,
		reserved: size,
		rc:       o.controller,
		logger:   o.logger,
		metrics:  o.metricsCollector,
	}

	for i, p := range pairs {
		var key *intern.Str
		switch k := p.Key.(type) {
		case *intern.Str:
			key = k
		case string:
			key = o.names.Intern(k)
		}
		if !m.insert(key, p.Value.(Member)) {
			m.release()
			return nil, &ErrDuplicateName{Name: key.String(), Index: i}
		}
	}
	return m, nil
}

// insert stores key in the first empty slot of its probe sequence.
// It returns false if an equal key is already present.
func (m *Map) insert(key *intern.Str, value Member) bool {
	// The load factor bound guarantees an empty slot on the walk.
	for s := probe.New(key.Hash(), m.mask); ; s.Next() {
		e := &m.entries[s.Bucket()]
		if e.key == nil {
			e.key = key
			e.value = value
			e.index = m.count
			m.count++
			retain(key, value)
			return true
		}
		if intern.Equal(e.key, key) {
			return false
		}
	}
}

// Lookup returns the member and slot index stored for name.
// The returned member is borrowed from the map.
func (m *Map) Lookup(name *intern.Str) (Member, uint32, bool) {
	if m == nil || name == nil || m.entries == nil {
		return nil, 0, false
	}
	for s := probe.New(name.Hash(), m.mask); ; s.Next() {
		e := &m.entries[s.Bucket()]
		if e.key == nil {
			return nil, 0, false
		}
		if intern.Equal(e.key, name) {
			return e.value, e.index, true
		}
	}
}

// LookupString is Lookup for a name that has not been interned.
func (m *Map) LookupString(name string) (Member, uint32, bool) {
	if m == nil || m.entries == nil {
		return nil, 0, false
	}
	h := intern.Hash(name)
	for s := probe.New(h, m.mask); ; s.Next() {
		e := &m.entries[s.Bucket()]
		if e.key == nil {
			return nil, 0, false
		}
		if e.key.Hash() == h && e.key.String() == name {
			return e.value, e.index, true
		}
	}
}

// Index returns the slot index stored for name.
func (m *Map) Index(name string) (uint32, bool) {
	_, idx, ok := m.LookupString(name)
	return idx, ok
}

// Contains reports whether name is stored in the map.
func (m *Map) Contains(name string) bool {
	_, _, ok := m.LookupString(name)
	return ok
}

// Len returns the number of stored names.
func (m *Map) Len() int { return int(m.count) }

// Cap returns the number of slots.
func (m *Map) Cap() int { return int(m.capacity) }
