package classmap

import (
	"iter"

	"github.com/hupe1980/classmap/intern"
	"github.com/hupe1980/classmap/internal/probe"
)

// ByteSize returns the map's memory footprint: BaseSize plus EntrySize for
// every slot it still owns.
func (m *Map) ByteSize() int64 {
	return BaseSize + int64(len(m.entries))*EntrySize
}

// LoadFactor returns Len()/Cap().
func (m *Map) LoadFactor() float64 {
	if m.capacity == 0 {
		return 0
	}
	return float64(m.count) / float64(m.capacity)
}

// Stats describes a map's layout.
type Stats struct {
	Count      int     `json:"count"`
	Capacity   int     `json:"capacity"`
	ByteSize   int64   `json:"byte_size"`
	LoadFactor float64 `json:"load_factor"`
	// MaxProbe is the longest probe walk (in Next steps) any stored name needs.
	MaxProbe int `json:"max_probe"`
	// MeanProbe is the average probe walk over stored names.
	MeanProbe float64 `json:"mean_probe"`
}

// Stats computes layout statistics by replaying every stored name's probe
// sequence.
func (m *Map) Stats() Stats {
	st := Stats{
		Count:      m.Len(),
		Capacity:   m.Cap(),
		ByteSize:   m.ByteSize(),
		LoadFactor: m.LoadFactor(),
	}
	total := 0
	for i := range m.entries {
		key := m.entries[i].key
		if key == nil {
			continue
		}
		s := probe.New(key.Hash(), m.mask)
		for s.Bucket() != uint32(i) {
			s.Next()
		}
		steps := int(s.Steps())
		total += steps
		st.MaxProbe = max(st.MaxProbe, steps)
	}
	if st.Count > 0 {
		st.MeanProbe = float64(total) / float64(st.Count)
	}
	return st
}

// All iterates over the stored names and members in index order.
func (m *Map) All() iter.Seq2[*intern.Str, Member] {
	return func(yield func(*intern.Str, Member) bool) {
		for _, slot := range m.byIndex() {
			e := &m.entries[slot]
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Names returns the stored names in index order.
func (m *Map) Names() []string {
	names := make([]string, 0, m.count)
	for name := range m.All() {
		names = append(names, name.String())
	}
	return names
}

// byIndex returns slot positions ordered by their assigned index.
func (m *Map) byIndex() []uint32 {
	order := make([]uint32, m.count)
	for i := range m.entries {
		e := &m.entries[i]
		if e.key != nil {
			order[e.index] = uint32(i)
		}
	}
	return order
}
