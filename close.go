package classmap

// Traverse calls visit for the key and then the member of every occupied
// slot, in slot order, and stops at the first error, which it returns.
//
// Traverse lets an embedding host with its own cycle collector discover the
// references a map holds. It does not modify the map and may be called any
// number of times, before or after Clear.
func (m *Map) Traverse(visit func(ref any) error) error {
	if m == nil {
		return nil
	}
	for i := range m.entries {
		e := &m.entries[i]
		if e.key == nil {
			continue
		}
		if err := visit(e.key); err != nil {
			return err
		}
		if err := visit(e.value); err != nil {
			return err
		}
	}
	return nil
}

// Clear releases every stored name and member and empties all slots.
// Afterwards every lookup reports absence and Len is 0. The slot array is
// kept until Close. Clear is idempotent.
func (m *Map) Clear() {
	if m == nil {
		return
	}
	for i := range m.entries {
		e := &m.entries[i]
		if e.key == nil {
			continue
		}
		release(e.key, e.value)
		*e = entry{}
	}
	m.count = 0
}

// Close clears the map, drops its slot array and returns the reserved
// footprint to the resource controller. Close is idempotent and always
// returns nil.
func (m *Map) Close() error {
	if m == nil || m.entries == nil {
		return nil
	}
	count := m.Len()
	m.release()
	m.logger.LogClose(count, m.capacity, m.reserved)
	m.metrics.RecordClose(m.reserved)
	m.reserved = 0
	return nil
}

// release is Close without logging; the builder uses it to discard a
// partially populated map.
func (m *Map) release() {
	m.Clear()
	m.entries = nil
	m.rc.ReleaseMemory(m.reserved)
}
