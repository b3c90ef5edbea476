package atom

import (
	"fmt"
	"reflect"
)

// unset marks a slot that has never been read or written.
var unset = &struct{ _ byte }{}

// Instance is an object with dense attribute storage.
type Instance struct {
	class     *Class
	slots     []any
	observers map[uint32][]Observer
}

// Class returns the instance's class.
func (inst *Instance) Class() *Class { return inst.class }

// Get returns the named attribute. An unset attribute takes its member's
// default, which is stored and reported to observers as a create change.
func (inst *Instance) Get(name string) (any, error) {
	_, idx, ok := inst.class.members.LookupString(name)
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", inst.class.name, name, ErrUnknownAttribute)
	}
	if v := inst.slots[idx]; v != unset {
		return v, nil
	}
	def := inst.class.slots[idx].Default()
	inst.slots[idx] = def
	inst.notify(idx, Change{Type: ChangeCreate, Object: inst, Name: name, Value: def})
	return def, nil
}

// MustGet is Get for attributes known to exist. It panics on error.
func (inst *Instance) MustGet(name string) any {
	v, err := inst.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Set validates v and stores it in the named attribute. Observers are
// notified unless the stored value is unchanged.
func (inst *Instance) Set(name string, v any) error {
	_, idx, ok := inst.class.members.LookupString(name)
	if !ok {
		return fmt.Errorf("%s.%s: %w", inst.class.name, name, ErrUnknownAttribute)
	}
	norm, err := inst.class.slots[idx].Validate(v)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", inst.class.name, name, err)
	}

	old := inst.slots[idx]
	inst.slots[idx] = norm

	change := Change{Type: ChangeUpdate, Object: inst, Name: name, OldValue: old, Value: norm}
	if old == unset {
		change.Type = ChangeCreate
		change.OldValue = nil
	} else if reflect.DeepEqual(old, norm) {
		return nil
	}
	inst.notify(idx, change)
	return nil
}

// IsSet reports whether the named attribute holds a value.
func (inst *Instance) IsSet(name string) bool {
	idx, ok := inst.class.members.Index(name)
	return ok && inst.slots[idx] != unset
}

// Observe registers fn for changes of the named attribute on this instance.
func (inst *Instance) Observe(name string, fn Observer) error {
	idx, ok := inst.class.members.Index(name)
	if !ok {
		return fmt.Errorf("%s.%s: %w", inst.class.name, name, ErrUnknownAttribute)
	}
	if inst.observers == nil {
		inst.observers = make(map[uint32][]Observer)
	}
	inst.observers[idx] = append(inst.observers[idx], fn)
	return nil
}

// Unobserve removes every instance observer of the named attribute.
func (inst *Instance) Unobserve(name string) {
	if idx, ok := inst.class.members.Index(name); ok {
		delete(inst.observers, idx)
	}
}

func (inst *Instance) notify(idx uint32, change Change) {
	if inst.class.observed.Contains(idx) {
		for _, fn := range inst.class.observers[idx] {
			fn(change)
		}
	}
	for _, fn := range inst.observers[idx] {
		fn(change)
	}
}
