package atom

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/classmap"
	"github.com/hupe1980/classmap/member"
)

var (
	// ErrUnknownAttribute is returned for a name the class does not define.
	ErrUnknownAttribute = errors.New("unknown attribute")
	// ErrNotDescriptor is returned when a class member cannot validate values.
	ErrNotDescriptor = errors.New("member is not a descriptor")
)

// Observer receives attribute changes.
type Observer func(Change)

// Change types.
const (
	ChangeCreate = "create"
	ChangeUpdate = "update"
)

// Change describes one attribute change.
type Change struct {
	Type     string
	Object   *Instance
	Name     string
	OldValue any
	Value    any
}

type classOptions struct {
	observers map[string][]Observer
	mapOpts   []classmap.Option
}

// ClassOption configures NewClass.
type ClassOption func(*classOptions)

// WithObserver registers a static observer for the named attribute on every
// instance of the class.
func WithObserver(name string, fn Observer) ClassOption {
	return func(o *classOptions) {
		o.observers[name] = append(o.observers[name], fn)
	}
}

// WithMapOptions passes options to the underlying classmap.New.
func WithMapOptions(opts ...classmap.Option) ClassOption {
	return func(o *classOptions) {
		o.mapOpts = append(o.mapOpts, opts...)
	}
}

// Class is an immutable class definition shared by its instances.
type Class struct {
	name    string
	members *classmap.Map
	slots   []member.Descriptor // by slot index
	names   []string            // by slot index

	observed  *roaring.Bitmap // slot indices with static observers
	observers map[uint32][]Observer
}

// NewClass builds a class from its members. Every member must be a
// member.Descriptor.
func NewClass(name string, members []classmap.Pair, opts ...ClassOption) (*Class, error) {
	o := classOptions{observers: make(map[string][]Observer)}
	for _, fn := range opts {
		fn(&o)
	}

	m, err := classmap.New(members, o.mapOpts...)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", name, err)
	}

	c := &Class{
		name:      name,
		members:   m,
		slots:     make([]member.Descriptor, 0, m.Len()),
		names:     make([]string, 0, m.Len()),
		observed:  roaring.New(),
		observers: make(map[uint32][]Observer, len(o.observers)),
	}
	for key, mem := range m.All() {
		d, ok := mem.(member.Descriptor)
		if !ok {
			_ = m.Close()
			return nil, fmt.Errorf("class %s: %q (%s): %w", name, key.String(), mem.Kind(), ErrNotDescriptor)
		}
		c.slots = append(c.slots, d)
		c.names = append(c.names, key.String())
	}

	for attr, fns := range o.observers {
		idx, ok := m.Index(attr)
		if !ok {
			_ = m.Close()
			return nil, fmt.Errorf("class %s: observer for %q: %w", name, attr, ErrUnknownAttribute)
		}
		c.observed.Add(idx)
		c.observers[idx] = fns
	}
	c.observed.RunOptimize()

	return c, nil
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Map returns the class's attribute table.
func (c *Class) Map() *classmap.Map { return c.members }

// Len returns the number of attributes.
func (c *Class) Len() int { return len(c.slots) }

// Names returns the attribute names in slot order.
func (c *Class) Names() []string {
	return append([]string(nil), c.names...)
}

// Member returns the descriptor and slot index of the named attribute.
func (c *Class) Member(name string) (member.Descriptor, uint32, bool) {
	_, idx, ok := c.members.LookupString(name)
	if !ok {
		return nil, 0, false
	}
	return c.slots[idx], idx, true
}

// Observed reports whether the named attribute has static observers.
func (c *Class) Observed(name string) bool {
	idx, ok := c.members.Index(name)
	return ok && c.observed.Contains(idx)
}

// New creates an instance and assigns kwargs through Set.
func (c *Class) New(kwargs map[string]any) (*Instance, error) {
	inst := &Instance{
		class: c,
		slots: make([]any, len(c.slots)),
	}
	for i := range inst.slots {
		inst.slots[i] = unset
	}
	for name, v := range kwargs {
		if err := inst.Set(name, v); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// Close releases the class's attribute table. Instances must not be used
// afterwards.
func (c *Class) Close() error {
	return c.members.Close()
}
