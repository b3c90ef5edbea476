package member

import (
	"fmt"
	"reflect"
	"slices"
)

// Enum accepts one of a fixed set of comparable items. The first item is
// the default.
type Enum struct {
	Base
	items []any
}

// NewEnum returns an Enum member. It panics if items is empty.
func NewEnum(items ...any) *Enum {
	if len(items) == 0 {
		panic("member: enum requires at least one item")
	}
	return &Enum{items: slices.Clone(items)}
}

func (*Enum) Kind() string   { return "Enum" }
func (m *Enum) Default() any { return m.items[0] }

// Items returns a copy of the allowed items.
func (m *Enum) Items() []any { return slices.Clone(m.items) }

func (m *Enum) Validate(v any) (any, error) {
	for _, item := range m.items {
		if equalItem(item, v) {
			return item, nil
		}
	}
	return nil, &ValidationError{Kind: m.Kind(), Value: v, Reason: fmt.Sprintf("expected one of %v", m.items)}
}

func equalItem(item, v any) bool {
	if a, ok := toInt(item); ok {
		if b, ok := toInt(v); ok {
			return a == b
		}
	}
	if reflect.TypeOf(item) != reflect.TypeOf(v) {
		return false
	}
	if item == nil {
		return true
	}
	if !reflect.ValueOf(item).Comparable() || !reflect.ValueOf(v).Comparable() {
		return false
	}
	return item == v
}

// List accepts slices whose elements all satisfy the item descriptor.
// A nil item accepts any element. Validated lists are copied to []any.
type List struct {
	Base
	item Descriptor
}

// NewList returns a List member.
func NewList(item Descriptor) *List { return &List{item: item} }

func (*List) Kind() string { return "List" }

// Default returns a new empty list.
func (*List) Default() any { return []any{} }

// Item returns the element descriptor, or nil.
func (m *List) Item() Descriptor { return m.item }

func (m *List) Validate(v any) (any, error) {
	var in []any
	switch x := v.(type) {
	case []any:
		in = x
	case []string:
		in = make([]any, len(x))
		for i, s := range x {
			in[i] = s
		}
	case []int:
		in = make([]any, len(x))
		for i, n := range x {
			in[i] = n
		}
	default:
		return nil, &ValidationError{Kind: m.Kind(), Value: v, Reason: "expected a list"}
	}

	out := make([]any, len(in))
	for i, elem := range in {
		if m.item == nil {
			out[i] = elem
			continue
		}
		norm, err := m.item.Validate(elem)
		if err != nil {
			return nil, fmt.Errorf("list item %d: %w", i, err)
		}
		out[i] = norm
	}
	return out, nil
}
