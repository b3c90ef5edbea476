package member

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync/atomic"
)

// ErrUnknownKind is returned by FromSpec for an unsupported kind.
var ErrUnknownKind = errors.New("unknown member kind")

// Descriptor is implemented by every member in this package.
type Descriptor interface {
	// Kind names the descriptor type.
	Kind() string
	// Default returns the value an unset attribute reads as.
	Default() any
	// Validate checks v and returns the normalized value to store.
	Validate(v any) (any, error)
}

// ValidationError reports a value rejected by a descriptor.
type ValidationError struct {
	Kind   string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s member: %s, got %#v (%T)", e.Kind, e.Reason, e.Value, e.Value)
}

// Base provides reference counting for descriptors.
type Base struct {
	refs atomic.Int64
}

// Retain increments the reference count.
func (b *Base) Retain() { b.refs.Add(1) }

// Release decrements the reference count.
func (b *Base) Release() { b.refs.Add(-1) }

// Refs returns the current reference count.
func (b *Base) Refs() int64 { return b.refs.Load() }

// Value accepts any value.
type Value struct {
	Base
	def any
}

// NewValue returns a Value member defaulting to def.
func NewValue(def any) *Value { return &Value{def: def} }

func (*Value) Kind() string                { return "Value" }
func (m *Value) Default() any              { return m.def }
func (*Value) Validate(v any) (any, error) { return v, nil }

// Str accepts strings.
type Str struct {
	Base
	def string
}

// NewStr returns a Str member defaulting to the empty string.
func NewStr() *Str { return &Str{} }

// NewStrDefault returns a Str member defaulting to def.
func NewStrDefault(def string) *Str { return &Str{def: def} }

func (*Str) Kind() string   { return "Str" }
func (m *Str) Default() any { return m.def }

func (m *Str) Validate(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, &ValidationError{Kind: m.Kind(), Value: v, Reason: "expected a string"}
	}
	return s, nil
}

// Int accepts any Go integer type and integral floating-point values, and
// stores them as int.
type Int struct {
	Base
	def int
}

// NewInt returns an Int member defaulting to def.
func NewInt(def int) *Int { return &Int{def: def} }

func (*Int) Kind() string   { return "Int" }
func (m *Int) Default() any { return m.def }

func (m *Int) Validate(v any) (any, error) {
	i, ok := toInt(v)
	if !ok {
		return nil, &ValidationError{Kind: m.Kind(), Value: v, Reason: "expected an integer"}
	}
	return i, nil
}

// Float accepts floating-point and integer values and stores them as float64.
type Float struct {
	Base
	def float64
}

// NewFloat returns a Float member defaulting to def.
func NewFloat(def float64) *Float { return &Float{def: def} }

func (*Float) Kind() string   { return "Float" }
func (m *Float) Default() any { return m.def }

func (m *Float) Validate(v any) (any, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	}
	if i, ok := toInt(v); ok {
		return float64(i), nil
	}
	return nil, &ValidationError{Kind: m.Kind(), Value: v, Reason: "expected a number"}
}

// Bool accepts booleans.
type Bool struct {
	Base
	def bool
}

// NewBool returns a Bool member defaulting to def.
func NewBool(def bool) *Bool { return &Bool{def: def} }

func (*Bool) Kind() string   { return "Bool" }
func (m *Bool) Default() any { return m.def }

func (m *Bool) Validate(v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, &ValidationError{Kind: m.Kind(), Value: v, Reason: "expected a bool"}
	}
	return b, nil
}

func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return 0, false
		}
		return int(x), true
	case float32:
		return toInt(float64(x))
	}
	return 0, false
}

func kindKey(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}
