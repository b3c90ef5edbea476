package member

import "fmt"

// Range accepts integers within optional inclusive bounds.
type Range struct {
	Base
	low, high       int
	hasLow, hasHigh bool
	def             int
	hasDef          bool
}

// RangeOption configures a Range.
type RangeOption func(*Range)

// Low sets the inclusive lower bound.
func Low(n int) RangeOption {
	return func(r *Range) { r.low, r.hasLow = n, true }
}

// High sets the inclusive upper bound.
func High(n int) RangeOption {
	return func(r *Range) { r.high, r.hasHigh = n, true }
}

// RangeDefault sets the default value. Without it the default is the lower
// bound if set, otherwise the upper bound if set, otherwise 0.
func RangeDefault(n int) RangeOption {
	return func(r *Range) { r.def, r.hasDef = n, true }
}

// NewRange returns a Range member.
func NewRange(opts ...RangeOption) *Range {
	r := &Range{}
	for _, fn := range opts {
		fn(r)
	}
	return r
}

func (*Range) Kind() string { return "Range" }

func (r *Range) Default() any {
	switch {
	case r.hasDef:
		return r.def
	case r.hasLow:
		return r.low
	case r.hasHigh:
		return r.high
	}
	return 0
}

// Bounds returns the configured bounds and whether each is set.
func (r *Range) Bounds() (low int, hasLow bool, high int, hasHigh bool) {
	return r.low, r.hasLow, r.high, r.hasHigh
}

func (r *Range) Validate(v any) (any, error) {
	i, ok := toInt(v)
	if !ok {
		return nil, &ValidationError{Kind: r.Kind(), Value: v, Reason: "expected an integer"}
	}
	if r.hasLow && i < r.low {
		return nil, &ValidationError{Kind: r.Kind(), Value: v, Reason: fmt.Sprintf("value below minimum %d", r.low)}
	}
	if r.hasHigh && i > r.high {
		return nil, &ValidationError{Kind: r.Kind(), Value: v, Reason: fmt.Sprintf("value above maximum %d", r.high)}
	}
	return i, nil
}
