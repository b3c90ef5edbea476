package classmap

import "github.com/hupe1980/classmap/intern"

// Member is the descriptor capability: the object responsible for one
// attribute's validation, storage and observation. A Map stores and returns
// members without inspecting them.
type Member interface {
	// Kind names the member's behavior (for example "Str" or "Range").
	Kind() string
}

// Refcounted is implemented by members that track ownership. A Map retains
// such a member when it stores it and releases it exactly once on Clear.
type Refcounted interface {
	Retain()
	Release()
}

// Pair is one name/member input to New.
//
// Key must be a *intern.Str or a string; Value must implement Member.
// Both are typed any so that input decoded from untyped documents can be
// validated by the builder.
type Pair struct {
	Key   any
	Value any
}

// P is shorthand for Pair{Key: name, Value: m}.
func P(name string, m Member) Pair {
	return Pair{Key: name, Value: m}
}

func retain(key *intern.Str, value Member) {
	key.Retain()
	if r, ok := value.(Refcounted); ok {
		r.Retain()
	}
}

func release(key *intern.Str, value Member) {
	key.Release()
	if r, ok := value.(Refcounted); ok {
		r.Release()
	}
}
