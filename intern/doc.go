// Package intern provides interned attribute names.
//
// An interned name (*Str) is unique per Table: interning the same string twice
// returns the same pointer, so equality is usually a pointer comparison. The
// 32-bit hash is computed once at intern time and cached on the Str.
//
//	name := intern.Default.Intern("age")
//	other := intern.Default.Intern("age")
//	_ = name == other // true
//
// # Reference Counting
//
// Holders that own a name (class maps, for example) call Retain when they
// store it and Release when they drop it. Table.Sweep removes names nobody
// retains. A Str is never invalidated by Sweep; it just stops being the
// canonical instance, and Equal still compares it correctly by content.
package intern
