// Package classmap provides the attribute-resolution table of a declarative
// object system.
//
// A Map is built once per class from the class's members and is immutable
// afterwards. Given an attribute name it returns, in effectively constant
// time, the Member that governs the attribute and the dense slot index where
// each instance stores the attribute's value.
//
// # Quick Start
//
//	m, err := classmap.New([]classmap.Pair{
//	    classmap.P("first_name", member.NewStr()),
//	    classmap.P("age", member.NewRange(0, 150)),
//	})
//	if err != nil {
//	    return err
//	}
//	defer m.Close()
//
//	mem, idx, ok := m.LookupString("age") // Range member, index 1, true
//
// # Layout
//
// The map is an open-addressing table with a power-of-two slot count planned
// by PlanCapacity so that the load factor never exceeds 3/4. Names are
// interned (see package intern); their cached hashes seed a perturbed probe
// sequence that builder and lookup share. There is no resizing and no
// deletion.
//
// # Ownership
//
// The map retains every stored name and every Refcounted member when it
// stores them. Clear releases them exactly once; Close additionally drops the
// slot array and returns its footprint to the resource.Controller configured
// with WithResourceController. Traverse exposes the held references to hosts
// that run their own cycle detection.
//
// # Concurrency
//
// Lookup, LookupString and the read-only accessors are safe for concurrent
// use once New has returned. Clear and Close are not.
package classmap
