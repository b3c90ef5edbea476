// Package atom builds declarative classes on top of class maps.
//
// A Class resolves attribute names through an immutable classmap.Map and
// gives every Instance a dense slot array indexed by the map's slot indices.
// Assignments are validated by the attribute's member descriptor and
// observers are notified of changes.
//
//	person, _ := atom.NewClass("Person", []classmap.Pair{
//	    classmap.P("name", member.NewStr()),
//	    classmap.P("age", member.NewRange(member.Low(0))),
//	}, atom.WithObserver("age", func(c atom.Change) {
//	    fmt.Println("age:", c.OldValue, "->", c.Value)
//	}))
//
//	p, _ := person.New(map[string]any{"name": "John"})
//	_ = p.Set("age", 43)
//
// Classes are safe for concurrent use. Instances are not.
package atom
