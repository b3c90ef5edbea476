package classmap_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/classmap"
	"github.com/hupe1980/classmap/atom"
	"github.com/hupe1980/classmap/blobstore"
	"github.com/hupe1980/classmap/catalog"
	"github.com/hupe1980/classmap/member"
	"github.com/hupe1980/classmap/resource"
)

// Example demonstrates building a class map and resolving names.
func Example() {
	m, err := classmap.New([]classmap.Pair{
		classmap.P("last_name", member.NewStr()),
		classmap.P("first_name", member.NewStr()),
		classmap.P("debug", member.NewBool(false)),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	d, idx, ok := m.LookupString("first_name")
	fmt.Println(d.Kind(), idx, ok)

	_, _, ok = m.LookupString("email")
	fmt.Println(ok)

	fmt.Println(m.Len(), m.Cap())
	// Output:
	// Str 1 true
	// false
	// 3 4
}

// Example_typeMismatch shows the error for a key that is not a string.
func Example_typeMismatch() {
	_, err := classmap.New([]classmap.Pair{
		classmap.P("ok", member.NewStr()),
		{Key: 42, Value: member.NewStr()},
	})

	var tm *classmap.ErrTypeMismatch
	fmt.Println(errors.As(err, &tm), tm.Role, tm.Index)
	fmt.Println(errors.Is(err, classmap.ErrInvalidInput))
	// Output:
	// true key 1
	// true
}

// Example_memoryLimit shows a build refused by the resource controller.
func Example_memoryLimit() {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: classmap.BaseSize})

	_, err := classmap.New(
		[]classmap.Pair{classmap.P("x", member.NewInt(0))},
		classmap.WithResourceController(rc),
	)
	fmt.Println(errors.Is(err, classmap.ErrOutOfMemory), rc.MemoryUsage())
	// Output: true 0
}

// Example_class demonstrates instances with dense slot storage and observers.
func Example_class() {
	person, err := atom.NewClass("Person", []classmap.Pair{
		classmap.P("name", member.NewStr()),
		classmap.P("age", member.NewRange(member.Low(0))),
	}, atom.WithObserver("age", func(c atom.Change) {
		fmt.Printf("%s %s: %v -> %v\n", c.Type, c.Name, c.OldValue, c.Value)
	}))
	if err != nil {
		log.Fatal(err)
	}
	defer person.Close()

	p, err := person.New(map[string]any{"name": "Ada"})
	if err != nil {
		log.Fatal(err)
	}
	_ = p.Set("age", 36)
	_ = p.Set("age", 37)
	fmt.Println(p.Set("age", -1) != nil)
	// Output:
	// create age: <nil> -> 36
	// update age: 36 -> 37
	// true
}

// Example_catalog demonstrates saving and loading a compressed catalog.
func Example_catalog() {
	ctx := context.Background()
	loader := catalog.NewLoader(blobstore.NewMemoryStore())

	_, err := loader.Save(ctx, "shapes.yaml.zst", mustDocument())
	if err != nil {
		log.Fatal(err)
	}

	cat, err := loader.Load(ctx, "shapes.yaml.zst")
	if err != nil {
		log.Fatal(err)
	}
	defer cat.Close()

	point, _ := cat.Class("Point")
	fmt.Println(point.Names())
	// Output: [x y]
}
