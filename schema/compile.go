package schema

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/classmap"
	"github.com/hupe1980/classmap/atom"
	"github.com/hupe1980/classmap/member"
	"github.com/hupe1980/classmap/resource"
)

type options struct {
	controller *resource.Controller
	mapOpts    []classmap.Option
}

// Option configures Compile.
type Option func(*options)

// WithResourceController bounds concurrent class builds by the controller's
// builder slots and charges every class map to its memory budget.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithMapOptions passes options to every classmap.New call.
func WithMapOptions(opts ...classmap.Option) Option {
	return func(o *options) {
		o.mapOpts = append(o.mapOpts, opts...)
	}
}

// Compile builds the classes of doc concurrently and returns them in
// document order. On error every class built so far is closed.
func Compile(ctx context.Context, doc *Document, opts ...Option) ([]*atom.Class, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	mapOpts := o.mapOpts
	if o.controller != nil {
		mapOpts = append([]classmap.Option{classmap.WithResourceController(o.controller)}, mapOpts...)
	}

	classes := make([]*atom.Class, len(doc.Classes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.controller.MaxBuilders())
	for i := range doc.Classes {
		g.Go(func() error {
			if err := o.controller.AcquireBuilder(gctx); err != nil {
				return err
			}
			defer o.controller.ReleaseBuilder()

			c, err := compileClass(&doc.Classes[i], mapOpts)
			if err != nil {
				return err
			}
			classes[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, c := range classes {
			if c != nil {
				_ = c.Close()
			}
		}
		return nil, err
	}
	return classes, nil
}

func compileClass(def *ClassDef, mapOpts []classmap.Option) (*atom.Class, error) {
	pairs := make([]classmap.Pair, len(def.Members))
	for i, md := range def.Members {
		d, err := member.FromSpec(md.Spec())
		if err != nil {
			return nil, fmt.Errorf("class %s: member %v: %w", def.Name, md.Name, err)
		}
		pairs[i] = classmap.Pair{Key: md.Name, Value: d}
	}
	return atom.NewClass(def.Name, pairs, atom.WithMapOptions(mapOpts...))
}
