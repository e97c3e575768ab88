// Package core implements the molbridge object handle: a validated wrapper
// around one named object in a PyMOL session, with bidirectional structure
// conversion and mask-based atom selection.
package core

import (
	"context"
	"fmt"

	"github.com/kilupskalvis/molbridge/internal/models"
	"github.com/kilupskalvis/molbridge/internal/pymol"
)

var (
	defaultObjectNames = pymol.NewNameAllocator("molbridge_obj")
	defaultColorNames  = pymol.NewNameAllocator("molbridge_color")
)

// Object wraps one named object in a PyMOL session. Every operation first
// re-validates that the object still exists and that its atom count matches
// the count recorded at handle creation; a handle over a renamed, deleted or
// structurally modified object fails instead of addressing the wrong atoms.
type Object struct {
	name      string
	atomCount int
	client    pymol.ClientInterface
	owned     bool
	colors    *pymol.NameAllocator
}

type options struct {
	name   string
	names  *pymol.NameAllocator
	colors *pymol.NameAllocator
	owned  bool
}

// Option configures handle creation.
type Option func(*options)

// WithName fixes the engine object name instead of allocating one.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithNameAllocator supplies the allocator used for generated object names.
func WithNameAllocator(a *pymol.NameAllocator) Option {
	return func(o *options) { o.names = a }
}

// WithColorAllocator supplies the allocator used for registered color names.
func WithColorAllocator(a *pymol.NameAllocator) Option {
	return func(o *options) { o.colors = a }
}

// Unowned disclaims ownership of the engine object: Close will not delete it.
func Unowned() Option {
	return func(o *options) { o.owned = false }
}

func buildOptions(opts []Option) options {
	o := options{owned: true, colors: defaultColorNames}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Wrap attaches a handle to a pre-existing object in the session. The
// object's current atom count becomes the handle's validation baseline.
func Wrap(ctx context.Context, client pymol.ClientInterface, name string, opts ...Option) (*Object, error) {
	o := buildOptions(opts)
	obj := &Object{
		name:   name,
		client: client,
		owned:  o.owned,
		colors: o.colors,
	}
	if err := obj.checkExistence(ctx); err != nil {
		return nil, err
	}
	count, err := client.CountAtoms(ctx, "model "+name)
	if err != nil {
		return nil, err
	}
	obj.atomCount = count
	return obj, nil
}

// FromStructure pushes a structure into the session as a new object and
// returns a handle to it. An *AtomArray, or an *AtomArrayStack with exactly
// one state, becomes a single-state object; a deeper stack loads the first
// state as topology template and appends the remaining coordinate sets in
// state order.
func FromStructure(ctx context.Context, client pymol.ClientInterface, atoms models.Structure, opts ...Option) (*Object, error) {
	o := buildOptions(opts)
	name := o.name
	if name == "" {
		names := o.names
		if names == nil {
			names = defaultObjectNames
		}
		name = names.Next()
	}

	switch s := atoms.(type) {
	case *models.AtomArray:
		model, err := toObjectModel(s)
		if err != nil {
			return nil, err
		}
		if err := client.LoadModel(ctx, model, name); err != nil {
			return nil, err
		}
	case *models.AtomArrayStack:
		if s.StateCount() == 0 {
			return nil, fmt.Errorf("stack has no states")
		}
		// First state serves as topology template
		model, err := toObjectModel(s.State(0))
		if err != nil {
			return nil, err
		}
		if err := client.LoadModel(ctx, model, name); err != nil {
			return nil, err
		}
		for i := 1; i < s.StateCount(); i++ {
			if err := client.LoadCoordSet(ctx, s.Coords[i], name); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("expected *models.AtomArray or *models.AtomArrayStack, got %T", atoms)
	}

	return Wrap(ctx, client, name, opts...)
}

// Name returns the engine object name the handle is bound to.
func (o *Object) Name() string {
	return o.name
}

// AtomCount returns the atom count recorded at handle creation.
func (o *Object) AtomCount() int {
	return o.atomCount
}

// Exists reports whether the bound object is still part of the session.
func (o *Object) Exists(ctx context.Context) (bool, error) {
	names, err := o.client.GetObjectList(ctx)
	if err != nil {
		return false, err
	}
	for _, name := range names {
		if name == o.name {
			return true, nil
		}
	}
	return false, nil
}

func (o *Object) checkExistence(ctx context.Context) error {
	exists, err := o.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return &NonexistentObjectError{Name: o.name}
	}
	return nil
}

// validate guards every public operation: the object must still exist and
// its live atom count must match the recorded baseline.
func (o *Object) validate(ctx context.Context) error {
	if err := o.checkExistence(ctx); err != nil {
		return err
	}
	count, err := o.client.CountAtoms(ctx, "model "+o.name)
	if err != nil {
		return err
	}
	if count != o.atomCount {
		return &ModifiedObjectError{Name: o.name, Expected: o.atomCount, Actual: count}
	}
	return nil
}

// Where converts a boolean atom mask into a selection expression scoped to
// this object.
func (o *Object) Where(ctx context.Context, mask []bool) (string, error) {
	if err := o.validate(ctx); err != nil {
		return "", err
	}
	return maskToSelection(o.name, mask, o.atomCount)
}

// intoSelection resolves a Selection value to an expression scoped to this
// object.
func (o *Object) intoSelection(sel Selection) (string, error) {
	switch sel.kind {
	case selExpr:
		return fmt.Sprintf("model %s and (%s)", o.name, sel.expr), nil
	case selMask:
		return maskToSelection(o.name, sel.mask, o.atomCount)
	default:
		return "model " + o.name, nil
	}
}

// Close releases the handle. When the handle owns the engine object, the
// object is removed from the session; deletion is best-effort and a handle
// is considered released even if the deletion call fails.
func (o *Object) Close(ctx context.Context) error {
	if !o.owned {
		return nil
	}
	return o.client.Delete(ctx, o.name)
}
