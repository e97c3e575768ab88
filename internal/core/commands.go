package core

import (
	"context"
	"fmt"
)

// The command wrappers below forward to the engine's display and geometry
// commands. Each one re-validates the handle, resolves its Selection values
// to expressions scoped to this object, and passes everything else through
// unchanged. State arguments are 1-based engine state indices; 0 applies the
// command to all states.

// Alter changes atomic properties of the selected atoms using an expression
// evaluated by the engine for each atom.
func (o *Object) Alter(ctx context.Context, sel Selection, expression string) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Alter(ctx, s, expression)
}

// Cartoon changes the cartoon representation kind (automatic, skip, loop,
// rectangle, oval, tube, arrow, dumbbell) for the selected atoms.
func (o *Object) Cartoon(ctx context.Context, kind string, sel Selection) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Cartoon(ctx, kind, s)
}

// Center translates the window, the clipping slab and optionally the origin
// to a point centered within the selected atoms.
func (o *Object) Center(ctx context.Context, sel Selection, state int, origin bool) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Center(ctx, s, state, origin)
}

// Clip alters the near and far clipping planes.
func (o *Object) Clip(ctx context.Context, mode string, distance float64, sel Selection, state int) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Clip(ctx, mode, distance, s, state)
}

// Color colors the selected atoms with a registered color name. An unknown
// name is an error; use ColorRGB for ad-hoc colors.
func (o *Object) Color(ctx context.Context, color string, sel Selection) error {
	if err := o.validate(ctx); err != nil {
		return err
	}
	registered, err := o.client.GetColorIndices(ctx)
	if err != nil {
		return err
	}
	if _, ok := registered[color]; !ok {
		return fmt.Errorf("unknown color %q", color)
	}
	s, err := o.intoSelection(sel)
	if err != nil {
		return err
	}
	return o.client.Color(ctx, color, s)
}

// ColorRGB registers the RGB value (components 0.0 to 1.0) under an
// allocated color name and colors the selected atoms with it.
func (o *Object) ColorRGB(ctx context.Context, rgb [3]float64, sel Selection) error {
	if err := o.validate(ctx); err != nil {
		return err
	}
	s, err := o.intoSelection(sel)
	if err != nil {
		return err
	}
	name := o.colors.Next()
	if err := o.client.SetColor(ctx, name, rgb); err != nil {
		return err
	}
	return o.client.Color(ctx, name, s)
}

// Desaturate desaturates the colors of the selected atoms by the given
// factor (0.0 to 1.0).
func (o *Object) Desaturate(ctx context.Context, sel Selection, factor float64) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Desaturate(ctx, s, factor)
}

// Disable turns off display of the selected atoms.
func (o *Object) Disable(ctx context.Context, sel Selection) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Disable(ctx, s)
}

// Distance creates a named distance object between two atom selections of
// this object. Zero-value selections address all atoms; a zero-value sel2
// mirrors sel1.
func (o *Object) Distance(ctx context.Context, name string, sel1, sel2 Selection, cutoff float64, mode int) error {
	if err := o.validate(ctx); err != nil {
		return err
	}
	if sel2.isAll() {
		sel2 = sel1
	}
	s1, err := o.intoSelection(sel1)
	if err != nil {
		return err
	}
	s2, err := o.intoSelection(sel2)
	if err != nil {
		return err
	}
	return o.client.Distance(ctx, name, s1, s2, cutoff, mode)
}

// Dss determines the secondary structure of the selected atoms.
func (o *Object) Dss(ctx context.Context, sel Selection, state int) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Dss(ctx, s, state)
}

// Enable turns on display of the selected atoms.
func (o *Object) Enable(ctx context.Context, sel Selection) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Enable(ctx, s)
}

// Hide turns off an atom representation (lines, spheres, sticks, cartoon,
// surface, ...) for the selected atoms.
func (o *Object) Hide(ctx context.Context, representation string, sel Selection) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Hide(ctx, representation, s)
}

// Indicate shows a visual marker on the selected atoms.
func (o *Object) Indicate(ctx context.Context, sel Selection) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Indicate(ctx, s)
}

// Orient aligns the principal components of the selected atoms with the
// xyz axes.
func (o *Object) Orient(ctx context.Context, sel Selection, state int) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Orient(ctx, s, state)
}

// Origin sets the center of rotation about the selected atoms.
func (o *Object) Origin(ctx context.Context, sel Selection, state int) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Origin(ctx, s, state)
}

// Select creates a named selection object from the selected atoms and
// returns the number of atoms it contains.
func (o *Object) Select(ctx context.Context, name string, sel Selection) (int, error) {
	if err := o.validate(ctx); err != nil {
		return 0, err
	}
	s, err := o.intoSelection(sel)
	if err != nil {
		return 0, err
	}
	return o.client.Select(ctx, name, s)
}

// Set changes a per-atom setting (sphere_color, transparency, ...) for the
// selected atoms.
func (o *Object) Set(ctx context.Context, setting string, value any, sel Selection, state int) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Set(ctx, setting, value, s, state)
}

// SetBond changes a per-bond setting for all bonds between two atom
// selections of this object. A zero-value sel2 mirrors sel1.
func (o *Object) SetBond(ctx context.Context, setting string, value any, sel1, sel2 Selection, state int) error {
	if err := o.validate(ctx); err != nil {
		return err
	}
	if sel2.isAll() {
		sel2 = sel1
	}
	s1, err := o.intoSelection(sel1)
	if err != nil {
		return err
	}
	s2, err := o.intoSelection(sel2)
	if err != nil {
		return err
	}
	return o.client.SetBond(ctx, setting, value, s1, s2, state)
}

// Show turns on an atom representation for the selected atoms.
func (o *Object) Show(ctx context.Context, representation string, sel Selection) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Show(ctx, representation, s)
}

// ShowAs turns on a representation for the selected atoms and hides all
// their other representations.
func (o *Object) ShowAs(ctx context.Context, representation string, sel Selection) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	if err := o.client.Hide(ctx, "everything", s); err != nil {
		return err
	}
	return o.client.Show(ctx, representation, s)
}

// Smooth performs a moving average over the coordinate states of the
// selected atoms.
func (o *Object) Smooth(ctx context.Context, sel Selection, passes, window, first, last int, ends bool) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Smooth(ctx, s, passes, window, first, last, ends)
}

// Unset clears a per-atom setting for the selected atoms.
func (o *Object) Unset(ctx context.Context, setting string, sel Selection, state int) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Unset(ctx, setting, s, state)
}

// UnsetBond clears a per-bond setting for all bonds between two atom
// selections of this object. A zero-value sel2 mirrors sel1.
func (o *Object) UnsetBond(ctx context.Context, setting string, sel1, sel2 Selection, state int) error {
	if err := o.validate(ctx); err != nil {
		return err
	}
	if sel2.isAll() {
		sel2 = sel1
	}
	s1, err := o.intoSelection(sel1)
	if err != nil {
		return err
	}
	s2, err := o.intoSelection(sel2)
	if err != nil {
		return err
	}
	return o.client.UnsetBond(ctx, setting, s1, s2, state)
}

// Zoom scales and translates the window and the origin to cover the
// selected atoms.
func (o *Object) Zoom(ctx context.Context, sel Selection, buffer float64, state int, complete bool) error {
	s, err := o.prepare(ctx, sel)
	if err != nil {
		return err
	}
	return o.client.Zoom(ctx, s, buffer, state, complete)
}

// prepare is the common guard of the single-selection commands: validate the
// handle, then resolve the selection.
func (o *Object) prepare(ctx context.Context, sel Selection) (string, error) {
	if err := o.validate(ctx); err != nil {
		return "", err
	}
	return o.intoSelection(sel)
}
