package core

import "fmt"

// NonexistentObjectError indicates that the named object is no longer part
// of the PyMOL session.
type NonexistentObjectError struct {
	Name string
}

func (e *NonexistentObjectError) Error() string {
	return fmt.Sprintf("pymol object %q does not exist", e.Name)
}

// ModifiedObjectError indicates that atoms were added to or removed from the
// bound object behind the handle's back, invalidating any previously computed
// selection masks.
type ModifiedObjectError struct {
	Name     string
	Expected int
	Actual   int
}

func (e *ModifiedObjectError) Error() string {
	return fmt.Sprintf(
		"pymol object %q was modified externally: atom count changed from %d to %d",
		e.Name, e.Expected, e.Actual,
	)
}

// MaskLengthError indicates a selection mask whose length does not match the
// bound object's atom count.
type MaskLengthError struct {
	Expected int
	Actual   int
}

func (e *MaskLengthError) Error() string {
	return fmt.Sprintf("mask has length %d, but the object has %d atoms", e.Actual, e.Expected)
}

// StateMismatchError indicates a multi-state object whose states have
// differing atom counts.
type StateMismatchError struct {
	State    int
	Expected int
	Actual   int
}

func (e *StateMismatchError) Error() string {
	return fmt.Sprintf("state %d has %d atoms, expected %d", e.State, e.Actual, e.Expected)
}
