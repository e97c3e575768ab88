package core

import (
	"fmt"
	"strings"
)

type selKind int

const (
	selAll selKind = iota
	selExpr
	selMask
)

// Selection identifies a subset of atoms of one object. The zero value
// selects all atoms of the object. A raw expression is always conjoined with
// the object scope, so a caller-supplied expression can only narrow within
// the object, never escape it.
type Selection struct {
	kind selKind
	expr string
	mask []bool
}

// All selects every atom of the object.
func All() Selection {
	return Selection{}
}

// Expr selects by a raw PyMOL selection expression, scoped to the object.
func Expr(expr string) Selection {
	return Selection{kind: selExpr, expr: expr}
}

// Mask selects by a per-atom boolean mask, insertion-order-aligned with the
// object's atoms.
func Mask(mask []bool) Selection {
	return Selection{kind: selMask, mask: mask}
}

func (s Selection) isAll() bool {
	return s.kind == selAll
}

// maskToSelection converts a boolean mask into a selection expression scoped
// to one object. Maximal runs of true values become 1-based inclusive index
// ranges joined by "or".
func maskToSelection(name string, mask []bool, atomCount int) (string, error) {
	if len(mask) != atomCount {
		return "", &MaskLengthError{Expected: atomCount, Actual: len(mask)}
	}

	// Boundary indices where the mask value differs from its predecessor.
	// A leading true run contributes boundary 0, a trailing one contributes
	// boundary len(mask), so boundaries always come in (start, stop) pairs
	// delimiting the true runs.
	var bounds []int
	if len(mask) > 0 && mask[0] {
		bounds = append(bounds, 0)
	}
	for i := 1; i < len(mask); i++ {
		if mask[i] != mask[i-1] {
			bounds = append(bounds, i)
		}
	}
	if len(mask) > 0 && mask[len(mask)-1] {
		bounds = append(bounds, len(mask))
	}

	if len(bounds) == 0 {
		// An empty disjunction is not valid selection syntax; "none" is the
		// engine's selection matching no atoms.
		return fmt.Sprintf("model %s and (none)", name), nil
	}

	clauses := make([]string, 0, len(bounds)/2)
	for i := 0; i < len(bounds); i += 2 {
		start, stop := bounds[i], bounds[i+1]
		// Engine atom indices are 1-based and range bounds inclusive, so the
		// exclusive stop boundary maps onto the last selected atom directly.
		clauses = append(clauses, fmt.Sprintf("index %d-%d", start+1, stop))
	}
	return fmt.Sprintf("model %s and (%s)", name, strings.Join(clauses, " or ")), nil
}
