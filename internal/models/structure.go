// Package models defines the core data structures used throughout molbridge:
// columnar atom arrays, the PyMOL-facing per-atom record model, and the
// altloc filtering policies applied on import.
package models

import "fmt"

// Structure is either an *AtomArray (single coordinate state) or an
// *AtomArrayStack (multiple states sharing one topology).
type Structure interface {
	AtomCount() int
}

// AtomArray is a columnar representation of a single-state structure.
// Every annotation column has length AtomCount(); optional columns are nil
// when the annotation is absent.
type AtomArray struct {
	ChainID  []string
	ResID    []int
	InsCode  []string
	ResName  []string
	Hetero   []bool
	AtomName []string
	Element  []string

	Coord [][3]float64

	// Optional annotation columns
	BFactor   []float64
	Occupancy []float64
	Charge    []int
	AltlocID  []string

	// Bonds between atoms, referenced by 0-based index. Optional.
	Bonds []Bond
}

// AtomCount returns the number of atoms in the array.
func (a *AtomArray) AtomCount() int {
	return len(a.Coord)
}

func (a *AtomArray) HasBFactor() bool   { return a.BFactor != nil }
func (a *AtomArray) HasOccupancy() bool { return a.Occupancy != nil }
func (a *AtomArray) HasCharge() bool    { return a.Charge != nil }
func (a *AtomArray) HasAltlocID() bool  { return a.AltlocID != nil }

// Check verifies that all annotation columns have the same length as the
// coordinate column.
func (a *AtomArray) Check() error {
	n := a.AtomCount()
	cols := []struct {
		name   string
		length int
		set    bool
	}{
		{"chain_id", len(a.ChainID), true},
		{"res_id", len(a.ResID), true},
		{"ins_code", len(a.InsCode), true},
		{"res_name", len(a.ResName), true},
		{"hetero", len(a.Hetero), true},
		{"atom_name", len(a.AtomName), true},
		{"element", len(a.Element), true},
		{"b_factor", len(a.BFactor), a.BFactor != nil},
		{"occupancy", len(a.Occupancy), a.Occupancy != nil},
		{"charge", len(a.Charge), a.Charge != nil},
		{"altloc_id", len(a.AltlocID), a.AltlocID != nil},
	}
	for _, col := range cols {
		if col.set && col.length != n {
			return fmt.Errorf("annotation %q has length %d, expected %d", col.name, col.length, n)
		}
	}
	return nil
}

// Filter returns a copy containing only the atoms at true positions of keep.
// Bonds between two retained atoms are kept and reindexed; bonds touching a
// removed atom are dropped.
func (a *AtomArray) Filter(keep []bool) *AtomArray {
	remap := buildRemap(keep)

	out := &AtomArray{}
	for i, k := range keep {
		if !k {
			continue
		}
		out.ChainID = append(out.ChainID, a.ChainID[i])
		out.ResID = append(out.ResID, a.ResID[i])
		out.InsCode = append(out.InsCode, a.InsCode[i])
		out.ResName = append(out.ResName, a.ResName[i])
		out.Hetero = append(out.Hetero, a.Hetero[i])
		out.AtomName = append(out.AtomName, a.AtomName[i])
		out.Element = append(out.Element, a.Element[i])
		out.Coord = append(out.Coord, a.Coord[i])
		if a.BFactor != nil {
			out.BFactor = append(out.BFactor, a.BFactor[i])
		}
		if a.Occupancy != nil {
			out.Occupancy = append(out.Occupancy, a.Occupancy[i])
		}
		if a.Charge != nil {
			out.Charge = append(out.Charge, a.Charge[i])
		}
		if a.AltlocID != nil {
			out.AltlocID = append(out.AltlocID, a.AltlocID[i])
		}
	}
	out.Bonds = remapBonds(a.Bonds, remap)
	return out
}

// AtomArrayStack is a multi-state structure: one set of annotation columns
// shared by all states, plus one coordinate set per state. Every state has
// the same atoms in the same order, differing only in coordinates.
type AtomArrayStack struct {
	ChainID  []string
	ResID    []int
	InsCode  []string
	ResName  []string
	Hetero   []bool
	AtomName []string
	Element  []string

	// Coords holds one coordinate set per state (states x atoms).
	Coords [][][3]float64

	BFactor   []float64
	Occupancy []float64
	Charge    []int
	AltlocID  []string

	Bonds []Bond
}

// AtomCount returns the number of atoms per state.
func (s *AtomArrayStack) AtomCount() int {
	if len(s.Coords) == 0 {
		return 0
	}
	return len(s.Coords[0])
}

// StateCount returns the number of coordinate states.
func (s *AtomArrayStack) StateCount() int {
	return len(s.Coords)
}

func (s *AtomArrayStack) HasBFactor() bool   { return s.BFactor != nil }
func (s *AtomArrayStack) HasOccupancy() bool { return s.Occupancy != nil }
func (s *AtomArrayStack) HasCharge() bool    { return s.Charge != nil }
func (s *AtomArrayStack) HasAltlocID() bool  { return s.AltlocID != nil }

// State returns the i-th state as an AtomArray. Annotation columns are
// shared with the stack, the coordinate column refers to that state's set.
func (s *AtomArrayStack) State(i int) *AtomArray {
	return &AtomArray{
		ChainID:   s.ChainID,
		ResID:     s.ResID,
		InsCode:   s.InsCode,
		ResName:   s.ResName,
		Hetero:    s.Hetero,
		AtomName:  s.AtomName,
		Element:   s.Element,
		Coord:     s.Coords[i],
		BFactor:   s.BFactor,
		Occupancy: s.Occupancy,
		Charge:    s.Charge,
		AltlocID:  s.AltlocID,
		Bonds:     s.Bonds,
	}
}

// Filter returns a copy containing only the atoms at true positions of keep,
// applied to every state.
func (s *AtomArrayStack) Filter(keep []bool) *AtomArrayStack {
	template := s.State(0).Filter(keep)
	coords := make([][][3]float64, len(s.Coords))
	for st := range s.Coords {
		var c [][3]float64
		for i, k := range keep {
			if k {
				c = append(c, s.Coords[st][i])
			}
		}
		coords[st] = c
	}
	out := stackFromColumns(template)
	out.Coords = coords
	return out
}

// FromTemplate builds an AtomArrayStack from an annotation template and one
// coordinate set per state. Every coordinate set must have the template's
// atom count.
func FromTemplate(template *AtomArray, coords [][][3]float64) (*AtomArrayStack, error) {
	if len(coords) == 0 {
		return nil, fmt.Errorf("at least one coordinate state is required")
	}
	for i, c := range coords {
		if len(c) != template.AtomCount() {
			return nil, fmt.Errorf(
				"state %d has %d atoms, template has %d", i+1, len(c), template.AtomCount(),
			)
		}
	}
	out := stackFromColumns(template)
	out.Coords = coords
	return out, nil
}

// stackFromColumns copies a template's annotation columns into a stack
// without coordinates.
func stackFromColumns(template *AtomArray) *AtomArrayStack {
	return &AtomArrayStack{
		ChainID:   template.ChainID,
		ResID:     template.ResID,
		InsCode:   template.InsCode,
		ResName:   template.ResName,
		Hetero:    template.Hetero,
		AtomName:  template.AtomName,
		Element:   template.Element,
		BFactor:   template.BFactor,
		Occupancy: template.Occupancy,
		Charge:    template.Charge,
		AltlocID:  template.AltlocID,
		Bonds:     template.Bonds,
	}
}

// buildRemap maps old atom indices to new ones; removed atoms map to -1.
func buildRemap(keep []bool) []int {
	remap := make([]int, len(keep))
	next := 0
	for i, k := range keep {
		if k {
			remap[i] = next
			next++
		} else {
			remap[i] = -1
		}
	}
	return remap
}

func remapBonds(bonds []Bond, remap []int) []Bond {
	var out []Bond
	for _, b := range bonds {
		if b.Atom1 >= len(remap) || b.Atom2 >= len(remap) {
			continue
		}
		a1, a2 := remap[b.Atom1], remap[b.Atom2]
		if a1 < 0 || a2 < 0 {
			continue
		}
		out = append(out, Bond{Atom1: a1, Atom2: a2, Order: b.Order})
	}
	return out
}
