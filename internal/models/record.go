package models

// AtomRecord is one atom of PyMOL's per-atom object model, mirroring the
// fields of a chempy atom.
type AtomRecord struct {
	Symbol       string
	Name         string
	ResName      string
	InsCode      string
	ResID        int
	BFactor      float64
	Occupancy    float64
	Hetero       bool
	ChainID      string
	Coord        [3]float64
	FormalCharge int
	Altloc       string
}

// Bond connects two atoms, referenced by 0-based indices into the atom list.
type Bond struct {
	Atom1 int
	Atom2 int
	Order int
}

// ObjectModel is the engine-facing representation of one object: the full
// per-atom record list plus the object's own bonding records.
type ObjectModel struct {
	Atoms []AtomRecord
	Bonds []Bond
}
