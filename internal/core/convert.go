package core

import (
	"context"
	"fmt"

	"github.com/kilupskalvis/molbridge/internal/models"
)

// toObjectModel converts a single-state atom array into the engine's
// per-atom record model. Absent optional columns get engine defaults:
// b-factor 0, occupancy 1, no formal charge, no altloc ID.
func toObjectModel(arr *models.AtomArray) (*models.ObjectModel, error) {
	if err := arr.Check(); err != nil {
		return nil, err
	}

	atoms := make([]models.AtomRecord, arr.AtomCount())
	for i := range atoms {
		rec := models.AtomRecord{
			Symbol:    arr.Element[i],
			Name:      arr.AtomName[i],
			ResName:   arr.ResName[i],
			InsCode:   arr.InsCode[i],
			ResID:     arr.ResID[i],
			Occupancy: 1,
			Hetero:    arr.Hetero[i],
			ChainID:   arr.ChainID[i],
			Coord:     arr.Coord[i],
		}
		if arr.BFactor != nil {
			rec.BFactor = arr.BFactor[i]
		}
		if arr.Occupancy != nil {
			rec.Occupancy = arr.Occupancy[i]
		}
		if arr.Charge != nil {
			rec.FormalCharge = arr.Charge[i]
		}
		if arr.AltlocID != nil {
			rec.Altloc = arr.AltlocID[i]
		}
		atoms[i] = rec
	}

	return &models.ObjectModel{
		Atoms: atoms,
		Bonds: append([]models.Bond(nil), arr.Bonds...),
	}, nil
}

// fromObjectModel converts an engine record model into an atom array. All
// optional columns are populated since the engine always carries them; bond
// records are only taken over when requested.
func fromObjectModel(model *models.ObjectModel, includeBonds bool) *models.AtomArray {
	n := len(model.Atoms)
	arr := &models.AtomArray{
		ChainID:   make([]string, n),
		ResID:     make([]int, n),
		InsCode:   make([]string, n),
		ResName:   make([]string, n),
		Hetero:    make([]bool, n),
		AtomName:  make([]string, n),
		Element:   make([]string, n),
		Coord:     make([][3]float64, n),
		BFactor:   make([]float64, n),
		Occupancy: make([]float64, n),
		Charge:    make([]int, n),
		AltlocID:  make([]string, n),
	}
	for i, a := range model.Atoms {
		arr.ChainID[i] = a.ChainID
		arr.ResID[i] = a.ResID
		arr.InsCode[i] = a.InsCode
		arr.ResName[i] = a.ResName
		arr.Hetero[i] = a.Hetero
		arr.AtomName[i] = a.Name
		arr.Element[i] = a.Symbol
		arr.Coord[i] = a.Coord
		arr.BFactor[i] = a.BFactor
		arr.Occupancy[i] = a.Occupancy
		arr.Charge[i] = a.FormalCharge
		arr.AltlocID[i] = a.Altloc
	}
	if includeBonds {
		arr.Bonds = append([]models.Bond(nil), model.Bonds...)
	}
	return arr
}

type toStructureOptions struct {
	state  int
	altloc models.AltlocPolicy
	bonds  bool
}

// ToStructureOption configures ToStructure.
type ToStructureOption func(*toStructureOptions)

// WithState imports a single state (1-based) as an *AtomArray instead of a
// stack of all states.
func WithState(state int) ToStructureOption {
	return func(o *toStructureOptions) { o.state = state }
}

// WithAltloc sets the alternate-location policy applied after import.
// Default is AltlocAll.
func WithAltloc(policy models.AltlocPolicy) ToStructureOption {
	return func(o *toStructureOptions) { o.altloc = policy }
}

// WithBonds takes over the object's own bond records into the result.
func WithBonds() ToStructureOption {
	return func(o *toStructureOptions) { o.bonds = true }
}

// ToStructure extracts the bound object into a structure. Without WithState
// it returns an *AtomArrayStack of all states, even for a single-state
// object; with WithState it returns the *AtomArray of that state.
func (o *Object) ToStructure(ctx context.Context, opts ...ToStructureOption) (models.Structure, error) {
	if err := o.validate(ctx); err != nil {
		return nil, err
	}
	cfg := toStructureOptions{altloc: models.AltlocAll}
	for _, opt := range opts {
		opt(&cfg)
	}

	var structure models.Structure
	if cfg.state == 0 {
		// Record list of state 1 is the topology template; states only
		// differ in coordinates.
		model, err := o.client.GetModel(ctx, o.name, 1)
		if err != nil {
			return nil, err
		}
		template := fromObjectModel(model, cfg.bonds)

		states, err := o.client.CountStates(ctx, o.name)
		if err != nil {
			return nil, err
		}
		coords := make([][][3]float64, 0, states)
		expected := -1
		for state := 1; state <= states; state++ {
			c, err := o.client.GetCoordSet(ctx, o.name, state)
			if err != nil {
				return nil, err
			}
			if expected < 0 {
				expected = len(c)
			} else if len(c) != expected {
				return nil, &StateMismatchError{State: state, Expected: expected, Actual: len(c)}
			}
			coords = append(coords, c)
		}

		stack, err := models.FromTemplate(template, coords)
		if err != nil {
			return nil, err
		}
		structure = stack
	} else {
		model, err := o.client.GetModel(ctx, o.name, cfg.state)
		if err != nil {
			return nil, err
		}
		structure = fromObjectModel(model, cfg.bonds)
	}

	return applyAltlocPolicy(structure, cfg.altloc)
}

// applyAltlocPolicy filters alternate-location duplicates according to the
// policy. The "first" and "occupancy" policies drop the altloc column from
// the result; "all" keeps everything including the column.
func applyAltlocPolicy(s models.Structure, policy models.AltlocPolicy) (models.Structure, error) {
	switch policy {
	case models.AltlocAll:
		return s, nil
	case models.AltlocFirst, models.AltlocOccupancy:
	default:
		return nil, fmt.Errorf("%q is not a valid altloc policy", policy)
	}

	switch v := s.(type) {
	case *models.AtomArray:
		out := v.Filter(altlocMask(policy, v.ChainID, v.ResID, v.InsCode, v.AltlocID, v.Occupancy))
		out.AltlocID = nil
		return out, nil
	case *models.AtomArrayStack:
		out := v.Filter(altlocMask(policy, v.ChainID, v.ResID, v.InsCode, v.AltlocID, v.Occupancy))
		out.AltlocID = nil
		return out, nil
	default:
		return nil, fmt.Errorf("expected *models.AtomArray or *models.AtomArrayStack, got %T", s)
	}
}

func altlocMask(
	policy models.AltlocPolicy,
	chainID []string, resID []int, insCode []string, altlocID []string, occupancy []float64,
) []bool {
	if policy == models.AltlocOccupancy {
		return models.FilterHighestOccupancyAltloc(chainID, resID, insCode, altlocID, occupancy)
	}
	return models.FilterFirstAltloc(chainID, resID, insCode, altlocID)
}
