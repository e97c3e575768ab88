package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilupskalvis/molbridge/internal/models"
	"github.com/kilupskalvis/molbridge/internal/pymol"
)

// newTestArray builds a two-residue peptide fragment with b-factors.
func newTestArray() *models.AtomArray {
	return &models.AtomArray{
		ChainID:  []string{"A", "A", "A", "B"},
		ResID:    []int{1, 1, 2, 5},
		InsCode:  []string{"", "", "", "A"},
		ResName:  []string{"GLY", "GLY", "ALA", "HOH"},
		Hetero:   []bool{false, false, false, true},
		AtomName: []string{"N", "CA", "CA", "O"},
		Element:  []string{"N", "C", "C", "O"},
		Coord: [][3]float64{
			{1.0, 2.0, 3.0},
			{1.5, 2.5, 3.5},
			{4.0, 5.0, 6.0},
			{7.0, 8.0, 9.0},
		},
		BFactor: []float64{10.5, 11.0, 12.25, 40.0},
		Bonds:   []models.Bond{{Atom1: 0, Atom2: 1, Order: 1}},
	}
}

func TestFromStructure_SingleState(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()

	obj, err := FromStructure(ctx, client, newTestArray(), WithName("pep"))
	require.NoError(t, err)
	assert.Equal(t, "pep", obj.Name())
	assert.Equal(t, 4, obj.AtomCount())

	mock := client.Objects["pep"]
	require.NotNil(t, mock)
	require.Len(t, mock.Model.Atoms, 4)
	first := mock.Model.Atoms[0]
	assert.Equal(t, "N", first.Symbol)
	assert.Equal(t, "N", first.Name)
	assert.Equal(t, "GLY", first.ResName)
	assert.Equal(t, 1, first.ResID)
	assert.Equal(t, "A", first.ChainID)
	assert.Equal(t, 10.5, first.BFactor)
	// Missing occupancy column falls back to the engine default
	assert.Equal(t, 1.0, first.Occupancy)
	assert.Equal(t, [3]float64{1.0, 2.0, 3.0}, first.Coord)
	assert.Equal(t, []models.Bond{{Atom1: 0, Atom2: 1, Order: 1}}, mock.Model.Bonds)
}

func TestFromStructure_AllocatesNames(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	names := pymol.NewNameAllocator("obj")

	a, err := FromStructure(ctx, client, newTestArray(), WithNameAllocator(names))
	require.NoError(t, err)
	b, err := FromStructure(ctx, client, newTestArray(), WithNameAllocator(names))
	require.NoError(t, err)

	assert.Equal(t, "obj_0", a.Name())
	assert.Equal(t, "obj_1", b.Name())
}

func TestFromStructure_RejectsUnknownShape(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()

	_, err := FromStructure(ctx, client, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected *models.AtomArray or *models.AtomArrayStack")
}

func TestFromStructure_ColumnLengthMismatch(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()

	arr := newTestArray()
	arr.BFactor = arr.BFactor[:2]
	_, err := FromStructure(ctx, client, arr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b_factor")
}

func TestRoundTrip_SingleState(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	arr := newTestArray()

	obj, err := FromStructure(ctx, client, arr)
	require.NoError(t, err)

	structure, err := obj.ToStructure(ctx, WithState(1))
	require.NoError(t, err)
	got, ok := structure.(*models.AtomArray)
	require.True(t, ok)

	assert.Equal(t, arr.ChainID, got.ChainID)
	assert.Equal(t, arr.ResID, got.ResID)
	assert.Equal(t, arr.InsCode, got.InsCode)
	assert.Equal(t, arr.ResName, got.ResName)
	assert.Equal(t, arr.Hetero, got.Hetero)
	assert.Equal(t, arr.AtomName, got.AtomName)
	assert.Equal(t, arr.Element, got.Element)
	assert.Equal(t, arr.Coord, got.Coord)
	assert.Equal(t, arr.BFactor, got.BFactor)
}

func TestRoundTrip_Stack(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()

	template := newTestArray()
	coords := [][][3]float64{
		template.Coord,
		{{0, 0, 1}, {0, 0, 2}, {0, 0, 3}, {0, 0, 4}},
		{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {4, 4, 4}},
	}
	stack, err := models.FromTemplate(template, coords)
	require.NoError(t, err)

	obj, err := FromStructure(ctx, client, stack)
	require.NoError(t, err)

	structure, err := obj.ToStructure(ctx)
	require.NoError(t, err)
	got, ok := structure.(*models.AtomArrayStack)
	require.True(t, ok)

	require.Equal(t, 3, got.StateCount())
	assert.Equal(t, 4, got.AtomCount())
	assert.Equal(t, coords, got.Coords)
	assert.Equal(t, template.ChainID, got.ChainID)
	assert.Equal(t, template.BFactor, got.BFactor)
}

func TestFromStructure_SingleStateStack(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()

	stack, err := models.FromTemplate(newTestArray(), [][][3]float64{newTestArray().Coord})
	require.NoError(t, err)

	obj, err := FromStructure(ctx, client, stack, WithName("single"))
	require.NoError(t, err)

	states, err := client.CountStates(ctx, obj.Name())
	require.NoError(t, err)
	assert.Equal(t, 1, states)
}

func TestToStructure_StateMismatch(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()

	stack, err := models.FromTemplate(newTestArray(), [][][3]float64{
		newTestArray().Coord,
		newTestArray().Coord,
	})
	require.NoError(t, err)

	obj, err := FromStructure(ctx, client, stack, WithName("traj"))
	require.NoError(t, err)

	// The second coordinate state loses an atom behind the scenes; the
	// atom count query still sees the record list, so validation passes
	// and the mismatch must surface during import.
	client.Objects["traj"].Coords[1] = client.Objects["traj"].Coords[1][:3]

	_, err = obj.ToStructure(ctx)
	var mismatch *StateMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 2, mismatch.State)
	assert.Equal(t, 4, mismatch.Expected)
	assert.Equal(t, 3, mismatch.Actual)
}

// newAltlocModel builds one residue with a shared N atom and an altloc pair
// for CA, plus a second residue without altlocs.
func newAltlocModel() *models.ObjectModel {
	return &models.ObjectModel{Atoms: []models.AtomRecord{
		{Symbol: "N", Name: "N", ResName: "SER", ResID: 1, ChainID: "A", Occupancy: 1.0,
			Coord: [3]float64{0, 0, 0}},
		{Symbol: "C", Name: "CA", ResName: "SER", ResID: 1, ChainID: "A", Occupancy: 0.3,
			Altloc: "A", Coord: [3]float64{1, 0, 0}},
		{Symbol: "C", Name: "CA", ResName: "SER", ResID: 1, ChainID: "A", Occupancy: 0.7,
			Altloc: "B", Coord: [3]float64{1.2, 0, 0}},
		{Symbol: "C", Name: "CA", ResName: "GLY", ResID: 2, ChainID: "A", Occupancy: 1.0,
			Coord: [3]float64{2, 0, 0}},
	}}
}

func TestToStructure_AltlocFirst(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newAltlocModel())

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)

	structure, err := obj.ToStructure(ctx, WithState(1), WithAltloc(models.AltlocFirst))
	require.NoError(t, err)
	arr := structure.(*models.AtomArray)

	require.Equal(t, 3, arr.AtomCount())
	assert.Equal(t, []string{"N", "CA", "CA"}, arr.AtomName)
	// The "A" variant survives, the "B" variant is gone
	assert.Equal(t, [3]float64{1, 0, 0}, arr.Coord[1])
	assert.False(t, arr.HasAltlocID())
}

func TestToStructure_AltlocOccupancy(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newAltlocModel())

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)

	structure, err := obj.ToStructure(ctx, WithState(1), WithAltloc(models.AltlocOccupancy))
	require.NoError(t, err)
	arr := structure.(*models.AtomArray)

	require.Equal(t, 3, arr.AtomCount())
	// The higher-occupancy "B" variant survives
	assert.Equal(t, [3]float64{1.2, 0, 0}, arr.Coord[1])
	assert.False(t, arr.HasAltlocID())
}

func TestToStructure_AltlocAll(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newAltlocModel())

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)

	structure, err := obj.ToStructure(ctx, WithState(1))
	require.NoError(t, err)
	arr := structure.(*models.AtomArray)

	assert.Equal(t, 4, arr.AtomCount())
	require.True(t, arr.HasAltlocID())
	assert.Equal(t, []string{"", "A", "B", ""}, arr.AltlocID)
}

func TestToStructure_InvalidAltlocPolicy(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newAltlocModel())

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)

	_, err = obj.ToStructure(ctx, WithState(1), WithAltloc("bogus"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid altloc policy")
}

func TestToStructure_WithBonds(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()

	obj, err := FromStructure(ctx, client, newTestArray())
	require.NoError(t, err)

	structure, err := obj.ToStructure(ctx, WithState(1), WithBonds())
	require.NoError(t, err)
	arr := structure.(*models.AtomArray)
	assert.Equal(t, []models.Bond{{Atom1: 0, Atom2: 1, Order: 1}}, arr.Bonds)

	// Without WithBonds the bond records stay behind
	structure, err = obj.ToStructure(ctx, WithState(1))
	require.NoError(t, err)
	assert.Nil(t, structure.(*models.AtomArray).Bonds)
}
