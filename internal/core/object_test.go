package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilupskalvis/molbridge/internal/models"
	"github.com/kilupskalvis/molbridge/internal/pymol"
)

// newTestModel builds a record model of n carbon atoms, three per residue.
func newTestModel(n int) *models.ObjectModel {
	atoms := make([]models.AtomRecord, n)
	for i := range atoms {
		atoms[i] = models.AtomRecord{
			Symbol:    "C",
			Name:      fmt.Sprintf("C%d", i+1),
			ResName:   "ALA",
			ResID:     i/3 + 1,
			Occupancy: 1,
			ChainID:   "A",
			Coord:     [3]float64{float64(i), 0, 0},
		}
	}
	return &models.ObjectModel{Atoms: atoms}
}

// addAtom simulates an external modification of a mock object.
func addAtom(obj *pymol.MockObject) {
	obj.Model.Atoms = append(obj.Model.Atoms, models.AtomRecord{Symbol: "C", ChainID: "A"})
	for i := range obj.Coords {
		obj.Coords[i] = append(obj.Coords[i], [3]float64{})
	}
}

func truePositions(mask []bool) []int {
	var idx []int
	for i, v := range mask {
		if v {
			idx = append(idx, i)
		}
	}
	return idx
}

func TestWrap(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newTestModel(6))

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)
	assert.Equal(t, "m", obj.Name())
	assert.Equal(t, 6, obj.AtomCount())
}

func TestWrap_NonexistentObject(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()

	_, err := Wrap(ctx, client, "missing")
	var nonexistent *NonexistentObjectError
	require.True(t, errors.As(err, &nonexistent))
	assert.Equal(t, "missing", nonexistent.Name)
}

func TestValidate_ModifiedObject(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newTestModel(4))

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)

	// Atoms added behind the handle's back
	addAtom(client.Objects["m"])

	err = obj.Show(ctx, "sticks", All())
	var modified *ModifiedObjectError
	require.True(t, errors.As(err, &modified))
	assert.Equal(t, 4, modified.Expected)
	assert.Equal(t, 5, modified.Actual)
	// The command must not have reached the engine
	assert.Empty(t, client.Calls)
}

func TestValidate_DeletedObject(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newTestModel(4))

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)
	require.NoError(t, client.Delete(ctx, "m"))

	err = obj.Zoom(ctx, All(), 0, 0, false)
	var nonexistent *NonexistentObjectError
	assert.True(t, errors.As(err, &nonexistent))
}

func TestWhere_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newTestModel(8))

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)

	mask := []bool{true, true, false, false, true, false, true, true}
	expr, err := obj.Where(ctx, mask)
	require.NoError(t, err)

	selected, err := client.EvalSelection(expr)
	require.NoError(t, err)
	assert.Equal(t, truePositions(mask), selected)
}

func TestWhere_AllTrue(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newTestModel(5))

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)

	mask := []bool{true, true, true, true, true}
	expr, err := obj.Where(ctx, mask)
	require.NoError(t, err)

	selected, err := client.EvalSelection(expr)
	require.NoError(t, err)
	whole, err := client.EvalSelection("model m")
	require.NoError(t, err)
	assert.Equal(t, whole, selected)
}

func TestWhere_AllFalse(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newTestModel(5))

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)

	expr, err := obj.Where(ctx, make([]bool, 5))
	require.NoError(t, err)

	selected, err := client.EvalSelection(expr)
	require.NoError(t, err)
	assert.Empty(t, selected)
}

func TestWhere_LengthMismatch(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newTestModel(5))

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)

	for _, length := range []int{4, 6} {
		_, err := obj.Where(ctx, make([]bool, length))
		var lenErr *MaskLengthError
		require.True(t, errors.As(err, &lenErr))
		assert.Equal(t, 5, lenErr.Expected)
		assert.Equal(t, length, lenErr.Actual)
	}
}

func TestSelect_Mask(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newTestModel(6))

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)

	mask := []bool{false, true, true, false, false, true}
	count, err := obj.Select(ctx, "picked", Mask(mask))
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, truePositions(mask), client.Selections["picked"])
}

func TestCommand_ExprScoping(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newTestModel(6))

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)

	// A raw expression is narrowed to the object, never replacing its scope
	require.NoError(t, obj.Show(ctx, "sticks", Expr("index 2-3")))
	require.Len(t, client.Calls, 1)
	assert.Equal(t, "show sticks | model m and (index 2-3)", client.Calls[0])
}

func TestCommand_DefaultSelection(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newTestModel(6))

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)

	require.NoError(t, obj.Hide(ctx, "cartoon", All()))
	require.Len(t, client.Calls, 1)
	assert.Equal(t, "hide cartoon | model m", client.Calls[0])
}

func TestColor_UnknownName(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newTestModel(3))

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)

	err = obj.Color(ctx, "chartreuse2", All())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color")
	assert.Empty(t, client.Calls)
}

func TestColor_Registered(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newTestModel(3))

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)

	require.NoError(t, obj.Color(ctx, "red", All()))
	require.Len(t, client.Calls, 1)
	assert.Equal(t, "color red | model m", client.Calls[0])
}

func TestColorRGB_RegistersAllocatedName(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newTestModel(3))

	obj, err := Wrap(ctx, client, "m",
		WithColorAllocator(pymol.NewNameAllocator("testcol")))
	require.NoError(t, err)

	require.NoError(t, obj.ColorRGB(ctx, [3]float64{0.2, 0.4, 0.6}, All()))
	assert.Contains(t, client.Colors, "testcol_0")
	require.Len(t, client.Calls, 1)
	assert.Equal(t, "color testcol_0 | model m", client.Calls[0])
}

func TestSetBond_SecondSelectionMirrorsFirst(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newTestModel(4))

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)

	require.NoError(t, obj.SetBond(ctx, "stick_radius", 0.3, Expr("index 1-2"), All(), 0))
	require.Len(t, client.Calls, 1)
	assert.Equal(t,
		"set_bond stick_radius=0.3 | model m and (index 1-2) | model m and (index 1-2) | state=0",
		client.Calls[0])
}

func TestClose_OwnedDeletes(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newTestModel(3))

	obj, err := Wrap(ctx, client, "m")
	require.NoError(t, err)

	require.NoError(t, obj.Close(ctx))
	assert.NotContains(t, client.Objects, "m")
}

func TestClose_UnownedKeeps(t *testing.T) {
	ctx := context.Background()
	client := pymol.NewMockClient()
	client.AddObject("m", newTestModel(3))

	obj, err := Wrap(ctx, client, "m", Unowned())
	require.NoError(t, err)

	require.NoError(t, obj.Close(ctx))
	assert.Contains(t, client.Objects, "m")
}
