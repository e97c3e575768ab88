package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Two residues: A/1 with altloc pair on its second atom, A/2 without altlocs.
var (
	altChain = []string{"A", "A", "A", "A"}
	altRes   = []int{1, 1, 1, 2}
	altIns   = []string{"", "", "", ""}
	altIDs   = []string{"", "A", "B", ""}
	altOcc   = []float64{1.0, 0.3, 0.7, 1.0}
)

func TestFilterFirstAltloc(t *testing.T) {
	keep := FilterFirstAltloc(altChain, altRes, altIns, altIDs)
	assert.Equal(t, []bool{true, true, false, true}, keep)
}

func TestFilterFirstAltloc_NoColumn(t *testing.T) {
	keep := FilterFirstAltloc(altChain, altRes, altIns, nil)
	assert.Equal(t, []bool{true, true, true, true}, keep)
}

func TestFilterFirstAltloc_SeparateResidues(t *testing.T) {
	// Same altloc IDs in different residues are independent
	chain := []string{"A", "A", "B", "B"}
	res := []int{1, 1, 1, 1}
	ins := []string{"", "", "", ""}
	ids := []string{"A", "B", "B", "A"}
	keep := FilterFirstAltloc(chain, res, ins, ids)
	assert.Equal(t, []bool{true, false, true, false}, keep)
}

func TestFilterHighestOccupancyAltloc(t *testing.T) {
	keep := FilterHighestOccupancyAltloc(altChain, altRes, altIns, altIDs, altOcc)
	assert.Equal(t, []bool{true, false, true, true}, keep)
}

func TestFilterHighestOccupancyAltloc_NoOccupancy(t *testing.T) {
	// Without occupancies the first altloc wins
	keep := FilterHighestOccupancyAltloc(altChain, altRes, altIns, altIDs, nil)
	assert.Equal(t, []bool{true, true, false, true}, keep)
}

func TestFilterFirstAltloc_DotTreatedAsEmpty(t *testing.T) {
	keep := FilterFirstAltloc(
		[]string{"A", "A"}, []int{1, 1}, []string{"", ""}, []string{".", "A"},
	)
	assert.Equal(t, []bool{true, true}, keep)
}
