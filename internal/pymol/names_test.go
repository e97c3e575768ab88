package pymol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameAllocator(t *testing.T) {
	a := NewNameAllocator("mol_obj")
	assert.Equal(t, "mol_obj_0", a.Next())
	assert.Equal(t, "mol_obj_1", a.Next())
	assert.Equal(t, "mol_obj_2", a.Next())

	// Independent allocators do not share state
	b := NewNameAllocator("mol_obj")
	assert.Equal(t, "mol_obj_0", b.Next())
}
