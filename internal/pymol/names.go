package pymol

import "fmt"

// NameAllocator hands out unique object and color names for a session. Its
// state is explicit so tests can construct their own allocator instead of
// relying on process-wide counters.
type NameAllocator struct {
	prefix string
	next   uint64
}

// NewNameAllocator creates an allocator producing "<prefix>_<n>" names.
func NewNameAllocator(prefix string) *NameAllocator {
	return &NameAllocator{prefix: prefix}
}

// Next returns the next unused name.
func (a *NameAllocator) Next() string {
	name := fmt.Sprintf("%s_%d", a.prefix, a.next)
	a.next++
	return name
}
