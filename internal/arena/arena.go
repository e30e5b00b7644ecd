package arena

// Null - The reserved index standing for "no node". The node stored at it is the zero value of N (or the value
// given to New) and is never handed out by Alloc.
const Null = 0

// Arena - Slice backed node storage where nodes refer to each other by index instead of by pointer.
// Released indexes are kept on a free list and handed out again by Alloc.
// Pointers returned by At are only valid until the next Alloc, since the backing slice may be reallocated.
type Arena[N any] struct {
	nodes []N
	free  []int
}

// New - Returns a pointer to a new Arena with null stored at index Null
func New[N any](null N) *Arena[N] {
	return &Arena[N]{nodes: []N{null}}
}

// Alloc - Stores n and returns its index, reusing a released index if there is one
func (A *Arena[N]) Alloc(n N) int {
	if l := len(A.free); l > 0 {
		i := A.free[l-1]
		A.free = A.free[:l-1]
		A.nodes[i] = n
		return i
	}

	A.nodes = append(A.nodes, n)
	return len(A.nodes) - 1
}

// Release - Clears the node at index i and puts the index on the free list. Releasing Null is ignored.
func (A *Arena[N]) Release(i int) {
	if i == Null {
		return
	}

	var zero N
	A.nodes[i] = zero
	A.free = append(A.free, i)
}

// At - Returns a pointer to the node at index i
func (A *Arena[N]) At(i int) *N {
	return &A.nodes[i]
}

// Len - Returns the number of live nodes, Null excluded
func (A *Arena[N]) Len() int {
	return len(A.nodes) - 1 - len(A.free)
}

// Clone - Returns a copy of the arena with the same indexes, so index based links stay valid in the copy
func (A *Arena[N]) Clone() *Arena[N] {
	nodes := make([]N, len(A.nodes))
	_ = copy(nodes, A.nodes)
	free := make([]int, len(A.free))
	_ = copy(free, A.free)

	return &Arena[N]{nodes: nodes, free: free}
}

// Reset - Releases every node, keeping Null
func (A *Arena[N]) Reset() {
	clear(A.nodes[1:])
	A.nodes = A.nodes[:1]
	A.free = A.free[:0]
}
