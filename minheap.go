package minheap

import (
	"errors"
	"fmt"
	"iter"
)

// Common errors returned when an operation's preconditions are violated.
var (
	// ErrEmpty is returned by Min and ExtractMin on an empty heap.
	ErrEmpty = errors.New("minheap: heap is empty")
	// ErrFull is returned by Insert when the heap already holds Cap() elements.
	ErrFull = errors.New("minheap: heap is full")
	// ErrIDOutOfRange is returned by Insert when the ID is outside [0, Cap()).
	ErrIDOutOfRange = errors.New("minheap: id out of range")
	// ErrDuplicateID is returned by Insert when the ID is already in the heap.
	ErrDuplicateID = errors.New("minheap: id already in heap")
	// ErrUnknownID is returned by Priority when the ID is not in the heap.
	ErrUnknownID = errors.New("minheap: id not in heap")
)

// A Node is one heap element: a caller-assigned identifier and the priority
// that orders it. Lower priority values are extracted first.
type Node struct {
	ID       int
	Priority int
}

// Heap is an indexed binary min-heap with a fixed capacity.
//
// Elements live in a 1-indexed array laid out in level order: the element at
// position i has children at positions 2i and 2i+1 and its parent at i/2.
// Position 0 is never used. A second array maps each ID in [0, capacity) to
// the element's current position, or 0 while the ID is not in the heap. Every
// swap updates both arrays together, so the two stay consistent after any
// sequence of operations.
//
// The zero value is not usable; create heaps with New.
type Heap struct {
	nodes []Node // 1-indexed; nodes[0] is the unused sentinel slot
	pos   []int  // pos[id] is the position of id in nodes, 0 when absent
	size  int
}

// New returns an empty heap holding up to capacity elements with IDs drawn
// from [0, capacity). All backing storage is allocated here, once. A
// zero-capacity heap is valid and permanently empty. capacity must not be
// negative.
func New(capacity int) *Heap {
	return &Heap{
		nodes: make([]Node, capacity+1),
		pos:   make([]int, capacity),
	}
}

// Len returns the number of elements currently in the heap.
func (h *Heap) Len() int { return h.size }

// Cap returns the fixed capacity the heap was created with.
func (h *Heap) Cap() int { return len(h.pos) }

// Contains reports whether an element with the given ID is in the heap.
// IDs outside [0, Cap()) are never contained.
func (h *Heap) Contains(id int) bool {
	return id >= 0 && id < len(h.pos) && h.pos[id] != 0
}

// Min returns the minimum-priority element without removing it. It returns
// ErrEmpty when the heap holds no elements.
func (h *Heap) Min() (Node, error) {
	if h.size == 0 {
		return Node{}, ErrEmpty
	}
	return h.nodes[1], nil
}

// ExtractMin removes and returns the minimum-priority element. It returns
// ErrEmpty when the heap holds no elements.
func (h *Heap) ExtractMin() (Node, error) {
	if h.size == 0 {
		return Node{}, ErrEmpty
	}
	root := h.nodes[1]
	h.swap(1, h.size)
	h.pos[root.ID] = 0
	h.nodes[h.size] = Node{}
	h.size--
	h.down(1)
	return root, nil
}

// Insert adds an element with the given ID and priority. The ID must lie in
// [0, Cap()) and must not already be in the heap. Insert returns ErrFull when
// the heap is at capacity, and ErrIDOutOfRange or ErrDuplicateID when the ID
// is unusable.
func (h *Heap) Insert(id, priority int) error {
	if h.size == len(h.pos) {
		return ErrFull
	}
	if id < 0 || id >= len(h.pos) {
		return fmt.Errorf("%w: id %d", ErrIDOutOfRange, id)
	}
	if h.pos[id] != 0 {
		return fmt.Errorf("%w: id %d", ErrDuplicateID, id)
	}
	h.size++
	h.nodes[h.size] = Node{ID: id, Priority: priority}
	h.pos[id] = h.size
	h.up(h.size)
	return nil
}

// Priority returns the current priority of the element with the given ID in
// constant time. It returns ErrUnknownID when the ID is not in the heap.
func (h *Heap) Priority(id int) (int, error) {
	if !h.Contains(id) {
		return 0, fmt.Errorf("%w: id %d", ErrUnknownID, id)
	}
	return h.nodes[h.pos[id]].Priority, nil
}

// DecreasePriority lowers the priority of the element with the given ID and
// restores heap order from the element's current position. It reports whether
// the heap changed: false when the ID is not in the heap or when priority is
// not strictly lower than the element's current priority. On a false return
// the heap is left exactly as it was.
//
// The position table makes this O(log n): the element is located by ID in
// constant time, and lowering a key can only disturb its ancestors.
func (h *Heap) DecreasePriority(id, priority int) bool {
	if !h.Contains(id) {
		return false
	}
	p := h.pos[id]
	if priority >= h.nodes[p].Priority {
		return false
	}
	h.nodes[p].Priority = priority
	h.up(p)
	return true
}

// Reset removes all elements, returning the heap to its freshly created
// state. The capacity is retained and the backing storage reused.
func (h *Heap) Reset() {
	clear(h.nodes)
	clear(h.pos)
	h.size = 0
}

// All returns an iterator over the live elements in storage (level) order.
// Storage order is not priority order: only the first element yielded is the
// minimum. The heap must not be mutated while iterating.
func (h *Heap) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for i := 1; i <= h.size; i++ {
			if !yield(h.nodes[i]) {
				return
			}
		}
	}
}

// swap exchanges the elements at positions i and j, updating the position
// table in the same step. All reordering goes through swap.
func (h *Heap) swap(i, j int) {
	h.pos[h.nodes[i].ID], h.pos[h.nodes[j].ID] = j, i
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
}

// up moves the element at position p toward the root until its parent is no
// larger.
func (h *Heap) up(p int) {
	for p > 1 {
		parent := p / 2
		if h.nodes[parent].Priority <= h.nodes[p].Priority {
			break
		}
		h.swap(parent, p)
		p = parent
	}
}

// down moves the element at position p away from the root, swapping it with
// its smaller child and continuing from the child's position, until neither
// child is smaller.
func (h *Heap) down(p int) {
	for {
		child := 2 * p
		if child > h.size {
			return
		}
		if right := child + 1; right <= h.size && h.nodes[right].Priority < h.nodes[child].Priority {
			child = right
		}
		if h.nodes[p].Priority <= h.nodes[child].Priority {
			return
		}
		h.swap(p, child)
		p = child
	}
}
