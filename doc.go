// Package minheap implements an indexed binary min-heap: a priority queue
// over caller-assigned integer identifiers that keeps a reverse index from
// identifier to heap position, so an element's priority can be lowered in
// O(log n) without first scanning for it.
//
// The heap holds elements in a fixed-capacity array arranged as a
// nearly-complete binary tree in level order, with a second array mapping
// each identifier to the element's current position. Identifiers are small
// integers chosen by the caller from the range [0, capacity), which lets the
// reverse index be a plain array rather than a hash map.
//
// Key features:
//   - O(log n) insertion, extraction, and priority decrease
//   - O(1) minimum peek, liveness check, and priority lookup by ID
//   - Value-type nodes in storage allocated once at construction
//   - Fixed capacity; the heap never grows or reallocates
//
// Basic usage:
//
//	// Create a heap for up to 16 elements with IDs in [0, 16).
//	h := minheap.New(16)
//
//	// Insert elements under caller-chosen IDs.
//	h.Insert(3, 50)
//	h.Insert(7, 10)
//	h.Insert(1, 30)
//
//	// Peek at the minimum without removing it.
//	if n, err := h.Min(); err == nil {
//	    fmt.Printf("min: id=%d priority=%d\n", n.ID, n.Priority)
//	}
//
//	// Lower an element's priority in place.
//	h.DecreasePriority(1, 5)
//
//	// Drain in priority order.
//	for h.Len() > 0 {
//	    n, _ := h.ExtractMin()
//	    fmt.Println(n.ID, n.Priority)
//	}
//
// Priorities can only be lowered in place, never raised, and elements leave
// the heap only through ExtractMin. Elements with equal priorities are
// extracted in no particular order.
//
// The heap is not safe for concurrent use. Callers sharing a heap across
// goroutines must serialize all operations themselves, for example behind a
// sync.Mutex.
package minheap
