package minheap

import (
	"fmt"
	"io"
)

// Dump writes a plain-text rendering of the heap's internal state to w: a
// header with size and capacity, one line per live position with its ID and
// priority, and one line per ID in [0, Cap()) with the position it maps to.
// Slots past the live prefix are never read. Dump performs no mutation and is
// meant for debugging; program logic should not parse its output.
func (h *Heap) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "minheap size=%d capacity=%d\n", h.size, len(h.pos)); err != nil {
		return err
	}
	for i := 1; i <= h.size; i++ {
		if _, err := fmt.Fprintf(w, "pos %d: id=%d priority=%d\n", i, h.nodes[i].ID, h.nodes[i].Priority); err != nil {
			return err
		}
	}
	for id, p := range h.pos {
		var err error
		if p == 0 {
			_, err = fmt.Fprintf(w, "id %d -> absent\n", id)
		} else {
			_, err = fmt.Fprintf(w, "id %d -> pos %d\n", id, p)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
