package minheap_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/minheap"
)

// ExampleHeap extracts items in priority order; the duplicate "b" entry
// shows that re-adding never updates an existing pair.
func ExampleHeap() {
	h := minheap.New[string]()
	h.Add("c", 3)
	h.Add("b", 2.5)
	h.Add("a", 1)
	h.Add("b", 2)

	for !h.IsEmpty() {
		item, p := h.RemoveSmallestWithPriority()
		fmt.Printf("%s %.1f\n", item, p)
	}

	// Output:
	// a 1.0
	// b 2.0
	// b 2.5
	// c 3.0
}
