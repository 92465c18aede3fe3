package beam

import (
	"container/heap"
	"sort"
)

// lessNode reports whether a is strictly better than b under the §4.6/§9
// tie-break discipline: lowest pruneScore first, ties broken by (fewer log
// entries, lower sum of AGV ready_times, lower node id).
func lessNode(a, b *Node) bool {
	if a.pruneScore != b.pruneScore {
		return a.pruneScore < b.pruneScore
	}
	if a.Log.Len() != b.Log.Len() {
		return a.Log.Len() < b.Log.Len()
	}
	aSum, bSum := a.Pool.ReadyTimeSum(), b.Pool.ReadyTimeSum()
	if aSum != bSum {
		return aSum < bSum
	}
	return a.ID < b.ID
}

// worstHeap is a bounded max-heap over the tie-break order: its root is
// always the single worst surviving candidate, so pruning a new arrival
// down to width just means one Push followed by one Pop, following the
// same container/heap priority-queue shape as the teacher's cbsHeap.
type worstHeap []*Node

func (h worstHeap) Len() int { return len(h) }
func (h worstHeap) Less(i, j int) bool {
	// Max-heap: the "worse" node (per lessNode) sorts first here.
	return lessNode(h[j], h[i])
}
func (h worstHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *worstHeap) Push(x any) {
	*h = append(*h, x.(*Node))
}
func (h *worstHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// prune keeps at most width candidates, discarding the worst by the
// tie-break order, and returns the survivors sorted best-first for
// deterministic downstream iteration (winner selection, logging).
func prune(candidates []*Node, width int) []*Node {
	if width <= 0 {
		width = 1
	}

	h := &worstHeap{}
	heap.Init(h)
	for _, n := range candidates {
		heap.Push(h, n)
		if h.Len() > width {
			heap.Pop(h)
		}
	}

	survivors := make([]*Node, h.Len())
	copy(survivors, *h)
	sort.Slice(survivors, func(i, j int) bool {
		return lessNode(survivors[i], survivors[j])
	})
	return survivors
}
