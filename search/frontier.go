// Package search - frontier disciplines behind one generic expansion loop.
//
// The four algorithms differ only in how the frontier orders nodes:
//
//	FIFO            level-order (BFS)
//	LIFO            depth-first (DFS)
//	cost            priority by g (UCS)
//	cost+heuristic  priority by g+h (A*)
//
// Priority ties break by insertion order, which keeps every run
// deterministic. The priority queue follows the lazy pattern of pushing
// duplicates and discarding stale entries via the engine's visited set.
package search

import "container/heap"

// discipline is the closed frontier-ordering tag.
type discipline uint8

const (
	disciplineFIFO discipline = iota
	disciplineLIFO
	disciplineCost
	disciplineCostHeuristic
)

// disciplineFor maps the public algorithm tag onto its frontier ordering.
func disciplineFor(a Algorithm) discipline {
	switch a {
	case DFS:
		return disciplineLIFO
	case UCS:
		return disciplineCost
	case AStar:
		return disciplineCostHeuristic
	default:
		return disciplineFIFO
	}
}

// ordered reports whether the discipline uses priorities at all.
func (d discipline) ordered() bool {
	return d == disciplineCost || d == disciplineCostHeuristic
}

// frontierItem pairs a node with its priority and insertion sequence.
type frontierItem struct {
	n        *node
	priority float64
	seq      uint64
}

// frontier is the single frontier implementation, backed by a plain slice
// for FIFO/LIFO and a binary heap for the priority disciplines.
type frontier struct {
	kind discipline
	list []*frontierItem
	pq   itemPQ
	seq  uint64
}

func newFrontier(kind discipline) *frontier {
	return &frontier{kind: kind}
}

// push inserts n; priority is ignored by the unordered disciplines.
func (f *frontier) push(n *node, priority float64) {
	item := &frontierItem{n: n, priority: priority, seq: f.seq}
	f.seq++
	if f.kind.ordered() {
		heap.Push(&f.pq, item)
		return
	}
	f.list = append(f.list, item)
}

// pop removes the next node per discipline; callers check empty() first.
func (f *frontier) pop() *node {
	if f.kind.ordered() {
		return heap.Pop(&f.pq).(*frontierItem).n
	}
	if f.kind == disciplineLIFO {
		last := len(f.list) - 1
		item := f.list[last]
		f.list = f.list[:last]

		return item.n
	}
	item := f.list[0]
	f.list = f.list[1:]

	return item.n
}

func (f *frontier) len() int {
	if f.kind.ordered() {
		return f.pq.Len()
	}

	return len(f.list)
}

func (f *frontier) empty() bool { return f.len() == 0 }

// itemPQ is a min-heap over (priority, seq).
type itemPQ []*frontierItem

func (pq itemPQ) Len() int { return len(pq) }

// Less orders by priority, then by insertion sequence for stable ties.
func (pq itemPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
