package main

import "container/heap"

// TieBreak selects which node wins among equal f-values
type TieBreak int

const (
	// TieBreakGMin prefers the node with the lower cost-so-far
	TieBreakGMin TieBreak = iota
	// TieBreakGMax prefers the node with the higher cost-so-far
	TieBreakGMax
)

// frontier is the open set: a binary heap of node indices ordered by f.
// Each open node records its heap position so decrease-key is a heap.Fix.
type frontier struct {
	items    []int32
	pool     *nodePool
	tieBreak TieBreak
}

func newFrontier(pool *nodePool, tieBreak TieBreak) *frontier {
	return &frontier{pool: pool, tieBreak: tieBreak}
}

func (fr *frontier) Len() int { return len(fr.items) }

func (fr *frontier) Less(i, j int) bool {
	a, b := fr.pool.at(fr.items[i]), fr.pool.at(fr.items[j])
	if a.f != b.f {
		return a.f < b.f
	}
	if fr.tieBreak == TieBreakGMax {
		return a.g > b.g
	}
	return a.g < b.g
}

func (fr *frontier) Swap(i, j int) {
	fr.items[i], fr.items[j] = fr.items[j], fr.items[i]
	fr.pool.at(fr.items[i]).heapIndex = int32(i)
	fr.pool.at(fr.items[j]).heapIndex = int32(j)
}

func (fr *frontier) Push(x interface{}) {
	idx := x.(int32)
	fr.pool.at(idx).heapIndex = int32(len(fr.items))
	fr.items = append(fr.items, idx)
}

func (fr *frontier) Pop() interface{} {
	old := fr.items
	n := len(old)
	idx := old[n-1]
	fr.items = old[:n-1]
	fr.pool.at(idx).heapIndex = -1
	return idx
}

// insert adds an open node
func (fr *frontier) insert(idx int32) {
	heap.Push(fr, idx)
}

// popMin removes and returns the node with the smallest f
func (fr *frontier) popMin() int32 {
	return heap.Pop(fr).(int32)
}

// decrease restores heap order after a node's f was lowered
func (fr *frontier) decrease(idx int32) {
	heap.Fix(fr, int(fr.pool.at(idx).heapIndex))
}
