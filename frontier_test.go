package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openNode(pool *nodePool, fr *frontier, idx int32, g, h float64) {
	n := pool.at(idx)
	n.g, n.h, n.f = g, h, g+h
	n.state = stateOpen
	fr.insert(idx)
}

func drain(fr *frontier) []int32 {
	var out []int32
	for fr.Len() > 0 {
		out = append(out, fr.popMin())
	}
	return out
}

func TestFrontier_PopsInFOrder(t *testing.T) {
	pool := newNodePool(6)
	fr := newFrontier(pool, TieBreakGMin)

	openNode(pool, fr, 0, 5, 5)
	openNode(pool, fr, 1, 1, 2)
	openNode(pool, fr, 2, 4, 4)
	openNode(pool, fr, 3, 0, 7)
	openNode(pool, fr, 4, 2, 0)

	assert.Equal(t, []int32{4, 1, 3, 2, 0}, drain(fr))
	for i := int32(0); i < 5; i++ {
		assert.Equal(t, int32(-1), pool.at(i).heapIndex)
	}
}

func TestFrontier_DecreaseKey(t *testing.T) {
	pool := newNodePool(4)
	fr := newFrontier(pool, TieBreakGMin)

	openNode(pool, fr, 0, 1, 1)
	openNode(pool, fr, 1, 3, 3)
	openNode(pool, fr, 2, 2, 2)

	n := pool.at(1)
	n.g = 0
	n.f = n.g + n.h
	fr.decrease(1)

	assert.Equal(t, []int32{0, 1, 2}, drain(fr))
}

func TestFrontier_HeapIndexTracksPosition(t *testing.T) {
	pool := newNodePool(16)
	fr := newFrontier(pool, TieBreakGMin)
	for i := int32(0); i < 16; i++ {
		openNode(pool, fr, i, float64(16-i), 0)
	}
	for pos, idx := range fr.items {
		require.Equal(t, int32(pos), pool.at(idx).heapIndex)
	}
}

func TestFrontier_TieBreak(t *testing.T) {
	build := func(tb TieBreak) *frontier {
		pool := newNodePool(3)
		fr := newFrontier(pool, tb)
		openNode(pool, fr, 0, 2, 3)
		openNode(pool, fr, 1, 4, 1)
		openNode(pool, fr, 2, 3, 2)
		return fr
	}
	assert.Equal(t, []int32{0, 2, 1}, drain(build(TieBreakGMin)))
	assert.Equal(t, []int32{1, 2, 0}, drain(build(TieBreakGMax)))
}
