package main

// nodeState moves unvisited -> open -> closed and never back
type nodeState uint8

const (
	stateUnvisited nodeState = iota
	stateOpen
	stateClosed
)

// noParent marks the start node and nodes never reached
const noParent int32 = -1

// searchNode is the per-cell search state, addressed by row-major cell index
type searchNode struct {
	g         float64 // cost from start
	h         float64 // weighted heuristic to goal, computed on first visit
	f         float64 // g + h
	parent    int32   // index of the parent cell or noParent
	heapIndex int32   // position in the frontier while open
	state     nodeState
}

// nodePool holds one searchNode per grid cell for a single plan call
type nodePool struct {
	nodes []searchNode
}

func newNodePool(size int) *nodePool {
	nodes := make([]searchNode, size)
	for i := range nodes {
		nodes[i].parent = noParent
		nodes[i].heapIndex = -1
	}
	return &nodePool{nodes: nodes}
}

func (p *nodePool) at(idx int32) *searchNode {
	return &p.nodes[idx]
}

// counts returns the number of closed and open nodes
func (p *nodePool) counts() (closed, open int) {
	for i := range p.nodes {
		switch p.nodes[i].state {
		case stateClosed:
			closed++
		case stateOpen:
			open++
		}
	}
	return closed, open
}
