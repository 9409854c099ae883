package main

// Strategy selects how a neighbour is relaxed; the expansion loop is shared
type Strategy int

const (
	// StrategyAStar relaxes neighbours only through the expanded node
	StrategyAStar Strategy = iota
	// StrategyThetaStar also tries the expanded node's parent when it has line of sight
	StrategyThetaStar
)

func (s Strategy) String() string {
	if s == StrategyThetaStar {
		return "theta*"
	}
	return "a*"
}

// offsets8 lists N, NE, E, SE, S, SW, W, NW as (dRow, dCol)
var offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}

// offsets4 lists N, E, S, W
var offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// runner holds the mutable state for a single search
type runner struct {
	grid    *OccupancyGrid
	opts    Options
	cost    costModel
	pool    *nodePool
	open    *frontier
	offsets [][2]int
	start   Cell
	goal    Cell
	relax   func(n, nb int32)

	expanded int
}

func newRunner(grid *OccupancyGrid, opts Options, strategy Strategy, start, goal Cell) *runner {
	pool := newNodePool(grid.Height * grid.Width)
	r := &runner{
		grid: grid,
		opts: opts,
		cost: costModel{
			metric:     opts.Metric,
			weight:     opts.HeuristicWeight,
			resolution: grid.Resolution,
		},
		pool:    pool,
		open:    newFrontier(pool, opts.TieBreak),
		offsets: offsets4,
		start:   start,
		goal:    goal,
	}
	if opts.Diagonal {
		r.offsets = offsets8
	}
	r.relax = r.relaxGrid
	if strategy == StrategyThetaStar {
		r.relax = r.relaxAnyAngle
	}
	return r
}

// init opens the start node with cost zero
func (r *runner) init() {
	s := int32(r.grid.index(r.start))
	r.update(s, noParent, 0)
}

// process expands nodes in f order until the goal is closed or the frontier is empty
func (r *runner) process() bool {
	goal := int32(r.grid.index(r.goal))
	for r.open.Len() > 0 {
		n := r.open.popMin()
		node := r.pool.at(n)
		node.state = stateClosed
		r.expanded++

		if n == goal {
			return true
		}

		cur := r.grid.cellAt(int(n))
		for _, d := range r.offsets {
			if !r.grid.canStep(cur, d[0], d[1], r.opts.Corners) {
				continue
			}
			nb := int32(r.grid.index(Cell{Row: cur.Row + d[0], Col: cur.Col + d[1]}))
			if r.pool.at(nb).state == stateClosed {
				continue
			}
			r.relax(n, nb)
		}
	}
	return false
}

// update records g through parent for idx if it improves the best known cost
func (r *runner) update(idx, parent int32, g float64) {
	node := r.pool.at(idx)
	switch node.state {
	case stateUnvisited:
		node.h = r.cost.heuristic(r.grid.cellAt(int(idx)), r.goal)
		node.g = g
		node.f = g + node.h
		node.parent = parent
		node.state = stateOpen
		r.open.insert(idx)
	case stateOpen:
		if g >= node.g {
			return
		}
		node.g = g
		node.f = g + node.h
		node.parent = parent
		r.open.decrease(idx)
	}
}

// path walks parent links from the goal back to the start
func (r *runner) path() []Cell {
	var cells []Cell
	for idx := int32(r.grid.index(r.goal)); idx != noParent; idx = r.pool.at(idx).parent {
		cells = append(cells, r.grid.cellAt(int(idx)))
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

// goalCost returns the cost-so-far recorded on the goal node
func (r *runner) goalCost() float64 {
	return r.pool.at(int32(r.grid.index(r.goal))).g
}
