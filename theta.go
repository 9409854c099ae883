package main

// relaxAnyAngle is the Theta* relaxation. When the parent of n can see the neighbour
// directly, the neighbour is attached to that parent with the straight-line cost
// (path 2); otherwise it falls back to the grid edge through n (path 1).
// Path 2 is never longer than path 1, so path 1 is skipped when line of sight holds.
func (r *runner) relaxAnyAngle(n, nb int32) {
	p := r.pool.at(n).parent
	if p != noParent {
		pc, nc := r.grid.cellAt(int(p)), r.grid.cellAt(int(nb))
		if r.grid.LineOfSight(pc, nc, r.opts.Corners) {
			r.update(nb, p, r.pool.at(p).g+r.cost.step(pc, nc))
			return
		}
	}
	r.relaxGrid(n, nb)
}
