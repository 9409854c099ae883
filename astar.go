package main

// relaxGrid is the A* relaxation: the neighbour is reached through n along a grid edge
func (r *runner) relaxGrid(n, nb int32) {
	g := r.pool.at(n).g + r.cost.step(r.grid.cellAt(int(n)), r.grid.cellAt(int(nb)))
	r.update(nb, n, g)
}
