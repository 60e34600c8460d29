package universe

//neighborOffsets are the [dr, dc] offsets of the Moore neighborhood
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

//CountLiveNeighbors returns the count of alive cells around r, c
//every offset coordinate wraps around the grid edges independently
func CountLiveNeighbors(g *Grid, r int, c int) int {
	n := 0
	for _, o := range neighborOffsets {
		nr := (r + o[0] + g.rows) % g.rows
		nc := (c + o[1] + g.cols) % g.cols
		if g.cells[nr][nc] == Alive {
			n++
		}
	}
	return n
}

//NextState applies the B3/S23 rule
func NextState(s CellState, liveNeighbors int) CellState {
	if s == Alive {
		if liveNeighbors == 2 || liveNeighbors == 3 {
			return Alive
		}
		return Dead
	}
	if liveNeighbors == 3 {
		return Alive
	}
	return Dead
}
