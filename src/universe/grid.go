package universe

import "math/rand/v2"

//CellState is the state of a single cell
type CellState uint8

const (
	Dead  CellState = 0
	Alive CellState = 1
)

//Grid holds the cell states of one generation
//the dimensions are fixed at construction time
type Grid struct {
	rows  int
	cols  int
	cells [][]CellState
}

//NewGrid allocates a rows x cols grid with all cells dead
//dimensions below 1 are raised to 1
func NewGrid(rows int, cols int) *Grid {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	g := Grid{rows: rows, cols: cols, cells: make([][]CellState, rows)}
	//one backing buffer for all rows
	b := make([]CellState, rows*cols)
	for r := range g.cells {
		start := cols * r
		g.cells[r] = b[start : start+cols : start+cols]
	}
	return &g
}

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Cols() int { return g.cols }

//Get returns the state at r, c
//the coordinates must be already normalized by the caller
func (g *Grid) Get(r int, c int) CellState {
	return g.cells[r][c]
}

//Set overwrites the state at r, c
func (g *Grid) Set(r int, c int, s CellState) {
	g.cells[r][c] = s
}

//Wrap normalizes the coordinates to the toroidal grid
func (g *Grid) Wrap(r int, c int) (int, int) {
	r = (r%g.rows + g.rows) % g.rows
	c = (c%g.cols + g.cols) % g.cols
	return r, c
}

//Randomize sets every cell alive with probability p
func (g *Grid) Randomize(p float64, rng *rand.Rand) {
	for r := range g.cells {
		for c := range g.cells[r] {
			if rng.Float64() < p {
				g.cells[r][c] = Alive
			} else {
				g.cells[r][c] = Dead
			}
		}
	}
}

//Clear kills all cells
func (g *Grid) Clear() {
	for r := range g.cells {
		clear(g.cells[r])
	}
}

//LiveCells returns the count of alive cells
func (g *Grid) LiveCells() int {
	n := 0
	for r := range g.cells {
		for _, s := range g.cells[r] {
			n += int(s)
		}
	}
	return n
}

//CopyFrom copies the states of src, both grids must have the same dimensions
func (g *Grid) CopyFrom(src *Grid) {
	for r := range g.cells {
		copy(g.cells[r], src.cells[r])
	}
}

//Equal reports whether both grids have the same dimensions and states
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}
	return true
}

//View is the read-only access to a grid used by the renderers
type View interface {
	Rows() int
	Cols() int
	Get(r int, c int) CellState
}
