package universe

/*
	Stepper with two buffers
	All cells state is calculated to the scratch buffer reading the current one only,
	then the buffers are swapped and the old current buffer becomes the scratch for the next step
*/
type Stepper struct {
	current *Grid
	scratch *Grid
}

//StepResult describes the outcome of one step
type StepResult struct {
	LiveCells int
	Changed   bool
}

func NewStepper(rows int, cols int) *Stepper {
	return &Stepper{current: NewGrid(rows, cols), scratch: NewGrid(rows, cols)}
}

//Current returns the grid holding the current generation
func (s *Stepper) Current() *Grid {
	return s.current
}

//Step advances the current generation by one
func (s *Stepper) Step() StepResult {
	res := Step(s.current, s.scratch)
	s.current, s.scratch = s.scratch, s.current
	return res
}

//Step calculates the next generation of current into scratch
//current is only read, so the sweep order doesn't matter
func Step(current *Grid, scratch *Grid) (res StepResult) {
	for r := range current.cells {
		for c, s := range current.cells[r] {
			next := NextState(s, CountLiveNeighbors(current, r, c))
			if next == Alive {
				res.LiveCells++
			}
			res.Changed = res.Changed || next != s
			scratch.cells[r][c] = next
		}
	}
	return
}
