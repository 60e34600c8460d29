package universe

import (
	"math/rand/v2"
	"strings"
	"testing"
)

//gridFrom builds the grid from the rows picture, '#' is an alive cell
func gridFrom(rows ...string) *Grid {
	g := NewGrid(len(rows), len(rows[0]))
	for r, l := range rows {
		for c, ch := range l {
			if ch == '#' {
				g.Set(r, c, Alive)
			}
		}
	}
	return g
}

func gridString(g View) string {
	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.Get(r, c) == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestNewGrid_Dimensions(t *testing.T) {
	g := NewGrid(3, 7)
	if g.Rows() != 3 || g.Cols() != 7 {
		t.Fatalf("got %vx%v, expected 3x7", g.Rows(), g.Cols())
	}
	if g.LiveCells() != 0 {
		t.Fatalf("new grid has %v live cells", g.LiveCells())
	}

	g = NewGrid(0, -1)
	if g.Rows() != 1 || g.Cols() != 1 {
		t.Fatalf("got %vx%v, expected 1x1", g.Rows(), g.Cols())
	}
}

func TestGrid_SetGet(t *testing.T) {
	g := NewGrid(4, 5)
	g.Set(3, 4, Alive)
	g.Set(0, 0, Alive)
	g.Set(0, 0, Dead)
	if g.Get(3, 4) != Alive {
		t.Fatal("cell (3,4) is expected to be alive")
	}
	if g.Get(0, 0) != Dead {
		t.Fatal("cell (0,0) is expected to be dead")
	}
	if g.LiveCells() != 1 {
		t.Fatalf("live cells: %v, expected 1", g.LiveCells())
	}
}

func TestGrid_Wrap(t *testing.T) {
	g := NewGrid(4, 5)
	cases := []struct{ r, c, er, ec int }{
		{0, 0, 0, 0},
		{-1, -1, 3, 4},
		{4, 5, 0, 0},
		{9, -6, 1, 4},
	}
	for _, tc := range cases {
		r, c := g.Wrap(tc.r, tc.c)
		if r != tc.er || c != tc.ec {
			t.Errorf("Wrap(%v,%v) = (%v,%v), expected (%v,%v)", tc.r, tc.c, r, c, tc.er, tc.ec)
		}
	}
}

func TestGrid_RandomizeAndClear(t *testing.T) {
	g := NewGrid(10, 10)
	rng := rand.New(rand.NewPCG(1, 0))

	g.Randomize(1, rng)
	if g.LiveCells() != 100 {
		t.Fatalf("p=1: live cells %v, expected 100", g.LiveCells())
	}
	g.Randomize(0, rng)
	if g.LiveCells() != 0 {
		t.Fatalf("p=0: live cells %v, expected 0", g.LiveCells())
	}

	g = NewGrid(100, 100)
	g.Randomize(DefDensity, rng)
	if n := g.LiveCells(); n < 2800 || n > 3900 {
		t.Fatalf("p=1/3: live cells %v out of the expected range", n)
	}

	g.Clear()
	if g.LiveCells() != 0 {
		t.Fatalf("live cells after clear: %v", g.LiveCells())
	}
}

func TestGrid_RandomizeIsDeterministicForSeed(t *testing.T) {
	a, b := NewGrid(16, 16), NewGrid(16, 16)
	a.Randomize(0.5, rand.New(rand.NewPCG(42, 0)))
	b.Randomize(0.5, rand.New(rand.NewPCG(42, 0)))
	if !a.Equal(b) {
		t.Fatal("grids randomized with the same seed differ")
	}
}

func TestGrid_CopyFromEqual(t *testing.T) {
	a := gridFrom(
		"#..",
		".#.",
	)
	b := NewGrid(2, 3)
	if a.Equal(b) {
		t.Fatal("grids are not expected to be equal")
	}
	b.CopyFrom(a)
	if !a.Equal(b) {
		t.Fatalf("copy differs:\n%v\n%v", gridString(a), gridString(b))
	}
	if a.Equal(NewGrid(3, 2)) {
		t.Fatal("grids with different dimensions are equal")
	}
}
