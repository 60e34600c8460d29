package universe

import "testing"

func TestNextState(t *testing.T) {
	cases := []struct {
		state     CellState
		neighbors int
		expected  CellState
	}{
		{Alive, 0, Dead},
		{Alive, 1, Dead},
		{Alive, 2, Alive},
		{Alive, 3, Alive},
		{Alive, 4, Dead},
		{Alive, 8, Dead},
		{Dead, 0, Dead},
		{Dead, 2, Dead},
		{Dead, 3, Alive},
		{Dead, 4, Dead},
		{Dead, 8, Dead},
	}
	for _, tc := range cases {
		if got := NextState(tc.state, tc.neighbors); got != tc.expected {
			t.Errorf("NextState(%v, %v) = %v, expected %v", tc.state, tc.neighbors, got, tc.expected)
		}
	}
}

func TestCountLiveNeighbors_CornerWrapsAround(t *testing.T) {
	const rows, cols = 5, 6
	g := NewGrid(rows, cols)
	neighbors := [][2]int{
		{rows - 1, cols - 1}, {rows - 1, 0}, {rows - 1, 1},
		{0, cols - 1}, {0, 1},
		{1, cols - 1}, {1, 0}, {1, 1},
	}
	for i, n := range neighbors {
		g.Set(n[0], n[1], Alive)
		if got := CountLiveNeighbors(g, 0, 0); got != i+1 {
			t.Fatalf("after setting %v: count %v, expected %v", n, got, i+1)
		}
	}
	//the cell itself is not a neighbor
	g.Set(0, 0, Alive)
	if got := CountLiveNeighbors(g, 0, 0); got != 8 {
		t.Fatalf("count %v, expected 8", got)
	}
}

func TestCountLiveNeighbors_Edges(t *testing.T) {
	g := gridFrom(
		"#...#",
		".....",
		".....",
		"#...#",
	)
	cases := []struct{ r, c, expected int }{
		{0, 0, 3},
		{3, 4, 3},
		{0, 2, 0},
		{1, 0, 2},
		{2, 4, 2},
		{3, 2, 0},
		{2, 2, 0},
	}
	for _, tc := range cases {
		if got := CountLiveNeighbors(g, tc.r, tc.c); got != tc.expected {
			t.Errorf("count at (%v,%v) = %v, expected %v", tc.r, tc.c, got, tc.expected)
		}
	}
}

func TestCountLiveNeighbors_Interior(t *testing.T) {
	g := gridFrom(
		".....",
		".###.",
		".#.#.",
		".###.",
		".....",
	)
	if got := CountLiveNeighbors(g, 2, 2); got != 8 {
		t.Fatalf("count %v, expected 8", got)
	}
	if got := CountLiveNeighbors(g, 0, 0); got != 1 {
		t.Fatalf("count %v, expected 1", got)
	}
}
