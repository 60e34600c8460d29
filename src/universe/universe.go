package universe

import "time"

//Options represents the Universe's configurable options
type Options struct {
	Rows        int     `json:"rows"`
	Cols        int     `json:"cols"`
	TickRate    int     `json:"tick_rate"`     //ticks per second
	MinTickRate int     `json:"min_tick_rate"` //speed down floor
	MaxTickRate int     `json:"max_tick_rate"` //speed up ceiling
	SpeedStep   int     `json:"speed_step"`
	Density     float64 `json:"density"` //probability of an alive cell on randomize
	Seed        int64   `json:"seed"`    //0 means time based seed
	MaxSteps    int     `json:"max_steps"`
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	Generation    int
	Running       bool
	TickRate      int
	LiveCells     int
	Changed       bool //the last step changed at least one cell
	IterationTime time.Duration
}

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [col,row] coordinates
}

//default options
const (
	DefRows        = 40
	DefCols        = 80
	DefTickRate    = 12
	DefMinTickRate = 5
	DefMaxTickRate = 60
	DefSpeedStep   = 2
	DefDensity     = 1.0 / 3
)

//DefaultOptions always pass Validate
var DefaultOptions = Options{
	Rows:        DefRows,
	Cols:        DefCols,
	TickRate:    DefTickRate,
	MinTickRate: DefMinTickRate,
	MaxTickRate: DefMaxTickRate,
	SpeedStep:   DefSpeedStep,
	Density:     DefDensity,
}

//Templates are the built-in seeding templates
var Templates = []Template{
	{"blinker", "period 2 oscillator", [][]int{{0, 0}, {1, 0}, {2, 0}}},
	{"glider", "moves by one cell diagonally every 4 steps", [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
	{"block", "still life", [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	{"beacon", "period 2 oscillator", [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 2}, {3, 2}, {2, 3}, {3, 3}}},
	{"still-life-sample", "the test sample with 3 stable patterns", [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}}},
}

//size returns the template bounding box
func (t Template) size() (cols int, rows int) {
	for _, v := range t.Coordinates {
		cols = max(cols, v[0]+1)
		rows = max(rows, v[1]+1)
	}
	return
}
