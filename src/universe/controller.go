package universe

import (
	"math/rand/v2"
	"time"
)

//Controller owns the universe state and implements the run/pause/speed state machine
//it isn't safe for concurrent use, all calls must come from one goroutine
type Controller struct {
	options   Options
	stepper   *Stepper
	rng       *rand.Rand
	templates map[string]Template

	running       bool
	tickRate      int
	generation    int
	liveCells     int
	changed       bool
	iterationTime time.Duration
}

//NewController creates the paused Controller
//the options are expected to be validated, nil means DefaultOptions
func NewController(o *Options) *Controller {
	if o == nil {
		d, err := defaultValidOptions()
		if err != nil {
			panic(err)
		}
		o = &d
	}
	c := Controller{
		options:   *o,
		stepper:   NewStepper(o.Rows, o.Cols),
		rng:       rand.New(rand.NewPCG(uint64(o.Seed), 0)),
		templates: map[string]Template{},
		tickRate:  o.TickRate,
		changed:   true,
	}
	if c.tickRate < 1 {
		c.tickRate = 1
	}
	for _, t := range Templates {
		c.AddTemplate(t)
	}
	return &c
}

func defaultValidOptions() (Options, error) {
	d := DefaultOptions
	err := d.Validate()
	return d, err
}

//ToggleRun switches between running and paused
func (c *Controller) ToggleRun() {
	c.running = !c.running
}

//Randomize populates the universe with random data, paused only
func (c *Controller) Randomize() {
	if c.running {
		return
	}
	c.stepper.Current().Randomize(c.options.Density, c.rng)
	c.reset()
}

//Clear kills all cells and resets the counters, paused only
func (c *Controller) Clear() {
	if c.running {
		return
	}
	c.stepper.Current().Clear()
	c.reset()
}

//SpeedUp increases the tick rate unless the ceiling would be exceeded
func (c *Controller) SpeedUp() {
	if next := c.tickRate + c.options.SpeedStep; next <= c.options.MaxTickRate {
		c.tickRate = next
	}
}

//SpeedDown decreases the tick rate unless the floor would be crossed
func (c *Controller) SpeedDown() {
	if next := c.tickRate - c.options.SpeedStep; next >= c.options.MinTickRate {
		c.tickRate = next
	}
}

//Tick does one simulation step if the universe is running
func (c *Controller) Tick() {
	if c.running {
		c.step()
	}
}

//StepOnce does one simulation step, paused only
func (c *Controller) StepOnce() {
	if !c.running {
		c.step()
	}
}

//ToggleCell inverses the cell state at r, c, paused only
func (c *Controller) ToggleCell(r int, col int) {
	if c.running {
		return
	}
	g := c.stepper.Current()
	r, col = g.Wrap(r, col)
	if g.Get(r, col) == Alive {
		g.Set(r, col, Dead)
		c.liveCells--
	} else {
		g.Set(r, col, Alive)
		c.liveCells++
	}
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (c *Controller) AddTemplate(t Template) {
	c.templates[t.Name] = t
}

//SettleTemplate places the template in the middle of the universe, paused only
//returns false if the template is unknown or the universe is running
func (c *Controller) SettleTemplate(name string) bool {
	t, ok := c.templates[name]
	if !ok || c.running {
		return false
	}
	g := c.stepper.Current()
	w, h := t.size()
	r0, c0 := (g.Rows()-h)/2, (g.Cols()-w)/2
	for _, v := range t.Coordinates {
		r, col := g.Wrap(r0+v[1], c0+v[0])
		g.Set(r, col, Alive)
	}
	c.reset()
	return true
}

//Running reports whether the universe is running
func (c *Controller) Running() bool { return c.running }

//TickRate returns the target ticks per second
func (c *Controller) TickRate() int { return c.tickRate }

//Interval returns the time between two ticks at the current tick rate
func (c *Controller) Interval() time.Duration {
	return time.Second / time.Duration(c.tickRate)
}

//Grid returns the read-only view of the current generation
func (c *Controller) Grid() View { return c.stepper.Current() }

//Options returns the universe configuration
func (c *Controller) Options() Options { return c.options }

//Status returns current universe status represented by Status struct
func (c *Controller) Status() Status {
	return Status{
		Generation:    c.generation,
		Running:       c.running,
		TickRate:      c.tickRate,
		LiveCells:     c.liveCells,
		Changed:       c.changed,
		IterationTime: c.iterationTime,
	}
}

//step does the new one state calculation for entire universe
func (c *Controller) step() {
	start := time.Now()
	res := c.stepper.Step()
	c.generation++
	c.liveCells = res.LiveCells
	c.changed = res.Changed
	c.iterationTime = time.Since(start)
}

//reset resets the counters after the grid was rewritten
func (c *Controller) reset() {
	c.generation = 0
	c.liveCells = c.stepper.Current().LiveCells()
	c.changed = true
	c.iterationTime = 0
}
