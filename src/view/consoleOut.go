package view

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"conway/src/universe"
	"github.com/logrusorgru/aurora"
)

//ConsoleOut is the headless frontend
//runs the simulation and prints the progress
type ConsoleOut struct {
	c         *universe.Controller
	w         io.Writer
	every     int
	startTime time.Time
}

//NewConsoleOut creates ConsoleOut printing the progress every n generations
func NewConsoleOut(c *universe.Controller, w io.Writer, every int) *ConsoleOut {
	return &ConsoleOut{c: c, w: w, every: max(every, 1)}
}

//Start prints the configuration and switches the controller to running
func (o *ConsoleOut) Start() {
	opts := o.c.Options()
	_, _ = fmt.Fprintln(o.w, "Running configuration:")
	o.printHashData(map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", opts.Cols, opts.Rows),
		"Tick rate":      o.c.TickRate(),
		"Max iterations": opts.MaxSteps,
		"Density":        opts.Density,
		"Seed":           opts.Seed,
		"Live cells":     o.c.Status().LiveCells,
	})
	o.startTime = time.Now()
	_, _ = fmt.Fprintln(o.w, "\nSimulation started...")
	if !o.c.Running() {
		o.c.ToggleRun()
	}
}

//Tick does one loop iteration
//returns universe.ErrFinished when the max steps limit is reached or the universe is stable
func (o *ConsoleOut) Tick(_ context.Context) (time.Duration, error) {
	o.c.Tick()
	st := o.c.Status()
	maxSteps := o.c.Options().MaxSteps
	if (maxSteps != 0 && st.Generation >= maxSteps) || st.LiveCells == 0 || !st.Changed {
		o.finish(st)
		return 0, universe.ErrFinished
	}
	if st.Generation%o.every == 0 {
		_, _ = fmt.Fprintf(o.w, "  Iterations done: %v, live cells: %v\n", st.Generation, st.LiveCells)
	}
	return o.c.Interval(), nil
}

func (o *ConsoleOut) finish(st universe.Status) {
	reason := "max steps reached"
	if st.LiveCells == 0 {
		reason = "extinct"
	} else if !st.Changed {
		reason = "stable"
	}
	_, _ = fmt.Fprintln(o.w, "\n"+aurora.Red("Finished:").String())
	o.printHashData(map[string]interface{}{
		"Last iteration": st.Generation,
		"Total time":     time.Since(o.startTime).Round(time.Millisecond),
		"Live cells":     st.LiveCells,
		"Reason":         reason,
	})
}

func (o *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(o.w, "  %s: %v\n", propName, d[propName])
	}
}
