package main

import (
	"context"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"conway/src/universe"
	"conway/src/view"
	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	frontendConsole  = "console"
	frontendHeadless = "headless"
	frontendWindow   = "window"
)

var frontends = map[string]func(eo *EnvOptions, c *universe.Controller) error{
	frontendConsole:  runConsole,
	frontendHeadless: runHeadless,
	frontendWindow:   runWindow,
}

type EnvOptions struct {
	config     string
	frontend   string
	pattern    string
	randomData bool
	cellSize   int
	every      int
}

func main() {
	eo, uo, err := initOptions(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	c := universe.NewController(uo)

	if eo.pattern != "" {
		if !c.SettleTemplate(eo.pattern) {
			log.Fatalf("unknown pattern %q", eo.pattern)
		}
	} else if eo.randomData {
		c.Randomize()
	}

	if err = frontends[eo.frontend](eo, c); err != nil {
		log.Fatal(err)
	}
}

//initOptions parses the command line
//the flags override the values loaded from the config file
func initOptions(args []string) (eo *EnvOptions, uo *universe.Options, err error) {

	//zero values mean the flag is not given
	var fo universe.Options
	eo = &EnvOptions{frontend: frontendConsole, cellSize: 6, every: 10}

	frontendNames := make([]string, 0, len(frontends))
	for k := range frontends {
		frontendNames = append(frontendNames, k)
	}
	sort.Strings(frontendNames)

	p := flaggy.NewParser("life")
	p.Description = "Conway's Game of Life simulation"
	p.ShowHelpOnUnexpected = true
	p.String(&eo.config, "c", "config", "JSON configuration file")
	p.Int(&fo.Cols, "x", "cols", "Width of a simulation field")
	p.Int(&fo.Rows, "y", "rows", "Height of a simulation field")
	p.Int(&fo.TickRate, "t", "tps", "Simulation speed in ticks per second")
	p.Int(&fo.MinTickRate, "", "minTps", "Lowest speed reachable with the slower key")
	p.Int(&fo.MaxTickRate, "", "maxTps", "Highest speed reachable with the faster key")
	p.Float64(&fo.Density, "d", "density", "Probability of an alive cell when settling with random data")
	p.Int64(&fo.Seed, "", "seed", "Random seed")
	p.Int(&fo.MaxSteps, "s", "maxSteps", "Limit the headless simulation to maxSteps")
	p.Bool(&eo.randomData, "r", "random", "Settle with random data")
	p.String(&eo.pattern, "p", "pattern", "Settle with the pattern ["+strings.Join(templateNames(), "|")+"]")
	p.String(&eo.frontend, "f", "frontend", "Frontend to use ["+strings.Join(frontendNames, "|")+"]")
	p.Int(&eo.cellSize, "", "cellSize", "Cell size in pixels for the window frontend")
	p.Int(&eo.every, "", "every", "Print the headless progress every n generations")
	if err = p.ParseArgs(args); err != nil {
		return nil, nil, errors.Wrap(err, "[initOptions] failed to parse arguments")
	}

	if _, ok := frontends[eo.frontend]; !ok {
		p.ShowHelpAndExit("unknown frontend " + eo.frontend)
	}

	o := universe.DefaultOptions
	if eo.config != "" {
		if o, err = universe.LoadOptions(eo.config); err != nil {
			return nil, nil, err
		}
	}
	overrideOptions(&o, fo)

	if err = o.Validate(); err != nil {
		return nil, nil, err
	}
	return eo, &o, nil
}

//overrideOptions copies the non-zero fields of fo to o
//the tick rate ceiling is raised to the min and initial rate flags unless it is given explicitly
func overrideOptions(o *universe.Options, fo universe.Options) {
	set := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}
	set(&o.Rows, fo.Rows)
	set(&o.Cols, fo.Cols)
	set(&o.TickRate, fo.TickRate)
	set(&o.MinTickRate, fo.MinTickRate)
	set(&o.MaxTickRate, fo.MaxTickRate)
	//without --maxTps the ceiling follows the speed flags
	if fo.MaxTickRate == 0 {
		o.MaxTickRate = max(o.MaxTickRate, fo.MinTickRate, fo.TickRate)
	}
	set(&o.SpeedStep, fo.SpeedStep)
	set(&o.MaxSteps, fo.MaxSteps)
	if fo.Density != 0 {
		o.Density = fo.Density
	}
	if fo.Seed != 0 {
		o.Seed = fo.Seed
	}
}

func templateNames() []string {
	names := make([]string, 0, len(universe.Templates))
	for _, t := range universe.Templates {
		names = append(names, t.Name)
	}
	return names
}

//runConsole runs the gocui main loop and the tick loop until the user quits
func runConsole(_ *EnvOptions, c *universe.Controller) error {
	ui, err := view.NewConsoleUI(c)
	if err != nil {
		return err
	}

	first := c.Interval()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return ui.Start()
	})
	eg.Go(func() error {
		return universe.Loop(ctx, first, func() (time.Duration, error) {
			return ui.Tick(ctx)
		})
	})
	return eg.Wait()
}

//runHeadless runs the simulation without UI printing the progress
func runHeadless(eo *EnvOptions, c *universe.Controller) error {
	log.Printf("headless simulation, %v x %v, tick rate %v", c.Options().Cols, c.Options().Rows, c.TickRate())
	out := view.NewConsoleOut(c, os.Stdout, eo.every)
	out.Start()
	ctx := context.Background()
	return universe.Loop(ctx, 0, func() (time.Duration, error) {
		return out.Tick(ctx)
	})
}

func runWindow(eo *EnvOptions, c *universe.Controller) error {
	return view.NewWindow(c, eo.cellSize).Start()
}
