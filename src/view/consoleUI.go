package view

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"conway/src/universe"
	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const (
	viewHeader        = "header"
	viewConfiguration = "configuration"
	viewStatus        = "status"
	viewField         = "field"
	viewHelp          = "help"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the terminal frontend
//every controller call is done on the gocui main loop goroutine
type ConsoleUI struct {
	c *universe.Controller
	g *gocui.Gui
	k []keyBindings

	liveFiller string
	deadFiller string
}

var (
	runningStateDescr = map[bool]string{
		false: aurora.Colorize("paused", aurora.BlueFg).String(),
		true:  aurora.Colorize("running", aurora.CyanFg).String(),
	}
)

func NewConsoleUI(c *universe.Controller) (*ConsoleUI, error) {

	var err error
	t := ConsoleUI{
		c:          c,
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewConsoleUI] failed to create gui")
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{gocui.KeyEnter, cmdToggleRun.name, cmdToggleRun.descr, t.cmd(cmdToggleRun), ""},
		{'r', cmdRandomize.name, cmdRandomize.descr, t.cmd(cmdRandomize), ""},
		{'c', cmdClear.name, cmdClear.descr, t.cmd(cmdClear), ""},
		{'f', cmdFaster.name, cmdFaster.descr, t.cmd(cmdFaster), ""},
		{'s', cmdSlower.name, cmdSlower.descr, t.cmd(cmdSlower), ""},
		{'n', cmdStepOnce.name, cmdStepOnce.descr, t.cmd(cmdStepOnce), ""},
		{gocui.MouseLeft, "MOUSE", "Toggle the cell", t.cmdMouseClick, viewField},
	}
	t.g.SetManagerFunc(t.layout)

	if err = t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, err
	}

	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return errors.Wrapf(err, "[initKeyBindings] failed to bind %v", kb.name)
		}
	}
	return nil
}

//Start runs the gocui main loop until the user quits
func (t *ConsoleUI) Start() error {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "[Start] main loop failed")
	}
	return nil
}

//Tick posts one loop iteration to the main loop goroutine and waits for it
//returns the delay before the next iteration
func (t *ConsoleUI) Tick(ctx context.Context) (time.Duration, error) {
	next := make(chan time.Duration, 1)
	//the views are redrawn by layout right after the update
	t.g.Update(func(g *gocui.Gui) error {
		t.c.Tick()
		next <- t.c.Interval()
		return nil
	})
	select {
	case d := <-next:
		return d, nil
	case <-ctx.Done():
		return 0, universe.ErrFinished
	}
}

func (t *ConsoleUI) render(g *gocui.Gui) {
	t.renderHeader(g)
	t.renderField(g, t.c.Grid())
	t.renderConfiguration(g)
	t.renderStatus(g)
}

func (t *ConsoleUI) renderHeader(g *gocui.Gui) {
	if v, e := g.View(viewHeader); e == nil {
		maxX, _ := g.Size()
		text := Title(t.c.Running(), t.c.TickRate())
		v.Clear()
		_, _ = fmt.Fprintln(v, "\n"+strings.Repeat(" ", max(maxX-len(text), 0)/2)+text)
	}
}

func (t *ConsoleUI) renderField(g *gocui.Gui, a universe.View) {
	v, e := g.View(viewField)
	if e != nil {
		return
	}
	//the entire field is redrawing at once
	v.Clear()
	maxW, maxH := v.Size()
	_, _ = fmt.Fprint(v, t.fieldString(a, maxW, maxH))
}

//fieldString draws the cells which fit into maxW x maxH chars, one char per cell
func (t *ConsoleUI) fieldString(a universe.View, maxW int, maxH int) string {
	crop := a.Cols() > maxW || a.Rows() > maxH

	var b bytes.Buffer
	for r := 0; r < a.Rows() && r < maxH; r++ {
		//line feed char
		if r != 0 {
			b.WriteByte(10)
		}
		if crop && r == (maxH-1) {
			b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		for c := 0; c < a.Cols() && c < maxW; c++ {
			if a.Get(r, c) == universe.Alive {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	return b.String()
}

func (t *ConsoleUI) renderStatus(g *gocui.Gui) {
	s := t.c.Status()
	if v, e := g.View(viewStatus); e == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, renderProp("Generation", "%v", s.Generation))
		_, _ = fmt.Fprintln(v, renderProp("Live Cells", "%v", s.LiveCells))
		_, _ = fmt.Fprintln(v, renderProp("Step time", "%v", s.IterationTime.Round(time.Microsecond)))
		_, _ = fmt.Fprintln(v, renderProp("Mode", "%v", runningStateDescr[s.Running]))
		_, _ = fmt.Fprintln(v, renderProp("Tick rate", "%v/s", s.TickRate))
	}
}

func (t *ConsoleUI) renderConfiguration(g *gocui.Gui) {
	o := t.c.Options()
	if v, e := g.View(viewConfiguration); e == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, renderProp("Dimension", "%v x %v", o.Cols, o.Rows))
		_, _ = fmt.Fprintln(v, renderProp("Tick rate", "%v..%v", o.MinTickRate, o.MaxTickRate))
		_, _ = fmt.Fprintln(v, renderProp("Density", "%.2f", o.Density))
		_, _ = fmt.Fprintln(v, renderProp("Seed", "%v", o.Seed))
	}
}

func renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if _, err := t.headerLayout(g); err != nil {
		return err
	}

	if maxY < minWindowHeight {
		_ = g.DeleteView(viewConfiguration)
		_ = g.DeleteView(viewStatus)
		_ = g.DeleteView(viewField)
		_ = g.DeleteView(viewHelp)
		if v, e := g.View(viewHeader); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, aurora.Red("Terminal height too small").String())
		}
		return nil
	}

	if v, err := g.SetView(viewConfiguration, 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
	}

	if v, err := g.SetView(viewStatus, 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView(viewField, leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Field"
		v.Frame = true
	}

	if v, err := g.SetView(viewHelp, -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, t.helpLine())
	}

	t.render(g)
	return nil
}

func (t *ConsoleUI) helpLine() string {
	b := bytes.Buffer{}
	b.WriteString("KEYBINDINGS: ")
	for i, k := range t.k {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView(viewHeader, -1, -1, maxX+1, 3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return v, err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	return v, nil
}

//cmd wraps the controller command into the key handler
func (t *ConsoleUI) cmd(c command) func(_ *gocui.View) error {
	return func(_ *gocui.View) error {
		c.run(t.c)
		return nil
	}
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	//clicks outside the drawn field are ignored
	if a := t.c.Grid(); cx >= a.Cols() || cy >= a.Rows() {
		return nil
	}
	t.c.ToggleCell(cy, cx)
	return nil
}
