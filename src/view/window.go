//go:build ebiten

package view

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"conway/src/universe"
)

//windowKeys maps the keys to the commands, the same as the console frontend
var windowKeys = []struct {
	key ebiten.Key
	cmd command
}{
	{ebiten.KeyEnter, cmdToggleRun},
	{ebiten.KeyR, cmdRandomize},
	{ebiten.KeyC, cmdClear},
	{ebiten.KeyF, cmdFaster},
	{ebiten.KeyS, cmdSlower},
	{ebiten.KeyN, cmdStepOnce},
}

//Window adapts the controller to the ebiten.Game interface
//ebiten calls Update and Draw on one goroutine at the controller's tick rate
type Window struct {
	c        *universe.Controller
	cellSize int
	img      *ebiten.Image
	buf      []byte
}

//NewWindow creates the window frontend drawing every cell as cellSize x cellSize pixels
func NewWindow(c *universe.Controller, cellSize int) *Window {
	a := c.Grid()
	return &Window{
		c:        c,
		cellSize: max(cellSize, 1),
		img:      ebiten.NewImage(a.Cols(), a.Rows()),
		buf:      make([]byte, 4*a.Cols()*a.Rows()),
	}
}

//Start opens the window and blocks until it's closed
func (w *Window) Start() error {
	a := w.c.Grid()
	ebiten.SetWindowSize(a.Cols()*w.cellSize, a.Rows()*w.cellSize)
	ebiten.SetWindowTitle(Title(w.c.Running(), w.c.TickRate()))
	ebiten.SetTPS(w.c.TickRate())
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[Start] window failed")
	}
	return nil
}

//Update handles the input, then advances the simulation
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, k := range windowKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			k.cmd.run(w.c)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.c.ToggleCell(y/w.cellSize, x/w.cellSize)
	}

	w.c.Tick()

	//the new rate is applied starting from the next tick
	ebiten.SetTPS(w.c.TickRate())
	ebiten.SetWindowTitle(Title(w.c.Running(), w.c.TickRate()))
	return nil
}

//Draw renders the current generation
func (w *Window) Draw(screen *ebiten.Image) {
	fillCellsRGBA(w.buf, w.c.Grid(), colorAlive, colorDead)
	w.img.WritePixels(w.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.cellSize), float64(w.cellSize))
	screen.DrawImage(w.img, op)
}

//Layout returns the logical screen size
func (w *Window) Layout(_, _ int) (int, int) {
	a := w.c.Grid()
	return a.Cols() * w.cellSize, a.Rows() * w.cellSize
}
