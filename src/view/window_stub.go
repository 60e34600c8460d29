//go:build !ebiten

package view

import (
	"github.com/pkg/errors"

	"conway/src/universe"
)

//ErrNoWindow is returned by the window frontend in the builds without the ebiten tag
var ErrNoWindow = errors.New("the window frontend requires building with the 'ebiten' tag")

//Window is a placeholder for the ebiten frontend
type Window struct{}

func NewWindow(*universe.Controller, int) *Window {
	return &Window{}
}

//Start always reports that the build tag is missing
func (w *Window) Start() error {
	return ErrNoWindow
}
