package view

import (
	"fmt"

	"conway/src/universe"
)

//command is the controller action bound to a key in every frontend
type command struct {
	name  string //key name shown in the help line
	descr string
	run   func(c *universe.Controller)
}

var (
	cmdToggleRun = command{"ENTER", "Run/Pause", (*universe.Controller).ToggleRun}
	cmdRandomize = command{"R", "Random", (*universe.Controller).Randomize}
	cmdClear     = command{"C", "Clear", (*universe.Controller).Clear}
	cmdFaster    = command{"F", "Faster", (*universe.Controller).SpeedUp}
	cmdSlower    = command{"S", "Slower", (*universe.Controller).SpeedDown}
	cmdStepOnce  = command{"N", "Next step", (*universe.Controller).StepOnce}

	//commands in the help line order
	commands = []command{cmdToggleRun, cmdRandomize, cmdClear, cmdFaster, cmdSlower, cmdStepOnce}
)

//Title returns the human-readable status used as the window title and the console header
func Title(running bool, tickRate int) string {
	if running {
		return fmt.Sprintf("Game of Life is Running at %d", tickRate)
	}
	return "Game of Life is Paused"
}
