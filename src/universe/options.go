package universe

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

//LoadOptions reads the options from the JSON file
//fields missing in the file keep the values of DefaultOptions
func LoadOptions(filename string) (Options, error) {
	o := DefaultOptions

	data, err := os.ReadFile(filename)
	if err != nil {
		return o, errors.Wrapf(err, "[LoadOptions] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &o); err != nil {
		return o, errors.Wrapf(err, "[LoadOptions] failed to unmarshal data from file: %+v", filename)
	}

	return o, nil
}

//Validate normalizes the options
//it fails only when the tick rate bounds contradict each other
func (o *Options) Validate() error {
	o.Rows = max(o.Rows, 1)
	o.Cols = max(o.Cols, 1)
	if o.MinTickRate < 1 {
		o.MinTickRate = 1
	}
	if o.MaxTickRate == 0 {
		o.MaxTickRate = max(DefMaxTickRate, o.MinTickRate)
	}
	if o.MaxTickRate < o.MinTickRate {
		return errors.Errorf("[Validate] max tick rate %d is below min tick rate %d", o.MaxTickRate, o.MinTickRate)
	}
	o.TickRate = min(max(o.TickRate, o.MinTickRate), o.MaxTickRate)
	o.SpeedStep = max(o.SpeedStep, 1)
	o.Density = min(max(o.Density, 0), 1)
	o.MaxSteps = max(o.MaxSteps, 0)
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return nil
}
