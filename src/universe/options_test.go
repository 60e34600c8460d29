package universe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestLoadOptions(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "life.json")
	if err := os.WriteFile(fn, []byte(`{"rows": 12, "cols": 34, "tick_rate": 20, "density": 0.5}`), 0o600); err != nil {
		t.Fatal(err)
	}
	o, err := LoadOptions(fn)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if o.Rows != 12 || o.Cols != 34 || o.TickRate != 20 || o.Density != 0.5 {
		t.Fatalf("unexpected options %+v", o)
	}
	if o.MinTickRate != DefMinTickRate || o.MaxTickRate != DefMaxTickRate || o.SpeedStep != DefSpeedStep {
		t.Fatalf("defaults are not kept %+v", o)
	}
}

func TestLoadOptions_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadOptions(filepath.Join(dir, "missing.json"))
	if err == nil || !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("expected not exist error, got %v", err)
	}

	fn := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(fn, []byte(`{"rows": "many"`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err = LoadOptions(fn); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestOptions_Validate(t *testing.T) {
	o := Options{Rows: -1, TickRate: 100, MinTickRate: 5, SpeedStep: 0, Density: 2}
	if err := o.Validate(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if o.Rows != 1 || o.Cols != 1 {
		t.Fatalf("dimensions %vx%v", o.Rows, o.Cols)
	}
	if o.MaxTickRate != DefMaxTickRate || o.TickRate != DefMaxTickRate {
		t.Fatalf("tick rate %v, max %v", o.TickRate, o.MaxTickRate)
	}
	if o.SpeedStep != 1 || o.Density != 1 || o.Seed == 0 {
		t.Fatalf("unexpected options %+v", o)
	}

	o = Options{TickRate: 1, MinTickRate: 5, MaxTickRate: 10}
	if err := o.Validate(); err != nil || o.TickRate != 5 {
		t.Fatalf("tick rate %v, err %v", o.TickRate, err)
	}

	o = Options{MinTickRate: 10, MaxTickRate: 5}
	if err := o.Validate(); err == nil {
		t.Fatal("expected error for max below min")
	}
}

func TestDefaultOptions_Valid(t *testing.T) {
	o, err := defaultValidOptions()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if o.MaxTickRate != DefMaxTickRate || o.MinTickRate != DefMinTickRate || o.Seed == 0 {
		t.Fatalf("unexpected options %+v", o)
	}
	c := NewController(nil)
	if c.TickRate() != DefTickRate || c.Grid().Rows() != DefRows || c.Grid().Cols() != DefCols {
		t.Fatalf("unexpected controller state %+v", c.Status())
	}
}
