package universe

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

//ErrFinished can be returned by the iterate func to stop the Loop without an error
var ErrFinished = errors.New("universe: finished")

//Loop calls iterate once per tick until ctx is done
//first is the delay before the first call, then each call returns the delay before the next one
//so a tick rate change is applied starting from the next iteration
func Loop(ctx context.Context, first time.Duration, iterate func() (time.Duration, error)) error {
	t := time.NewTimer(first)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
		next, err := iterate()
		if errors.Is(err, ErrFinished) {
			return nil
		}
		if err != nil {
			return err
		}
		t.Reset(next)
	}
}
