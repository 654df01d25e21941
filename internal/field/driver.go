package field

import (
	"context"

	"go.uber.org/zap"
)

// Scheduler blocks until the next frame may run. *rate.Limiter satisfies it.
type Scheduler interface {
	Wait(ctx context.Context) error
}

// Driver runs frames back to back behind a scheduler.
type Driver struct {
	Field     *Field
	Scheduler Scheduler
	// MaxFrames stops the loop after that many frames. Zero runs until the
	// context is done.
	MaxFrames int
	// AfterFrame, if set, is called once a frame has been rendered.
	AfterFrame func(frame int)

	log *zap.Logger
}

// NewDriver returns an unbounded driver for f paced by sched.
func NewDriver(f *Field, sched Scheduler, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{Field: f, Scheduler: sched, log: log}
}

// Run returns nil when the frame budget is spent or the context is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	d.log.Info("Frame driver started", zap.Int("max_frames", d.MaxFrames))
	frames := 0
	defer func() {
		d.log.Info("Frame driver stopped", zap.Int("frames", frames))
	}()

	for d.MaxFrames == 0 || frames < d.MaxFrames {
		if err := d.Scheduler.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
		d.Field.Frame()
		frames++
		if d.AfterFrame != nil {
			d.AfterFrame(frames)
		}
	}
	return nil
}
