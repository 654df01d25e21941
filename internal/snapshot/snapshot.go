// Package snapshot renders the field headless and writes the last frame as PNG.
package snapshot

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/raster"
)

// Render runs cfg.Snapshot.Frames frames as fast as possible and returns the
// surface holding the last one. With zero frames the initial state is drawn.
func Render(ctx context.Context, cfg *config.Config, log *zap.Logger) (*raster.Surface, *field.Field, error) {
	prm, err := cfg.Params()
	if err != nil {
		return nil, nil, err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, nil, err
	}

	s := raster.NewSurface(bg)
	f := field.New(s, prm, cfg.Seed, log.Named("field"))
	f.ShowLinks = cfg.Field.Links
	f.Start(cfg.Snapshot.Width, cfg.Snapshot.Height)
	if cfg.Snapshot.PointerX >= 0 && cfg.Snapshot.PointerY >= 0 {
		f.MovePointer(cfg.Snapshot.PointerX, cfg.Snapshot.PointerY)
	}

	if cfg.Snapshot.Frames == 0 {
		f.Render()
		return s, f, nil
	}

	d := field.NewDriver(f, rate.NewLimiter(rate.Inf, 0), log.Named("driver"))
	d.MaxFrames = cfg.Snapshot.Frames
	if err := d.Run(ctx); err != nil {
		return nil, nil, err
	}
	return s, f, nil
}

// Write renders and saves the frame to cfg.Snapshot.Output.
func Write(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	s, f, err := Render(ctx, cfg, log)
	if err != nil {
		return err
	}
	if err := s.SavePNG(cfg.Snapshot.Output); err != nil {
		return err
	}
	st := f.Snapshot()
	log.Info("Snapshot written",
		zap.String("output", cfg.Snapshot.Output),
		zap.Uint64("frames", st.Tick),
		zap.Int("particles", len(st.Particles)))
	return nil
}
