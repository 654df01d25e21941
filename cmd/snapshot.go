package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/olivierh59500/particle-field-go/internal/snapshot"
)

func newSnapshotCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "snapshot",
		Short: "Render frames without a window and save the last one as PNG.",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.log.Sync()
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return snapshot.Write(ctx, a.cfg, a.log)
		},
	}
	f := c.Flags()
	f.Int("width", 1280, "surface width")
	f.Int("height", 720, "surface height")
	f.Int("frames", 120, "frames to simulate before saving")
	f.StringP("out", "o", "field.png", "output PNG path")
	f.Float64("pointer-x", -1, "fixed pointer x, negative for none")
	f.Float64("pointer-y", -1, "fixed pointer y, negative for none")
	a.bind("snapshot.width", f.Lookup("width"))
	a.bind("snapshot.height", f.Lookup("height"))
	a.bind("snapshot.frames", f.Lookup("frames"))
	a.bind("snapshot.output", f.Lookup("out"))
	a.bind("snapshot.pointer_x", f.Lookup("pointer-x"))
	a.bind("snapshot.pointer_y", f.Lookup("pointer-y"))
	return c
}
