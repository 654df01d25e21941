package cmd

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/olivierh59500/particle-field-go/internal/observability"
	"github.com/olivierh59500/particle-field-go/internal/term"
)

func newTermCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "term",
		Short: "Run the field inside the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The screen owns stdout, so only the file core may log.
			log := observability.NewLogger(a.cfg.Logger, zapcore.AddSync(io.Discard))
			defer log.Sync()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
			defer stop()
			return term.Run(ctx, a.cfg, log)
		},
	}
	c.Flags().Int("fps", 30, "frames per second")
	c.Flags().Int("cell-width", 8, "virtual pixels per terminal column")
	c.Flags().Int("cell-height", 16, "virtual pixels per terminal row")
	a.bind("term.fps", c.Flags().Lookup("fps"))
	a.bind("term.cell_width", c.Flags().Lookup("cell-width"))
	a.bind("term.cell_height", c.Flags().Lookup("cell-height"))
	return c
}
