package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/field"
)

// Session drives a field on a tcell screen.
type Session struct {
	screen  tcell.Screen
	surface *Surface
	field   *field.Field
	host    *field.Host
	frame   time.Duration
	log     *zap.Logger
}

// NewSession wires a field to an initialised screen.
func NewSession(screen tcell.Screen, cfg *config.Config, log *zap.Logger) (*Session, error) {
	prm, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	s := NewSurface(screen, cfg.Term.CellWidth, cfg.Term.CellHeight, bg)
	f := field.New(s, prm, cfg.Seed, log.Named("field"))
	f.ShowLinks = cfg.Field.Links
	return &Session{
		screen:  screen,
		surface: s,
		field:   f,
		host:    field.NewHost(f, field.NewBus()),
		frame:   time.Second / time.Duration(cfg.Term.FPS),
		log:     log,
	}, nil
}

// Run loops until ctx is done or the user quits.
func (s *Session) Run(ctx context.Context) error {
	detach := s.field.Attach(s.host.Bus())
	defer detach()

	s.host.Viewport(s.surface.PixelSize(s.screen.Size()))

	done := make(chan struct{})
	// Wake the poller once done is closed so it can exit.
	defer s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case <-done:
				return
			default:
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(s.frame)
	defer ticker.Stop()

	s.log.Info("Terminal session started", zap.Duration("frame", s.frame))
	defer s.log.Info("Terminal session stopped")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !s.handle(ev) {
				return nil
			}
		case <-ticker.C:
			s.field.Frame()
			s.screen.Show()
		}
	}
}

// handle applies one terminal event. It returns false on quit.
func (s *Session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.host.Viewport(s.surface.PixelSize(ev.Size()))
		s.screen.Sync()
	case *tcell.EventMouse:
		x, y := s.surface.PixelAt(ev.Position())
		s.host.Cursor(x, y, true)
	case *tcell.EventFocus:
		if !ev.Focused {
			s.host.Cursor(0, 0, false)
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				s.field.Paused = !s.field.Paused
			case 'r':
				s.field.Reseed()
			case 'l':
				s.field.ShowLinks = !s.field.ShowLinks
			}
		}
	}
	return true
}

// Run opens the terminal, runs a session and restores the terminal.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	sess, err := NewSession(screen, cfg, log)
	if err != nil {
		return err
	}
	return sess.Run(ctx)
}
