// Package screen runs the field in an ebiten window.
package screen

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/field"
)

// Game adapts a field to ebiten.Game. ebiten calls Layout, Update and Draw
// from one goroutine, so bus handlers never run during a frame.
type Game struct {
	field   *field.Field
	surface *Surface
	host    *field.Host
	detach  func()
	log     *zap.Logger

	hud bool
}

// NewGame wires f to a fresh bus fed by the window.
func NewGame(f *field.Field, s *Surface, log *zap.Logger) *Game {
	bus := field.NewBus()
	return &Game{
		field:   f,
		surface: s,
		host:    field.NewHost(f, bus),
		detach:  f.Attach(bus),
		log:     log,
	}
}

// Update is called each tick by ebiten.
func (g *Game) Update() error {
	if quit := g.handleInput(); quit {
		return ebiten.Termination
	}
	g.field.Step()
	return nil
}

// Draw is called each frame by ebiten.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.target = screen
	g.field.Render()
	if g.hud {
		ebitenutil.DebugPrintAt(screen, g.status(), 8, 8)
	}
}

func (g *Game) status() string {
	s := fmt.Sprintf("TPS %.0f  particles %d", ebiten.ActualTPS(), g.field.Len())
	if g.field.Paused {
		s += "  paused"
	}
	if !g.field.ShowLinks {
		s += "  links off"
	}
	return s
}

// Layout makes the surface follow the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// ebiten rejects an empty screen, e.g. while minimised.
	if outsideWidth <= 0 || outsideHeight <= 0 {
		w, h := g.host.Size()
		return max(w, 1), max(h, 1)
	}
	g.host.Viewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// handleInput forwards the cursor and processes keys. It reports whether
// the user asked to quit.
func (g *Game) handleInput() bool {
	w, h := g.host.Size()
	mx, my := ebiten.CursorPosition()
	inside := ebiten.IsFocused() && mx >= 0 && my >= 0 && mx < w && my < h
	g.host.Cursor(float64(mx), float64(my), inside)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.field.Paused = !g.field.Paused
		g.log.Debug("Toggled pause", zap.Bool("paused", g.field.Paused))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.field.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.field.ShowLinks = !g.field.ShowLinks
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, log *zap.Logger) error {
	prm, err := cfg.Params()
	if err != nil {
		return err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}

	s := NewSurface(bg)
	f := field.New(s, prm, cfg.Seed, log.Named("field"))
	f.ShowLinks = cfg.Field.Links
	g := NewGame(f, s, log)
	defer g.detach()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	log.Info("Opening window",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("tps", cfg.Window.TPS))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	log.Info("Window closed")
	return nil
}
