package sprig

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string
	Width      int // window width in pixels; defaults to the world canvas width
	Height     int // window height in pixels; defaults to the world canvas height
	ClearColor Color
	ShowFPS    bool
	// RenderFunc, if set, is called after objects are drawn and before the
	// debug overlay, for HUD or custom world drawing.
	RenderFunc func(dc *DrawContext)
}

// game adapts a World to ebiten.Game.
type game struct {
	world *World
	cfg   RunConfig
}

func (g *game) Update() error {
	w := g.world
	w.input.poll()
	if w.updateFunc != nil {
		if err := w.updateFunc(); err != nil {
			return err
		}
	}
	w.Step()
	debugStep(1 / float64(w.cfg.TickRate))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w := g.world
	if g.cfg.ClearColor.A > 0 {
		screen.Fill(g.cfg.ClearColor.toRGBA())
	}
	w.Draw(screen)

	dc := &DrawContext{Target: screen, Camera: w.camera}
	if g.cfg.RenderFunc != nil {
		g.cfg.RenderFunc(dc)
	}
	debugRender(dc)

	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nObjects: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), len(w.objects)))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.world
	return int(w.camera.Viewport.X), int(w.camera.Viewport.Y)
}

// Run opens a window and drives w at its configured tick rate until the
// window closes or the update func returns an error. Each tick polls input,
// calls the update func, then steps the world.
func Run(w *World, cfg RunConfig) error {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = int(w.cfg.CanvasSize.X)
	}
	if height <= 0 {
		height = int(w.cfg.CanvasSize.Y)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.cfg.TickRate)
	return ebiten.RunGame(&game{world: w, cfg: cfg})
}
