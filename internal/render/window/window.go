// Package window shows the grapher's point cloud in a desktop window.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/five82/zcalc/internal/render"
	"github.com/five82/zcalc/internal/state"
)

const (
	tps         = 60
	orbitStep   = 0.03
	dragScale   = 0.01
	wheelFactor = 1.1
	pointSize   = 2
)

var background = color.RGBA{R: 0x10, G: 0x12, B: 0x1c, A: 0xff}

// Options configures the viewer window.
type Options struct {
	Title    string
	Width    int
	Height   int
	AxisSize float64
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
// The point cloud is re-read from store whenever it changes.
func Run(ctx context.Context, store *state.Store, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = 960
	}
	if opts.Height <= 0 {
		opts.Height = 720
	}
	if opts.Title == "" {
		opts.Title = "zcalc"
	}

	scene := render.NewScene(opts.AxisSize)
	g := &game{
		ctx:   ctx,
		store: store,
		scene: scene,
		cam:   render.NewCamera(scene.Extent()),
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

type game struct {
	ctx      context.Context
	store    *state.Store
	scene    *render.Scene
	cam      render.Camera
	snap     state.Snapshot
	version  uint64
	revision uint64

	width, height int
	dragX, dragY  int
	dragging      bool
	panning       bool
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if r := g.store.Revision(); r != g.revision {
		g.revision = r
		g.refresh()
	}
	g.handleInput()
	g.scene.Advance(time.Second / tps)
	return nil
}

func (g *game) refresh() {
	g.snap = g.store.Snapshot()
	if g.snap.Version != g.version {
		g.version = g.snap.Version
		g.scene.SetPoints(g.snap.Points)
		g.cam.Scale = 1 / g.scene.Extent()
	}
}

func (g *game) handleInput() {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		g.cam.Orbit(-orbitStep, 0)
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		g.cam.Orbit(orbitStep, 0)
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		g.cam.Orbit(0, orbitStep)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		g.cam.Orbit(0, -orbitStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.cam.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.Paused = !g.scene.Paused
	}

	if _, dy := ebiten.Wheel(); dy > 0 {
		g.cam.ZoomBy(wheelFactor)
	} else if dy < 0 {
		g.cam.ZoomBy(1 / wheelFactor)
	}

	x, y := ebiten.CursorPosition()
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		g.dragging, g.panning = false, false
		return
	}
	if g.dragging || g.panning {
		dx, dy := float64(x-g.dragX), float64(y-g.dragY)
		if g.panning {
			size := 0.45 * float64(min(g.width, g.height))
			if size > 0 {
				g.cam.Pan(dx/size, -dy/size)
			}
		} else {
			g.cam.Orbit(dx*dragScale, dy*dragScale)
		}
	}
	g.dragging, g.panning = left, right && !left
	g.dragX, g.dragY = x, y
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	for i := range g.scene.Points {
		p := g.scene.PointAt(i)
		px, py, _, ok := g.cam.Project(p.X, p.Y, p.Z, w, h)
		if !ok {
			continue
		}
		vector.DrawFilledRect(screen, float32(px)-pointSize/2, float32(py)-pointSize/2, pointSize, pointSize, g.scene.Palette.Point, false)
	}

	for _, a := range g.scene.Axes {
		x0, y0, _, ok0 := g.cam.Project(a.From.X, a.From.Y, a.From.Z, w, h)
		x1, y1, _, ok1 := g.cam.Project(a.To.X, a.To.Y, a.To.Z, w, h)
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1.5, a.Color, true)
		ebitenutil.DebugPrintAt(screen, a.Label, int(x1)+4, int(y1)-8)
	}

	ebitenutil.DebugPrintAt(screen, g.status(), 8, 8)
}

func (g *game) status() string {
	s := g.snap
	if !s.HasGraph {
		if s.LastError != nil {
			return "error: " + s.LastError.Error()
		}
		return "waiting for equation..."
	}
	line := fmt.Sprintf("f(z) = %s   a = %g   %d points", s.Equation, s.Parameter, len(s.Points))
	if s.Dropped > 0 {
		line += fmt.Sprintf(" (%d dropped)", s.Dropped)
	}
	if s.LastError != nil {
		line += "\nlast edit: " + s.LastError.Error()
	}
	return line + "\ndrag/arrows orbit  right-drag pan  wheel zoom  R reset  space pause"
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
