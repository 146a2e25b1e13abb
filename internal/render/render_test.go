package render

import (
	"image/color"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/zcalc/internal/sampler"
)

func TestProject_HeightGoesUp(t *testing.T) {
	for _, yaw := range []float64{0, 0.8, math.Pi / 2, math.Pi} {
		cam := Camera{Yaw: yaw, Pitch: 0.55, Zoom: 1, Scale: 1}

		_, py0, _, ok := cam.Project(0, 0, 0, 200, 160)
		require.True(t, ok)
		_, pyUp, _, ok := cam.Project(0, 0, 1, 200, 160)
		require.True(t, ok)
		_, pyDown, _, ok := cam.Project(0, 0, -1, 200, 160)
		require.True(t, ok)

		assert.Less(t, pyUp, py0, "yaw %v", yaw)
		assert.Less(t, py0, pyDown, "yaw %v", yaw)
	}
}

func TestProject_OriginAtCentre(t *testing.T) {
	cam := NewCamera(10)
	px, py, _, ok := cam.Project(0, 0, 0, 101, 81)
	require.True(t, ok)
	assert.InDelta(t, 50, px, 1e-9)
	assert.InDelta(t, 40, py, 1e-9)

	cam.Pan(0.5, 0)
	px, _, _, _ = cam.Project(0, 0, 0, 101, 81)
	assert.Greater(t, px, 50.0)
}

func TestProject_BehindEyeRejected(t *testing.T) {
	cam := Camera{Pitch: 0, Zoom: 1, Scale: 1}
	// With no pitch the eye sits on -Y; a point past it is clipped.
	_, _, _, ok := cam.Project(0, -5, 0, 100, 100)
	assert.False(t, ok)

	_, _, _, ok = cam.Project(0, 0, 0, 0, 100)
	assert.False(t, ok)
	_, _, _, ok = cam.Project(0, 0, 0, 2, 2)
	assert.False(t, ok, "surface too small")
}

func TestProject_ZoomMagnifies(t *testing.T) {
	cam := NewCamera(1)
	px1, _, _, _ := cam.Project(1, 0, 0, 200, 200)
	cam.ZoomBy(2)
	px2, _, _, _ := cam.Project(1, 0, 0, 200, 200)
	assert.Greater(t, math.Abs(px2-99.5), math.Abs(px1-99.5))
}

func TestCameraLimits(t *testing.T) {
	cam := NewCamera(5)
	cam.Orbit(0, 10)
	assert.Equal(t, MaxPitch, cam.Pitch)
	cam.Orbit(0, -10)
	assert.Equal(t, MinPitch, cam.Pitch)

	cam.ZoomBy(1000)
	assert.Equal(t, float64(MaxZoom), cam.Zoom)
	cam.ZoomBy(0)
	assert.Equal(t, float64(MaxZoom), cam.Zoom, "non-positive factor ignored")

	for range 100 {
		cam.Pan(0.05, -0.05)
	}
	assert.Equal(t, float64(MaxPan), cam.PanX)
	assert.Equal(t, float64(-MaxPan), cam.PanY)
	cam.Pan(-10, 10)
	assert.Equal(t, float64(-MaxPan), cam.PanX)
	assert.Equal(t, float64(MaxPan), cam.PanY)

	cam.Reset()
	assert.Equal(t, NewCamera(5), cam)
}

func TestSceneAdvance(t *testing.T) {
	s := NewScene(5)
	s.Advance(10 * time.Second)
	assert.InDelta(t, 1.0, s.Angle, 1e-12)

	s.Paused = true
	s.Advance(time.Second)
	assert.InDelta(t, 1.0, s.Angle, 1e-12)
}

func TestScenePointAtRotatesAboutVertical(t *testing.T) {
	s := NewScene(5)
	s.SetPoints([]sampler.Point{{X: 1, Y: 0, Height: 3}})
	s.Angle = math.Pi / 2
	p := s.PointAt(0)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)
	assert.Equal(t, 3.0, p.Z)
}

func TestSceneExtent(t *testing.T) {
	s := NewScene(5)
	assert.Equal(t, 5.0, s.Extent())
	s.SetPoints([]sampler.Point{{X: -10, Y: 2, Height: 1}})
	assert.Equal(t, 10.0, s.Extent())
}

func TestNewAxesLabels(t *testing.T) {
	axes := NewAxes(0, DefaultPalette())
	require.Len(t, axes, 3)
	assert.Equal(t, "Re", axes[0].Label)
	assert.Equal(t, "Im", axes[1].Label)
	assert.Equal(t, "|f(z)|", axes[2].Label)
	assert.Equal(t, DefaultAxisSize, axes[2].To.Z)
}

func TestCanvasBrailleBits(t *testing.T) {
	cv := NewCanvas(2, 1)
	w, h := cv.Dots()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)

	red := color.RGBA{R: 0xff, A: 0xff}
	cv.Set(0, 0, red, 1)
	assert.Equal(t, '⠁', cv.Rune(0, 0))
	cv.Set(1, 3, red, 1)
	assert.Equal(t, '⢁', cv.Rune(0, 0))
	assert.Equal(t, ' ', cv.Rune(1, 0))

	cv.Set(99, 99, red, 1)
	cv.Set(-1, 0, red, 1)
	assert.Equal(t, "⢁ ", cv.Plain())

	cv.Clear()
	assert.Equal(t, "  ", cv.Plain())
}

func TestCanvasDepthPicksNearestColour(t *testing.T) {
	cv := NewCanvas(1, 1)
	far := color.RGBA{R: 1, A: 0xff}
	near := color.RGBA{G: 1, A: 0xff}
	cv.Set(0, 0, far, 5)
	cv.Set(1, 1, near, 2)
	cv.Set(0, 2, far, 9)
	assert.Equal(t, near, cv.colors[0])
}

func TestCanvasLineAndText(t *testing.T) {
	cv := NewCanvas(3, 1)
	cv.Line(0, 0, 5, 0, color.RGBA{A: 0xff}, 0)
	assert.Equal(t, "⠉⠉⠉", cv.Plain())

	cv.Text(1, 0, "Re", color.RGBA{R: 0xff, A: 0xff})
	assert.Equal(t, "⠉Re", cv.Plain())
	cv.Text(0, 5, "ignored", color.RGBA{})
	assert.Equal(t, "⠉Re", cv.Plain())
}

func TestCanvasRenderKeepsText(t *testing.T) {
	cv := NewCanvas(4, 2)
	cv.Text(0, 1, "Im", color.RGBA{G: 0xff, A: 0xff})
	out := cv.Render()
	assert.Equal(t, 2, strings.Count(out, "\n")+1)
	assert.Contains(t, out, "Im")
}

func TestDrawPlotsPointsAndAxes(t *testing.T) {
	s := NewScene(5)
	s.SetPoints(sampler.Sample("z", sampler.Grid{Min: -2, Max: 2, Step: 1}, sampler.MaxHeight).Points)
	cv := NewCanvas(60, 20)
	Draw(cv, NewCamera(s.Extent()), s)

	plain := cv.Plain()
	assert.Contains(t, plain, "Re")
	assert.Contains(t, plain, "Im")
	assert.Contains(t, plain, "|f(z)|")
	assert.NotEqual(t, strings.Repeat(" ", 60), strings.Split(plain, "\n")[10])
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#00ffff", string(Hex(DefaultPalette().Point)))
}
