package render

import (
	"image/color"
	"math"
	"time"

	"github.com/five82/zcalc/internal/sampler"
)

// SpinRate is the idle rotation of the point cloud about the vertical axis,
// in radians per second.
const SpinRate = 0.1

// DefaultAxisSize is the length of each axis on either side of the origin.
const DefaultAxisSize = 5.0

// Vec3 is a point in world space. Z is the plotted height.
type Vec3 struct{ X, Y, Z float64 }

// Segment is one labelled axis.
type Segment struct {
	From, To Vec3
	Label    string
	Color    color.RGBA
}

// Palette colours the scene.
type Palette struct {
	Re     color.RGBA
	Im     color.RGBA
	Height color.RGBA
	Point  color.RGBA
}

// DefaultPalette draws the real axis red, the imaginary axis green, the
// magnitude axis blue and the points cyan.
func DefaultPalette() Palette {
	return Palette{
		Re:     color.RGBA{R: 0xff, A: 0xff},
		Im:     color.RGBA{G: 0xff, A: 0xff},
		Height: color.RGBA{B: 0xff, A: 0xff},
		Point:  color.RGBA{G: 0xff, B: 0xff, A: 0xff},
	}
}

// NewAxes returns the Re, Im and |f(z)| axes through the origin.
func NewAxes(size float64, p Palette) []Segment {
	if size <= 0 {
		size = DefaultAxisSize
	}
	return []Segment{
		{From: Vec3{X: -size}, To: Vec3{X: size}, Label: "Re", Color: p.Re},
		{From: Vec3{Y: -size}, To: Vec3{Y: size}, Label: "Im", Color: p.Im},
		{From: Vec3{Z: -size}, To: Vec3{Z: size}, Label: "|f(z)|", Color: p.Height},
	}
}

// Scene is everything the renderers draw. Angle is the current idle
// rotation of the point cloud; the axes stay fixed.
type Scene struct {
	Axes    []Segment
	Points  []sampler.Point
	Palette Palette
	Angle   float64
	Paused  bool
}

// NewScene returns a scene with default axes and no points.
func NewScene(axisSize float64) *Scene {
	p := DefaultPalette()
	return &Scene{Axes: NewAxes(axisSize, p), Palette: p}
}

// SetPoints replaces the point cloud wholesale.
func (s *Scene) SetPoints(points []sampler.Point) {
	s.Points = points
}

// Advance moves the idle rotation forward by dt.
func (s *Scene) Advance(dt time.Duration) {
	if s.Paused || dt <= 0 {
		return
	}
	s.Angle = math.Mod(s.Angle+SpinRate*dt.Seconds(), 2*math.Pi)
}

// Extent returns the largest absolute coordinate in the scene, used to
// frame the camera.
func (s *Scene) Extent() float64 {
	var ext float64
	for _, a := range s.Axes {
		for _, v := range []Vec3{a.From, a.To} {
			ext = math.Max(ext, math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z))))
		}
	}
	for _, p := range s.Points {
		ext = math.Max(ext, math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Height))))
	}
	if ext == 0 {
		return 1
	}
	return ext
}

// PointAt returns point i in world space with the idle rotation applied.
func (s *Scene) PointAt(i int) Vec3 {
	p := s.Points[i]
	c, sn := math.Cos(s.Angle), math.Sin(s.Angle)
	return Vec3{X: p.X*c - p.Y*sn, Y: p.X*sn + p.Y*c, Z: p.Height}
}
