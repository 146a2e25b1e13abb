package render

import "math"

// Camera defaults and limits.
const (
	DefaultYaw   = 0.8
	DefaultPitch = 0.55
	MinPitch     = -1.5
	MaxPitch     = 1.5
	MinZoom      = 0.2
	MaxZoom      = 8
	MaxPan       = 2

	// viewDistance is how far the eye sits from the origin in normalised
	// units. Points closer than nearPlane to the eye are not drawn.
	viewDistance = 3.0
	nearPlane    = 0.2
)

// Camera orbits the origin. World +Z (the plotted height) points up on
// screen at every yaw; pitch tilts the view above or below the horizon.
type Camera struct {
	Yaw   float64
	Pitch float64
	Zoom  float64
	// PanX and PanY shift the image in units of the projection size.
	PanX float64
	PanY float64
	// Scale maps world units into the normalised cube the projection
	// expects; 1/extent keeps [-extent, extent] on screen.
	Scale float64
}

// NewCamera frames a scene whose coordinates span [-extent, extent].
func NewCamera(extent float64) Camera {
	scale := 1.0
	if extent > 0 && !math.IsInf(extent, 0) {
		scale = 1 / extent
	}
	return Camera{Yaw: DefaultYaw, Pitch: DefaultPitch, Zoom: 1, Scale: scale}
}

// Orbit rotates the camera. Pitch is clamped short of straight up or down.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw = math.Mod(c.Yaw+dYaw, 2*math.Pi)
	c.Pitch = clampFloat(c.Pitch+dPitch, MinPitch, MaxPitch)
}

// ZoomBy multiplies the zoom factor.
func (c *Camera) ZoomBy(factor float64) {
	if factor <= 0 || math.IsNaN(factor) {
		return
	}
	c.Zoom = clampFloat(c.Zoom*factor, MinZoom, MaxZoom)
}

// Pan moves the image, at most MaxPan projection sizes from centre.
func (c *Camera) Pan(dx, dy float64) {
	if math.IsNaN(dx) || math.IsNaN(dy) {
		return
	}
	c.PanX = clampFloat(c.PanX+dx, -MaxPan, MaxPan)
	c.PanY = clampFloat(c.PanY+dy, -MaxPan, MaxPan)
}

// Reset restores the default view, keeping Scale.
func (c *Camera) Reset() {
	*c = Camera{Yaw: DefaultYaw, Pitch: DefaultPitch, Zoom: 1, Scale: c.Scale}
}

// Project maps world (x, y, z) onto a w×h surface. depth grows with
// distance from the eye. ok is false when the point is behind the near
// plane or the surface is too small to draw on.
func (c Camera) Project(x, y, z float64, w, h int) (px, py, depth float64, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0, false
	}
	zoom := c.Zoom
	if zoom <= 0 || math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		zoom = 1
	}
	scale := c.Scale
	if scale <= 0 || math.IsNaN(scale) {
		scale = 1
	}
	x, y, z = x*scale, y*scale, z*scale

	cYaw, sYaw := math.Cos(c.Yaw), math.Sin(c.Yaw)
	x1 := x*cYaw - y*sYaw
	y1 := x*sYaw + y*cYaw

	cPitch, sPitch := math.Cos(c.Pitch), math.Sin(c.Pitch)
	up := y1*sPitch + z*cPitch
	toward := z*sPitch - y1*cPitch

	denom := viewDistance - toward
	if denom <= nearPlane {
		return 0, 0, 0, false
	}
	size := 0.45 * math.Min(float64(w-1), float64(h-1))
	if size <= 1 {
		return 0, 0, 0, false
	}
	persp := zoom / denom
	px = float64(w-1)/2 + (x1*persp+c.PanX)*size
	py = float64(h-1)/2 - (up*persp+c.PanY)*size
	return px, py, denom, true
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
