package render

import "math"

// Draw plots s onto cv through cam: the axes as lines with labels at their
// positive ends, then every point at world (x, y, height).
func Draw(cv *Canvas, cam Camera, s *Scene) {
	w, h := cv.Dots()
	if w == 0 || h == 0 {
		return
	}

	for i := range s.Points {
		p := s.PointAt(i)
		px, py, d, ok := cam.Project(p.X, p.Y, p.Z, w, h)
		if !ok {
			continue
		}
		cv.Set(round(px), round(py), s.Palette.Point, d)
	}

	for _, a := range s.Axes {
		x0, y0, d0, ok0 := cam.Project(a.From.X, a.From.Y, a.From.Z, w, h)
		x1, y1, d1, ok1 := cam.Project(a.To.X, a.To.Y, a.To.Z, w, h)
		if !ok0 || !ok1 {
			continue
		}
		cv.Line(round(x0), round(y0), round(x1), round(y1), a.Color, (d0+d1)/2)
		cv.Text(round(x1)/dotsX+1, round(y1)/dotsY, a.Label, a.Color)
	}
}

func round(f float64) int { return int(math.Round(f)) }
