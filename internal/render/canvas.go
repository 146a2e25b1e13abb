package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Each terminal cell holds a 2×4 braille dot matrix.
const (
	dotsX      = 2
	dotsY      = 4
	brailleOff = 0x2800
)

var dotBits = [dotsY][dotsX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot canvas for the terminal. Each cell carries the
// colour of the nearest dot drawn into it.
type Canvas struct {
	cols, rows int
	bits       []uint8
	colors     []color.RGBA
	depth      []float64
	text       []rune
}

// NewCanvas allocates a cols×rows cell canvas. Negative sizes are treated
// as zero.
func NewCanvas(cols, rows int) *Canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	n := cols * rows
	c := &Canvas{
		cols:   cols,
		rows:   rows,
		bits:   make([]uint8, n),
		colors: make([]color.RGBA, n),
		depth:  make([]float64, n),
		text:   make([]rune, n),
	}
	c.Clear()
	return c
}

// Cells returns the canvas size in terminal cells.
func (c *Canvas) Cells() (cols, rows int) { return c.cols, c.rows }

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (w, h int) { return c.cols * dotsX, c.rows * dotsY }

// Clear erases every dot and label.
func (c *Canvas) Clear() {
	for i := range c.bits {
		c.bits[i] = 0
		c.colors[i] = color.RGBA{}
		c.depth[i] = math.Inf(1)
		c.text[i] = 0
	}
}

// Set lights dot (x, y). The cell takes col when depth is nearer than
// anything already drawn there. Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int, col color.RGBA, depth float64) {
	if x < 0 || y < 0 || x >= c.cols*dotsX || y >= c.rows*dotsY {
		return
	}
	i := (y/dotsY)*c.cols + x/dotsX
	c.bits[i] |= dotBits[y%dotsY][x%dotsX]
	if depth <= c.depth[i] {
		c.depth[i] = depth
		c.colors[i] = col
	}
}

// Line draws from (x0, y0) to (x1, y1) with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.RGBA, depth float64) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, col, depth)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Text writes s starting at cell (col, row). Labels sit above dots.
func (c *Canvas) Text(col, row int, s string, fg color.RGBA) {
	if row < 0 || row >= c.rows {
		return
	}
	for _, r := range s {
		if col >= 0 && col < c.cols {
			i := row*c.cols + col
			c.text[i] = r
			c.colors[i] = fg
			c.depth[i] = math.Inf(-1)
		}
		col++
	}
}

// Rune returns the character shown at cell (col, row).
func (c *Canvas) Rune(col, row int) rune {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return ' '
	}
	i := row*c.cols + col
	switch {
	case c.text[i] != 0:
		return c.text[i]
	case c.bits[i] != 0:
		return rune(brailleOff + int(c.bits[i]))
	default:
		return ' '
	}
}

// Plain renders the canvas without colour.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			b.WriteRune(c.Rune(col, row))
		}
	}
	return b.String()
}

// Render returns the canvas with each run of same-coloured cells styled by
// lipgloss.
func (c *Canvas) Render() string {
	var b strings.Builder
	var run strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var runColor color.RGBA
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor.A == 0 {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(Hex(runColor)).Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < c.cols; col++ {
			r := c.Rune(col, row)
			cellColor := c.colors[row*c.cols+col]
			if r == ' ' {
				cellColor = color.RGBA{}
			}
			if cellColor != runColor {
				flush()
				runColor = cellColor
			}
			run.WriteRune(r)
		}
		flush()
	}
	return b.String()
}

// Hex converts an RGBA colour to a lipgloss colour.
func Hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
