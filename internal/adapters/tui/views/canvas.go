package views

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// CellKind selects the style a canvas cell is drawn with
type CellKind int

const (
	CellEmpty CellKind = iota
	CellLine
	CellDecor
	CellStar
	CellActive
	CellLabel
	CellGroup
	CellOrbit
	CellBackdrop
)

// Canvas is a braille drawing surface. Every terminal cell holds a 2x4 grid
// of dots; scene coordinates are scaled onto the dot grid.
type Canvas struct {
	W, H   int // cells
	sx, sy float64

	dots  [][]uint8
	glyph [][]rune
	kind  [][]CellKind
}

// NewCanvas creates a w x h cell canvas for a sceneW x sceneH scene
func NewCanvas(w, h int, sceneW, sceneH float64) *Canvas {
	w, h = max(w, 1), max(h, 1)
	c := &Canvas{W: w, H: h, sx: 1, sy: 1}
	if sceneW > 0 {
		c.sx = float64(w*2-1) / sceneW
	}
	if sceneH > 0 {
		c.sy = float64(h*4-1) / sceneH
	}
	c.dots = make([][]uint8, h)
	c.glyph = make([][]rune, h)
	c.kind = make([][]CellKind, h)
	for i := range h {
		c.dots[i] = make([]uint8, w)
		c.glyph[i] = make([]rune, w)
		c.kind[i] = make([]CellKind, w)
	}
	return c
}

// Dot maps a scene coordinate to dot coordinates
func (c *Canvas) Dot(x, y float64) (int, int) {
	return int(math.Round(x * c.sx)), int(math.Round(y * c.sy))
}

// Cell maps a scene coordinate to the cell containing it
func (c *Canvas) Cell(x, y float64) (int, int) {
	mx, my := c.Dot(x, y)
	return floorDiv(mx, 2), floorDiv(my, 4)
}

// SceneAt maps the centre of a cell back to scene coordinates
func (c *Canvas) SceneAt(col, row int) (float64, float64) {
	return (float64(col*2) + 0.5) / c.sx, (float64(row*4) + 1.5) / c.sy
}

// CellRadius is the half-diagonal of one cell in scene units
func (c *Canvas) CellRadius() float64 {
	return math.Hypot(1/c.sx, 2/c.sy)
}

func (c *Canvas) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < c.W && row < c.H
}

// SetPixel sets a dot at dot coordinates
func (c *Canvas) SetPixel(mx, my int, kind CellKind) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if !c.inside(cx, cy) {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	c.dots[cy][cx] |= bit
	if kind > c.kind[cy][cx] && c.glyph[cy][cx] == 0 {
		c.kind[cy][cx] = kind
	}
}

// Plot sets the dot under a scene coordinate
func (c *Canvas) Plot(x, y float64, kind CellKind) {
	mx, my := c.Dot(x, y)
	c.SetPixel(mx, my, kind)
}

// Line draws a scene-space segment with Bresenham on the dot grid
func (c *Canvas) Line(x1, y1, x2, y2 float64, kind CellKind) {
	x0, y0 := c.Dot(x1, y1)
	xe, ye := c.Dot(x2, y2)

	dx := abs(xe - x0)
	sx := -1
	if x0 < xe {
		sx = 1
	}
	dy := -abs(ye - y0)
	sy := -1
	if y0 < ye {
		sy = 1
	}
	err := dx + dy
	for {
		c.SetPixel(x0, y0, kind)
		if x0 == xe && y0 == ye {
			break
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

// Put places a glyph over a cell, hiding its dots
func (c *Canvas) Put(col, row int, r rune, kind CellKind) {
	if !c.inside(col, row) {
		return
	}
	c.glyph[row][col] = r
	c.kind[row][col] = kind
}

// Text writes s centred on col. Text is clipped to the canvas.
func (c *Canvas) Text(col, row int, s string, kind CellKind) {
	if row < 0 || row >= c.H {
		return
	}
	start := col - runewidth.StringWidth(s)/2
	start = min(max(start, 0), max(c.W-runewidth.StringWidth(s), 0))
	x := start
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > c.W {
			break
		}
		c.Put(x, row, r, kind)
		// the cells a wide rune spills into are skipped when rendering
		for i := 1; i < w; i++ {
			c.glyph[row][x+i] = -1
			c.kind[row][x+i] = kind
		}
		x += w
	}
}

// Render returns the canvas rows, styling each run of equal kind with style
func (c *Canvas) Render(style func(CellKind, string) string) []string {
	out := make([]string, c.H)
	for y := range c.H {
		var b, run strings.Builder
		runKind := CellEmpty
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runKind == CellEmpty || style == nil {
				b.WriteString(run.String())
			} else {
				b.WriteString(style(runKind, run.String()))
			}
			run.Reset()
		}
		for x := range c.W {
			r := c.rune(x, y)
			if r < 0 {
				continue
			}
			kind := c.kind[y][x]
			if r == ' ' {
				kind = CellEmpty
			}
			if kind != runKind {
				flush()
				runKind = kind
			}
			run.WriteRune(r)
		}
		flush()
		out[y] = b.String()
	}
	return out
}

func (c *Canvas) rune(x, y int) rune {
	if g := c.glyph[y][x]; g != 0 {
		return g
	}
	if mask := c.dots[y][x]; mask != 0 {
		return rune(0x2800 + int(mask))
	}
	return ' '
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
