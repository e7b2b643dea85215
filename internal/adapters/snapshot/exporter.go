// Package snapshot renders star-map scenes to SVG and PNG.
package snapshot

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo/float"
	"golang.org/x/image/font/basicfont"

	"starfolio/internal/domain"
	"starfolio/internal/ports"
)

const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// DefaultSize is the output width used when none is given
const DefaultSize = 400

// ErrUnsupportedFormat is returned for formats other than svg and png
var ErrUnsupportedFormat = ports.ErrUnsupportedFormat

var backdrop = color.NRGBA{0x03, 0x07, 0x12, 0xff} // gray-950

// Exporter implements ports.SceneExporter
type Exporter struct {
	// Size is the output width in pixels; height keeps the scene aspect ratio
	Size int
}

// Ensure Exporter implements SceneExporter
var _ ports.SceneExporter = (*Exporter)(nil)

// NewExporter creates an exporter producing images size pixels wide
func NewExporter(size int) *Exporter {
	if size <= 0 {
		size = DefaultSize
	}
	return &Exporter{Size: size}
}

// Formats returns the supported output formats
func (e *Exporter) Formats() []string {
	return []string{FormatSVG, FormatPNG}
}

// FormatFor infers the output format from a path, defaulting to svg
func FormatFor(format, path string) (string, error) {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".png":
			format = FormatPNG
		default:
			format = FormatSVG
		}
	}
	if format != FormatSVG && format != FormatPNG {
		return "", fmt.Errorf("%w %q (want svg or png)", ErrUnsupportedFormat, format)
	}
	return format, nil
}

// Export writes the scene to w
func (e *Exporter) Export(w io.Writer, scene domain.Scene, format string) error {
	switch strings.ToLower(format) {
	case FormatSVG:
		return e.renderSVG(w, scene)
	case FormatPNG:
		return e.renderPNG(w, scene)
	default:
		return fmt.Errorf("%w %q (want svg or png)", ErrUnsupportedFormat, format)
	}
}

func (e *Exporter) dimensions(scene domain.Scene) (float64, float64) {
	w := float64(e.Size)
	if scene.Width <= 0 || scene.Height <= 0 {
		return w, w
	}
	return w, w * scene.Height / scene.Width
}

// renderSVG keeps scene coordinates untouched and scales through the viewBox
func (e *Exporter) renderSVG(w io.Writer, scene domain.Scene) error {
	width, height := e.dimensions(scene)

	canvas := svg.New(w)
	canvas.Startview(width, height, 0, 0, scene.Width, scene.Height)
	canvas.Rect(0, 0, scene.Width, scene.Height, "fill:"+css(backdrop))

	canvas.Gid("edges")
	for _, l := range scene.Lines {
		canvas.Line(l.X1, l.Y1, l.X2, l.Y2,
			fmt.Sprintf("stroke:%s;stroke-width:%s;opacity:%s", l.Stroke, num(l.Width), num(l.Opacity)))
	}
	canvas.Gend()

	canvas.Gid("stars")
	for _, m := range scene.Markers {
		style := fmt.Sprintf("fill:%s;opacity:%s", m.Fill, num(m.Opacity))
		if m.Glow != "" {
			style += fmt.Sprintf(";filter:drop-shadow(0 0 %s)", m.Glow)
		}
		if m.Interactive {
			style += ";cursor:pointer"
		}
		canvas.Circle(m.X, m.Y, m.Radius, style)
	}
	canvas.Gend()

	canvas.Gid("labels")
	for _, l := range scene.Labels {
		style := fmt.Sprintf("fill:%s;font-size:%spx;font-family:monospace;text-anchor:middle", l.Color, num(l.Size))
		if l.Bold {
			style += ";font-weight:bold"
		}
		canvas.Text(l.X, l.Y, l.Text, style)
	}
	canvas.Gend()

	canvas.End()
	return nil
}

func (e *Exporter) renderPNG(w io.Writer, scene domain.Scene) error {
	width, height := e.dimensions(scene)
	sx, sy := 1.0, 1.0
	if scene.Width > 0 && scene.Height > 0 {
		sx, sy = width/scene.Width, height/scene.Height
	}

	dc := gg.NewContext(int(width), int(height))
	dc.SetColor(backdrop)
	dc.Clear()

	for _, l := range scene.Lines {
		dc.SetColor(withOpacity(parseHex(l.Stroke), l.Opacity))
		dc.SetLineWidth(l.Width * sx)
		dc.DrawLine(l.X1*sx, l.Y1*sy, l.X2*sx, l.Y2*sy)
		dc.Stroke()
	}

	for _, m := range scene.Markers {
		fill := parseHex(m.Fill)
		if m.Glow != "" {
			dc.SetColor(withOpacity(parseHex(glowColor(m.Glow)), 0.25*m.Opacity))
			dc.DrawCircle(m.X*sx, m.Y*sy, (m.Radius+glowRadius(m.Glow)/2)*sx)
			dc.Fill()
		}
		dc.SetColor(withOpacity(fill, m.Opacity))
		dc.DrawCircle(m.X*sx, m.Y*sy, m.Radius*sx)
		dc.Fill()
	}

	dc.SetFontFace(basicfont.Face7x13)
	for _, l := range scene.Labels {
		dc.SetColor(parseHex(l.Color))
		dc.DrawStringAnchored(l.Text, l.X*sx, l.Y*sy, 0.5, 0.5)
	}

	return png.Encode(w, dc.Image())
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func css(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float64(c.A) * opacity)
	return c
}

// parseHex parses #rgb and #rrggbb colours; anything else is white
func parseHex(s string) color.NRGBA {
	white := color.NRGBA{0xff, 0xff, 0xff, 0xff}
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return white
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return white
	}
	return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}

// glowColor extracts the colour of a "10px #60a5fa" glow value
func glowColor(glow string) string {
	fields := strings.Fields(glow)
	if len(fields) < 2 {
		return "#ffffff"
	}
	return fields[len(fields)-1]
}

func glowRadius(glow string) float64 {
	fields := strings.Fields(glow)
	if len(fields) == 0 {
		return 0
	}
	r, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "px"), 64)
	if err != nil {
		return 0
	}
	return r
}
