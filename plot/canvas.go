package plot

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/meghashyamc/rotation2d/geometry"
)

// Canvas wraps an RGBA image with the drawing primitives the figure needs.
// All coordinates are in pixels; shapes are rasterized with x/image/vector
// so the figure can be rendered without a display
type Canvas struct {
	img *image.RGBA
}

func NewCanvas(width, height int, background color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// FillRect fills the axis-aligned rectangle between two corners
func (c *Canvas) FillRect(x0, y0, x1, y1 float64, col color.Color) {
	c.FillPolygon([]geometry.Vector{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}, col)
}

// FillPolygon fills the polygon described by pts, closing it implicitly
func (c *Canvas) FillPolygon(pts []geometry.Vector, col color.Color) {
	if len(pts) < 3 {
		return
	}

	bounds := c.img.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(c.img, bounds, image.NewUniform(col), image.Point{})
}

// Line strokes a straight segment of the given width. The segment is filled
// as a quad offset by half the width on each side
func (c *Canvas) Line(a, b geometry.Vector, width float64, col color.Color) {
	direction := b.Add(a.Scale(-1))
	if direction.Magnitude() == 0 {
		return
	}

	normal := geometry.Vector{X: -direction.Y, Y: direction.X}.Normalize().Scale(width / 2)
	c.FillPolygon([]geometry.Vector{
		a.Add(normal),
		b.Add(normal),
		b.Add(normal.Scale(-1)),
		a.Add(normal.Scale(-1)),
	}, col)
}

// Polyline strokes consecutive segments through pts
func (c *Canvas) Polyline(pts []geometry.Vector, width float64, col color.Color) {
	for i := 1; i < len(pts); i++ {
		c.Line(pts[i-1], pts[i], width, col)
	}
}

// StrokeRect strokes the outline of an axis-aligned rectangle
func (c *Canvas) StrokeRect(x0, y0, x1, y1, width float64, col color.Color) {
	c.Polyline([]geometry.Vector{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
		{X: x0, Y: y0},
	}, width, col)
}

// Arc strokes a circular arc around center from startAngle to endAngle
// (radians, counter-clockwise positive in world terms, so negative sweeps
// work too). The arc is approximated with short segments
func (c *Canvas) Arc(center geometry.Vector, radius, startAngle, endAngle, width float64, col color.Color) {
	const segments = 30

	pts := make([]geometry.Vector, 0, segments+1)
	for i := 0; i <= segments; i++ {
		angle := startAngle + (endAngle-startAngle)*float64(i)/segments
		// Pixel Y grows downward, so a counter-clockwise world angle
		// subtracts from Y here
		pts = append(pts, geometry.Vector{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y - radius*math.Sin(angle),
		})
	}
	c.Polyline(pts, width, col)
}

// DashedCircle strokes a circle outline as alternating drawn and skipped
// arc segments
func (c *Canvas) DashedCircle(center geometry.Vector, radius, width float64, col color.Color) {
	const dashes = 36

	step := 2 * math.Pi / dashes
	for i := 0; i < dashes; i++ {
		start := float64(i) * step
		c.Arc(center, radius, start, start+step*0.55, width, col)
	}
}

// Text draws a single line of text with its baseline starting at (x, y)
func (c *Canvas) Text(x, y float64, s string, face font.Face, col color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(s)
}

// TextWidth measures the rendered width of s in pixels
func (c *Canvas) TextWidth(s string, face font.Face) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

// LineHeight reports the vertical advance between lines of the face
func (c *Canvas) LineHeight(face font.Face) float64 {
	return float64(face.Metrics().Height) / 64
}
