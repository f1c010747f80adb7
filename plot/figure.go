package plot

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/meghashyamc/rotation2d/assets"
	"github.com/meghashyamc/rotation2d/geometry"
	"github.com/meghashyamc/rotation2d/report"
)

const (
	defaultSize = 1000

	// World coordinates span [-worldLimit, worldLimit] in both directions,
	// covering the unit circle with margin
	worldLimit = 1.5

	gridStep  = 0.5
	arcRadius = 0.3
)

// Dark theme of the visualization
var (
	colorBackground  = color.RGBA{R: 0x1A, G: 0x1A, B: 0x2E, A: 0xFF}
	colorPlotArea    = color.RGBA{R: 0x16, G: 0x21, B: 0x3E, A: 0xFF}
	colorAxis        = color.NRGBA{R: 0x4A, G: 0x55, B: 0x68, A: 0x80}
	colorGrid        = color.NRGBA{R: 0x4A, G: 0x55, B: 0x68, A: 0x33}
	colorUnitCircle  = color.NRGBA{R: 0x71, G: 0x80, B: 0x96, A: 0x80}
	colorOriginal    = color.RGBA{R: 0x00, G: 0xD4, B: 0xFF, A: 0xFF}
	colorRotated     = color.RGBA{R: 0xFF, G: 0x6B, B: 0x9D, A: 0xFF}
	colorArc         = color.RGBA{R: 0xFF, G: 0xD9, B: 0x3D, A: 0xFF}
	colorText        = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorMatrixText  = color.RGBA{R: 0xA0, G: 0xAE, B: 0xC0, A: 0xFF}
	colorPanelBorder = color.RGBA{R: 0x4A, G: 0x55, B: 0x68, A: 0xFF}
	colorPanelFill   = color.NRGBA{R: 0x1A, G: 0x1A, B: 0x2E, A: 0xE6}
)

// Figure composes the annotated rotation plot: axes, grid, unit circle,
// the original and rotated vectors as arrows, the swept angle arc, a legend
// and the matrix written out as text
type Figure struct {
	angleDegrees float64
	matrix       geometry.Matrix
	original     geometry.Vector
	rotated      geometry.Vector
	size         int

	// Plot area in pixels, computed when rendering
	plotMinX, plotMinY float64
	plotMaxX, plotMaxY float64
}

func NewFigure(angleDegrees float64, m geometry.Matrix, original, rotated geometry.Vector, size int) *Figure {
	if size <= 0 {
		size = defaultSize
	}
	return &Figure{
		angleDegrees: angleDegrees,
		matrix:       m,
		original:     original,
		rotated:      rotated,
		size:         size,
	}
}

// Render draws the complete figure onto a fresh square canvas
func (f *Figure) Render() *image.RGBA {
	// The plot area must stay square so one world unit spans the same
	// number of pixels on both axes and unit vectors land on the drawn
	// unit circle. The title row sets the side length; the horizontal
	// leftover becomes equal side margins
	top := float64(f.size) * 0.09 // extra room for the title
	bottom := float64(f.size) * 0.05
	side := float64(f.size) - top - bottom

	f.plotMinX = (float64(f.size) - side) / 2
	f.plotMaxX = f.plotMinX + side
	f.plotMinY = top
	f.plotMaxY = float64(f.size) - bottom

	c := NewCanvas(f.size, f.size, colorBackground)

	c.FillRect(f.plotMinX, f.plotMinY, f.plotMaxX, f.plotMaxY, colorPlotArea)

	f.drawGrid(c)
	f.drawAxes(c)
	f.drawUnitCircle(c)
	f.drawAngleArc(c)
	f.drawArrow(c, f.original, colorOriginal)
	f.drawArrow(c, f.rotated, colorRotated)
	f.drawTitle(c)
	f.drawLegend(c)
	f.drawMatrixBlock(c)

	return c.Image()
}

// toPixel maps world coordinates (Y up) to pixel coordinates (Y down)
func (f *Figure) toPixel(v geometry.Vector) geometry.Vector {
	return geometry.Vector{
		X: f.plotMinX + (v.X+worldLimit)/(2*worldLimit)*(f.plotMaxX-f.plotMinX),
		Y: f.plotMaxY - (v.Y+worldLimit)/(2*worldLimit)*(f.plotMaxY-f.plotMinY),
	}
}

// pixelsPerUnit reports the scale of one world unit in pixels
func (f *Figure) pixelsPerUnit() float64 {
	return (f.plotMaxX - f.plotMinX) / (2 * worldLimit)
}

func (f *Figure) drawGrid(c *Canvas) {
	for i := -3; i <= 3; i++ {
		w := float64(i) * gridStep
		c.Line(f.toPixel(geometry.Vector{X: w, Y: -worldLimit}), f.toPixel(geometry.Vector{X: w, Y: worldLimit}), 1, colorGrid)
		c.Line(f.toPixel(geometry.Vector{X: -worldLimit, Y: w}), f.toPixel(geometry.Vector{X: worldLimit, Y: w}), 1, colorGrid)
	}
}

func (f *Figure) drawAxes(c *Canvas) {
	c.Line(f.toPixel(geometry.Vector{X: -worldLimit}), f.toPixel(geometry.Vector{X: worldLimit}), 1.5, colorAxis)
	c.Line(f.toPixel(geometry.Vector{Y: -worldLimit}), f.toPixel(geometry.Vector{Y: worldLimit}), 1.5, colorAxis)

	// Axis letters just inside the plot edge
	xEnd := f.toPixel(geometry.Vector{X: worldLimit})
	yEnd := f.toPixel(geometry.Vector{Y: worldLimit})
	c.Text(xEnd.X-24, xEnd.Y-10, "x", assets.LabelFace, colorText)
	c.Text(yEnd.X+10, yEnd.Y+24, "y", assets.LabelFace, colorText)
}

func (f *Figure) drawUnitCircle(c *Canvas) {
	c.DashedCircle(f.toPixel(geometry.Vector{}), f.pixelsPerUnit(), 1.5, colorUnitCircle)
}

func (f *Figure) drawAngleArc(c *Canvas) {
	angleRadians := f.angleDegrees * math.Pi / 180
	if angleRadians == 0 {
		return
	}

	origin := f.toPixel(geometry.Vector{})
	c.Arc(origin, arcRadius*f.pixelsPerUnit(), 0, angleRadians, 3, colorArc)

	// Angle value just beyond the arc, along its bisector
	labelPos := f.toPixel(geometry.Vector{
		X: 0.45 * math.Cos(angleRadians/2),
		Y: 0.45 * math.Sin(angleRadians/2),
	})
	label := fmt.Sprintf("%g°", f.angleDegrees)
	c.Text(labelPos.X-c.TextWidth(label, assets.AngleFace)/2, labelPos.Y, label, assets.AngleFace, colorArc)
}

// drawArrow draws a vector from the origin as a shaft plus a filled triangular
// head, sized relative to the plot scale
func (f *Figure) drawArrow(c *Canvas, v geometry.Vector, col color.Color) {
	length := v.Magnitude()
	if length == 0 {
		return
	}

	const headLength = 0.09 // world units
	const headWidth = 0.06

	direction := v.Normalize()
	shaftEnd := v.Add(direction.Scale(-math.Min(headLength, length)))

	tip := f.toPixel(v)
	base := f.toPixel(shaftEnd)
	origin := f.toPixel(geometry.Vector{})

	c.Line(origin, base, 0.025*f.pixelsPerUnit(), col)

	// Head corners perpendicular to the shaft at its end
	normal := geometry.Vector{X: -direction.Y, Y: direction.X}
	left := f.toPixel(shaftEnd.Add(normal.Scale(headWidth / 2)))
	right := f.toPixel(shaftEnd.Add(normal.Scale(-headWidth / 2)))
	c.FillPolygon([]geometry.Vector{tip, left, right}, col)
}

func (f *Figure) drawTitle(c *Canvas) {
	title := fmt.Sprintf("2D Rotation Matrix: rotation by %g°", f.angleDegrees)
	c.Text((float64(f.size)-c.TextWidth(title, assets.TitleFace))/2, float64(f.size)*0.06, title, assets.TitleFace, colorText)
}

func (f *Figure) drawLegend(c *Canvas) {
	entries := []struct {
		col    color.Color
		dashed bool
		label  string
	}{
		{colorUnitCircle, true, "Unit circle"},
		{colorOriginal, false, fmt.Sprintf("Original: %s", report.FormatVector(f.original))},
		{colorRotated, false, fmt.Sprintf("Rotated (%g°): %s", f.angleDegrees, report.FormatVector(f.rotated))},
		{colorArc, false, fmt.Sprintf("Rotation angle: %g°", f.angleDegrees)},
	}

	lineHeight := c.LineHeight(assets.LegendFace) * 1.4
	const pad = 12.0
	const sampleWidth = 34.0

	width := 0.0
	for _, e := range entries {
		if w := c.TextWidth(e.label, assets.LegendFace); w > width {
			width = w
		}
	}
	width += pad*2 + sampleWidth + 10

	x0 := f.plotMinX + 14
	y0 := f.plotMinY + 14
	y1 := y0 + pad*2 + lineHeight*float64(len(entries))

	c.FillRect(x0, y0, x0+width, y1, colorPanelFill)
	c.StrokeRect(x0, y0, x0+width, y1, 1.5, colorPanelBorder)

	for i, e := range entries {
		rowY := y0 + pad + lineHeight*float64(i) + lineHeight*0.7
		sampleY := rowY - c.LineHeight(assets.LegendFace)*0.3
		if e.dashed {
			for _, seg := range [][2]float64{{0, 10}, {14, 24}, {28, 34}} {
				c.Line(geometry.Vector{X: x0 + pad + seg[0], Y: sampleY}, geometry.Vector{X: x0 + pad + seg[1], Y: sampleY}, 2, e.col)
			}
		} else {
			c.Line(geometry.Vector{X: x0 + pad, Y: sampleY}, geometry.Vector{X: x0 + pad + sampleWidth, Y: sampleY}, 3, e.col)
		}
		c.Text(x0+pad+sampleWidth+10, rowY, e.label, assets.LegendFace, colorText)
	}
}

// drawMatrixBlock writes the matrix and the multiplication out as monospace
// text in the lower right corner
func (f *Figure) drawMatrixBlock(c *Canvas) {
	m := f.matrix
	lines := []string{
		fmt.Sprintf("Rotation matrix R(%g°):", f.angleDegrees),
		fmt.Sprintf("[ %7.4f  %7.4f ]", m[0][0], m[0][1]),
		fmt.Sprintf("[ %7.4f  %7.4f ]", m[1][0], m[1][1]),
		"",
		"v' = R · v",
		fmt.Sprintf("[%7.4f]   [%7.4f %7.4f]   [%7.4f]", f.rotated.X, m[0][0], m[0][1], f.original.X),
		fmt.Sprintf("[%7.4f] = [%7.4f %7.4f] · [%7.4f]", f.rotated.Y, m[1][0], m[1][1], f.original.Y),
	}

	lineHeight := c.LineHeight(assets.MonoFace) * 1.3
	const pad = 14.0

	width := 0.0
	for _, line := range lines {
		if w := c.TextWidth(line, assets.MonoFace); w > width {
			width = w
		}
	}
	width += pad * 2
	height := lineHeight*float64(len(lines)) + pad*2

	x1 := f.plotMaxX - 14
	y1 := f.plotMaxY - 14
	x0 := x1 - width
	y0 := y1 - height

	c.FillRect(x0, y0, x1, y1, colorPanelFill)
	c.StrokeRect(x0, y0, x1, y1, 1.5, colorPanelBorder)

	for i, line := range lines {
		c.Text(x0+pad, y0+pad+lineHeight*float64(i)+lineHeight*0.7, line, assets.MonoFace, colorMatrixText)
	}
}
