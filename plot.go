package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Plot palette.
var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorAxis       = color.RGBA{0, 0, 0, 255}
	colorGrid       = color.RGBA{215, 215, 215, 255}
	colorText       = color.RGBA{25, 25, 25, 255}
	colorSignal     = color.RGBA{0, 0, 220, 255}
	colorMarker     = color.RGBA{220, 0, 0, 255}
	colorStem       = color.RGBA{60, 60, 200, 255}
	colorFit        = color.RGBA{0, 110, 220, 255}
	colorF1Ref      = color.RGBA{220, 0, 0, 255}
	colorF2Ref      = color.RGBA{0, 150, 0, 255}
)

// plotCanvas is the offscreen RGBA buffer the plots are rasterized into.
// The same buffer backs the interactive window, saved PNGs, and headless
// batch output.
type plotCanvas struct {
	img *image.RGBA
}

// newPlotCanvas allocates a canvas of the given pixel size.
func newPlotCanvas(w, h int) *plotCanvas {
	return &plotCanvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (c *plotCanvas) pix() []byte { return c.img.Pix }
func (c *plotCanvas) width() int  { return c.img.Rect.Dx() }
func (c *plotCanvas) height() int { return c.img.Rect.Dy() }

// clear fills the whole canvas with the background color.
func (c *plotCanvas) clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)
}

// setPixel writes a single pixel, ignoring out-of-bounds coordinates.
func (c *plotCanvas) setPixel(x, y int, clr color.Color) {
	if x < 0 || x >= c.width() || y < 0 || y >= c.height() {
		return
	}
	c.img.Set(x, y, clr)
}

// drawLine plots a line segment using Bresenham's integer algorithm.
func (c *plotCanvas) drawLine(x0, y0, x1, y1 int, clr color.Color) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setPixel(x0, y0, clr)
		if x0 == x1 && y0 == y1 {
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

// drawDashedVLine plots a vertical dashed line with a 4-on/4-off pattern.
func (c *plotCanvas) drawDashedVLine(x, y0, y1 int, clr color.Color) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		if (y-y0)%8 < 4 {
			c.setPixel(x, y, clr)
		}
	}
}

// drawText renders s with the fixed 7x13 face; (x, y) is the baseline origin.
func (c *plotCanvas) drawText(s string, x, y int, clr color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(clr),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawTextVertical renders s one rune per line, for y-axis labels.
func (c *plotCanvas) drawTextVertical(s string, x, y int, clr color.Color) {
	for i, r := range []rune(s) {
		c.drawText(string(r), x, y+i*13, clr)
	}
}

// textWidth measures the rendered width of s in pixels.
func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

// savePNG writes the canvas to a PNG file.
func (c *plotCanvas) savePNG(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// legendEntry pairs a legend label with its series color.
type legendEntry struct {
	label string
	clr   color.Color
}

// axes maps a data-coordinate rectangle onto a pixel region of the canvas
// and draws plot elements in data coordinates. The y mapping is inverted so
// larger values appear higher on screen.
type axes struct {
	canvas                 *plotCanvas
	px, py, pw, ph         int
	xMin, xMax, yMin, yMax float64
}

func (a *axes) xPix(x float64) int {
	return a.px + int(math.Round((x-a.xMin)/(a.xMax-a.xMin)*float64(a.pw-1)))
}

func (a *axes) yPix(y float64) int {
	return a.py + a.ph - 1 - int(math.Round((y-a.yMin)/(a.yMax-a.yMin)*float64(a.ph-1)))
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// frame draws the rectangular axes border.
func (a *axes) frame() {
	c := a.canvas
	c.drawLine(a.px, a.py, a.px+a.pw-1, a.py, colorAxis)
	c.drawLine(a.px, a.py+a.ph-1, a.px+a.pw-1, a.py+a.ph-1, colorAxis)
	c.drawLine(a.px, a.py, a.px, a.py+a.ph-1, colorAxis)
	c.drawLine(a.px+a.pw-1, a.py, a.px+a.pw-1, a.py+a.ph-1, colorAxis)
}

// grid draws grid lines with tick labels on both axes.
func (a *axes) grid() {
	c := a.canvas
	for i := 0; i <= xTicks; i++ {
		v := a.xMin + float64(i)*(a.xMax-a.xMin)/xTicks
		x := a.xPix(v)
		if i > 0 && i < xTicks {
			c.drawLine(x, a.py, x, a.py+a.ph-1, colorGrid)
		}
		label := formatTick(v)
		c.drawText(label, x-textWidth(label)/2, a.py+a.ph+14, colorText)
	}
	for i := 0; i <= yTicks; i++ {
		v := a.yMin + float64(i)*(a.yMax-a.yMin)/yTicks
		y := a.yPix(v)
		if i > 0 && i < yTicks {
			c.drawLine(a.px, y, a.px+a.pw-1, y, colorGrid)
		}
		label := formatTick(v)
		c.drawText(label, a.px-6-textWidth(label), y+4, colorText)
	}
}

// polyline draws the series as connected line segments, clipped to the x
// range and clamped to the y range.
func (a *axes) polyline(xs, ys []float64, clr color.Color) {
	prevOK := false
	var prevX, prevY int
	for i := range xs {
		if xs[i] < a.xMin || xs[i] > a.xMax {
			prevOK = false
			continue
		}
		x := a.xPix(xs[i])
		y := a.yPix(clampF(ys[i], a.yMin, a.yMax))
		if prevOK {
			a.canvas.drawLine(prevX, prevY, x, y, clr)
		}
		prevX, prevY = x, y
		prevOK = true
	}
}

// markers draws a filled square marker at every series point.
func (a *axes) markers(xs, ys []float64, clr color.Color) {
	for i := range xs {
		if xs[i] < a.xMin || xs[i] > a.xMax {
			continue
		}
		x := a.xPix(xs[i])
		y := a.yPix(clampF(ys[i], a.yMin, a.yMax))
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				a.canvas.setPixel(x+dx, y+dy, clr)
			}
		}
	}
}

// stems draws a vertical stem from the baseline to every series point with
// a marker dot at the tip.
func (a *axes) stems(xs, ys []float64, clr color.Color) {
	base := a.yPix(clampF(0, a.yMin, a.yMax))
	for i := range xs {
		if xs[i] < a.xMin || xs[i] > a.xMax {
			continue
		}
		x := a.xPix(xs[i])
		y := a.yPix(clampF(ys[i], a.yMin, a.yMax))
		a.canvas.drawLine(x, base, x, y, clr)
		a.canvas.setPixel(x-1, y, clr)
		a.canvas.setPixel(x+1, y, clr)
		a.canvas.setPixel(x, y-1, clr)
	}
}

// vline draws a dashed vertical reference line at data coordinate x; lines
// outside the x range are skipped.
func (a *axes) vline(x float64, clr color.Color) {
	if x < a.xMin || x > a.xMax {
		return
	}
	a.canvas.drawDashedVLine(a.xPix(x), a.py, a.py+a.ph-1, clr)
}

// title draws a centered title above the axes.
func (a *axes) title(s string) {
	a.canvas.drawText(s, a.px+(a.pw-textWidth(s))/2, a.py-10, colorText)
}

// xlabel draws a centered label below the axes, under the tick labels.
func (a *axes) xlabel(s string) {
	a.canvas.drawText(s, a.px+(a.pw-textWidth(s))/2, a.py+a.ph+30, colorText)
}

// ylabel draws a vertical label along the left edge of the axes.
func (a *axes) ylabel(s string) {
	a.canvas.drawTextVertical(s, 12, a.py+(a.ph-len(s)*13)/2+10, colorText)
}

// legend draws a legend box in the top-right corner of the axes.
func (a *axes) legend(entries []legendEntry) {
	if len(entries) == 0 {
		return
	}
	widest := 0
	for _, e := range entries {
		if w := textWidth(e.label); w > widest {
			widest = w
		}
	}
	boxW := widest + 34
	boxH := len(entries)*15 + 8
	x0 := a.px + a.pw - boxW - 8
	y0 := a.py + 6
	c := a.canvas
	draw.Draw(c.img, image.Rect(x0, y0, x0+boxW, y0+boxH), image.NewUniform(colorBackground), image.Point{}, draw.Src)
	c.drawLine(x0, y0, x0+boxW, y0, colorAxis)
	c.drawLine(x0, y0+boxH, x0+boxW, y0+boxH, colorAxis)
	c.drawLine(x0, y0, x0, y0+boxH, colorAxis)
	c.drawLine(x0+boxW, y0, x0+boxW, y0+boxH, colorAxis)
	for i, e := range entries {
		ly := y0 + 12 + i*15
		c.drawLine(x0+6, ly-4, x0+24, ly-4, e.clr)
		c.drawText(e.label, x0+28, ly, colorText)
	}
}

// formatTick renders an axis tick value compactly.
func formatTick(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
