// Package preview renders a calibration overlay: the captured window with
// every configured region outlined and labeled. Operators use it to tune
// the [Capture] rectangles without guessing at pixel offsets.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/bankcap/internal/config"
	"github.com/ironsheep/bankcap/internal/field"
)

const outlineWidth = 2

// Render draws each configured region onto a copy of the window capture.
// Every region gets a distinct hue and a name label at its top-left
// corner, so overlapping rectangles stay tellable apart.
func Render(window image.Image, regions map[field.Region]config.Rect) *image.RGBA {
	b := window.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), window, b.Min, draw.Src)

	colors := palette(len(field.All()))
	for i, r := range field.All() {
		rect, configured := regions[r]
		if !configured {
			continue
		}
		col := colors[i]
		drawOutline(out, image.Rect(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H), col)
		drawLabel(out, rect.X+outlineWidth+1, rect.Y+outlineWidth+11, fmt.Sprintf("%s %d,%d %dx%d", r, rect.X, rect.Y, rect.W, rect.H), color.White, col)
	}
	return out
}

// Save writes the rendered overlay as a PNG.
func Save(img image.Image, path string) error {
	return imaging.Save(img, path)
}

// palette returns n fully saturated colors with evenly spaced hues.
func palette(n int) []color.RGBA {
	colors := make([]color.RGBA, n)
	for i := range colors {
		c := colorful.Hsv(float64(i)*360/float64(n), 0.9, 0.9)
		r, g, b := c.RGB255()
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// drawOutline draws the rectangle border, clipped to the image.
func drawOutline(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	bounds := img.Bounds()
	for t := 0; t < outlineWidth; t++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			setIfInside(img, bounds, x, r.Min.Y+t, col)
			setIfInside(img, bounds, x, r.Max.Y-1-t, col)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			setIfInside(img, bounds, r.Min.X+t, y, col)
			setIfInside(img, bounds, r.Max.X-1-t, y, col)
		}
	}
}

func setIfInside(img *image.RGBA, bounds image.Rectangle, x, y int, col color.RGBA) {
	if image.Pt(x, y).In(bounds) {
		img.SetRGBA(x, y, col)
	}
}

// drawLabel renders text over a filled background box so the label stays
// readable on any capture content.
func drawLabel(img *image.RGBA, x, y int, label string, fg color.Color, bg color.RGBA) {
	face := basicfont.Face7x13
	w := len(label) * 7
	box := image.Rect(x-1, y-11, x+w+1, y+3)
	draw.Draw(img, box.Intersect(img.Bounds()), &image.Uniform{bg}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(label)
}
