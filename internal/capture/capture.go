// Package capture locates the target application window and grabs the
// configured screen regions from it.
//
// Window location is Windows-only; other platforms compile against a stub
// that reports the window as not found. Screen grabbing itself is
// cross-platform. Per-region grab failures are not fatal: the region is
// simply absent from the capture set and its field degrades to empty text
// downstream.
package capture

import (
	"errors"
	"image"

	"github.com/rs/zerolog/log"

	"github.com/ironsheep/bankcap/internal/config"
	"github.com/ironsheep/bankcap/internal/field"
)

// ErrWindowNotFound marks a missing target window. It aborts the run
// before any capture is attempted.
var ErrWindowNotFound = errors.New("window not found")

// Window is a located top-level window.
type Window struct {
	Handle uintptr
	Title  string
	// Bounds is the window rectangle in screen coordinates. Region
	// rectangles are relative to its top-left corner.
	Bounds image.Rectangle
}

// Locator finds the first window whose title contains a substring and can
// bring it to the foreground.
type Locator interface {
	Find(titleSubstring string) (*Window, error)
	Activate(w *Window) error
}

// Grabber captures an absolute screen rectangle.
type Grabber interface {
	Grab(bounds image.Rectangle) (image.Image, error)
}

// Absolute translates a window-relative capture rectangle into screen
// coordinates.
func Absolute(origin image.Point, r config.Rect) image.Rectangle {
	return image.Rect(origin.X+r.X, origin.Y+r.Y, origin.X+r.X+r.W, origin.Y+r.Y+r.H)
}

// GrabRegions captures every configured region relative to origin. A
// failed grab is logged and the region left out of the result; the
// remaining regions still capture.
func GrabRegions(g Grabber, origin image.Point, regions map[field.Region]config.Rect) map[field.Region]image.Image {
	captures := make(map[field.Region]image.Image, len(regions))
	for _, r := range field.All() {
		rect, configured := regions[r]
		if !configured {
			continue
		}
		img, err := g.Grab(Absolute(origin, rect))
		if err != nil {
			log.Warn().Str("component", "capture").Stringer("region", r).Err(err).Msg("region capture failed")
			continue
		}
		captures[r] = img
	}
	return captures
}
