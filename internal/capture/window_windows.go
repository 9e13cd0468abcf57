//go:build windows

package capture

import (
	"fmt"
	"image"
	"strings"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows          = user32.NewProc("EnumWindows")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procIsWindowVisible      = user32.NewProc("IsWindowVisible")
	procGetWindowRect        = user32.NewProc("GetWindowRect")
	procGetForegroundWindow  = user32.NewProc("GetForegroundWindow")
	procSetForegroundWindow  = user32.NewProc("SetForegroundWindow")
)

// activateSettle gives the window manager time to finish raising the
// window before pixels are read back.
const activateSettle = 500 * time.Millisecond

type winRect struct {
	left, top, right, bottom int32
}

type windowsLocator struct{}

// NewLocator returns the Windows window locator.
func NewLocator() Locator {
	return windowsLocator{}
}

// Find enumerates top-level windows and returns the first visible one
// whose title contains the substring.
func (windowsLocator) Find(titleSubstring string) (*Window, error) {
	var found *Window

	cb := syscall.NewCallback(func(hwnd, _ uintptr) uintptr {
		if visible, _, _ := procIsWindowVisible.Call(hwnd); visible == 0 {
			return 1
		}
		length, _, _ := procGetWindowTextLengthW.Call(hwnd)
		if length == 0 {
			return 1
		}
		buf := make([]uint16, length+1)
		procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
		title := windows.UTF16ToString(buf)
		if !strings.Contains(title, titleSubstring) {
			return 1
		}

		var r winRect
		if ok, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r))); ok == 0 {
			return 1
		}
		found = &Window{
			Handle: hwnd,
			Title:  title,
			Bounds: image.Rect(int(r.left), int(r.top), int(r.right), int(r.bottom)),
		}
		return 0 // stop at the first match
	})

	procEnumWindows.Call(cb, 0)

	if found == nil {
		return nil, fmt.Errorf("%w: no window title contains %q", ErrWindowNotFound, titleSubstring)
	}
	return found, nil
}

// Activate brings the window to the foreground and waits for it to
// settle so the capture sees the raised window, not whatever covered it.
func (windowsLocator) Activate(w *Window) error {
	if fg, _, _ := procGetForegroundWindow.Call(); fg == w.Handle {
		return nil
	}
	if ok, _, _ := procSetForegroundWindow.Call(w.Handle); ok == 0 {
		return fmt.Errorf("could not activate window %q", w.Title)
	}
	time.Sleep(activateSettle)
	return nil
}
