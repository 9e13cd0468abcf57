//go:build !windows

package capture

import "fmt"

type stubLocator struct{}

// NewLocator returns a locator that always fails: the target application
// and its window enumeration API exist only on Windows.
func NewLocator() Locator {
	return stubLocator{}
}

func (stubLocator) Find(titleSubstring string) (*Window, error) {
	return nil, fmt.Errorf("%w: window location is only supported on windows", ErrWindowNotFound)
}

func (stubLocator) Activate(*Window) error {
	return nil
}
