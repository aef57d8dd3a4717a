//go:build !windows

package tray

import (
	"fmt"
	"runtime"
)

// Show reports the popup collaborator as unreachable on this platform.
func Show(parent uintptr, menu *Menu) (int, error) {
	return -1, fmt.Errorf("show popup menu: requires windows, running on %s", runtime.GOOS)
}
