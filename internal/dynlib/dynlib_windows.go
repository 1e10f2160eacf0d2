//go:build windows

package dynlib

import (
	"fmt"

	"golang.org/x/sys/windows"
)

type windowsOpener struct{}

func newOpener(family Family) opener {
	if family != FamilyWindows {
		return unsupportedOpener{family: family}
	}
	return windowsOpener{}
}

// open loads a DLL and returns its HMODULE.
func (windowsOpener) open(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("LoadLibrary(%s) failed: %w", path, err)
	}
	return uintptr(h), nil
}

func (windowsOpener) lookup(handle uintptr, name string) (uintptr, error) {
	addr, err := windows.GetProcAddress(windows.Handle(handle), name)
	if err != nil {
		return 0, fmt.Errorf("GetProcAddress(%s) failed: %w", name, err)
	}
	return addr, nil
}

func (windowsOpener) close(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return windows.FreeLibrary(windows.Handle(handle))
}
