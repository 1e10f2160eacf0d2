//go:build darwin || freebsd || linux || netbsd

package dynlib

import "github.com/ebitengine/purego"

type posixOpener struct{}

func newOpener(family Family) opener {
	if family != FamilyPOSIX {
		return unsupportedOpener{family: family}
	}
	return posixOpener{}
}

// open loads a dynamic library on Unix-like systems. Symbols are bound
// lazily and kept local so two libraries exporting the same name don't
// shadow each other.
func (posixOpener) open(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_LOCAL)
}

func (posixOpener) lookup(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func (posixOpener) close(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return purego.Dlclose(handle)
}
