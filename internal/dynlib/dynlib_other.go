//go:build !(darwin || freebsd || linux || netbsd || windows)

package dynlib

func newOpener(family Family) opener {
	return unsupportedOpener{family: family}
}
