// Package dynlib opens platform shared libraries at runtime and resolves
// their exported symbols to addresses.
//
// Failures are never fatal at this level: a library that cannot be opened
// or a symbol that cannot be found is logged and reported as absent, and
// the caller decides how severe that is.
package dynlib

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrClosed is returned when a closed library is used.
var ErrClosed = errors.New("dynlib: library closed")

// opener is the per-OS-family dynamic loader.
type opener interface {
	open(path string) (uintptr, error)
	lookup(handle uintptr, name string) (uintptr, error)
	close(handle uintptr) error
}

var (
	platformOnce sync.Once
	platform     opener
)

// currentOpener selects the loader for the running OS family once per process.
func currentOpener() opener {
	platformOnce.Do(func() {
		family := CurrentFamily()
		platform = newOpener(family)
		Logger().Debug("selected dynamic loader", zap.Stringer("family", family))
	})
	return platform
}

// unsupportedOpener is used on platforms without a dynamic loader.
type unsupportedOpener struct {
	family Family
}

func (o unsupportedOpener) open(path string) (uintptr, error) {
	return 0, errors.New("dynlib: dynamic loading not supported on " + o.family.String())
}

func (o unsupportedOpener) lookup(uintptr, string) (uintptr, error) {
	return 0, errors.New("dynlib: dynamic loading not supported on " + o.family.String())
}

func (o unsupportedOpener) close(uintptr) error {
	return nil
}

// Library is an opened shared library.
type Library struct {
	path   string
	handle uintptr
	loader *Loader
	closed bool
}

// Path returns the path the library was opened with.
func (l *Library) Path() string { return l.path }

// Handle returns the raw handle of the library.
func (l *Library) Handle() uintptr { return l.handle }

// Resolve returns the address of the named symbol. Names are matched
// exactly. A missing symbol is logged and reported as false.
func (l *Library) Resolve(name string) (uintptr, bool) {
	if l == nil || l.closed {
		Logger().Warn("resolve on closed library", zap.String("symbol", name))
		return 0, false
	}
	addr, err := l.loader.opener.lookup(l.handle, name)
	if err != nil || addr == 0 {
		Logger().Debug("symbol not found",
			zap.String("library", l.path),
			zap.String("symbol", name),
			zap.Error(err))
		return 0, false
	}
	return addr, true
}

// Close unloads the library. The loader forgets the handle so a later Open
// of the same path loads it again. Closing a nil or closed library returns
// ErrClosed.
func (l *Library) Close() error {
	if l == nil || l.closed {
		return ErrClosed
	}
	l.closed = true
	delete(l.loader.libs, l.path)
	return l.loader.opener.close(l.handle)
}

// Loader opens shared libraries and keeps exactly one handle per path.
// It is meant to be used from the startup goroutine only.
type Loader struct {
	opener opener
	libs   map[string]*Library
}

// NewLoader returns a loader backed by the platform's dynamic loader.
func NewLoader() *Loader {
	return newLoader(currentOpener())
}

func newLoader(o opener) *Loader {
	return &Loader{
		opener: o,
		libs:   make(map[string]*Library),
	}
}

// Open loads the library at path. A second Open of the same path returns
// the same Library. A missing or incompatible file is logged and reported
// as false.
func (ld *Loader) Open(path string) (*Library, bool) {
	if lib, ok := ld.libs[path]; ok {
		return lib, true
	}

	handle, err := ld.opener.open(path)
	if err != nil || handle == 0 {
		Logger().Warn("failed to open shared library",
			zap.String("path", path),
			zap.Error(err))
		return nil, false
	}

	lib := &Library{path: path, handle: handle, loader: ld}
	ld.libs[path] = lib
	Logger().Info("opened shared library", zap.String("path", path))
	return lib, true
}

// Libraries returns the number of libraries currently held open.
func (ld *Loader) Libraries() int {
	return len(ld.libs)
}
