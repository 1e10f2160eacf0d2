// Package glfw binds the subset of GLFW used to open a window and an OpenGL
// context. Like the gl package it populates a static binding table from a
// shared library and detects the library version from which entry points
// resolved.
package glfw

import (
	"errors"
	"fmt"

	"github.com/agiangrant/beagle/internal/binding"
	"github.com/ebitengine/purego"
	"go.uber.org/zap"
)

var (
	// ErrInit is returned when glfwInit reports failure.
	ErrInit = errors.New("glfw: initialization failed")
	// ErrUnbound is returned when a required entry point did not resolve.
	ErrUnbound = errors.New("glfw: entry point not bound")
)

// API is a populated GLFW binding table with its detected version.
// GLFW requires most calls to happen on the main thread.
type API struct {
	fn      *Functions
	table   *binding.Table
	version Version
	log     *zap.Logger

	newCallback func(fn any) uintptr
	fbCallback  uintptr
	fbHandlers  map[uintptr]func(width, height int32)
}

// Load populates a fresh table from r and detects the GLFW version.
func Load(r binding.Resolver, bind binding.BindFunc, log *zap.Logger) (*API, binding.Report, error) {
	fn := &Functions{}
	table := fn.Table()
	report := table.Populate(r, bind)

	tier, err := binding.Detect(table, Ladder)
	if err != nil {
		return nil, report, err
	}
	a := NewAPI(fn, Version(tier), log)
	a.table = table
	a.log.Info("GLFW entry points bound",
		zap.Stringer("version", a.version),
		zap.Int("bound", len(report.Bound)),
		zap.Int("missing", len(report.Missing)))
	return a, report, nil
}

// NewAPI wraps functions bound by other means. Its Table is nil.
func NewAPI(fn *Functions, version Version, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{
		fn:          fn,
		version:     version,
		log:         log,
		newCallback: purego.NewCallback,
		fbHandlers:  make(map[uintptr]func(width, height int32)),
	}
}

func (a *API) Functions() *Functions { return a.fn }
func (a *API) Version() Version      { return a.version }
func (a *API) Table() *binding.Table { return a.table }
func (a *API) Logger() *zap.Logger   { return a.log }

// SetCallbackFactory replaces the function that turns Go funcs into native
// callback pointers. Callers without a native GLFW use it to avoid
// allocating real callback trampolines.
func (a *API) SetCallbackFactory(f func(fn any) uintptr) {
	a.newCallback = f
}

// Init initializes GLFW.
func (a *API) Init() error {
	if a.fn.Init == nil {
		return fmt.Errorf("%w: glfwInit", ErrUnbound)
	}
	if a.fn.Init() == False {
		a.log.Error("glfwInit failed")
		return ErrInit
	}
	if a.fn.GetVersionString != nil {
		a.log.Info("GLFW initialized", zap.String("version", a.fn.GetVersionString()))
	}
	return nil
}

// Terminate destroys remaining windows and releases GLFW resources.
func (a *API) Terminate() {
	if a.fn.Terminate != nil {
		a.fn.Terminate()
	}
}

// ProcResolver resolves OpenGL entry points through glfwGetProcAddress.
// It needs a current context and returns nothing when the slot is unbound.
func (a *API) ProcResolver() binding.Resolver {
	return binding.ResolverFunc(func(name string) (uintptr, bool) {
		if a.fn.GetProcAddress == nil {
			return 0, false
		}
		addr := a.fn.GetProcAddress(name)
		return addr, addr != 0
	})
}

// FramebufferSize returns the framebuffer size of window in pixels.
func (a *API) FramebufferSize(window uintptr) (width, height int32) {
	if a.fn.GetFramebufferSize == nil {
		return 0, 0
	}
	a.fn.GetFramebufferSize(window, &width, &height)
	return width, height
}

// OnFramebufferSize registers fn to run whenever window's framebuffer is
// resized. A single native callback is shared by every window.
func (a *API) OnFramebufferSize(window uintptr, fn func(width, height int32)) {
	if a.fn.SetFramebufferSizeCallback == nil {
		a.log.Warn("glfwSetFramebufferSizeCallback not bound, resize events are ignored")
		return
	}
	if a.fbCallback == 0 {
		a.fbCallback = a.newCallback(a.dispatchFramebufferSize)
	}
	a.fbHandlers[window] = fn
	a.fn.SetFramebufferSizeCallback(window, a.fbCallback)
}

// Forget drops the handlers registered for window.
func (a *API) Forget(window uintptr) {
	delete(a.fbHandlers, window)
}

func (a *API) dispatchFramebufferSize(window uintptr, width, height int32) {
	if fn, ok := a.fbHandlers[window]; ok {
		fn(width, height)
	}
}
