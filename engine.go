// Package beagle wires the native bindings into a running engine: it loads
// GLFW and OpenGL from shared libraries, opens the window and starts the
// registered modules.
package beagle

import (
	"context"
	"errors"
	"fmt"

	"github.com/agiangrant/beagle/gl"
	"github.com/agiangrant/beagle/glfw"
	"github.com/agiangrant/beagle/internal/binding"
	"github.com/agiangrant/beagle/internal/dynlib"
	"github.com/agiangrant/beagle/internal/logging"
	"github.com/agiangrant/beagle/window"
	"go.uber.org/zap"
)

// Version is the engine version.
const Version = "0.1.0"

// ErrNotStarted is returned by Run before a successful Startup.
var ErrNotStarted = errors.New("beagle: engine not started")

// LoadError reports a required library that could not be opened.
type LoadError struct {
	Library string
	Path    string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s library from %s", e.Library, e.Path)
}

// OpenFunc opens a shared library and returns its symbol resolver.
type OpenFunc func(path string) (binding.Resolver, bool)

// Option configures an Engine.
type Option func(*Engine)

// WithLogging uses an existing logging setup instead of one built from the
// configuration.
func WithLogging(l *logging.Logging) Option {
	return func(e *Engine) { e.logs = l }
}

// WithOpener replaces the shared library loader.
func WithOpener(open OpenFunc) Option {
	return func(e *Engine) { e.open = open }
}

// WithBinder replaces the function that installs resolved addresses.
func WithBinder(bind binding.BindFunc) Option {
	return func(e *Engine) { e.bind = bind }
}

// Engine owns the bound GLFW and OpenGL surfaces, the window and the modules.
// All methods must be called from the main thread.
type Engine struct {
	cfg     Config
	logs    *logging.Logging
	log     *zap.Logger
	open    OpenFunc
	bind    binding.BindFunc
	modules *Registry

	glfw    *glfw.API
	gl      *gl.Context
	windows *window.Manager
	reports []binding.Report
	started bool
	ownLogs bool
	down    bool
}

// New creates an engine. Nothing native is touched until Startup.
func New(cfg Config, opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:     cfg,
		bind:    binding.RegisterFunc,
		modules: NewRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logs == nil {
		logs, err := logging.New(cfg.Log)
		if err != nil {
			return nil, err
		}
		e.logs = logs
		e.ownLogs = true
	}
	if e.open == nil {
		loader := dynlib.NewLoader()
		e.open = func(path string) (binding.Resolver, bool) {
			lib, ok := loader.Open(path)
			if !ok {
				return nil, false
			}
			return lib, true
		}
	}
	e.log = e.logs.Module("Engine")

	dynlib.SetLogger(e.logs.Module("Loader"))
	binding.SetLogger(e.logs.Module("Binding"))
	return e, nil
}

// Register adds a module to start after the window and context exist.
func (e *Engine) Register(m Module) error {
	return e.modules.Register(m)
}

// Modules returns the modules that started successfully.
func (e *Engine) Modules() []Module { return e.modules.Started() }

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Logger returns the logger of the named module.
func (e *Engine) Logger(name string) *zap.Logger { return e.logs.Module(name) }

// GLFW returns the bound GLFW API, or nil before Startup.
func (e *Engine) GLFW() *glfw.API { return e.glfw }

// GL returns the OpenGL context, or nil before Startup.
func (e *Engine) GL() *gl.Context { return e.gl }

// Window returns the main window, or nil before Startup.
func (e *Engine) Window() *window.Window {
	if e.windows == nil {
		return nil
	}
	return e.windows.Main()
}

// Reports returns the population report of every binding table loaded so far.
func (e *Engine) Reports() []binding.Report { return e.reports }

// Startup loads GLFW, opens the window, loads OpenGL through the window's
// context and starts the modules. A failure after glfwInit terminates GLFW
// before returning.
func (e *Engine) Startup() error {
	lib := e.cfg.Library

	glfwPath := lib.Locate(glfw.LibraryEnv, lib.GLFW, glfw.LibraryNames)
	glfwLib, ok := e.open(glfwPath)
	if !ok {
		e.log.Error("failed to load GLFW", zap.String("path", glfwPath))
		return &LoadError{Library: "GLFW", Path: glfwPath}
	}
	api, report, err := glfw.Load(glfwLib, e.bind, e.logs.Module("GLFW"))
	e.reports = append(e.reports, report)
	if err != nil {
		return fmt.Errorf("failed to bind GLFW: %w", err)
	}
	e.glfw = api

	if err := api.Init(); err != nil {
		return err
	}

	e.windows = window.NewManager(api, e.logs.Module("Window"))
	w, err := e.windows.Create(e.cfg.Window)
	if err != nil {
		api.Terminate()
		return err
	}

	resolvers := []binding.Resolver{api.ProcResolver()}
	glPath := lib.Locate(gl.LibraryEnv, lib.GL, gl.LibraryNames)
	if glLib, ok := e.open(glPath); ok {
		resolvers = append(resolvers, glLib)
	} else {
		e.log.Warn("OpenGL library not loaded, resolving through GLFW only", zap.String("path", glPath))
	}

	ctx, report, err := gl.Load(binding.Chain(resolvers...), e.bind, e.logs.Module("OpenGL"))
	e.reports = append(e.reports, report)
	if err != nil {
		e.windows.Destroy()
		api.Terminate()
		return fmt.Errorf("failed to bind OpenGL: %w", err)
	}
	e.gl = ctx
	w.AttachGL(ctx)

	e.modules.startup(e, e.log)
	w.OnRender(func() { e.modules.render(e) })
	e.started = true
	e.log.Info("engine started",
		zap.Stringer("glfw", api.Version()),
		zap.Stringer("gl", ctx.Version()))
	return nil
}

// Run updates the window until it closes or ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	if !e.started {
		return ErrNotStarted
	}
	w := e.windows.Main()
	for !w.Hidden() {
		select {
		case <-ctx.Done():
			w.Close()
			return ctx.Err()
		default:
		}
		w.Update()
	}
	return nil
}

// Shutdown stops the modules in reverse order, destroys the window,
// terminates GLFW and flushes the logs. Log files the engine opened itself
// are closed; a setup passed with WithLogging is only flushed.
func (e *Engine) Shutdown() error {
	if e.down {
		return nil
	}
	e.down = true
	if e.started {
		e.modules.shutdown(e, e.log)
		e.started = false
	}
	if e.windows != nil {
		e.windows.Destroy()
	}
	if e.glfw != nil {
		e.glfw.Terminate()
		e.glfw = nil
	}
	e.log.Info("engine shut down")
	if e.ownLogs {
		return e.logs.Close()
	}
	return e.logs.Sync()
}
