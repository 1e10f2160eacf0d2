package beagle

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrDuplicateModule is returned when a module name is registered twice.
var ErrDuplicateModule = errors.New("beagle: module already registered")

// Module is a unit of engine functionality started after the window and the
// OpenGL context exist.
type Module interface {
	// Name identifies the module in the registry.
	Name() string
	// LogPrefix names the module's logger and log file.
	LogPrefix() string
	Startup(e *Engine) error
	Shutdown(e *Engine) error
}

// Renderer is implemented by modules that draw every frame.
type Renderer interface {
	Render(e *Engine)
}

// Registry holds modules in registration order.
type Registry struct {
	modules []Module
	names   map[string]bool
	started []Module
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]bool)}
}

// Register adds m. Names must be unique.
func (r *Registry) Register(m Module) error {
	if r.names[m.Name()] {
		return fmt.Errorf("%w: %s", ErrDuplicateModule, m.Name())
	}
	r.names[m.Name()] = true
	r.modules = append(r.modules, m)
	return nil
}

// Modules returns the registered modules in registration order.
func (r *Registry) Modules() []Module { return r.modules }

// Started returns the modules whose Startup succeeded.
func (r *Registry) Started() []Module { return r.started }

// startup starts every module in order. A failing module is logged and
// skipped; the rest still start.
func (r *Registry) startup(e *Engine, log *zap.Logger) {
	for _, m := range r.modules {
		log.Info("Starting up module " + m.Name() + "...")
		if err := m.Startup(e); err != nil {
			log.Error("module failed to start", zap.String("module", m.Name()), zap.Error(err))
			continue
		}
		r.started = append(r.started, m)
		log.Info("Module " + m.Name() + " started!")
	}
}

// render calls every started Renderer in start order.
func (r *Registry) render(e *Engine) {
	for _, m := range r.started {
		if rm, ok := m.(Renderer); ok {
			rm.Render(e)
		}
	}
}

// shutdown stops started modules in reverse order.
func (r *Registry) shutdown(e *Engine, log *zap.Logger) {
	for i := len(r.started) - 1; i >= 0; i-- {
		m := r.started[i]
		if err := m.Shutdown(e); err != nil {
			log.Error("module failed to shut down", zap.String("module", m.Name()), zap.Error(err))
			continue
		}
		log.Info("Module " + m.Name() + " shut down")
	}
	r.started = nil
}
