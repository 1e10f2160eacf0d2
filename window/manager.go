package window

import (
	"github.com/agiangrant/beagle/glfw"
	"go.uber.org/zap"
)

// Manager creates and tracks the application's window.
type Manager struct {
	api  *glfw.API
	log  *zap.Logger
	main *Window
}

// NewManager returns a manager creating windows through api.
func NewManager(api *glfw.API, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{api: api, log: log}
}

// Create creates the main window. A second call fails with
// ErrMultipleWindows while the first window exists.
func (m *Manager) Create(cfg Config) (*Window, error) {
	if m.main != nil {
		m.log.Error("multiple window creation is not supported yet",
			zap.String("existing", m.main.cfg.Title),
			zap.String("requested", cfg.Title))
		return nil, ErrMultipleWindows
	}
	w, err := New(m.api, cfg, m.log)
	if err != nil {
		return nil, err
	}
	m.main = w
	return w, nil
}

// Main returns the main window, or nil before Create.
func (m *Manager) Main() *Window { return m.main }

// Destroy destroys the main window, if any.
func (m *Manager) Destroy() {
	if m.main == nil {
		return
	}
	m.main.Destroy()
	m.main = nil
}
