package beagle

import (
	"github.com/agiangrant/beagle/gl"
	"go.uber.org/zap"
)

// DriverInfo is a module that logs what the OpenGL driver reports about
// itself and how much of each binding table resolved.
type DriverInfo struct {
	info gl.DriverInfo
}

func (m *DriverInfo) Name() string      { return "DriverInfo" }
func (m *DriverInfo) LogPrefix() string { return "Renderer" }

// Startup queries the driver strings.
func (m *DriverInfo) Startup(e *Engine) error {
	log := e.Logger(m.LogPrefix())
	m.info = e.GL().DriverInfo()
	log.Info("OpenGL driver",
		zap.String("vendor", m.info.Vendor),
		zap.String("renderer", m.info.Renderer),
		zap.String("version", m.info.Version),
		zap.String("glsl", m.info.GLSL),
		zap.Stringer("detected", e.GL().Version()))
	for _, r := range e.Reports() {
		log.Info("binding coverage",
			zap.String("surface", r.Surface),
			zap.Int("bound", len(r.Bound)),
			zap.Strings("missing", r.Missing))
	}
	return nil
}

func (m *DriverInfo) Shutdown(*Engine) error { return nil }

// Info returns the strings read at startup.
func (m *DriverInfo) Info() gl.DriverInfo { return m.info }
