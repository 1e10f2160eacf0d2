// Package gl binds OpenGL entry points from a shared library and builds
// buffer upload, shader build and texture recycling helpers on top of them.
//
// A Context is created once, after a GL context is current, and is then
// used from the thread that owns that GL context only.
package gl

import (
	"github.com/agiangrant/beagle/internal/binding"
	"go.uber.org/zap"
)

// Context holds the bound entry points and the version detected from them.
// The version is fixed at creation.
type Context struct {
	fn      *Functions
	table   *binding.Table
	version Version
	log     *zap.Logger
}

// Load populates a fresh function table from r and detects the version.
// It fails only when no version could be detected.
func Load(r binding.Resolver, bind binding.BindFunc, log *zap.Logger) (*Context, binding.Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fn := &Functions{}
	table := fn.Table()
	report := table.Populate(r, bind)

	tier, err := binding.Detect(table, Ladder)
	if err != nil {
		return nil, report, err
	}

	c := &Context{
		fn:      fn,
		table:   table,
		version: Version(tier),
		log:     log,
	}
	log.Info("OpenGL entry points bound",
		zap.Stringer("version", c.version),
		zap.Int("bound", len(report.Bound)),
		zap.Int("missing", len(report.Missing)))
	return c, report, nil
}

// NewContext wraps functions bound by other means. Its Table is nil.
func NewContext(fn *Functions, version Version, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		fn:      fn,
		version: version,
		log:     log,
	}
}

// Functions returns the bound entry points.
func (c *Context) Functions() *Functions { return c.fn }

// Version returns the detected version.
func (c *Context) Version() Version { return c.version }

// Table returns the binding table the context was populated from.
func (c *Context) Table() *binding.Table { return c.table }

// Supports reports whether the detected version is at least v.
func (c *Context) Supports(v Version) bool { return c.version >= v }

func (c *Context) require(v Version, op string) error {
	if c.version < v {
		return &VersionError{Op: op, Required: v, Detected: c.version}
	}
	return nil
}

// DriverInfo holds the strings the driver reports about itself.
type DriverInfo struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

// DriverInfo queries glGetString. A GL context must be current.
func (c *Context) DriverInfo() DriverInfo {
	if c.fn.GetString == nil {
		return DriverInfo{}
	}
	info := DriverInfo{
		Vendor:   goString(c.fn.GetString(VENDOR)),
		Renderer: goString(c.fn.GetString(RENDERER)),
		Version:  goString(c.fn.GetString(VERSION)),
	}
	if c.version >= V2_0 {
		info.GLSL = goString(c.fn.GetString(SHADING_LANGUAGE_VERSION))
	}
	return info
}

// checkError drains glGetError and returns the first code reported.
func (c *Context) checkError() uint32 {
	if c.fn.GetError == nil {
		return NO_ERROR
	}
	first := uint32(NO_ERROR)
	for i := 0; i < 8; i++ {
		code := c.fn.GetError()
		if code == NO_ERROR {
			break
		}
		if first == NO_ERROR {
			first = code
		}
	}
	return first
}
