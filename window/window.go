// Package window owns the application window and its OpenGL context.
// Only one window is supported.
package window

import (
	"errors"
	"fmt"

	"github.com/agiangrant/beagle/gl"
	"github.com/agiangrant/beagle/glfw"
	"go.uber.org/zap"
)

var (
	// ErrCreate is returned when glfwCreateWindow returns no window.
	ErrCreate = errors.New("window: failed to create window")
	// ErrMultipleWindows is returned when a second window is requested.
	ErrMultipleWindows = errors.New("window: multiple windows are not supported")
)

// Config describes the window and the context it requests.
type Config struct {
	Width        int        `toml:"width"`
	Height       int        `toml:"height"`
	Title        string     `toml:"title"`
	ContextMajor int        `toml:"context_major"`
	ContextMinor int        `toml:"context_minor"`
	CoreProfile  bool       `toml:"core_profile"`
	DoubleBuffer bool       `toml:"double_buffer"`
	ClearColor   [4]float32 `toml:"clear_color"`
}

// DefaultConfig returns an 800x600 window with an OpenGL 3.3 core context.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		Title:        "Beagle",
		ContextMajor: 3,
		ContextMinor: 3,
		CoreProfile:  true,
		DoubleBuffer: true,
		ClearColor:   [4]float32{1, 0, 0, 1},
	}
}

// Validate reports configuration values GLFW would reject.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", c.Width, c.Height)
	}
	if c.ContextMajor < 1 || c.ContextMinor < 0 {
		return fmt.Errorf("window: invalid context version %d.%d", c.ContextMajor, c.ContextMinor)
	}
	return nil
}

// Window is a GLFW window with its OpenGL context.
type Window struct {
	api    *glfw.API
	handle uintptr
	cfg    Config
	gl     *gl.Context
	log    *zap.Logger
	hidden bool
	render func()
}

func hint(f *glfw.Functions, name int32, value int32) {
	f.WindowHint(name, value)
}

func boolHint(b bool) int32 {
	if b {
		return glfw.True
	}
	return glfw.False
}

// New applies the context hints and creates the window. The window's
// context is made current before New returns.
func New(api *glfw.API, cfg Config, log *zap.Logger) (*Window, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := api.Functions()
	if f.WindowHint == nil || f.CreateWindow == nil || f.MakeContextCurrent == nil {
		return nil, fmt.Errorf("%w: window creation", glfw.ErrUnbound)
	}

	hint(f, glfw.ClientAPI, glfw.OpenGLAPI)
	hint(f, glfw.ContextVersionMajor, int32(cfg.ContextMajor))
	hint(f, glfw.ContextVersionMinor, int32(cfg.ContextMinor))
	if cfg.CoreProfile {
		hint(f, glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		// macOS refuses core contexts without it.
		hint(f, glfw.OpenGLForwardCompat, glfw.True)
	}
	hint(f, glfw.DoubleBuffer, boolHint(cfg.DoubleBuffer))

	handle := f.CreateWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title, 0, 0)
	if handle == 0 {
		log.Error("failed to create window",
			zap.String("title", cfg.Title),
			zap.Int("width", cfg.Width),
			zap.Int("height", cfg.Height))
		return nil, ErrCreate
	}
	log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height))

	w := &Window{api: api, handle: handle, cfg: cfg, log: log}
	f.MakeContextCurrent(handle)
	api.OnFramebufferSize(handle, w.resize)
	return w, nil
}

// Handle returns the native GLFW window handle.
func (w *Window) Handle() uintptr { return w.handle }

// Config returns the configuration the window was created with.
func (w *Window) Config() Config { return w.cfg }

// GL returns the attached OpenGL context, or nil.
func (w *Window) GL() *gl.Context { return w.gl }

// AttachGL hands the window the OpenGL context loaded for it and sets the
// viewport to the current framebuffer size.
func (w *Window) AttachGL(c *gl.Context) {
	w.gl = c
	width, height := w.api.FramebufferSize(w.handle)
	if width == 0 && height == 0 {
		width, height = int32(w.cfg.Width), int32(w.cfg.Height)
	}
	w.resize(width, height)
}

func (w *Window) resize(width, height int32) {
	w.log.Debug("framebuffer resized", zap.Int32("width", width), zap.Int32("height", height))
	if w.gl == nil || w.gl.Functions().Viewport == nil {
		return
	}
	w.gl.Functions().Viewport(0, 0, width, height)
}

// ShouldClose reports whether the window was asked to close.
func (w *Window) ShouldClose() bool {
	f := w.api.Functions()
	if f.WindowShouldClose == nil {
		return false
	}
	return f.WindowShouldClose(w.handle) != glfw.False
}

// Close asks the window to close at the end of the current frame.
func (w *Window) Close() {
	if f := w.api.Functions(); f.SetWindowShouldClose != nil {
		f.SetWindowShouldClose(w.handle, glfw.True)
	}
}

// OnRender sets the function drawing each frame between clear and swap.
// It only runs once an OpenGL context is attached.
func (w *Window) OnRender(fn func()) { w.render = fn }

// Hidden reports whether the window was hidden after a close request.
func (w *Window) Hidden() bool { return w.hidden }

// Update renders one frame: clear, draw, handle input, swap, poll events.
// Once the window is asked to close it is hidden.
func (w *Window) Update() {
	f := w.api.Functions()
	if f.MakeContextCurrent != nil {
		f.MakeContextCurrent(w.handle)
	}

	if w.gl != nil {
		fn := w.gl.Functions()
		if fn.ClearColor != nil && fn.Clear != nil {
			c := w.cfg.ClearColor
			fn.ClearColor(c[0], c[1], c[2], c[3])
			fn.Clear(gl.COLOR_BUFFER_BIT)
		}
		if w.render != nil {
			w.render()
		}
	}

	w.processInput()

	if f.SwapBuffers != nil {
		f.SwapBuffers(w.handle)
	}
	if f.PollEvents != nil {
		f.PollEvents()
	}

	if !w.hidden && w.ShouldClose() {
		if f.HideWindow != nil {
			f.HideWindow(w.handle)
		}
		w.hidden = true
		w.log.Info("window closed", zap.String("title", w.cfg.Title))
	}
}

func (w *Window) processInput() {
	f := w.api.Functions()
	if f.GetKey == nil {
		return
	}
	if f.GetKey(w.handle, glfw.KeyEscape) == glfw.Press {
		w.Close()
	}
}

// Destroy destroys the native window.
func (w *Window) Destroy() {
	if w.handle == 0 {
		return
	}
	w.api.Forget(w.handle)
	if f := w.api.Functions(); f.DestroyWindow != nil {
		f.DestroyWindow(w.handle)
	}
	w.handle = 0
}
