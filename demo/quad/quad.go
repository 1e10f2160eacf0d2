// Package quad is a small module that draws one textured quad. It exercises
// the whole upload, shader and texture path on a live context.
package quad

import (
	"embed"
	"fmt"
	"unsafe"

	"github.com/agiangrant/beagle"
	"github.com/agiangrant/beagle/gl"
	"github.com/agiangrant/beagle/vecmath"
	"go.uber.org/zap"
)

//go:embed shaders
var shaders embed.FS

// Size is the quad's edge length in pixels.
const Size = 200

// Module draws a tinted quad in the middle of the window.
type Module struct {
	Tint [4]float32

	log     *zap.Logger
	program uint32
	vao     uint32
	vbo     uint32
	ibo     uint32
	texture uint32
	pool    *gl.TexturePool
	mvpLoc  int32
	tintLoc int32
	mvp     []float32
}

// New returns a quad module drawing in tint.
func New(tint [4]float32) *Module {
	return &Module{Tint: tint}
}

func (m *Module) Name() string      { return "Quad" }
func (m *Module) LogPrefix() string { return "Quad" }

// Startup builds the program, uploads the geometry and creates the texture.
func (m *Module) Startup(e *beagle.Engine) error {
	c := e.GL()
	m.log = e.Logger(m.LogPrefix())
	if !c.Supports(gl.V3_3) {
		return fmt.Errorf("quad needs OpenGL %s, have %s", gl.V3_3, c.Version())
	}

	f := c.Functions()
	if f.GenVertexArrays == nil || f.VertexAttribPointer == nil || f.TexImage2D == nil ||
		f.GetUniformLocation == nil || f.UniformMatrix4fv == nil || f.DrawElements == nil {
		return fmt.Errorf("quad: driver is missing required entry points")
	}

	sources, err := loadSources()
	if err != nil {
		return err
	}
	if m.program, err = gl.BuildProgram(c, sources); err != nil {
		return err
	}

	f.GenVertexArrays(1, &m.vao)
	f.BindVertexArray(m.vao)

	vertices := []float32{
		// x, y, u, v
		0, 0, 0, 0,
		Size, 0, 1, 0,
		Size, Size, 1, 1,
		0, Size, 0, 1,
	}
	if m.vbo, err = gl.Upload(c, vertices, 0, gl.ARRAY_BUFFER, gl.STATIC_DRAW); err != nil {
		return err
	}
	if m.ibo, err = gl.Upload(c, []uint16{0, 1, 2, 2, 3, 0}, 0, gl.ELEMENT_ARRAY_BUFFER, gl.STATIC_DRAW); err != nil {
		return err
	}

	const stride = 4 * 4
	f.EnableVertexAttribArray(0)
	f.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, 0)
	f.EnableVertexAttribArray(1)
	f.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, 2*4)
	f.BindVertexArray(0)

	m.pool = gl.NewTexturePool(c, gl.RecycleHandle)
	if m.texture, err = m.pool.Acquire(); err != nil {
		return err
	}
	white := []byte{255, 255, 255, 255}
	f.BindTexture(gl.TEXTURE_2D, m.texture)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	f.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&white[0]))

	m.mvpLoc = f.GetUniformLocation(m.program, "mvp")
	m.tintLoc = f.GetUniformLocation(m.program, "tint")

	cfg := e.Config().Window
	width, height := float32(cfg.Width), float32(cfg.Height)
	model := vecmath.Identity4()
	vecmath.Translate(model, 4, (width-Size)/2, (height-Size)/2, 0)
	// Column-major storage: projection * model.
	m.mvp = vecmath.MatMul(model, vecmath.Ortho(0, width, height, 0, -1, 1), 4)

	m.log.Info("quad ready",
		zap.Uint32("program", m.program),
		zap.Uint32("texture", m.texture))
	return nil
}

// Render draws the quad.
func (m *Module) Render(e *beagle.Engine) {
	f := e.GL().Functions()
	f.UseProgram(m.program)
	f.UniformMatrix4fv(m.mvpLoc, 1, false, &m.mvp[0])
	f.Uniform4f(m.tintLoc, m.Tint[0], m.Tint[1], m.Tint[2], m.Tint[3])
	f.ActiveTexture(gl.TEXTURE0)
	f.BindTexture(gl.TEXTURE_2D, m.texture)
	f.BindVertexArray(m.vao)
	f.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_SHORT, 0)
	f.BindVertexArray(0)
}

// Shutdown deletes everything Startup created.
func (m *Module) Shutdown(e *beagle.Engine) error {
	c := e.GL()
	f := c.Functions()
	if m.pool != nil {
		if err := m.pool.Release(m.texture); err != nil {
			return err
		}
		if err := m.pool.Drain(); err != nil {
			return err
		}
	}
	for _, id := range []uint32{m.vbo, m.ibo} {
		if id != 0 {
			if err := gl.DeleteBuffer(c, id); err != nil {
				return err
			}
		}
	}
	if m.vao != 0 {
		f.DeleteVertexArrays(1, &m.vao)
	}
	if m.program != 0 {
		f.DeleteProgram(m.program)
	}
	return nil
}

func loadSources() ([]gl.ShaderSource, error) {
	vert, err := shaders.ReadFile("shaders/quad.vert")
	if err != nil {
		return nil, err
	}
	frag, err := shaders.ReadFile("shaders/quad.frag")
	if err != nil {
		return nil, err
	}
	return []gl.ShaderSource{
		{Text: vert, Stage: gl.StageVertex},
		{Text: frag, Stage: gl.StageFragment},
	}, nil
}
