package gl

import (
	"fmt"
	"os"

	"github.com/agiangrant/beagle/internal/nativemem"
	"go.uber.org/zap"
)

// Stage is a shader stage, valued as its GL shader type.
type Stage uint32

const (
	StageVertex         Stage = VERTEX_SHADER
	StageFragment       Stage = FRAGMENT_SHADER
	StageGeometry       Stage = GEOMETRY_SHADER
	StageTessControl    Stage = TESS_CONTROL_SHADER
	StageTessEvaluation Stage = TESS_EVALUATION_SHADER
	StageCompute        Stage = COMPUTE_SHADER
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageGeometry:
		return "geometry"
	case StageTessControl:
		return "tessellation control"
	case StageTessEvaluation:
		return "tessellation evaluation"
	case StageCompute:
		return "compute"
	default:
		return fmt.Sprintf("stage(0x%x)", uint32(s))
	}
}

// ShaderSource is the text of one shader stage.
type ShaderSource struct {
	Text  []byte
	Stage Stage
}

// LoadShaderSource reads a shader stage from a file.
func LoadShaderSource(path string, stage Stage) (ShaderSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	return ShaderSource{Text: data, Stage: stage}, nil
}

// BuildProgram compiles every source, links them into a program and returns
// the program id.
//
// A compile failure returns *ShaderCompileError and deletes the shaders
// created so far. A link failure returns *ProgramLinkError and leaves the
// program and its shaders alive. On success every shader is detached and
// deleted.
func BuildProgram(c *Context, sources []ShaderSource) (uint32, error) {
	if err := c.require(V2_0, "BuildProgram"); err != nil {
		return 0, err
	}
	f := c.fn
	if err := requireSlots(
		slotCheck{"glCreateShader", f.CreateShader != nil},
		slotCheck{"glShaderSource", f.ShaderSource != nil},
		slotCheck{"glCompileShader", f.CompileShader != nil},
		slotCheck{"glGetShaderiv", f.GetShaderiv != nil},
		slotCheck{"glGetShaderInfoLog", f.GetShaderInfoLog != nil},
		slotCheck{"glDeleteShader", f.DeleteShader != nil},
		slotCheck{"glCreateProgram", f.CreateProgram != nil},
		slotCheck{"glAttachShader", f.AttachShader != nil},
		slotCheck{"glDetachShader", f.DetachShader != nil},
		slotCheck{"glLinkProgram", f.LinkProgram != nil},
		slotCheck{"glGetProgramiv", f.GetProgramiv != nil},
		slotCheck{"glGetProgramInfoLog", f.GetProgramInfoLog != nil},
	); err != nil {
		return 0, err
	}
	if len(sources) == 0 {
		return 0, ErrNoSources
	}

	shaders := make([]uint32, 0, len(sources))
	for _, src := range sources {
		shader, err := compileShader(c, src)
		if err != nil {
			for _, s := range shaders {
				f.DeleteShader(s)
			}
			return 0, err
		}
		shaders = append(shaders, shader)
	}

	program := f.CreateProgram()
	if program == 0 {
		for _, s := range shaders {
			f.DeleteShader(s)
		}
		return 0, fmt.Errorf("gl: glCreateProgram returned 0")
	}
	for _, s := range shaders {
		f.AttachShader(program, s)
	}
	f.LinkProgram(program)

	if getiv(f.GetProgramiv, program, LINK_STATUS) == FALSE {
		log := infoLog(f.GetProgramiv, f.GetProgramInfoLog, program)
		c.log.Error("program link failed", zap.Uint32("program", program), zap.String("log", log))
		return 0, &ProgramLinkError{Program: program, Shaders: shaders, Log: log}
	}

	for _, s := range shaders {
		f.DetachShader(program, s)
		f.DeleteShader(s)
	}
	c.log.Debug("program linked", zap.Uint32("program", program), zap.Int("stages", len(shaders)))
	return program, nil
}

func compileShader(c *Context, src ShaderSource) (uint32, error) {
	f := c.fn
	shader := f.CreateShader(uint32(src.Stage))
	if shader == 0 {
		return 0, fmt.Errorf("gl: glCreateShader(%s) returned 0", src.Stage)
	}

	// glShaderSource takes an array of string pointers; those must not
	// point into the Go heap, so the text is staged in native memory.
	text, err := nativemem.Alloc(len(src.Text) + 1)
	if err != nil {
		f.DeleteShader(shader)
		return 0, fmt.Errorf("gl: stage %s source: %w", src.Stage, err)
	}
	copy(text.Bytes(), src.Text)
	source := (*byte)(text.Pointer())
	length := int32(len(src.Text))
	f.ShaderSource(shader, 1, &source, &length)
	if ferr := text.Free(); ferr != nil {
		c.log.Warn("failed to release shader source buffer", zap.Error(ferr))
	}

	f.CompileShader(shader)
	if getiv(f.GetShaderiv, shader, COMPILE_STATUS) == FALSE {
		log := infoLog(f.GetShaderiv, f.GetShaderInfoLog, shader)
		f.DeleteShader(shader)
		c.log.Error("shader compile failed", zap.Stringer("stage", src.Stage), zap.String("log", log))
		return 0, &ShaderCompileError{Stage: src.Stage, Log: log}
	}
	return shader, nil
}

func getiv(get func(id, pname uint32, params *int32), id, pname uint32) int32 {
	var v int32
	get(id, pname, &v)
	return v
}

// infoLog asks for the log length first and then fetches exactly that many
// bytes, so logs of any size come back whole.
func infoLog(get func(id, pname uint32, params *int32), getLog func(id uint32, bufSize int32, length *int32, infoLog *byte), id uint32) string {
	n := getiv(get, id, INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	var written int32
	getLog(id, n, &written, &buf[0])
	if written < 0 || written > n {
		written = n
	}
	// The reported length includes the terminator; the written count does not.
	if written == n && buf[n-1] == 0 {
		written--
	}
	return string(buf[:written])
}
