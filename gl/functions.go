package gl

import (
	"unsafe"

	"github.com/agiangrant/beagle/internal/binding"
)

// Functions holds the OpenGL entry points. A nil field is an entry point
// the loaded library did not export.
//
// Pointer arguments are typed pointers so the memory they name stays
// visible to the runtime. Plain uintptr arguments are byte offsets into
// the currently bound buffer object.
type Functions struct {
	// 1.0 / 1.1
	Clear          func(mask uint32)
	ClearColor     func(r, g, b, a float32)
	Viewport       func(x, y, width, height int32)
	GetError       func() uint32
	GetString      func(name uint32) *byte
	GetIntegerv    func(pname uint32, data *int32)
	Enable         func(capability uint32)
	Disable        func(capability uint32)
	BlendFunc      func(sfactor, dfactor uint32)
	DrawArrays     func(mode uint32, first, count int32)
	DrawElements   func(mode uint32, count int32, typ uint32, indices uintptr)
	GenTextures    func(n int32, textures *uint32)
	DeleteTextures func(n int32, textures *uint32)
	BindTexture    func(target, texture uint32)
	TexImage2D     func(target uint32, level, internalFormat, width, height, border int32, format, typ uint32, pixels unsafe.Pointer)
	TexParameteri  func(target, pname uint32, param int32)

	// 1.2 - 1.5
	DrawRangeElements func(mode, start, end uint32, count int32, typ uint32, indices uintptr)
	ActiveTexture     func(texture uint32)
	BlendFuncSeparate func(srcRGB, dstRGB, srcAlpha, dstAlpha uint32)
	GenBuffers        func(n int32, buffers *uint32)
	DeleteBuffers     func(n int32, buffers *uint32)
	BindBuffer        func(target, buffer uint32)
	BufferData        func(target uint32, size int, data unsafe.Pointer, usage uint32)
	BufferSubData     func(target uint32, offset, size int, data unsafe.Pointer)

	// 2.0 / 2.1
	CreateShader             func(typ uint32) uint32
	ShaderSource             func(shader uint32, count int32, sources **byte, lengths *int32)
	CompileShader            func(shader uint32)
	GetShaderiv              func(shader, pname uint32, params *int32)
	GetShaderInfoLog         func(shader uint32, bufSize int32, length *int32, infoLog *byte)
	DeleteShader             func(shader uint32)
	CreateProgram            func() uint32
	AttachShader             func(program, shader uint32)
	DetachShader             func(program, shader uint32)
	LinkProgram              func(program uint32)
	GetProgramiv             func(program, pname uint32, params *int32)
	GetProgramInfoLog        func(program uint32, bufSize int32, length *int32, infoLog *byte)
	UseProgram               func(program uint32)
	DeleteProgram            func(program uint32)
	GetUniformLocation       func(program uint32, name string) int32
	GetAttribLocation        func(program uint32, name string) int32
	Uniform1i                func(location, v0 int32)
	Uniform4f                func(location int32, v0, v1, v2, v3 float32)
	UniformMatrix4fv         func(location, count int32, transpose bool, value *float32)
	EnableVertexAttribArray  func(index uint32)
	DisableVertexAttribArray func(index uint32)
	VertexAttribPointer      func(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr)
	UniformMatrix2x3fv       func(location, count int32, transpose bool, value *float32)

	// 3.x
	GenVertexArrays        func(n int32, arrays *uint32)
	DeleteVertexArrays     func(n int32, arrays *uint32)
	BindVertexArray        func(array uint32)
	GenerateMipmap         func(target uint32)
	DrawArraysInstanced    func(mode uint32, first, count, instanceCount int32)
	DrawElementsBaseVertex func(mode uint32, count int32, typ uint32, indices uintptr, baseVertex int32)
	VertexAttribDivisor    func(index, divisor uint32)

	// 4.x
	DrawArraysIndirect func(mode uint32, indirect uintptr)
	ProgramUniform1f   func(program uint32, location int32, v0 float32)
	TexStorage2D       func(target uint32, levels int32, internalFormat uint32, width, height int32)
	DispatchCompute    func(x, y, z uint32)
	BufferStorage      func(target uint32, size int, data unsafe.Pointer, flags uint32)
	CreateBuffers      func(n int32, buffers *uint32)
	SpecializeShader   func(shader uint32, entryPoint string, numConstants uint32, constantIndex, constantValue *uint32)
}

// Table declares every entry point of f by its exported symbol name.
func (f *Functions) Table() *binding.Table {
	return binding.NewTable("gl",
		binding.Slot{Name: "glClear", Fn: &f.Clear},
		binding.Slot{Name: "glClearColor", Fn: &f.ClearColor},
		binding.Slot{Name: "glViewport", Fn: &f.Viewport},
		binding.Slot{Name: "glGetError", Fn: &f.GetError},
		binding.Slot{Name: "glGetString", Fn: &f.GetString},
		binding.Slot{Name: "glGetIntegerv", Fn: &f.GetIntegerv},
		binding.Slot{Name: "glEnable", Fn: &f.Enable},
		binding.Slot{Name: "glDisable", Fn: &f.Disable},
		binding.Slot{Name: "glBlendFunc", Fn: &f.BlendFunc},
		binding.Slot{Name: "glDrawArrays", Fn: &f.DrawArrays},
		binding.Slot{Name: "glDrawElements", Fn: &f.DrawElements},
		binding.Slot{Name: "glGenTextures", Fn: &f.GenTextures},
		binding.Slot{Name: "glDeleteTextures", Fn: &f.DeleteTextures},
		binding.Slot{Name: "glBindTexture", Fn: &f.BindTexture},
		binding.Slot{Name: "glTexImage2D", Fn: &f.TexImage2D},
		binding.Slot{Name: "glTexParameteri", Fn: &f.TexParameteri},

		binding.Slot{Name: "glDrawRangeElements", Fn: &f.DrawRangeElements},
		binding.Slot{Name: "glActiveTexture", Fn: &f.ActiveTexture},
		binding.Slot{Name: "glBlendFuncSeparate", Fn: &f.BlendFuncSeparate},
		binding.Slot{Name: "glGenBuffers", Fn: &f.GenBuffers},
		binding.Slot{Name: "glDeleteBuffers", Fn: &f.DeleteBuffers},
		binding.Slot{Name: "glBindBuffer", Fn: &f.BindBuffer},
		binding.Slot{Name: "glBufferData", Fn: &f.BufferData},
		binding.Slot{Name: "glBufferSubData", Fn: &f.BufferSubData},

		binding.Slot{Name: "glCreateShader", Fn: &f.CreateShader},
		binding.Slot{Name: "glShaderSource", Fn: &f.ShaderSource},
		binding.Slot{Name: "glCompileShader", Fn: &f.CompileShader},
		binding.Slot{Name: "glGetShaderiv", Fn: &f.GetShaderiv},
		binding.Slot{Name: "glGetShaderInfoLog", Fn: &f.GetShaderInfoLog},
		binding.Slot{Name: "glDeleteShader", Fn: &f.DeleteShader},
		binding.Slot{Name: "glCreateProgram", Fn: &f.CreateProgram},
		binding.Slot{Name: "glAttachShader", Fn: &f.AttachShader},
		binding.Slot{Name: "glDetachShader", Fn: &f.DetachShader},
		binding.Slot{Name: "glLinkProgram", Fn: &f.LinkProgram},
		binding.Slot{Name: "glGetProgramiv", Fn: &f.GetProgramiv},
		binding.Slot{Name: "glGetProgramInfoLog", Fn: &f.GetProgramInfoLog},
		binding.Slot{Name: "glUseProgram", Fn: &f.UseProgram},
		binding.Slot{Name: "glDeleteProgram", Fn: &f.DeleteProgram},
		binding.Slot{Name: "glGetUniformLocation", Fn: &f.GetUniformLocation},
		binding.Slot{Name: "glGetAttribLocation", Fn: &f.GetAttribLocation},
		binding.Slot{Name: "glUniform1i", Fn: &f.Uniform1i},
		binding.Slot{Name: "glUniform4f", Fn: &f.Uniform4f},
		binding.Slot{Name: "glUniformMatrix4fv", Fn: &f.UniformMatrix4fv},
		binding.Slot{Name: "glEnableVertexAttribArray", Fn: &f.EnableVertexAttribArray},
		binding.Slot{Name: "glDisableVertexAttribArray", Fn: &f.DisableVertexAttribArray},
		binding.Slot{Name: "glVertexAttribPointer", Fn: &f.VertexAttribPointer},
		binding.Slot{Name: "glUniformMatrix2x3fv", Fn: &f.UniformMatrix2x3fv},

		binding.Slot{Name: "glGenVertexArrays", Fn: &f.GenVertexArrays},
		binding.Slot{Name: "glDeleteVertexArrays", Fn: &f.DeleteVertexArrays},
		binding.Slot{Name: "glBindVertexArray", Fn: &f.BindVertexArray},
		binding.Slot{Name: "glGenerateMipmap", Fn: &f.GenerateMipmap},
		binding.Slot{Name: "glDrawArraysInstanced", Fn: &f.DrawArraysInstanced},
		binding.Slot{Name: "glDrawElementsBaseVertex", Fn: &f.DrawElementsBaseVertex},
		binding.Slot{Name: "glVertexAttribDivisor", Fn: &f.VertexAttribDivisor},

		binding.Slot{Name: "glDrawArraysIndirect", Fn: &f.DrawArraysIndirect},
		binding.Slot{Name: "glProgramUniform1f", Fn: &f.ProgramUniform1f},
		binding.Slot{Name: "glTexStorage2D", Fn: &f.TexStorage2D},
		binding.Slot{Name: "glDispatchCompute", Fn: &f.DispatchCompute},
		binding.Slot{Name: "glBufferStorage", Fn: &f.BufferStorage},
		binding.Slot{Name: "glCreateBuffers", Fn: &f.CreateBuffers},
		binding.Slot{Name: "glSpecializeShader", Fn: &f.SpecializeShader},
	)
}
