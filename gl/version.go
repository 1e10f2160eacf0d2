package gl

import (
	"fmt"

	"github.com/agiangrant/beagle/internal/binding"
	"github.com/agiangrant/beagle/internal/dynlib"
)

// Version is an OpenGL version encoded as major*100 + minor*10, the same
// numbering GLSL uses (3.3 is 330).
type Version int

// V returns the Version for major.minor.
func V(major, minor int) Version {
	return Version(major*100 + minor*10)
}

func (v Version) Major() int { return int(v) / 100 }
func (v Version) Minor() int { return int(v) % 100 / 10 }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

const (
	V1_0 Version = 100
	V1_1 Version = 110
	V1_2 Version = 120
	V1_3 Version = 130
	V1_4 Version = 140
	V1_5 Version = 150
	V2_0 Version = 200
	V2_1 Version = 210
	V3_0 Version = 300
	V3_1 Version = 310
	V3_2 Version = 320
	V3_3 Version = 330
	V4_0 Version = 400
	V4_1 Version = 410
	V4_2 Version = 420
	V4_3 Version = 430
	V4_4 Version = 440
	V4_5 Version = 450
	V4_6 Version = 460
)

// Ladder pairs each version with an entry point introduced in it.
var Ladder = []binding.Rung{
	{Tier: binding.Tier(V1_0), Slot: "glClear"},
	{Tier: binding.Tier(V1_1), Slot: "glGenTextures"},
	{Tier: binding.Tier(V1_2), Slot: "glDrawRangeElements"},
	{Tier: binding.Tier(V1_3), Slot: "glActiveTexture"},
	{Tier: binding.Tier(V1_4), Slot: "glBlendFuncSeparate"},
	{Tier: binding.Tier(V1_5), Slot: "glGenBuffers"},
	{Tier: binding.Tier(V2_0), Slot: "glCreateShader"},
	{Tier: binding.Tier(V2_1), Slot: "glUniformMatrix2x3fv"},
	{Tier: binding.Tier(V3_0), Slot: "glGenVertexArrays"},
	{Tier: binding.Tier(V3_1), Slot: "glDrawArraysInstanced"},
	{Tier: binding.Tier(V3_2), Slot: "glDrawElementsBaseVertex"},
	{Tier: binding.Tier(V3_3), Slot: "glVertexAttribDivisor"},
	{Tier: binding.Tier(V4_0), Slot: "glDrawArraysIndirect"},
	{Tier: binding.Tier(V4_1), Slot: "glProgramUniform1f"},
	{Tier: binding.Tier(V4_2), Slot: "glTexStorage2D"},
	{Tier: binding.Tier(V4_3), Slot: "glDispatchCompute"},
	{Tier: binding.Tier(V4_4), Slot: "glBufferStorage"},
	{Tier: binding.Tier(V4_5), Slot: "glCreateBuffers"},
	{Tier: binding.Tier(V4_6), Slot: "glSpecializeShader"},
}

// LibraryNames are the default OpenGL library filenames.
var LibraryNames = dynlib.Names{
	POSIX:   "libGL.so.1",
	Darwin:  "/System/Library/Frameworks/OpenGL.framework/OpenGL",
	Windows: "opengl32.dll",
}

// LibraryEnv overrides the OpenGL library path.
const LibraryEnv = "BEAGLE_GL_LIB"
