package glfw

import (
	"fmt"

	"github.com/agiangrant/beagle/internal/binding"
	"github.com/agiangrant/beagle/internal/dynlib"
)

const (
	True  = 1
	False = 0

	Release = 0
	Press   = 1

	KeyEscape = 256
)

// Window hints.
const (
	Resizable           = 0x00020003
	Visible             = 0x00020004
	DoubleBuffer        = 0x00021010
	ClientAPI           = 0x00022001
	ContextVersionMajor = 0x00022002
	ContextVersionMinor = 0x00022003
	OpenGLForwardCompat = 0x00022006
	OpenGLProfile       = 0x00022008

	OpenGLAPI           = 0x00030001
	OpenGLCoreProfile   = 0x00032001
	OpenGLCompatProfile = 0x00032002
)

// Version is a GLFW version encoded as major*100 + minor*10.
type Version int

func V(major, minor int) Version { return Version(major*100 + minor*10) }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", int(v)/100, int(v)%100/10)
}

const (
	V3_0 Version = 300
	V3_1 Version = 310
	V3_2 Version = 320
	V3_3 Version = 330
	V3_4 Version = 340
)

// Ladder pairs each GLFW release with an entry point it introduced.
var Ladder = []binding.Rung{
	{Tier: binding.Tier(V3_0), Slot: "glfwCreateWindow"},
	{Tier: binding.Tier(V3_1), Slot: "glfwCreateCursor"},
	{Tier: binding.Tier(V3_2), Slot: "glfwSetWindowMonitor"},
	{Tier: binding.Tier(V3_3), Slot: "glfwInitHint"},
	{Tier: binding.Tier(V3_4), Slot: "glfwGetPlatform"},
}

// LibraryNames are the default GLFW library filenames.
var LibraryNames = dynlib.Names{
	POSIX:   "libglfw.so.3",
	Darwin:  "libglfw.3.dylib",
	Windows: "glfw3.dll",
}

// LibraryEnv overrides the GLFW library path.
const LibraryEnv = "BEAGLE_GLFW_LIB"
