package nativetest

import (
	"unsafe"

	"github.com/agiangrant/beagle/gl"
	"github.com/agiangrant/beagle/glfw"
)

// GL returns a library exporting every OpenGL slot except the version
// markers above upTo. Object creation hands out increasing ids, status
// queries report success and everything else does nothing.
func GL(upTo gl.Version) *Library {
	markers := make(map[string]gl.Version, len(gl.Ladder))
	for _, r := range gl.Ladder {
		markers[r.Slot] = gl.Version(r.Tier)
	}

	l := New()
	for _, s := range (&gl.Functions{}).Table().Slots() {
		if v, ok := markers[s.Name]; ok && v > upTo {
			continue
		}
		l.Export(s.Name, nil)
	}

	var next uint32
	gen := func(n int32, out *uint32) {
		ids := unsafe.Slice(out, n)
		for i := range ids {
			next++
			ids[i] = next
		}
	}
	create := func() uint32 {
		next++
		return next
	}
	status := func(id, pname uint32, params *int32) {
		*params = gl.TRUE
		if pname == gl.INFO_LOG_LENGTH {
			*params = 0
		}
	}

	for _, name := range []string{"glGenBuffers", "glGenTextures", "glGenVertexArrays", "glCreateBuffers"} {
		if _, ok := l.Resolve(name); ok {
			l.Export(name, gen)
		}
	}
	if _, ok := l.Resolve("glCreateShader"); ok {
		l.Export("glCreateShader", func(typ uint32) uint32 { return create() })
		l.Export("glCreateProgram", create)
		l.Export("glGetShaderiv", status)
		l.Export("glGetProgramiv", status)
	}
	return l
}

// Window is the state behind the GLFW preset.
type Window struct {
	// Closing is the window's should-close flag.
	Closing bool
	// EscapeAfter presses escape once this many frames were swapped.
	// Negative never presses it.
	EscapeAfter int
	// InitFails makes glfwInit report failure.
	InitFails bool
	// GL answers glfwGetProcAddress. Nil resolves nothing.
	GL *Library
}

// GLFW returns a GLFW 3.3 library driving w. glfwSetFramebufferSizeCallback
// is not exported, so no native callback is ever created.
func GLFW(w *Window) *Library {
	l := New(
		"glfwTerminate", "glfwWindowHint", "glfwDestroyWindow", "glfwMakeContextCurrent",
		"glfwSwapBuffers", "glfwPollEvents", "glfwHideWindow", "glfwGetVersionString",
		"glfwGetFramebufferSize", "glfwCreateCursor", "glfwSetWindowMonitor", "glfwInitHint",
	)
	l.Export("glfwInit", func() int32 {
		if w.InitFails {
			return glfw.False
		}
		return glfw.True
	})
	l.Export("glfwCreateWindow", func(width, height int32, title string, monitor, share uintptr) uintptr {
		return 0x42
	})
	l.Export("glfwGetProcAddress", func(name string) uintptr {
		if w.GL == nil {
			return 0
		}
		addr, _ := w.GL.Resolve(name)
		return addr
	})
	l.Export("glfwWindowShouldClose", func(window uintptr) int32 {
		if w.Closing {
			return glfw.True
		}
		return glfw.False
	})
	l.Export("glfwSetWindowShouldClose", func(window uintptr, value int32) {
		w.Closing = value == glfw.True
	})
	l.Export("glfwGetKey", func(window uintptr, key int32) int32 {
		if key == glfw.KeyEscape && w.EscapeAfter >= 0 && l.Calls("glfwSwapBuffers") >= w.EscapeAfter {
			return glfw.Press
		}
		return glfw.Release
	})
	return l
}
