package glfw

import "github.com/agiangrant/beagle/internal/binding"

// Functions holds the GLFW entry points. Window and monitor handles are
// opaque uintptr values owned by GLFW.
type Functions struct {
	Init                       func() int32
	Terminate                  func()
	WindowHint                 func(hint, value int32)
	CreateWindow               func(width, height int32, title string, monitor, share uintptr) uintptr
	DestroyWindow              func(window uintptr)
	MakeContextCurrent         func(window uintptr)
	GetProcAddress             func(name string) uintptr
	SwapBuffers                func(window uintptr)
	PollEvents                 func()
	WindowShouldClose          func(window uintptr) int32
	SetWindowShouldClose       func(window uintptr, value int32)
	GetKey                     func(window uintptr, key int32) int32
	HideWindow                 func(window uintptr)
	GetFramebufferSize         func(window uintptr, width, height *int32)
	SetFramebufferSizeCallback func(window uintptr, callback uintptr) uintptr
	GetVersionString           func() string

	// Only used to detect the library version.
	CreateCursor     func(image uintptr, xhot, yhot int32) uintptr
	SetWindowMonitor func(window, monitor uintptr, x, y, width, height, refreshRate int32)
	InitHint         func(hint, value int32)
	GetPlatform      func() int32
}

// Table declares one slot per field.
func (f *Functions) Table() *binding.Table {
	return binding.NewTable("glfw",
		binding.Slot{Name: "glfwInit", Fn: &f.Init},
		binding.Slot{Name: "glfwTerminate", Fn: &f.Terminate},
		binding.Slot{Name: "glfwWindowHint", Fn: &f.WindowHint},
		binding.Slot{Name: "glfwCreateWindow", Fn: &f.CreateWindow},
		binding.Slot{Name: "glfwDestroyWindow", Fn: &f.DestroyWindow},
		binding.Slot{Name: "glfwMakeContextCurrent", Fn: &f.MakeContextCurrent},
		binding.Slot{Name: "glfwGetProcAddress", Fn: &f.GetProcAddress},
		binding.Slot{Name: "glfwSwapBuffers", Fn: &f.SwapBuffers},
		binding.Slot{Name: "glfwPollEvents", Fn: &f.PollEvents},
		binding.Slot{Name: "glfwWindowShouldClose", Fn: &f.WindowShouldClose},
		binding.Slot{Name: "glfwSetWindowShouldClose", Fn: &f.SetWindowShouldClose},
		binding.Slot{Name: "glfwGetKey", Fn: &f.GetKey},
		binding.Slot{Name: "glfwHideWindow", Fn: &f.HideWindow},
		binding.Slot{Name: "glfwGetFramebufferSize", Fn: &f.GetFramebufferSize},
		binding.Slot{Name: "glfwSetFramebufferSizeCallback", Fn: &f.SetFramebufferSizeCallback},
		binding.Slot{Name: "glfwGetVersionString", Fn: &f.GetVersionString},
		binding.Slot{Name: "glfwCreateCursor", Fn: &f.CreateCursor},
		binding.Slot{Name: "glfwSetWindowMonitor", Fn: &f.SetWindowMonitor},
		binding.Slot{Name: "glfwInitHint", Fn: &f.InitHint},
		binding.Slot{Name: "glfwGetPlatform", Fn: &f.GetPlatform},
	)
}
