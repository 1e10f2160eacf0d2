package dynlib

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

type fakeOpener struct {
	libs    map[string]map[string]uintptr
	opened  int
	closed  int
	handles map[uintptr]string
}

func newFakeOpener() *fakeOpener {
	return &fakeOpener{
		libs: map[string]map[string]uintptr{
			"libfake.so": {"a": 0x10, "b": 0x20},
		},
		handles: make(map[uintptr]string),
	}
}

func (f *fakeOpener) open(path string) (uintptr, error) {
	if _, ok := f.libs[path]; !ok {
		return 0, errors.New("no such file")
	}
	f.opened++
	h := uintptr(0x1000 + f.opened)
	f.handles[h] = path
	return h, nil
}

func (f *fakeOpener) lookup(handle uintptr, name string) (uintptr, error) {
	syms := f.libs[f.handles[handle]]
	addr, ok := syms[name]
	if !ok {
		return 0, errors.New("undefined symbol: " + name)
	}
	return addr, nil
}

func (f *fakeOpener) close(uintptr) error {
	f.closed++
	return nil
}

func TestLoaderOpenMissingLibrary(t *testing.T) {
	ld := newLoader(newFakeOpener())

	lib, ok := ld.Open("libmissing.so")
	if ok || lib != nil {
		t.Fatalf("Open(missing) = %v, %v, want nil, false", lib, ok)
	}
	if ld.Libraries() != 0 {
		t.Errorf("Libraries() = %d, want 0", ld.Libraries())
	}
}

func TestLoaderOneHandlePerPath(t *testing.T) {
	fo := newFakeOpener()
	ld := newLoader(fo)

	first, ok := ld.Open("libfake.so")
	if !ok {
		t.Fatal("expected libfake.so to open")
	}
	second, ok := ld.Open("libfake.so")
	if !ok {
		t.Fatal("expected second open to succeed")
	}
	if first != second {
		t.Error("expected the same library for the same path")
	}
	if fo.opened != 1 {
		t.Errorf("opener called %d times, want 1", fo.opened)
	}
}

func TestLibraryResolve(t *testing.T) {
	ld := newLoader(newFakeOpener())
	lib, _ := ld.Open("libfake.so")

	tests := []struct {
		name     string
		symbol   string
		wantAddr uintptr
		wantOK   bool
	}{
		{"present", "a", 0x10, true},
		{"second present", "b", 0x20, true},
		{"missing", "c", 0, false},
		{"case sensitive", "A", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, ok := lib.Resolve(tt.symbol)
			if addr != tt.wantAddr || ok != tt.wantOK {
				t.Errorf("Resolve(%q) = %#x, %v, want %#x, %v", tt.symbol, addr, ok, tt.wantAddr, tt.wantOK)
			}
		})
	}
}

func TestLibraryClose(t *testing.T) {
	fo := newFakeOpener()
	ld := newLoader(fo)
	lib, _ := ld.Open("libfake.so")

	if err := lib.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := lib.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close() error = %v, want ErrClosed", err)
	}
	if _, ok := lib.Resolve("a"); ok {
		t.Error("expected resolve on closed library to fail")
	}

	reopened, ok := ld.Open("libfake.so")
	if !ok || reopened == lib {
		t.Error("expected a fresh library after close")
	}
	if fo.closed != 1 {
		t.Errorf("close called %d times, want 1", fo.closed)
	}
}

func TestNilLibrary(t *testing.T) {
	var lib *Library
	if _, ok := lib.Resolve("a"); ok {
		t.Error("expected resolve on a nil library to fail")
	}
	if err := lib.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("Close() on nil library error = %v, want ErrClosed", err)
	}
}

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		goos string
		want Family
	}{
		{"linux", FamilyPOSIX},
		{"darwin", FamilyPOSIX},
		{"android", FamilyPOSIX},
		{"freebsd", FamilyPOSIX},
		{"windows", FamilyWindows},
		{"js", FamilyUnknown},
		{"plan9", FamilyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := FamilyOf(tt.goos); got != tt.want {
				t.Errorf("FamilyOf(%q) = %v, want %v", tt.goos, got, tt.want)
			}
		})
	}
}

func TestNamesDefaultName(t *testing.T) {
	names := Names{POSIX: "libGL.so.1", Darwin: "OpenGL", Windows: "opengl32.dll"}

	tests := []struct {
		goos string
		want string
	}{
		{"linux", "libGL.so.1"},
		{"freebsd", "libGL.so.1"},
		{"darwin", "OpenGL"},
		{"windows", "opengl32.dll"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := names.DefaultName(tt.goos); got != tt.want {
				t.Errorf("DefaultName(%q) = %q, want %q", tt.goos, got, tt.want)
			}
		})
	}

	noDarwin := Names{POSIX: "libglfw.so.3", Windows: "glfw3.dll"}
	if got := noDarwin.DefaultName("darwin"); got != "libglfw.so.3" {
		t.Errorf("DefaultName without darwin entry = %q, want POSIX name", got)
	}
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "libthing.so")
	if err := os.WriteFile(libPath, []byte("not really a library"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := Locate("", "libthing.so", []string{dir}); got != libPath {
		t.Errorf("Locate() = %q, want %q", got, libPath)
	}
	if got := Locate("", "libabsent.so", []string{dir}); got != "libabsent.so" {
		t.Errorf("Locate(absent) = %q, want bare name", got)
	}

	t.Setenv("BEAGLE_TEST_LIB", "/override/libthing.so")
	if got := Locate("BEAGLE_TEST_LIB", "libthing.so", []string{dir}); got != "/override/libthing.so" {
		t.Errorf("Locate(env) = %q, want override", got)
	}
}

func TestSystemLibrary(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("system library probe only runs on linux")
	}

	ld := NewLoader()
	lib, ok := ld.Open("libc.so.6")
	if !ok {
		t.Skip("libc.so.6 not loadable in this environment")
	}
	if _, ok := lib.Resolve("strlen"); !ok {
		t.Error("expected strlen to resolve in libc")
	}
	if _, ok := lib.Resolve("beagle_no_such_symbol"); ok {
		t.Error("expected missing symbol to report false")
	}
}
