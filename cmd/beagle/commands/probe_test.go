package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agiangrant/beagle/internal/binding"
	"github.com/agiangrant/beagle/internal/nativetest"
	tea "github.com/charmbracelet/bubbletea"
)

func fakeOpen(libs map[string]*nativetest.Library) func(string) (binding.Resolver, bool) {
	return func(path string) (binding.Resolver, bool) {
		lib, ok := libs[path]
		if !ok {
			return nil, false
		}
		return lib, true
	}
}

func TestProbeSurfaces(t *testing.T) {
	libs := map[string]*nativetest.Library{
		"glfw": nativetest.New("glfwInit", "glfwCreateWindow", "glfwCreateCursor"),
		"gl":   nativetest.New("glClear", "glGenTextures", "glGetString"),
	}

	surfaces := probeAll(fakeOpen(libs), "glfw", "gl")
	if len(surfaces) != 2 {
		t.Fatalf("got %d surfaces, want 2", len(surfaces))
	}

	tests := []struct {
		surface Surface
		name    string
		tier    string
		bound   int
	}{
		{surfaces[0], "glfw", "3.1", 3},
		{surfaces[1], "gl", "1.1", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.surface
			if s.Name != tt.name || !s.Opened || s.Err != nil {
				t.Fatalf("surface = %+v", s)
			}
			if s.Tier != tt.tier {
				t.Errorf("Tier = %s, want %s", s.Tier, tt.tier)
			}
			if s.Bound() != tt.bound {
				t.Errorf("Bound() = %d, want %d", s.Bound(), tt.bound)
			}
		})
	}

	for _, slot := range surfaces[1].Slots {
		if slot.Name == "glGenTextures" && slot.Tier != "1.1" {
			t.Errorf("glGenTextures marker = %q, want 1.1", slot.Tier)
		}
		if slot.Name == "glViewport" && slot.Tier != "" {
			t.Errorf("glViewport should not be a marker, got %q", slot.Tier)
		}
	}
}

func TestProbeFailures(t *testing.T) {
	libs := map[string]*nativetest.Library{
		"gl": nativetest.New("glViewport"),
	}
	surfaces := probeAll(fakeOpen(libs), "missing-glfw", "gl")

	if surfaces[0].Opened || surfaces[0].Err == nil {
		t.Errorf("glfw surface = %+v, want an open error", surfaces[0])
	}
	if !errors.Is(surfaces[1].Err, binding.ErrNoCapabilityTier) {
		t.Errorf("gl error = %v, want ErrNoCapabilityTier", surfaces[1].Err)
	}

	report := renderReport(surfaces)
	for _, want := range []string{"could not open missing-glfw", "no capability tier", "glViewport"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestRenderReport(t *testing.T) {
	libs := map[string]*nativetest.Library{
		"glfw": nativetest.New("glfwCreateWindow", "glfwInitHint"),
		"gl":   nativetest.New("glClear"),
	}
	report := renderReport(probeAll(fakeOpen(libs), "glfw", "gl"))

	for _, want := range []string{"Beagle probe", "tier 3.3", "tier 1.0", "✓ glfwInitHint", "✗ glfwGetPlatform", "[3.4]"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func typeKeys(m *inspectorModel, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestInspector(t *testing.T) {
	libs := map[string]*nativetest.Library{
		"glfw": nativetest.New("glfwInit"),
		"gl":   nativetest.New("glClear"),
	}
	m := newInspectorModel(probeAll(fakeOpen(libs), "glfw", "gl"))

	all := len(m.visible())
	if all != len(m.surfaces[0].Slots) {
		t.Fatalf("visible = %d, want every glfw slot", all)
	}

	typeKeys(m, "window")
	for _, s := range m.visible() {
		if !strings.Contains(strings.ToLower(s.Name), "window") {
			t.Errorf("filter let %s through", s.Name)
		}
	}
	if len(m.visible()) == 0 || len(m.visible()) >= all {
		t.Errorf("filter kept %d of %d slots", len(m.visible()), all)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.selected != 1 {
		t.Errorf("selected = %d, want 1", m.selected)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.current != 1 || m.selected != 0 {
		t.Errorf("after tab current = %d selected = %d, want 1, 0", m.current, m.selected)
	}
	if !strings.Contains(m.View(), "gl ") {
		t.Error("view should show the gl surface")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("esc should quit")
	}
}

func TestInspectorScroll(t *testing.T) {
	libs := map[string]*nativetest.Library{"gl": nativetest.New("glClear")}
	m := newInspectorModel(probeAll(fakeOpen(libs), "glfw", "gl"))
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})

	for i := 0; i < 10; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.selected != 10 {
		t.Fatalf("selected = %d, want 10", m.selected)
	}
	if m.selected < m.offset || m.selected >= m.offset+m.height {
		t.Errorf("selection %d outside window [%d, %d)", m.selected, m.offset, m.offset+m.height)
	}
}

func TestInit(t *testing.T) {
	path := t.TempDir() + "/beagle.toml"

	var out bytes.Buffer
	if err := Init([]string{"-config", path}, &out); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if !strings.Contains(out.String(), "Created") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := Init([]string{"-config", path}, &out); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("output = %q", out.String())
	}
}

func TestInitAtProjectRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module game\n"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "cmd", "game")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	chdir(t, nested)

	var out bytes.Buffer
	if err := Init(nil, &out); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "beagle.toml")); err != nil {
		t.Errorf("expected beagle.toml at the project root: %v", err)
	}
	if _, err := os.Stat(filepath.Join(nested, "beagle.toml")); err == nil {
		t.Error("beagle.toml written to the working directory")
	}
}

func TestStartProfile(t *testing.T) {
	stop, err := startProfile("")
	if err != nil {
		t.Fatal(err)
	}
	stop()

	if _, err := startProfile("gpu"); err == nil {
		t.Error("expected an error for an unknown profile")
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
