package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/agiangrant/beagle"
	"github.com/agiangrant/beagle/gl"
	"github.com/agiangrant/beagle/glfw"
	"github.com/agiangrant/beagle/internal/binding"
	"github.com/agiangrant/beagle/internal/dynlib"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	surfaceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	boundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	tierStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// SlotInfo is one entry point in a probe result.
type SlotInfo struct {
	Name  string
	Bound bool
	// Tier is set when the slot is a version marker.
	Tier string
}

// Surface is the probe result of one library.
type Surface struct {
	Name   string
	Path   string
	Opened bool
	Tier   string
	Err    error
	Slots  []SlotInfo
}

// Bound returns how many slots resolved.
func (s Surface) Bound() int {
	n := 0
	for _, slot := range s.Slots {
		if slot.Bound {
			n++
		}
	}
	return n
}

// Probe implements the 'beagle probe' command
func Probe(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	configPath := fs.String("config", beagle.ConfigFile, "Path to beagle.toml")
	glPath := fs.String("lib", "", "OpenGL library to probe instead of the configured one")
	glfwPath := fs.String("glfw", "", "GLFW library to probe instead of the configured one")
	interactive := fs.Bool("i", false, "Browse the slots interactively")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := beagle.LoadConfig(beagle.ResolveConfigPath(*configPath))
	if err != nil {
		return err
	}
	lib := cfg.Library
	if *glPath == "" {
		*glPath = lib.Locate(gl.LibraryEnv, lib.GL, gl.LibraryNames)
	}
	if *glfwPath == "" {
		*glfwPath = lib.Locate(glfw.LibraryEnv, lib.GLFW, glfw.LibraryNames)
	}

	loader := dynlib.NewLoader()
	open := func(path string) (binding.Resolver, bool) {
		l, ok := loader.Open(path)
		if !ok {
			return nil, false
		}
		return l, true
	}

	surfaces := probeAll(open, *glfwPath, *glPath)
	if *interactive {
		return runInspector(surfaces)
	}
	fmt.Fprint(out, renderReport(surfaces))
	return nil
}

func probeAll(open beagle.OpenFunc, glfwPath, glPath string) []Surface {
	return []Surface{
		probeSurface(open, glfwPath, (&glfw.Functions{}).Table(), glfw.Ladder, func(t binding.Tier) string {
			return glfw.Version(t).String()
		}),
		probeSurface(open, glPath, (&gl.Functions{}).Table(), gl.Ladder, func(t binding.Tier) string {
			return gl.Version(t).String()
		}),
	}
}

// probeSurface resolves every slot of table without installing anything, so
// no native code runs. OpenGL entry points beyond what the library exports
// directly need a current context and show as missing.
func probeSurface(open beagle.OpenFunc, path string, table *binding.Table, ladder []binding.Rung, tierName func(binding.Tier) string) Surface {
	s := Surface{Name: table.Surface(), Path: path}

	markers := make(map[string]string, len(ladder))
	for _, r := range ladder {
		markers[r.Slot] = tierName(r.Tier)
	}

	r, ok := open(path)
	if ok {
		s.Opened = true
		table.Populate(r, func(any, uintptr) {})
		if tier, err := binding.Detect(table, ladder); err != nil {
			s.Err = err
		} else {
			s.Tier = tierName(tier)
		}
	} else {
		s.Err = fmt.Errorf("could not open %s", path)
	}

	for _, slot := range table.Slots() {
		s.Slots = append(s.Slots, SlotInfo{
			Name:  slot.Name,
			Bound: slot.Bound(),
			Tier:  markers[slot.Name],
		})
	}
	return s
}

func renderReport(surfaces []Surface) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Beagle probe"))
	b.WriteString("\n")

	for _, s := range surfaces {
		b.WriteString("\n")
		b.WriteString(surfaceHeader(s))
		b.WriteString("\n")
		if !s.Opened {
			continue
		}
		for _, slot := range s.Slots {
			b.WriteString("  ")
			b.WriteString(formatSlot(slot))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func surfaceHeader(s Surface) string {
	header := surfaceStyle.Render(s.Name) + " " + s.Path
	switch {
	case !s.Opened:
		return header + " " + missingStyle.Render(s.Err.Error())
	case s.Err != nil:
		return header + fmt.Sprintf(" %d/%d bound ", s.Bound(), len(s.Slots)) + missingStyle.Render("no capability tier")
	default:
		return header + fmt.Sprintf(" %d/%d bound ", s.Bound(), len(s.Slots)) + tierStyle.Render("tier "+s.Tier)
	}
}

func formatSlot(slot SlotInfo) string {
	line := missingStyle.Render("✗ " + slot.Name)
	if slot.Bound {
		line = boundStyle.Render("✓ " + slot.Name)
	}
	if slot.Tier != "" {
		line += " " + tierStyle.Render("["+slot.Tier+"]")
	}
	return line
}
