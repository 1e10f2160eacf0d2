package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inspectorModel browses probe results one surface at a time with a
// name filter.
type inspectorModel struct {
	surfaces []Surface
	current  int
	filter   textinput.Model
	selected int
	offset   int
	height   int
}

func newInspectorModel(surfaces []Surface) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "filter slots"
	ti.Prompt = "/ "
	ti.Width = 40
	ti.Focus()
	return &inspectorModel{
		surfaces: surfaces,
		filter:   ti,
		height:   20,
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

// visible returns the current surface's slots matching the filter.
func (m *inspectorModel) visible() []SlotInfo {
	if len(m.surfaces) == 0 {
		return nil
	}
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	var out []SlotInfo
	for _, s := range m.surfaces[m.current].Slots {
		if query == "" || strings.Contains(strings.ToLower(s.Name), query) {
			out = append(out, s)
		}
	}
	return out
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, header, filter, blank lines and help
		m.height = max(msg.Height-7, 1)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "up":
			if m.selected > 0 {
				m.selected--
			}
			m.scroll()
			return m, nil

		case "down":
			if m.selected < len(m.visible())-1 {
				m.selected++
			}
			m.scroll()
			return m, nil

		case "tab":
			if len(m.surfaces) > 0 {
				m.current = (m.current + 1) % len(m.surfaces)
			}
			m.selected, m.offset = 0, 0
			return m, nil
		}
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.selected, m.offset = 0, 0
	}
	return m, cmd
}

func (m *inspectorModel) scroll() {
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+m.height {
		m.offset = m.selected - m.height + 1
	}
}

func (m *inspectorModel) View() string {
	if len(m.surfaces) == 0 {
		return "Nothing probed.\n"
	}

	var b strings.Builder
	s := m.surfaces[m.current]
	b.WriteString(titleStyle.Render("Beagle probe"))
	b.WriteString(fmt.Sprintf(" %d/%d\n", m.current+1, len(m.surfaces)))
	b.WriteString(surfaceHeader(s))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	rows := m.visible()
	end := min(m.offset+m.height, len(rows))
	for i := m.offset; i < end; i++ {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		b.WriteString(cursor + formatSlot(rows[i]) + "\n")
	}
	if len(rows) == 0 {
		b.WriteString(helpStyle.Render("  no matching slots") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type to filter • ↑/↓ move • tab next library • esc quit"))
	return b.String()
}

func runInspector(surfaces []Surface) error {
	p := tea.NewProgram(newInspectorModel(surfaces), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
