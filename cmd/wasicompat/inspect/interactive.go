package inspect

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/wasi-compat/wasm"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// detailLimit caps how much of a payload the hex view renders.
const detailLimit = 64 * 1024

type browserModel struct {
	module   *wasm.Module
	path     string
	visible  []int
	cursor   int
	state    browserState
	filter   textinput.Model
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

type browserState int

const (
	stateList browserState = iota
	stateFilter
	stateDetail
)

func newBrowserModel(path string, m *wasm.Module) *browserModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter"
	ti.Width = 32

	b := &browserModel{
		module: m,
		path:   path,
		filter: ti,
		state:  stateList,
	}
	b.applyFilter()
	return b
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-4, 1))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-4, 1)
		}

	case tea.KeyMsg:
		switch m.state {
		case stateList:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit

			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}

			case "down", "j":
				if m.cursor < len(m.visible)-1 {
					m.cursor++
				}

			case "enter":
				if len(m.visible) > 0 && m.ready {
					m.viewport.SetContent(m.detailContent())
					m.viewport.GotoTop()
					m.state = stateDetail
				}

			case "/":
				m.filter.Focus()
				m.state = stateFilter

			case "esc":
				if m.filter.Value() != "" {
					m.filter.SetValue("")
					m.applyFilter()
				}
			}

		case stateFilter:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit

			case "enter":
				m.filter.Blur()
				m.state = stateList

			case "esc":
				m.filter.SetValue("")
				m.filter.Blur()
				m.applyFilter()
				m.state = stateList

			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}

		case stateDetail:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit

			case "q", "esc":
				m.state = stateList

			default:
				var cmd tea.Cmd
				m.viewport, cmd = m.viewport.Update(msg)
				return m, cmd
			}
		}
	}

	return m, nil
}

func (m *browserModel) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for i, s := range m.module.Sections {
		if q == "" || strings.Contains(strings.ToLower(s.Display(false)), q) {
			m.visible = append(m.visible, i)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

func (m *browserModel) detailContent() string {
	idx := m.visible[m.cursor]
	s := m.module.Sections[idx]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("section %d: %s\n", idx, s.Display(true)))
	b.WriteString(fmt.Sprintf("payload: %d bytes\n\n", len(s.Payload())))

	data := s.Payload()
	truncated := 0
	if len(data) > detailLimit {
		truncated = len(data) - detailLimit
		data = data[:detailLimit]
	}
	b.WriteString(hex.Dump(data))
	if truncated > 0 {
		b.WriteString(fmt.Sprintf("... %d more bytes\n", truncated))
	}
	return b.String()
}

func (m *browserModel) View() string {
	var b strings.Builder

	kind := "core module"
	if m.module.Header.IsComponent() {
		kind = "component"
	}
	b.WriteString(titleStyle.Render("wasicompat"))
	b.WriteString(fmt.Sprintf(" %s (%s)\n\n", m.path, kind))

	switch m.state {
	case stateList, stateFilter:
		if m.state == stateFilter || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}

		if len(m.visible) == 0 {
			b.WriteString("no sections match\n")
		}
		for pos, idx := range m.visible {
			s := m.module.Sections[idx]
			if pos == m.cursor && m.state == stateList {
				b.WriteString(selectedStyle.Render(fmt.Sprintf("> %3d  %s  %d bytes", idx, s.Display(false), len(s.Payload()))))
			} else {
				b.WriteString(fmt.Sprintf("  %3d  %s  %s", idx, sectionStyle.Render(s.Display(false)),
					sizeStyle.Render(fmt.Sprintf("%d bytes", len(s.Payload())))))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateFilter {
			b.WriteString(helpStyle.Render("enter apply • esc clear"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • enter detail • / filter • q quit"))
		}

	case stateDetail:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back"))
	}

	return b.String()
}

func runInteractive(path string, m *wasm.Module) error {
	p := tea.NewProgram(newBrowserModel(path, m), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
