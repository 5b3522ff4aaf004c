package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/lazygrid"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	flagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type viewModel struct {
	scene    *scene
	title    string
	dragging bool
	pins     []*lazygrid.PinHandle
	err      error
}

func newViewModel(title string, s *scene) *viewModel {
	return &viewModel{scene: s, title: title}
}

func (m *viewModel) Init() tea.Cmd {
	return nil
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	g := m.scene.grid
	page := m.scene.viewportMain()
	switch key.String() {
	case "ctrl+c", "q":
		for _, p := range m.pins {
			p.Release()
		}
		return m, tea.Quit
	case "down", "j":
		g.ScrollBy(1)
	case "up", "k":
		g.ScrollBy(-1)
	case "pgdown", "J":
		g.ScrollBy(page)
	case "pgup", "K":
		g.ScrollBy(-page)
	case "g":
		m.scene.growFirstLine()
	case "s":
		m.scene.toggleWideFirstItem()
	case "d":
		m.dragging = !m.dragging
		g.SetDragging(m.dragging)
	case "p":
		m.pins = append(m.pins, g.Pin(m.scene.res.FirstVisibleItemIndex))
	case "P":
		if n := len(m.pins); n > 0 {
			m.pins[n-1].Release()
			m.pins = m.pins[:n-1]
		}
	default:
		return m, nil
	}

	m.err = m.scene.layout()
	return m, nil
}

func (m *viewModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("gridview " + m.title))
	b.WriteString("\n")

	cfg := m.scene.cfg
	body := renderLayout(m.scene.res, cfg.Viewport.Width, cfg.Viewport.Height)
	b.WriteString(frameStyle.Width(cfg.Viewport.Width).Height(cfg.Viewport.Height).Render(body))
	b.WriteString("\n")

	b.WriteString(statusStyle.Render(status(m.scene.res)))
	b.WriteString("\n")
	var flags []string
	if m.dragging {
		flags = append(flags, "dragging")
	}
	if len(m.pins) > 0 {
		flags = append(flags, fmt.Sprintf("%d pinned", len(m.pins)))
	}
	flags = append(flags, fmt.Sprintf("%d deltas", m.scene.deltas), fmt.Sprintf("%d prefetched", m.scene.prefetched))
	b.WriteString(flagStyle.Render(strings.Join(flags, "  ")))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("j/k scroll  J/K page  g grow  s span  d drag  p/P pin  q quit"))
	return b.String()
}

// runView implements the view subcommand.
func runView(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("view needs exactly one scenario file")
	}
	s, err := loadScene(args[0])
	if err != nil {
		return err
	}
	p := tea.NewProgram(newViewModel(args[0], s), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
