package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/conway/internal/input"
)

const chartWidth = 30

var (
	statsStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// View renders the board on the left and the stats panel on the right.
func (m Model) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.boardView(), m.statsView())
}

// boardView renders the header line and the bordered board. Its geometry
// must agree with boardOriginX/boardOriginY for mouse mapping.
func (m Model) boardView() string {
	header := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).Render("CONWAY")

	live := lipgloss.NewStyle().Foreground(m.theme.Term(m.theme.Live)).Render("██")
	dead := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("· ")
	cursor := lipgloss.NewStyle().Foreground(m.theme.Accent).Render("[]")

	n := m.session.Size()
	g := m.session.Grid()
	var b strings.Builder
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			switch {
			case row == m.cursorR && col == m.cursorC && !g.Alive(row, col):
				b.WriteString(cursor)
			case g.Alive(row, col):
				b.WriteString(live)
			default:
				b.WriteString(dead)
			}
		}
		if row < n-1 {
			b.WriteByte('\n')
		}
	}

	board := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Term(m.theme.Border)).
		Render(b.String())
	return header + "\n" + board
}

func (m Model) statsView() string {
	value := lipgloss.NewStyle().Foreground(m.theme.Term(m.theme.Text))

	var s strings.Builder
	s.WriteString(labelStyle.Render("Generation") + value.Render(fmt.Sprintf("%d", m.session.Generation())) + "\n")
	s.WriteString(labelStyle.Render("Population") + value.Render(fmt.Sprintf("%d", m.session.Population())) + "\n")
	s.WriteString(labelStyle.Render("Grid") + value.Render(fmt.Sprintf("%dx%d", m.session.Size(), m.session.Size())) + "\n")
	pattern := m.session.Pattern()
	if pattern == "" {
		pattern = "-"
	}
	s.WriteString(labelStyle.Render("Pattern") + value.Render(pattern) + "\n")
	s.WriteString(labelStyle.Render("Theme") + value.Render(m.theme.Name) + "\n")

	if hist := m.session.History(); len(hist) > 1 {
		chart := asciigraph.Plot(hist,
			asciigraph.Height(6),
			asciigraph.Width(chartWidth),
			asciigraph.Caption("population"),
		)
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Term(m.theme.Live)).Render(chart) + "\n")
	}

	if m.showHelp {
		s.WriteString(helpStyle.Render(m.helpText()))
	} else {
		advance, _ := m.keys.KeyFor(input.Advance)
		s.WriteString(helpStyle.Render(fmt.Sprintf("\n─────────────────────\n%s:Step C:Clear Q:Quit\nP:Pattern T:Theme ?:Help", strings.ToUpper(advance))))
	}
	return statsStyle.Render(s.String())
}

func (m Model) helpText() string {
	advance, _ := m.keys.KeyFor(input.Advance)
	return fmt.Sprintf(`
KEYBOARD SHORTCUTS
  Click     Toggle cell
  %-9s Advance one generation
  Arrows    Move cursor (hjkl)
  X/Enter   Toggle cursor cell
  C         Clear board
  P         Next pattern
  T         Next theme
  ?         Toggle this help
  Q         Quit`, advance)
}
