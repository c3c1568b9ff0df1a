package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/conway/internal/config"
	"github.com/san-kum/conway/internal/input"
	"github.com/san-kum/conway/internal/layout"
	"github.com/san-kum/conway/internal/patterns"
	"github.com/san-kum/conway/internal/session"
	"github.com/san-kum/conway/internal/theme"
)

// Board placement inside View: one header line, then a bordered board with
// each cell two columns wide.
const (
	boardOriginX = 1
	boardOriginY = 2
	cellColumns  = 2
)

// Model is the Bubble Tea model for the terminal frontend.
type Model struct {
	session  *session.Session
	layout   layout.Layout
	keys     input.Keymap
	theme    theme.Theme
	cursorR  int
	cursorC  int
	showHelp bool
	width    int
	height   int
}

// New builds a terminal model from a validated config.
func New(cfg *config.Config) Model {
	n := cfg.GridSize()
	m := Model{
		session: session.New(n),
		layout: layout.Layout{
			OriginX:    boardOriginX,
			OriginY:    boardOriginY,
			CellWidth:  cellColumns,
			CellHeight: 1,
			Size:       n,
		},
		keys:    input.Default(cfg.AdvanceKey),
		theme:   theme.Get(cfg.Theme),
		cursorR: n / 2,
		cursorC: n / 2,
	}
	if p := patterns.Lookup(cfg.Pattern); p != nil {
		m.session.Seed(p)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles input events. Nothing advances without a key press.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if m.session.ToggleAt(m.layout, msg.X, msg.Y) {
				m.cursorR, m.cursorC, _ = m.layout.CellAt(msg.X, msg.Y)
			}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	}
	return m, nil
}

// keyName normalizes Bubble Tea key strings to input key names.
func keyName(msg tea.KeyMsg) string {
	switch s := msg.String(); s {
	case " ":
		return "space"
	default:
		return s
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := keyName(msg)
	switch act := m.keys.Lookup(key); act {
	case input.Quit:
		return m, tea.Quit
	case input.Advance:
		m.session.Advance()
		log.Printf("advance: generation=%d population=%d", m.session.Generation(), m.session.Population())
	case input.Clear:
		m.session.Clear()
		log.Printf("clear")
	case input.NextPattern:
		p := patterns.Next(m.session.Pattern())
		if skipped := m.session.Seed(p); skipped > 0 {
			log.Printf("seed %s: %d cells clipped", p.Name, skipped)
		} else {
			log.Printf("seed %s", p.Name)
		}
	case input.NextTheme:
		m.theme = theme.Next(m.theme.Name)
	case input.Help:
		m.showHelp = !m.showHelp
	case input.None:
		m.moveCursor(key)
	}
	return m, nil
}

// moveCursor handles keyboard editing for terminals without mouse reporting.
func (m *Model) moveCursor(key string) {
	n := m.session.Size()
	if n == 0 {
		return
	}
	switch key {
	case "up", "k":
		m.cursorR = max(0, m.cursorR-1)
	case "down", "j":
		m.cursorR = min(n-1, m.cursorR+1)
	case "left", "h":
		m.cursorC = max(0, m.cursorC-1)
	case "right", "l":
		m.cursorC = min(n-1, m.cursorC+1)
	case "x", "enter":
		m.session.Toggle(m.cursorR, m.cursorC)
	}
}
