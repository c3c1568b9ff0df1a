package tui

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/conway/internal/config"
)

// Run starts the terminal frontend and blocks until the user quits. When
// logPath is set the standard logger writes there; otherwise it is silenced
// so nothing draws over the alternate screen.
func Run(cfg *config.Config, logPath string) error {
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "conway")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	log.Printf("starting: grid=%dx%d pattern=%q theme=%s", cfg.GridSize(), cfg.GridSize(), cfg.Pattern, cfg.Theme)
	p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
