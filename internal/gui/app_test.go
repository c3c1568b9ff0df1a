package gui

import (
	"testing"

	"github.com/san-kum/conway/internal/config"
	"github.com/san-kum/conway/internal/input"
)

func TestNew_StatusStripBelowBoard(t *testing.T) {
	app := New(config.DefaultConfig())

	w, h := app.Layout.Extent()
	if int(app.width) != w || int(app.height) != h+hudHeight {
		t.Errorf("window = %dx%d, want %dx%d", app.width, app.height, w, h+hudHeight)
	}

	// every pixel row of the strip is off the board
	for y := h; y < int(app.height); y++ {
		if app.Session.ToggleAt(app.Layout, 10, y) {
			t.Errorf("click at y=%d toggled a cell", y)
		}
	}
	if app.Session.Population() != 0 {
		t.Errorf("population = %d after strip clicks, want 0", app.Session.Population())
	}

	// the last row is still reachable just above the strip
	if !app.Session.ToggleAt(app.Layout, 10, h-1) || !app.Session.Grid().Alive(39, 0) {
		t.Error("click above the strip did not toggle (39, 0)")
	}
}

func TestKeyCodes_Bound(t *testing.T) {
	keys := input.Default(config.DefaultAdvanceKey)
	seen := make(map[string]bool)
	for _, k := range keyCodes {
		if seen[k.name] {
			t.Errorf("key %q listed twice", k.name)
		}
		seen[k.name] = true
	}
	for name := range keys {
		if name == "?" || name == "ctrl+c" {
			continue
		}
		if !seen[name] {
			t.Errorf("bound key %q has no raylib code", name)
		}
	}
	for _, name := range config.AdvanceKeys {
		if !seen[name] {
			t.Errorf("advance key %q has no raylib code", name)
		}
	}
}

func TestApply(t *testing.T) {
	app := New(config.DefaultConfig())
	app.Session.Toggle(0, 0)

	app.Apply(input.Advance)
	if app.Session.Generation() != 1 {
		t.Errorf("generation = %d, want 1", app.Session.Generation())
	}
	app.Apply(input.Clear)
	if app.Session.Population() != 0 || app.Session.Generation() != 0 {
		t.Error("clear did not reset the board")
	}
	name := app.Theme.Name
	app.Apply(input.NextTheme)
	if app.Theme.Name == name {
		t.Error("theme did not change")
	}
	app.Apply(input.Quit)
	if !app.Quit {
		t.Error("quit not set")
	}
}
