package gui

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/conway/internal/config"
	"github.com/san-kum/conway/internal/input"
	"github.com/san-kum/conway/internal/layout"
	"github.com/san-kum/conway/internal/patterns"
	"github.com/san-kum/conway/internal/session"
	"github.com/san-kum/conway/internal/theme"
)

// ErrWindowInit is returned when raylib cannot open a window.
var ErrWindowInit = errors.New("gui: failed to initialize window")

// hudHeight is the status strip drawn below the board, outside Layout.
const hudHeight = 22

type keyCode struct {
	name string
	code int32
}

// keyCodes lists everything a Keymap can bind, in the order actions are
// applied when several keys go down in one frame.
var keyCodes = []keyCode{
	{"space", rl.KeySpace},
	{"enter", rl.KeyEnter},
	{"n", rl.KeyN},
	{"s", rl.KeyS},
	{"c", rl.KeyC},
	{"p", rl.KeyP},
	{"t", rl.KeyT},
	{"q", rl.KeyQ},
}

type App struct {
	Session  *session.Session
	Layout   layout.Layout
	Theme    theme.Theme
	Keys     input.Keymap
	ShowHelp bool
	Quit     bool

	palette       palette
	width, height int32
}

// New builds an App from a validated config. It does not touch the window,
// so it is safe to call before InitWindow.
func New(cfg *config.Config) *App {
	n := cfg.GridSize()
	app := &App{
		Session: session.New(n),
		Layout:  layout.Square(n, cfg.CellSize),
		Keys:    input.Default(cfg.AdvanceKey),
	}
	w, h := windowSize(app.Layout)
	app.width, app.height = int32(w), int32(h)
	app.setTheme(theme.Get(cfg.Theme))
	if p := patterns.Lookup(cfg.Pattern); p != nil {
		app.Session.Seed(p)
	}
	return app
}

// windowSize is the board extent plus the status strip under it.
func windowSize(l layout.Layout) (w, h int) {
	w, h = l.Extent()
	return w, h + hudHeight
}

// initWindow opens a window that fits the board and the status strip, capped
// at cfg.FPS frames per second, and disables the default exit key.
func initWindow(cfg *config.Config) error {
	w, h := windowSize(layout.Square(cfg.GridSize(), cfg.CellSize))
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(w), int32(h), "conway")
	if !rl.IsWindowReady() {
		return ErrWindowInit
	}
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
	return nil
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(cfg *config.Config) error {
	if err := initWindow(cfg); err != nil {
		return err
	}
	defer rl.CloseWindow()
	New(cfg).RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.Quit {
		a.Update()
		a.Draw()
	}
}

// Update polls input for one frame.
func (a *App) Update() {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		a.Session.ToggleAt(a.Layout, int(pos.X), int(pos.Y))
	}
	for _, k := range keyCodes {
		if rl.IsKeyPressed(k.code) {
			a.Apply(a.Keys.Lookup(k.name))
		}
	}
	if rl.IsKeyPressed(rl.KeySlash) && (rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)) {
		a.Apply(input.Help)
	}
}

// Apply performs a keyboard action against the session.
func (a *App) Apply(act input.Action) {
	switch act {
	case input.Advance:
		a.Session.Advance()
	case input.Clear:
		a.Session.Clear()
	case input.NextPattern:
		a.Session.Seed(patterns.Next(a.Session.Pattern()))
	case input.NextTheme:
		a.setTheme(theme.Next(a.Theme.Name))
	case input.Help:
		a.ShowHelp = !a.ShowHelp
	case input.Quit:
		a.Quit = true
	}
}

func (a *App) setTheme(t theme.Theme) {
	a.Theme = t
	a.palette = newPalette(t)
}
