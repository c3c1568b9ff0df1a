// Package input maps key names to board actions so the window and terminal
// frontends share one set of bindings.
//
// Key names are lower-case: "space", "enter", "esc", "ctrl+c", or the
// character itself ("c", "?").
package input

// Action is a frontend-independent command.
type Action int

const (
	None Action = iota
	Advance
	Clear
	NextPattern
	NextTheme
	Help
	Quit
)

var actionNames = map[Action]string{
	None:        "none",
	Advance:     "advance",
	Clear:       "clear",
	NextPattern: "next pattern",
	NextTheme:   "next theme",
	Help:        "help",
	Quit:        "quit",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// Keymap binds key names to actions.
type Keymap map[string]Action

// Default returns the standard bindings with advanceKey stepping one
// generation.
func Default(advanceKey string) Keymap {
	k := Keymap{
		"c":      Clear,
		"p":      NextPattern,
		"t":      NextTheme,
		"?":      Help,
		"q":      Quit,
		"ctrl+c": Quit,
	}
	k[advanceKey] = Advance
	return k
}

// Lookup returns the action bound to key, or None.
func (k Keymap) Lookup(key string) Action {
	return k[key]
}

// KeyFor returns the first key, in sorted order, bound to a. ok is false
// when nothing is bound.
func (k Keymap) KeyFor(a Action) (key string, ok bool) {
	for name, bound := range k {
		if bound != a {
			continue
		}
		if !ok || name < key {
			key, ok = name, true
		}
	}
	return key, ok
}
