package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGet(t *testing.T) {
	for _, name := range Names() {
		if got := Get(name); got.Name != name {
			t.Errorf("Get(%q).Name = %q", name, got.Name)
		}
	}
	if got := Get("nope"); got.Name != Minimal.Name {
		t.Errorf("Get(unknown) = %q, want minimal", got.Name)
	}
}

func TestNext_Cycles(t *testing.T) {
	name := Themes[0].Name
	for i := 0; i < len(Themes); i++ {
		name = Next(name).Name
	}
	if name != Themes[0].Name {
		t.Errorf("cycling %d times ended at %q", len(Themes), name)
	}
	if Next("unknown").Name != Themes[0].Name {
		t.Error("Next(unknown) should restart the cycle")
	}
}

func TestRGB(t *testing.T) {
	tests := []struct {
		in      lipgloss.Color
		r, g, b uint8
	}{
		{"#000000", 0, 0, 0},
		{"#ffffff", 255, 255, 255},
		{"#3B82f6", 0x3b, 0x82, 0xf6},
		{"86", 255, 255, 255},
	}

	for _, tt := range tests {
		r, g, b := RGB(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("RGB(%q) = (%d, %d, %d), want (%d, %d, %d)", tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestExists(t *testing.T) {
	if !Exists("retro") || Exists("neon") {
		t.Error("Exists mismatch")
	}
}

func TestTerm(t *testing.T) {
	if !Minimal.Light() {
		t.Fatal("minimal should be a light theme")
	}
	got, ok := Minimal.Term(Minimal.Live).(lipgloss.AdaptiveColor)
	if !ok {
		t.Fatalf("Minimal.Term(Live) = %#v, want AdaptiveColor", Minimal.Term(Minimal.Live))
	}
	if got.Light != "#000000" || got.Dark != "#ffffff" {
		t.Errorf("Minimal.Term(Live) = %+v, want black on light, white on dark", got)
	}

	// light colours on a light theme and anything on a dark theme pass through
	if c := Minimal.Term(Minimal.Muted); c != Minimal.Muted {
		t.Errorf("Minimal.Term(Muted) = %#v, want %q", c, Minimal.Muted)
	}
	for _, th := range []Theme{RetroGreen, Ocean, Sunset, Cyberpunk} {
		if th.Light() {
			t.Errorf("%s should be a dark theme", th.Name)
		}
		if c := th.Term(th.Live); c != th.Live {
			t.Errorf("%s.Term(Live) = %#v, want %q", th.Name, c, th.Live)
		}
	}
}
