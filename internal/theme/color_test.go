package theme

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "#333", want: "#333333", ok: true},
		{in: "#0074D9", want: "#0074d9", ok: true},
		{in: "White", want: "#ffffff", ok: true},
		{in: " lightgray ", want: "#d3d3d3", ok: true},
		{in: "notacolour", ok: false},
		{in: "#12", ok: false},
		{in: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("ParseColor(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			}
			if tt.ok && c.Hex() != tt.want {
				t.Errorf("ParseColor(%q) = %s, want %s", tt.in, c.Hex(), tt.want)
			}
		})
	}
}

func TestResolvedFillsDefaults(t *testing.T) {
	got := Theme{TextColor: "red"}.Resolved()
	want := Theme{BackgroundColor: "black", TextColor: "red", BorderColor: "white", TabBgColor: "#333"}
	if got != want {
		t.Errorf("Resolved() = %+v, want %+v", got, want)
	}
}

func TestNewStylesFallsBackOnBadColour(t *testing.T) {
	s := NewStyles(Theme{BackgroundColor: "bogus", TextColor: "#ff0000"})
	if s.Background != "#000000" {
		t.Errorf("Expected default background, got %s", s.Background)
	}
	if s.Text != "#ff0000" {
		t.Errorf("Expected red text, got %s", s.Text)
	}
	if s.TabBg != "#333333" {
		t.Errorf("Expected default tab background, got %s", s.TabBg)
	}
}

func TestStatusBarUsesWindowColours(t *testing.T) {
	s := NewStyles(Theme{BackgroundColor: "#101010", TextColor: "#eeeeee", TabBgColor: "#555555"})
	if got := s.StatusBar.GetBackground(); got != s.Background {
		t.Errorf("Expected status bar background %v, got %v", s.Background, got)
	}
	if got := s.StatusBar.GetForeground(); got != s.Text {
		t.Errorf("Expected status bar foreground %v, got %v", s.Text, got)
	}
}
