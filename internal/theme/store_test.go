package theme

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

type recordingApplier struct {
	applied []Theme
}

func (r *recordingApplier) ApplyTheme(t Theme) {
	r.applied = append(r.applied, t)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "theme.json"), nil)
}

func TestApplyNamedDarkThenLoad(t *testing.T) {
	s := newTestStore(t)
	applier := &recordingApplier{}

	if !s.ApplyNamed("dark", applier) {
		t.Fatal("Expected dark preset to apply")
	}

	want := Theme{BackgroundColor: "black", TextColor: "white", BorderColor: "white", TabBgColor: "#333"}
	if got := s.Load(); got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
	if len(applier.applied) != 1 || applier.applied[0] != want {
		t.Errorf("Expected applier to receive dark theme, got %+v", applier.applied)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("theme file is not plain JSON: %v", err)
	}
	if len(raw) != 4 || raw["tab_bg_color"] != "#333" {
		t.Errorf("Unexpected file content %v", raw)
	}
}

func TestApplyNamedUnknownIsNoOp(t *testing.T) {
	s := newTestStore(t)
	applier := &recordingApplier{}

	if s.ApplyNamed("solarized", applier) {
		t.Error("Expected unknown preset to report false")
	}
	if len(applier.applied) != 0 {
		t.Error("Expected nothing applied")
	}
	if _, err := os.Stat(s.Path()); !errors.Is(err, fs.ErrNotExist) {
		t.Error("Expected no theme file written")
	}
}

func TestPresets(t *testing.T) {
	tests := map[string]Theme{
		"white": {BackgroundColor: "white", TextColor: "black", BorderColor: "gray", TabBgColor: "lightgray"},
		"dark":  {BackgroundColor: "black", TextColor: "white", BorderColor: "white", TabBgColor: "#333"},
		"blue":  {BackgroundColor: "#001f3f", TextColor: "white", BorderColor: "white", TabBgColor: "#0074D9"},
		"green": {BackgroundColor: "#2E8B57", TextColor: "white", BorderColor: "white", TabBgColor: "#3CB371"},
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := Preset(name)
			if !ok || got != want {
				t.Errorf("Preset(%q) = %+v, %v", name, got, ok)
			}
			for _, c := range []string{got.BackgroundColor, got.TextColor, got.BorderColor, got.TabBgColor} {
				if !ValidColor(c) {
					t.Errorf("preset colour %q does not parse", c)
				}
			}
		})
	}
	if len(PresetNames()) != len(tests) {
		t.Errorf("Expected %d preset names, got %v", len(tests), PresetNames())
	}
}

func TestUpdateColorsMerges(t *testing.T) {
	tests := []struct {
		name    string
		partial Theme
		want    Theme
	}{
		{
			name:    "background only",
			partial: Theme{BackgroundColor: "#112233"},
			want:    Theme{BackgroundColor: "#112233", TextColor: "white", BorderColor: "white", TabBgColor: "#0074D9"},
		},
		{
			name:    "text and border",
			partial: Theme{TextColor: "yellow", BorderColor: "red"},
			want:    Theme{BackgroundColor: "#001f3f", TextColor: "yellow", BorderColor: "red", TabBgColor: "#0074D9"},
		},
		{
			name:    "empty partial",
			partial: Theme{},
			want:    Theme{BackgroundColor: "#001f3f", TextColor: "white", BorderColor: "white", TabBgColor: "#0074D9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			s.ApplyNamed("blue", nil)
			applier := &recordingApplier{}

			got := s.UpdateColors(tt.partial, applier)
			if got != tt.want {
				t.Errorf("UpdateColors() = %+v, want %+v", got, tt.want)
			}
			if loaded := s.Load(); loaded != tt.want {
				t.Errorf("persisted theme = %+v, want %+v", loaded, tt.want)
			}
			if len(applier.applied) != 1 {
				t.Errorf("Expected one apply, got %d", len(applier.applied))
			}
		})
	}
}

func TestUpdateColorsWithoutFile(t *testing.T) {
	s := newTestStore(t)
	got := s.UpdateColors(Theme{BorderColor: "gray"}, nil)
	if got != (Theme{BorderColor: "gray"}) {
		t.Errorf("Expected only border set, got %+v", got)
	}
}

func TestLoadFallsBackToEmpty(t *testing.T) {
	tests := map[string]string{
		"malformed": `{"background_color": `,
		"wrong type": `{"background_color": 12}`,
		"array":     `["black"]`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "theme.json")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			s := NewStore(path, nil)
			if got := s.Load(); !got.IsZero() {
				t.Errorf("Expected empty theme, got %+v", got)
			}
			_, err := s.Read()
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Errorf("Expected *LoadError from Read, got %v", err)
			}
		})
	}

	s := newTestStore(t)
	if got := s.Load(); !got.IsZero() {
		t.Errorf("Expected empty theme for missing file, got %+v", got)
	}
}

func TestLoadAcceptsCommentsAndTrailingCommas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	content := `{
  // hand edited
  "background_color": "navy",
  "text_color": "white",
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	got := NewStore(path, nil).Load()
	if got.BackgroundColor != "navy" || got.TextColor != "white" {
		t.Errorf("Unexpected theme %+v", got)
	}
}

func TestReloadApplies(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save(Theme{TextColor: "black"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	var got Theme
	s.Reload(ApplierFunc(func(t Theme) { got = t }))
	if got.TextColor != "black" {
		t.Errorf("Expected reloaded theme applied, got %+v", got)
	}
}

func TestSaveFailureReturnsError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(filepath.Join(blocker, "theme.json"), nil)
	if err := s.Save(Theme{TextColor: "red"}); err == nil {
		t.Error("Expected error when the parent is a file")
	}
}
