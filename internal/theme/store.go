package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/tidwall/jsonc"

	"github.com/studiowebux/tabpad/internal/config"
	"github.com/studiowebux/tabpad/internal/logger"
)

// LoadError describes why the theme file could not be used.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load theme %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Store reads and writes one theme file.
type Store struct {
	mu   sync.RWMutex
	path string
	log  *slog.Logger
}

// NewStore creates a store for path. An empty path means config.DefaultThemeFile.
func NewStore(path string, log *slog.Logger) *Store {
	if path == "" {
		path = config.DefaultThemeFile
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Store{path: path, log: log}
}

// Path returns the theme file path.
func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Read parses the theme file. Comments and trailing commas are accepted.
func (s *Store) Read() (Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readLocked()
}

func (s *Store) readLocked() (Theme, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Theme{}, &LoadError{Path: s.path, Err: err}
	}
	var t Theme
	if err := json.Unmarshal(jsonc.ToJSON(data), &t); err != nil {
		return Theme{}, &LoadError{Path: s.path, Err: err}
	}
	return t, nil
}

// Load returns the persisted theme, or an empty theme when the file is
// missing or malformed. Failures are logged, never returned.
func (s *Store) Load() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() Theme {
	t, err := s.readLocked()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug("theme file not found, using defaults", "path", s.path)
		} else {
			s.log.Warn("theme file unusable, using defaults", "error", err)
		}
		return Theme{}
	}
	return t
}

// Save overwrites the theme file. The error is also logged, so callers that
// only care about the in-memory result may ignore it.
func (s *Store) Save(t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(t)
}

func (s *Store) saveLocked(t Theme) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		s.log.Error("encode theme", "error", err)
		return fmt.Errorf("encode theme: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, config.DirPermissions); err != nil {
			s.log.Error("create theme directory", "path", dir, "error", err)
			return fmt.Errorf("create theme directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, append(data, '\n'), config.FilePermissions); err != nil {
		s.log.Error("save theme", "path", s.path, "error", err)
		return fmt.Errorf("save theme: %w", err)
	}
	s.log.Debug("theme saved", "path", s.path)
	return nil
}

// ApplyNamed persists the preset called name and applies it. It reports
// false, logging the miss, when no preset has that name.
func (s *Store) ApplyNamed(name string, applier Applier) bool {
	t, ok := Preset(name)
	if !ok {
		s.log.Info("theme not found", "name", name)
		return false
	}
	s.mu.Lock()
	_ = s.saveLocked(t)
	s.mu.Unlock()

	apply(applier, t)
	s.log.Info("theme applied", "name", name)
	return true
}

// UpdateColors merges the non-empty fields of partial into the persisted
// theme, saves the result, applies it and returns it.
func (s *Store) UpdateColors(partial Theme, applier Applier) Theme {
	s.mu.Lock()
	merged := s.loadLocked().Merge(partial)
	_ = s.saveLocked(merged)
	s.mu.Unlock()

	apply(applier, merged)
	return merged
}

// Reload reads the theme file again and applies it.
func (s *Store) Reload(applier Applier) Theme {
	t := s.Load()
	apply(applier, t)
	return t
}

func apply(applier Applier, t Theme) {
	if applier != nil {
		applier.ApplyTheme(t)
	}
}
