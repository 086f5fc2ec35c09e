// Package logger writes structured logs to daily rotated files.
//
// The terminal belongs to the TUI while tabpad runs, so log records go to
// ~/.tabpad/logs/ instead of stderr unless StderrEnabled is set (CLI subcommands).
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Config controls the log manager.
type Config struct {
	Dir           string
	Level         slog.Level
	MaxAgeDays    int // 0 disables cleanup
	MaxSizeMB     int // rotate when the current file grows past this size
	StderrEnabled bool
}

// Manager owns the current log file.
type Manager struct {
	cfg     Config
	mu      sync.Mutex
	file    *os.File
	curDate string
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{
		Dir:        defaultLogDir(),
		Level:      slog.LevelInfo,
		MaxAgeDays: 14,
		MaxSizeMB:  10,
	}
}

func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".tabpad", "logs")
	}
	return filepath.Join(home, ".tabpad", "logs")
}

// ParseLevel maps a settings string to a slog level. Unknown values map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates the manager and opens today's log file.
func New(cfg Config) (*Manager, error) {
	if cfg.Dir == "" {
		cfg.Dir = defaultLogDir()
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	m := &Manager{cfg: cfg}
	if err := m.rotateIfNeeded(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewLogger returns a slog.Logger writing to the managed file.
func (m *Manager) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(m, &slog.HandlerOptions{
		Level: m.cfg.Level,
	}))
}

// Write implements io.Writer, rotating by date and size.
func (m *Manager) Write(p []byte) (n int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_ = m.rotateIfNeededLocked()

	if m.file != nil {
		n, err = m.file.Write(p)
	}

	if m.cfg.StderrEnabled {
		_, _ = os.Stderr.Write(p)
	}

	return n, err
}

// Close closes the current log file.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.file != nil {
		err := m.file.Close()
		m.file = nil
		return err
	}
	return nil
}

// CurrentLogFile returns the path of the file being written.
func (m *Manager) CurrentLogFile() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.file != nil {
		return m.file.Name()
	}
	return logFileName(m.cfg.Dir, todayDate())
}

func (m *Manager) rotateIfNeeded() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rotateIfNeededLocked()
}

func (m *Manager) rotateIfNeededLocked() error {
	today := todayDate()
	needRotate := false

	if m.file == nil {
		needRotate = true
	} else if m.curDate != today {
		needRotate = true
	} else if m.cfg.MaxSizeMB > 0 {
		if info, err := m.file.Stat(); err == nil {
			if info.Size() >= int64(m.cfg.MaxSizeMB)*1024*1024 {
				needRotate = true
			}
		}
	}

	if !needRotate {
		return nil
	}

	if m.file != nil {
		_ = m.file.Close()
		m.file = nil
	}

	path := logFileName(m.cfg.Dir, today)
	if m.cfg.MaxSizeMB > 0 {
		if info, err := os.Stat(path); err == nil && info.Size() >= int64(m.cfg.MaxSizeMB)*1024*1024 {
			for seq := 1; seq < 100; seq++ {
				candidate := filepath.Join(m.cfg.Dir, fmt.Sprintf("tabpad-%s.%d.log", today, seq))
				if _, err := os.Stat(candidate); os.IsNotExist(err) {
					path = candidate
					break
				}
			}
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	m.file = f
	m.curDate = today
	return nil
}

// Cleanup removes log files older than MaxAgeDays and returns how many were removed.
func (m *Manager) Cleanup() (int, error) {
	if m.cfg.MaxAgeDays <= 0 {
		return 0, nil
	}
	files, err := ListLogFiles(m.cfg.Dir)
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().AddDate(0, 0, -m.cfg.MaxAgeDays)
	current := m.CurrentLogFile()
	removed := 0
	for _, f := range files {
		if f.Path == current || !f.ModTime.Before(cutoff) {
			continue
		}
		if err := os.Remove(f.Path); err == nil {
			removed++
		}
	}
	return removed, nil
}

// LogFileInfo describes one log file.
type LogFileInfo struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// ListLogFiles lists log files in dir, newest first.
func ListLogFiles(dir string) ([]LogFileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var files []LogFileInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, LogFileInfo{
			Name:    entry.Name(),
			Path:    filepath.Join(dir, entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}

// Discard returns a logger that drops every record. Tests and library callers
// that don't care about logs use it instead of nil checks.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func todayDate() string {
	return time.Now().Format("2006-01-02")
}

func logFileName(dir, date string) string {
	return filepath.Join(dir, fmt.Sprintf("tabpad-%s.log", date))
}
