package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/studiowebux/tabpad/internal/clipboard"
	"github.com/studiowebux/tabpad/internal/config"
	"github.com/studiowebux/tabpad/internal/document"
	"github.com/studiowebux/tabpad/internal/editor"
	"github.com/studiowebux/tabpad/internal/keybinds"
	"github.com/studiowebux/tabpad/internal/logger"
	"github.com/studiowebux/tabpad/internal/recent"
	"github.com/studiowebux/tabpad/internal/theme"
	"github.com/studiowebux/tabpad/internal/tui"
	"github.com/studiowebux/tabpad/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tabpad [files...]",
	Short: "tabpad - a tabbed text editor for the terminal",
	Long: `tabpad is a multi-tab plain text editor with a menu bar, themes and
configurable key bindings.

Each file argument opens in its own tab. Without arguments tabpad starts
with one blank tab.

Examples:
  tabpad                                # Start with a blank tab
  tabpad notes.txt todo.md              # Open two files
  tabpad --theme-file ~/theme.json      # Use another theme file
  tabpad --log-level debug              # Verbose log file
  tabpad theme apply dark               # Switch theme without starting the editor`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.Close()

		return runTUI(env, args)
	},
}

// Flags for all commands
var (
	flagThemeFile string
	flagConfig    string
	flagLogLevel  string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagThemeFile, "theme-file", "", "Theme file (default: settings theme_file or ./theme.json)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Settings file (default: ~/.tabpad/settings.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug/info/warn/error)")

	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(keybindsCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(versionCmd)
}

// environment holds everything built from settings and flags
type environment struct {
	settings config.Settings
	logs     *logger.Manager
	log      *slog.Logger
}

// setup initializes the config directory, settings and logging
func setup() (*environment, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	settingsPath := config.SettingsFile
	if flagConfig != "" {
		expanded, err := config.ExpandPath(flagConfig)
		if err != nil {
			return nil, err
		}
		settingsPath = expanded
	}

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if flagLogLevel != "" {
		settings.Logging.Level = flagLogLevel
	}

	logs, err := logger.New(logger.Config{
		Dir:        config.LogDir,
		Level:      logger.ParseLevel(settings.Logging.Level),
		MaxAgeDays: settings.Logging.MaxAgeDays,
		MaxSizeMB:  settings.Logging.MaxSizeMB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	log := logs.NewLogger()

	if removed, err := logs.Cleanup(); err != nil {
		log.Warn("log cleanup failed", "error", err)
	} else if removed > 0 {
		log.Debug("removed old log files", "count", removed)
	}

	return &environment{settings: settings, logs: logs, log: log}, nil
}

// Close flushes and closes the log file
func (e *environment) Close() {
	if err := e.logs.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
	}
}

// themeStore returns the theme store selected by flags and settings
func (e *environment) themeStore() *theme.Store {
	path, err := config.ExpandPath(config.GetThemeFilePath(flagThemeFile, e.settings))
	if err != nil {
		path = config.DefaultThemeFile
	}
	return theme.NewStore(path, e.log)
}

// openRecent opens the recent files database. Failures are logged and the
// editor runs without recent files.
func (e *environment) openRecent() *recent.Manager {
	if !e.settings.Recent.Enabled {
		return nil
	}
	mgr, err := recent.NewManager(config.DatabasePath)
	if err != nil {
		e.log.Error("recent files unavailable", "path", config.DatabasePath, "error", err)
		return nil
	}
	if pruned, err := mgr.Prune(e.settings.Recent.Limit); err != nil {
		e.log.Warn("prune recent files", "error", err)
	} else if pruned > 0 {
		e.log.Debug("pruned recent files", "count", pruned)
	}
	return mgr
}

func runTUI(env *environment, files []string) error {
	log := env.log
	log.Info("starting tabpad", "version", version.Version, "files", len(files))

	keys, err := keybinds.LoadOrDefault(config.GetKeybindsFilePath())
	if err != nil {
		return err
	}
	if result := keybinds.NewValidator().ValidateRegistry(keys); result.HasErrors() || result.HasWarnings() {
		log.Warn("keybinding problems", "report", result.String())
	}

	mgr := env.openRecent()

	opts := editor.Options{
		Registry: document.NewRegistry(document.Options{
			FontSize:  env.settings.Font.Default,
			UndoLimit: env.settings.Editor.UndoLimit,
			Logger:    log,
		}),
		Themes:         env.themeStore(),
		Clipboard:      clipboard.NewSystem(),
		DateTimeLayout: env.settings.DateTimeLayout,
		FontIncrease:   env.settings.Font.Increase,
		FontDecrease:   env.settings.Font.Decrease,
		Logger:         log,
	}
	if mgr != nil {
		opts.Recent = mgr
	}
	ed := editor.New(opts)

	if err := openFiles(ed, files, log); err != nil {
		if mgr != nil {
			_ = mgr.Close()
		}
		return err
	}

	return tui.Run(tui.Options{
		Editor:   ed,
		Keybinds: keys,
		Recent:   mgr,
		Settings: env.settings,
		Logger:   log,
	})
}

// openFiles loads the first file into the blank tab and the rest into new
// tabs. Missing files are skipped with a warning.
func openFiles(ed *editor.Editor, files []string, log *slog.Logger) error {
	first := true
	for _, path := range files {
		var err error
		if first {
			err = ed.Open(path)
		} else {
			_, err = ed.OpenInNewTab(path)
		}
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn("file not found, skipped", "path", path)
			fmt.Fprintf(os.Stderr, "Warning: %s does not exist, skipped\n", path)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		first = false
	}
	return nil
}
