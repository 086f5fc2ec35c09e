package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/studiowebux/tabpad/internal/config"
	"github.com/studiowebux/tabpad/internal/keybinds"
	"github.com/studiowebux/tabpad/internal/recent"
	"github.com/studiowebux/tabpad/internal/theme"
	"github.com/studiowebux/tabpad/internal/version"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "List, show and apply colour themes",
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the preset themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tBACKGROUND\tTEXT\tBORDER\tTABS")
		for _, name := range theme.PresetNames() {
			t, _ := theme.Preset(name)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", name, t.BackgroundColor, t.TextColor, t.BorderColor, t.TabBgColor)
		}
		return w.Flush()
	},
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the theme the editor will use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.Close()

		store := env.themeStore()
		resolved := store.Load().Resolved()
		data, err := json.MarshalIndent(resolved, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s\n", store.Path(), data)
		return nil
	},
}

var themeApplyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Write a preset theme to the theme file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.Close()

		return applyPreset(cmd, env.themeStore(), args[0])
	},
}

var themePickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a preset theme interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.Close()

		var name string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions(theme.PresetNames()...)...).
				Value(&name),
		))
		if err := form.Run(); err != nil {
			return err
		}

		return applyPreset(cmd, env.themeStore(), name)
	},
}

func applyPreset(cmd *cobra.Command, store *theme.Store, name string) error {
	if !store.ApplyNamed(name, nil) {
		return fmt.Errorf("unknown theme %q (available: %v)", name, theme.PresetNames())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Theme %s written to %s\n", name, store.Path())
	return nil
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Export and validate key bindings",
}

// Flags for keybinds export
var (
	keybindsOutput   string
	keybindsDefaults bool
)

var keybindsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the active key bindings as keybinds.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		cfg := keybinds.ExportDefaults()
		if !keybindsDefaults {
			registry, err := keybinds.LoadOrDefault(config.GetKeybindsFilePath())
			if err != nil {
				return err
			}
			cfg = keybinds.ExportConfig(registry)
		}

		if keybindsOutput != "" {
			if err := keybinds.SaveConfig(cfg, keybindsOutput); err != nil {
				return fmt.Errorf("failed to write %s: %w", keybindsOutput, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key bindings written to %s\n", keybindsOutput)
			return nil
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var keybindsValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a keybinds.json file for mistakes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		path := config.GetKeybindsFilePath()
		if len(args) > 0 {
			path = args[0]
		}

		cfg, err := keybinds.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}

		result := keybinds.NewValidator().ValidateConfig(cfg)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", path, result.String())
		if result.HasErrors() {
			return fmt.Errorf("%s has invalid key bindings", path)
		}
		return nil
	},
}

// Flags for recent
var (
	recentLimit int
	recentClear bool
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List or clear recently opened files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.Close()

		mgr, err := recent.NewManager(config.DatabasePath)
		if err != nil {
			return err
		}
		defer mgr.Close()

		if recentClear {
			if err := mgr.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Recent files cleared")
			return nil
		}

		limit := recentLimit
		if limit <= 0 {
			limit = env.settings.Recent.Limit
		}
		entries, err := mgr.List(limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No recent files")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "OPENED\tCOUNT\tPATH")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%d\t%s\n", e.OpenedAt.Local().Format(time.DateTime), e.OpenCount, e.Path)
		}
		return w.Flush()
	},
}

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and optionally check for a newer release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "tabpad %s\n", version.Version)
		if !versionCheck {
			return nil
		}

		release, newer, err := version.NewChecker().CheckForUpdate(context.Background(), version.Version)
		if err != nil {
			return fmt.Errorf("update check failed: %w", err)
		}
		if newer {
			fmt.Fprintf(cmd.OutOrStdout(), "A newer version is available: %s\n%s\n", release.Version(), release.HTMLURL)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "You are running the latest version")
		}
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeListCmd, themeShowCmd, themeApplyCmd, themePickCmd)

	keybindsExportCmd.Flags().StringVarP(&keybindsOutput, "output", "o", "", "Write to file instead of stdout")
	keybindsExportCmd.Flags().BoolVar(&keybindsDefaults, "defaults", false, "Export the built-in defaults, ignoring keybinds.json")
	keybindsCmd.AddCommand(keybindsExportCmd, keybindsValidateCmd)

	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 0, "Number of entries to show (default: settings recent.limit)")
	recentCmd.Flags().BoolVar(&recentClear, "clear", false, "Forget all recent files")

	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check GitHub for a newer release")
}
