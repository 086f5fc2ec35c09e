/*
Package tui implements the terminal user interface for tabpad.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: tab registry access through editor.Editor, mode, theme styles
  - Update: key presses become keybinds actions which call the editor
  - View: menu bar, tab bar, editor pane and status bar

# Key Components

  - model.go: Model struct, Update, View and status messages
  - keys.go: key routing and the action dispatcher shared by keys and menus
  - menu.go: File, Edit, Format, View and Options menus
  - dialogs.go: huh forms for open, save as, rename, find, replace and colours
  - recent_modal.go: fuzzy filtered recent files
  - render.go: editor pane with tab stops, wide runes and selection

# Modes

  - ModeEditor: typing goes to the active tab
  - ModeMenu: the menu bar has focus
  - ModeDialog: a form collects input; esc cancels
  - ModeRecent: recent files list
  - ModeHelp: key binding viewer

# Themes

Model implements theme.Applier. Applying or reloading a theme rebuilds the
lipgloss styles, so every frame after it uses the new colours.
*/
package tui
