package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal Context = "global" // Available everywhere
	ContextEditor Context = "editor" // Typing in the active tab
	ContextMenu   Context = "menu"   // Menu bar open
	ContextRecent Context = "recent" // Recent files list
	ContextHelp   Context = "help"   // Help viewer
)

const (
	// Global actions
	ActionQuit     Action = "quit"      // Quit application
	ActionOpenMenu Action = "open_menu" // Focus the menu bar
	ActionOpenHelp Action = "open_help" // Show key bindings

	// File menu
	ActionNewTab     Action = "new_tab"
	ActionOpenFile   Action = "open_file"
	ActionOpenRecent Action = "open_recent"
	ActionSave       Action = "save"
	ActionSaveAs     Action = "save_as"
	ActionRename     Action = "rename"
	ActionCloseTab   Action = "close_tab"

	// Edit menu
	ActionCut       Action = "cut"
	ActionCopy      Action = "copy"
	ActionPaste     Action = "paste"
	ActionUndo      Action = "undo"
	ActionRedo      Action = "redo"
	ActionSelectAll Action = "select_all"

	// Format menu
	ActionFontIncrease Action = "font_increase"
	ActionFontDecrease Action = "font_decrease"
	ActionReplace      Action = "replace"
	ActionFind         Action = "find"
	ActionFindNext     Action = "find_next"

	// View menu
	ActionToggleStatusBar Action = "toggle_status_bar"
	ActionNextTab         Action = "next_tab"
	ActionPrevTab         Action = "prev_tab"

	// Options menu
	ActionThemeWhite       Action = "theme_white"
	ActionThemeDark        Action = "theme_dark"
	ActionThemeBlue        Action = "theme_blue"
	ActionThemeGreen       Action = "theme_green"
	ActionThemeReload      Action = "theme_reload"
	ActionChangeBorder     Action = "change_border_color"
	ActionChangeBackground Action = "change_background_color"
	ActionChangeText       Action = "change_text_color"
	ActionInsertDateTime   Action = "insert_datetime"

	// Cursor movement in the editor
	ActionMoveLeft      Action = "move_left"
	ActionMoveRight     Action = "move_right"
	ActionMoveUp        Action = "move_up"
	ActionMoveDown      Action = "move_down"
	ActionMoveLineStart Action = "move_line_start"
	ActionMoveLineEnd   Action = "move_line_end"
	ActionMoveDocStart  Action = "move_doc_start"
	ActionMoveDocEnd    Action = "move_doc_end"
	ActionPageUp        Action = "page_up"
	ActionPageDown      Action = "page_down"

	// Selection in the editor
	ActionSelectLeft      Action = "select_left"
	ActionSelectRight     Action = "select_right"
	ActionSelectUp        Action = "select_up"
	ActionSelectDown      Action = "select_down"
	ActionSelectLineStart Action = "select_line_start"
	ActionSelectLineEnd   Action = "select_line_end"

	// Text editing
	ActionBackspace Action = "backspace"
	ActionDelete    Action = "delete"
	ActionNewline   Action = "newline"
	ActionIndent    Action = "indent"

	// Lists and menus
	ActionNavigateUp    Action = "navigate_up"
	ActionNavigateDown  Action = "navigate_down"
	ActionNavigateLeft  Action = "navigate_left"
	ActionNavigateRight Action = "navigate_right"
	ActionConfirm       Action = "confirm"
	ActionCloseModal    Action = "close_modal"
	ActionRemoveEntry   Action = "remove_entry"
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:     {"Exit", "File"},
	ActionOpenMenu: {"Open menu bar", "Global"},
	ActionOpenHelp: {"Show key bindings", "Global"},

	ActionNewTab:     {"New", "File"},
	ActionOpenFile:   {"Open", "File"},
	ActionOpenRecent: {"Recent files", "File"},
	ActionSave:       {"Save", "File"},
	ActionSaveAs:     {"Save As", "File"},
	ActionRename:     {"Rename", "File"},
	ActionCloseTab:   {"Close Tab", "File"},

	ActionCut:       {"Cut", "Edit"},
	ActionCopy:      {"Copy", "Edit"},
	ActionPaste:     {"Paste", "Edit"},
	ActionUndo:      {"Undo", "Edit"},
	ActionRedo:      {"Redo", "Edit"},
	ActionSelectAll: {"Select All", "Edit"},

	ActionFontIncrease: {"Increase Font Size", "Format"},
	ActionFontDecrease: {"Decrease Font Size", "Format"},
	ActionReplace:      {"Replace", "Format"},
	ActionFind:         {"Find", "Format"},
	ActionFindNext:     {"Find Next", "Format"},

	ActionToggleStatusBar: {"Toggle Status Bar", "View"},
	ActionNextTab:         {"Next Tab", "View"},
	ActionPrevTab:         {"Previous Tab", "View"},

	ActionThemeWhite:       {"White", "Theme"},
	ActionThemeDark:        {"Dark", "Theme"},
	ActionThemeBlue:        {"Blue", "Theme"},
	ActionThemeGreen:       {"Green", "Theme"},
	ActionThemeReload:      {"Reload", "Theme"},
	ActionChangeBorder:     {"Change Border Color", "Options"},
	ActionChangeBackground: {"Change Background Color", "Options"},
	ActionChangeText:       {"Change Text Color", "Options"},
	ActionInsertDateTime:   {"Insert Date/Time", "Options"},

	ActionMoveLeft:      {"Cursor left", "Navigation"},
	ActionMoveRight:     {"Cursor right", "Navigation"},
	ActionMoveUp:        {"Cursor up", "Navigation"},
	ActionMoveDown:      {"Cursor down", "Navigation"},
	ActionMoveLineStart: {"Start of line", "Navigation"},
	ActionMoveLineEnd:   {"End of line", "Navigation"},
	ActionMoveDocStart:  {"Start of document", "Navigation"},
	ActionMoveDocEnd:    {"End of document", "Navigation"},
	ActionPageUp:        {"Page up", "Navigation"},
	ActionPageDown:      {"Page down", "Navigation"},

	ActionSelectLeft:      {"Extend selection left", "Selection"},
	ActionSelectRight:     {"Extend selection right", "Selection"},
	ActionSelectUp:        {"Extend selection up", "Selection"},
	ActionSelectDown:      {"Extend selection down", "Selection"},
	ActionSelectLineStart: {"Select to start of line", "Selection"},
	ActionSelectLineEnd:   {"Select to end of line", "Selection"},

	ActionBackspace: {"Delete previous character", "Editing"},
	ActionDelete:    {"Delete next character", "Editing"},
	ActionNewline:   {"New line", "Editing"},
	ActionIndent:    {"Insert tab", "Editing"},

	ActionNavigateUp:    {"Move up", "Lists"},
	ActionNavigateDown:  {"Move down", "Lists"},
	ActionNavigateLeft:  {"Previous menu", "Lists"},
	ActionNavigateRight: {"Next menu", "Lists"},
	ActionConfirm:       {"Select", "Lists"},
	ActionCloseModal:    {"Close", "Lists"},
	ActionRemoveEntry:   {"Forget entry", "Lists"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{Description: string(action), Category: "Other"}
}

// IsKnownAction reports whether action is defined.
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}
