package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerEditorBindings(r)
	registerMovementBindings(r)
	registerMenuBindings(r)
	registerRecentBindings(r)
	registerHelpBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes.
// Save, Save As and Insert Date/Time keep their accelerators wherever focus is.
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+q", ActionQuit)
	r.Register(ContextGlobal, "f10", ActionOpenMenu)
	r.Register(ContextGlobal, "f1", ActionOpenHelp)
	r.Register(ContextGlobal, "ctrl+s", ActionSave)
	r.Register(ContextGlobal, "alt+s", ActionSaveAs)
	r.Register(ContextGlobal, "f5", ActionInsertDateTime)
}

// registerEditorBindings sets up the editing shortcuts of the active tab
func registerEditorBindings(r *Registry) {
	// File
	r.Register(ContextEditor, "ctrl+n", ActionNewTab)
	r.Register(ContextEditor, "ctrl+o", ActionOpenFile)
	r.Register(ContextEditor, "ctrl+e", ActionOpenRecent)
	r.Register(ContextEditor, "ctrl+w", ActionCloseTab)

	// Edit
	r.Register(ContextEditor, "ctrl+x", ActionCut)
	r.Register(ContextEditor, "ctrl+c", ActionCopy)
	r.RegisterMultiple(ContextEditor, []string{"ctrl+v", "shift+insert"}, ActionPaste)
	r.Register(ContextEditor, "ctrl+z", ActionUndo)
	r.Register(ContextEditor, "ctrl+y", ActionRedo)
	r.Register(ContextEditor, "ctrl+a", ActionSelectAll)

	// Format
	r.Register(ContextEditor, "ctrl+f", ActionFind)
	r.Register(ContextEditor, "f3", ActionFindNext)
	r.Register(ContextEditor, "ctrl+r", ActionReplace)

	// View
	r.RegisterMultiple(ContextEditor, []string{"alt+right", "ctrl+pgdown"}, ActionNextTab)
	r.RegisterMultiple(ContextEditor, []string{"alt+left", "ctrl+pgup"}, ActionPrevTab)

	// Text
	r.Register(ContextEditor, "backspace", ActionBackspace)
	r.Register(ContextEditor, "delete", ActionDelete)
	r.Register(ContextEditor, "enter", ActionNewline)
	r.Register(ContextEditor, "tab", ActionIndent)
}

// registerMovementBindings sets up cursor movement and selection in the editor
func registerMovementBindings(r *Registry) {
	r.Register(ContextEditor, "left", ActionMoveLeft)
	r.Register(ContextEditor, "right", ActionMoveRight)
	r.Register(ContextEditor, "up", ActionMoveUp)
	r.Register(ContextEditor, "down", ActionMoveDown)
	r.Register(ContextEditor, "home", ActionMoveLineStart)
	r.Register(ContextEditor, "end", ActionMoveLineEnd)
	r.Register(ContextEditor, "ctrl+home", ActionMoveDocStart)
	r.Register(ContextEditor, "ctrl+end", ActionMoveDocEnd)
	r.Register(ContextEditor, "pgup", ActionPageUp)
	r.Register(ContextEditor, "pgdown", ActionPageDown)

	r.Register(ContextEditor, "shift+left", ActionSelectLeft)
	r.Register(ContextEditor, "shift+right", ActionSelectRight)
	r.Register(ContextEditor, "shift+up", ActionSelectUp)
	r.Register(ContextEditor, "shift+down", ActionSelectDown)
	r.Register(ContextEditor, "shift+home", ActionSelectLineStart)
	r.Register(ContextEditor, "shift+end", ActionSelectLineEnd)
}

// registerMenuBindings sets up navigation inside the menu bar
func registerMenuBindings(r *Registry) {
	r.Register(ContextMenu, "up", ActionNavigateUp)
	r.Register(ContextMenu, "down", ActionNavigateDown)
	r.Register(ContextMenu, "left", ActionNavigateLeft)
	r.Register(ContextMenu, "right", ActionNavigateRight)
	r.Register(ContextMenu, "enter", ActionConfirm)
	r.RegisterMultiple(ContextMenu, []string{"esc", "f10"}, ActionCloseModal)
}

// registerRecentBindings sets up the recent files list. Printable keys go to
// the filter, so only special keys are bound.
func registerRecentBindings(r *Registry) {
	r.Register(ContextRecent, "up", ActionNavigateUp)
	r.Register(ContextRecent, "down", ActionNavigateDown)
	r.Register(ContextRecent, "enter", ActionConfirm)
	r.Register(ContextRecent, "esc", ActionCloseModal)
	r.Register(ContextRecent, "ctrl+d", ActionRemoveEntry)
}

// registerHelpBindings sets up the help viewer
func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"esc", "q", "f1"}, ActionCloseModal)
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextHelp, "pgup", ActionPageUp)
	r.Register(ContextHelp, "pgdown", ActionPageDown)
}
