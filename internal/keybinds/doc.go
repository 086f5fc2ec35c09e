/*
Package keybinds maps key presses to editor actions.

# Contexts

Every binding lives in a context. The TUI asks the registry for the context
matching its current mode and falls back to the global context:

  - global: quit, menu bar, help, save and save as, insert date/time
  - editor: typing, movement, selection and the menu accelerators
  - menu: navigation inside the open menu bar
  - recent: the recent files list
  - help: the key binding viewer

# Configuration

Users override the defaults with ~/.tabpad/keybinds.json. Each section maps a
key to an action name. Comments and trailing commas are accepted. The action
"none" removes a default binding:

	{
	  "version": "1.0",
	  // Quit with ctrl+x instead of cutting
	  "editor": {
	    "ctrl+x": "none",
	  },
	  "global": {
	    "ctrl+x": "quit",
	  }
	}

Unknown actions and malformed keys make LoadOrDefault fail so mistakes are
reported at startup instead of silently ignored.

# Validation

Validator reports invalid bindings as errors. Rebinding ctrl+q and shadowing a
global key from a mode context are reported as warnings.

	result := keybinds.NewValidator().ValidateRegistry(registry)
	if result.HasErrors() {
		fmt.Println(result.String())
	}
*/
package keybinds
