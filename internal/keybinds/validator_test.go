package keybinds

import (
	"strings"
	"testing"
)

func TestNewValidator(t *testing.T) {
	v := NewValidator()

	if v == nil {
		t.Fatal("NewValidator returned nil")
	}

	if !v.reservedKeys["ctrl+q"] {
		t.Error("Expected ctrl+q to be a reserved key")
	}

	for _, ctx := range []Context{ContextEditor, ContextMenu, ContextRecent, ContextHelp} {
		if v.contextHierarchy[ctx] != ContextGlobal {
			t.Errorf("Expected %s to inherit from global, got %q", ctx, v.contextHierarchy[ctx])
		}
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name: "invalid error",
			err: ValidationError{
				Type:    "invalid",
				Context: ContextEditor,
				Key:     "ctrl+x",
				Message: "unknown action: explode",
			},
			expected: "[invalid] ctrl+x in context 'editor': unknown action: explode",
		},
		{
			name: "empty key",
			err: ValidationError{
				Type:    "invalid",
				Context: ContextGlobal,
				Message: "key cannot be empty",
			},
			expected: "[invalid]  in context 'global': key cannot be empty",
		},
		{
			name: "warning",
			err: ValidationError{
				Type:    "warning",
				Context: ContextRecent,
				Key:     "f5",
				Message: "shadows global binding",
			},
			expected: "[warning] f5 in context 'recent': shadows global binding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidationResult_String(t *testing.T) {
	empty := &ValidationResult{}
	if empty.HasErrors() || empty.HasWarnings() {
		t.Error("Expected empty result to have no issues")
	}
	if empty.String() != "No issues found" {
		t.Errorf("Expected 'No issues found', got %q", empty.String())
	}

	result := &ValidationResult{
		Errors:   []ValidationError{{Type: "invalid", Context: ContextEditor, Key: "x", Message: "bad"}},
		Warnings: []ValidationError{{Type: "warning", Context: ContextMenu, Key: "y", Message: "meh"}},
	}
	if !result.HasErrors() || !result.HasWarnings() {
		t.Error("Expected errors and warnings")
	}
	got := result.String()
	for _, want := range []string{"Errors (1):", "Warnings (1):", "[invalid] x", "[warning] y"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in output, got %q", want, got)
		}
	}
}

func TestCheckInvalidBindings(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name         string
		setup        func(r *Registry)
		expectErrors int
	}{
		{
			name: "valid bindings",
			setup: func(r *Registry) {
				r.Register(ContextEditor, "ctrl+x", ActionCut)
			},
			expectErrors: 0,
		},
		{
			name: "unknown action",
			setup: func(r *Registry) {
				r.Register(ContextEditor, "ctrl+x", Action("explode"))
			},
			expectErrors: 1,
		},
		{
			name: "modifier without key",
			setup: func(r *Registry) {
				r.Register(ContextEditor, "ctrl+", ActionCut)
			},
			expectErrors: 1,
		},
		{
			name: "bad key and bad action",
			setup: func(r *Registry) {
				r.Register(ContextGlobal, "alt+", Action(""))
			},
			expectErrors: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			tt.setup(r)
			result := &ValidationResult{}
			v.checkInvalidBindings(r, result)

			if len(result.Errors) != tt.expectErrors {
				t.Errorf("Expected %d errors, got %d: %v", tt.expectErrors, len(result.Errors), result.Errors)
			}
		})
	}
}

func TestCheckReservedKeys(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name           string
		setup          func(r *Registry)
		expectWarnings int
	}{
		{
			name: "quit on reserved key",
			setup: func(r *Registry) {
				r.Register(ContextGlobal, "ctrl+q", ActionQuit)
			},
			expectWarnings: 0,
		},
		{
			name: "reserved key rebound globally",
			setup: func(r *Registry) {
				r.Register(ContextGlobal, "ctrl+q", ActionSave)
			},
			expectWarnings: 1,
		},
		{
			name: "reserved key rebound in editor",
			setup: func(r *Registry) {
				r.Register(ContextEditor, "ctrl+q", ActionCut)
			},
			expectWarnings: 1,
		},
		{
			name: "ctrl+c is copy, not reserved",
			setup: func(r *Registry) {
				r.Register(ContextEditor, "ctrl+c", ActionCopy)
			},
			expectWarnings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			tt.setup(r)
			result := &ValidationResult{}
			v.checkReservedKeys(r, result)

			if len(result.Warnings) != tt.expectWarnings {
				t.Errorf("Expected %d warnings, got %d", tt.expectWarnings, len(result.Warnings))
			}
		})
	}
}

func TestCheckShadowing(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name           string
		setup          func(r *Registry)
		expectWarnings int
	}{
		{
			name: "no shadowing",
			setup: func(r *Registry) {
				r.Register(ContextGlobal, "ctrl+s", ActionSave)
				r.Register(ContextEditor, "ctrl+x", ActionCut)
			},
			expectWarnings: 0,
		},
		{
			name: "editor shadows global with different action",
			setup: func(r *Registry) {
				r.Register(ContextGlobal, "ctrl+s", ActionSave)
				r.Register(ContextEditor, "ctrl+s", ActionSelectAll)
			},
			expectWarnings: 1,
		},
		{
			name: "same action as global",
			setup: func(r *Registry) {
				r.Register(ContextGlobal, "ctrl+s", ActionSave)
				r.Register(ContextEditor, "ctrl+s", ActionSave)
			},
			expectWarnings: 0,
		},
		{
			name: "closing with the opening key",
			setup: func(r *Registry) {
				r.Register(ContextGlobal, "f1", ActionOpenHelp)
				r.Register(ContextHelp, "f1", ActionCloseModal)
			},
			expectWarnings: 0,
		},
		{
			name: "multiple shadowing",
			setup: func(r *Registry) {
				r.Register(ContextGlobal, "f5", ActionInsertDateTime)
				r.Register(ContextGlobal, "alt+s", ActionSaveAs)
				r.Register(ContextRecent, "f5", ActionNavigateDown)
				r.Register(ContextMenu, "alt+s", ActionConfirm)
			},
			expectWarnings: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			tt.setup(r)
			result := &ValidationResult{}
			v.checkShadowing(r, result)

			if len(result.Warnings) != tt.expectWarnings {
				t.Errorf("Expected %d warnings, got %d: %v", tt.expectWarnings, len(result.Warnings), result.Warnings)
			}
		})
	}
}

func TestCheckUnknownContexts(t *testing.T) {
	v := NewValidator()
	r := NewRegistry()
	r.Register(ContextEditor, "ctrl+x", ActionCut)
	r.Register(Context("sidebar"), "x", ActionCut)

	result := &ValidationResult{}
	v.checkUnknownContexts(r, result)

	if len(result.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(result.Warnings))
	}
	if result.Warnings[0].Context != Context("sidebar") {
		t.Errorf("Expected warning for sidebar, got %s", result.Warnings[0].Context)
	}
}

func TestValidateRegistry(t *testing.T) {
	v := NewValidator()

	result := v.ValidateRegistry(NewDefaultRegistry())
	if result.HasErrors() || result.HasWarnings() {
		t.Errorf("Expected default registry to be clean, got:\n%s", result.String())
	}

	r := NewDefaultRegistry()
	r.Register(ContextEditor, "ctrl+q", Action("explode"))
	result = v.ValidateRegistry(r)
	if !result.HasErrors() {
		t.Error("Expected unknown action to be an error")
	}
	if !result.HasWarnings() {
		t.Error("Expected reserved key rebind to be a warning")
	}
}

func TestValidateConfig(t *testing.T) {
	v := NewValidator()

	valid := &Config{
		Version: "1.0",
		Editor:  map[string]string{"ctrl+k": "cut"},
	}
	if result := v.ValidateConfig(valid); result.HasErrors() {
		t.Errorf("Expected valid config, got:\n%s", result.String())
	}

	invalid := &Config{
		Version: "1.0",
		Editor:  map[string]string{"ctrl+k": "explode"},
	}
	result := v.ValidateConfig(invalid)
	if !result.HasErrors() {
		t.Fatal("Expected errors for unknown action")
	}
	if !strings.Contains(result.Errors[0].Message, "unknown action: explode") {
		t.Errorf("Unexpected message: %s", result.Errors[0].Message)
	}
}

func TestFindConflicts(t *testing.T) {
	ok := &Config{Global: map[string]string{"ctrl+q": "quit"}}
	if conflicts := FindConflicts(ok); len(conflicts) != 0 {
		t.Errorf("Expected no conflicts, got %v", conflicts)
	}

	bad := &Config{Menu: map[string]string{"alt+": "confirm"}}
	conflicts := FindConflicts(bad)
	if len(conflicts) != 1 {
		t.Fatalf("Expected 1 conflict, got %v", conflicts)
	}
	if !strings.Contains(conflicts[0], "modifier without key") {
		t.Errorf("Unexpected conflict: %s", conflicts[0])
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"ctrl+s", false},
		{"f10", false},
		{"shift+insert", false},
		{"q", false},
		{"", true},
		{"ctrl+", true},
		{"alt+", true},
		{"shift+", true},
		{"super+", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAction(t *testing.T) {
	tests := []struct {
		action  string
		wantErr bool
	}{
		{"quit", false},
		{"save_as", false},
		{"insert_datetime", false},
		{"", true},
		{"quit_force", true},
		{"Save", true},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			err := ValidateAction(tt.action)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAction(%q) error = %v, wantErr %v", tt.action, err, tt.wantErr)
			}
		})
	}
}
