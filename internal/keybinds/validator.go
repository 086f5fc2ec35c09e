package keybinds

import (
	"fmt"
	"strings"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys are keys that should not be rebound
	reservedKeys map[string]bool

	// contextHierarchy defines context inheritance
	contextHierarchy map[Context]Context
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]bool{
			"ctrl+q": true, // Quit should always work
		},
		contextHierarchy: map[Context]Context{
			ContextEditor: ContextGlobal,
			ContextMenu:   ContextGlobal,
			ContextRecent: ContextGlobal,
			ContextHelp:   ContextGlobal,
		},
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	// Check for keys or actions that cannot work
	v.checkInvalidBindings(registry, result)

	// Check for conflicts with reserved keys
	v.checkReservedKeys(registry, result)

	// Check for shadowing (context-specific binding hiding global binding)
	v.checkShadowing(registry, result)

	// Check for contexts the TUI never enters
	v.checkUnknownContexts(registry, result)

	return result
}

// ValidateConfig validates a configuration before applying it
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	// Create a temporary registry to validate
	registry := NewRegistry()
	if err := ApplyConfig(registry, config); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Type:    "invalid",
			Message: err.Error(),
		})
		return result
	}

	// Validate the registry
	return v.ValidateRegistry(registry)
}

// checkInvalidBindings reports empty or malformed keys and unknown actions
func (v *Validator) checkInvalidBindings(registry *Registry, result *ValidationResult) {
	for _, context := range registry.Contexts() {
		for _, b := range registry.sortedBindings(context) {
			if err := ValidateKey(b.Key); err != nil {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Key:     b.Key,
					Message: err.Error(),
				})
			}
			if err := ValidateAction(string(b.Action)); err != nil {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Key:     b.Key,
					Message: err.Error(),
				})
			}
		}
	}
}

// checkReservedKeys checks if any reserved keys have been rebound
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	for _, context := range registry.Contexts() {
		for _, b := range registry.sortedBindings(context) {
			if v.reservedKeys[b.Key] && b.Action != ActionQuit {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     b.Key,
					Message: "reserved key rebound (may cause issues)",
				})
			}
		}
	}
}

// checkShadowing checks for context-specific bindings that shadow global bindings.
// Closing a view with the key that opened it is not reported.
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	globalBindings := registry.bindings[ContextGlobal]
	if globalBindings == nil {
		return
	}

	for _, context := range registry.Contexts() {
		if context == ContextGlobal {
			continue
		}

		for _, b := range registry.sortedBindings(context) {
			globalAction, hasGlobal := globalBindings[b.Key]
			if !hasGlobal || b.Action == globalAction || b.Action == ActionCloseModal {
				continue
			}
			result.Warnings = append(result.Warnings, ValidationError{
				Type:    "warning",
				Context: context,
				Key:     b.Key,
				Message: fmt.Sprintf("shadows global binding (%s -> %s)", globalAction, b.Action),
			})
		}
	}
}

// checkUnknownContexts warns about bindings in contexts outside the hierarchy
func (v *Validator) checkUnknownContexts(registry *Registry, result *ValidationResult) {
	for _, context := range registry.Contexts() {
		if context == ContextGlobal {
			continue
		}
		if _, ok := v.contextHierarchy[context]; !ok {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:    "warning",
				Context: context,
				Message: "unknown context, bindings are never used",
			})
		}
	}
}

// FindConflicts lists every error that keeps a config from applying cleanly
func FindConflicts(config *Config) []string {
	validator := NewValidator()
	result := validator.ValidateConfig(config)

	var conflicts []string
	for _, err := range result.Errors {
		conflicts = append(conflicts, err.Error())
	}

	return conflicts
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	// Check for valid modifier combinations
	validModifiers := []string{"ctrl+", "alt+", "shift+", "super+"}
	hasModifier := false
	for _, mod := range validModifiers {
		if strings.HasPrefix(key, mod) {
			hasModifier = true
			break
		}
	}

	// If it has a modifier, ensure there's something after it
	if hasModifier {
		for _, mod := range validModifiers {
			if key == mod {
				return fmt.Errorf("modifier without key: %s", key)
			}
		}
	}

	return nil
}

// ValidateAction checks if an action string is valid
func ValidateAction(actionStr string) error {
	if actionStr == "" {
		return fmt.Errorf("action cannot be empty")
	}
	if !IsKnownAction(Action(actionStr)) {
		return fmt.Errorf("unknown action: %s", actionStr)
	}
	return nil
}
