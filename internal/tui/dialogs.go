package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/tabpad/internal/document"
	"github.com/studiowebux/tabpad/internal/editor"
	"github.com/studiowebux/tabpad/internal/theme"
)

// promptKind identifies the dialog being shown
type promptKind int

const (
	promptOpen promptKind = iota
	promptSaveAs
	promptRename
	promptFind
	promptReplace
	promptColor
	promptConfirmQuit
	promptConfirmClose
)

// prompt is an open dialog. The form writes into the value fields.
type prompt struct {
	kind    promptKind
	title   string
	value   string
	second  string
	confirm bool
	field   colorField
	form    *huh.Form
}

func notEmpty(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", label)
		}
		return nil
	}
}

func validColor(s string) error {
	if !theme.ValidColor(s) {
		return fmt.Errorf("not a colour: use #rrggbb, #rgb or a name like navy")
	}
	return nil
}

// openPrompt builds the dialog for kind and switches to dialog mode
func (m *Model) openPrompt(kind promptKind) tea.Cmd {
	p := &prompt{kind: kind}

	tab, err := m.editor.Registry().ActiveTab()
	if err != nil {
		return m.setError("No document", err)
	}

	var groups []*huh.Group
	switch kind {
	case promptOpen:
		p.title = "Open"
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("File to open").
				Placeholder("notes.txt").
				Value(&p.value).
				Validate(notEmpty("path")),
		))
	case promptSaveAs:
		p.title = "Save As"
		p.value = tab.Path
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Save as").
				Placeholder("notes.txt").
				Value(&p.value).
				Validate(notEmpty("path")),
		))
	case promptRename:
		p.title = "Rename"
		p.value = tab.Path
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Rename file to").
				Description("The file is moved; an existing file is never replaced").
				Value(&p.value).
				Validate(notEmpty("path")),
		))
	case promptFind:
		p.title = "Find"
		p.value = m.find.GetWord()
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Find what").
				Value(&p.value).
				Validate(notEmpty("search text")),
		))
	case promptReplace:
		p.title = "Replace"
		p.value, p.second = m.find.GetReplace()
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Find what").
				Value(&p.value).
				Validate(notEmpty("search text")),
			huh.NewInput().
				Title("Replace with").
				Value(&p.second),
		))
	case promptConfirmQuit:
		p.title = "Exit"
		groups = append(groups, huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%d tab(s) have unsaved changes. Quit anyway?", m.editor.Registry().ModifiedCount())).
				Affirmative("Quit").
				Negative("Cancel").
				Value(&p.confirm),
		))
	case promptConfirmClose:
		p.title = "Close Tab"
		groups = append(groups, huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s has unsaved changes. Close anyway?", tab.Label)).
				Affirmative("Close").
				Negative("Cancel").
				Value(&p.confirm),
		))
	default:
		return nil
	}

	return m.showPrompt(p, groups...)
}

// openColorPrompt asks for a new value of one theme colour
func (m *Model) openColorPrompt(field colorField) tea.Cmd {
	p := &prompt{
		kind:  promptColor,
		title: fmt.Sprintf("Change %s Color", field),
		field: field,
		value: field.current(m.theme),
	}
	return m.showPrompt(p, huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("%s color", field)).
			Description("#rrggbb, #rgb or a colour name").
			Value(&p.value).
			Validate(validColor),
	))
}

func (m *Model) showPrompt(p *prompt, groups ...*huh.Group) tea.Cmd {
	p.form = huh.NewForm(groups...).
		WithShowHelp(false).
		WithWidth(DialogWidth - ViewportPaddingHorizontal - ViewportBorderWidth)

	m.prompt = p
	m.mode = ModeDialog
	return p.form.Init()
}

// handleDialogKeys handles keyboard input while a dialog is open
func (m *Model) handleDialogKeys(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "esc" {
		m.closePrompt()
		return m.setStatusMessage("Cancelled")
	}
	return m.updatePrompt(msg)
}

// updatePrompt forwards msg to the form and submits it once completed
func (m *Model) updatePrompt(msg tea.Msg) tea.Cmd {
	if m.prompt == nil {
		return nil
	}

	model, cmd := m.prompt.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.prompt.form = f
	}

	switch m.prompt.form.State {
	case huh.StateCompleted:
		return tea.Batch(cmd, m.submitPrompt())
	case huh.StateAborted:
		m.closePrompt()
		return cmd
	}

	return cmd
}

// closePrompt drops the dialog and returns to the editor
func (m *Model) closePrompt() {
	m.prompt = nil
	m.mode = ModeEditor
}

// submitPrompt runs the dialog's command with the entered values
func (m *Model) submitPrompt() tea.Cmd {
	p := m.prompt
	m.closePrompt()
	if p == nil {
		return nil
	}
	value := strings.TrimSpace(p.value)

	var cmd tea.Cmd
	switch p.kind {
	case promptOpen:
		cmd = m.openFile(value)

	case promptSaveAs:
		if err := m.editor.SaveAs(value); err != nil {
			return m.setFileError("Save failed", err)
		}
		tab, _ := m.editor.Registry().ActiveTab()
		cmd = m.setStatusMessage("Saved " + tab.Path)

	case promptRename:
		if err := m.editor.Rename(value); err != nil {
			if errors.Is(err, document.ErrExists) {
				return m.setErrorMessage(fmt.Sprintf("Rename failed: %s already exists", value))
			}
			return m.setFileError("Rename failed", err)
		}
		tab, _ := m.editor.Registry().ActiveTab()
		cmd = m.setStatusMessage("Renamed to " + tab.Path)

	case promptFind:
		// The search text is used verbatim
		m.find.SetWord(p.value)
		cmd = m.findNext()

	case promptReplace:
		m.find.SetReplace(p.value, p.second)
		n, err := m.editor.ReplaceWord(p.value, p.second)
		switch {
		case errors.Is(err, editor.ErrEmptyPattern):
			return m.setErrorMessage("Replace: search text cannot be empty")
		case err != nil:
			return m.setError("Replace", err)
		case n == 0:
			cmd = m.setStatusMessage(fmt.Sprintf("%q not found", p.value))
		default:
			cmd = m.setStatusMessage(fmt.Sprintf("Replaced %d occurrence(s)", n))
		}

	case promptColor:
		m.editor.UpdateColors(p.field.partial(value), m)
		cmd = m.setStatusMessage(fmt.Sprintf("%s color set to %s", p.field, value))

	case promptConfirmQuit:
		if p.confirm {
			return tea.Quit
		}

	case promptConfirmClose:
		if p.confirm {
			cmd = m.closeActiveTab()
		}
	}

	m.ensureCursorVisible()
	return cmd
}

// openFile loads path into the active tab. A tab with unsaved changes is
// kept and the file opens in a new tab instead.
func (m *Model) openFile(path string) tea.Cmd {
	tab, err := m.editor.Registry().ActiveTab()
	if err != nil {
		return m.setFileError("Open failed", err)
	}

	if tab.Modified() {
		if _, err := m.editor.OpenInNewTab(path); err != nil {
			return m.setFileError("Open failed", err)
		}
	} else if err := m.editor.Open(path); err != nil {
		return m.setFileError("Open failed", err)
	}

	opened, _ := m.editor.Registry().ActiveTab()
	return m.setStatusMessage("Opened " + opened.Path)
}

// renderDialog renders the open dialog centered on screen
func (m *Model) renderDialog() string {
	if m.prompt == nil {
		return m.renderMain()
	}

	content := m.prompt.form.View()
	height := lipgloss.Height(content) + ModalOverheadLines + ModalFooterLines
	return m.renderModalWithFooter(m.prompt.title, content, "enter: confirm | esc: cancel", DialogWidth, height)
}
