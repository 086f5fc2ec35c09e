package tui

import (
	"errors"
	"io/fs"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/tabpad/internal/document"
)

// categorizeFileError turns errors from opening, saving and renaming files
// into actionable messages for the status bar.
func categorizeFileError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, document.ErrExists):
		return "File already exists - choose another name"
	case errors.Is(err, document.ErrNotText):
		return "Not a UTF-8 text file - convert it to UTF-8 first"
	case errors.Is(err, document.ErrNoPath):
		return "File has no name yet - use Save As"
	case errors.Is(err, fs.ErrNotExist):
		return "File not found - check the path and parent directory"
	case errors.Is(err, fs.ErrPermission):
		return "Permission denied - check file and directory permissions"
	case errors.Is(err, syscall.EISDIR):
		return "Path is a directory - enter a file name"
	case errors.Is(err, syscall.ENOTDIR):
		return "A parent of the path is not a directory"
	case errors.Is(err, syscall.ENOSPC):
		return "No space left on device"
	case errors.Is(err, syscall.EROFS):
		return "Read-only file system - save somewhere else"
	case errors.Is(err, syscall.ENAMETOOLONG):
		return "File name too long"
	case errors.Is(err, syscall.EXDEV):
		return "Cannot rename across file systems - use Save As instead"
	}

	// Unknown errors are shown as they are
	return err.Error()
}

// setFileError reports a failed file operation in the status bar
func (m *Model) setFileError(action string, err error) tea.Cmd {
	m.log.Warn("file operation failed", "action", action, "error", err)
	return m.setErrorMessage(action + ": " + categorizeFileError(err))
}
