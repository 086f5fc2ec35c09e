package document

import (
	"errors"
	"fmt"
)

var (
	// ErrNoActiveTab is returned when no tab has focus.
	ErrNoActiveTab = errors.New("no active tab")
	// ErrTabIndex is returned for an index outside the open tabs.
	ErrTabIndex = errors.New("tab index out of range")
	// ErrEmptyLabel is returned when renaming a tab to an empty label.
	ErrEmptyLabel = errors.New("tab label cannot be empty")
	// ErrNoPath is returned by Save for a tab that was never saved. Callers
	// ask for a path and use SaveAs instead.
	ErrNoPath = errors.New("tab has no file path")
	// ErrExists is returned when a rename target is already a file.
	ErrExists = errors.New("file already exists")
	// ErrNotText is returned when a file is not valid UTF-8. Such files are
	// refused so saving can never rewrite their bytes.
	ErrNotText = errors.New("file is not UTF-8 text")
	// ErrNilTab is returned when a file operation gets a nil tab.
	ErrNilTab = errors.New("tab is nil")
)

// IOError reports a failed file operation. The registry state is unchanged
// when an IOError is returned, unless the error says otherwise.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
