package document

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"unicode/utf8"

	"github.com/studiowebux/tabpad/internal/config"
)

// Open reads path into the active tab, replacing its text and history. On
// error nothing changes.
func (r *Registry) Open(path string) error {
	data, err := readText(path)
	if err != nil {
		r.log.Warn("open failed", "path", path, "error", err)
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active < 0 || r.active >= len(r.tabs) {
		return ErrNoActiveTab
	}
	tab := r.tabs[r.active]
	tab.Buffer.Load(data)
	r.assignPathLocked(tab, path)
	r.log.Info("opened file", "path", path, "tab", tab.ID)
	return nil
}

// OpenInNewTab reads path into a new active tab. The tab is only created
// once the file has been read.
func (r *Registry) OpenInNewTab(path string) (*Tab, error) {
	data, err := readText(path)
	if err != nil {
		r.log.Warn("open failed", "path", path, "error", err)
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	tab := r.newTabLocked()
	tab.Buffer.Load(data)
	r.assignPathLocked(tab, path)
	r.log.Info("opened file", "path", path, "tab", tab.ID)
	return tab, nil
}

// Save writes the tab to its backing file. A tab without a path returns ErrNoPath.
func (r *Registry) Save(tab *Tab) error {
	if tab == nil {
		return ErrNilTab
	}
	if tab.Path == "" {
		return ErrNoPath
	}
	return r.SaveAs(tab, tab.Path)
}

// SaveAs writes the tab to path and makes path its backing file.
func (r *Registry) SaveAs(tab *Tab, path string) error {
	if tab == nil {
		return ErrNilTab
	}
	if path == "" {
		return &IOError{Op: "save", Path: path, Err: ErrNoPath}
	}
	if err := writeFileAtomic(path, []byte(tab.Buffer.Text())); err != nil {
		r.log.Warn("save failed", "path", path, "error", err)
		return err
	}

	r.mu.Lock()
	r.assignPathLocked(tab, path)
	r.mu.Unlock()
	r.log.Info("saved file", "path", path, "tab", tab.ID)
	return nil
}

// Rename moves the tab's file to path: the text is written to path and the
// previous backing file is removed. An existing file at path is never
// overwritten. A tab without a backing file is simply saved to path.
func (r *Registry) Rename(tab *Tab, path string) error {
	if tab == nil {
		return ErrNilTab
	}
	old := tab.Path
	if old != "" && filepath.Clean(old) == filepath.Clean(path) {
		return r.Save(tab)
	}
	if _, err := os.Stat(path); err == nil {
		return &IOError{Op: "rename", Path: path, Err: ErrExists}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return &IOError{Op: "rename", Path: path, Err: err}
	}

	if err := r.SaveAs(tab, path); err != nil {
		return err
	}
	if old == "" {
		return nil
	}
	if err := os.Remove(old); err != nil && !errors.Is(err, fs.ErrNotExist) {
		// The tab already points at the new file; only the cleanup failed.
		r.log.Warn("remove old file after rename", "path", old, "error", err)
		return &IOError{Op: "remove", Path: old, Err: err}
	}
	r.log.Info("renamed file", "from", old, "to", path)
	return nil
}

func readText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &IOError{Op: "open", Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &IOError{Op: "open", Path: path, Err: syscall.EISDIR}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Op: "open", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &IOError{Op: "open", Path: path, Err: ErrNotText}
	}
	return string(data), nil
}

// writeFileAtomic replaces path with data through a temp file in the same
// directory, keeping the permission bits of an existing file.
func writeFileAtomic(path string, data []byte) error {
	perm := os.FileMode(config.FilePermissions)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return &IOError{Op: "save", Path: path, Err: syscall.EISDIR}
		}
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &IOError{Op: "save", Path: path, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &IOError{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return &IOError{Op: "save", Path: path, Err: err}
	}
	return nil
}
