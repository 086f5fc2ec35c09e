package recent

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(filepath.Join(t.TempDir(), "db", "tabpad.db"))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	t.Cleanup(func() { _ = m.Close() })

	clock := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return m
}

func TestTouchAndList(t *testing.T) {
	m := newTestManager(t)
	for _, p := range []string{"/tmp/a.txt", "/tmp/b.txt", "/tmp/a.txt"} {
		if err := m.Touch(p); err != nil {
			t.Fatalf("Touch(%s): %v", p, err)
		}
	}

	entries, err := m.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Path != "/tmp/a.txt" || entries[0].OpenCount != 2 {
		t.Errorf("Expected a.txt first with count 2, got %+v", entries[0])
	}
	if entries[1].Path != "/tmp/b.txt" || entries[1].OpenCount != 1 {
		t.Errorf("Expected b.txt second with count 1, got %+v", entries[1])
	}
	if !entries[0].OpenedAt.After(entries[1].OpenedAt) {
		t.Error("Expected entries ordered by recency")
	}
	if entries[0].Name() != "a.txt" {
		t.Errorf("Expected name a.txt, got %q", entries[0].Name())
	}
}

func TestListLimit(t *testing.T) {
	m := newTestManager(t)
	for _, p := range []string{"/1", "/2", "/3"} {
		if err := m.Touch(p); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := m.List(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[0].Path != "/3" {
		t.Errorf("Expected 2 newest entries, got %+v", entries)
	}
}

func TestRemoveClearPrune(t *testing.T) {
	m := newTestManager(t)
	for _, p := range []string{"/a", "/b", "/c", "/d"} {
		if err := m.Touch(p); err != nil {
			t.Fatal(err)
		}
	}

	if err := m.Remove("/d"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	removed, err := m.Prune(2)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if removed != 1 {
		t.Errorf("Expected 1 pruned entry, got %d", removed)
	}
	entries, _ := m.List(10)
	if len(entries) != 2 || entries[0].Path != "/c" || entries[1].Path != "/b" {
		t.Errorf("Unexpected entries after prune: %+v", entries)
	}

	if err := m.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	entries, _ = m.List(10)
	if len(entries) != 0 {
		t.Errorf("Expected empty list, got %+v", entries)
	}
}

func TestTouchStoresAbsolutePath(t *testing.T) {
	m := newTestManager(t)
	if err := m.Touch("relative.txt"); err != nil {
		t.Fatal(err)
	}
	entries, _ := m.List(1)
	if len(entries) != 1 || !filepath.IsAbs(entries[0].Path) {
		t.Errorf("Expected absolute path, got %+v", entries)
	}
}

func TestFilter(t *testing.T) {
	entries := []Entry{
		{Path: "/home/u/notes.txt"},
		{Path: "/home/u/todo.md"},
		{Path: "/srv/readme.txt"},
	}

	if got := Filter(entries, ""); len(got) != 3 {
		t.Errorf("Expected empty query to keep all entries, got %d", len(got))
	}

	got := Filter(entries, "todo")
	if len(got) != 1 || got[0].Path != "/home/u/todo.md" {
		t.Errorf("Expected only todo.md, got %+v", got)
	}

	if got := Filter(entries, "zzzz"); len(got) != 0 {
		t.Errorf("Expected no matches, got %+v", got)
	}
}
