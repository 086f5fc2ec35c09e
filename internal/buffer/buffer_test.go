package buffer

import (
	"errors"
	"testing"
)

func typeString(b *Buffer, s string) {
	for _, r := range s {
		b.InsertRune(r)
	}
}

func TestNewAndText(t *testing.T) {
	b := New("héllo\nwörld")
	if b.Text() != "héllo\nwörld" {
		t.Errorf("Expected text to round trip, got %q", b.Text())
	}
	if b.Len() != 11 {
		t.Errorf("Expected 11 runes, got %d", b.Len())
	}
	if b.Cursor() != 0 {
		t.Errorf("Expected cursor at 0, got %d", b.Cursor())
	}
	if b.CanUndo() {
		t.Error("Expected fresh buffer to have no history")
	}
}

func TestInsertReplacesSelection(t *testing.T) {
	b := New("hello world")
	b.Select(6, 11)
	b.Insert("there")
	if b.Text() != "hello there" {
		t.Errorf("Expected 'hello there', got %q", b.Text())
	}
	if b.Cursor() != 11 || b.HasSelection() {
		t.Errorf("Expected cursor 11 without selection, got %d (selection %v)", b.Cursor(), b.HasSelection())
	}
}

func TestTypingIsUndoneAsOneStep(t *testing.T) {
	b := New("")
	typeString(b, "abc")
	b.InsertRune('\n')
	typeString(b, "de")

	if b.Text() != "abc\nde" {
		t.Fatalf("Expected 'abc\\nde', got %q", b.Text())
	}

	b.Undo()
	if b.Text() != "abc\n" {
		t.Errorf("After first undo expected 'abc\\n', got %q", b.Text())
	}
	b.Undo()
	if b.Text() != "abc" {
		t.Errorf("After second undo expected 'abc', got %q", b.Text())
	}
	b.Undo()
	if b.Text() != "" {
		t.Errorf("After third undo expected empty text, got %q", b.Text())
	}
	if b.Undo() {
		t.Error("Expected Undo to report false on empty history")
	}
}

func TestCursorMoveBreaksTypingGroup(t *testing.T) {
	b := New("")
	typeString(b, "ab")
	b.SetCursor(0)
	typeString(b, "x")

	b.Undo()
	if b.Text() != "ab" {
		t.Errorf("Expected 'ab' after undo, got %q", b.Text())
	}
}

func TestUndoRedo(t *testing.T) {
	b := New("one two")
	b.SetCursor(3)
	b.DeleteBackward()
	if b.Text() != "on two" {
		t.Fatalf("Expected 'on two', got %q", b.Text())
	}

	if !b.Undo() {
		t.Fatal("Expected Undo to succeed")
	}
	if b.Text() != "one two" || b.Cursor() != 3 {
		t.Errorf("Expected 'one two' with cursor 3, got %q cursor %d", b.Text(), b.Cursor())
	}

	if !b.Redo() {
		t.Fatal("Expected Redo to succeed")
	}
	if b.Text() != "on two" || b.Cursor() != 2 {
		t.Errorf("Expected 'on two' with cursor 2, got %q cursor %d", b.Text(), b.Cursor())
	}
	if b.Redo() {
		t.Error("Expected Redo to report false once exhausted")
	}
}

func TestNewEditClearsRedo(t *testing.T) {
	b := New("abc")
	b.SetCursor(3)
	b.DeleteBackward()
	b.Undo()
	b.Insert("!")
	if b.CanRedo() {
		t.Error("Expected redo history to be cleared by a new edit")
	}
}

func TestUndoLimit(t *testing.T) {
	b := New("")
	b.SetUndoLimit(2)
	b.Insert("a")
	b.Insert("b")
	b.Insert("c")

	undone := 0
	for b.Undo() {
		undone++
	}
	if undone != 2 {
		t.Errorf("Expected 2 undo steps, got %d", undone)
	}
	if b.Text() != "a" {
		t.Errorf("Expected 'a' after exhausting history, got %q", b.Text())
	}
}

func TestStateTracksHistoryPosition(t *testing.T) {
	b := New("text")
	saved := b.State()

	b.Insert("x")
	if b.State() == saved {
		t.Error("Expected state to change after edit")
	}
	b.Undo()
	if b.State() != saved {
		t.Errorf("Expected state %d after undo, got %d", saved, b.State())
	}
}

func TestSealStartsNewState(t *testing.T) {
	b := New("")
	typeString(b, "ab")
	b.Seal()
	saved := b.State()

	typeString(b, "c")
	if b.State() == saved {
		t.Error("Expected typing after Seal to change the state")
	}

	b.Undo()
	if b.Text() != "ab" || b.State() != saved {
		t.Errorf("Expected %q at state %d, got %q at %d", "ab", saved, b.Text(), b.State())
	}
}

func TestTrimmedHistoryKeepsStateDistinct(t *testing.T) {
	b := New("")
	loaded := b.State()
	b.SetUndoLimit(2)
	b.Insert("x")
	b.Insert("y")
	b.Insert("z")

	for b.Undo() {
	}
	if b.Text() != "x" {
		t.Fatalf("Expected 'x' after exhausting history, got %q", b.Text())
	}
	if b.State() == loaded {
		t.Error("Expected state to differ from the loaded text once history was trimmed")
	}

	b.Load("fresh")
	if b.State() != loaded {
		t.Errorf("Expected Load to reset state to %d, got %d", loaded, b.State())
	}
}

func TestLoadResetsHistory(t *testing.T) {
	b := New("")
	b.Insert("draft")
	b.Load("from disk")
	if b.CanUndo() || b.CanRedo() {
		t.Error("Expected Load to clear history")
	}
	if b.Text() != "from disk" {
		t.Errorf("Expected loaded text, got %q", b.Text())
	}
}

func TestDeleteForwardAndSelection(t *testing.T) {
	b := New("abcdef")
	b.SetCursor(0)
	b.DeleteForward()
	if b.Text() != "bcdef" {
		t.Errorf("Expected 'bcdef', got %q", b.Text())
	}

	b.Select(1, 3)
	if got := b.DeleteSelection(); got != "cd" {
		t.Errorf("Expected removed 'cd', got %q", got)
	}
	if b.Text() != "bef" {
		t.Errorf("Expected 'bef', got %q", b.Text())
	}

	b.SetCursor(b.Len())
	b.DeleteForward()
	if b.Text() != "bef" {
		t.Errorf("Expected delete at end to be a no-op, got %q", b.Text())
	}
}

func TestSelectAll(t *testing.T) {
	b := New("all of it")
	b.SelectAll()
	if b.SelectedText() != "all of it" {
		t.Errorf("Expected whole text selected, got %q", b.SelectedText())
	}
	start, end, ok := b.Selection()
	if !ok || start != 0 || end != 9 {
		t.Errorf("Expected selection 0-9, got %d-%d (%v)", start, end, ok)
	}
}

func TestLineNavigation(t *testing.T) {
	b := New("first line\nab\nthird line")
	b.SetCursor(8)

	b.MoveDown(false)
	if line, col := b.LineCol(b.Cursor()); line != 1 || col != 2 {
		t.Errorf("Expected 1:2 after MoveDown, got %d:%d", line, col)
	}

	b.MoveDown(false)
	if line, col := b.LineCol(b.Cursor()); line != 2 || col != 8 {
		t.Errorf("Expected preferred column 8 on line 2, got %d:%d", line, col)
	}

	b.MoveLineStart(false)
	if _, col := b.LineCol(b.Cursor()); col != 0 {
		t.Errorf("Expected column 0, got %d", col)
	}
	b.MoveLineEnd(true)
	if b.SelectedText() != "third line" {
		t.Errorf("Expected shift+end to select line, got %q", b.SelectedText())
	}

	b.MoveDown(false)
	if b.Cursor() != b.Len() {
		t.Errorf("Expected MoveDown on last line to go to end, got %d", b.Cursor())
	}
}

func TestLinesAndOffset(t *testing.T) {
	b := New("a\n\nbc")
	lines := b.Lines()
	if len(lines) != 3 || lines[0] != "a" || lines[1] != "" || lines[2] != "bc" {
		t.Errorf("Unexpected lines %q", lines)
	}
	if b.LineCount() != 3 {
		t.Errorf("Expected 3 lines, got %d", b.LineCount())
	}
	if off := b.Offset(2, 99); off != 5 {
		t.Errorf("Expected column clamp to 5, got %d", off)
	}
	if off := b.Offset(10, 0); off != b.Len() {
		t.Errorf("Expected line past end to clamp, got %d", off)
	}
}

func TestFind(t *testing.T) {
	b := New("foo bar foo")

	start, end, err := b.Find("foo")
	if err != nil || start != 0 || end != 3 {
		t.Fatalf("Expected first match 0-3, got %d-%d err %v", start, end, err)
	}
	if b.SelectedText() != "foo" || b.Cursor() != 3 {
		t.Errorf("Expected match selected with cursor at end, got %q cursor %d", b.SelectedText(), b.Cursor())
	}

	start, _, err = b.Find("foo")
	if err != nil || start != 8 {
		t.Errorf("Expected second match at 8, got %d err %v", start, err)
	}

	if _, _, err := b.Find("foo"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound without wrap, got %v", err)
	}
	if _, _, err := b.Find(""); !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("Expected ErrEmptyPattern, got %v", err)
	}
}

func TestReplaceAll(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		old   string
		repl  string
		want  string
		count int
	}{
		{name: "single", text: "hello world", old: "world", repl: "there", want: "hello there", count: 1},
		{name: "every occurrence", text: "a-b-a", old: "a", repl: "x", want: "x-b-x", count: 2},
		{name: "no match", text: "hello", old: "zzz", repl: "y", want: "hello", count: 0},
		{name: "delete", text: "a  b", old: " ", repl: "", want: "ab", count: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.text)
			n, err := b.ReplaceAll(tt.old, tt.repl)
			if err != nil {
				t.Fatalf("ReplaceAll: %v", err)
			}
			if n != tt.count {
				t.Errorf("Expected %d replacements, got %d", tt.count, n)
			}
			if b.Text() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, b.Text())
			}
		})
	}
}

func TestReplaceAllIsOneUndoStep(t *testing.T) {
	b := New("a a a")
	if _, err := b.ReplaceAll("a", "bb"); err != nil {
		t.Fatal(err)
	}
	b.Undo()
	if b.Text() != "a a a" {
		t.Errorf("Expected single undo to restore text, got %q", b.Text())
	}
	if b.CanUndo() {
		t.Error("Expected no further history")
	}
}

func TestReplaceAllNoMatchKeepsHistory(t *testing.T) {
	b := New("abc")
	n, err := b.ReplaceAll("x", "y")
	if err != nil || n != 0 {
		t.Fatalf("Expected 0, nil; got %d, %v", n, err)
	}
	if b.CanUndo() {
		t.Error("Expected no undo entry for a replace without matches")
	}
	if _, err := b.ReplaceAll("", "y"); !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("Expected ErrEmptyPattern, got %v", err)
	}
}
