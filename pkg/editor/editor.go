//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package editor

import (
	"fmt"
	"log"
	"slices"
	"strings"

	gott "github.com/timburks/macro/pkg/types"
)

// The Editor manages text editing in a buffer through a window.
// There is only one editor in a macro instance.
type Editor struct {
	buffer     *Buffer
	window     *Window
	pasteBoard []string             // used to cut/copy and paste whole lines
	clipboard  ClipboardMirror      // optional mirror of the pasteboard
	previous   gott.Operation       // last operation performed, available to repeat
	undo       []gott.Operation     // stack of operations to undo
	insert     gott.InsertOperation // when in insert mode, the current insert operation
}

var _ gott.Editor = (*Editor)(nil)

func NewEditor() *Editor {
	e := &Editor{}
	e.buffer = NewBuffer()
	e.window = NewWindow(e.buffer)
	return e
}

func (e *Editor) SetTabWidth(n int) {
	if n > 0 {
		e.window.tabWidth = n
	}
	e.window.EnsureVisible()
}

func (e *Editor) GetTabWidth() int {
	return e.window.tabWidth
}

func (e *Editor) SetLineNumbers(on bool) {
	e.window.lineNumbers = on
	e.window.EnsureVisible()
}

// SetClipboard mirrors the pasteboard to c; nil disables mirroring.
func (e *Editor) SetClipboard(c ClipboardMirror) {
	e.clipboard = c
}

// files

// ReadFile replaces the buffer with the contents of a file.
// A missing file leaves an empty buffer named path and returns an error wrapping ErrNewFile.
func (e *Editor) ReadFile(path string) error {
	err := e.buffer.Load(path)
	e.window.cursor = gott.Point{}
	e.window.offset = gott.Size{}
	e.window.EnsureVisible()
	e.undo = nil
	e.previous = nil
	e.insert = nil
	return err
}

func (e *Editor) WriteFile(path string) error {
	if err := e.buffer.Save(path); err != nil {
		return fmt.Errorf("write %s: %w", displayName(path, e.buffer.GetFileName()), err)
	}
	return nil
}

func displayName(path, fileName string) string {
	if path != "" {
		return path
	}
	if fileName != "" {
		return fileName
	}
	return "[No Name]"
}

func (e *Editor) GetFileName() string {
	return e.buffer.GetFileName()
}

func (e *Editor) IsModified() bool {
	return e.buffer.IsModified()
}

func (e *Editor) Bytes() []byte {
	return e.buffer.Bytes()
}

func (e *Editor) LoadBytes(b []byte) {
	e.buffer.LoadBytes(b)
	e.window.EnsureVisible()
}

func (e *Editor) GetRowCount() int {
	return e.buffer.GetRowCount()
}

func (e *Editor) GetLine(row int) string {
	return e.buffer.GetLine(row)
}

// operations

func (e *Editor) Perform(op gott.Operation, multiplier int) {
	// perform the operation
	inverse := op.Perform(e, multiplier)
	// save the operation for repeats; inserts are replayed by their own keys
	if _, ok := op.(gott.InsertOperation); !ok {
		e.previous = op
	}
	// save the inverse of the operation for undo
	if inverse != nil {
		e.undo = append(e.undo, inverse)
	}
}

func (e *Editor) Repeat() {
	if e.previous != nil {
		inverse := e.previous.Perform(e, 0)
		if inverse != nil {
			e.undo = append(e.undo, inverse)
		}
	}
}

// PerformUndo performs the most recent inverse operation and reports whether there was one.
func (e *Editor) PerformUndo() bool {
	if len(e.undo) == 0 {
		return false
	}
	last := len(e.undo) - 1
	undo := e.undo[last]
	e.undo = e.undo[0:last]
	undo.Perform(e, 0)
	return true
}

func (e *Editor) SetInsertOperation(insert gott.InsertOperation) {
	e.insert = insert
}

func (e *Editor) GetInsertOperation() gott.InsertOperation {
	return e.insert
}

func (e *Editor) CloseInsert() {
	if e.insert != nil {
		e.insert.Close()
		e.insert = nil
	}
}

// cursor and viewport

func (e *Editor) GetCursor() gott.Point {
	return e.window.GetCursor()
}

func (e *Editor) SetCursor(cursor gott.Point) {
	e.window.SetCursor(cursor)
}

func (e *Editor) SetSize(s gott.Size) {
	e.window.SetSize(s)
}

func (e *Editor) GetSize() gott.Size {
	return e.window.GetSize()
}

func (e *Editor) GetOffset() gott.Size {
	return e.window.GetOffset()
}

func (e *Editor) MoveCursor(direction int, multiplier int) {
	e.window.MoveCursor(direction, multiplier)
}

func (e *Editor) MoveToBeginningOfLine() {
	e.window.MoveToBeginningOfLine()
}

func (e *Editor) MoveToEndOfLine() {
	e.window.MoveToEndOfLine()
}

func (e *Editor) MoveToStartOfFile() {
	e.window.MoveToStartOfFile()
}

func (e *Editor) MoveToEndOfFile() {
	e.window.MoveToEndOfFile()
}

func (e *Editor) MoveCursorToLine(line int) {
	e.window.MoveCursorToLine(line)
}

func (e *Editor) MoveCursorToNextWord(multiplier int) {
	e.window.MoveCursorToNextWord(multiplier)
}

func (e *Editor) MoveCursorToPreviousWord(multiplier int) {
	e.window.MoveCursorToPreviousWord(multiplier)
}

func (e *Editor) PageUp(multiplier int) {
	e.window.PageUp(multiplier)
}

func (e *Editor) PageDown(multiplier int) {
	e.window.PageDown(multiplier)
}

func (e *Editor) HalfPageUp(multiplier int) {
	e.window.HalfPageUp(multiplier)
}

func (e *Editor) HalfPageDown(multiplier int) {
	e.window.HalfPageDown(multiplier)
}

func (e *Editor) KeepCursorInRow() {
	e.window.KeepCursorInRow()
}

func (e *Editor) PerformSearchForward(text string) bool {
	return e.window.PerformSearchForward(text)
}

func (e *Editor) PerformSearchBackward(text string) bool {
	return e.window.PerformSearchBackward(text)
}

func (e *Editor) GetCursorForDisplay() gott.Point {
	return e.window.GetCursorForDisplay()
}

// These editor primitives make changes in insert mode and are undone with the current insert operation.

// InsertChar inserts c at the cursor; '\n' splits the row.
func (e *Editor) InsertChar(c rune) {
	cursor := e.window.cursor
	if c == '\n' {
		e.SplitRowAt(cursor)
		return
	}
	e.buffer.InsertCharacter(cursor.Row, cursor.Col, c)
	e.window.SetCursor(gott.Point{Row: cursor.Row, Col: cursor.Col + 1})
}

// BackspaceChar deletes the character before the cursor and returns it.
// At the start of a row the row is joined to the one above and '\n' is returned.
func (e *Editor) BackspaceChar() rune {
	cursor := e.window.cursor
	if cursor.Col > 0 {
		c := e.buffer.DeleteChar(cursor.Row, cursor.Col-1)
		e.window.SetCursor(gott.Point{Row: cursor.Row, Col: cursor.Col - 1})
		return c
	}
	if cursor.Row > 0 {
		col := e.buffer.JoinLine(cursor.Row)
		e.window.SetCursor(gott.Point{Row: cursor.Row - 1, Col: col})
		return rune('\n')
	}
	return rune(0)
}

// DeleteCharAtCursor deletes the character under the cursor, joining the next row at the end of a row.
func (e *Editor) DeleteCharAtCursor() rune {
	cursor := e.window.cursor
	c := e.buffer.DeleteChar(cursor.Row, cursor.Col)
	e.window.EnsureVisible()
	return c
}

// SplitRowAt breaks a row in two and moves the cursor to the start of the new row.
func (e *Editor) SplitRowAt(p gott.Point) {
	e.buffer.SplitLine(p.Row, p.Col)
	e.window.SetCursor(gott.Point{Row: p.Row + 1, Col: 0})
}

// JoinRowAtCursor appends the next row to the cursor row, separated by a space
// unless either side is empty. The cursor moves to the join point.
func (e *Editor) JoinRowAtCursor() bool {
	row := e.window.cursor.Row
	if row+1 >= e.buffer.GetRowCount() {
		return false
	}
	left := strings.TrimRight(e.buffer.GetLine(row), " \t")
	right := strings.TrimLeft(e.buffer.GetLine(row+1), " \t")
	joined := left
	col := len([]rune(left))
	if left != "" && right != "" {
		joined += " "
	}
	joined += right
	e.buffer.SetLine(row, joined)
	e.buffer.DeleteRows(row+1, 1)
	e.window.SetCursor(gott.Point{Row: row, Col: col})
	return true
}

// PrepareInsert moves the cursor to the named insert position, opening a
// new row if needed, and returns the cursor.
func (e *Editor) PrepareInsert(position int) gott.Point {
	cursor := e.window.cursor
	switch position {
	case gott.InsertAfterCursor:
		if cursor.Col < e.buffer.GetRowLength(cursor.Row) {
			cursor.Col++
		}
	case gott.InsertAtStartOfLine:
		cursor.Col = 0
		// skip leading whitespace
		line := e.buffer.rows[cursor.Row].GetText()
		for cursor.Col < len(line) && (line[cursor.Col] == ' ' || line[cursor.Col] == '\t') {
			cursor.Col++
		}
	case gott.InsertAfterEndOfLine:
		cursor.Col = e.buffer.GetRowLength(cursor.Row)
	case gott.InsertAtNewLineBelowCursor:
		e.buffer.InsertRows(cursor.Row+1, []string{""})
		cursor = gott.Point{Row: cursor.Row + 1, Col: 0}
	case gott.InsertAtNewLineAboveCursor:
		e.buffer.InsertRows(cursor.Row, []string{""})
		cursor.Col = 0
	}
	e.window.SetCursor(cursor)
	return e.window.cursor
}

// InsertText inserts text at the cursor and returns the cursor after the inserted text.
func (e *Editor) InsertText(text string) gott.Point {
	for _, c := range text {
		e.InsertChar(c)
	}
	return e.window.cursor
}

// DeleteCharactersAtCursor deletes up to multiplier characters at the cursor and returns them.
// When joinLines is false deletion stops at the end of the row.
func (e *Editor) DeleteCharactersAtCursor(multiplier int, joinLines bool) string {
	var deleted strings.Builder
	cursor := e.window.cursor
	for i := 0; i < multiplier; i++ {
		if !joinLines && cursor.Col >= e.buffer.GetRowLength(cursor.Row) {
			break
		}
		c := e.buffer.DeleteChar(cursor.Row, cursor.Col)
		if c == 0 {
			break
		}
		deleted.WriteRune(c)
	}
	e.window.EnsureVisible()
	return deleted.String()
}

// DeleteRowsAtCursor removes rows starting at the cursor row and returns their text.
// emptied reports whether every row was removed.
func (e *Editor) DeleteRowsAtCursor(multiplier int) (lines []string, emptied bool) {
	row := e.window.cursor.Row
	lines, emptied = e.buffer.DeleteRows(row, multiplier)
	e.window.SetCursor(gott.Point{Row: row, Col: 0})
	return lines, emptied
}

// InsertRows inserts lines before row, or replaces the whole buffer when replace is set.
func (e *Editor) InsertRows(row int, lines []string, replace bool) {
	if replace {
		e.buffer.SetLines(lines)
	} else {
		e.buffer.InsertRows(row, lines)
	}
	e.window.SetCursor(gott.Point{Row: row, Col: 0})
}

func (e *Editor) ReplaceCharacterAtCursor(cursor gott.Point, c rune) rune {
	old := e.buffer.ReplaceChar(cursor.Row, cursor.Col, c)
	e.window.SetCursor(cursor)
	return old
}

func (e *Editor) Snapshot() gott.Snapshot {
	return gott.Snapshot{Lines: e.buffer.Lines(), Cursor: e.window.cursor}
}

// Restore replaces the buffer contents and cursor with a snapshot.
// An unchanged buffer is not marked as modified.
func (e *Editor) Restore(s gott.Snapshot) {
	if !slices.Equal(e.buffer.Lines(), s.Lines) {
		e.buffer.SetLines(s.Lines)
	}
	e.window.SetCursor(s.Cursor)
}

// pasteboard

func (e *Editor) SetPasteBoard(lines []string) {
	e.pasteBoard = append([]string(nil), lines...)
	if e.clipboard != nil {
		if err := e.clipboard.WriteLines(lines); err != nil {
			log.Printf("clipboard: %v", err)
		}
	}
}

func (e *Editor) GetPasteBoard() []string {
	return e.pasteBoard
}

// YankRows copies rows starting at the cursor row to the pasteboard.
func (e *Editor) YankRows(multiplier int) {
	row := e.window.cursor.Row
	end := row + min(max(multiplier, 1), e.buffer.GetRowCount()-row)
	lines := make([]string, 0, end-row)
	for i := row; i < end; i++ {
		lines = append(lines, e.buffer.GetLine(i))
	}
	e.SetPasteBoard(lines)
}
