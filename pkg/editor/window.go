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
	"strconv"
	"unicode"

	"github.com/mattn/go-runewidth"

	gott "github.com/timburks/macro/pkg/types"
)

// A Window tracks the cursor in a buffer and the part of the buffer
// that is visible in the text area.
// The cursor column may equal the row length, denoting the position
// after the last character.
type Window struct {
	buffer      *Buffer
	size        gott.Size  // size of the text area, including the gutter
	cursor      gott.Point // cursor position
	offset      gott.Size  // display offset: top row and left display column
	tabWidth    int
	lineNumbers bool
}

func NewWindow(b *Buffer) *Window {
	return &Window{buffer: b, tabWidth: 4}
}

func (w *Window) GetCursor() gott.Point {
	return w.cursor
}

// SetCursor moves the cursor, clamps it into the buffer, and scrolls.
func (w *Window) SetCursor(cursor gott.Point) {
	w.cursor = cursor
	w.EnsureVisible()
}

func (w *Window) GetOffset() gott.Size {
	return w.offset
}

func (w *Window) GetSize() gott.Size {
	return w.size
}

func (w *Window) SetSize(s gott.Size) {
	if s.Rows < 0 {
		s.Rows = 0
	}
	if s.Cols < 0 {
		s.Cols = 0
	}
	w.size = s
	w.EnsureVisible()
}

// The gutter holds line numbers when they are enabled.
func (w *Window) gutterWidth() int {
	if !w.lineNumbers {
		return 0
	}
	digits := len(strconv.Itoa(w.buffer.GetRowCount()))
	if digits < 3 {
		digits = 3
	}
	return digits + 1
}

func (w *Window) textCols() int {
	cols := w.size.Cols - w.gutterWidth()
	if cols < 0 {
		return 0
	}
	return cols
}

// Clamp forces the cursor into the buffer.
func (w *Window) Clamp() {
	rowCount := w.buffer.GetRowCount()
	w.cursor.Row = clipToRange(w.cursor.Row, 0, rowCount-1)
	w.cursor.Col = clipToRange(w.cursor.Col, 0, w.buffer.GetRowLength(w.cursor.Row))
}

// EnsureVisible clamps the cursor and recomputes the display offset to keep the cursor onscreen.
func (w *Window) EnsureVisible() {
	w.Clamp()
	if rows := w.size.Rows; rows > 0 {
		if w.cursor.Row < w.offset.Rows {
			// scroll up
			w.offset.Rows = w.cursor.Row
		}
		if w.cursor.Row-w.offset.Rows >= rows {
			// scroll down
			w.offset.Rows = w.cursor.Row - rows + 1
		}
	}
	if cols := w.textCols(); cols > 0 {
		text := w.buffer.rows[w.cursor.Row].GetText()
		x := displayColumn(text, w.cursor.Col, w.tabWidth)
		width := 1
		if w.cursor.Col < len(text) {
			width = max(cellWidth(text[w.cursor.Col], x, w.tabWidth), 1)
		}
		if x < w.offset.Cols {
			// scroll left
			w.offset.Cols = x
		}
		if x+width-w.offset.Cols > cols {
			// scroll right
			w.offset.Cols = x + width - cols
		}
	}
	if w.offset.Rows < 0 {
		w.offset.Rows = 0
	}
	if w.offset.Cols < 0 {
		w.offset.Cols = 0
	}
}

func (w *Window) MoveCursor(direction int, multiplier int) {
	for i := 0; i < multiplier; i++ {
		rowCount := w.buffer.GetRowCount()
		switch direction {
		case gott.MoveLeft:
			if w.cursor.Col > 0 {
				w.cursor.Col--
			} else if w.cursor.Row > 0 {
				// wrap to the end of the previous line
				w.cursor.Row--
				w.cursor.Col = w.buffer.GetRowLength(w.cursor.Row)
			}
		case gott.MoveRight:
			if w.cursor.Col < w.buffer.GetRowLength(w.cursor.Row) {
				w.cursor.Col++
			} else if w.cursor.Row < rowCount-1 {
				// wrap to the start of the next line
				w.cursor.Row++
				w.cursor.Col = 0
			}
		case gott.MoveUp:
			if w.cursor.Row > 0 {
				w.cursor.Row--
			}
		case gott.MoveDown:
			if w.cursor.Row < rowCount-1 {
				w.cursor.Row++
			}
		}
		// don't go past the end of the current line
		if rowLength := w.buffer.GetRowLength(w.cursor.Row); w.cursor.Col > rowLength {
			w.cursor.Col = rowLength
		}
	}
	w.EnsureVisible()
}

// MoveCursorForward steps over characters for word motions; it never
// stops after the last character of a row.
func (w *Window) MoveCursorForward() int {
	rowLength := w.buffer.GetRowLength(w.cursor.Row)
	if w.cursor.Col < rowLength-1 {
		w.cursor.Col++
		return gott.AtNextCharacter
	}
	if w.cursor.Row+1 < w.buffer.GetRowCount() {
		w.cursor.Row++
		w.cursor.Col = 0
		return gott.AtNextLine
	}
	return gott.AtEndOfFile
}

func (w *Window) MoveCursorBackward() int {
	if w.cursor.Col > 0 {
		w.cursor.Col--
		return gott.AtNextCharacter
	}
	if w.cursor.Row > 0 {
		w.cursor.Row--
		w.cursor.Col = max(w.buffer.GetRowLength(w.cursor.Row)-1, 0)
		return gott.AtNextLine
	}
	return gott.AtEndOfFile
}

func (w *Window) MoveToBeginningOfLine() {
	w.cursor.Col = 0
	w.EnsureVisible()
}

func (w *Window) MoveToEndOfLine() {
	w.cursor.Col = w.buffer.GetRowLength(w.cursor.Row)
	w.EnsureVisible()
}

func (w *Window) MoveToStartOfFile() {
	w.cursor = gott.Point{}
	w.EnsureVisible()
}

func (w *Window) MoveToEndOfFile() {
	w.cursor = gott.Point{Row: w.buffer.GetRowCount() - 1}
	w.EnsureVisible()
}

// MoveCursorToLine moves to the start of a 1-based line number.
func (w *Window) MoveCursorToLine(line int) {
	w.cursor = gott.Point{Row: clipToRange(line-1, 0, w.buffer.GetRowCount()-1)}
	w.EnsureVisible()
}

// KeepCursorInRow moves a cursor that is past the last character back onto it.
func (w *Window) KeepCursorInRow() {
	w.Clamp()
	if rowLength := w.buffer.GetRowLength(w.cursor.Row); rowLength > 0 && w.cursor.Col >= rowLength {
		w.cursor.Col = rowLength - 1
	}
	w.EnsureVisible()
}

func (w *Window) PageUp(multiplier int) {
	// move to the top of the screen
	w.cursor.Row = w.offset.Rows
	w.MoveCursor(gott.MoveUp, max(w.size.Rows, 1)*multiplier)
}

func (w *Window) PageDown(multiplier int) {
	// move to the bottom of the screen
	w.cursor.Row = min(w.offset.Rows+w.size.Rows-1, w.buffer.GetRowCount()-1)
	w.MoveCursor(gott.MoveDown, max(w.size.Rows, 1)*multiplier)
}

func (w *Window) HalfPageUp(multiplier int) {
	w.MoveCursor(gott.MoveUp, max(w.size.Rows/2, 1)*multiplier)
}

func (w *Window) HalfPageDown(multiplier int) {
	w.MoveCursor(gott.MoveDown, max(w.size.Rows/2, 1)*multiplier)
}

func (w *Window) PerformSearchForward(text string) bool {
	if text == "" {
		return false
	}
	rowCount := w.buffer.GetRowCount()
	col := w.cursor.Col
	// the final pass revisits the cursor row from its start
	for i := 0; i <= rowCount; i++ {
		row := (w.cursor.Row + i) % rowCount
		position := w.buffer.FirstPositionInRowAfterCol(row, col, text)
		if position != -1 {
			// found it
			w.cursor = gott.Point{Row: row, Col: position}
			w.EnsureVisible()
			return true
		}
		col = -1
	}
	return false
}

func (w *Window) PerformSearchBackward(text string) bool {
	if text == "" {
		return false
	}
	rowCount := w.buffer.GetRowCount()
	for i := 0; i <= rowCount; i++ {
		row := ((w.cursor.Row-i)%rowCount + rowCount) % rowCount
		col := w.buffer.GetRowLength(row)
		if i == 0 {
			col = w.cursor.Col
		}
		position := w.buffer.LastPositionInRowBeforeCol(row, col, text)
		if position != -1 {
			w.cursor = gott.Point{Row: row, Col: position}
			w.EnsureVisible()
			return true
		}
	}
	return false
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == rune(0)
}

func isAlphaNumeric(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}

func isNonAlphaNumeric(c rune) bool {
	return !isAlphaNumeric(c) && !isSpace(c)
}

func (w *Window) MoveCursorToNextWord(multiplier int) {
	for i := 0; i < multiplier; i++ {
		w.moveCursorToNextWord()
	}
	w.EnsureVisible()
}

func (w *Window) moveCursorToNextWord() {
	c := w.buffer.GetCharacterAtCursor(w.cursor)
	var inWord func(rune) bool
	switch {
	case isAlphaNumeric(c):
		inWord = isAlphaNumeric
	case isNonAlphaNumeric(c):
		inWord = isNonAlphaNumeric
	default:
		inWord = func(rune) bool { return false }
	}
	// move past the current word
	for inWord(c) {
		if w.MoveCursorForward() != gott.AtNextCharacter {
			w.moveForwardToFirstNonSpace()
			return
		}
		c = w.buffer.GetCharacterAtCursor(w.cursor)
	}
	w.moveForwardToFirstNonSpace()
}

func (w *Window) moveForwardToFirstNonSpace() {
	c := w.buffer.GetCharacterAtCursor(w.cursor)
	for isSpace(c) {
		if w.buffer.GetRowLength(w.cursor.Row) == 0 && w.cursor.Col == 0 {
			return // empty lines stop word motions
		}
		if w.MoveCursorForward() == gott.AtEndOfFile {
			return
		}
		c = w.buffer.GetCharacterAtCursor(w.cursor)
	}
}

func (w *Window) MoveCursorToPreviousWord(multiplier int) {
	for i := 0; i < multiplier; i++ {
		w.moveCursorToPreviousWord()
	}
	w.EnsureVisible()
}

func (w *Window) moveCursorToPreviousWord() {
	if w.MoveCursorBackward() == gott.AtEndOfFile {
		return
	}
	// move back over spaces to the end of the previous word
	c := w.buffer.GetCharacterAtCursor(w.cursor)
	for isSpace(c) {
		if w.buffer.GetRowLength(w.cursor.Row) == 0 {
			return
		}
		if w.MoveCursorBackward() == gott.AtEndOfFile {
			return
		}
		c = w.buffer.GetCharacterAtCursor(w.cursor)
	}
	// then back to its first character
	inWord := isAlphaNumeric
	if isNonAlphaNumeric(c) {
		inWord = isNonAlphaNumeric
	}
	for w.cursor.Col > 0 {
		previous := w.buffer.GetCharacterAtCursor(gott.Point{Row: w.cursor.Row, Col: w.cursor.Col - 1})
		if !inWord(previous) {
			break
		}
		w.cursor.Col--
	}
}

// GetCursorForDisplay returns the cursor position relative to the text area.
func (w *Window) GetCursorForDisplay() gott.Point {
	text := w.buffer.rows[w.cursor.Row].GetText()
	return gott.Point{
		Col: w.gutterWidth() + displayColumn(text, w.cursor.Col, w.tabWidth) - w.offset.Cols,
		Row: w.cursor.Row - w.offset.Rows,
	}
}

// cellWidth is the number of display cells used by c when drawn at display column x.
func cellWidth(c rune, x int, tabWidth int) int {
	if c == '\t' {
		return tabWidth - x%tabWidth
	}
	return runewidth.RuneWidth(c)
}

// displayColumn is the display column where the character at col starts.
func displayColumn(text []rune, col int, tabWidth int) int {
	x := 0
	for i := 0; i < col && i < len(text); i++ {
		x += cellWidth(text[i], x, tabWidth)
	}
	return x
}

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}
