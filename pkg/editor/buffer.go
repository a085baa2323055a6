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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	gott "github.com/timburks/macro/pkg/types"
)

var (
	// ErrNewFile is returned by Load when the file does not exist yet.
	ErrNewFile = errors.New("new file")
	// ErrNoFileName is returned by Save when there is nowhere to write.
	ErrNoFileName = errors.New("no file name")
	// ErrInvalidUTF8 is returned by Load for files that aren't UTF-8 text.
	ErrInvalidUTF8 = errors.New("not valid UTF-8")
)

// A Buffer represents a file being edited.
// A buffer always contains at least one row.
type Buffer struct {
	rows         []*Row
	fileName     string
	modified     bool
	finalNewline bool // file ended with a line ending when it was read
	crlf         bool // file used \r\n line endings
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.reset()
	return b
}

func (b *Buffer) reset() {
	b.rows = []*Row{NewRow("")}
	b.modified = false
	b.finalNewline = true
	b.crlf = false
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) IsModified() bool {
	return b.modified
}

// Load replaces the contents of the buffer with the contents of a file.
// A missing file leaves a single empty row named path and returns an error
// wrapping ErrNewFile. Any other failure, including text that isn't valid
// UTF-8, leaves a single empty row with no name so that it can't be saved
// over the file.
func (b *Buffer) Load(path string) error {
	bytes, err := os.ReadFile(path)
	if err == nil && !utf8.Valid(bytes) {
		err = fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}
	if err != nil {
		b.reset()
		b.fileName = ""
		if errors.Is(err, fs.ErrNotExist) {
			b.fileName = path
			return fmt.Errorf("%s: %w", path, ErrNewFile)
		}
		return err
	}
	b.fileName = path
	b.LoadBytes(bytes)
	return nil
}

// Save writes the buffer to path, or to the buffer's file name if path is empty.
func (b *Buffer) Save(path string) error {
	if path == "" {
		path = b.fileName
	}
	if path == "" {
		return ErrNoFileName
	}
	if err := os.WriteFile(path, b.Bytes(), 0644); err != nil {
		return err
	}
	b.fileName = path
	b.modified = false
	return nil
}

func (b *Buffer) LoadBytes(bytes []byte) {
	s := string(bytes)
	b.crlf = false
	if n := strings.Count(s, "\n"); n > 0 && strings.Count(s, "\r\n") == n {
		b.crlf = true
		s = strings.ReplaceAll(s, "\r\n", "\n")
	}
	b.finalNewline = strings.HasSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	b.modified = false
}

func (b *Buffer) Bytes() []byte {
	ending := "\n"
	if b.crlf {
		ending = "\r\n"
	}
	var s strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			s.WriteString(ending)
		}
		s.WriteString(row.GetString())
	}
	if b.finalNewline {
		s.WriteString(ending)
	}
	return []byte(s.String())
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) GetLine(i int) string {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].GetString()
	}
	return ""
}

func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.GetString()
	}
	return lines
}

// SetLines replaces all rows of the buffer.
func (b *Buffer) SetLines(lines []string) {
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	if len(b.rows) == 0 {
		b.rows = append(b.rows, NewRow(""))
	}
	b.modified = true
}

// SetLine replaces the text of one row.
func (b *Buffer) SetLine(row int, text string) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	b.rows[row] = NewRow(text)
	b.modified = true
}

func (b *Buffer) GetCharacterAtCursor(cursor gott.Point) rune {
	if cursor.Row >= 0 && cursor.Row < len(b.rows) {
		row := b.rows[cursor.Row]
		if cursor.Col < row.Length() && cursor.Col >= 0 {
			return row.Text[cursor.Col]
		}
	}
	return rune(0)
}

func (b *Buffer) TextAfter(row, col int) string {
	if row >= 0 && row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

// InsertCharacter inserts c at (row, col), padding the row with spaces
// when col is past its end.
func (b *Buffer) InsertCharacter(row, col int, c rune) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	b.rows[row].InsertChar(col, c)
	b.modified = true
}

// SplitLine divides a row in two at col.
func (b *Buffer) SplitLine(row, col int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	newRow := b.rows[row].Split(col)
	b.rows = append(b.rows, nil)
	copy(b.rows[row+2:], b.rows[row+1:])
	b.rows[row+1] = newRow
	b.modified = true
}

// JoinLine appends row to the row above it and removes it.
// It returns the column of the join point, or -1 if there is nothing to join.
func (b *Buffer) JoinLine(row int) int {
	if row <= 0 || row >= len(b.rows) {
		return -1
	}
	col := b.rows[row-1].Length()
	b.rows[row-1].Join(b.rows[row])
	b.rows = append(b.rows[0:row], b.rows[row+1:]...)
	b.modified = true
	return col
}

// DeleteChar removes the character at (row, col) and returns it.
// At the end of a row the next row is joined and '\n' is returned.
func (b *Buffer) DeleteChar(row, col int) rune {
	if row < 0 || row >= len(b.rows) || col < 0 {
		return rune(0)
	}
	length := b.rows[row].Length()
	if col < length {
		b.modified = true
		return b.rows[row].DeleteChar(col)
	}
	if col == length && row < len(b.rows)-1 {
		b.JoinLine(row + 1)
		return rune('\n')
	}
	return rune(0)
}

func (b *Buffer) ReplaceChar(row, col int, c rune) rune {
	if row < 0 || row >= len(b.rows) {
		return rune(0)
	}
	old := b.rows[row].ReplaceChar(col, c)
	if old != 0 {
		b.modified = true
	}
	return old
}

// DeleteRows removes count rows starting at row and returns their text.
// If every row is removed, a single empty row remains and emptied is true.
func (b *Buffer) DeleteRows(row, count int) (deleted []string, emptied bool) {
	if row < 0 || row >= len(b.rows) || count <= 0 {
		return nil, false
	}
	end := row + min(count, len(b.rows)-row)
	for _, r := range b.rows[row:end] {
		deleted = append(deleted, r.GetString())
	}
	b.rows = append(b.rows[0:row], b.rows[end:]...)
	if len(b.rows) == 0 {
		b.rows = []*Row{NewRow("")}
		emptied = true
	}
	b.modified = true
	return deleted, emptied
}

// InsertRows inserts lines before row; row may equal the row count to append.
func (b *Buffer) InsertRows(row int, lines []string) {
	if row < 0 || row > len(b.rows) || len(lines) == 0 {
		return
	}
	inserted := make([]*Row, 0, len(lines))
	for _, line := range lines {
		inserted = append(inserted, NewRow(line))
	}
	rows := make([]*Row, 0, len(b.rows)+len(inserted))
	rows = append(rows, b.rows[0:row]...)
	rows = append(rows, inserted...)
	b.rows = append(rows, b.rows[row:]...)
	b.modified = true
}

// FirstPositionInRowAfterCol returns the rune index of the first match of
// text starting after col, or -1.
func (b *Buffer) FirstPositionInRowAfterCol(row, col int, text string) int {
	if row < 0 || row >= len(b.rows) || text == "" {
		return -1
	}
	start := col + 1
	if start < 0 {
		start = 0
	}
	s := b.rows[row].TextAfter(start)
	i := strings.Index(s, text)
	if i == -1 {
		return -1
	}
	return start + utf8.RuneCountInString(s[:i])
}

// LastPositionInRowBeforeCol returns the rune index of the last match of
// text starting before col, or -1.
func (b *Buffer) LastPositionInRowBeforeCol(row, col int, text string) int {
	if row < 0 || row >= len(b.rows) || text == "" {
		return -1
	}
	line := b.rows[row].GetText()
	if col > len(line) {
		col = len(line)
	}
	for i := col - 1; i >= 0; i-- {
		if strings.HasPrefix(string(line[i:]), text) {
			return i
		}
	}
	return -1
}
