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

// A row of text in the editor
type Row struct {
	Text []rune
}

func NewRow(text string) *Row {
	return &Row{Text: []rune(text)}
}

func (r *Row) GetText() []rune {
	return r.Text
}

func (r *Row) SetText(text []rune) {
	r.Text = text
}

func (r *Row) GetString() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

// Inserts a character at col. If col is past the end of the row,
// the row is padded with spaces first.
func (r *Row) InsertChar(col int, c rune) {
	if col < 0 {
		col = 0
	}
	for len(r.Text) < col {
		r.Text = append(r.Text, ' ')
	}
	line := make([]rune, 0, len(r.Text)+1)
	line = append(line, r.Text[0:col]...)
	line = append(line, c)
	line = append(line, r.Text[col:]...)
	r.Text = line
}

// replace character at col and return the replaced character
func (r *Row) ReplaceChar(col int, c rune) rune {
	if (col < 0) || (col >= len(r.Text)) {
		return rune(0)
	}
	result := r.Text[col]
	r.Text[col] = c
	return result
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) rune {
	if col < 0 || col >= len(r.Text) {
		return rune(0)
	}
	c := r.Text[col]
	line := make([]rune, 0, len(r.Text)-1)
	line = append(line, r.Text[0:col]...)
	r.Text = append(line, r.Text[col+1:]...)
	return c
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	if col < 0 {
		col = 0
	}
	if col >= len(r.Text) {
		return NewRow("")
	}
	after := string(r.Text[col:])
	r.Text = append([]rune{}, r.Text[0:col]...)
	return NewRow(after)
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	line := make([]rune, 0, len(r.Text)+len(other.Text))
	line = append(line, r.Text...)
	r.Text = append(line, other.Text...)
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < 0 {
		col = 0
	}
	if col < len(r.Text) {
		return string(r.Text[col:])
	}
	return ""
}
