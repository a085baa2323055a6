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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	gott "github.com/timburks/macro/pkg/types"
)

type cells struct {
	size  gott.Size
	runes map[gott.Point]rune
}

func newCells(rows, cols int) *cells {
	return &cells{size: gott.Size{Rows: rows, Cols: cols}, runes: make(map[gott.Point]rune)}
}

func (c *cells) SetCell(col, row int, ch rune, color gott.Color) {
	if col < 0 || row < 0 || col >= c.size.Cols || row >= c.size.Rows {
		return
	}
	c.runes[gott.Point{Row: row, Col: col}] = ch
}

func (c *cells) SetCursor(p gott.Point) {}

func (c *cells) Size() gott.Size {
	return c.size
}

func (c *cells) line(row int) string {
	var s strings.Builder
	for col := 0; col < c.size.Cols; col++ {
		if ch, ok := c.runes[gott.Point{Row: row, Col: col}]; ok {
			s.WriteRune(ch)
		} else {
			s.WriteRune(' ')
		}
	}
	return strings.TrimRight(s.String(), " ")
}

func TestRenderTruncatesAndFills(t *testing.T) {
	e := editorWithLines("hello world", "x")
	e.SetSize(gott.Size{Rows: 4, Cols: 5})
	d := newCells(4, 5)
	e.Render(d)
	assert.Equal(t, "hello", d.line(0))
	assert.Equal(t, "x", d.line(1))
	assert.Equal(t, "~", d.line(2))
	assert.Equal(t, "~", d.line(3))
}

func TestRenderScrolledHorizontally(t *testing.T) {
	e := editorWithLines("hello world", "x")
	e.SetSize(gott.Size{Rows: 2, Cols: 5})
	e.SetCursor(gott.Point{Row: 0, Col: 11})
	d := newCells(2, 5)
	e.Render(d)
	assert.Equal(t, "orld", d.line(0))
	assert.Equal(t, "", d.line(1))
}

func TestRenderExpandsTabs(t *testing.T) {
	e := editorWithLines("\tx", "a\tb")
	e.SetSize(gott.Size{Rows: 2, Cols: 10})
	d := newCells(2, 10)
	e.Render(d)
	assert.Equal(t, "    x", d.line(0))
	assert.Equal(t, "a   b", d.line(1))
}

func TestRenderLineNumbers(t *testing.T) {
	e := editorWithLines("a", "b")
	e.SetLineNumbers(true)
	e.SetSize(gott.Size{Rows: 3, Cols: 10})
	d := newCells(3, 10)
	e.Render(d)
	assert.Equal(t, "  1 a", d.line(0))
	assert.Equal(t, "  2 b", d.line(1))
	assert.Equal(t, "~", d.line(2))
}

func TestRenderDropsCellsOutsideDisplay(t *testing.T) {
	e := editorWithLines("abcdef", "ghi", "jkl")
	e.SetSize(gott.Size{Rows: 3, Cols: 6})
	d := newCells(2, 3)
	e.Render(d)
	assert.Equal(t, "abc", d.line(0))
	assert.Equal(t, "ghi", d.line(1))
	assert.Len(t, d.runes, 6)
}
