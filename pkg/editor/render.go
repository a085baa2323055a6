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

	gott "github.com/timburks/macro/pkg/types"
)

// Render draws the visible part of the buffer into the text area of d.
// Rows past the end of the buffer are marked with '~'.
// Long lines are truncated at the right edge.
func (e *Editor) Render(d gott.Display) {
	w := e.window
	gutter := w.gutterWidth()
	cols := w.textCols()
	for i := 0; i < w.size.Rows; i++ {
		row := i + w.offset.Rows
		if row >= w.buffer.GetRowCount() {
			d.SetCell(0, i, '~', gott.ColorFiller)
			continue
		}
		if gutter > 0 {
			number := fmt.Sprintf("%*d ", gutter-1, row+1)
			for x, c := range []rune(number) {
				d.SetCell(x, i, c, gott.ColorLineNumber)
			}
		}
		x := 0
		for _, c := range w.buffer.rows[row].GetText() {
			width := cellWidth(c, x, w.tabWidth)
			left := x - w.offset.Cols
			x += width
			if left < 0 {
				continue
			}
			if left+width > cols {
				break
			}
			if c == '\t' {
				for j := 0; j < width; j++ {
					d.SetCell(gutter+left+j, i, ' ', gott.ColorText)
				}
				continue
			}
			if width == 0 {
				continue
			}
			d.SetCell(gutter+left, i, c, gott.ColorText)
		}
	}
}
