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

package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	gott "github.com/timburks/macro/pkg/types"
)

// Draw renders the text area, the info bar, and the message bar onto d.
// The editor's text area is expected to be two rows shorter than d.
func Draw(d gott.Display, e gott.Editor, c gott.Commander) {
	size := d.Size()
	if size.Rows <= 0 || size.Cols <= 0 {
		return
	}
	e.Render(d)
	if size.Rows >= 2 {
		drawInfoBar(d, e, c, size.Rows-2, size.Cols)
	}
	message := c.GetMessageBarText(size.Cols)
	drawText(d, 0, size.Rows-1, size.Cols, message, gott.ColorMessage)

	if lineEntry(c.GetMode()) {
		d.SetCursor(gott.Point{Row: size.Rows - 1, Col: min(runewidth.StringWidth(message), size.Cols-1)})
	} else {
		d.SetCursor(e.GetCursorForDisplay())
	}
}

// lineEntry reports whether keys are being typed on the message bar.
func lineEntry(m gott.Mode) bool {
	switch m {
	case gott.ModeCommand, gott.ModeSearchForward, gott.ModeSearchBackward, gott.ModeLisp, gott.ModePrompt:
		return true
	}
	return false
}

// infoBarText returns the left and right sides of the info bar.
func infoBarText(e gott.Editor, c gott.Commander) (string, string) {
	name := e.GetFileName()
	if name == "" {
		name = "[No Name]"
	}
	left := fmt.Sprintf(" %s | %s", c.GetMode(), name)
	if e.IsModified() {
		left += " [+]"
	}
	cursor := e.GetCursor()
	right := fmt.Sprintf("Ln %d, Col %d ", cursor.Row+1, cursor.Col+1)
	return left, right
}

func drawInfoBar(d gott.Display, e gott.Editor, c gott.Commander, row, cols int) {
	left, right := infoBarText(e, c)
	for x := 0; x < cols; x++ {
		d.SetCell(x, row, ' ', gott.ColorInfoBar)
	}
	leftWidth := drawText(d, 0, row, cols, left, gott.ColorInfoBar)
	rightWidth := runewidth.StringWidth(right)
	if leftWidth+rightWidth < cols {
		drawText(d, cols-rightWidth, row, cols, right, gott.ColorInfoBar)
	}
}

// drawText draws a single line of text starting at col and returns the width drawn.
// Text that doesn't fit before the limit column is dropped.
func drawText(d gott.Display, col, row, limit int, text string, color gott.Color) int {
	x := col
	for _, c := range text {
		width := runewidth.RuneWidth(c)
		if x+width > limit {
			break
		}
		if width == 0 {
			continue
		}
		d.SetCell(x, row, c, color)
		x += width
	}
	return x - col
}
