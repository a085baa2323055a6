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

package operations

import (
	gott "github.com/timburks/macro/pkg/types"
)

const maxPasteRows = 1 << 20

// Paste inserts the rows on the pasteboard below the cursor row, or above it.
type Paste struct {
	Op
	Above bool
}

func (op *Paste) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	pasteBoard := e.GetPasteBoard()
	if len(pasteBoard) == 0 {
		return nil
	}
	row := op.Cursor.Row
	if !op.Above {
		row++
	}
	copies := min(op.Multiplier, max(maxPasteRows/len(pasteBoard), 1))
	lines := make([]string, 0, len(pasteBoard)*copies)
	for i := 0; i < copies; i++ {
		lines = append(lines, pasteBoard...)
	}
	e.InsertRows(row, lines, false)
	inverse := &DeleteRow{}
	inverse.Cursor = gott.Point{Row: row}
	inverse.Multiplier = len(lines)
	inverse.Undo = true
	return inverse
}
