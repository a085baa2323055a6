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

// DeleteRow deletes rows starting at the cursor row, copying them to the pasteboard if Yank is set.
type DeleteRow struct {
	Op
	Yank bool
}

func (op *DeleteRow) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	lines, emptied := e.DeleteRowsAtCursor(op.Multiplier)
	if len(lines) == 0 {
		return nil
	}
	if op.Yank {
		e.SetPasteBoard(lines)
	}
	inverse := &InsertRows{Row: op.Cursor.Row, Lines: lines, Replace: emptied}
	inverse.copyForUndo(&op.Op)
	return inverse
}
