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
	"unicode/utf8"

	gott "github.com/timburks/macro/pkg/types"
)

// ReplaceCharacter replaces Multiplier characters starting at the cursor,
// leaving the cursor on the last one. Nothing changes if the row is too short.
type ReplaceCharacter struct {
	Op
	Character rune
}

func (op *ReplaceCharacter) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	if op.Multiplier == 1 {
		old := e.ReplaceCharacterAtCursor(op.Cursor, op.Character)
		if old == 0 {
			return nil
		}
		inverse := &ReplaceCharacter{}
		inverse.copyForUndo(&op.Op)
		inverse.Character = old
		return inverse
	}
	if op.Cursor.Col+op.Multiplier > utf8.RuneCountInString(e.GetLine(op.Cursor.Row)) {
		return nil
	}
	before := e.Snapshot()
	for i := 0; i < op.Multiplier; i++ {
		e.ReplaceCharacterAtCursor(gott.Point{Row: op.Cursor.Row, Col: op.Cursor.Col + i}, op.Character)
	}
	return &Restore{Snapshot: before}
}
