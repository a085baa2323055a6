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

// Insert adds text at a position relative to the cursor.
// With no Text it starts an insert session: the editor keeps the operation
// open while keys are typed and its inverse restores the buffer as it was.
type Insert struct {
	Op
	Position  int
	Text      string
	Commander gott.Commander
}

func (op *Insert) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	inverse := &Restore{Snapshot: e.Snapshot()}
	e.PrepareInsert(op.Position)
	if op.Text == "" {
		e.SetInsertOperation(op)
		if op.Commander != nil {
			op.Commander.SetMode(gott.ModeInsert)
		}
		return inverse
	}
	for i := 0; i < op.Multiplier; i++ {
		e.InsertText(op.Text)
	}
	if op.Undo {
		e.SetCursor(op.Cursor)
	}
	return inverse
}

func (op *Insert) Close() {}
