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

// InsertRows inserts whole rows before Row. With Replace, the rows replace the buffer.
type InsertRows struct {
	Op
	Row     int
	Lines   []string
	Replace bool
}

func (op *InsertRows) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	if len(op.Lines) == 0 {
		return nil
	}
	e.InsertRows(op.Row, op.Lines, op.Replace)
	if op.Undo {
		e.SetCursor(op.Cursor)
	}
	inverse := &DeleteRow{}
	inverse.Cursor = gott.Point{Row: op.Row}
	inverse.Multiplier = len(op.Lines)
	inverse.Undo = true
	return inverse
}
