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

// JoinLine joins the current line with the ones below it.
// A multiplier of n joins n lines; the minimum is two.
type JoinLine struct {
	Op
}

func (op *JoinLine) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	before := e.Snapshot()
	joined := false
	for i := 0; i < max(op.Multiplier-1, 1); i++ {
		if !e.JoinRowAtCursor() {
			break
		}
		joined = true
	}
	if !joined {
		return nil
	}
	return &Restore{Snapshot: before}
}
