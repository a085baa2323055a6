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

// Restore returns the buffer and cursor to a snapshot.
// Its inverse restores the state it replaced.
type Restore struct {
	Snapshot gott.Snapshot
}

func (op *Restore) Perform(e gott.Editor, multiplier int) gott.Operation {
	inverse := &Restore{Snapshot: e.Snapshot()}
	e.Restore(op.Snapshot)
	return inverse
}
