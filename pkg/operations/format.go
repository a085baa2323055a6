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
	"bytes"

	gott "github.com/timburks/macro/pkg/types"
)

// Format rewrites the buffer as gofmt-formatted Go source.
// If the buffer doesn't parse, Err is set and nothing changes.
type Format struct {
	Err error
}

func (op *Format) Perform(e gott.Editor, multiplier int) gott.Operation {
	before := e.Snapshot()
	unchanged := e.Bytes()
	if op.Err = e.Gofmt(); op.Err != nil {
		return nil
	}
	if bytes.Equal(unchanged, e.Bytes()) {
		return nil
	}
	return &Restore{Snapshot: before}
}
