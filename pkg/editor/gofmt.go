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
	"bytes"
	"fmt"
	"go/format"
)

// Gofmt formats the buffer as Go source.
// On a syntax error the buffer is unchanged and the error is returned.
func (e *Editor) Gofmt() error {
	in := e.buffer.Bytes()
	out, err := format.Source(in)
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if bytes.Equal(in, out) {
		return nil
	}
	cursor := e.window.cursor
	finalNewline, crlf := e.buffer.finalNewline, e.buffer.crlf
	e.buffer.LoadBytes(out)
	e.buffer.finalNewline, e.buffer.crlf = finalNewline, crlf
	e.buffer.modified = true
	e.window.SetCursor(cursor)
	return nil
}
