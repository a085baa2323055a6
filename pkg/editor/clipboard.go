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
	"strings"

	"github.com/atotto/clipboard"
)

// A ClipboardMirror receives a copy of every pasteboard change.
type ClipboardMirror interface {
	WriteLines(lines []string) error
}

// SystemClipboard mirrors the pasteboard to the desktop clipboard.
type SystemClipboard struct{}

// NewSystemClipboard returns nil when no clipboard utility is available.
func NewSystemClipboard() ClipboardMirror {
	if clipboard.Unsupported {
		return nil
	}
	return SystemClipboard{}
}

func (SystemClipboard) WriteLines(lines []string) error {
	return clipboard.WriteAll(strings.Join(lines, "\n") + "\n")
}
