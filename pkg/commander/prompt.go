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

package commander

import (
	"strings"

	gott "github.com/timburks/macro/pkg/types"
)

// A prompt asks a question on the message bar.
// When choices is set, a single key from choices answers it;
// otherwise a line of text is typed and Enter answers it.
type prompt struct {
	label   string
	input   string
	choices string
	answer  func(string)
}

func (c *Commander) ask(label, choices string, answer func(string)) {
	c.prompt = &prompt{label: label, choices: choices, answer: answer}
	c.mode = gott.ModePrompt
}

func (c *Commander) cancelPrompt() {
	c.prompt = nil
	c.mode = c.baseMode()
	c.message = "Cancelled"
}

func (c *Commander) processKeyPromptMode(event *gott.Event) error {
	p := c.prompt
	if p == nil {
		c.mode = c.baseMode()
		return nil
	}
	switch event.Key {
	case gott.KeyEsc, gott.KeyCtrlC, gott.KeyCtrlG:
		c.cancelPrompt()
		return nil
	}
	if p.choices != "" {
		ch := eventRune(event)
		if ch == 0 || !strings.ContainsRune(p.choices, ch) {
			return nil
		}
		c.prompt = nil
		c.mode = c.baseMode()
		p.answer(strings.ToLower(string(ch)))
		return nil
	}
	if event.Key == gott.KeyEnter {
		c.prompt = nil
		c.mode = c.baseMode()
		p.answer(p.input)
		return nil
	}
	p.input, _ = lineEdit(p.input, event)
	return nil
}

// confirmQuit quits, asking first whether to save a modified buffer.
func (c *Commander) confirmQuit(label string) {
	e := c.editor
	if !e.IsModified() {
		c.quit()
		return
	}
	c.ask(label, "ynYNcC", func(answer string) {
		switch answer {
		case "y":
			if e.GetFileName() != "" {
				if c.write("") {
					c.quit()
				}
				return
			}
			c.ask("Save as: ", "", func(name string) {
				if c.write(name) {
					c.quit()
				}
			})
		case "n":
			c.quit()
		default:
			c.message = "Cancelled"
		}
	})
}
