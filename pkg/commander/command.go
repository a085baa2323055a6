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
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/timburks/macro/pkg/editor"
	"github.com/timburks/macro/pkg/operations"
)

const noWriteSinceLastChange = "No write since last change (add ! to override)"

// A command is a line typed in command mode, such as "w notes.txt" or "q!".
type command struct {
	name  string
	force bool
	arg   string
}

func parseCommand(text string) command {
	name, arg, _ := strings.Cut(strings.TrimSpace(text), " ")
	cmd := command{name: name, arg: strings.TrimSpace(arg)}
	if len(name) > 1 && strings.HasSuffix(name, "!") {
		cmd.name = strings.TrimSuffix(name, "!")
		cmd.force = true
	}
	return cmd
}

func (c *Commander) performCommand() {
	e := c.editor

	text := c.commandText
	c.commandText = ""
	c.mode = c.baseMode()

	cmd := parseCommand(text)
	if line, err := strconv.Atoi(cmd.name); err == nil && cmd.arg == "" {
		e.MoveCursorToLine(line)
		return
	}
	switch cmd.name {
	case "":
	case "q", "quit":
		if e.IsModified() && !cmd.force {
			c.message = noWriteSinceLastChange
			return
		}
		c.quit()
	case "w", "write":
		c.write(cmd.arg)
	case "wq", "x":
		if c.write(cmd.arg) {
			c.quit()
		}
	case "e", "edit":
		name := cmd.arg
		if name == "" {
			name = e.GetFileName()
		}
		if name == "" {
			c.message = "No file name"
			return
		}
		if e.IsModified() && !cmd.force {
			c.message = noWriteSinceLastChange
			return
		}
		c.LoadFile(name)
	case "$":
		e.MoveToEndOfFile()
	case "fmt":
		op := &operations.Format{}
		e.Perform(op, 1)
		if op.Err != nil {
			c.message = op.Err.Error()
		} else {
			c.message = ""
		}
	case "eval":
		c.message = c.parseEval(string(e.Bytes()))
	case "debug":
		switch cmd.arg {
		case "on":
			c.debug = true
		case "off":
			c.debug = false
			c.message = ""
		}
	case "cursor":
		cursor := e.GetCursor()
		c.message = fmt.Sprintf("%d,%d", cursor.Row, cursor.Col)
	default:
		c.message = "Unknown command: " + text
	}
}

// write saves the buffer, reporting the result on the message bar.
func (c *Commander) write(name string) bool {
	e := c.editor
	err := e.WriteFile(name)
	switch {
	case errors.Is(err, editor.ErrNoFileName):
		c.message = "No file name"
		return false
	case err != nil:
		log.Printf("%v", err)
		c.message = fmt.Sprintf("Error writing file: %v", err)
		return false
	}
	c.message = "Wrote " + e.GetFileName()
	return true
}

// LoadFile reads a file into the editor, reporting the result on the message bar.
func (c *Commander) LoadFile(name string) error {
	err := c.editor.ReadFile(name)
	switch {
	case errors.Is(err, editor.ErrNewFile):
		c.message = "New file: " + name
		return nil
	case err != nil:
		log.Printf("%v", err)
		c.message = fmt.Sprintf("Error reading file: %v", err)
		return err
	}
	c.message = "Loaded " + name
	return nil
}
