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
	"strconv"

	"github.com/mattn/go-runewidth"

	gott "github.com/timburks/macro/pkg/types"
)

// A Keymap selects how keys are interpreted.
type Keymap int

const (
	// KeymapVi is modal: keys are commands in normal mode and text in insert mode.
	KeymapVi Keymap = iota
	// KeymapNano is always inserting; control keys run commands.
	KeymapNano
)

const nanoHelp = "^X Exit | ^O Save | ^W Search | ^K Cut | ^U Paste | ^Z Undo | ^G Help"

// The Commander converts user input into commands to the editor.
type Commander struct {
	editor         gott.Editor
	keymap         Keymap
	mode           gott.Mode // editor mode
	running        bool      // false after a quit command
	debug          bool      // debug mode displays information about events (key codes, etc)
	help           bool      // show key help on the message bar
	tabWidth       int       // spaces inserted by the tab key
	editKeys       string    // edit key sequences in progress
	commandText    string    // command as it is being typed on the command line
	searchText     string    // text for searches as it is being typed
	lastSearch     string    // text of the last search performed
	searchForward  bool      // true to search forward, false to search backward
	lispText       string    // lisp command as it is being typed
	multiplierText string    // multiplier string as it is being entered
	message        string    // status message
	prompt         *prompt   // question being asked on the message bar
}

func NewCommander(e gott.Editor, keymap Keymap) *Commander {
	c := &Commander{editor: e, keymap: keymap, running: true, tabWidth: 4, searchForward: true}
	c.mode = c.baseMode()
	if keymap == KeymapNano {
		c.help = true
	}
	return c
}

// The mode that line-entry modes return to.
func (c *Commander) baseMode() gott.Mode {
	if c.keymap == KeymapNano {
		return gott.ModeInsert
	}
	return gott.ModeNormal
}

func (c *Commander) GetMode() gott.Mode {
	return c.mode
}

func (c *Commander) SetMode(m gott.Mode) {
	c.mode = m
}

func (c *Commander) GetKeymap() Keymap {
	return c.keymap
}

func (c *Commander) SetTabWidth(n int) {
	if n > 0 {
		c.tabWidth = n
	}
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) quit() {
	c.running = false
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) SetMessage(message string) {
	c.message = message
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", *event)
	}
	switch event.Type {
	case gott.EventKey:
		return c.processKey(event)
	case gott.EventResize:
		return c.processResize(event)
	default:
		return nil
	}
}

// The text area is the screen minus the info bar and the message bar.
func (c *Commander) processResize(event *gott.Event) error {
	if event.Width < 0 || event.Height < 0 {
		return fmt.Errorf("invalid screen size %dx%d", event.Width, event.Height)
	}
	c.editor.SetSize(gott.Size{Rows: max(event.Height-2, 0), Cols: event.Width})
	return nil
}

func (c *Commander) processKey(event *gott.Event) error {
	var err error
	switch c.mode {
	case gott.ModeNormal:
		err = c.processKeyNormalMode(event)
	case gott.ModeInsert:
		if c.keymap == KeymapNano {
			err = c.processKeyNanoMode(event)
		} else {
			err = c.processKeyInsertMode(event)
		}
	case gott.ModeCommand:
		err = c.processKeyCommandMode(event)
	case gott.ModeSearchForward, gott.ModeSearchBackward:
		err = c.processKeySearchMode(event)
	case gott.ModeLisp:
		err = c.processKeyLispMode(event)
	case gott.ModePrompt:
		err = c.processKeyPromptMode(event)
	default:
		err = fmt.Errorf("unknown mode %d", c.mode)
	}
	return err
}

func (c *Commander) getMultiplier() int {
	if c.multiplierText == "" {
		return 1
	}
	i, err := strconv.ParseInt(c.multiplierText, 10, 64)
	c.multiplierText = ""
	switch {
	case errors.Is(err, strconv.ErrRange), err == nil && i > gott.MaxMultiplier:
		return gott.MaxMultiplier
	case err != nil || i < 1:
		return 1
	}
	return int(i)
}

// getLineNumber reads a count as a line number, which can exceed MaxMultiplier.
func (c *Commander) getLineNumber() int {
	i, err := strconv.Atoi(c.multiplierText)
	c.multiplierText = ""
	if errors.Is(err, strconv.ErrRange) {
		return c.editor.GetRowCount()
	}
	return i
}

// GetMessageBarText returns the text of the message bar, truncated to length cells.
func (c *Commander) GetMessageBarText(length int) string {
	var line string
	switch c.mode {
	case gott.ModeCommand:
		line = ":" + c.commandText
	case gott.ModeSearchForward:
		if c.keymap == KeymapNano {
			line = "Search: " + c.searchText
		} else {
			line = "/" + c.searchText
		}
	case gott.ModeSearchBackward:
		line = "?" + c.searchText
	case gott.ModeLisp:
		line = c.lispText
	case gott.ModePrompt:
		if c.prompt != nil {
			line = c.prompt.label + c.prompt.input
		}
	default:
		line = c.message
		if line == "" && c.help {
			line = nanoHelp
		}
	}
	return runewidth.Truncate(line, max(length, 0), "")
}
