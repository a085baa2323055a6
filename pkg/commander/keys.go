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
	"fmt"

	"github.com/timburks/macro/pkg/operations"
	gott "github.com/timburks/macro/pkg/types"
)

// eventRune returns the character typed, treating the space key as a character.
func eventRune(event *gott.Event) rune {
	if event.Ch != 0 {
		return event.Ch
	}
	if event.Key == gott.KeySpace {
		return ' '
	}
	return 0
}

// navigate handles the cursor keys shared by every editing mode.
// It returns false if the key is not a cursor key.
func (c *Commander) navigate(key gott.Key, multiplier int) bool {
	e := c.editor
	switch key {
	case gott.KeyArrowUp:
		e.MoveCursor(gott.MoveUp, multiplier)
	case gott.KeyArrowDown:
		e.MoveCursor(gott.MoveDown, multiplier)
	case gott.KeyArrowLeft:
		e.MoveCursor(gott.MoveLeft, multiplier)
	case gott.KeyArrowRight:
		e.MoveCursor(gott.MoveRight, multiplier)
	case gott.KeyHome:
		e.MoveToBeginningOfLine()
	case gott.KeyEnd:
		e.MoveToEndOfLine()
	case gott.KeyPgup:
		e.PageUp(multiplier)
	case gott.KeyPgdn:
		e.PageDown(multiplier)
	default:
		return false
	}
	return true
}

func (c *Commander) processKeyNormalMode(event *gott.Event) error {
	e := c.editor
	key := event.Key
	ch := eventRune(event)

	// multikey commands have highest precedence
	if len(c.editKeys) > 0 {
		editKeys := c.editKeys
		c.editKeys = ""
		switch editKeys {
		case "d":
			if ch == 'd' {
				e.Perform(&operations.DeleteRow{Yank: true}, c.getMultiplier())
			}
		case "y":
			if ch == 'y' {
				e.YankRows(c.getMultiplier())
				c.message = ""
			}
		case "r":
			if ch != 0 {
				e.Perform(&operations.ReplaceCharacter{Character: ch}, c.getMultiplier())
			}
		}
		c.multiplierText = ""
		return nil
	}
	if key != gott.KeyNone && key != gott.KeySpace {
		switch key {
		case gott.KeyEsc:
			c.multiplierText = ""
		case gott.KeyCtrlB:
			e.PageUp(c.getMultiplier())
		case gott.KeyCtrlF:
			e.PageDown(c.getMultiplier())
		case gott.KeyCtrlD:
			e.HalfPageDown(c.getMultiplier())
		case gott.KeyCtrlU:
			e.HalfPageUp(c.getMultiplier())
		case gott.KeyCtrlA:
			e.MoveToBeginningOfLine()
		case gott.KeyCtrlE:
			e.MoveToEndOfLine()
		case gott.KeyCtrlC:
			c.confirmQuit("Save changes? (y/n/c) ")
		case gott.KeyEnter:
			e.MoveCursor(gott.MoveDown, c.getMultiplier())
		case gott.KeyBackspace:
			e.MoveCursor(gott.MoveLeft, c.getMultiplier())
		default:
			c.navigate(key, c.getMultiplier())
		}
		return nil
	}
	switch ch {
	//
	// command multipliers are saved when operations are created
	//
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		c.multiplierText += string(ch)
	case '0':
		if c.multiplierText == "" {
			e.MoveToBeginningOfLine()
		} else {
			c.multiplierText += string(ch)
		}
	//
	// commands go to the message bar
	//
	case ':':
		c.commandText = ""
		c.mode = gott.ModeCommand
	//
	// lisp commands go to the message bar
	//
	case '(':
		c.lispText = "("
		c.mode = gott.ModeLisp
	//
	// search queries go to the message bar
	//
	case '/':
		c.searchText = ""
		c.mode = gott.ModeSearchForward
	case '?':
		c.searchText = ""
		c.mode = gott.ModeSearchBackward
	//
	// repeat the last search
	//
	case 'n':
		c.search(c.lastSearch, c.searchForward)
	case 'N':
		c.search(c.lastSearch, !c.searchForward)
	//
	// cursor movement isn't logged
	//
	case 'h':
		e.MoveCursor(gott.MoveLeft, c.getMultiplier())
	case 'j':
		e.MoveCursor(gott.MoveDown, c.getMultiplier())
	case 'k':
		e.MoveCursor(gott.MoveUp, c.getMultiplier())
	case 'l', ' ':
		e.MoveCursor(gott.MoveRight, c.getMultiplier())
	case 'w':
		e.MoveCursorToNextWord(c.getMultiplier())
	case 'b':
		e.MoveCursorToPreviousWord(c.getMultiplier())
	case '$':
		e.MoveToEndOfLine()
	case 'g':
		e.MoveToStartOfFile()
	case 'G':
		if c.multiplierText != "" {
			e.MoveCursorToLine(c.getLineNumber())
		} else {
			e.MoveToEndOfFile()
		}
	//
	// "performed" operations are saved for undo and repetition
	//
	case 'i':
		c.insert(gott.InsertAtCursor)
	case 'a':
		c.insert(gott.InsertAfterCursor)
	case 'I':
		c.insert(gott.InsertAtStartOfLine)
	case 'A':
		c.insert(gott.InsertAfterEndOfLine)
	case 'o':
		c.insert(gott.InsertAtNewLineBelowCursor)
	case 'O':
		c.insert(gott.InsertAtNewLineAboveCursor)
	case 'x':
		e.Perform(&operations.DeleteCharacter{}, c.getMultiplier())
	case 'J':
		e.Perform(&operations.JoinLine{}, c.getMultiplier())
	case 'p':
		e.Perform(&operations.Paste{}, c.getMultiplier())
	case 'P':
		e.Perform(&operations.Paste{Above: true}, c.getMultiplier())
	//
	// a few keys open multi-key commands
	//
	case 'd', 'y', 'r':
		c.editKeys = string(ch)
	//
	// undo
	//
	case 'u':
		c.multiplierText = ""
		if !e.PerformUndo() {
			c.message = "Already at oldest change"
		}
	//
	// repeat
	//
	case '.':
		c.multiplierText = ""
		e.Repeat()
	}
	return nil
}

func (c *Commander) insert(position int) {
	c.multiplierText = ""
	c.editor.Perform(&operations.Insert{Position: position, Commander: c}, 1)
}

func (c *Commander) processKeyInsertMode(event *gott.Event) error {
	e := c.editor
	if event.Key == gott.KeyEsc {
		// end an insert operation.
		e.CloseInsert()
		c.mode = gott.ModeNormal
		e.KeepCursorInRow()
		return nil
	}
	c.insertKey(event)
	return nil
}

// insertKey applies a key that edits text directly.
func (c *Commander) insertKey(event *gott.Event) {
	e := c.editor
	switch event.Key {
	case gott.KeyBackspace:
		e.BackspaceChar()
	case gott.KeyDelete:
		e.DeleteCharAtCursor()
	case gott.KeyEnter:
		e.InsertChar('\n')
	case gott.KeyTab:
		e.InsertChar(' ')
		for e.GetCursor().Col%c.tabWidth != 0 {
			e.InsertChar(' ')
		}
	default:
		if c.navigate(event.Key, 1) {
			return
		}
		if ch := eventRune(event); ch != 0 {
			e.InsertChar(ch)
		}
	}
}

// processKeyNanoMode handles keys for the nano keymap, where typing always edits.
// Each run of typing is a separate insert operation so that it can be undone.
func (c *Commander) processKeyNanoMode(event *gott.Event) error {
	e := c.editor
	c.message = ""
	switch event.Key {
	case gott.KeyCtrlX:
		e.CloseInsert()
		c.confirmQuit("Save modified buffer? (y/n/c) ")
	case gott.KeyCtrlO, gott.KeyCtrlS:
		e.CloseInsert()
		if e.GetFileName() == "" {
			c.ask("Save as: ", "", func(name string) {
				c.write(name)
			})
		} else {
			c.write("")
		}
	case gott.KeyCtrlW:
		e.CloseInsert()
		c.searchText = ""
		c.mode = gott.ModeSearchForward
	case gott.KeyCtrlK:
		e.CloseInsert()
		e.Perform(&operations.DeleteRow{Yank: true}, 1)
	case gott.KeyCtrlU:
		e.CloseInsert()
		e.Perform(&operations.Paste{Above: true}, 1)
	case gott.KeyCtrlZ:
		e.CloseInsert()
		if !e.PerformUndo() {
			c.message = "Nothing to undo"
		}
	case gott.KeyCtrlG:
		c.help = !c.help
	case gott.KeyCtrlA:
		e.MoveToBeginningOfLine()
	case gott.KeyCtrlE:
		e.MoveToEndOfLine()
	case gott.KeyCtrlC:
		cursor := e.GetCursor()
		c.message = fmt.Sprintf("line %d/%d, col %d", cursor.Row+1, e.GetRowCount(), cursor.Col+1)
	case gott.KeyEsc:
		// nano has no normal mode
	case gott.KeyArrowUp, gott.KeyArrowDown, gott.KeyArrowLeft, gott.KeyArrowRight,
		gott.KeyHome, gott.KeyEnd, gott.KeyPgup, gott.KeyPgdn:
		e.CloseInsert()
		c.navigate(event.Key, 1)
	default:
		if event.Key == gott.KeyNone || event.Key == gott.KeySpace || event.Key == gott.KeyBackspace ||
			event.Key == gott.KeyDelete || event.Key == gott.KeyEnter || event.Key == gott.KeyTab {
			if e.GetInsertOperation() == nil {
				e.Perform(&operations.Insert{Position: gott.InsertAtCursor}, 1)
			}
			c.insertKey(event)
		}
	}
	return nil
}

// lineEdit applies a key to text being typed on the message bar.
// It returns the new text and whether the key was used.
func lineEdit(text string, event *gott.Event) (string, bool) {
	if event.Key == gott.KeyBackspace {
		if text == "" {
			return text, false
		}
		runes := []rune(text)
		return string(runes[:len(runes)-1]), true
	}
	if ch := eventRune(event); ch != 0 {
		return text + string(ch), true
	}
	if event.Key == gott.KeyTab {
		return text + "\t", true
	}
	return text, false
}

func (c *Commander) processKeyCommandMode(event *gott.Event) error {
	switch event.Key {
	case gott.KeyEsc, gott.KeyCtrlC:
		c.commandText = ""
		c.mode = c.baseMode()
	case gott.KeyEnter:
		c.performCommand()
	case gott.KeyBackspace:
		if c.commandText == "" {
			c.mode = c.baseMode()
			return nil
		}
		c.commandText, _ = lineEdit(c.commandText, event)
	default:
		c.commandText, _ = lineEdit(c.commandText, event)
	}
	return nil
}

func (c *Commander) processKeySearchMode(event *gott.Event) error {
	switch event.Key {
	case gott.KeyEsc, gott.KeyCtrlC:
		c.mode = c.baseMode()
	case gott.KeyEnter:
		forward := c.mode != gott.ModeSearchBackward
		c.mode = c.baseMode()
		text := c.searchText
		if text == "" {
			text = c.lastSearch
		}
		c.searchForward = forward
		c.search(text, forward)
	case gott.KeyBackspace:
		if c.searchText == "" {
			c.mode = c.baseMode()
			return nil
		}
		c.searchText, _ = lineEdit(c.searchText, event)
	default:
		c.searchText, _ = lineEdit(c.searchText, event)
	}
	return nil
}

func (c *Commander) search(text string, forward bool) {
	if text == "" {
		c.message = "No previous search"
		return
	}
	c.lastSearch = text
	var found bool
	if forward {
		found = c.editor.PerformSearchForward(text)
	} else {
		found = c.editor.PerformSearchBackward(text)
	}
	if found {
		c.message = fmt.Sprintf("Found '%s'", text)
	} else {
		c.message = fmt.Sprintf("String not found: %s", text)
	}
}

func (c *Commander) processKeyLispMode(event *gott.Event) error {
	switch event.Key {
	case gott.KeyEsc, gott.KeyCtrlC:
		c.mode = c.baseMode()
	case gott.KeyEnter:
		c.mode = c.baseMode()
		c.message = c.parseEval(c.lispText)
	case gott.KeyBackspace:
		if c.lispText == "" {
			c.mode = c.baseMode()
			return nil
		}
		c.lispText, _ = lineEdit(c.lispText, event)
	default:
		c.lispText, _ = lineEdit(c.lispText, event)
	}
	return nil
}
