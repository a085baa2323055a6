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

// Package types defines the values and interfaces shared by the editor,
// the commander, the operations, and the screen.
package types

// Mode is the input-interpretation context of the commander.
type Mode int

// Editor modes
const (
	ModeNormal Mode = iota
	ModeInsert
	ModeCommand
	ModeSearchForward
	ModeSearchBackward
	ModeLisp
	ModePrompt
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	case ModeSearchForward, ModeSearchBackward:
		return "SEARCH"
	case ModeLisp:
		return "LISP"
	case ModePrompt:
		return "PROMPT"
	default:
		return "UNKNOWN"
	}
}

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Insert positions
const (
	InsertAtCursor             = 0
	InsertAfterCursor          = 1
	InsertAtStartOfLine        = 2
	InsertAfterEndOfLine       = 3
	InsertAtNewLineBelowCursor = 4
	InsertAtNewLineAboveCursor = 5
)

// MaxMultiplier bounds the repeat count of any command.
const MaxMultiplier = 10000

// Results of single-step cursor movement
const (
	AtNextCharacter = 0
	AtNextLine      = 1
	AtEndOfFile     = 2
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// A Snapshot captures buffer contents and cursor position so that
// arbitrary edits can be undone.
type Snapshot struct {
	Lines  []string
	Cursor Point
}

// Color is a display role; displays map roles to concrete attributes.
type Color int

const (
	ColorText Color = iota
	ColorFiller
	ColorLineNumber
	ColorInfoBar
	ColorMessage
)

// A Display is a rectangular grid of character cells.
// Cells outside of the display's size are silently dropped.
type Display interface {
	SetCell(col, row int, ch rune, color Color)
	SetCursor(p Point)
	Size() Size
}

type Editor interface {
	// cursor and viewport
	GetCursor() Point
	SetCursor(cursor Point)
	SetSize(size Size)
	GetSize() Size
	GetOffset() Size
	MoveCursor(direction int, multiplier int)
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	MoveToStartOfFile()
	MoveToEndOfFile()
	MoveCursorToLine(line int)
	MoveCursorToNextWord(multiplier int)
	MoveCursorToPreviousWord(multiplier int)
	PageUp(multiplier int)
	PageDown(multiplier int)
	HalfPageUp(multiplier int)
	HalfPageDown(multiplier int)
	KeepCursorInRow()
	PerformSearchForward(text string) bool
	PerformSearchBackward(text string) bool

	// editing primitives
	InsertChar(c rune)
	BackspaceChar() rune
	DeleteCharAtCursor() rune
	PrepareInsert(position int) Point
	InsertText(text string) Point
	DeleteCharactersAtCursor(multiplier int, joinLines bool) string
	DeleteRowsAtCursor(multiplier int) (lines []string, emptied bool)
	InsertRows(row int, lines []string, replace bool)
	JoinRowAtCursor() bool
	SplitRowAt(p Point)
	ReplaceCharacterAtCursor(cursor Point, c rune) rune
	Snapshot() Snapshot
	Restore(s Snapshot)

	// pasteboard
	SetPasteBoard(lines []string)
	GetPasteBoard() []string
	YankRows(multiplier int)

	// operations
	Perform(op Operation, multiplier int)
	PerformUndo() bool
	Repeat()
	SetInsertOperation(insert InsertOperation)
	GetInsertOperation() InsertOperation
	CloseInsert()

	// files
	ReadFile(path string) error
	WriteFile(path string) error
	GetFileName() string
	IsModified() bool
	Bytes() []byte
	GetRowCount() int
	GetLine(row int) string
	Gofmt() error

	// display
	Render(d Display)
	GetCursorForDisplay() Point
}

type Operation interface {
	Perform(e Editor, multiplier int) Operation // performs the operation and returns its inverse
}

type InsertOperation interface {
	Operation
	Close()
}

type Commander interface {
	SetMode(Mode)
	GetMode() Mode
	GetMessageBarText(length int) string
}
