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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/macro/pkg/editor"
	gott "github.com/timburks/macro/pkg/types"
)

const source = "testdata/gettysburg-address.txt"

func setup(t *testing.T) *editor.Editor {
	t.Helper()
	e := editor.NewEditor()
	require.NoError(t, e.ReadFile(source))
	return e
}

// final writes the buffer and checks that it matches the original file.
func final(t *testing.T, e *editor.Editor) {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "final.txt")
	require.NoError(t, e.WriteFile(filename))
	expected, err := os.ReadFile(source)
	require.NoError(t, err)
	actual, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(actual))
}

func TestReadWriteInvariance(t *testing.T) {
	e := setup(t)
	final(t, e)
}

func TestDeleteRow(t *testing.T) {
	e := setup(t)
	e.SetCursor(gott.Point{Row: 20, Col: 0})
	e.Perform(&DeleteRow{}, 20)
	assert.Equal(t, 20, e.GetRowCount())
	assert.Nil(t, e.GetPasteBoard())
	assert.True(t, e.PerformUndo())
	final(t, e)
}

func TestDeleteRowYank(t *testing.T) {
	e := setup(t)
	e.SetCursor(gott.Point{Row: 26, Col: 4})
	e.Perform(&DeleteRow{Yank: true}, 5)
	assert.Equal(t, 26, e.GetRowCount())
	assert.Equal(t, []string{"Abraham Lincoln", "November 19, 1863"}, e.GetPasteBoard())
	e.PerformUndo()
	assert.Equal(t, gott.Point{Row: 26, Col: 4}, e.GetCursor())
	final(t, e)
}

func TestDeleteAllRows(t *testing.T) {
	e := setup(t)
	e.Perform(&DeleteRow{}, 100)
	assert.Equal(t, 1, e.GetRowCount())
	assert.Equal(t, "", e.GetLine(0))
	e.PerformUndo()
	assert.Equal(t, 28, e.GetRowCount())
	final(t, e)
}

func TestDeleteCharacter(t *testing.T) {
	e := setup(t)
	e.SetCursor(gott.Point{Row: 19, Col: 0})
	e.Perform(&DeleteCharacter{}, 28)
	assert.Equal(t, "remaining before us--that from these", e.GetLine(19))
	e.PerformUndo()
	final(t, e)
}

func TestDeleteCharacterStopsAtEndOfRow(t *testing.T) {
	e := setup(t)
	e.SetCursor(gott.Point{Row: 26, Col: 8})
	e.Perform(&DeleteCharacter{}, 100)
	assert.Equal(t, "Abraham ", e.GetLine(26))
	assert.Equal(t, 28, e.GetRowCount())
	e.PerformUndo()
	final(t, e)
}

func TestDeleteCharacterJoinLines(t *testing.T) {
	e := setup(t)
	e.SetCursor(gott.Point{Row: 26, Col: 8})
	e.Perform(&DeleteCharacter{JoinLines: true}, 8)
	assert.Equal(t, "Abraham November 19, 1863", e.GetLine(26))
	assert.Equal(t, 27, e.GetRowCount())
	e.PerformUndo()
	final(t, e)
}

func TestInsert(t *testing.T) {
	e := setup(t)
	e.SetCursor(gott.Point{Row: 1, Col: 0})
	e.Perform(&Insert{Position: gott.InsertAtCursor, Text: "hello, world!"}, 1)
	assert.Equal(t, "hello, world!", e.GetLine(1))

	e.SetCursor(gott.Point{Row: 0, Col: 3})
	e.Perform(&Insert{Position: gott.InsertAfterCursor, Text: "BIG LEAGUE "}, 1)
	assert.Equal(t, "THE BIG LEAGUE GETTYSBURG ADDRESS:", e.GetLine(0))

	e.SetCursor(gott.Point{Row: 3, Col: 3})
	e.Perform(&Insert{Position: gott.InsertAfterEndOfLine, Text: " very"}, 1)
	assert.Equal(t, "Four score and seven years ago our fathers brought forth on this very", e.GetLine(3))

	e.SetCursor(gott.Point{Row: 4, Col: 3})
	e.Perform(&Insert{Position: gott.InsertAtStartOfLine, Text: "nice "}, 1)
	assert.Equal(t, "nice continent a new nation, conceived in liberty and dedicated to the", e.GetLine(4))

	e.SetCursor(gott.Point{Row: 21, Col: 3})
	e.Perform(&Insert{Position: gott.InsertAtNewLineAboveCursor, Text: "most"}, 1)
	assert.Equal(t, "most", e.GetLine(21))

	e.SetCursor(gott.Point{Row: 22, Col: 3})
	e.Perform(&Insert{Position: gott.InsertAtNewLineBelowCursor, Text: "excellent"}, 1)
	assert.Equal(t, "excellent", e.GetLine(23))
	assert.Equal(t, 30, e.GetRowCount())

	for i := 0; i < 6; i++ {
		assert.True(t, e.PerformUndo())
	}
	assert.False(t, e.PerformUndo())
	final(t, e)
}

func TestInsertMultiplier(t *testing.T) {
	e := setup(t)
	e.SetCursor(gott.Point{Row: 1, Col: 0})
	e.Perform(&Insert{Position: gott.InsertAtCursor, Text: "ab"}, 3)
	assert.Equal(t, "ababab", e.GetLine(1))
	e.PerformUndo()
	final(t, e)
}

type modeRecorder struct {
	mode gott.Mode
}

func (m *modeRecorder) SetMode(mode gott.Mode)              { m.mode = mode }
func (m *modeRecorder) GetMode() gott.Mode                  { return m.mode }
func (m *modeRecorder) GetMessageBarText(length int) string { return "" }

func TestInsertSession(t *testing.T) {
	e := setup(t)
	c := &modeRecorder{}
	e.SetCursor(gott.Point{Row: 26, Col: 0})
	insert := &Insert{Position: gott.InsertAtNewLineBelowCursor, Commander: c}
	e.Perform(insert, 1)
	assert.Equal(t, gott.ModeInsert, c.mode)
	assert.Equal(t, gott.InsertOperation(insert), e.GetInsertOperation())
	assert.Equal(t, gott.Point{Row: 27, Col: 0}, e.GetCursor())

	e.InsertText("Gettysburg, Pennsylvania")
	e.CloseInsert()
	assert.Nil(t, e.GetInsertOperation())
	assert.Equal(t, "Gettysburg, Pennsylvania", e.GetLine(27))

	e.PerformUndo()
	assert.Equal(t, gott.Point{Row: 26, Col: 0}, e.GetCursor())
	final(t, e)
}

func TestReplaceCharacter(t *testing.T) {
	e := setup(t)
	for col := 0; col < 3; col++ {
		e.SetCursor(gott.Point{Row: 0, Col: col})
		e.Perform(&ReplaceCharacter{Character: 'X'}, 1)
	}
	assert.Equal(t, "XXX GETTYSBURG ADDRESS:", e.GetLine(0))
	e.PerformUndo()
	e.PerformUndo()
	e.PerformUndo()
	final(t, e)
}

func TestReplaceCharacterOnEmptyRow(t *testing.T) {
	e := setup(t)
	e.SetCursor(gott.Point{Row: 1, Col: 0})
	e.Perform(&ReplaceCharacter{Character: 'X'}, 1)
	assert.Equal(t, "", e.GetLine(1))
	assert.False(t, e.PerformUndo())
	assert.False(t, e.IsModified())
}

func TestPaste(t *testing.T) {
	e := setup(t)
	e.SetCursor(gott.Point{Row: 26, Col: 0})
	e.YankRows(2)

	e.SetCursor(gott.Point{Row: 0, Col: 0})
	e.Perform(&Paste{}, 2)
	assert.Equal(t, 32, e.GetRowCount())
	assert.Equal(t, "Abraham Lincoln", e.GetLine(1))
	assert.Equal(t, "November 19, 1863", e.GetLine(4))
	e.PerformUndo()

	e.SetCursor(gott.Point{Row: 0, Col: 0})
	e.Perform(&Paste{Above: true}, 1)
	assert.Equal(t, "Abraham Lincoln", e.GetLine(0))
	assert.Equal(t, "THE GETTYSBURG ADDRESS:", e.GetLine(2))
	e.PerformUndo()
	final(t, e)
}

func TestPasteEmptyPasteBoard(t *testing.T) {
	e := setup(t)
	e.Perform(&Paste{}, 1)
	assert.Equal(t, 28, e.GetRowCount())
	assert.False(t, e.PerformUndo())
}

func TestJoinLine(t *testing.T) {
	e := setup(t)
	e.SetCursor(gott.Point{Row: 26, Col: 0})
	e.Perform(&JoinLine{}, 1)
	assert.Equal(t, "Abraham Lincoln November 19, 1863", e.GetLine(26))
	assert.Equal(t, 27, e.GetRowCount())
	e.PerformUndo()

	e.SetCursor(gott.Point{Row: 3, Col: 0})
	e.Perform(&JoinLine{}, 3)
	assert.Equal(t, "Four score and seven years ago our fathers brought forth on this "+
		"continent a new nation, conceived in liberty and dedicated to the "+
		"proposition that all men are created equal.", e.GetLine(3))
	e.PerformUndo()
	final(t, e)
}

func TestJoinLastLine(t *testing.T) {
	e := setup(t)
	e.SetCursor(gott.Point{Row: 27, Col: 0})
	e.Perform(&JoinLine{}, 1)
	assert.False(t, e.PerformUndo())
	final(t, e)
}

func TestRepeat(t *testing.T) {
	e := setup(t)
	e.SetCursor(gott.Point{Row: 19, Col: 0})
	e.Perform(&DeleteCharacter{}, 10)
	e.Repeat()
	assert.Equal(t, "at task remaining before us--that from these", e.GetLine(19))
	e.PerformUndo()
	e.PerformUndo()
	final(t, e)
}

func TestFormat(t *testing.T) {
	e := editor.NewEditor()
	e.LoadBytes([]byte("package main\nfunc main(){\nx:=1\n_=x}\n"))
	op := &Format{}
	e.Perform(op, 1)
	require.NoError(t, op.Err)
	assert.Equal(t, "package main\n\nfunc main() {\n\tx := 1\n\t_ = x\n}\n", string(e.Bytes()))
	e.PerformUndo()
	assert.Equal(t, "package main\nfunc main(){\nx:=1\n_=x}\n", string(e.Bytes()))

	// formatting formatted source adds nothing to undo
	e.Perform(&Format{}, 1)
	e.Perform(&Format{}, 1)
	assert.True(t, e.PerformUndo())
	assert.Equal(t, "package main\nfunc main(){\nx:=1\n_=x}\n", string(e.Bytes()))
	assert.False(t, e.PerformUndo())

	e = setup(t)
	op = &Format{}
	e.Perform(op, 1)
	assert.Error(t, op.Err)
	assert.False(t, e.PerformUndo())
	final(t, e)
}

func TestRestore(t *testing.T) {
	e := setup(t)
	snapshot := e.Snapshot()
	e.SetCursor(gott.Point{Row: 5, Col: 4})
	e.Perform(&Restore{Snapshot: gott.Snapshot{Lines: []string{"one", "two"}, Cursor: gott.Point{Row: 1, Col: 2}}}, 1)
	assert.Equal(t, 2, e.GetRowCount())
	assert.Equal(t, gott.Point{Row: 1, Col: 2}, e.GetCursor())
	e.PerformUndo()
	assert.Equal(t, snapshot.Lines, e.Snapshot().Lines)
	assert.Equal(t, gott.Point{Row: 5, Col: 4}, e.GetCursor())
	final(t, e)
}
