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
	"log"

	"github.com/steelseries/golisp"

	"github.com/timburks/macro/pkg/operations"
	gott "github.com/timburks/macro/pkg/types"
)

// current is the commander that lisp primitives act on.
// It is set before each evaluation.
var current *Commander

type primitive func(c *Commander, args *golisp.Data) (*golisp.Data, error)

func define(name, argCount string, p primitive) {
	golisp.MakePrimitiveFunction(name, argCount,
		func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			if current == nil {
				return nil, fmt.Errorf("%s: no editor", name)
			}
			return p(current, args)
		})
}

func init() {
	// text
	define("insert", "1", insertImpl)
	define("line", "0|1", lineImpl)
	define("line-count", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(c.editor.GetRowCount())), nil
	})
	define("modified?", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return golisp.BooleanWithValue(c.editor.IsModified()), nil
	})
	define("write", "0|1", writeImpl)
	define("message", "1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		c.message = displayString(golisp.Car(args))
		return golisp.Car(args), nil
	})

	// cursor movement
	define("cursor", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return cursorValue(c), nil
	})
	define("goto", "2", gotoImpl)
	define("up", "0|1", move(gott.MoveUp))
	define("down", "0|1", move(gott.MoveDown))
	define("left", "0|1", move(gott.MoveLeft))
	define("right", "0|1", move(gott.MoveRight))
	define("beginning-of-line", "0", motion(gott.Editor.MoveToBeginningOfLine))
	define("end-of-line", "0", motion(gott.Editor.MoveToEndOfLine))
	define("start-of-file", "0", motion(gott.Editor.MoveToStartOfFile))
	define("end-of-file", "0", motion(gott.Editor.MoveToEndOfFile))

	// operations
	define("delete-row", "0|1", perform(func() gott.Operation { return &operations.DeleteRow{Yank: true} }))
	define("delete-character", "0|1", perform(func() gott.Operation { return &operations.DeleteCharacter{} }))
	define("join-line", "0|1", perform(func() gott.Operation { return &operations.JoinLine{} }))
	define("paste", "0|1", perform(func() gott.Operation { return &operations.Paste{} }))
	define("yank-row", "0|1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		n, err := countArg("yank-row", args)
		if err != nil {
			return nil, err
		}
		c.editor.YankRows(n)
		return golisp.IntegerWithValue(int64(len(c.editor.GetPasteBoard()))), nil
	})
	define("undo", "0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return golisp.BooleanWithValue(c.editor.PerformUndo()), nil
	})
}

// parseEval evaluates lisp source and returns its value or error as text.
func (c *Commander) parseEval(command string) string {
	value, err := c.Eval(command)
	if err != nil {
		log.Printf("lisp: %v", err)
		return err.Error()
	}
	return value
}

// Eval evaluates lisp source against the commander's editor.
func (c *Commander) Eval(command string) (string, error) {
	current = c
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return "", err
	}
	return displayString(value), nil
}

func displayString(d *golisp.Data) string {
	if golisp.StringP(d) {
		return golisp.StringValue(d)
	}
	return golisp.String(d)
}

func intArg(name string, d *golisp.Data) (int, error) {
	switch {
	case golisp.IntegerP(d):
		return int(golisp.IntegerValue(d)), nil
	case golisp.FloatP(d):
		return int(golisp.FloatValue(d)), nil
	}
	return 0, fmt.Errorf("%s requires a number argument, got %s", name, golisp.String(d))
}

// countArg returns the optional repeat count of a primitive.
func countArg(name string, args *golisp.Data) (int, error) {
	if golisp.Length(args) == 0 {
		return 1, nil
	}
	n, err := intArg(name, golisp.Car(args))
	if err != nil {
		return 0, err
	}
	return min(max(n, 1), gott.MaxMultiplier), nil
}

func cursorValue(c *Commander) *golisp.Data {
	cursor := c.editor.GetCursor()
	return golisp.Cons(golisp.IntegerWithValue(int64(cursor.Row)),
		golisp.Cons(golisp.IntegerWithValue(int64(cursor.Col)), nil))
}

func move(direction int) primitive {
	return func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		n, err := countArg("move", args)
		if err != nil {
			return nil, err
		}
		c.editor.MoveCursor(direction, n)
		return cursorValue(c), nil
	}
}

func motion(f func(gott.Editor)) primitive {
	return func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		f(c.editor)
		return cursorValue(c), nil
	}
}

func perform(makeOperation func() gott.Operation) primitive {
	return func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		n, err := countArg("operation", args)
		if err != nil {
			return nil, err
		}
		c.editor.Perform(makeOperation(), n)
		return cursorValue(c), nil
	}
}

func insertImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	text := golisp.Car(args)
	if !golisp.StringP(text) {
		return nil, fmt.Errorf("insert requires a string argument, got %s", golisp.String(text))
	}
	c.editor.Perform(&operations.Insert{Position: gott.InsertAtCursor, Text: golisp.StringValue(text)}, 1)
	return cursorValue(c), nil
}

func lineImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	row := c.editor.GetCursor().Row
	if golisp.Length(args) > 0 {
		n, err := intArg("line", golisp.Car(args))
		if err != nil {
			return nil, err
		}
		row = n
	}
	if row < 0 || row >= c.editor.GetRowCount() {
		return nil, fmt.Errorf("line %d is out of range", row)
	}
	return golisp.StringWithValue(c.editor.GetLine(row)), nil
}

func gotoImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	row, err := intArg("goto", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	col, err := intArg("goto", golisp.Cadr(args))
	if err != nil {
		return nil, err
	}
	c.editor.SetCursor(gott.Point{Row: row, Col: col})
	return cursorValue(c), nil
}

func writeImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	var name string
	if golisp.Length(args) > 0 {
		arg := golisp.Car(args)
		if !golisp.StringP(arg) {
			return nil, fmt.Errorf("write requires a string argument, got %s", golisp.String(arg))
		}
		name = golisp.StringValue(arg)
	}
	if err := c.editor.WriteFile(name); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.editor.GetFileName()), nil
}
