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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gott "github.com/timburks/macro/pkg/types"
)

func TestLispQueries(t *testing.T) {
	c, e := setup(t, KeymapVi, "abc", "def")
	out, err := c.Eval("(line-count)")
	require.NoError(t, err)
	assert.Equal(t, "2", out)

	out, err = c.Eval("(line 1)")
	require.NoError(t, err)
	assert.Equal(t, "def", out)

	_, err = c.Eval("(goto 1 2)")
	require.NoError(t, err)
	assert.Equal(t, gott.Point{Row: 1, Col: 2}, e.GetCursor())

	out, err = c.Eval("(line)")
	require.NoError(t, err)
	assert.Equal(t, "def", out)

	_, err = c.Eval("(line 7)")
	assert.Error(t, err)
	_, err = c.Eval(`(goto "x" 1)`)
	assert.Error(t, err)
}

func TestLispEditing(t *testing.T) {
	c, e := setup(t, KeymapVi, "abc", "def")
	_, err := c.Eval(`(insert "hi ")`)
	require.NoError(t, err)
	assert.Equal(t, []string{"hi abc", "def"}, lines(e))
	assert.Equal(t, gott.Point{Row: 0, Col: 3}, e.GetCursor())
	assert.True(t, e.IsModified())

	_, err = c.Eval("(undo)")
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "def"}, lines(e))

	_, err = c.Eval("(delete-row)")
	require.NoError(t, err)
	assert.Equal(t, []string{"def"}, lines(e))
	_, err = c.Eval("(paste 2)")
	require.NoError(t, err)
	assert.Equal(t, []string{"def", "abc", "abc"}, lines(e))

	_, err = c.Eval("(start-of-file)")
	require.NoError(t, err)
	_, err = c.Eval("(join-line)")
	require.NoError(t, err)
	assert.Equal(t, []string{"def abc", "abc"}, lines(e))
}

func TestLispMovement(t *testing.T) {
	c, e := setup(t, KeymapVi, "abc", "def", "ghi")
	for _, expr := range []string{"(down 2)", "(end-of-line)", "(left)", "(up)", "(beginning-of-line)", "(right 2)"} {
		_, err := c.Eval(expr)
		require.NoError(t, err, expr)
	}
	assert.Equal(t, gott.Point{Row: 1, Col: 2}, e.GetCursor())
	_, err := c.Eval("(end-of-file)")
	require.NoError(t, err)
	assert.Equal(t, gott.Point{Row: 2}, e.GetCursor())
}

func TestLispMode(t *testing.T) {
	c, _ := setup(t, KeymapVi, "abc")
	typeText(t, c, "(")
	assert.Equal(t, gott.ModeLisp, c.GetMode())
	assert.Equal(t, "(", c.GetMessageBarText(80))
	typeText(t, c, `message "hello")`)
	press(t, c, gott.KeyEnter)
	assert.Equal(t, gott.ModeNormal, c.GetMode())
	assert.Equal(t, "hello", c.GetMessage())

	typeText(t, c, "(")
	press(t, c, gott.KeyBackspace, gott.KeyBackspace)
	assert.Equal(t, gott.ModeNormal, c.GetMode())
}

func TestEvalCommand(t *testing.T) {
	c, _ := setup(t, KeymapVi, "(+ 1 2)")
	typeText(t, c, ":eval")
	press(t, c, gott.KeyEnter)
	assert.Equal(t, "3", c.GetMessage())
}
