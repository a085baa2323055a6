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

package screen

import (
	"strings"

	gott "github.com/timburks/macro/pkg/types"
)

type Cell struct {
	Ch    rune
	Color gott.Color
}

// A Grid is an in-memory Display.
type Grid struct {
	size   gott.Size
	cells  [][]Cell
	cursor gott.Point
}

func NewGrid(rows, cols int) *Grid {
	g := &Grid{size: gott.Size{Rows: rows, Cols: cols}}
	g.cells = make([][]Cell, rows)
	for i := range g.cells {
		g.cells[i] = make([]Cell, cols)
		for j := range g.cells[i] {
			g.cells[i][j] = Cell{Ch: ' '}
		}
	}
	return g
}

func (g *Grid) SetCell(col, row int, ch rune, color gott.Color) {
	if row < 0 || row >= g.size.Rows || col < 0 || col >= g.size.Cols {
		return
	}
	g.cells[row][col] = Cell{Ch: ch, Color: color}
}

func (g *Grid) SetCursor(p gott.Point) {
	g.cursor = p
}

func (g *Grid) Size() gott.Size {
	return g.size
}

func (g *Grid) Cursor() gott.Point {
	return g.cursor
}

func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= g.size.Rows || col < 0 || col >= g.size.Cols {
		return Cell{}
	}
	return g.cells[row][col]
}

// Line returns the text of a row without trailing spaces.
func (g *Grid) Line(row int) string {
	if row < 0 || row >= g.size.Rows {
		return ""
	}
	var s strings.Builder
	for _, cell := range g.cells[row] {
		s.WriteRune(cell.Ch)
	}
	return strings.TrimRight(s.String(), " ")
}

// String returns every row of the grid, one per line.
func (g *Grid) String() string {
	lines := make([]string, g.size.Rows)
	for i := range lines {
		lines[i] = g.Line(i)
	}
	return strings.Join(lines, "\n")
}
