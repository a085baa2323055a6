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
	"log"

	"github.com/nsf/termbox-go"

	gott "github.com/timburks/macro/pkg/types"
)

// The Screen is a Display on the terminal.
type Screen struct {
	size    gott.Size // screen size
	palette Palette
}

func NewScreen(palette Palette) (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(palette.OutputMode())
	s := &Screen{palette: palette}
	s.size.Cols, s.size.Rows = termbox.Size()
	return s, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Size() gott.Size {
	return s.size
}

func (s *Screen) SetCell(col, row int, ch rune, color gott.Color) {
	if row < 0 || row >= s.size.Rows || col < 0 || col >= s.size.Cols {
		return
	}
	fg, bg := s.palette.Attributes(color)
	termbox.SetCell(col, row, ch, fg, bg)
}

func (s *Screen) SetCursor(p gott.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

// Render draws the editor and commander state and shows it.
func (s *Screen) Render(e gott.Editor, c gott.Commander) {
	s.size.Cols, s.size.Rows = termbox.Size()
	fg, bg := s.palette.Attributes(gott.ColorText)
	termbox.Clear(fg, bg)
	Draw(s, e, c)
	if err := termbox.Flush(); err != nil {
		log.Printf("flush: %v", err)
	}
}

// GetNextEvent blocks until the terminal has an event.
func (s *Screen) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		return &gott.Event{Type: gott.EventKey, Key: key(event.Key), Ch: event.Ch}
	case termbox.EventResize:
		s.size = gott.Size{Rows: event.Height, Cols: event.Width}
		return &gott.Event{Type: gott.EventResize, Width: event.Width, Height: event.Height}
	case termbox.EventError:
		log.Printf("terminal: %v", event.Err)
	}
	return &gott.Event{Type: gott.EventNone}
}

// SizeEvent returns a resize event for the current terminal size.
func (s *Screen) SizeEvent() *gott.Event {
	s.size.Cols, s.size.Rows = termbox.Size()
	return &gott.Event{Type: gott.EventResize, Width: s.size.Cols, Height: s.size.Rows}
}

func key(k termbox.Key) gott.Key {
	switch k {
	case 0:
		// printable characters have no key
		return gott.KeyNone
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyBackspace
	case termbox.KeyDelete:
		return gott.KeyDelete
	case termbox.KeyCtrlA:
		return gott.KeyCtrlA
	case termbox.KeyCtrlB:
		return gott.KeyCtrlB
	case termbox.KeyCtrlC:
		return gott.KeyCtrlC
	case termbox.KeyCtrlD:
		return gott.KeyCtrlD
	case termbox.KeyCtrlE:
		return gott.KeyCtrlE
	case termbox.KeyCtrlF:
		return gott.KeyCtrlF
	case termbox.KeyCtrlG:
		return gott.KeyCtrlG
	case termbox.KeyCtrlK:
		return gott.KeyCtrlK
	case termbox.KeyCtrlO:
		return gott.KeyCtrlO
	case termbox.KeyCtrlS:
		return gott.KeyCtrlS
	case termbox.KeyCtrlU:
		return gott.KeyCtrlU
	case termbox.KeyCtrlW:
		return gott.KeyCtrlW
	case termbox.KeyCtrlX:
		return gott.KeyCtrlX
	case termbox.KeyCtrlZ:
		return gott.KeyCtrlZ
	case termbox.KeyEnd:
		return gott.KeyEnd
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeyHome:
		return gott.KeyHome
	case termbox.KeyPgdn:
		return gott.KeyPgdn
	case termbox.KeyPgup:
		return gott.KeyPgup
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyTab:
		return gott.KeyTab
	default:
		return gott.KeyUnsupported
	}
}
