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
	"github.com/muesli/termenv"
	"github.com/nsf/termbox-go"

	gott "github.com/timburks/macro/pkg/types"
)

type style struct {
	fg, bg  string // hex colors; empty for the terminal default
	reverse bool   // used when the terminal has no colors
}

var styles = map[gott.Color]style{
	gott.ColorText:       {},
	gott.ColorFiller:     {fg: "#5f87af"},
	gott.ColorLineNumber: {fg: "#8a8a8a"},
	gott.ColorInfoBar:    {fg: "#000000", bg: "#d0d0d0", reverse: true},
	gott.ColorMessage:    {},
}

// A Palette maps display roles to termbox attributes for a terminal's color profile.
type Palette struct {
	profile termenv.Profile
}

func NewPalette(profile termenv.Profile) Palette {
	return Palette{profile: profile}
}

// DetectPalette reads the color profile from the environment (TERM, COLORTERM, NO_COLOR).
func DetectPalette() Palette {
	return NewPalette(termenv.EnvColorProfile())
}

func (p Palette) Profile() termenv.Profile {
	return p.profile
}

func (p Palette) OutputMode() termbox.OutputMode {
	switch p.profile {
	case termenv.ANSI256, termenv.TrueColor:
		return termbox.Output256
	default:
		return termbox.OutputNormal
	}
}

func (p Palette) Attributes(color gott.Color) (fg, bg termbox.Attribute) {
	s := styles[color]
	if p.profile == termenv.Ascii {
		if s.reverse {
			return termbox.ColorDefault | termbox.AttrReverse, termbox.ColorDefault
		}
		return termbox.ColorDefault, termbox.ColorDefault
	}
	return p.attribute(s.fg), p.attribute(s.bg)
}

func (p Palette) attribute(hex string) termbox.Attribute {
	if hex == "" {
		return termbox.ColorDefault
	}
	switch p.profile {
	case termenv.ANSI256, termenv.TrueColor:
		// termbox numbers the 256 colors from one
		if c, ok := termenv.ANSI256.Color(hex).(termenv.ANSI256Color); ok {
			return termbox.Attribute(c) + 1
		}
	case termenv.ANSI:
		if c, ok := termenv.ANSI.Color(hex).(termenv.ANSIColor); ok {
			a := termbox.Attribute(c%8) + termbox.ColorBlack
			if c >= 8 {
				a |= termbox.AttrBold
			}
			return a
		}
	}
	return termbox.ColorDefault
}
