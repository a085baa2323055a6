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
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/timburks/macro/pkg/commander"
	"github.com/timburks/macro/pkg/config"
	"github.com/timburks/macro/pkg/editor"
	"github.com/timburks/macro/pkg/screen"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Parse(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	// Open a log file.
	log.SetOutput(io.Discard)
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()
		log.SetOutput(f)
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	e.SetTabWidth(cfg.TabWidth)
	e.SetLineNumbers(cfg.LineNumbers)
	if cfg.SystemClipboard {
		e.SetClipboard(editor.NewSystemClipboard())
	}

	// The commander converts user inputs into commands for the editor.
	keymap := commander.KeymapVi
	if cfg.Nano {
		keymap = commander.KeymapNano
	}
	c := commander.NewCommander(e, keymap)
	c.SetTabWidth(cfg.TabWidth)

	if cfg.File != "" {
		// A file that can't be read leaves an empty buffer and a message.
		if err := c.LoadFile(cfg.File); err != nil && cfg.Eval != "" {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	if cfg.Eval != "" {
		// Run a script and exit.
		value, err := c.Eval(cfg.Eval)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(value)
		return 0
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "macro: standard input is not a terminal")
		return 1
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen(screen.DetectPalette())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer s.Close()

	if err := c.ProcessEvent(s.SizeEvent()); err != nil {
		log.Printf("%v", err)
	}

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Printf("%v", err)
		}
	}
	return 0
}
