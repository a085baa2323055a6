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

// Package config reads macro's command-line options.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultTabWidth = 4
	MaxTabWidth     = 16
)

type Config struct {
	File            string // file to edit; empty for an unnamed buffer
	Nano            bool   // use the nano keymap instead of the vi keymap
	LineNumbers     bool
	TabWidth        int
	LogPath         string
	SystemClipboard bool   // mirror cut and copied lines to the system clipboard
	Eval            string // lisp expression to evaluate without a terminal
}

// DefaultLogPath is $HOME/.macrolog, or empty if there is no home directory.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".macrolog")
}

// Parse reads options from args, which excludes the program name.
// Usage and parse errors are written to output.
func Parse(args []string, output io.Writer) (*Config, error) {
	c := &Config{}
	fs := flag.NewFlagSet("macro", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&c.Nano, "nano", false, "use nano-style keys instead of vi-style modes")
	fs.BoolVar(&c.LineNumbers, "number", false, "show line numbers")
	fs.IntVar(&c.TabWidth, "tabwidth", DefaultTabWidth, "width of a tab stop (1-16)")
	fs.StringVar(&c.LogPath, "log", DefaultLogPath(), "log file")
	fs.BoolVar(&c.SystemClipboard, "system-clipboard", false, "copy cut and yanked lines to the system clipboard")
	fs.StringVar(&c.Eval, "eval", "", "evaluate a lisp expression against the file and print the result")
	fs.Usage = func() {
		fmt.Fprintf(output, "usage: macro [flags] [file]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("only one file can be edited, got %s", strings.Join(fs.Args(), " "))
	}
	c.File = fs.Arg(0)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.TabWidth < 1 || c.TabWidth > MaxTabWidth {
		return fmt.Errorf("tabwidth must be between 1 and %d, got %d", MaxTabWidth, c.TabWidth)
	}
	return nil
}
