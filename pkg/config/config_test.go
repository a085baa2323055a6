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

package config

import (
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c, err := Parse(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "", c.File)
	assert.False(t, c.Nano)
	assert.False(t, c.LineNumbers)
	assert.Equal(t, DefaultTabWidth, c.TabWidth)
	assert.Equal(t, DefaultLogPath(), c.LogPath)
	assert.Equal(t, "", c.Eval)
}

func TestFlags(t *testing.T) {
	c, err := Parse([]string{"-nano", "-number", "-tabwidth", "8", "-log", "/tmp/x.log",
		"-system-clipboard", "-eval", "(line-count)", "notes.txt"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		File:            "notes.txt",
		Nano:            true,
		LineNumbers:     true,
		TabWidth:        8,
		LogPath:         "/tmp/x.log",
		SystemClipboard: true,
		Eval:            "(line-count)",
	}, c)
}

func TestInvalidTabWidth(t *testing.T) {
	for _, width := range []string{"0", "17", "-3"} {
		_, err := Parse([]string{"-tabwidth", width}, io.Discard)
		assert.Error(t, err, width)
	}
	_, err := Parse([]string{"-tabwidth", "16"}, io.Discard)
	assert.NoError(t, err)
}

func TestTooManyFiles(t *testing.T) {
	_, err := Parse([]string{"a.txt", "b.txt"}, io.Discard)
	assert.Error(t, err)
}

func TestUsage(t *testing.T) {
	var out strings.Builder
	_, err := Parse([]string{"-h"}, &out)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out.String(), "usage: macro")
	assert.Contains(t, out.String(), "-tabwidth")

	out.Reset()
	_, err = Parse([]string{"-frobnicate"}, &out)
	assert.Error(t, err)
	assert.Contains(t, out.String(), "frobnicate")
}
