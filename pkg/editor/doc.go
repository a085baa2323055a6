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

// Package editor implements the core text editing functions of macro.
// A Buffer holds the lines of the file being edited, a Window tracks the
// cursor and the visible part of the buffer, and the Editor combines them
// with a pasteboard and an undo stack.
// Many editor functions are accessed only through operations; this
// makes it possible to easily repeat and undo them.
package editor
