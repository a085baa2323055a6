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

// Package operations holds the undoable edits run from normal mode, nano
// control keys, and lisp. An operation is performed against a types.Editor
// and returns the operation that reverses it; the editor keeps those on its
// undo stack. Edits that are hard to invert exactly, such as joins and insert
// sessions, return a Restore of the snapshot taken before they ran.
package operations
