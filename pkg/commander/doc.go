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

// Package commander turns key events, command lines and lisp expressions
// into editor calls. It owns the mode state machine for the vi and nano
// keymaps. Edits that can be undone are performed as operations, which
// return their inverses; motions and file commands call the editor directly.
package commander
