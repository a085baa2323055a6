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

package types

type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

type Key int

// Keys that the commander handles. Printable characters arrive in Event.Ch.
const (
	KeyNone Key = iota
	KeyUnsupported
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEsc
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeySpace
	KeyTab
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlK
	KeyCtrlO
	KeyCtrlS
	KeyCtrlU
	KeyCtrlW
	KeyCtrlX
	KeyCtrlZ
)

// An Event is a key press or a terminal resize.
// Width and Height are set for resize events.
type Event struct {
	Type   EventType
	Key    Key
	Ch     rune
	Width  int
	Height int
}
