// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package livemark

// A Key identifies a keyboard key.
// Hosts map both left and right variants of a modifier
// onto the same constant.
type Key int

const (
	// KeyRune is a character key; the character is in [KeyEvent.Rune].
	KeyRune Key = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyShift
	KeyControl
	KeyAlt
	KeyMeta
)

// A Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta

	ModNone Modifier = 0
)

// A KeyEvent is a single key press or release as delivered by the host.
type KeyEvent struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// isModifierKey reports whether the event is a bare modifier press.
func (e KeyEvent) isModifierKey() bool {
	switch e.Key {
	case KeyShift, KeyControl, KeyAlt, KeyMeta:
		return true
	}
	return false
}

// isArrowKey reports whether the event is one of the four arrow keys.
func (e KeyEvent) isArrowKey() bool {
	switch e.Key {
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		return true
	}
	return false
}

// changesText reports whether a key-up for this event
// can have changed the surface's content.
// Bare modifiers and arrows move state, not text;
// Escape is routed to the close callback instead of the renderer.
func (e KeyEvent) changesText() bool {
	return !e.isModifierKey() && !e.isArrowKey() && e.Key != KeyEscape
}

// isSave reports whether the event is the persistence shortcut.
func (e KeyEvent) isSave() bool {
	return e.Key == KeyRune &&
		(e.Rune == 's' || e.Rune == 'S') &&
		e.Modifiers&(ModCtrl|ModMeta) != 0
}
