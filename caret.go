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

import "zombiezen.com/go/livemark/dom"

// The caret sentinel is a pair of tokens spliced into the surface's text
// at the collapsed cursor position just before serialization.
// The render pipeline rewrites the pair into the open and close tags of
// an empty, attribute-identified marker element sitting exactly where
// the tokens were.
// The tokens are built from U+2038 CARET and U+200D ZERO WIDTH JOINER:
// no markup-trigger characters, and nothing a keyboard produces,
// so no styling rule can match into them and user text never collides.
const (
	caretBegin = "‸‍"
	caretEnd   = "‍‸"
)

// caretMarker selects the rendered sentinel element.
const caretMarker = `span[data-caret]`

// saveCaret force-focuses the surface and splices the sentinel pair
// into the live content at the current collapsed cursor position.
// It reports whether a sentinel was inserted.
// When the document has no selection inside the surface,
// nothing is inserted and rendering proceeds without caret
// preservation: the cursor position is lost, not corrupted.
func (ed *Editor) saveCaret() bool {
	ed.doc.SetFocus(ed.surface)
	c, ok := ed.doc.Caret()
	if !ok || !dom.Contains(ed.surface, c.Node) {
		return false
	}
	ed.doc.SpliceText(c, caretBegin+caretEnd)
	return true
}

// resetCaret locates the rendered marker element,
// deletes it, and installs the selection at the position it occupied.
// It must only run after a render cycle whose saveCaret
// reported an inserted sentinel.
func (ed *Editor) resetCaret() {
	marker := dom.Query(ed.surface, caretMarker)
	if marker == nil {
		return
	}
	at := ed.doc.RemoveNode(marker)
	ed.doc.SetCaret(at)
}
