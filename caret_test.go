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

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"zombiezen.com/go/livemark/dom"
)

func TestCaretRoundTrip(t *testing.T) {
	ed, doc := newTestEditor(t, "ab")
	txt := findText(t, ed.Surface(), "ab\n")
	doc.SetCaret(dom.Caret{Node: txt, Offset: 1})

	ed.KeyUp(KeyEvent{Key: KeyRune, Rune: 'b'})

	c, ok := doc.Caret()
	if !ok {
		t.Fatal("no selection after render cycle")
	}
	if got, want := dom.TextOffset(ed.Surface(), c), 1; got != want {
		t.Errorf("caret text offset = %d; want %d", got, want)
	}
	if got := ed.Value(); got != "ab" {
		t.Errorf("Value() = %q; want %q", got, "ab")
	}
	if marker := dom.Query(ed.Surface(), caretMarker); marker != nil {
		t.Error("marker element left in tree after resetCaret")
	}
}

func TestCaretRoundTripInsideStrong(t *testing.T) {
	ed, doc := newTestEditor(t, "**ab**")
	// The initial render already styled the text;
	// park the cursor between a and b inside the strong span.
	txt := findText(t, ed.Surface(), "ab")
	doc.SetCaret(dom.Caret{Node: txt, Offset: 1})

	ed.KeyUp(KeyEvent{Key: KeyRune, Rune: 'b'})

	c, ok := doc.Caret()
	if !ok {
		t.Fatal("no selection after render cycle")
	}
	// Logical offset 3: between "**a" and "b**".
	if got, want := dom.TextOffset(ed.Surface(), c), 3; got != want {
		t.Errorf("caret text offset = %d; want %d", got, want)
	}
	if dom.Closest(c.Node, "strong") == nil {
		t.Errorf("caret landed outside the strong span (node %v)", c.Node)
	}
	if got := ed.Value(); got != "**ab**" {
		t.Errorf("Value() = %q; want %q", got, "**ab**")
	}
}

func TestRenderCycleWithoutSelection(t *testing.T) {
	ed, doc := newTestEditor(t, "hi")
	// No selection at all: rendering proceeds, caret is simply lost.
	ed.KeyUp(KeyEvent{Key: KeyRune, Rune: 'i'})

	if _, ok := doc.Caret(); ok {
		t.Error("selection appeared out of nowhere")
	}
	if got := ed.Value(); got != "hi" {
		t.Errorf("Value() = %q; want %q", got, "hi")
	}
	if !strings.Contains(dom.InnerMarkup(ed.Surface()), "<pre>") {
		t.Errorf("surface not rendered: %q", dom.InnerMarkup(ed.Surface()))
	}
}

func TestSelectionOutsideSurfaceIsIgnored(t *testing.T) {
	ed, doc := newTestEditor(t, "hi")
	other := dom.NewText("elsewhere")
	doc.Root().AppendChild(other)
	doc.SetCaret(dom.Caret{Node: other, Offset: 2})

	ed.KeyUp(KeyEvent{Key: KeyRune, Rune: 'i'})

	if got := ed.Value(); got != "hi" {
		t.Errorf("Value() = %q; want %q", got, "hi")
	}
	if strings.Contains(dom.Text(ed.Surface()), caretBegin) {
		t.Error("sentinel leaked into surface text")
	}
}

func newTestEditor(tb testing.TB, value string) (*Editor, *dom.Document) {
	tb.Helper()

	doc := dom.NewDocument()
	input := dom.NewElement(atom.Input, html.Attribute{Key: "value", Val: value})
	doc.Root().AppendChild(input)
	ed, err := New(doc, input, SyncFrames{})
	if err != nil {
		tb.Fatal(err)
	}
	return ed, doc
}

func findText(tb testing.TB, root *html.Node, data string) *html.Node {
	tb.Helper()

	var found *html.Node
	dom.Walk(root, &dom.WalkOptions{
		Pre: func(c *dom.Cursor) bool {
			if n := c.Node(); n.Type == html.TextNode && n.Data == data {
				found = n
				return false
			}
			return true
		},
	})
	if found == nil {
		tb.Fatalf("no text node %q under %v", data, root.Data)
	}
	return found
}
