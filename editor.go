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

// Package livemark implements a self-rendering Markdown editing surface:
// raw text is rewritten into styled markup on every keystroke
// while the cursor position survives the full rebuild of the subtree.
//
// The package is host-agnostic.
// The editing surface is a [zombiezen.com/go/livemark/dom.Document] subtree;
// a host binds its key events to [Editor.KeyDown] and [Editor.KeyUp]
// and supplies a [Frames] implementation tied to its repaint cycle.
package livemark

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"zombiezen.com/go/livemark/dom"
)

// Frames schedules a callback for the host's next animation frame.
// Implementations must run callbacks on the same goroutine
// that drives the editor.
type Frames interface {
	Request(f func())
}

// SyncFrames runs every callback immediately.
// It is the fallback when a host has no repaint cycle to defer to.
type SyncFrames struct{}

func (SyncFrames) Request(f func()) { f() }

// An Editor owns one editable surface inside a document.
//
// Construction replaces the target element with the surface;
// afterwards the surface's rendered markup is rebuilt from its own
// plain text at most once per animation frame.
type Editor struct {
	doc     *dom.Document
	target  *html.Node
	surface *html.Node
	frames  Frames
	pending bool

	// OnClose is invoked when Escape is pressed. Default: no-op.
	OnClose func()
	// OnPersist is invoked with the current plain text
	// when the save shortcut (Ctrl+S or Meta+S) is pressed;
	// explicit is true for that shortcut.
	// Default: no-op.
	OnPersist func(text string, explicit bool)
}

// New replaces target with a fresh editable surface in target's parent,
// focuses the surface,
// and performs one render cycle seeded from target's value attribute.
// The target element is kept (detached) and mirrors the editor's value
// in its value attribute, so a form submission sees current content.
func New(doc *dom.Document, target *html.Node, frames Frames) (*Editor, error) {
	if target == nil || target.Parent == nil {
		return nil, fmt.Errorf("new livemark editor: target is not attached to a parent")
	}
	if frames == nil {
		frames = SyncFrames{}
	}
	ed := &Editor{
		doc:    doc,
		target: target,
		frames: frames,
		surface: dom.NewElement(atom.Div,
			html.Attribute{Key: "class", Val: "livemark"},
			html.Attribute{Key: "contenteditable", Val: "true"},
		),
		OnClose:   func() {},
		OnPersist: func(string, bool) {},
	}

	parent := target.Parent
	parent.InsertBefore(ed.surface, target)
	parent.RemoveChild(target)

	doc.SetFocus(ed.surface)
	initial, _ := dom.Attr(target, "value")
	ed.SetValue(initial)
	return ed, nil
}

// Surface returns the editable container element,
// for hosts that need to mount or style it.
func (ed *Editor) Surface() *html.Node {
	return ed.surface
}

// Value returns the surface's current plain text,
// not the rendered markup.
// The single newline the renderer appends to unterminated text
// is not part of the value.
func (ed *Editor) Value() string {
	return strings.TrimSuffix(dom.Text(ed.surface), "\n")
}

// SetValue replaces the raw content wholesale and re-renders.
// The previous cursor position does not survive a full replacement.
func (ed *Editor) SetValue(text string) {
	dom.SetAttr(ed.target, "value", text)
	ed.doc.ReplaceChildren(ed.surface, []*html.Node{dom.NewText(text)})
	ed.renderCycle()
}

// KeyDown pre-processes a key press before the host applies its
// default editing behavior.
// It reports whether the host must suppress that default behavior.
func (ed *Editor) KeyDown(e KeyEvent) (suppress bool) {
	switch {
	case e.isSave():
		ed.OnPersist(ed.Value(), true)
		return true
	case e.Key == KeyEscape:
		ed.OnClose()
		return false
	case e.Key == KeyBackspace:
		return ed.guardBackspace()
	case e.Key == KeyTab:
		ed.insertText("  ")
		return true
	case e.Key == KeyEnter:
		ed.insertText("\n")
		return true
	}
	return false
}

// KeyUp schedules a render for keys that can have changed the text.
// Bursts of key-ups coalesce into a single render per animation frame;
// that render picks up the content as of its execution,
// not as of the key-up that scheduled it.
func (ed *Editor) KeyUp(e KeyEvent) {
	if !e.changesText() {
		return
	}
	if ed.pending {
		return
	}
	ed.pending = true
	ed.frames.Request(func() {
		ed.pending = false
		ed.renderCycle()
	})
}

// renderCycle is the full update:
// sentinel in, serialize, render, rebuild subtree, sentinel out.
func (ed *Editor) renderCycle() {
	saved := ed.saveCaret()
	text := dom.Text(ed.surface)
	markup := Render(text)
	children, err := ed.doc.ParseFragment(markup)
	if err != nil {
		// Renderer output is well-formed by construction;
		// fall back to literal text rather than fail.
		plain := strings.ReplaceAll(text, caretBegin, "")
		plain = strings.ReplaceAll(plain, caretEnd, "")
		children = []*html.Node{dom.NewText(plain)}
		saved = false
	}
	ed.doc.ReplaceChildren(ed.surface, children)
	if saved {
		ed.resetCaret()
	}
	dom.SetAttr(ed.target, "value", ed.Value())
}

// insertText splices s at the cursor and leaves the cursor after it.
// Without a cursor inside the surface this is a no-op.
func (ed *Editor) insertText(s string) {
	c, ok := ed.doc.Caret()
	if !ok || !dom.Contains(ed.surface, c.Node) {
		return
	}
	ed.doc.SetCaret(ed.doc.SpliceText(c, s))
}

// guardBackspace suppresses a deletion that would reach past the first
// character of the content and take out the surface itself —
// the classic contenteditable root-deletion edge case.
// A cursor stranded inside a leftover caret marker from an interrupted
// cycle is first normalized to just before that marker.
func (ed *Editor) guardBackspace() bool {
	c, ok := ed.doc.Caret()
	if !ok {
		return false
	}
	if marker := dom.Closest(c.Node, caretMarker); marker != nil && marker != ed.surface {
		ed.doc.SetCaret(dom.Before(marker))
		c, ok = ed.doc.Caret()
		if !ok {
			return false
		}
	}
	return dom.TextOffset(ed.surface, c) == 0
}
