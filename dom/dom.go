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

// Package dom models an editing surface as an explicit, owned tree of
// element and text nodes with a collapsed selection,
// independent of any live browser document.
// Nodes are [golang.org/x/net/html] nodes,
// so the tree round-trips through the standard HTML parser and serializer.
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// A Document owns a tree of nodes, the focused element,
// and a single collapsed selection (see [Caret]).
// A Document and its nodes must only be used from one goroutine at a time.
type Document struct {
	root  *html.Node
	caret Caret
	focus *html.Node
}

// NewDocument returns an empty document whose root is a div element.
func NewDocument() *Document {
	return &Document{root: NewElement(atom.Div)}
}

// Root returns the document's root element.
func (d *Document) Root() *html.Node {
	return d.root
}

// SetFocus records n as the focused element.
// Passing nil clears focus.
func (d *Document) SetFocus(n *html.Node) {
	d.focus = n
}

// Focused returns the focused element, or nil if no element has focus.
func (d *Document) Focused() *html.Node {
	return d.focus
}

// ParseFragment parses markup in a div context
// and returns the resulting parentless nodes.
// Like a browser, the parser drops a newline
// that immediately follows a <pre> start tag.
func (d *Document) ParseFragment(markup string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	return html.ParseFragment(strings.NewReader(markup), ctx)
}

// ReplaceChildren removes all of parent's children
// and appends children in order, detaching them from any previous parent.
// If the selection was inside the discarded subtree, it is cleared.
func (d *Document) ReplaceChildren(parent *html.Node, children []*html.Node) {
	for parent.FirstChild != nil {
		parent.RemoveChild(parent.FirstChild)
	}
	for _, c := range children {
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		parent.AppendChild(c)
	}
	if d.caret.Node != nil && !Contains(d.root, d.caret.Node) {
		d.caret = Caret{}
	}
}

// NewElement returns a detached element node.
func NewElement(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

// NewText returns a detached text node.
func NewText(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Attr returns the value of the first attribute on n named key.
func Attr(n *html.Node, key string) (value string, ok bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the attribute named key on n, adding it if absent.
func SetAttr(n *html.Node, key, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

// Contains reports whether n is root or a descendant of root.
func Contains(root, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

// Text returns the concatenated data of all text nodes under n
// in document order.
// This is the plain-text serialization of a subtree:
// markup structure is discarded, character data is kept.
func Text(n *html.Node) string {
	sb := new(strings.Builder)
	Walk(n, &WalkOptions{
		Pre: func(c *Cursor) bool {
			if t := c.Node(); t.Type == html.TextNode {
				sb.WriteString(t.Data)
			}
			return true
		},
	})
	return sb.String()
}

// FirstText returns the first text node under n in document order,
// or nil if the subtree holds no text.
func FirstText(n *html.Node) *html.Node {
	var first *html.Node
	Walk(n, &WalkOptions{
		Pre: func(c *Cursor) bool {
			if first != nil {
				return false
			}
			if t := c.Node(); t.Type == html.TextNode {
				first = t
				return false
			}
			return true
		},
	})
	return first
}

// InnerMarkup serializes the children of n as HTML.
func InnerMarkup(n *html.Node) string {
	sb := new(strings.Builder)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		html.Render(sb, c)
	}
	return sb.String()
}

func childIndex(n *html.Node) int {
	i := 0
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		i++
	}
	return i
}
