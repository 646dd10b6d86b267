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

package dom

import "golang.org/x/net/html"

// A Caret is a collapsed selection:
// a single position within a document's tree.
// For a text node, Offset is a byte offset into the node's data.
// For an element node, Offset is an index into the element's children.
// The zero Caret marks "no selection".
//
// Only collapsed positions are modeled.
// A host that has a non-empty [selection range] must collapse it
// to its start before handing the position to this package.
//
// [selection range]: https://developer.mozilla.org/en-US/docs/Web/API/Selection
type Caret struct {
	Node   *html.Node
	Offset int
}

// Before returns the position in n's parent immediately before n.
func Before(n *html.Node) Caret {
	return Caret{Node: n.Parent, Offset: childIndex(n)}
}

// SetCaret installs c as the document's selection.
// A position outside the document's tree clears the selection instead.
func (d *Document) SetCaret(c Caret) {
	if c.Node == nil || !Contains(d.root, c.Node) {
		d.caret = Caret{}
		return
	}
	d.caret = c
}

// Caret returns the current selection.
// ok is false when no selection is set.
func (d *Document) Caret() (c Caret, ok bool) {
	if d.caret.Node == nil {
		return Caret{}, false
	}
	return d.caret, true
}

// SpliceText inserts s at c and returns the position after the
// inserted text.
// If c addresses a text node, s is spliced into the node's data.
// If c addresses an element, a new text node is inserted at the
// given child index.
// If the document's own selection sits in the same text node at or
// after the splice point, it is shifted past the insertion.
func (d *Document) SpliceText(c Caret, s string) Caret {
	if c.Node == nil || s == "" {
		return c
	}
	if c.Node.Type == html.TextNode {
		off := c.Offset
		if off < 0 {
			off = 0
		}
		if off > len(c.Node.Data) {
			off = len(c.Node.Data)
		}
		c.Node.Data = c.Node.Data[:off] + s + c.Node.Data[off:]
		if d.caret.Node == c.Node && d.caret.Offset >= off {
			d.caret.Offset += len(s)
		}
		return Caret{Node: c.Node, Offset: off + len(s)}
	}

	t := NewText(s)
	var before *html.Node
	i := 0
	for next := c.Node.FirstChild; next != nil && i < c.Offset; next = next.NextSibling {
		i++
		before = next
	}
	if before == nil {
		if c.Node.FirstChild != nil {
			c.Node.InsertBefore(t, c.Node.FirstChild)
		} else {
			c.Node.AppendChild(t)
		}
	} else if before.NextSibling != nil {
		c.Node.InsertBefore(t, before.NextSibling)
	} else {
		c.Node.AppendChild(t)
	}
	return Caret{Node: t, Offset: len(s)}
}

// RemoveNode detaches n from its parent and returns the position
// the node occupied, as if a range spanning exactly n had been
// deleted and collapsed.
// The position is normalized onto the end of a preceding text node
// when one exists.
// If the document's selection was inside n, it is cleared.
func (d *Document) RemoveNode(n *html.Node) Caret {
	parent := n.Parent
	if parent == nil {
		return Caret{}
	}
	at := Caret{Node: parent, Offset: childIndex(n)}
	if prev := n.PrevSibling; prev != nil && prev.Type == html.TextNode {
		at = Caret{Node: prev, Offset: len(prev.Data)}
	}
	if d.caret.Node != nil && Contains(n, d.caret.Node) {
		d.caret = Caret{}
	}
	parent.RemoveChild(n)
	return at
}

// TextOffset returns the number of text bytes preceding c
// within the subtree rooted at root,
// or -1 if c does not address a position inside root.
// It is the plain-text analog of a caret:
// TextOffset(root, c) == n means the caret sits between
// Text(root)[:n] and Text(root)[n:].
func TextOffset(root *html.Node, c Caret) int {
	if c.Node == nil || !Contains(root, c.Node) {
		return -1
	}
	off := 0
	found := false
	Walk(root, &WalkOptions{
		Pre: func(cur *Cursor) bool {
			if found {
				return false
			}
			n := cur.Node()
			if n == c.Node {
				if n.Type == html.TextNode {
					o := c.Offset
					if o > len(n.Data) {
						o = len(n.Data)
					}
					off += o
				} else {
					i := 0
					for child := n.FirstChild; child != nil && i < c.Offset; child = child.NextSibling {
						off += len(Text(child))
						i++
					}
				}
				found = true
				return false
			}
			if n.Type == html.TextNode {
				off += len(n.Data)
			}
			return true
		},
	})
	if !found {
		return -1
	}
	return off
}
