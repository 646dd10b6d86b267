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

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Query returns the first node under n matching the CSS selector,
// in document order, or nil if nothing matches.
// A selector that does not compile matches nothing.
func Query(n *html.Node, selector string) *html.Node {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	return sel.MatchFirst(n)
}

// QueryAll returns all nodes under n matching the CSS selector
// in document order.
func QueryAll(n *html.Node, selector string) []*html.Node {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	return sel.MatchAll(n)
}

// Closest returns the nearest ancestor of n (including n itself)
// matching the CSS selector, or nil.
// Text nodes are skipped; matching starts at the first element.
func Closest(n *html.Node, selector string) *html.Node {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	for ; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && sel(n) {
			return n
		}
	}
	return nil
}
