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

// Package normhtml normalizes rendered markup fragments
// so tests can compare them while ignoring insignificant
// serialization differences:
// attribute order, empty-attribute forms, and self-closing tags.
// Unlike a generic HTML normalizer it never collapses whitespace,
// since the widget's markup lives inside a preformatted block
// where every blank is significant.
package normhtml

import (
	"bytes"
	"sort"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
)

var textEscaper = bytereplacer.New(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// NormalizeHTML re-serializes a markup fragment in canonical form.
func NormalizeHTML(b []byte) []byte {
	type htmlAttribute struct {
		key   string
		value string
	}

	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	var output []byte
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return output
		case html.TextToken:
			output = append(output, textEscaper.Replace(bytes.Clone(tok.Text()))...)
		case html.EndTagToken:
			tag, _ := tok.TagName()
			output = append(output, "</"...)
			output = append(output, tag...)
			output = append(output, ">"...)
		case html.StartTagToken, html.SelfClosingTagToken:
			tag, hasAttr := tok.TagName()
			output = append(output, "<"...)
			output = append(output, tag...)
			if hasAttr {
				var attrs []htmlAttribute
				for {
					k, v, more := tok.TagAttr()
					attrs = append(attrs, htmlAttribute{string(k), string(v)})
					if !more {
						break
					}
				}
				sort.Slice(attrs, func(i, j int) bool {
					return attrs[i].key < attrs[j].key
				})
				for _, attr := range attrs {
					output = append(output, " "...)
					output = append(output, attr.key...)
					output = append(output, `="`...)
					output = append(output, html.EscapeString(attr.value)...)
					output = append(output, `"`...)
				}
			}
			output = append(output, ">"...)
		}
	}
}
