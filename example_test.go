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

package livemark_test

import (
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"zombiezen.com/go/livemark"
	"zombiezen.com/go/livemark/dom"
)

func Example() {
	// The host page hands over an input element;
	// the editor swaps in a self-rendering surface.
	doc := dom.NewDocument()
	input := dom.NewElement(atom.Input, html.Attribute{Key: "value", Val: "Hello, **World**"})
	doc.Root().AppendChild(input)

	ed, err := livemark.New(doc, input, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(dom.InnerMarkup(ed.Surface()))
	// Output:
	// <pre>Hello, <strong><s>**</s>World<s>**</s></strong>
	// </pre>
}

func ExampleRender() {
	fmt.Print(livemark.Render("# Notes\nsee [docs](https://go.dev)\n"))
	// Output:
	// <pre><s>#</s> <strong class="head">Notes</strong>
	// see <s>[</s><a href="https://go.dev">docs</a><s>](https://go.dev)</s>
	// </pre>
}
