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
	"unicode"
	"unicode/utf8"
)

// Render converts raw text into the widget's markup:
// a single <pre> block of entity-escaped text
// with the supported constructs wrapped in styling elements
// and their delimiter punctuation kept visible as struck-out <s> runs.
//
// Render is total and deterministic.
// Malformed input degrades to literal escaped text; it never fails.
// Apart from the caret sentinel and a possible appended newline,
// the plain text of the output equals the input —
// that equality is what lets the caret survive a full re-render.
func Render(text string) string {
	// A trailing newline gives end-of-line anchored rules a boundary,
	// so an inline span at the very end of input still closes.
	if !endsInSpace(text) {
		text += "\n"
	}
	for _, r := range ruleTable {
		text = r.apply(text)
	}
	return "<pre>" + text + "</pre>"
}

func endsInSpace(s string) bool {
	last, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && unicode.IsSpace(last)
}
