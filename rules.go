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
	"regexp"
	"strings"

	"go4.org/bytereplacer"
	"golang.org/x/text/cases"
)

// A rule is one pass of the render pipeline.
// Each rule rewrites the entire output of the previous rule.
type rule struct {
	name  string
	apply func(string) string
}

// Inline delimiters only open after start of text, whitespace, or '[',
// and only close before end of text, whitespace, or one of ". ; : < , ]".
// '<' counts as a closing boundary because earlier passes may already
// have inserted a tag immediately after the span
// (the caret marker in particular).
// This keeps mid-word punctuation inert: snake_case_var stays plain.
const (
	openBound  = `(^|\s|\[)`
	closeBound = `($|[\s.;:<,\]])`
)

// htmlEscaper rewrites the three reserved characters in a single pass,
// so one render escapes each occurrence exactly once
// and never re-escapes its own output.
var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// attrEscaper makes text already processed by htmlEscaper
// safe inside a double-quoted attribute value.
var attrEscaper = strings.NewReplacer(`"`, "&quot;", "'", "&#39;")

var (
	linkRE    = regexp.MustCompile(openBound + `\[([^\]\n]+)\]\(([^()\s]+)\)` + closeBound)
	refLinkRE = regexp.MustCompile(openBound + `\[([^\]\n]+)\]\[([^\]\n]+)\]` + closeBound)
	refDefRE  = regexp.MustCompile(`(?m)^\[([^\]\n]+)\]:([ \t]+)(\S+)([ \t]*)$`)
)

// ruleTable is the ordered sequence of rewrites applied by [Render].
// The order is a contract:
//
//  1. Escaping runs first; every later rule may emit markup
//     that must not itself be escaped.
//  2. The caret sentinel becomes its marker element before any styling
//     rule runs, so no style rule can swallow the sentinel text
//     (the marker's tag text contains no delimiter characters either).
//  3. Inline spans (emphasis, strong, code) run before line-level rules
//     so a heading wrapper never splits an inline match.
//  4. Link rules run last: their output contains bracketed text
//     that earlier inline rules must never re-match.
var ruleTable = []rule{
	{"escape", func(s string) string {
		return string(htmlEscaper.Replace([]byte(s)))
	}},
	{"caret-begin", func(s string) string {
		return strings.ReplaceAll(s, caretBegin, `<span data-caret="">`)
	}},
	{"caret-end", func(s string) string {
		return strings.ReplaceAll(s, caretEnd, `</span>`)
	}},
	regex("em-word", openBound+`_([^\s_]+)_`+closeBound,
		`${1}<em><s>_</s>${2}<s>_</s></em>${3}`),
	regex("em-phrase", openBound+`_(.+?)_`+closeBound,
		`${1}<em><s>_</s>${2}<s>_</s></em>${3}`),
	regex("strong", openBound+`\*\*(.+?)\*\*`+closeBound,
		`${1}<strong><s>**</s>${2}<s>**</s></strong>${3}`),
	regex("code", openBound+"`(.+?)`"+closeBound,
		`${1}<code><s>`+"`"+`</s>${2}<s>`+"`"+`</s></code>${3}`),
	regex("heading", `(?m)^(#+)([ \t]+)(.*)$`,
		`<s>${1}</s>${2}<strong class="head">${3}</strong>`),
	{"link", func(s string) string {
		return linkRE.ReplaceAllStringFunc(s, func(m string) string {
			sub := linkRE.FindStringSubmatch(m)
			url := sub[3]
			return sub[1] + `<s>[</s><a href="` + attrEscaper.Replace(url) + `">` + sub[2] +
				`</a><s>](` + url + `)</s>` + sub[4]
		})
	}},
	{"ref-link", func(s string) string {
		return refLinkRE.ReplaceAllStringFunc(s, func(m string) string {
			sub := refLinkRE.FindStringSubmatch(m)
			return sub[1] + `<s>[</s><a href="#` + attrEscaper.Replace(foldLabel(sub[3])) + `">` + sub[2] +
				`</a><s>][` + sub[3] + `]</s>` + sub[4]
		})
	}},
	{"ref-def", func(s string) string {
		return refDefRE.ReplaceAllStringFunc(s, func(m string) string {
			sub := refDefRE.FindStringSubmatch(m)
			url := sub[3]
			return `<s>[` + sub[1] + `]:</s>` + sub[2] +
				`<a id="` + attrEscaper.Replace(foldLabel(sub[1])) + `" href="` + attrEscaper.Replace(url) + `">` +
				url + `</a>` + sub[4]
		})
	}},
}

func regex(name, pattern, expansion string) rule {
	re := regexp.MustCompile(pattern)
	return rule{name, func(s string) string {
		return re.ReplaceAllString(s, expansion)
	}}
}

// foldLabel case-folds a reference label
// so that [x][Ref] and [y][ref] target the same anchor.
func foldLabel(label string) string {
	return cases.Fold().String(label)
}
