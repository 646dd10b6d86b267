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

// Stylesheet returns default CSS for the widget's markup vocabulary.
// Hosts embed it (or their own override) in the page styling the
// surface; the renderer never emits inline styles.
func Stylesheet() string {
	return `.livemark {
	font-family: monospace;
	white-space: pre-wrap;
}
.livemark pre {
	margin: 0;
	font: inherit;
	white-space: inherit;
}
.livemark s {
	text-decoration: none;
	opacity: 0.35;
}
.livemark strong.head {
	font-size: 1.15em;
}
.livemark a {
	color: inherit;
	text-decoration: underline;
}
.livemark span[data-caret] {
	display: none;
}
`
}
