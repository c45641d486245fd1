// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import "strings"

// stripFences removes surrounding markdown code fences from a model
// response, which some models emit even in JSON mode.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// repairJSON fixes the most common malformation seen in model JSON output:
// a key missing its opening quote, e.g. `, type":` instead of `, "type":`.
func repairJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)

	rs := []rune(s)
	for i := 0; i < len(rs); {
		b.WriteRune(rs[i])
		if rs[i] != '{' && rs[i] != ',' {
			i++
			continue
		}
		i++

		// Copy whitespace following the separator.
		for i < len(rs) && (rs[i] == ' ' || rs[i] == '\t' || rs[i] == '\n') {
			b.WriteRune(rs[i])
			i++
		}
		if i >= len(rs) || !isIdentRune(rs[i]) {
			continue
		}

		// Possible bare key: scan ahead to see if it ends with `":`.
		j := i
		for j < len(rs) && (isIdentRune(rs[j]) || rs[j] == ' ') {
			j++
		}
		if j+1 < len(rs) && rs[j] == '"' && rs[j+1] == ':' {
			b.WriteRune('"')
		}
		for ; i < j; i++ {
			b.WriteRune(rs[i])
		}
	}
	return b.String()
}

func isIdentRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}
