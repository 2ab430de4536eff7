// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wordlist

import (
	"regexp"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-wordlist/internal/folding"
)

// influenceDetail matches a parenthesized detail following a source token,
// e.g. the " (tanga)" in "Globasa (tanga)".
var influenceDetail = regexp.MustCompile(`\s*\(([^)]*)\)`)

// FormatInfluences formats a raw influences value. Every "token (detail)" is
// rewritten to "token: detail" and semicolon delimiters are folded to commas.
func FormatInfluences(raw string) string {
	return foldSenses(influenceDetail.ReplaceAllString(raw, ": $1"))
}

// FormatGloss formats a raw gloss value by joining its semicolon separated
// senses with commas.
func FormatGloss(raw string) string {
	return foldSenses(raw)
}

func foldSenses(s string) string {
	folded, _, err := transform.String(&folding.SenseFolder{}, s)
	if err != nil {
		// SenseFolder only reports short buffer errors which
		// transform.String handles itself.
		return s
	}
	return folded
}
