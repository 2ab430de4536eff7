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

// Entry is a completed dictionary entry. Field values are already formatted.
type Entry struct {
	// Headword is the dictionary word.
	Headword string

	// Influences lists the entry's source languages. It is only rendered
	// when HasInfluences is true.
	Influences string

	// HasInfluences is true if the entry had an influences line.
	HasInfluences bool

	// Gloss is the English translation.
	Gloss string
}

// String returns the entry rendered as a Markdown list item.
func (e *Entry) String() string {
	str := "* **" + e.Headword + "** – " + e.Gloss
	if e.HasInfluences {
		str += " (*sources:* " + e.Influences + ")"
	}
	return str
}
