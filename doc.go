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

// Package wordlist renders a line-based constructed language dictionary as a
// Markdown word list.
//
// The dictionary source holds one field per line. An entry is built from a
// headword line, an optional influences line, and an English gloss line:
//
//	word: tanga
//	infl: Globasa (tanga); Glosa
//	en: thank you; thanks
//
// The gloss line completes the entry, which is rendered as one line:
//
//	* **tanga** – thank you, thanks (*sources:* Globasa: tanga, Glosa)
//
// Entries missing a gloss line are never rendered. Lines that are not field
// lines are ignored. See the [line] package for how lines are classified.
package wordlist
