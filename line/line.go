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

// Package line implements classification of dictionary source lines.
//
// A dictionary source is a plain text file in which each field of an entry
// sits on its own line as a tag, a colon, and a value:
//
//	word: tanga
//	infl: Globasa (tanga); Glosa
//	en: thank you; thanks
//
// Only the word, infl, and en tags are recognized. All other lines,
// including blank lines and comments, are not field lines.
package line

import (
	"strings"
	"unicode"
)

// Field identifies which entry field a line holds.
type Field int

const (
	// WordField is the headword field.
	WordField Field = iota + 1

	// InflField is the influences field listing source languages.
	InflField

	// GlossField is the English gloss field. It completes an entry.
	GlossField
)

// tags maps each recognized field to its literal tag.
var tags = []struct {
	field Field
	tag   string
}{
	{WordField, "word"},
	{InflField, "infl"},
	{GlossField, "en"},
}

// Tag returns the literal tag of the field, e.g. "word".
func (f Field) Tag() string {
	for _, t := range tags {
		if t.field == f {
			return t.tag
		}
	}
	return ""
}

// String implements [fmt.Stringer].
func (f Field) String() string {
	if tag := f.Tag(); tag != "" {
		return tag
	}
	return "unknown"
}

// Line is a classified field line.
type Line struct {
	// Field is the field held by the line.
	Field Field

	// Value is the raw field value.
	Value string

	// Number is the 1-based line number in the source, or zero if unknown.
	Number int
}

// Parse classifies text as a field line. The tag must start the line and be
// followed directly by a colon. The value is the rest of the line with
// whitespace following the colon and trailing line terminators removed.
// Parse returns false if text is not a field line.
func Parse(text string) (*Line, bool) {
	for _, t := range tags {
		rest, ok := strings.CutPrefix(text, t.tag+":")
		if !ok {
			continue
		}
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		rest = strings.TrimRight(rest, "\r\n")
		return &Line{
			Field: t.field,
			Value: rest,
		}, true
	}
	return nil, false
}
