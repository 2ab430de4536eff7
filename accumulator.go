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
	"github.com/rs/zerolog"

	"github.com/ianlewis/go-wordlist/line"
)

// Accumulator builds entries from field lines. Field lines must be added in
// source order. An entry is complete when its gloss line is added, after
// which the Accumulator starts over with an empty entry.
type Accumulator struct {
	entry Entry

	// hasWord is true once a headword line was added to the current entry.
	hasWord bool

	// wordLine is the line number of the current headword.
	wordLine int

	// discarded counts incomplete entries that were dropped.
	discarded int

	logger zerolog.Logger
}

// NewAccumulator returns a new empty Accumulator that logs dropped entries
// to logger at debug level.
func NewAccumulator(logger zerolog.Logger) *Accumulator {
	return &Accumulator{
		logger: logger,
	}
}

// Add adds a field line to the current entry. If l is a gloss line the
// completed entry is returned along with true and the Accumulator is reset.
func (a *Accumulator) Add(l *line.Line) (*Entry, bool) {
	switch l.Field {
	case line.WordField:
		if a.hasWord {
			a.discarded++
			a.logger.Debug().
				Str("word", a.entry.Headword).
				Int("line", a.wordLine).
				Int("next_word_line", l.Number).
				Msg("discarding entry without gloss")
		}
		a.entry.Headword = l.Value
		a.hasWord = true
		a.wordLine = l.Number

	case line.InflField:
		if a.entry.HasInfluences {
			a.logger.Debug().
				Str("word", a.entry.Headword).
				Int("line", l.Number).
				Msg("replacing influences")
		}
		a.entry.Influences = FormatInfluences(l.Value)
		a.entry.HasInfluences = true

	case line.GlossField:
		a.entry.Gloss = FormatGloss(l.Value)
		e := a.entry
		a.Reset()
		return &e, true
	}

	return nil, false
}

// Pending returns true if the current entry holds a headword or influences
// that have not been rendered yet.
func (a *Accumulator) Pending() bool {
	return a.hasWord || a.entry.HasInfluences
}

// Finish drops the current entry if it is incomplete. It should be called
// when the source is exhausted.
func (a *Accumulator) Finish() {
	if a.Pending() {
		a.discarded++
		a.logger.Debug().
			Str("word", a.entry.Headword).
			Int("line", a.wordLine).
			Msg("discarding entry without gloss at end of input")
	}
	a.Reset()
}

// Discarded returns the number of incomplete entries dropped so far.
func (a *Accumulator) Discarded() int {
	return a.discarded
}

// Reset clears the current entry.
func (a *Accumulator) Reset() {
	a.entry = Entry{}
	a.hasWord = false
	a.wordLine = 0
}
