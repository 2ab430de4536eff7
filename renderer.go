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
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/ianlewis/go-wordlist/line"
)

// Stats summarizes a rendering pass.
type Stats struct {
	// Lines is the number of source lines read.
	Lines int

	// Entries is the number of entries rendered.
	Entries int

	// Discarded is the number of incomplete entries that were dropped.
	Discarded int
}

// Renderer writes completed dictionary entries to an output stream, one line
// per entry, in source order.
type Renderer struct {
	w      io.Writer
	logger zerolog.Logger
}

// NewRenderer returns a Renderer writing to w.
func NewRenderer(w io.Writer, logger zerolog.Logger) *Renderer {
	return &Renderer{
		w:      w,
		logger: logger,
	}
}

// RenderFile renders all entries of the dictionary source at path. The source
// is closed before RenderFile returns.
func (r *Renderer) RenderFile(path string) (stats Stats, err error) {
	f, err := Open(path)
	if err != nil {
		return stats, err
	}

	s, err := line.NewScanner(f, nil)
	if err != nil {
		_ = f.Close()
		return stats, fmt.Errorf("%w: %q: %w", ErrRead, path, err)
	}
	defer func() {
		if cErr := s.Close(); cErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrRead, cErr)
		}
	}()

	r.logger.Debug().Str("path", path).Msg("rendering dictionary")
	return r.Render(s)
}

// Render renders all entries read from s. Entries completed before a read
// error are still written.
func (r *Renderer) Render(s *line.Scanner) (Stats, error) {
	var stats Stats
	bw := bufio.NewWriter(r.w)
	a := NewAccumulator(r.logger)

	for s.Scan() {
		e, ok := a.Add(s.Line())
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(bw, e); err != nil {
			return stats, fmt.Errorf("%w: %w", ErrWrite, err)
		}
		stats.Entries++
	}
	readErr := s.Err()
	if readErr == nil {
		a.Finish()
	}

	stats.Lines = s.LinesRead()
	stats.Discarded = a.Discarded()

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if readErr != nil {
		return stats, fmt.Errorf("%w: line %d: %w", ErrRead, stats.Lines+1, readErr)
	}

	r.logger.Debug().
		Int("lines", stats.Lines).
		Int("entries", stats.Entries).
		Int("discarded", stats.Discarded).
		Msg("rendered dictionary")

	return stats, nil
}
