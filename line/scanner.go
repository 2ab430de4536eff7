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

package line

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidMaxLineSize indicates that MaxLineSize is an invalid value.
var ErrInvalidMaxLineSize = errors.New("invalid max line size")

// ScannerOptions are options for scanning a dictionary source.
type ScannerOptions struct {
	// MaxLineSize is the maximum length of a single source line in bytes.
	MaxLineSize int
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{
	MaxLineSize: 1024 * 1024,
}

// Scanner scans a dictionary source from start to end and yields its field
// lines in order. Lines that are not field lines are skipped.
type Scanner struct {
	r    io.ReadCloser
	s    *bufio.Scanner
	line *Line

	// n is the number of source lines read so far.
	n int
}

// NewScanner returns a new Scanner reading from r. A leading UTF-8 byte order
// mark is ignored. The Scanner assumes ownership of the reader and should be
// closed with the Close method.
func NewScanner(r io.ReadCloser, options *ScannerOptions) (*Scanner, error) {
	if options == nil {
		options = DefaultScannerOptions
	}
	if options.MaxLineSize <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMaxLineSize, options.MaxLineSize)
	}

	s := &Scanner{
		r: r,
		s: bufio.NewScanner(transform.NewReader(r, unicode.UTF8BOM.NewDecoder())),
	}
	s.s.Buffer(make([]byte, 0, min(4096, options.MaxLineSize)), options.MaxLineSize)
	return s, nil
}

// Scan advances to the next field line. It returns false if the scan stops
// either by reaching the end of the source or an error.
func (s *Scanner) Scan() bool {
	for s.s.Scan() {
		s.n++
		l, ok := Parse(s.s.Text())
		if !ok {
			continue
		}
		l.Number = s.n
		s.line = l
		return true
	}
	s.line = nil
	return false
}

// Line returns the most recent field line found by Scan.
func (s *Scanner) Line() *Line {
	return s.line
}

// LinesRead returns the number of source lines read, including lines that
// are not field lines.
func (s *Scanner) LinesRead() int {
	return s.n
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	err := s.r.Close()
	if err != nil {
		return fmt.Errorf("closing dictionary source: %w", err)
	}
	return nil
}
