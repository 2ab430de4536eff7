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

// Package folding implements text transformers used to normalize dictionary
// field values.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// senseSeparator replaces every sense delimiter.
const senseSeparator = ", "

// SenseFolder rewrites each semicolon delimiter, together with any whitespace
// surrounding it, to a single comma followed by a space. Text without a
// semicolon passes through unchanged, including whitespace.
type SenseFolder struct{}

// Transform implements [transform.Transformer.Transform].
func (f *SenseFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if c != ';' && !unicode.IsSpace(c) {
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
			nSrc += size
			continue
		}

		n, isSep, ok := scanSeparator(src[nSrc:], atEOF)
		if !ok {
			// The whitespace span may continue in the next chunk.
			return nDst, nSrc, transform.ErrShortSrc
		}

		if !isSep {
			// A plain whitespace span is emitted as is.
			if nDst+n > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+n])
			nSrc += n
			continue
		}

		if nDst+len(senseSeparator) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], senseSeparator)
		nSrc += n
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *SenseFolder) Reset() {}

// scanSeparator measures the span at the start of b made of whitespace,
// optionally followed by a semicolon and more whitespace. isSep reports
// whether the span contains the semicolon. ok is false if the span reaches
// the end of b before atEOF and so may not be complete.
func scanSeparator(b []byte, atEOF bool) (n int, isSep, ok bool) {
	n, ok = scanSpace(b, atEOF)
	if !ok {
		return n, false, false
	}
	if n == len(b) || b[n] != ';' {
		return n, false, true
	}

	n++
	m, ok := scanSpace(b[n:], atEOF)
	return n + m, true, ok
}

// scanSpace returns the length of the whitespace span at the start of b.
func scanSpace(b []byte, atEOF bool) (int, bool) {
	var n int
	for n < len(b) {
		if !atEOF && !utf8.FullRune(b[n:]) {
			return n, false
		}
		c, size := utf8.DecodeRune(b[n:])
		if !unicode.IsSpace(c) {
			return n, true
		}
		n += size
	}
	return n, atEOF
}
