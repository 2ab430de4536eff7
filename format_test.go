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
	"testing"
)

func TestFormatInfluences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "detail and plain token",
			raw:      "Globasa (tanga); Glosa",
			expected: "Globasa: tanga, Glosa",
		},
		{
			name:     "every detail rewritten",
			raw:      "Globasa (tanga); Lidepla (tanka); Esperanto (danki)",
			expected: "Globasa: tanga, Lidepla: tanka, Esperanto: danki",
		},
		{
			name:     "whitespace separated tokens",
			raw:      "Glosa Lidepla (mem)",
			expected: "Glosa Lidepla: mem",
		},
		{
			name:     "no space before parenthesis",
			raw:      "Globasa(tanga)",
			expected: "Globasa: tanga",
		},
		{
			name:     "detail with spaces",
			raw:      "English (thank you)",
			expected: "English: thank you",
		},
		{
			name:     "empty detail",
			raw:      "Glosa ()",
			expected: "Glosa: ",
		},
		{
			name:     "unclosed parenthesis",
			raw:      "Glosa (tanga",
			expected: "Glosa (tanga",
		},
		{
			name:     "plain",
			raw:      "Glosa",
			expected: "Glosa",
		},
		{
			name:     "empty",
			raw:      "",
			expected: "",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := FormatInfluences(test.raw)
			if want := test.expected; want != got {
				t.Fatalf("FormatInfluences(%q); want: %q, got: %q", test.raw, want, got)
			}
			if again := FormatInfluences(got); again != got {
				t.Fatalf("FormatInfluences not idempotent; once: %q, twice: %q", got, again)
			}
		})
	}
}

func TestFormatGloss(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "two senses",
			raw:      "thank you; thanks",
			expected: "thank you, thanks",
		},
		{
			name:     "no space",
			raw:      "we;us",
			expected: "we, us",
		},
		{
			name:     "parentheses untouched",
			raw:      "bank (of a river); shore",
			expected: "bank (of a river), shore",
		},
		{
			name:     "single sense",
			raw:      "water",
			expected: "water",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := FormatGloss(test.raw)
			if want := test.expected; want != got {
				t.Fatalf("FormatGloss(%q); want: %q, got: %q", test.raw, want, got)
			}
			if again := FormatGloss(got); again != got {
				t.Fatalf("FormatGloss not idempotent; once: %q, twice: %q", got, again)
			}
		})
	}
}
