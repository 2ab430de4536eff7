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

// Package testutil implements helpers for writing dictionary sources in
// tests.
package testutil

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// MakeDictOptions are options for writing a temporary dictionary source.
type MakeDictOptions struct {
	// Ext is an optional file extension for the source. Defaults to
	// '.txt.dz' if DictZip is true, '.txt.gz' if Gzip is true, and '.txt'
	// otherwise.
	Ext string

	// DictZip indicates that the source should be compressed with DictZip.
	DictZip bool

	// Gzip indicates that the source should be compressed with gzip.
	Gzip bool
}

// GetExt returns the file extension to use for the source.
func (o *MakeDictOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".txt.dz"
		}
		if o.Gzip {
			return ".txt.gz"
		}
	}
	return ".txt"
}

// MakeTempDict writes data to a dictionary source in a temporary directory
// and returns its path. The directory is removed when the test completes.
func MakeTempDict(t *testing.T, data string, opts *MakeDictOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeDictOptions{}
	}

	path := filepath.Join(t.TempDir(), "dict"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var w io.WriteCloser
	switch {
	case opts.DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		w = z
	case opts.Gzip:
		w = gzip.NewWriter(f)
	}

	if w == nil {
		if _, err := io.WriteString(f, data); err != nil {
			t.Fatal(err)
		}
		return path
	}

	if _, err := io.WriteString(w, data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}
