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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath is the dictionary source read when no path is given.
const DefaultPath = "dict.txt"

// Open opens the dictionary source at path. Sources ending in .gz or .dz
// (dictzip) are decompressed while reading. The caller must close the
// returned reader.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".dz":
		// dictzip files are valid gzip files.
		z, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%w: %q: %w", ErrOpen, path, err)
		}
		return &gzipFile{Reader: z, f: f}, nil
	}

	return f, nil
}

// gzipFile closes both the gzip stream and the underlying file.
type gzipFile struct {
	*gzip.Reader
	f *os.File
}

// Close implements [io.Closer.Close].
func (g *gzipFile) Close() error {
	zErr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", g.f.Name(), err)
	}
	if zErr != nil {
		return fmt.Errorf("closing %q: %w", g.f.Name(), zErr)
	}
	return nil
}
