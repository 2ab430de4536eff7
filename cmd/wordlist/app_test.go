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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-wordlist"
	"github.com/ianlewis/go-wordlist/internal/testutil"
)

const testDict = `word: tanga
infl: Globasa (tanga); Glosa
en: thank you; thanks

word: nosu
en: we; us
`

const testOutput = `* **tanga** – thank you, thanks (*sources:* Globasa: tanga, Glosa)
* **nosu** – we, us
`

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := newWordlistApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"wordlist"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestApp(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempDict(t, testDict, nil)
	stdout, stderr, err := runApp(t, path)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff(testOutput, stdout); diff != "" {
		t.Fatalf("stdout (-want, +got):\n%s", diff)
	}
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
}

func TestApp_verbose(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempDict(t, testDict+"word: trailing\n", &testutil.MakeDictOptions{DictZip: true})
	stdout, stderr, err := runApp(t, "-vv", path)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff(testOutput, stdout); diff != "" {
		t.Fatalf("stdout (-want, +got):\n%s", diff)
	}
	for _, want := range []string{"discarding entry without gloss", "discarded=1"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q: %s", want, stderr)
		}
	}
}

func TestApp_notFound(t *testing.T) {
	t.Parallel()

	stdout, _, err := runApp(t, filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, wordlist.ErrOpen) {
		t.Fatalf("Run; want: %v, got: %v", wordlist.ErrOpen, err)
	}
	if errors.Is(err, ErrFlagParse) {
		t.Errorf("Run: unexpected flag parse error: %v", err)
	}
	if stdout != "" {
		t.Errorf("unexpected stdout: %s", stdout)
	}
}

func TestApp_tooManyArgs(t *testing.T) {
	t.Parallel()

	_, _, err := runApp(t, "a.txt", "b.txt")
	if !errors.Is(err, ErrTooManyArgs) {
		t.Fatalf("Run; want: %v, got: %v", ErrTooManyArgs, err)
	}
	if !errors.Is(err, ErrFlagParse) {
		t.Fatalf("Run; want: %v, got: %v", ErrFlagParse, err)
	}
}

func TestApp_unknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := runApp(t, "--no-such-flag")
	if !errors.Is(err, ErrFlagParse) {
		t.Fatalf("Run; want: %v, got: %v", ErrFlagParse, err)
	}
}

func TestApp_version(t *testing.T) {
	t.Parallel()

	stdout, _, err := runApp(t, "--version")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(stdout, "Copyright (c) 2026 Ian Lewis") {
		t.Fatalf("unexpected version output: %q", stdout)
	}
}

func TestApp_help(t *testing.T) {
	t.Parallel()

	stdout, _, err := runApp(t, "--help")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(stdout, "--verbose") {
		t.Fatalf("help output missing --verbose: %q", stdout)
	}
}

//nolint:paralleltest // changes the working directory.
func TestApp_defaultPath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, wordlist.DefaultPath), []byte(testDict), 0o600); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		check(os.Chdir(wd))
	})

	stdout, _, err := runApp(t)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff(testOutput, stdout); diff != "" {
		t.Fatalf("stdout (-want, +got):\n%s", diff)
	}
}
