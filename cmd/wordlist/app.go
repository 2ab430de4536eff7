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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-wordlist"
	"github.com/ianlewis/go-wordlist/internal/logging"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrWordlistCmd is a parent error for all command errors.
var ErrWordlistCmd = errors.New("wordlist")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrWordlistCmd)

// ErrTooManyArgs indicates more than one input path was given.
var ErrTooManyArgs = fmt.Errorf("%w: too many arguments", ErrFlagParse)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func newWordlistApp() *cli.App {
	var verbosity int

	return &cli.App{
		Name:      filepath.Base(os.Args[0]),
		Usage:     "Render a dictionary as a Markdown word list.",
		ArgsUsage: "[FILE]",
		Description: strings.Join([]string{
			"Reads dictionary entries from FILE (default " + wordlist.DefaultPath + ")",
			"and prints one Markdown list item per entry to standard output.",
			"Files ending in .gz or .dz are decompressed.",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "log diagnostics to stderr, repeat for more detail",
				Aliases: []string{"v"},
				Count:   &verbosity,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:              strings.Join(copyrightNames, "\n"),
		HideHelp:               true,
		HideHelpCommand:        true,
		UseShortOptionHandling: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				check(cli.ShowAppHelp(c))
				return nil
			}
			if c.Bool("version") {
				return printVersion(c)
			}

			if c.NArg() > 1 {
				return fmt.Errorf("%w: %s", ErrTooManyArgs, strings.Join(c.Args().Slice(), " "))
			}
			path := wordlist.DefaultPath
			if c.NArg() == 1 {
				path = c.Args().First()
			}

			logger := logging.GetLogger(logging.New(c.App.ErrWriter, verbosity), "renderer")
			r := wordlist.NewRenderer(c.App.Writer, logger)
			stats, err := r.RenderFile(path)
			if err != nil {
				return err
			}

			logger.Info().
				Str("path", path).
				Int("entries", stats.Entries).
				Int("discarded", stats.Discarded).
				Msg("done")
			return nil
		},
	}
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()

	_, err := fmt.Fprintf(c.App.Writer, "%s %s\nCopyright (c) %s\n", c.App.Name, versionInfo.GitVersion, c.App.Copyright)
	if err != nil {
		return fmt.Errorf("printing version: %w", err)
	}
	return nil
}
