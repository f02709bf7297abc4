// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"io/fs"
	"strings"
	"testing"

	"go.astrophena.name/rnmx/internal/asset"
	"go.astrophena.name/rnmx/internal/cli"
	"go.astrophena.name/rnmx/internal/cli/clitest"
	"go.astrophena.name/rnmx/internal/testutil"

	"github.com/spf13/afero"
)

const helloContent = "hello, world\n"

func testApp(t *testing.T) *app {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("/work/hello", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fsys, "/work/hello.txt", []byte(helloContent), 0o644); err != nil {
		t.Fatal(err)
	}
	return &app{fs: fsys}
}

func TestRun(t *testing.T) {
	untouched := func(t *testing.T, a *app) {
		assertContent(t, a.fs, "/work/hello.txt", helloContent)
		assertDir(t, a.fs, "/work/hello")
	}
	renamedFile := func(t *testing.T, a *app) {
		assertMissing(t, a.fs, "/work/hello.txt")
		assertContent(t, a.fs, "/work/bye.txt", helloContent)
	}

	clitest.Run(t, testApp, map[string]clitest.Case[*app]{
		"help": {
			Args:            []string{"-h"},
			WantInStdout:    "RENAME TOOL (Renamix)",
			WantEmptyStderr: true,
			CheckFunc:       untouched,
		},
		"help (long)": {
			Args:            []string{"--help"},
			WantInStdout:    "-p, --path",
			WantEmptyStderr: true,
		},
		"help (uppercase)": {
			Args:         []string{"-H"},
			WantInStdout: "RENAME TOOL (Renamix)",
		},
		"info": {
			Args:            []string{"-i"},
			WantInStdout:    "License: MIT",
			WantEmptyStderr: true,
			CheckFunc:       untouched,
		},
		"info (long, uppercase)": {
			Args:         []string{"--INFO"},
			WantInStdout: "release-version: 1.0",
		},
		"rename file": {
			Args:               []string{"-p", "/work/hello.txt", "/work/bye.txt"},
			WantNothingPrinted: true,
			CheckFunc:          renamedFile,
		},
		"rename file (uppercase short flag)": {
			Args:      []string{"-P", "/work/hello.txt", "/work/bye.txt"},
			CheckFunc: renamedFile,
		},
		"rename file (uppercase long flag)": {
			Args:      []string{"--PATH", "/work/hello.txt", "/work/bye.txt"},
			CheckFunc: renamedFile,
		},
		"rename empty directory": {
			Args:               []string{"--path", "/work/hello", "/work/bye"},
			WantNothingPrinted: true,
			CheckFunc: func(t *testing.T, a *app) {
				assertMissing(t, a.fs, "/work/hello")
				assertDir(t, a.fs, "/work/bye")
				entries, err := afero.ReadDir(a.fs, "/work/bye")
				if err != nil {
					t.Fatal(err)
				}
				if len(entries) != 0 {
					t.Errorf("/work/bye must be empty, got %d entries", len(entries))
				}
			},
		},
		"unknown flag": {
			Args:         []string{"-x"},
			WantErr:      cli.ErrInvalidArgs,
			WantExitCode: cli.ExitUsage,
			WantInStderr: "Error: Unknown flag.",
			WantInStdout: "-h, --help",
			CheckFunc:    untouched,
		},
		"unknown flag with paths": {
			Args:         []string{"-r", "/work/hello.txt", "/work/bye.txt"},
			WantErr:      cli.ErrInvalidArgs,
			WantExitCode: cli.ExitUsage,
			WantInStderr: "Unknown flag",
			CheckFunc:    untouched,
		},
		"no arguments": {
			Args:         []string{},
			WantErr:      cli.ErrInvalidArgs,
			WantExitCode: cli.ExitUsage,
			WantInStderr: "Error: Missing flag.",
			WantInStdout: "RENAME TOOL (Renamix)",
		},
		"path without destination": {
			Args:         []string{"-p", "/work/hello.txt"},
			WantErr:      cli.ErrInvalidArgs,
			WantExitCode: cli.ExitUsage,
			WantInStderr: "Error: Missing paths.",
			CheckFunc:    untouched,
		},
		"path without arguments": {
			Args:         []string{"--path"},
			WantErr:      cli.ErrInvalidArgs,
			WantExitCode: cli.ExitUsage,
			WantInStderr: "Missing paths",
		},
		"path with empty destination": {
			Args:         []string{"-p", "/work/hello.txt", ""},
			WantErr:      cli.ErrInvalidArgs,
			WantExitCode: cli.ExitUsage,
			WantInStderr: "Missing paths",
			CheckFunc:    untouched,
		},
		"missing source": {
			Args:         []string{"-p", "/work/missing.txt", "/work/x.txt"},
			WantErr:      fs.ErrNotExist,
			WantErrType:  &asset.Error{},
			WantExitCode: cli.ExitFailure,
			CheckFunc: func(t *testing.T, a *app) {
				assertMissing(t, a.fs, "/work/x.txt")
				untouched(t, a)
			},
		},
	})
}

func TestUsageErrorColor(t *testing.T) {
	cases := map[string]struct {
		color   bool
		wantEsc bool
	}{
		"plain":   {color: false, wantEsc: false},
		"colored": {color: true, wantEsc: true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			env := &cli.Env{
				Args:   []string{"-x"},
				Stdout: &stdout,
				Stderr: &stderr,
				Color:  tc.color,
			}
			err := cli.Run(cli.WithEnv(context.Background(), env), testApp(t))
			testutil.AssertEqual(t, cli.ExitCode(err), cli.ExitUsage)

			got := stderr.String()
			if hasEsc := strings.Contains(got, "\x1b["); hasEsc != tc.wantEsc {
				t.Errorf("stderr escape sequences: got %v, want %v (stderr: %q)", hasEsc, tc.wantEsc, got)
			}
			if !tc.wantEsc {
				testutil.AssertEqual(t, got, "Error: Unknown flag.\n")
			}
		})
	}
}

func assertContent(t *testing.T, fsys afero.Fs, path, want string) {
	t.Helper()
	b, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, string(b), want)
}

func assertDir(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	ok, err := afero.IsDir(fsys, path)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("%s must be a directory", path)
	}
}

func assertMissing(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	ok, err := afero.Exists(fsys, path)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("%s must not exist", path)
	}
}
