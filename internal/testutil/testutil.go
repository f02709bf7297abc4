// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package testutil contains common testing helpers.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// AssertEqual compares two values and if they differ, fails the test and
// prints the difference between them.
func AssertEqual(t *testing.T, got, want any) {
	t.Helper()
	if diff := cmp.Diff(got, want); diff != "" {
		t.Fatalf("(-got +want):\n%s", diff)
	}
}

// AssertExists fails the test if nothing exists at path.
func AssertExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err != nil {
		t.Fatalf("%s must exist: %v", path, err)
	}
}

// AssertNotExists fails the test if something exists at path.
func AssertNotExists(t *testing.T, path string) {
	t.Helper()
	_, err := os.Lstat(path)
	if err == nil {
		t.Fatalf("%s must not exist", path)
	}
	if !os.IsNotExist(err) {
		t.Fatalf("os.Lstat(%q): %v", path, err)
	}
}

// Run runs a subtest for each file matching the provided glob pattern.
func Run(t *testing.T, glob string, f func(t *testing.T, match string)) {
	matches, err := filepath.Glob(glob)
	if err != nil {
		t.Fatalf("filepath.Glob(%q): %v", glob, err)
	}
	if len(matches) == 0 {
		t.Fatalf("no files match %q", glob)
	}

	for _, match := range matches {
		name := strings.TrimSuffix(filepath.Base(match), filepath.Ext(match))
		t.Run(name, func(t *testing.T) {
			f(t, match)
		})
	}
}

// ExtractTxtar extracts a txtar archive to dir. A file whose name ends with a
// slash is created as an empty directory.
func ExtractTxtar(t *testing.T, files []txtar.File, dir string) {
	t.Helper()
	for _, file := range files {
		path := filepath.Join(dir, filepath.FromSlash(file.Name))
		if strings.HasSuffix(file.Name, "/") {
			if err := os.MkdirAll(path, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, file.Data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// ReadTree returns the contents of dir as txtar files, sorted by name. Names
// are slash-separated and relative to dir; empty directories are recorded
// with a trailing slash and no data, mirroring [ExtractTxtar].
func ReadTree(t *testing.T, dir string) []txtar.File {
	t.Helper()

	var files []txtar.File
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				files = append(files, txtar.File{Name: rel + "/"})
			}
			return nil
		}

		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, txtar.File{Name: rel, Data: nonEmpty(b)})
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	SortFiles(files)
	return files
}

// SortFiles sorts txtar files by name.
func SortFiles(files []txtar.File) {
	slices.SortFunc(files, func(a, b txtar.File) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// FilesWithPrefix returns the files of ar whose names start with prefix, with
// the prefix trimmed and sorted by name.
func FilesWithPrefix(ar *txtar.Archive, prefix string) []txtar.File {
	var files []txtar.File
	for _, f := range ar.Files {
		if name, ok := strings.CutPrefix(f.Name, prefix); ok {
			files = append(files, txtar.File{Name: name, Data: nonEmpty(f.Data)})
		}
	}
	SortFiles(files)
	return files
}

func nonEmpty(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return b
}
