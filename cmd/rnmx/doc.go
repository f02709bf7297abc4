// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Rnmx renames a file or folder at the specified path.

# Usage

	$ rnmx -flag current_archive renamed_archive
	$ rnmx -flag

The second form queries extra info.

# Flags

	-p, --path  Specify the path to be renamed (mandatory).
	-h, --help  Show this help menu and exit.
	-i, --info  Show tool info, repository link, author...

Flags are case-insensitive.

# Examples

Renaming a directory:

	$ rnmx -p my_folder/ my_renamed_folder/

Renaming a file using verbose arguments:

	$ rnmx --path my_archive.ext my_renamed_archive.ext

# Notes

The rename is a single call to the operating system, atomic within one
volume. If the renamed path already exists, the platform decides: an
existing file is replaced, and renaming a folder onto a non-empty folder
fails.

Rnmx exits with status 2 on invalid usage and 1 when the rename fails.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/rnmx/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
