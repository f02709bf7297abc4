// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"io"
	"strings"

	"go.astrophena.name/rnmx/internal/cli"
	"go.astrophena.name/rnmx/internal/version"
)

const toolName = "RENAME TOOL (Renamix)"

const appInfo = `author: Leandrys Osorio (Amtr4x)
License: MIT
release-version: ` + version.Release + `

 for donations read the README.md info at: https://github.com/Amtr4x/rnmx?tab=readme-ov-file#can-i-make-a-thank-you-donation`

// banner frames the tool name in a box of hashes.
func banner(w io.Writer) {
	var (
		pad   = strings.Repeat(" ", 4)
		edge  = strings.Repeat("#", len(toolName)+8)
		blank = "##" + strings.Repeat(" ", len(toolName)+4) + "##"
	)
	fmt.Fprintln(w, pad+edge)
	fmt.Fprintln(w, pad+blank)
	fmt.Fprintln(w, pad+"##  "+toolName+"  ##")
	fmt.Fprintln(w, pad+blank)
	fmt.Fprintln(w, pad+edge)
}

func menu(w io.Writer) {
	banner(w)
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.Doc())
}

func info(w io.Writer) {
	fmt.Fprintln(w, appInfo)
	fmt.Fprintln(w)
	fmt.Fprint(w, version.Version())
}
