// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"fmt"
	"strings"

	"go.astrophena.name/rnmx/internal/asset"
	"go.astrophena.name/rnmx/internal/cli"

	"github.com/fatih/color"
	"github.com/spf13/afero"
)

func main() { cli.Main(&app{fs: afero.NewOsFs()}) }

type app struct {
	fs afero.Fs
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	req, err := parseRequest(env.Args)
	if err != nil {
		return usageError(env, "Missing flag")
	}

	switch strings.ToLower(req.flag) {
	case "-h", "--help":
		menu(env.Stdout)
	case "-i", "--info":
		info(env.Stdout)
	case "-p", "--path":
		if !req.hasPaths || req.src == "" || req.dst == "" {
			return usageError(env, "Missing paths")
		}
		return asset.NewFS(a.fs, req.src).Rename(req.dst)
	default:
		return usageError(env, "Unknown flag")
	}
	return nil
}

// usageError reports msg on stderr, falls back to the usage menu on stdout and
// returns an error that makes the process exit with a usage status.
func usageError(env *cli.Env, msg string) error {
	prefix := color.New(color.FgRed, color.Bold)
	if env.Color {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	env.Logf("%s %s.", prefix.Sprint("Error:"), msg)
	menu(env.Stdout)
	return cli.Silent(fmt.Errorf("%w: %s", cli.ErrInvalidArgs, strings.ToLower(msg)))
}
