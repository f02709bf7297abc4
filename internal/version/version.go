// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version provides the version and build information.
package version

import (
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// Release is the release version reported when the binary carries no module
// version of its own, as with builds from a source checkout.
const Release = "1.0"

// Info is the version and build information of the current binary.
type Info struct {
	Version string
	Commit  string // BuildInfo's vcs.revision
	BuiltAt string // BuildInfo's vcs.time
	Go      string // runtime.Version()
	OS      string // runtime.GOOS
	Arch    string // runtime.GOARCH
}

// String implements the fmt.Stringer interface.
func (i Info) String() string {
	var sb strings.Builder

	sb.WriteString(CmdName() + " " + i.Version + " (" + i.Go + ", " + i.OS + "/" + i.Arch + ")" + "\n")
	if i.Commit != "" && i.BuiltAt != "" {
		sb.WriteString("commit " + i.Commit + "\n")
		sb.WriteString("built at " + i.BuiltAt + "\n")
	}

	return sb.String()
}

var (
	once    sync.Once
	cmdName string
	info    Info
)

// CmdName returns the base name of the current binary.
func CmdName() string {
	once.Do(initOnce)
	return cmdName
}

// Version returns the version and build information of the current binary.
func Version() Info {
	once.Do(initOnce)
	return info
}

func initOnce() {
	cmdName = "rnmx"
	if exe, err := os.Executable(); err == nil {
		cmdName = strings.TrimSuffix(filepath.Base(exe), ".exe")
	}
	info = loadInfo(debug.ReadBuildInfo)
}

func loadInfo(read func() (*debug.BuildInfo, bool)) Info {
	i := Info{
		Version: Release,
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}

	bi, ok := read()
	if !ok {
		return i
	}

	if v := bi.Main.Version; v != "" && v != "(devel)" {
		i.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.time":
			i.BuiltAt = s.Value
		}
	}
	return i
}
