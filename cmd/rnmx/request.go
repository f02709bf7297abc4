// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import "errors"

var errMissingFlag = errors.New("missing flag")

// request is what the user asked for on the command line.
type request struct {
	flag string
	// src and dst are set only when hasPaths is true.
	src, dst string
	hasPaths bool
}

// parseRequest converts command-line arguments, without the program name, into
// a request. Exactly three arguments are read as a flag followed by the
// current and the new path; any other number of arguments is read as an
// informational query where only the flag matters.
func parseRequest(args []string) (request, error) {
	switch len(args) {
	case 0:
		return request{}, errMissingFlag
	case 3:
		return request{
			flag:     args[0],
			src:      args[1],
			dst:      args[2],
			hasPaths: true,
		}, nil
	default:
		return request{flag: args[0]}, nil
	}
}
