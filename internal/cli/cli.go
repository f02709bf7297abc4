// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package cli provides utilities for building command-line applications.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"go.astrophena.name/rnmx/internal/logger"
	"go.astrophena.name/rnmx/internal/util/syncx"

	"github.com/mattn/go-isatty"
)

// Main is a helper function that handles common startup tasks for command-line
// applications. It sets up signal handling for interrupts, runs the application,
// prints errors to stderr and exits with the code returned by [ExitCode].
func Main(app App) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)

	err := Run(WithEnv(ctx, OSEnv()), app)
	cancel()

	if err == nil {
		return
	}

	if isPrintableError(err) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(ExitCode(err))
}

type unprintableError struct{ err error }

func (e *unprintableError) Error() string { return e.err.Error() }
func (e *unprintableError) Unwrap() error { return e.err }

func isPrintableError(err error) bool {
	var ue *unprintableError
	return !errors.As(err, &ue)
}

// Silent marks err as already reported to the user, so [Main] exits with the
// matching code without printing it again.
func Silent(err error) error {
	if err == nil {
		return nil
	}
	return &unprintableError{err}
}

// ErrInvalidArgs indicates that the command-line arguments provided to the
// application are invalid or insufficient.
//
// This error should be wrapped with fmt.Errorf to provide a specific,
// user-friendly message explaining the nature of the invalid arguments.
//
// For example:
//
//	return fmt.Errorf("%w: missing required argument 'filename'", cli.ErrInvalidArgs)
var ErrInvalidArgs = errors.New("invalid arguments")

// Exit codes returned by [ExitCode].
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps an error returned by an application to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidArgs):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// App represents a command-line application.
type App interface {
	// Run runs the application.
	Run(context.Context) error
}

// AppFunc is a function type that implements the [App] interface.
type AppFunc func(context.Context) error

// Run calls f(ctx).
func (f AppFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Env represents the application environment.
type Env struct {
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
	// Color reports whether output written to Stderr may be colored.
	Color bool

	logf syncx.Lazy[logger.Logf]
}

// Logf writes the formatted message to standard error of this environment.
func (e *Env) Logf(format string, args ...any) {
	e.logf.Get(func() logger.Logf {
		return log.New(e.Stderr, "", 0).Printf
	})(format, args...)
}

// OSEnv returns the current operating system environment.
//
// It is the only place that reads process arguments and terminal state.
func OSEnv() *Env {
	return &Env{
		Args:   os.Args[1:],
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Color:  os.Getenv("NO_COLOR") == "" && isTerminal(os.Stderr),
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type envKey struct{}

// WithEnv returns a copy of ctx carrying env.
func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// GetEnv returns the environment stored in ctx by [WithEnv]. If there is none,
// it returns [OSEnv].
func GetEnv(ctx context.Context) *Env {
	if env, ok := ctx.Value(envKey{}).(*Env); ok {
		return env
	}
	return OSEnv()
}

// Run runs the application with the environment carried by ctx.
func Run(ctx context.Context, app App) error {
	env := GetEnv(ctx)
	if env.Args == nil {
		env.Args = []string{}
	}
	return app.Run(WithEnv(ctx, env))
}

var (
	docSrc []byte
	doc    syncx.Lazy[string]
)

// SetDocComment stores the provided byte slice as the source for the
// application's documentation comment.
//
// The parsing process assumes that the documentation comment is enclosed
// within a single /* ... */ block and extracts the content line by line.
// Any other multi-line comments within the embedded file will be ignored.
//
// # Example usage
//
// In application's doc.go:
//
//	/*
//	Amazinator does amazing things...
//
//	# Usage
//
//		$ amazinator [flags...]
//	*/
//	package main
//
//	import (
//		_ "embed"
//
//		"go.astrophena.name/rnmx/internal/cli"
//	)
//
//	//go:embed doc.go
//	var doc []byte
//
//	func init() { cli.SetDocComment(doc) }
func SetDocComment(src []byte) { docSrc = src }

// Doc returns the documentation comment set by [SetDocComment], or an empty
// string if none was set.
func Doc() string {
	if docSrc == nil {
		return ""
	}
	return doc.Get(func() string { return parseDocComment(docSrc) })
}

func parseDocComment(src []byte) string {
	s := bufio.NewScanner(bytes.NewReader(src))
	var (
		doc       string
		inComment bool
	)
	for s.Scan() {
		line := s.Text()
		if line == "/*" {
			inComment = true
			continue
		}
		if line == "*/" {
			// Comment ended, stop scanning.
			break
		}
		if inComment {
			doc += line + "\n"
		}
	}
	if err := s.Err(); err != nil {
		panic(err)
	}
	return doc
}
