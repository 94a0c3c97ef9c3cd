// SPDX-License-Identifier: MIT

// Command mat4 inspects, inverts and packs 4×4 transform matrices.
//
// Usage:
//
//	mat4 [-v] <command> [flags] <args>
//
// Commands:
//
//	det FILE             print the determinant of every matrix in a YAML document
//	invert FILE          invert every matrix of a YAML document, writing YAML to stdout
//	pack -o STORE FILE   copy a YAML document into a new memory-mapped store
//	invert-store STORE   invert every record of a store in place
//	dump STORE           print a store as a YAML document
//
// FILE may be "-" for stdin.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
)

// errUsage is returned for malformed command lines; run reports it with exit
// status 2.
var errUsage = errors.New("usage")

// env is what every command gets to work with.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
}

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, e env, args []string) error
}

var commands = []command{
	{"det", "det FILE", runDet},
	{"invert", "invert [-eps E] FILE", runInvert},
	{"pack", "pack -o STORE [-cap N] FILE", runPack},
	{"invert-store", "invert-store [-eps E] [-workers N] [-progress] STORE", runInvertStore},
	{"dump", "dump STORE", runDump},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command line and returns the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mat4", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() { printUsage(stderr) }
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	e := env{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		log:    slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}

	if fs.NArg() == 0 {
		printUsage(stderr)
		return 2
	}
	name, rest := fs.Arg(0), fs.Args()[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		err := c.run(ctx, e, rest)
		switch {
		case err == nil:
			return 0
		case errors.Is(err, errUsage):
			if err != errUsage {
				fmt.Fprintf(stderr, "mat4 %s: %v\n", name, err)
			}
			fmt.Fprintf(stderr, "usage: mat4 %s\n", c.usage)
			return 2
		default:
			e.log.Error("command failed", "command", name, "err", err)
			return 1
		}
	}

	fmt.Fprintf(stderr, "mat4: unknown command %q\n", name)
	printUsage(stderr)
	return 2
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: mat4 [-v] <command> [flags] <args>")
	fmt.Fprintln(w, "commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %s\n", c.usage)
	}
}
