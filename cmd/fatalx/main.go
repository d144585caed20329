// Raise fatal failures from the command line.
//
// fatalx reports a failure the way a program using package fatal does and terminates. It is meant
// for checking how diagnostics, backtraces and process termination look on a given platform.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/teleivo/fatal"
	"github.com/teleivo/fatal/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}

	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(args []string, w io.Writer, wErr io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: fatalx <command> [args]\ncommands: error, precondition, version")
	}

	if args[1] == "-h" || args[1] == "--help" || args[1] == "help" {
		usage(wErr)
		return nil
	}

	switch args[1] {
	case "error":
		return runError(args[2:], wErr)
	case "precondition":
		return runPrecondition(args[2:], wErr)
	case "version":
		_, err := fmt.Fprintln(w, version.Version())
		return err
	case "":
		return errors.New("no command specified")
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "fatalx raises fatal failures and terminates")
	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintln(w, "usage: fatalx <command> [args]")
	_, _ = fmt.Fprintln(w, "commands: error, precondition, version")
}

// failure holds the flags shared by the error and precondition commands.
type failure struct {
	message string
	file    string
	line    int
	debug   bool
}

func (f *failure) register(flags *flag.FlagSet) {
	flags.StringVar(&f.message, "message", "", "message describing the failure")
	flags.StringVar(&f.file, "file", "", "source `file` to report, defaults to the location in fatalx")
	flags.IntVar(&f.line, "line", 0, "source `line` to report together with -file")
	flags.BoolVar(&f.debug, "debug", false, "enable debug logging")
}

func (f *failure) validate() error {
	if f.line < 0 {
		return fmt.Errorf("invalid -line=%d: must not be negative", f.line)
	}
	if f.file == "" && f.line != 0 {
		return errors.New("-line requires -file")
	}
	return nil
}

func (f *failure) logger(wErr io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if f.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(wErr, &slog.HandlerOptions{Level: level}))
}

func newFlagSet(name string, wErr io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ExitOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		_, _ = fmt.Fprintf(wErr, "usage: fatalx %s [flags]\n", name)
		_, _ = fmt.Fprintln(wErr, "flags:")
		flags.PrintDefaults()
	}
	return flags
}

func runError(args []string, wErr io.Writer) error {
	flags := newFlagSet("error", wErr)
	var f failure
	f.register(flags)

	err := flags.Parse(args)
	if err != nil {
		return err
	}
	if err := f.validate(); err != nil {
		return err
	}

	f.logger(wErr).Debug("raising fatal error", "message", f.message, "file", f.file, "line", f.line)
	if f.file == "" {
		fatal.Error(f.message)
		return nil
	}
	fatal.ErrorAt(f.message, f.file, f.line)
	return nil
}

func runPrecondition(args []string, wErr io.Writer) error {
	flags := newFlagSet("precondition", wErr)
	var f failure
	f.register(flags)
	condition := flags.Bool("condition", false, "condition to check, the process terminates if it is false")

	err := flags.Parse(args)
	if err != nil {
		return err
	}
	if err := f.validate(); err != nil {
		return err
	}

	f.logger(wErr).Debug("checking precondition", "condition", *condition, "message", f.message, "file", f.file, "line", f.line)
	if f.file == "" {
		fatal.Precondition(*condition, f.message)
		return nil
	}
	fatal.PreconditionAt(*condition, f.message, f.file, f.line)
	return nil
}
