// Package cli implements the bytelit command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bytelit/pkg/asm"
	"bytelit/pkg/build"
	"bytelit/pkg/listing"
	"bytelit/pkg/utils"
)

// Version is set at link time.
var Version = "dev"

// Exit statuses.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bytelit [flags] sourceFile",
		Short: "Compile byte-literal source text into a binary file",
		Long: `Bytelit turns a text file of byte literals into the equivalent binary.

The source may contain
  "text"       string literals, one byte per character (code points 0-255)
  (n)          decimal numbers from -128 to 255, one byte each
  4f           two hex digits, one byte
  00010011     eight digits read as a bit pattern, one byte
  // ...       comments running to the end of the line

Exactly one source file must be given.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return &usageError{err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	addFlags(cmd)
	cmd.AddCommand(newVersionCommand(stdout))

	return cmd
}

func newVersionCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bytelit version",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(stdout, "bytelit %s\n", Version)
		},
	}
}

func run(cmd *cobra.Command, input string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return &usageError{err}
	}

	logger, err := newLogger(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return &usageError{err}
	}

	inPath, outPath, err := utils.ResolvePaths(input, cfg.Output)
	if err != nil {
		return &usageError{err}
	}

	a := asm.NewAssembler(asm.WithLogger(logger), asm.WithStrictWords(cfg.StrictWords))
	driver := build.Builder{}.
		WithAssembler(a).
		WithLogger(logger).
		Build()

	res, err := driver.Run(cmd.Context(), inPath, outPath)
	if err != nil {
		return err
	}

	if cfg.Listing {
		listing.Render(stdout, input, res.Listing)
	}
	fmt.Fprintf(stdout, "assembled %d bytes -> %s\n", len(res.Bytes), outPath)
	return nil
}

// Run executes the command line and returns the process exit status.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "error: %v\n\n", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	}

	var se *build.SourceError
	if errors.As(err, &se) {
		msg := asm.Snippet(se.Err, se.Source)
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		fmt.Fprintf(stderr, "%s: %s", se.Path, msg)
		return ExitError
	}

	fmt.Fprintf(stderr, "error: %v\n", err)
	return ExitError
}

func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}
