// Package build drives one translation: read the source, assemble it, write
// the binary.
package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"bytelit/pkg/asm"
)

// Source provides the text of an input file.
type Source interface {
	Read(path string) (string, error)
}

// Sink stores an assembled binary.
type Sink interface {
	Write(path string, data []byte) error
}

// FileSource reads input from the host file system.
type FileSource struct{}

func (FileSource) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SourceError is an assembly failure together with the text that caused it,
// so callers can point at the offending line.
type SourceError struct {
	Path   string
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Driver runs the pipeline for one input at a time. It holds no state
// between runs.
type Driver struct {
	source    Source
	sink      Sink
	assembler *asm.Assembler
	logger    *slog.Logger
}

// Run reads in, assembles it and writes the result to out. The sink is only
// called after assembly succeeded.
func (d *Driver) Run(ctx context.Context, in, out string) (*asm.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := d.source.Read(in)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", in, err)
	}
	d.logger.Debug("read source", "path", in, "size", len(src))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := d.assembler.Assemble(src)
	if err != nil {
		return nil, &SourceError{Path: in, Source: src, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := d.sink.Write(out, res.Bytes); err != nil {
		return nil, fmt.Errorf("write %s: %w", out, err)
	}
	d.logger.Info("assembled", "input", in, "output", out, "bytes", len(res.Bytes), "warnings", len(res.Warnings))

	return res, nil
}
