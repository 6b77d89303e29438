package utils

import (
	"errors"
	"path/filepath"
)

// DefaultOutput is the file name used when no output path is configured.
const DefaultOutput = "a.out"

var ErrNoInput = errors.New("no input file specified")

// ResolvePaths makes the input and output paths absolute and clean. An
// empty output falls back to DefaultOutput in the working directory.
func ResolvePaths(in, out string) (inPath string, outPath string, err error) {
	if in == "" {
		return "", "", ErrNoInput
	}
	if out == "" {
		out = DefaultOutput
	}

	if inPath, err = filepath.Abs(in); err != nil {
		return "", "", err
	}
	if outPath, err = filepath.Abs(out); err != nil {
		return "", "", err
	}
	return inPath, outPath, nil
}
