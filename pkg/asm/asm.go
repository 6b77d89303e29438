// Package asm translates byte-literal source text into raw bytes.
//
// Pipeline: strip comments → expand "strings" → expand (numbers) → tokenize → bytes
package asm

import (
	"context"
	"log/slog"
	"strings"
)

// LevelTrace sits below debug and carries one record per token.
const LevelTrace slog.Level = slog.LevelDebug - 4

// Entry is one line of the assembly listing.
type Entry struct {
	Offset int
	Line   int
	Token  string
	Kind   TokenKind
	Value  byte
}

// Warning flags input that assembles but is probably not what was meant.
type Warning struct {
	Line  int
	Token string
	Msg   string
}

type Result struct {
	Bytes    []byte
	Listing  []Entry
	Warnings []Warning
}

type Option func(*Assembler)

func WithLogger(l *slog.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithStrictWords makes a word token digit above 1 a HexDigitError instead
// of a warning.
func WithStrictWords(strict bool) Option {
	return func(a *Assembler) {
		a.strictWords = strict
	}
}

type Assembler struct {
	logger      *slog.Logger
	strictWords bool
}

func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func Assemble(code string) ([]byte, error) {
	res, err := NewAssembler().Assemble(code)
	if err != nil {
		return nil, err
	}
	return res.Bytes, nil
}

func (a *Assembler) Assemble(code string) (*Result, error) {
	lines := StripComments(strings.Split(code, "\n"))

	expanded, err := a.expand(lines)
	if err != nil {
		return nil, err
	}

	toks := Tokenize(expanded)
	a.logger.Debug("tokenized source", "lines", len(lines), "tokens", len(toks))

	return a.assemble(toks)
}

// expand runs each stage over every line before the next stage starts, so
// the first error reported is the first one in stage order.
func (a *Assembler) expand(lines []string) ([]string, error) {
	stages := []struct {
		name string
		fn   func(string, int) (string, error)
	}{
		{"strings", ExpandStrings},
		{"numbers", ExpandNumbers},
	}

	out := append([]string(nil), lines...)
	for _, st := range stages {
		for i, line := range out {
			n, err := st.fn(line, i+1)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		a.logger.Debug("expanded", "stage", st.name, "lines", len(out))
	}
	return out, nil
}

func (a *Assembler) assemble(toks []Token) (*Result, error) {
	res := &Result{
		Bytes:   make([]byte, 0, len(toks)),
		Listing: make([]Entry, 0, len(toks)),
	}

	for _, tok := range toks {
		entry := Entry{
			Offset: len(res.Bytes),
			Line:   tok.Line,
			Token:  tok.Text,
		}

		switch len([]rune(tok.Text)) {
		case byteTokenLen:
			b, err := DecodeByte(tok.Text)
			if err != nil {
				return nil, withLine(err, tok.Line)
			}
			entry.Kind = ByteToken
			entry.Value = b
		case wordTokenLen:
			v, wide, err := DecodeWord(tok.Text)
			if wide {
				if a.strictWords {
					return nil, newError(HexDigitError, tok.Line, tok.Text, "word token digits must be 0 or 1")
				}
				w := Warning{Line: tok.Line, Token: tok.Text, Msg: "word token has a digit above 1"}
				res.Warnings = append(res.Warnings, w)
				a.logger.Warn(w.Msg, "line", w.Line, "token", w.Token)
			}
			if err != nil {
				return nil, withLine(err, tok.Line)
			}
			entry.Kind = WordToken
			entry.Value = byte(v)
		default:
			return nil, withLine(tokenError(tok.Text), tok.Line)
		}

		a.logger.Log(context.Background(), LevelTrace, "token",
			"line", entry.Line, "offset", entry.Offset, "token", entry.Token, "kind", entry.Kind.String(), "value", entry.Value)
		res.Bytes = append(res.Bytes, entry.Value)
		res.Listing = append(res.Listing, entry)
	}

	a.logger.Debug("assembled", "bytes", len(res.Bytes), "warnings", len(res.Warnings), "head", describe(head(res.Bytes, 16)))
	return res, nil
}

func head(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
