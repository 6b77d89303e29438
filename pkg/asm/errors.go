package asm

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a translation failure.
type Kind int

const (
	ParseError Kind = iota + 1
	RangeError
	EncodingError
	TokenError
	HexDigitError
)

var (
	ErrParse    = errors.New("parse error")
	ErrRange    = errors.New("number out of range")
	ErrEncoding = errors.New("character out of range")
	ErrToken    = errors.New("cannot parse byte")
	ErrHexDigit = errors.New("no such hex value")
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case RangeError:
		return "RangeError"
	case EncodingError:
		return "EncodingError"
	case TokenError:
		return "TokenError"
	case HexDigitError:
		return "HexDigitError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case ParseError:
		return ErrParse
	case RangeError:
		return ErrRange
	case EncodingError:
		return ErrEncoding
	case TokenError:
		return ErrToken
	case HexDigitError:
		return ErrHexDigit
	default:
		return nil
	}
}

// Error is returned for every translation failure. Line is 1-based and is 0
// when the failure is not tied to a source line (a bare DecodeByte call).
type Error struct {
	Kind  Kind
	Line  int
	Value string
	Msg   string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if e.Value != "" {
		fmt.Fprintf(&b, " %q", e.Value)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " on line %d", e.Line)
	}
	return b.String()
}

// Is lets errors.Is match an *Error against the Err* sentinels.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && s == target
}

func newError(kind Kind, lineNo int, value string, format string, args ...any) *Error {
	return &Error{
		Kind:  kind,
		Line:  lineNo,
		Value: value,
		Msg:   fmt.Sprintf(format, args...),
	}
}

// withLine fills in the line number on errors raised by the line-agnostic
// decoders.
func withLine(err error, lineNo int) error {
	var ae *Error
	if errors.As(err, &ae) && ae.Line == 0 {
		cp := *ae
		cp.Line = lineNo
		return &cp
	}
	return err
}

// Snippet renders err together with the offending source line and a caret
// under the offending value. Errors that are not *Error, or that carry no
// usable line, are returned as their plain message.
func Snippet(err error, src string) string {
	var ae *Error
	if !errors.As(err, &ae) || ae.Line <= 0 {
		return err.Error()
	}

	lines := strings.Split(src, "\n")
	if ae.Line > len(lines) {
		return err.Error()
	}
	line := strings.TrimRight(lines[ae.Line-1], "\r")

	var b strings.Builder
	b.WriteString(err.Error())
	b.WriteString("\n\n")
	prefix := fmt.Sprintf("%5d | ", ae.Line)
	b.WriteString(prefix)
	b.WriteString(line)
	b.WriteString("\n")

	if ae.Value == "" {
		return b.String()
	}
	col := strings.Index(line, ae.Value)
	if col < 0 {
		return b.String()
	}
	pad := len([]rune(line[:col]))
	b.WriteString(strings.Repeat(" ", len(prefix)+pad))
	b.WriteString(strings.Repeat("^", max(1, len([]rune(ae.Value)))))
	b.WriteString("\n")
	return b.String()
}
