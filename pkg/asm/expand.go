package asm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const commentMarker = "//"

type scanState int

const (
	outside scanState = iota
	inString
	inParens
)

// StripComment returns line up to the first "//". The cut is lexical and
// happens before literals are recognised, so a "//" inside a string literal
// also starts a comment.
func StripComment(line string) string {
	code, _, _ := strings.Cut(line, commentMarker)
	return code
}

func StripComments(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = StripComment(line)
	}
	return out
}

// ExpandStrings replaces every double-quoted literal on the line with the
// hex codes of its characters, space separated and padded by one space on
// each side.
func ExpandStrings(line string, lineNo int) (string, error) {
	if !strings.ContainsRune(line, '"') {
		return line, nil
	}

	var out strings.Builder
	var lit []string
	state := outside
	start := 0

	for i := 0; i < len(line); {
		r, w := utf8.DecodeRuneInString(line[i:])
		switch state {
		case outside:
			if r == '"' {
				state = inString
				start = i
				lit = lit[:0]
			} else {
				out.WriteString(line[i : i+w])
			}
		case inString:
			if r == '"' {
				out.WriteByte(' ')
				out.WriteString(strings.Join(lit, " "))
				out.WriteByte(' ')
				state = outside
				break
			}
			if r == utf8.RuneError && w == 1 {
				return "", newError(EncodingError, lineNo, fmt.Sprintf(`\x%02x`, line[i]),
					"invalid UTF-8 byte in string literal")
			}
			if r > 0xFF {
				return "", newError(EncodingError, lineNo, string(r),
					"character U+%04X in string literal does not fit in a byte", r)
			}
			lit = append(lit, fmt.Sprintf("%02x", r))
		}
		i += w
	}

	if state == inString {
		return "", newError(ParseError, lineNo, line[start:], "unterminated string literal")
	}
	return out.String(), nil
}

// ExpandNumbers replaces every parenthesised decimal literal with its byte
// value as two hex digits. Negative values wrap by adding 256.
func ExpandNumbers(line string, lineNo int) (string, error) {
	if !strings.ContainsAny(line, "()") {
		return line, nil
	}

	var out strings.Builder
	state := outside
	start := 0

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch state {
		case outside:
			switch c {
			case '(':
				state = inParens
				start = i
			case ')':
				return "", newError(ParseError, lineNo, ")", "unbalanced parentheses")
			default:
				out.WriteByte(c)
			}
		case inParens:
			switch c {
			case '(':
				return "", newError(ParseError, lineNo, line[start:i+1], "nested parentheses")
			case ')':
				v, err := parseNumber(line[start+1:i], lineNo)
				if err != nil {
					return "", err
				}
				fmt.Fprintf(&out, "%02x", v)
				state = outside
			}
		}
	}

	if state == inParens {
		return "", newError(ParseError, lineNo, line[start:], "unbalanced parentheses")
	}
	return out.String(), nil
}

func parseNumber(body string, lineNo int) (int, error) {
	lit := strings.TrimSpace(body)
	if lit == "" {
		return 0, newError(ParseError, lineNo, "("+body+")", "empty numeric literal")
	}
	if !isDecimal(lit) {
		return 0, newError(ParseError, lineNo, lit, "invalid numeric literal")
	}

	n, err := strconv.Atoi(lit)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, newError(RangeError, lineNo, lit, "number out of range")
		}
		return 0, newError(ParseError, lineNo, lit, "invalid numeric literal")
	}
	if n < -128 || n > 255 {
		return 0, newError(RangeError, lineNo, lit, "number out of range")
	}
	if n < 0 {
		n += 256
	}
	return n, nil
}

func isDecimal(s string) bool {
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
