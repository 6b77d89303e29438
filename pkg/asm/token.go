package asm

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	byteTokenLen = 2
	wordTokenLen = 8
)

// TokenKind tells how a token was decoded.
type TokenKind int

const (
	ByteToken TokenKind = iota
	WordToken
)

func (k TokenKind) String() string {
	if k == WordToken {
		return "word"
	}
	return "byte"
}

// Token is one whitespace-delimited run of the fully expanded text.
type Token struct {
	Text string
	Line int
}

// Tokenize splits the expanded lines on whitespace. Joining with a single
// space and splitting again gives the same tokens, since no token can cross
// a line boundary.
func Tokenize(lines []string) []Token {
	var toks []Token
	for i, line := range lines {
		for _, f := range strings.FieldsFunc(line, isSeparator) {
			toks = append(toks, Token{Text: f, Line: i + 1})
		}
	}
	return toks
}

// isSeparator reports Unicode white space plus the ASCII file, group,
// record and unit separators (0x1c-0x1f), which also delimit tokens.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// HexValue maps 0-9, A-F and a-f to 0..15.
func HexValue(r rune) (int, error) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), nil
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, nil
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, nil
	default:
		return 0, newError(HexDigitError, 0, string(r), "no such hex value")
	}
}

func hexDigits(tok string) ([]int, error) {
	digits := make([]int, 0, len(tok))
	for _, r := range tok {
		v, err := HexValue(r)
		if err != nil {
			return nil, err
		}
		digits = append(digits, v)
	}
	return digits, nil
}

// DecodeByte decodes a two digit token as 16*high + low.
func DecodeByte(tok string) (byte, error) {
	if n := utf8.RuneCountInString(tok); n != byteTokenLen {
		return 0, newError(TokenError, 0, tok, "cannot parse byte: expected 2 hex digits, got %d", n)
	}
	d, err := hexDigits(tok)
	if err != nil {
		return 0, err
	}
	return byte(16*d[0] + d[1]), nil
}

// DecodeWord decodes an eight digit token as sum(2^i * digit[7-i]). Each
// digit is weighted by its full value, not just its low bit, so only tokens
// made of 0 and 1 read as a plain bit pattern. The second return value
// reports whether any digit was above 1.
func DecodeWord(tok string) (int, bool, error) {
	if n := utf8.RuneCountInString(tok); n != wordTokenLen {
		return 0, false, newError(TokenError, 0, tok, "cannot parse byte: expected 8 hex digits, got %d", n)
	}
	d, err := hexDigits(tok)
	if err != nil {
		return 0, false, err
	}

	sum := 0
	wide := false
	for i := 0; i < wordTokenLen; i++ {
		v := d[wordTokenLen-1-i]
		if v > 1 {
			wide = true
		}
		sum += (1 << i) * v
	}
	if sum > 0xFF {
		return 0, wide, newError(RangeError, 0, tok, "word value %d does not fit in a byte", sum)
	}
	return sum, wide, nil
}

func tokenError(tok string) error {
	return newError(TokenError, 0, tok, "cannot parse byte: token has %d characters, want 2 or 8",
		utf8.RuneCountInString(tok))
}

func describe(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(parts, " ")
}
