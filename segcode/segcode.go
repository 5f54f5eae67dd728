// Package segcode provides the segment code format and the symbol table used
// by the segmux driver.
//
// The table drives segment lines active low: a cleared bit lights the segment.
package segcode

import "fmt"

// Code is the segment pattern of one digit.
// Bits 0-6 map to segments A-G and bit 7 to the decimal point.
type Code uint8

// Segment masks.
const (
	SegA Code = 1 << iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
	SegDP
)

// NumSymbols is the size of the symbol table. Valid indices are 0 to NumSymbols-1.
const NumSymbols = 50

// Symbol indices with a fixed meaning.
const (
	Zero        = 0
	LetterA     = 10
	LetterE     = 14
	LetterR     = 27
	Blank       = 36
	Dash        = 37
	Period      = 38
	Slash       = 39
	Equals      = 40
	Question    = 41
	LBracket    = 42
	Backslash   = 43
	RBracket    = 44
	Caret       = 45
	Underscore  = 46
	SoftU       = 47
	Pipe        = 48
	Degree      = 49
	letterToSym = 'A' - LetterA
)

var table = [NumSymbols]Code{
	//   DP GFEDCBA
	0b11000000, // 0
	0b11111001, // 1
	0b10100100, // 2
	0b10110000, // 3
	0b10011001, // 4
	0b10010010, // 5
	0b10000010, // 6
	0b11111000, // 7
	0b10000000, // 8
	0b10010000, // 9
	0b10001000, // A
	0b10000011, // b
	0b10100111, // c
	0b10100001, // d
	0b10000110, // E
	0b10001110, // F
	0b11000010, // G
	0b10001001, // H
	0b11111001, // I, same as 1
	0b11110001, // J
	0b10001001, // K, same as H
	0b11000111, // L
	0b11111111, // M, not representable
	0b10101011, // n
	0b11000000, // O
	0b10001100, // P
	0b10011000, // q
	0b10101111, // r
	0b10010010, // S
	0b10000111, // t
	0b11000001, // U
	0b11000001, // V, same as U
	0b11111111, // W, not representable
	0b10001001, // X, same as H
	0b10010001, // y
	0b10100100, // Z, same as 2
	0b11111111, // blank
	0b10111111, // -
	0b01111111, // .
	0b10101101, // /
	0b10110111, // =
	0b10101100, // ?
	0b11000110, // [
	0b10011011, // \
	0b11110000, // ]
	0b11011100, // ^
	0b11110111, // _
	0b11100011, // u
	0b11001111, // |
	0b10011100, // °
}

// Encode returns the code for a symbol index.
// Indices outside the table encode as blank.
func Encode(index int) Code {
	if index < 0 || index >= NumSymbols {
		return table[Blank]
	}
	return table[index]
}

// SymbolFor maps a character to its symbol index.
//
// Lowercase letters other than 'u' use the uppercase offset, so 'a' to 'h'
// select punctuation glyphs and 'i' to 'z' fall outside the table.
func SymbolFor(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'A' && ch <= 'Z':
		return int(ch - letterToSym)
	case ch == 'u':
		return SoftU
	case ch >= 'a' && ch <= 'z':
		return int(ch - letterToSym)
	}
	switch ch {
	case ' ':
		return Blank
	case '-':
		return Dash
	case '.':
		return Period
	case '/':
		return Slash
	case '=':
		return Equals
	case '?':
		return Question
	case '[':
		return LBracket
	case '\\':
		return Backslash
	case ']':
		return RBracket
	case '^':
		return Caret
	case '_':
		return Underscore
	case '|':
		return Pipe
	}
	return Blank
}

// Lit reports whether every segment in mask is lit.
func (c Code) Lit(mask Code) bool {
	return c&mask == 0
}

// WithDP returns c with the decimal point lit (on) or dark.
func (c Code) WithDP(on bool) Code {
	if on {
		return c &^ SegDP
	}
	return c | SegDP
}

// String lists the lit segments, e.g. "abcdefg." for an 8 with its point.
func (c Code) String() string {
	const names = "abcdefg."
	var b []byte
	for i := 0; i < 8; i++ {
		if c.Lit(1 << i) {
			b = append(b, names[i])
		}
	}
	if len(b) == 0 {
		return fmt.Sprintf("blank(0x%02X)", uint8(c))
	}
	return string(b)
}
