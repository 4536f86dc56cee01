// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package lit implements a lexer and parsers for VHDL style literals: bit
// string literals and range specifications.
//
package lit

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Type is the type of a lexed Item.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Raw
	Ident
	Int
	String
	BracketOpen
	BracketClose
	ParenOpen
	ParenClose
	Range
)

var typeNames = [...]string{
	EOF:          "end of input",
	Raw:          "character",
	Ident:        "identifier",
	Int:          "integer",
	String:       "string",
	BracketOpen:  "'['",
	BracketClose: "']'",
	ParenOpen:    "'('",
	ParenClose:   "')'",
	Range:        "'..'",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Item is a lexed token. Value is a string for Ident, String and Raw, an int
// for Int.
//
type Item struct {
	Type  Type
	Pos   int
	Value interface{}
}

func (i Item) String() string {
	switch i.Type {
	case Ident, Int, Raw:
		return i.Type.String() + " " + strconv.Quote(stringValue(i.Value))
	case String:
		return "string " + strconv.Quote(i.Value.(string))
	}
	return i.Type.String()
}

func stringValue(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case rune:
		return string(v)
	}
	return ""
}

// StateFn is a lexer state function.
//
type StateFn func(l *Lexer) StateFn

// Lexer is a state function based lexer.
//
type Lexer struct {
	input string
	start int // start of the current token
	pos   int // next read position
	width int // width of the last rune read
	cur   rune
	state StateFn
	items []Item
}

// NewLexer returns a new lexer for input.
//
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, state: lexInit}
}

// Lex returns the next item in the input stream.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		st := l.state(l)
		if st == nil {
			// token done
			st = lexInit
			l.start = l.pos
		}
		l.state = st
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

// Next reads the next rune. It returns -1 at the end of input.
//
func (l *Lexer) Next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		l.cur = -1
		return -1
	}
	l.cur, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return l.cur
}

// Backup unreads the last rune. It can only be called once per call to Next.
//
func (l *Lexer) Backup() {
	l.pos -= l.width
	l.width = 0
}

// Current returns the last rune read.
//
func (l *Lexer) Current() rune { return l.cur }

// Emit emits an item of type t with value v at the start of the current token.
//
func (l *Lexer) Emit(t Type, v interface{}) {
	l.items = append(l.items, Item{t, l.start, v})
}

// AcceptWhile reads runes while f returns true.
//
func (l *Lexer) AcceptWhile(f func(rune) bool) {
	for r := l.Next(); r >= 0 && f(r); r = l.Next() {
	}
	l.Backup()
}

func lexInit(l *Lexer) StateFn {
	r := l.Next()
	switch {
	case r < 0:
		return lexEOF
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
	case unicode.IsLetter(r):
		return lexIdent
	case '0' <= r && r <= '9' || r == '-':
		return lexNumber
	case r == '"':
		return lexString
	case r == '[':
		l.Emit(BracketOpen, "[")
	case r == ']':
		l.Emit(BracketClose, "]")
	case r == '(':
		l.Emit(ParenOpen, "(")
	case r == ')':
		l.Emit(ParenClose, ")")
	case r == '.':
		if l.Next() == '.' {
			l.Emit(Range, "..")
			break
		}
		l.Backup()
		fallthrough
	default:
		l.Emit(Raw, r)
		return lexEOF
	}
	return nil
}

func lexNumber(l *Lexer) StateFn {
	var buf strings.Builder
	buf.WriteRune(l.Current())
	digits := l.Current() != '-'
	r := l.Next()
	for '0' <= r && r <= '9' || r == '_' && digits {
		if r != '_' {
			buf.WriteRune(r)
			digits = true
		}
		r = l.Next()
	}
	l.Backup()
	if !digits {
		l.Emit(Raw, '-')
		return lexEOF
	}
	i, err := strconv.Atoi(buf.String())
	if err != nil {
		// out of range for int
		l.Emit(Raw, buf.String())
		return lexEOF
	}
	l.Emit(Int, i)
	return nil
}

func lexIdent(l *Lexer) StateFn {
	var buf strings.Builder
	buf.WriteRune(l.Current())
	r := l.Next()
	for unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(Ident, buf.String())
	return nil
}

func lexString(l *Lexer) StateFn {
	var buf strings.Builder
	for r := l.Next(); r != '"'; r = l.Next() {
		if r < 0 {
			l.Emit(Raw, '"')
			return lexEOF
		}
		buf.WriteRune(r)
	}
	l.Emit(String, buf.String())
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *Lexer) StateFn {
	l.Emit(EOF, "end of input")
	return lexEOF
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
