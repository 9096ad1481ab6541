// SPDX-License-Identifier: MIT
package tokenizer

// REF: https://craftinginterpreters.com/scanning.html

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

type (
	// Scanner captures tokens from a source text in one forward pass.
	//
	// A Scanner owns its cursor & outputs exclusively; concurrent scans of
	// independent sources need no synchronization.
	Scanner struct {
		logger logrus.FieldLogger

		// source is the immutable input text.
		source string

		// tokens is the ordered output sequence, terminated by a KindEOF
		// Token once the scan completes.
		tokens []Token

		// diagnostics holds the "[line N] Error: ..." messages accumulated
		// during the scan.
		diagnostics []string

		// start is the offset of the lexeme being scanned.
		start int

		// current is the offset of the next unconsumed byte.
		current int

		// line is the 1-based line of current.
		line int

		// startLine is the line on which the lexeme being scanned began.
		startLine int

		debug bool
	}

	// Result pairs the Token sequence with the diagnostics collected while
	// producing it.
	Result struct {
		Tokens      []Token
		Diagnostics []string
	}
)

const (
	diagnosticFmt = "[line %d] Error: %s"

	initialTokenCap = 16
)

// Improves on performance compared to ORs.
//
// Reduces function cost improving probalility of inlining.
var blanks = [256]bool{
	' ':  true,
	'\t': true,
	'\r': true,
}

// New creates a Scanner for the source text.
//
// A Scanner serves a single Scan; create a fresh one per source.
func New(source string, options ...Option) *Scanner {
	s := &Scanner{
		source: source,
		line:   1,
		logger: fLogger,

		tokens:      make([]Token, 0, initialTokenCap),
		diagnostics: make([]string, 0),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Scan tokenizes a source text.
//
// Convenience for New(source).Scan().
func Scan(source string) Result { return New(source).Scan() }

// Scan consumes the entire source, returning the tokens & diagnostics.
//
// Errors never abort the pass; they accumulate as diagnostics & the Token
// sequence always terminates with a KindEOF Token.
func (s *Scanner) Scan() Result {
	for !s.atEnd() {
		s.start, s.startLine = s.current, s.line
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Kind: KindEOF, Line: s.line})

	if s.debug {
		s.logger.Debugf("scanned %d token(s), %d diagnostic(s): %s",
			len(s.tokens), len(s.diagnostics), spew.Sdump(s.tokens))
	}

	return Result{Tokens: s.tokens, Diagnostics: s.diagnostics}
}

// scanToken dispatches on one character.
//
// Exact symbols first, then the two-character lookahead operators, comment
// vs divide, whitespace, string start, digit & identifier classes; anything
// left is an "Unexpected character" diagnostic.
func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(KindLeftParen)
	case ')':
		s.addToken(KindRightParen)
	case '{':
		s.addToken(KindLeftBrace)
	case '}':
		s.addToken(KindRightBrace)
	case '*':
		s.addToken(KindStar)
	case '.':
		s.addToken(KindDot)
	case ',':
		s.addToken(KindComma)
	case '+':
		s.addToken(KindPlus)
	case '-':
		s.addToken(KindMinus)
	case ';':
		s.addToken(KindSemicolon)
	case '!':
		s.addMatched('=', KindBangEqual, KindBang)
	case '=':
		s.addMatched('=', KindEqualEqual, KindEqual)
	case '<':
		s.addMatched('=', KindLessEqual, KindLess)
	case '>':
		s.addMatched('=', KindGreaterEqual, KindGreater)
	case '/':
		if !s.match('/') {
			s.addToken(KindSlash)
			return
		}

		// Comment, runs to the end of the line; emits nothing.
		for !s.atEnd() && s.peek() != '\n' {
			s.current++
		}
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		switch {
		case blanks[c]:
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			s.unexpected(c)
		}
	}
}

// scanString consumes a string literal; the opening quote is already
// consumed.
//
// Literals may span lines; no escape sequences exist, backslashes are
// ordinary characters. Reaching the end of the source first is an
// "Unterminated string." diagnostic & emits no Token.
func (s *Scanner) scanString() {
	for !s.atEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.current++
	}

	if s.atEnd() {
		s.appendDiagnostic("Unterminated string.")
		return
	}

	// Consume the closing quote.
	s.current++

	s.addLiteralToken(KindString, s.source[s.start+1:s.current-1])
}

// scanNumber consumes a numeric literal; the leading digit is already
// consumed.
//
// Grammar: digits, optionally '.' + digits. No exponent notation & no lone
// leading or trailing dot; "5." yields NUMBER(5) then DOT.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.current++
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.current++
		for isDigit(s.peek()) {
			s.current++
		}
	}

	// The grammar above only matches valid float syntax.
	value, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)
	s.addLiteralToken(KindNumber, value)
}

// scanIdentifier consumes a maximal alphanumeric run, then resolves it
// against the reserved-word table.
func (s *Scanner) scanIdentifier() {
	for c := s.peek(); isAlpha(c) || isDigit(c); c = s.peek() {
		s.current++
	}

	kind := KindIdentifier
	if reserved, ok := keywords[s.source[s.start:s.current]]; ok {
		kind = reserved
	}

	s.addToken(kind)
}

// advance consumes & returns one byte.
func (s *Scanner) advance() (c byte) {
	c = s.source[s.current]
	s.current++

	return
}

// peek returns the next unconsumed byte without advancing, 0 at the end of
// the source.
func (s *Scanner) peek() (c byte) {
	if s.atEnd() {
		return
	}
	c = s.source[s.current]

	return
}

// peekNext returns the byte after peek's without advancing.
func (s *Scanner) peekNext() (c byte) {
	if s.current+1 >= len(s.source) {
		return
	}
	c = s.source[s.current+1]

	return
}

// match consumes the next byte only if it equals expected.
func (s *Scanner) match(expected byte) (ok bool) {
	if s.atEnd() || s.source[s.current] != expected {
		return
	}

	s.current++
	ok = true

	return
}

func (s *Scanner) atEnd() bool { return s.current >= len(s.source) }

// addToken appends a Token for the current lexeme.
func (s *Scanner) addToken(kind Kind) { s.addLiteralToken(kind, nil) }

// addLiteralToken appends a Token for the current lexeme with a decoded
// literal value.
func (s *Scanner) addLiteralToken(kind Kind, literal any) {
	lexeme := s.source[s.start:s.current]
	if s.debug {
		s.logger.Debugf("emit %s: %q", kind, lexeme)
	}

	s.tokens = append(s.tokens, Token{
		Kind:    kind,
		Lexeme:  lexeme,
		Literal: literal,
		Line:    s.startLine,
	})
}

// addMatched appends the two-character Kind when the next byte equals
// expected, the one-character Kind otherwise.
func (s *Scanner) addMatched(expected byte, matched, lone Kind) {
	if s.match(expected) {
		s.addToken(matched)
		return
	}

	s.addToken(lone)
}

// unexpected records a diagnostic for a character matched by no dispatch
// rule.
//
// A multi-byte UTF-8 sequence is consumed & reported as one character.
func (s *Scanner) unexpected(c byte) {
	r := rune(c)
	if c >= utf8.RuneSelf {
		var size int
		r, size = utf8.DecodeRuneInString(s.source[s.start:])
		s.current = s.start + size
	}

	s.appendDiagnostic(fmt.Sprintf("Unexpected character: %c", r))
}

// appendDiagnostic records a recoverable error at the current line.
func (s *Scanner) appendDiagnostic(message string) {
	s.diagnostics = append(s.diagnostics, fmt.Sprintf(diagnosticFmt, s.line, message))
}

// isDigit return true for an ASCII digit.
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isAlpha return true for an ASCII letter or underscore.
func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
