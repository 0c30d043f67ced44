// Package scanner tokenizes TOML source on demand.
//
// The scanner is a byte cursor with one token of lookahead: Peek returns the
// upcoming token without consuming it, Next consumes it. It never reads past
// the token it hands out.
package scanner

import (
	"bytes"

	"github.com/tomldoc/tomldoc/internal/token"
)

const bom = "\xef\xbb\xbf"

// Scanner transforms TOML source into a stream of tokens.
type Scanner struct {
	input        []byte
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	col          int  // current column number

	peeked  token.Token
	hasPeek bool

	// afterComment makes the next text run extend to end of line, so a
	// comment body is always a single token no matter what it contains.
	afterComment bool
}

// New creates a new Scanner over input. A leading byte-order-mark is
// skipped.
func New(input []byte) *Scanner {
	input = bytes.TrimPrefix(input, []byte(bom))
	s := &Scanner{input: input, line: 1, col: 0}
	s.readChar()
	return s
}

// Peek returns the next token without consuming it. Repeated calls return
// the same token.
func (s *Scanner) Peek() token.Token {
	if !s.hasPeek {
		s.peeked = s.scan()
		s.hasPeek = true
	}
	return s.peeked
}

// Next returns the next token and advances past it.
func (s *Scanner) Next() token.Token {
	tok := s.Peek()
	s.hasPeek = false
	return tok
}

// readChar gives us the next character and advances our position in the
// input.
func (s *Scanner) readChar() {
	if s.ch == '\n' {
		s.line++
		s.col = 0
	}

	if s.readPosition >= len(s.input) {
		s.ch = 0 // NUL, signifies EOF
	} else {
		s.ch = s.input[s.readPosition]
	}
	s.position = s.readPosition
	s.readPosition++
	s.col++
}

func (s *Scanner) scan() token.Token {
	if s.afterComment {
		s.afterComment = false
		return s.scanCommentBody()
	}

	s.skipWhitespace()

	tok := token.Token{Offset: s.position, Line: s.line, Column: s.col}

	switch s.ch {
	case '#':
		tok.Type = token.COMMENT
		tok.Literal = string(s.ch)
		s.afterComment = true
	case '=':
		tok.Type = token.EQUALS
		tok.Literal = string(s.ch)
	case ',':
		tok.Type = token.COMMA
		tok.Literal = string(s.ch)
	case '[':
		tok.Type = token.LBRACK
		tok.Literal = string(s.ch)
	case ']':
		tok.Type = token.RBRACK
		tok.Literal = string(s.ch)
	case '{':
		tok.Type = token.LBRACE
		tok.Literal = string(s.ch)
	case '}':
		tok.Type = token.RBRACE
		tok.Literal = string(s.ch)
	case '"', '\'':
		return s.scanQuoted(tok)
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
		return tok
	default:
		return s.scanBare(tok)
	}

	s.readChar()
	return tok
}

// skipWhitespace also skips line breaks; the grammar is line-oriented only
// through the bare-text terminator rules.
func (s *Scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\r' || s.ch == '\n' {
		s.readChar()
	}
}

// scanQuoted reads a string delimited by the quote character under the
// cursor. The quotes are excluded from the literal. No escape sequences are
// recognized in this dialect.
func (s *Scanner) scanQuoted(tok token.Token) token.Token {
	quote := s.ch
	s.readChar() // consume opening quote
	start := s.position
	for s.ch != quote {
		if s.ch == 0 {
			tok.Type = token.ILLEGAL
			tok.Literal = "unterminated string literal"
			return tok
		}
		s.readChar()
	}
	tok.Type = token.TEXT
	tok.Offset = start
	tok.Literal = string(s.input[start:s.position])
	s.readChar() // consume closing quote
	return tok
}

// scanBare reads an unquoted run up to end of line or any punctuation
// character. When the run stops at '=', trailing whitespace is trimmed from
// the literal so that "key   =" yields the token "key".
func (s *Scanner) scanBare(tok token.Token) token.Token {
	start := s.position
	for s.ch != 0 && s.ch != '\n' && s.ch != '\r' && !isPunct(s.ch) {
		s.readChar()
	}
	lit := s.input[start:s.position]
	if s.ch == '=' {
		lit = bytes.TrimRight(lit, " \t")
	}
	tok.Type = token.TEXT
	tok.Literal = string(lit)
	return tok
}

// scanCommentBody reads the remainder of the current line as one token,
// punctuation included. Leading whitespace after the '#' is dropped.
func (s *Scanner) scanCommentBody() token.Token {
	for s.ch == ' ' || s.ch == '\t' {
		s.readChar()
	}
	tok := token.Token{Type: token.TEXT, Offset: s.position, Line: s.line, Column: s.col}
	start := s.position
	for s.ch != 0 && s.ch != '\n' && s.ch != '\r' {
		s.readChar()
	}
	tok.Literal = string(s.input[start:s.position])
	return tok
}

func isPunct(ch byte) bool {
	switch ch {
	case '#', '=', ',', '[', ']', '{', '}':
		return true
	}
	return false
}
