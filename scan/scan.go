// Package scan splits one line of lambda calculus source into tokens.
package scan

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/samber/lo"
)

var ErrToken = errors.New("bad token")

// Type identifies the type of a token.
type Type int

const (
	EOF        Type = iota
	LeftParen       // '('
	RightParen      // ')'
	Lambda          // '$'
	Index           // '#' followed by digits
	Identifier      // run of printable characters other than $()#
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	case Lambda:
		return "Lambda"
	case Index:
		return "Index"
	case Identifier:
		return "Identifier"
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Token is a token returned by the scanner. Index is set only for Index
// tokens. Text is the token as it should appear in messages.
type Token struct {
	Type  Type
	Index int
	Text  string
}

func (t Token) String() string {
	return fmt.Sprintf("%s: %q", t.Type, t.Text)
}

var special = []byte("$()#")

func isIdent(c byte) bool {
	return 33 <= c && c <= 126 && !lo.Contains(special, c)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Scanner reads tokens from a byte stream. Tokens given to Back are
// returned again, most recent first, before any more input is read.
type Scanner struct {
	r       io.ByteScanner
	pending []Token
}

func New(r io.ByteScanner) *Scanner {
	return &Scanner{r: r}
}

// Back pushes tok back onto the scanner.
func (s *Scanner) Back(tok Token) {
	s.pending = append(s.pending, tok)
}

// Next returns the next token. At the end of input it returns an EOF token
// and a nil error, as many times as it is called.
func (s *Scanner) Next() (Token, error) {
	if n := len(s.pending); n > 0 {
		tok := s.pending[n-1]
		s.pending = s.pending[:n-1]
		return tok, nil
	}
	c, ok := s.skipSpace()
	if !ok {
		return Token{Type: EOF, Text: "end of file"}, nil
	}
	switch {
	case c == '#':
		return s.index()
	case c == '(':
		return Token{Type: LeftParen, Text: "("}, nil
	case c == ')':
		return Token{Type: RightParen, Text: ")"}, nil
	case c == '$':
		return Token{Type: Lambda, Text: "$"}, nil
	case isIdent(c):
		return s.identifier(c), nil
	}
	return Token{}, fmt.Errorf("%w: invalid character '%c' (ascii %d)", ErrToken, c, c)
}

func (s *Scanner) skipSpace() (byte, bool) {
	for {
		c, err := s.r.ReadByte()
		if err != nil {
			return 0, false
		}
		if !isSpace(c) {
			return c, true
		}
	}
}

func (s *Scanner) index() (Token, error) {
	n, digits := 0, 0
	for {
		c, err := s.r.ReadByte()
		if err != nil {
			break
		}
		if !isDigit(c) {
			s.r.UnreadByte()
			break
		}
		n = n*10 + int(c-'0')
		digits++
	}
	if digits == 0 {
		return Token{}, fmt.Errorf("%w: index expected after #", ErrToken)
	}
	return Token{Type: Index, Index: n, Text: "#" + strconv.Itoa(n)}, nil
}

func (s *Scanner) identifier(first byte) Token {
	buf := []byte{first}
	for {
		c, err := s.r.ReadByte()
		if err != nil {
			break
		}
		if !isIdent(c) {
			s.r.UnreadByte()
			break
		}
		buf = append(buf, c)
	}
	return Token{Type: Identifier, Text: string(buf)}
}
