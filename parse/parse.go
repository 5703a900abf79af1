// Package parse turns lines of surface syntax into lambda terms.
//
// The grammar is
//
//	S' -> E
//	E  -> L E      abstraction
//	E  -> A
//	A  -> A I      application, left associative
//	A  -> I
//	I  -> x        identifier or #index
//	I  -> ( E )
//
// and is recognized by an SLR(1) shift-reduce automaton. Two forms sit
// outside the grammar and are recognized by their first token: a comment,
// whose first identifier starts with ';', and "define name expression".
package parse

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/germanalen/lambda-interpreter/lambda"
	"github.com/germanalen/lambda-interpreter/scan"
)

var (
	ErrSyntax      = errors.New("unexpected")
	ErrReserved    = errors.New("reserved word")
	ErrDefineIdent = errors.New("expected an identifier after define")
)

const reserved = "define"

// Line parses a single line. See Parse.
func Line(ctx *lambda.Context, line string) (lambda.Term, error) {
	return Parse(ctx, strings.NewReader(line))
}

// Parse parses one expression from r, resolving identifiers against ctx.
// Identifiers that are not definitions become free variables of ctx.
// Empty input, comments and definitions yield a nil term and a nil error.
func Parse(ctx *lambda.Context, r io.ByteScanner) (lambda.Term, error) {
	s := scan.New(r)
	tok, err := s.Next()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.Type == scan.EOF:
		return nil, nil
	case tok.Type == scan.Identifier && tok.Text[0] == ';':
		return nil, nil
	case tok.Type == scan.Identifier && tok.Text == reserved:
		name, err := s.Next()
		if err != nil {
			return nil, err
		}
		if name.Type != scan.Identifier {
			return nil, ErrDefineIdent
		}
		if name.Text == reserved {
			return nil, fmt.Errorf("%w: '%s' can't be defined", ErrReserved, reserved)
		}
		t, err := newParser(ctx, s).parse()
		if err != nil {
			return nil, err
		}
		return nil, ctx.Define(name.Text, t)
	}
	s.Back(tok)
	return newParser(ctx, s).parse()
}
