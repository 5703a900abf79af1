// Package run drives the parser and the reducer over lines of input, either
// a whole file at a time (Batch) or one interactive command at a time
// (Session). It is factored out of main so it can be tested.
package run

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/germanalen/lambda-interpreter/config"
	"github.com/germanalen/lambda-interpreter/lambda"
	"github.com/germanalen/lambda-interpreter/parse"
)

// LineError is the error that stopped a batch run.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func newContext(conf *config.Config) *lambda.Context {
	ctx := lambda.NewContext()
	ctx.AllParens = conf.AllParens()
	return ctx
}

// Batch evaluates r one line at a time, reducing every term to normal form
// and printing it. The first error is reported with its line number and ends
// the run; it is also returned as a *LineError.
func Batch(conf *config.Config, r io.Reader) error {
	out := conf.Output()
	log := conf.Logger()
	ctx := newContext(conf)
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<20)
	for n := 1; sc.Scan(); n++ {
		s, err := evalLine(conf, ctx, n, sc.Text())
		if err != nil {
			fmt.Fprintf(out, "Error on line %d: %v\n", n, err)
			return &LineError{n, err}
		}
		if s != "" {
			fmt.Fprintln(out, s)
		}
	}
	if err := sc.Err(); err != nil {
		log.Error("reading input", "err", err)
		return err
	}
	return nil
}

func evalLine(conf *config.Config, ctx *lambda.Context, n int, line string) (string, error) {
	t, err := parse.Line(ctx, line)
	if err != nil || t == nil {
		return "", err
	}
	var observe func(int, lambda.Term)
	if conf.Trace() {
		log := conf.Logger()
		observe = func(pass int, t lambda.Term) {
			log.Debug("reduce", "line", n, "pass", pass, "term", t)
		}
	}
	return ctx.Format(lambda.Normalize(t, observe))
}

// Session is an interactive session. Each expression gets a single
// reduction pass; the result is stored as the definition "out", so entering
// "out" continues the reduction one pass at a time.
type Session struct {
	conf *config.Config
	ctx  *lambda.Context
}

const lastResult = "out"

func NewSession(conf *config.Config) (*Session, error) {
	s := &Session{conf: conf, ctx: newContext(conf)}
	t, err := parse.Line(s.ctx, "none")
	if err != nil {
		return nil, err
	}
	if err := s.ctx.Define(lastResult, t); err != nil {
		return nil, err
	}
	return s, nil
}

// Context returns the session's context.
func (s *Session) Context() *lambda.Context {
	return s.ctx
}

// Exec runs one command line and reports whether the session should end.
// Errors are printed and do not end the session.
func (s *Session) Exec(line string) (quit bool) {
	out := s.conf.Output()
	switch strings.TrimSpace(line) {
	case "quit":
		return true
	case "help":
		fmt.Fprint(out, help)
		return false
	case "context":
		if err := s.ctx.Dump(out); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		return false
	}
	if err := s.eval(line); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	return false
}

func (s *Session) eval(line string) error {
	t, err := parse.Line(s.ctx, line)
	if err != nil || t == nil {
		return err
	}
	t = lambda.BetaReduce(t)
	str, err := s.ctx.Format(t)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.conf.Output(), str)
	return s.ctx.Define(lastResult, t)
}

const help = `Commands:
	context
	quit
	help
	lambda_expression
	define identifier lambda_expression

Syntax:
	$ E        abstraction
	E E        application, left associative
	( E )      grouping
	#n         de Bruijn index
	name       free variable or definition
	; text     comment

Examples
	> define identity $ #0
	> identity x
	x

This expression reduces to itself
	> ($ #0 #0) ($ #0 #0)
	($ #0 #0) ($ #0 #0)

Enter 'out' to reduce the previous expression further
Y combinator
	> $ ($ #1 (#0 #0)) ($ #1 (#0 #0))
	$ #0 (($ #1 (#0 #0)) ($ #1 (#0 #0)))
	> out
	$ #0 (#0 (($ #1 (#0 #0)) ($ #1 (#0 #0))))
	> out
	$ #0 (#0 (#0 (($ #1 (#0 #0)) ($ #1 (#0 #0)))))

`
