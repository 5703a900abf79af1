package parse

import (
	"fmt"

	"github.com/germanalen/lambda-interpreter/lambda"
	"github.com/germanalen/lambda-interpreter/scan"
)

// Terminals.
const (
	tLambda = iota
	tAtom
	tLeft
	tRight
	tEnd
	numTerminals
)

// Nonterminals.
const (
	ntStart = iota
	ntExpr
	ntApp
	ntItem
	numNonterminals
)

type verb uint8

const (
	reject verb = iota
	shift
	reduce
	accept
)

type action struct {
	verb verb
	n    int // state to shift to, or rule to reduce by
}

type rule struct {
	lhs int
	len int
}

var rules = [...]rule{
	0: {ntStart, 1}, // S' -> E
	1: {ntExpr, 2},  // E -> L E
	2: {ntExpr, 1},  // E -> A
	3: {ntApp, 2},   // A -> A I
	4: {ntApp, 1},   // A -> I
	5: {ntItem, 1},  // I -> x
	6: {ntItem, 3},  // I -> ( E )
}

const numStates = 11

func sh(n int) action { return action{shift, n} }
func rd(n int) action { return action{reduce, n} }

var (
	xx  = action{}
	acc = action{accept, 0}
)

//	L      x      (      )      end
var actions = [numStates][numTerminals]action{
	0:  {sh(2), sh(5), sh(6), xx, xx},
	1:  {xx, xx, xx, xx, acc},
	2:  {sh(2), sh(5), sh(6), xx, xx},
	3:  {xx, sh(5), sh(6), rd(2), rd(2)},
	4:  {xx, rd(4), rd(4), rd(4), rd(4)},
	5:  {xx, rd(5), rd(5), rd(5), rd(5)},
	6:  {sh(2), sh(5), sh(6), xx, xx},
	7:  {xx, xx, xx, rd(1), rd(1)},
	8:  {xx, rd(3), rd(3), rd(3), rd(3)},
	9:  {xx, xx, xx, sh(10), xx},
	10: {xx, rd(6), rd(6), rd(6), rd(6)},
}

// -1 is no transition.
//
//	S'  E   A   I
var gotos = [numStates][numNonterminals]int{
	0:  {-1, 1, 3, 4},
	1:  {-1, -1, -1, -1},
	2:  {-1, 7, 3, 4},
	3:  {-1, -1, -1, 8},
	4:  {-1, -1, -1, -1},
	5:  {-1, -1, -1, -1},
	6:  {-1, 9, 3, 4},
	7:  {-1, -1, -1, -1},
	8:  {-1, -1, -1, -1},
	9:  {-1, -1, -1, -1},
	10: {-1, -1, -1, -1},
}

func terminal(t scan.Type) int {
	switch t {
	case scan.Lambda:
		return tLambda
	case scan.Index, scan.Identifier:
		return tAtom
	case scan.LeftParen:
		return tLeft
	case scan.RightParen:
		return tRight
	}
	return tEnd
}

// entry is one slot of the parse stack: the automaton state together with
// the token shifted into it or the term reduced into it.
type entry struct {
	state int
	tok   scan.Token
	term  lambda.Term
}

type parser struct {
	ctx   *lambda.Context
	scan  *scan.Scanner
	stack []entry
	// distance is the number of abstractions open at the current position.
	distance int
}

func newParser(ctx *lambda.Context, s *scan.Scanner) *parser {
	return &parser{ctx: ctx, scan: s, stack: []entry{{state: 0}}}
}

func (p *parser) parse() (lambda.Term, error) {
	look, err := p.scan.Next()
	if err != nil {
		return nil, err
	}
	for {
		top := p.stack[len(p.stack)-1]
		act := actions[top.state][terminal(look.Type)]
		switch act.verb {
		case reject:
			return nil, unexpected(look)
		case accept:
			return top.term, nil
		case shift:
			if look.Type == scan.Lambda {
				p.distance++
			}
			p.stack = append(p.stack, entry{state: act.n, tok: look})
			if look, err = p.scan.Next(); err != nil {
				return nil, err
			}
		case reduce:
			rl := rules[act.n]
			rhs := p.stack[len(p.stack)-rl.len:]
			t, err := p.build(act.n, rhs)
			if err != nil {
				return nil, err
			}
			p.stack = p.stack[:len(p.stack)-rl.len]
			next := gotos[p.stack[len(p.stack)-1].state][rl.lhs]
			if next < 0 {
				return nil, unexpected(look)
			}
			p.stack = append(p.stack, entry{state: next, term: t})
		}
	}
}

// build runs the semantic action of rule n over its right-hand side.
func (p *parser) build(n int, rhs []entry) (lambda.Term, error) {
	switch n {
	case 1:
		p.distance--
		return lambda.Abs{Body: rhs[1].term}, nil
	case 3:
		return lambda.App{Fn: rhs[0].term, Arg: rhs[1].term}, nil
	case 5:
		return p.atom(rhs[0].tok)
	case 6:
		return rhs[1].term, nil
	}
	return rhs[0].term, nil
}

// atom resolves an index or identifier. A definition is spliced in lifted
// past the open abstractions; any other name is a free variable, whose
// index counts those abstractions plus its slot.
func (p *parser) atom(tok scan.Token) (lambda.Term, error) {
	if tok.Type == scan.Index {
		return lambda.Var(tok.Index), nil
	}
	if tok.Text == reserved {
		return nil, fmt.Errorf("%w: '%s' can't be a variable name", ErrReserved, reserved)
	}
	if def, ok := p.ctx.Definition(tok.Text); ok {
		return lambda.Lift(def, 0, p.distance), nil
	}
	slot, err := p.ctx.PushIdentifier(tok.Text)
	if err != nil {
		return nil, err
	}
	return lambda.Var(slot + p.distance), nil
}

func unexpected(tok scan.Token) error {
	return fmt.Errorf("%w '%s'", ErrSyntax, tok.Text)
}
