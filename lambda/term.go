// Package lambda implements terms of the untyped lambda calculus in de Bruijn
// notation, together with the context that names their free variables.
package lambda

// Term is one of Var, Abs or App. Terms are never modified after
// construction; every operation below builds a new term.
type Term interface {
	isTerm()
}

// Var is a de Bruijn index: the number of binders between the occurrence and
// the abstraction that binds it. An index that reaches past every enclosing
// binder refers to a free identifier in the Context.
type Var int

type Abs struct {
	Body Term
}

type App struct {
	Fn  Term
	Arg Term
}

func (Var) isTerm() {}
func (Abs) isTerm() {}
func (App) isTerm() {}

// Lift returns t with every index >= border increased by distance.
func Lift(t Term, border, distance int) Term {
	switch t := t.(type) {
	case Var:
		if int(t) < border {
			return t
		}
		return t + Var(distance)
	case Abs:
		return Abs{Lift(t.Body, border+1, distance)}
	case App:
		return App{Lift(t.Fn, border, distance), Lift(t.Arg, border, distance)}
	}
	panic("unreachable")
}

// Subst replaces the variable bound at index with value and removes that
// binder, renumbering the variables above it. lifting is the number of
// binders crossed since the substitution started; value is lifted by that
// much wherever it is inserted.
func Subst(t Term, index int, value Term, lifting int) Term {
	switch t := t.(type) {
	case Var:
		switch {
		case int(t) < index:
			return t
		case int(t) > index:
			return t - 1
		}
		return Lift(value, 0, lifting)
	case Abs:
		return Abs{Subst(t.Body, index+1, value, lifting+1)}
	case App:
		return App{Subst(t.Fn, index, value, lifting), Subst(t.Arg, index, value, lifting)}
	}
	panic("unreachable")
}

// AlphaEquivalent reports whether a and b are the same term. With de Bruijn
// indices this is structural equality.
func AlphaEquivalent(a, b Term) bool {
	switch a := a.(type) {
	case Var:
		b, ok := b.(Var)
		return ok && a == b
	case Abs:
		b, ok := b.(Abs)
		return ok && AlphaEquivalent(a.Body, b.Body)
	case App:
		b, ok := b.(App)
		return ok && AlphaEquivalent(a.Fn, b.Fn) && AlphaEquivalent(a.Arg, b.Arg)
	}
	panic("unreachable")
}

// BetaReduce contracts, in one pass, every redex that is not nested inside
// another redex. A contractum is not scanned again in the same pass.
func BetaReduce(t Term) Term {
	switch t := t.(type) {
	case Var:
		return t
	case Abs:
		return Abs{BetaReduce(t.Body)}
	case App:
		if abs, ok := t.Fn.(Abs); ok {
			return Subst(abs.Body, 0, t.Arg, 0)
		}
		return App{BetaReduce(t.Fn), BetaReduce(t.Arg)}
	}
	panic("unreachable")
}

// Normalize applies BetaReduce until a pass returns a term alpha-equivalent
// to its input. If observe is not nil it is called with the result of every
// pass. Normalize does not return for terms without a normal form, except
// those that reduce to themselves in one pass.
func Normalize(t Term, observe func(pass int, t Term)) Term {
	for pass := 1; ; pass++ {
		next := BetaReduce(t)
		if observe != nil {
			observe(pass, next)
		}
		if AlphaEquivalent(t, next) {
			return next
		}
		t = next
	}
}
