package lambda

import "testing"

var (
	identity = Abs{Var(0)}
	selfApp  = Abs{App{Var(0), Var(0)}}
	omega    = App{selfApp, selfApp}

	// Church numerals and successor.
	zero = Abs{Abs{Var(0)}}
	one  = Abs{Abs{App{Var(1), Var(0)}}}
	two  = Abs{Abs{App{Var(1), App{Var(1), Var(0)}}}}
	succ = Abs{Abs{Abs{App{Var(1), App{App{Var(2), Var(1)}, Var(0)}}}}}

	// K and the Y combinator body.
	konst = Abs{Abs{Var(1)}}
	yHalf = Abs{App{Var(1), App{Var(0), Var(0)}}}
	yComb = Abs{App{yHalf, yHalf}}
)

func TestLift(t *testing.T) {
	tests := []struct {
		name             string
		in               Term
		border, distance int
		want             Term
	}{
		{"below border", Var(0), 1, 3, Var(0)},
		{"at border", Var(1), 1, 3, Var(4)},
		{"free under binder", Abs{App{Var(0), Var(1)}}, 0, 2, Abs{App{Var(0), Var(3)}}},
		{"closed", konst, 0, 5, konst},
		{"application", App{Var(0), Var(2)}, 1, 1, App{Var(0), Var(3)}},
		{"zero distance", App{Var(4), Abs{Var(7)}}, 0, 0, App{Var(4), Abs{Var(7)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lift(tt.in, tt.border, tt.distance)
			if !AlphaEquivalent(got, tt.want) {
				t.Errorf("Lift(%v, %d, %d) = %v, want %v", tt.in, tt.border, tt.distance, got, tt.want)
			}
		})
	}
}

func TestSubst(t *testing.T) {
	tests := []struct {
		name    string
		in      Term
		index   int
		value   Term
		lifting int
		want    Term
	}{
		{"hit", Var(0), 0, Var(5), 0, Var(5)},
		{"below index", Var(0), 1, Var(5), 0, Var(0)},
		{"above index", Var(3), 1, Var(5), 0, Var(2)},
		{"hit lifts value", Var(2), 2, Var(0), 2, Var(2)},
		{"under binder", Abs{App{Var(1), Var(0)}}, 0, Var(4), 0, Abs{App{Var(5), Var(0)}}},
		{"free above removed binder", Abs{Var(2)}, 0, Var(0), 0, Abs{Var(1)}},
		{"closed value", Abs{Var(1)}, 0, identity, 0, Abs{identity}},
		{"application", App{Var(0), Var(1)}, 0, konst, 0, App{konst, Var(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subst(tt.in, tt.index, tt.value, tt.lifting)
			if !AlphaEquivalent(got, tt.want) {
				t.Errorf("Subst(%v, %d, %v, %d) = %v, want %v", tt.in, tt.index, tt.value, tt.lifting, got, tt.want)
			}
		})
	}
}

func TestAlphaEquivalent(t *testing.T) {
	tests := []struct {
		a, b Term
		want bool
	}{
		{Var(0), Var(0), true},
		{Var(0), Var(1), false},
		{identity, Abs{Var(0)}, true},
		{identity, Var(0), false},
		{omega, App{selfApp, selfApp}, true},
		{App{Var(0), Var(1)}, App{Var(1), Var(0)}, false},
		{Abs{Abs{Var(1)}}, Abs{Abs{Var(0)}}, false},
	}
	for _, tt := range tests {
		if got := AlphaEquivalent(tt.a, tt.b); got != tt.want {
			t.Errorf("AlphaEquivalent(%v, %v) = %t, want %t", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestBetaReduce(t *testing.T) {
	tests := []struct {
		name string
		in   Term
		want Term
	}{
		{"variable", Var(3), Var(3)},
		{"identity applied", App{identity, Var(0)}, Var(0)},
		{"omega", omega, omega},
		{"under abstraction", Abs{App{identity, Var(0)}}, Abs{Var(0)}},
		{"both sides", App{App{identity, Var(1)}, App{identity, Var(2)}}, App{Var(1), Var(2)}},
		// The contractum (\x.x) y is not reduced in the same pass.
		{"outermost only", App{Abs{App{Var(0), Var(1)}}, identity}, App{identity, Var(0)}},
		{"free in argument", App{konst, Var(0)}, Abs{Var(1)}},
		{"y combinator", yComb, Abs{App{Var(0), App{yHalf, yHalf}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BetaReduce(tt.in)
			if !AlphaEquivalent(got, tt.want) {
				t.Errorf("BetaReduce(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBetaReduceLeavesInputIntact(t *testing.T) {
	in := App{Abs{App{Var(0), Var(0)}}, Var(3)}
	BetaReduce(in)
	if !AlphaEquivalent(in, App{Abs{App{Var(0), Var(0)}}, Var(3)}) {
		t.Fatalf("input modified: %v", in)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		in     Term
		want   Term
		passes int
	}{
		{"normal form", identity, identity, 1},
		{"identity applied", App{identity, Var(0)}, Var(0), 2},
		{"omega", omega, omega, 1},
		{"succ one", App{succ, one}, two, 4},
		{"succ zero", App{succ, zero}, one, 4},
		{"discard divergent", App{App{konst, identity}, omega}, identity, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passes := 0
			got := Normalize(tt.in, func(pass int, _ Term) { passes = pass })
			if !AlphaEquivalent(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if passes != tt.passes {
				t.Errorf("Normalize(%v) took %d passes, want %d", tt.in, passes, tt.passes)
			}
		})
	}
}

func TestNormalizeNilObserver(t *testing.T) {
	if got := Normalize(App{identity, Var(2)}, nil); !AlphaEquivalent(got, Var(2)) {
		t.Errorf("got %v, want #2", got)
	}
}

var sample = []Term{
	Var(0), Var(4), identity, konst, omega, one, two, succ, yComb,
	App{Var(1), Abs{App{Var(0), Var(3)}}},
	Abs{Abs{App{Var(2), App{Var(1), Var(5)}}}},
}

func TestLiftThenSubstIsIdentity(t *testing.T) {
	for _, v := range []Term{Var(0), Var(7), identity, omega} {
		for _, tm := range sample {
			got := Subst(Lift(tm, 0, 1), 0, v, 0)
			if !AlphaEquivalent(got, tm) {
				t.Errorf("Subst(Lift(%v, 0, 1), 0, %v, 0) = %v", tm, v, got)
			}
		}
	}
}

func TestNormalFormIsFixpoint(t *testing.T) {
	for _, tm := range []Term{identity, one, two, succ, Var(3), App{Var(0), identity}} {
		next := BetaReduce(tm)
		if !AlphaEquivalent(next, tm) {
			t.Errorf("%v is not in normal form: reduced to %v", tm, next)
			continue
		}
		if again := BetaReduce(next); !AlphaEquivalent(again, tm) {
			t.Errorf("second pass changed %v to %v", tm, again)
		}
	}
}

// leftmost contracts the single leftmost-outermost redex of t.
func leftmost(t Term) (Term, bool) {
	switch t := t.(type) {
	case Abs:
		body, ok := leftmost(t.Body)
		return Abs{body}, ok
	case App:
		if abs, ok := t.Fn.(Abs); ok {
			return Subst(abs.Body, 0, t.Arg, 0), true
		}
		if fn, ok := leftmost(t.Fn); ok {
			return App{fn, t.Arg}, true
		}
		arg, ok := leftmost(t.Arg)
		return App{t.Fn, arg}, ok
	}
	return t, false
}

func TestParallelAgreesWithLeftmost(t *testing.T) {
	plus := Abs{Abs{Abs{Abs{App{App{Var(3), Var(1)}, App{App{Var(2), Var(1)}, Var(0)}}}}}}
	terms := []Term{
		App{succ, App{succ, zero}},
		App{App{plus, two}, one},
		App{App{konst, App{identity, Var(0)}}, App{identity, Var(1)}},
		App{Abs{App{Var(0), Var(0)}}, App{identity, identity}},
	}
	for _, tm := range terms {
		want := tm
		for steps := 0; ; steps++ {
			next, ok := leftmost(want)
			if !ok {
				break
			}
			if steps > 1000 {
				t.Fatalf("leftmost reduction of %v did not terminate", tm)
			}
			want = next
		}
		if got := Normalize(tm, nil); !AlphaEquivalent(got, want) {
			t.Errorf("Normalize(%v) = %v, leftmost reduction gives %v", tm, got, want)
		}
	}
}
