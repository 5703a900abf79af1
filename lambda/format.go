package lambda

import (
	"fmt"
	"strconv"
	"strings"
)

// String methods give a fully parenthesized rendering that needs no Context;
// every variable, bound or free, prints as its raw index.

func (v Var) String() string { return "#" + strconv.Itoa(int(v)) }

func (a Abs) String() string { return fmt.Sprintf("($ %v)", a.Body) }

func (a App) String() string { return fmt.Sprintf("(%v %v)", a.Fn, a.Arg) }

// Format renders t in surface syntax. Bound variables print as #index and
// free variables print as the identifier in their slot.
func (c *Context) Format(t Term) (string, error) {
	var b strings.Builder
	if err := c.format(&b, t, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (c *Context) format(b *strings.Builder, t Term, depth int) error {
	switch t := t.(type) {
	case Var:
		if int(t) < depth {
			b.WriteByte('#')
			b.WriteString(strconv.Itoa(int(t)))
			return nil
		}
		name, err := c.Identifier(int(t) - depth)
		if err != nil {
			return err
		}
		b.WriteString(name)
		return nil
	case Abs:
		b.WriteByte('$')
		if _, ok := t.Body.(Abs); !ok {
			b.WriteByte(' ')
		}
		return c.group(b, t.Body, depth+1, c.AllParens)
	case App:
		_, fnAbs := t.Fn.(Abs)
		_, argVar := t.Arg.(Var)
		if err := c.group(b, t.Fn, depth, fnAbs || c.AllParens); err != nil {
			return err
		}
		b.WriteByte(' ')
		return c.group(b, t.Arg, depth, !argVar || c.AllParens)
	}
	panic("unreachable")
}

func (c *Context) group(b *strings.Builder, t Term, depth int, paren bool) error {
	if !paren {
		return c.format(b, t, depth)
	}
	b.WriteByte('(')
	if err := c.format(b, t, depth); err != nil {
		return err
	}
	b.WriteByte(')')
	return nil
}
