package lambda

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	ErrNameTaken = errors.New("taken")
	ErrSlotRange = errors.New("identifier slot out of range")
)

// Context holds the free identifiers and the definitions of one session.
// A free identifier's position in the identifier list is its slot; free
// variables are encoded as Var(slot + depth) at binder depth depth.
// A name is either an identifier or a definition, never both.
type Context struct {
	identifiers []string
	definitions map[string]Term

	// AllParens makes Format parenthesize every application operand and
	// abstraction body.
	AllParens bool
}

func NewContext() *Context {
	return &Context{definitions: make(map[string]Term)}
}

// PushIdentifier returns the slot of name, appending it if it is new.
func (c *Context) PushIdentifier(name string) (int, error) {
	if i := slices.Index(c.identifiers, name); i >= 0 {
		return i, nil
	}
	if _, ok := c.definitions[name]; ok {
		return 0, fmt.Errorf("'%s' is %w", name, ErrNameTaken)
	}
	c.identifiers = append(c.identifiers, name)
	return len(c.identifiers) - 1, nil
}

// Define binds name to t. An existing definition of name is replaced.
func (c *Context) Define(name string, t Term) error {
	if slices.Contains(c.identifiers, name) {
		return fmt.Errorf("'%s' is %w", name, ErrNameTaken)
	}
	if c.definitions == nil {
		c.definitions = make(map[string]Term)
	}
	c.definitions[name] = t
	return nil
}

func (c *Context) Definition(name string) (Term, bool) {
	t, ok := c.definitions[name]
	return t, ok
}

func (c *Context) Identifier(slot int) (string, error) {
	if slot < 0 || slot >= len(c.identifiers) {
		return "", fmt.Errorf("%w: %d (have %d)", ErrSlotRange, slot, len(c.identifiers))
	}
	return c.identifiers[slot], nil
}

// Identifiers returns the free identifiers in slot order.
func (c *Context) Identifiers() []string {
	return slices.Clone(c.identifiers)
}

// Definitions returns the defined names, sorted.
func (c *Context) Definitions() []string {
	names := maps.Keys(c.definitions)
	slices.Sort(names)
	return names
}

// Dump writes the identifiers and the definitions in a human readable form.
func (c *Context) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "identifiers: %s\n", strings.Join(c.identifiers, ", ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "definitions:"); err != nil {
		return err
	}
	for _, name := range c.Definitions() {
		s, err := c.Format(c.definitions[name])
		if err != nil {
			return fmt.Errorf("definition %s: %w", name, err)
		}
		if _, err := fmt.Fprintf(w, "\t%s = %s\n", name, s); err != nil {
			return err
		}
	}
	return nil
}
