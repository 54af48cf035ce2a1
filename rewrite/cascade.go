package rewrite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/tnorm"
)

// ErrNoMatch is returned if a relation which is not pass-through wrapped is
// applied to a text it does not match as a whole.
var ErrNoMatch = errors.New("relation does not match input")

// Rule is a compiled rewrite rule: either a single relation or a cascade of
// relations.
type Rule interface {
	Apply(text string) (string, error)
	Wrapped() bool
	String() string
}

// Cascade is the sequential composition of pass-through wrapped relations. The
// output of every relation is the input of the next one.
//
// Cascades are immutable and safe for concurrent use.
type Cascade struct {
	rules []*Relation
}

// Compose creates a cascade from rules, applied in the given order. Every rule
// has to be pass-through wrapped, otherwise Compose returns a
// tnorm.CompositionError. Cascades given as arguments are flattened.
func Compose(rules ...Rule) (*Cascade, error) {
	c := &Cascade{}
	for i, rule := range rules {
		switch r := rule.(type) {
		case *Cascade:
			if r != nil {
				c.rules = append(c.rules, r.rules...)
			}
		case *Relation:
			if r == nil {
				return nil, tnorm.NewCompositionError(fmt.Sprintf("#%d", i), "rule is nil")
			}
			if !r.wrapped {
				return nil, tnorm.NewCompositionError(ruleName(r, i), "rule is not pass-through wrapped")
			}
			c.rules = append(c.rules, r)
		default:
			return nil, tnorm.NewCompositionError(fmt.Sprintf("#%d", i),
				fmt.Sprintf("unsupported rule type %T", rule))
		}
	}
	return c, nil
}

func ruleName(r *Relation, i int) string {
	if r.name != "" {
		return r.name
	}
	return fmt.Sprintf("#%d %v", i, r)
}

// Apply applies all relations of c to text, one after the other.
// An empty cascade is the identity.
func (c *Cascade) Apply(text string) (string, error) {
	if len(c.rules) == 0 || text == "" {
		return text, nil
	}
	buf := borrowBuffer()
	defer releaseBuffer(buf)
	s := text
	for _, r := range c.rules {
		*buf = r.rewrite(s, (*buf)[:0])
		s = string(*buf)
	}
	return s, nil
}

// Wrapped is always true for cascades.
func (c *Cascade) Wrapped() bool {
	return true
}

// Len returns the number of relations of a cascade.
func (c *Cascade) Len() int {
	return len(c.rules)
}

// Relations returns the relations of a cascade, in order of application.
func (c *Cascade) Relations() []*Relation {
	rels := make([]*Relation, len(c.rules))
	copy(rels, c.rules)
	return rels
}

func (c *Cascade) String() string {
	parts := make([]string, len(c.rules))
	for i, r := range c.rules {
		parts[i] = r.String()
	}
	return "cascade[" + strings.Join(parts, " ∘ ") + "]"
}
