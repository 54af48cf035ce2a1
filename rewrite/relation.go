package rewrite

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/tnorm/charset"
	"github.com/npillmayer/tnorm/ruletable"
)

// matcher is the input/output side of a relation. match finds the length of the
// longest match at a position, emit appends the output for a match of length n,
// which must have been found by a previous call to match.
type matcher interface {
	fmt.Stringer
	match(s string, pos int) int
	emit(s string, pos, n int, out []byte) []byte
}

// Relation is a compiled rewrite rule, i.e. a mapping from input symbol
// sequences to output symbol sequences.
//
// Relations are immutable values and safe for concurrent use.
type Relation struct {
	m       matcher
	name    string
	wrapped bool
	ac      *acScanner // set by Reduce
}

func newRelation(m matcher) *Relation {
	return &Relation{m: m}
}

// Named returns a copy of r with a name, used for tracing and error messages.
func (r *Relation) Named(name string) *Relation {
	c := *r
	c.name = name
	return &c
}

// Name returns the name of a relation, if any.
func (r *Relation) Name() string {
	return r.name
}

// Wrapped is true if r is pass-through wrapped.
func (r *Relation) Wrapped() bool {
	return r.wrapped
}

func (r *Relation) String() string {
	s := r.m.String()
	if r.name != "" {
		s = r.name + ":" + s
	}
	if r.wrapped {
		return "passthrough(" + s + ")"
	}
	return s
}

// Apply applies a relation to a text.
//
// A pass-through wrapped relation scans the text from left to right. At every
// position the longest match is rewritten; symbols not matched are copied
// unchanged. Zero-length matches (insertions) fire at most once per position,
// before the symbol at that position, and never at the end of the text.
//
// A relation which is not wrapped has to match the text as a whole, otherwise
// Apply returns ErrNoMatch.
func (r *Relation) Apply(text string) (string, error) {
	buf := borrowBuffer()
	defer releaseBuffer(buf)
	if !r.wrapped {
		n := r.m.match(text, 0)
		if n != len(text) {
			return "", fmt.Errorf("%w: %s at %q", ErrNoMatch, r, text)
		}
		*buf = r.m.emit(text, 0, n, (*buf)[:0])
		return string(*buf), nil
	}
	*buf = r.rewrite(text, (*buf)[:0])
	return string(*buf), nil
}

// rewrite applies a wrapped relation to s and appends the result to out.
func (r *Relation) rewrite(s string, out []byte) []byte {
	if r.ac != nil {
		return r.ac.rewrite(s, out)
	}
	for pos := 0; pos < len(s); {
		n := r.m.match(s, pos)
		if n > 0 {
			out = r.m.emit(s, pos, n, out)
			pos += n
			continue
		}
		if n == 0 {
			out = r.m.emit(s, pos, 0, out)
		}
		_, size := utf8.DecodeRuneInString(s[pos:])
		out = append(out, s[pos:pos+size]...)
		pos += size
	}
	return out
}

// PassThrough wraps a relation such that input not matched by it is copied to
// the output unchanged. Every rule taking part in a cascade has to be wrapped.
func PassThrough(r *Relation) *Relation {
	if r.wrapped {
		return r
	}
	c := *r
	c.wrapped = true
	return &c
}

// --- Tables ----------------------------------------------------------------

type tableMatcher struct {
	name    string
	t       *trie
	keys    []string
	outputs []string
}

func newTableMatcher(name string) *tableMatcher {
	return &tableMatcher{name: name, t: &trie{}}
}

// add inserts a mapping. For an existing key the first mapping wins.
func (tm *tableMatcher) add(key, output string) {
	if key == "" {
		return
	}
	if tm.t.insert(key, len(tm.outputs)) {
		tm.keys = append(tm.keys, key)
		tm.outputs = append(tm.outputs, output)
	}
}

func (tm *tableMatcher) lookup(key string) (string, bool) {
	if v, ok := tm.t.lookup(key); ok {
		return tm.outputs[v], true
	}
	return "", false
}

func (tm *tableMatcher) match(s string, pos int) int {
	n, _ := tm.t.longest(s, pos)
	return n
}

func (tm *tableMatcher) emit(s string, pos, n int, out []byte) []byte {
	v, _ := tm.t.lookup(s[pos : pos+n])
	return append(out, tm.outputs[v]...)
}

func (tm *tableMatcher) String() string {
	if tm.name != "" {
		return fmt.Sprintf("table[%s, %d]", tm.name, len(tm.keys))
	}
	return fmt.Sprintf("table[%d]", len(tm.keys))
}

// FromTable compiles a rule table into a relation: the union of the mappings
// input → output of every entry. At a position, the longest input wins.
// Entries with an empty input are ignored.
func FromTable(table *ruletable.Table) *Relation {
	tm := newTableMatcher(table.Name())
	for _, e := range table.Entries() {
		if e.Input == "" {
			tracer().Infof("table %s, line %d: ignoring entry with empty input", table.Name(), e.Line)
			continue
		}
		tm.add(e.Input, e.Output)
	}
	tracer().Debugf("compiled %v", tm)
	return newRelation(tm)
}

// --- Cross products --------------------------------------------------------

type crossMatcher struct {
	p      Pattern
	output string
}

func (cm crossMatcher) match(s string, pos int) int {
	return cm.p.match(s, pos)
}

func (cm crossMatcher) emit(s string, pos, n int, out []byte) []byte {
	return append(out, cm.output...)
}

func (cm crossMatcher) String() string {
	if cm.output == "" {
		return fmt.Sprintf("delete(%v)", cm.p)
	}
	return fmt.Sprintf("cross(%v, %q)", cm.p, cm.output)
}

// Cross creates a relation mapping every match of a pattern to output.
func Cross(p Pattern, output string) *Relation {
	return newRelation(crossMatcher{p: p, output: output})
}

// CrossLiteral creates a relation mapping the string a to the string b.
func CrossLiteral(a, b string) *Relation {
	return Cross(Literal(a), b)
}

// Delete creates a relation mapping every match of a pattern to the empty string.
func Delete(p Pattern) *Relation {
	return Cross(p, "")
}

type acceptMatcher struct {
	p Pattern
}

func (am acceptMatcher) match(s string, pos int) int {
	return am.p.match(s, pos)
}

func (am acceptMatcher) emit(s string, pos, n int, out []byte) []byte {
	return append(out, s[pos:pos+n]...)
}

func (am acceptMatcher) String() string {
	return fmt.Sprintf("accept(%v)", am.p)
}

// Accept creates the identity relation on the matches of a pattern.
func Accept(p Pattern) *Relation {
	return newRelation(acceptMatcher{p: p})
}

// Difference creates the identity relation on single symbols of universe
// which are not in excluded.
func Difference(universe, excluded charset.Set) *Relation {
	return Accept(Class(charset.Difference(universe, excluded)))
}

// DifferenceSpan is like Difference, but matches maximal runs of symbols.
func DifferenceSpan(universe, excluded charset.Set) *Relation {
	return Accept(Span(charset.Difference(universe, excluded)))
}

// --- Insertions ------------------------------------------------------------

type insertMatcher struct {
	text string
}

func (im insertMatcher) match(string, int) int {
	return 0
}

func (im insertMatcher) emit(s string, pos, n int, out []byte) []byte {
	return append(out, im.text...)
}

func (im insertMatcher) String() string {
	return fmt.Sprintf("insert(%q)", im.text)
}

// Insert creates a relation which matches the empty string and outputs text.
func Insert(text string) *Relation {
	return newRelation(insertMatcher{text: text})
}

// InsertBefore creates a relation which reproduces every match of anchor,
// preceded by text.
func InsertBefore(anchor Pattern, text string) *Relation {
	return Concat(Insert(text), Accept(anchor))
}

// InsertAfter creates a relation which reproduces every match of anchor,
// followed by text.
func InsertAfter(anchor Pattern, text string) *Relation {
	return Concat(Accept(anchor), Insert(text))
}

// InsertAround creates a relation which reproduces every match of anchor,
// enclosed in before and after.
func InsertAround(anchor Pattern, before, after string) *Relation {
	return Concat(Insert(before), Accept(anchor), Insert(after))
}

// --- Combinators -----------------------------------------------------------

type unionMatcher []matcher

func (um unionMatcher) match(s string, pos int) int {
	longest := -1
	for _, m := range um {
		if n := m.match(s, pos); n > longest {
			longest = n
		}
	}
	return longest
}

// emit delegates to the first operand producing a match of length n.
func (um unionMatcher) emit(s string, pos, n int, out []byte) []byte {
	for _, m := range um {
		if m.match(s, pos) == n {
			return m.emit(s, pos, n, out)
		}
	}
	return out
}

func (um unionMatcher) String() string {
	return "(" + joinMatchers([]matcher(um), " | ") + ")"
}

// Union creates a relation which is the union of the given relations.
// At a position the longest match wins; of two matches of equal length the
// one of the earlier relation wins.
func Union(rels ...*Relation) *Relation {
	um := make(unionMatcher, 0, len(rels))
	for _, r := range rels {
		if u, ok := r.m.(unionMatcher); ok {
			um = append(um, u...)
			continue
		}
		um = append(um, r.m)
	}
	return newRelation(um)
}

type concatMatcher []matcher

func (cm concatMatcher) match(s string, pos int) int {
	p := pos
	for _, m := range cm {
		n := m.match(s, p)
		if n < 0 {
			return -1
		}
		p += n
	}
	return p - pos
}

func (cm concatMatcher) emit(s string, pos, n int, out []byte) []byte {
	p := pos
	for _, m := range cm {
		k := m.match(s, p)
		out = m.emit(s, p, k, out)
		p += k
	}
	return out
}

func (cm concatMatcher) String() string {
	return "(" + joinMatchers([]matcher(cm), " · ") + ")"
}

// Concat creates a relation matching the concatenation of the inputs of the
// given relations, producing the concatenation of their outputs. Every operand
// matches greedily; there is no backtracking.
func Concat(rels ...*Relation) *Relation {
	cm := make(concatMatcher, 0, len(rels))
	for _, r := range rels {
		if c, ok := r.m.(concatMatcher); ok {
			cm = append(cm, c...)
			continue
		}
		cm = append(cm, r.m)
	}
	return newRelation(cm)
}

type optionalMatcher struct {
	m matcher
}

func (om optionalMatcher) match(s string, pos int) int {
	if n := om.m.match(s, pos); n >= 0 {
		return n
	}
	return 0
}

func (om optionalMatcher) emit(s string, pos, n int, out []byte) []byte {
	if om.m.match(s, pos) == n {
		return om.m.emit(s, pos, n, out)
	}
	return out
}

func (om optionalMatcher) String() string {
	return fmt.Sprintf("%v?", om.m)
}

// Optional creates a relation which matches r or the empty string.
func Optional(r *Relation) *Relation {
	return newRelation(optionalMatcher{m: r.m})
}

func joinMatchers(ms []matcher, sep string) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}
	return strings.Join(parts, sep)
}
