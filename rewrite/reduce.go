package rewrite

import (
	"fmt"
	"sort"
	"unicode/utf8"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// Reduce returns a cascade which computes the same mapping as c, but is
// cheaper to apply repeatedly:
//
// ▪︎ relations which never match are dropped,
//
// ▪︎ relations which consist of literals only are converted into tables,
//
// ▪︎ runs of consecutive tables mapping single symbols are fused into one table,
//
// ▪︎ tables are compiled into Aho-Corasick automata, scanning the input in
// one pass with leftmost-longest semantics.
//
// Reduce is intended to be called once, after a cascade has been built.
func Reduce(c *Cascade) *Cascade {
	rels := make([]*Relation, 0, len(c.rules))
	for _, r := range c.rules {
		if isEmpty(r.m) {
			tracer().Debugf("reduce: dropping empty relation %v", r)
			continue
		}
		if tm, ok := literalTable(r.m); ok && tm != r.m {
			r = &Relation{m: tm, name: r.name, wrapped: true}
		}
		rels = append(rels, r)
	}
	rels = fuseSymbolMaps(rels)
	for i, r := range rels {
		if tm, ok := r.m.(*tableMatcher); ok {
			rels[i] = &Relation{m: tm, name: r.name, wrapped: true, ac: newACScanner(tm)}
		}
	}
	tracer().Infof("reduced cascade of %d relations to %d", len(c.rules), len(rels))
	return &Cascade{rules: rels}
}

// isEmpty is true for matchers which cannot match anything.
func isEmpty(m matcher) bool {
	switch x := m.(type) {
	case *tableMatcher:
		return len(x.keys) == 0
	case crossMatcher:
		return isEmptyPattern(x.p)
	case acceptMatcher:
		return isEmptyPattern(x.p)
	case unionMatcher:
		for _, op := range x {
			if !isEmpty(op) {
				return false
			}
		}
		return true
	}
	return false
}

func isEmptyPattern(p Pattern) bool {
	switch x := p.(type) {
	case *literalPattern:
		return len(x.strs) == 0
	case anyOfPattern:
		for _, q := range x {
			if !isEmptyPattern(q) {
				return false
			}
		}
		return true
	}
	return false
}

// literalTable converts a matcher consisting of literals only into a table
// matcher. Unions are converted if every operand is convertible; for keys
// occurring in more than one operand the earlier operand wins.
func literalTable(m matcher) (*tableMatcher, bool) {
	switch x := m.(type) {
	case *tableMatcher:
		return x, true
	case crossMatcher:
		if lit, ok := x.p.(*literalPattern); ok {
			tm := newTableMatcher("")
			for _, s := range lit.strs {
				tm.add(s, x.output)
			}
			return tm, true
		}
	case acceptMatcher:
		if lit, ok := x.p.(*literalPattern); ok {
			tm := newTableMatcher("")
			for _, s := range lit.strs {
				tm.add(s, s)
			}
			return tm, true
		}
	case unionMatcher:
		tm := newTableMatcher("")
		for _, op := range x {
			optable, ok := literalTable(op)
			if !ok {
				return nil, false
			}
			for i, key := range optable.keys {
				tm.add(key, optable.outputs[i])
			}
		}
		return tm, true
	}
	return nil, false
}

// --- Fusion of symbol maps -------------------------------------------------

// isSymbolMap is true for tables where every key is a single symbol.
func isSymbolMap(tm *tableMatcher) bool {
	for _, key := range tm.keys {
		if r, size := utf8.DecodeRuneInString(key); size != len(key) || r == utf8.RuneError {
			return false
		}
	}
	return true
}

// fuseSymbolMaps replaces runs of consecutive symbol maps by a single table.
func fuseSymbolMaps(rels []*Relation) []*Relation {
	fused := make([]*Relation, 0, len(rels))
	for _, r := range rels {
		tm, ok := r.m.(*tableMatcher)
		if !ok || !isSymbolMap(tm) || len(fused) == 0 {
			fused = append(fused, r)
			continue
		}
		last := fused[len(fused)-1]
		prev, ok := last.m.(*tableMatcher)
		if !ok || !isSymbolMap(prev) {
			fused = append(fused, r)
			continue
		}
		h := fuse(prev, tm)
		tracer().Debugf("reduce: fusing %v and %v into %v", prev, tm, h)
		fused[len(fused)-1] = &Relation{m: h, name: fusedName(last.name, r.name), wrapped: true}
	}
	return fused
}

// fuse computes the table h = g ∘ f of two symbol maps:
// h(x) = g*(f(x)) for x in dom(f), and h(x) = g(x) for x in dom(g) \ dom(f),
// where g* applies g to every symbol of a string, copying unmapped symbols.
func fuse(f, g *tableMatcher) *tableMatcher {
	h := newTableMatcher(fusedName(f.name, g.name))
	for i, key := range f.keys {
		h.add(key, mapSymbols(g, f.outputs[i]))
	}
	for i, key := range g.keys {
		if _, inF := f.lookup(key); !inF {
			h.add(key, g.outputs[i])
		}
	}
	return h
}

func mapSymbols(g *tableMatcher, s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		if mapped, ok := g.lookup(s[i : i+size]); ok {
			out = append(out, mapped...)
		} else {
			out = append(out, s[i:i+size]...)
		}
		i += size
	}
	return string(out)
}

func fusedName(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + "+" + b
}

// --- Aho-Corasick scanning -------------------------------------------------

// Tables with more entries than this use the NFA variant of the automaton,
// which is slower, but considerably smaller.
const maxDFAEntries = 2048

// acScanner rewrites a text with a table in a single pass of an Aho-Corasick
// automaton. The automaton reports where keys occur, possibly overlapping;
// the table's trie then selects the longest key at the leftmost occurrence
// not covered by a previous match.
type acScanner struct {
	ac ahocorasick.AhoCorasick
	tm *tableMatcher
}

func newACScanner(tm *tableMatcher) *acScanner {
	return buildACScanner(tm, len(tm.keys) <= maxDFAEntries)
}

func buildACScanner(tm *tableMatcher, dfa bool) *acScanner {
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: false,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
		DFA:                  dfa,
	})
	return &acScanner{
		ac: builder.Build(tm.keys),
		tm: tm,
	}
}

func (acs *acScanner) rewrite(s string, out []byte) []byte {
	matches := acs.ac.FindAll(s)
	starts := make([]int, 0, len(matches))
	for _, m := range matches {
		starts = append(starts, m.Start())
	}
	sort.Ints(starts)
	pos := 0
	for _, start := range starts {
		if start < pos {
			continue // inside the previous match
		}
		n := acs.tm.match(s, start)
		if n <= 0 {
			continue
		}
		out = append(out, s[pos:start]...)
		out = acs.tm.emit(s, start, n, out)
		pos = start + n
	}
	return append(out, s[pos:]...)
}

func (acs *acScanner) String() string {
	return fmt.Sprintf("aho-corasick[%d]", len(acs.tm.keys))
}
