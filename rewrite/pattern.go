package rewrite

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/tnorm/charset"
	"github.com/npillmayer/tnorm/ruletable"
)

// Pattern is an acceptor for symbol sequences. Patterns are the input side of
// rewrite relations.
//
// At a given position, a pattern either does not match or matches a unique,
// longest prefix of the remaining input.
type Pattern interface {
	fmt.Stringer
	// match returns the byte length of the longest match of the pattern at
	// position pos of s, or -1.
	match(s string, pos int) int
}

// --- Literals --------------------------------------------------------------

type literalPattern struct {
	t    *trie
	strs []string // in order of declaration, without duplicates
}

// Literal creates a pattern matching any of the given strings. The empty
// string is ignored.
func Literal(strs ...string) Pattern {
	p := &literalPattern{t: &trie{}}
	for _, s := range strs {
		if s == "" {
			continue
		}
		if p.t.insert(s, len(p.strs)) {
			p.strs = append(p.strs, s)
		}
	}
	return p
}

// Keys creates a pattern matching the inputs of a rule table.
func Keys(table *ruletable.Table) Pattern {
	return Literal(table.Keys()...)
}

func (p *literalPattern) match(s string, pos int) int {
	n, _ := p.t.longest(s, pos)
	return n
}

func (p *literalPattern) String() string {
	if len(p.strs) <= 3 {
		return fmt.Sprintf("%q", p.strs)
	}
	return fmt.Sprintf("literal[%d]", len(p.strs))
}

// --- Character classes -----------------------------------------------------

type classPattern struct {
	set charset.Set
}

// Class creates a pattern matching exactly one symbol of a set.
func Class(set charset.Set) Pattern {
	return classPattern{set: set}
}

func (p classPattern) match(s string, pos int) int {
	if pos >= len(s) {
		return -1
	}
	r, size := utf8.DecodeRuneInString(s[pos:])
	if r == utf8.RuneError && size <= 1 {
		return -1
	}
	if p.set.Contains(r) {
		return size
	}
	return -1
}

func (p classPattern) String() string {
	return fmt.Sprintf("[%v]", p.set)
}

type spanPattern struct {
	set charset.Set
}

// Span creates a pattern matching a maximal, non-empty run of symbols of a set.
func Span(set charset.Set) Pattern {
	return spanPattern{set: set}
}

func (p spanPattern) match(s string, pos int) int {
	i := pos
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size <= 1) || !p.set.Contains(r) {
			break
		}
		i += size
	}
	if i == pos {
		return -1
	}
	return i - pos
}

func (p spanPattern) String() string {
	return fmt.Sprintf("[%v]+", p.set)
}

type numberPattern struct {
	digits    spanPattern
	separator classPattern
}

// Number creates a pattern matching a run of digits, possibly divided into
// groups by single separators, e.g. "1,000.5" or "五點五". A separator is
// part of the match only if a digit follows it, thus a trailing comma or
// full stop is left to the text.
func Number(digits, separators charset.Set) Pattern {
	return numberPattern{digits: spanPattern{set: digits}, separator: classPattern{set: separators}}
}

func (p numberPattern) match(s string, pos int) int {
	n := p.digits.match(s, pos)
	if n < 0 {
		return -1
	}
	i := pos + n
	for i < len(s) {
		sep := p.separator.match(s, i)
		if sep < 0 {
			break
		}
		group := p.digits.match(s, i+sep)
		if group < 0 {
			break
		}
		i += sep + group
	}
	return i - pos
}

func (p numberPattern) String() string {
	return fmt.Sprintf("[%v]+([%v][%v]+)*", p.digits.set, p.separator.set, p.digits.set)
}

// --- Alternatives ----------------------------------------------------------

type anyOfPattern []Pattern

// AnyOf creates a pattern matching if any of the given patterns matches.
// The longest match wins.
func AnyOf(patterns ...Pattern) Pattern {
	return anyOfPattern(patterns)
}

func (ps anyOfPattern) match(s string, pos int) int {
	longest := -1
	for _, p := range ps {
		if n := p.match(s, pos); n > longest {
			longest = n
		}
	}
	return longest
}

func (ps anyOfPattern) String() string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, "|")
}
