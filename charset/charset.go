package charset

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Set is a set of symbols.
type Set interface {
	Contains(r rune) bool
}

// RangeSet is a set of symbols backed by a Unicode range table.
type RangeSet struct {
	name  string
	table *unicode.RangeTable
}

// Contains is part of interface Set.
func (s *RangeSet) Contains(r rune) bool {
	if s == nil || s.table == nil {
		return false
	}
	return unicode.Is(s.table, r)
}

// RangeTable returns the range table backing s.
func (s *RangeSet) RangeTable() *unicode.RangeTable {
	return s.table
}

// Named returns a copy of s with a name, used for tracing.
func (s *RangeSet) Named(name string) *RangeSet {
	return &RangeSet{name: name, table: s.table}
}

func (s *RangeSet) String() string {
	if s.name != "" {
		return s.name
	}
	return fmt.Sprintf("charset[%d+%d ranges]", len(s.table.R16), len(s.table.R32))
}

// FromRanges creates a set from one or more range tables.
func FromRanges(tables ...*unicode.RangeTable) *RangeSet {
	switch len(tables) {
	case 0:
		return &RangeSet{table: &unicode.RangeTable{}}
	case 1:
		return &RangeSet{table: tables[0]}
	}
	return &RangeSet{table: rangetable.Merge(tables...)}
}

// FromRunes creates a set from a list of runes.
func FromRunes(runes ...rune) *RangeSet {
	return &RangeSet{table: rangetable.New(runes...)}
}

// FromString creates a set from the runes of a string.
func FromString(s string) *RangeSet {
	return FromRunes([]rune(s)...)
}

// --- Set algebra -----------------------------------------------------------

type unionSet []Set

func (u unionSet) Contains(r rune) bool {
	for _, s := range u {
		if s.Contains(r) {
			return true
		}
	}
	return false
}

func (u unionSet) String() string {
	names := make([]string, len(u))
	for i, s := range u {
		names[i] = fmt.Sprint(s)
	}
	return strings.Join(names, "∪")
}

// Union returns a set containing every symbol of any of the given sets.
// If all the sets are range sets, the result is a range set as well.
func Union(sets ...Set) Set {
	tables := make([]*unicode.RangeTable, 0, len(sets))
	for _, s := range sets {
		rs, ok := s.(*RangeSet)
		if !ok {
			return unionSet(sets)
		}
		tables = append(tables, rs.table)
	}
	return FromRanges(tables...)
}

type differenceSet struct {
	universe, excluded Set
}

func (d differenceSet) Contains(r rune) bool {
	return d.universe.Contains(r) && !d.excluded.Contains(r)
}

func (d differenceSet) String() string {
	return fmt.Sprintf("%v∖%v", d.universe, d.excluded)
}

// Difference returns the set of symbols of universe which are not in excluded.
func Difference(universe, excluded Set) Set {
	return differenceSet{universe: universe, excluded: excluded}
}

// Not returns the complement of s with respect to VChar.
func Not(s Set) Set {
	return Difference(VChar, s)
}

// --- Predefined classes ----------------------------------------------------

// Digit contains the ASCII digits.
var Digit = FromRanges(&unicode.RangeTable{
	R16:         []unicode.Range16{{Lo: '0', Hi: '9', Stride: 1}},
	LatinOffset: 1,
}).Named("Digit")

// Alpha contains the ASCII letters.
var Alpha = FromRanges(&unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 'A', Hi: 'Z', Stride: 1},
		{Lo: 'a', Hi: 'z', Stride: 1},
	},
	LatinOffset: 2,
}).Named("Alpha")

// Punct contains the ASCII punctuation characters.
var Punct = FromRanges(&unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: '!', Hi: '/', Stride: 1},
		{Lo: ':', Hi: '@', Stride: 1},
		{Lo: '[', Hi: '`', Stride: 1},
		{Lo: '{', Hi: '~', Stride: 1},
	},
	LatinOffset: 4,
}).Named("Punct")

// Space contains ASCII white space and U+00A0 NO-BREAK SPACE.
var Space = FromRanges(&unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: '\t', Hi: '\r', Stride: 1},
		{Lo: ' ', Hi: ' ', Stride: 1},
		{Lo: 0xa0, Hi: 0xa0, Stride: 1},
	},
	LatinOffset: 3,
}).Named("Space")

// VChar contains every valid Unicode scalar value, i.e. every code point
// except surrogates.
var VChar = FromRanges(&unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0000, Hi: 0xd7ff, Stride: 1},
		{Lo: 0xe000, Hi: 0xffff, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: unicode.MaxRune, Stride: 1},
	},
}).Named("VChar")

// ChineseNumerals contains the characters used to spell out numbers in Chinese
// script, in both simplified and traditional form.
const ChineseNumerals = "〇零一二三四五六七八九十百千萬万億亿兩两點点"

// NumeralDigit contains the digits of a number: digits in ASCII and
// full-width form and Chinese numerals.
var NumeralDigit = FromRanges(
	Digit.table,
	&unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0xff10, Hi: 0xff19, Stride: 1}, // FULLWIDTH DIGIT ZERO…NINE
		},
	},
	rangetable.New([]rune(ChineseNumerals)...),
).Named("NumeralDigit")

// DecimalSeparator contains the symbols separating groups of digits or the
// fractional part of a number, in ASCII and full-width form.
var DecimalSeparator = FromRunes(',', '.', 0xff0c, 0xff0e).Named("DecimalSeparator")

// Numeral contains the symbols a number may be composed of: digits in
// ASCII and full-width form, decimal separators and Chinese numerals.
var Numeral = FromRanges(
	NumeralDigit.table,
	DecimalSeparator.table,
).Named("Numeral")
