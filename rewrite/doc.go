/*
Package rewrite compiles rule tables and patterns into rewrite relations and
applies them to text.

Relations

A relation maps input symbol sequences to output symbol sequences. Relations are
built from patterns (acceptors on the input side) and from rule tables:

	r := rewrite.FromTable(t2s)                         // every entry of a table
	d := rewrite.Delete(rewrite.Keys(blacklist))        // delete interjections
	c := rewrite.CrossLiteral("港幣", "蚊")              // a single mapping
	i := rewrite.InsertAfter(rewrite.Number(charset.NumeralDigit, charset.DecimalSeparator), "蚊")

Relations may be combined with Union, Concat and Optional. Matching is greedy
and deterministic: at a position the longest match wins, and of two matches of
equal length the one declared earlier wins. Concatenations match every operand
greedily, without backtracking.

Pass-through

Most rules touch only a small part of a text. PassThrough wraps a relation such
that text it does not match is copied to the output unchanged. Only wrapped
relations may be composed into a cascade, otherwise unmatched text would be
silently lost; Compose will return a tnorm.CompositionError instead.

Cascades

Compose creates the sequential composition of rules, where every rule works on
the output of its predecessor. Reduce transforms a cascade into an equivalent
one which is faster to apply: consecutive character mappings are fused and
literal tables are compiled into Aho-Corasick automata.

Relations and cascades are immutable and may be applied concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rewrite

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tnorm.rewrite'.
func tracer() tracing.Trace {
	return tracing.Select("tnorm.rewrite")
}
