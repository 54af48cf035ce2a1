/*
Package ruletable loads rule tables, i.e. lists of (input, output) pairs of
symbol sequences, from tabular text sources.

Format

A rule table is UTF-8 text with one record per line. Fields are separated by a
fixed delimiter, a TAB by default. The first field is the input pattern, the second
field (if the table has two fields) is the output pattern:

	# traditional to simplified
	漢	汉
	語	语

Blank lines are skipped. Lines starting with the comment prefix, "# " by default,
are skipped as well. A line consisting of a single "#" is a record, as some
punctuation tables need it.

Tables with a single field are acceptor lists (e.g., a list of interjections to
delete or a character set); every entry maps onto itself.

A record with the wrong number of fields makes loading fail with a
tnorm.MalformedTableError. Records are never silently skipped.

Duplicates

Two records with the same input and the same output are harmless. Two records
with the same input and different outputs are a conflict. In strict mode
(the default) loading fails with a tnorm.DuplicateKeyError. In lenient mode the
later record wins, but the entry keeps the position of its first occurrence.

Tables are immutable after loading and never touch their source again.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ruletable

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tnorm.table'.
func tracer() tracing.Trace {
	return tracing.Select("tnorm.table")
}
