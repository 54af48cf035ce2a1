/*
Package charset provides sets of symbols (Unicode code points) for rewrite rules
and for the alphabet a pipeline accepts.

Sets are mostly backed by Unicode range tables. They are created from range
tables, from lists of runes or from the single-character entries of a rule table.
Sets may be combined by union and difference.

The predefined classes form the generic alphabet of the rewrite engine:

	Digit    ASCII digits 0–9
	Alpha    ASCII letters
	Punct    ASCII punctuation
	Space    ASCII white space and no-break space
	VChar    every valid Unicode scalar value
	NumeralDigit      digits in any width and Chinese numerals
	DecimalSeparator  comma and full stop in any width
	Numeral           NumeralDigit and DecimalSeparator

Full-width to half-width mappings are derived from the East Asian Width property
(UAX #11, see https://www.unicode.org/reports/tr11/) as provided by
golang.org/x/text/width.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package charset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tnorm.charset'.
func tracer() tracing.Trace {
	return tracing.Select("tnorm.charset")
}
