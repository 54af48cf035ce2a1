package charset

import (
	"golang.org/x/text/width"

	"github.com/npillmayer/tnorm/ruletable"
)

// Full-width characters live in two blocks: U+3000 IDEOGRAPHIC SPACE and the
// Halfwidth and Fullwidth Forms block.
var fullwidthBlocks = [...][2]rune{
	{0x3000, 0x3000},
	{0xff00, 0xffef},
}

// IsFullwidth is true if r has East Asian Width property F and a half-width
// counterpart.
func IsFullwidth(r rune) bool {
	p := width.LookupRune(r)
	return p.Kind() == width.EastAsianFullwidth && p.Narrow() != 0 && p.Narrow() != r
}

// Fullwidth contains every full-width character with a half-width
// counterpart.
var Fullwidth = fullwidthSet()

func fullwidthSet() *RangeSet {
	rtc := &rangeTableCollector{}
	for _, block := range fullwidthBlocks {
		for r := block[0]; r <= block[1]; r++ {
			if IsFullwidth(r) {
				rtc.Append(r, r)
			}
		}
	}
	return (&RangeSet{table: rtc.RangeTable()}).Named("Fullwidth")
}

// FullwidthToHalfwidth derives a rule table mapping full-width characters to
// their half-width counterparts, e.g. '＄' → '$' or U+3000 → ' '.
// It serves as a fallback if no width table is provided by the client.
func FullwidthToHalfwidth() *ruletable.Table {
	var entries []ruletable.Entry
	for _, block := range fullwidthBlocks {
		for r := block[0]; r <= block[1]; r++ {
			if IsFullwidth(r) {
				entries = append(entries, ruletable.Entry{
					Input:  string(r),
					Output: string(width.LookupRune(r).Narrow()),
				})
			}
		}
	}
	table, err := ruletable.FromEntries("fullwidth-to-halfwidth", entries, true)
	if err != nil { // cannot happen, every input is distinct
		panic(err)
	}
	tracer().Debugf("derived full-width table with %d entries", table.Len())
	return table
}
