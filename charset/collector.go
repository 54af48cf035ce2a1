package charset

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/tnorm/ruletable"
)

// FromTable creates a set from the inputs of a rule table. Tables used as
// character sets list one character per record; inputs consisting of more than
// one character are ignored.
func FromTable(table *ruletable.Table) *RangeSet {
	runes := make([]rune, 0, table.Len())
	skipped := 0
	for _, key := range table.Keys() {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) || r == utf8.RuneError {
			skipped++
			continue
		}
		runes = append(runes, r)
	}
	if skipped > 0 {
		tracer().Infof("charset from %s: ignoring %d multi-character entries", table.Name(), skipped)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	rtc := &rangeTableCollector{}
	for _, r := range runes {
		rtc.Append(r, r)
	}
	rs := &RangeSet{name: table.Name(), table: rtc.RangeTable()}
	tracer().Debugf("charset %s: %d characters in %d ranges", table.Name(), len(runes), rtc.Len())
	return rs
}

// rangeTableCollector collects character ranges and assembles them into a
// unicode.RangeTable. Ranges have to be appended in ascending order.
type rangeTableCollector struct {
	ranges  [][2]rune
	lo, hi  rune // low and high bound of current range
	started bool
}

// Append a range of runes to a range table collector. A single
// character is denoted by l == r.
func (rtc *rangeTableCollector) Append(l, r rune) {
	if rtc.started && l <= rtc.hi+1 {
		if r > rtc.hi {
			rtc.hi = r // range extends previous range
		}
		return
	}
	if rtc.started {
		rtc.ranges = append(rtc.ranges, [2]rune{rtc.lo, rtc.hi})
	}
	rtc.lo, rtc.hi, rtc.started = l, r, true
}

// Len returns the number of ranges collected so far.
func (rtc *rangeTableCollector) Len() int {
	if rtc.started {
		return len(rtc.ranges) + 1
	}
	return 0
}

// RangeTable creates a range table from the collected ranges.
// Ranges crossing the 16-bit boundary are split.
func (rtc *rangeTableCollector) RangeTable() *unicode.RangeTable {
	ranges := rtc.ranges
	if rtc.started {
		ranges = append(ranges[:len(ranges):len(ranges)], [2]rune{rtc.lo, rtc.hi})
	}
	rt := &unicode.RangeTable{}
	for _, rg := range ranges {
		lo, hi := rg[0], rg[1]
		if lo <= 0xffff {
			h16 := hi
			if h16 > 0xffff {
				h16 = 0xffff
			}
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(lo), Hi: uint16(h16), Stride: 1})
			if h16 <= unicode.MaxLatin1 {
				rt.LatinOffset++
			}
			lo = 0x10000
		}
		if hi >= lo {
			rt.R32 = append(rt.R32, unicode.Range32{Lo: uint32(lo), Hi: uint32(hi), Stride: 1})
		}
	}
	return rt
}
