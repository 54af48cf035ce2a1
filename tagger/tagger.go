/*
Package tagger marks spans of text with machine-readable tags, without altering
the marked text.

A tagger encloses every maximal match of a pattern in a pair of markers:

	t := tagger.New("oov", rewrite.Span(unknown))
	t.Relation().Apply("好𪚥嘢")   // → "好<oov>𪚥</oov>嘢"

Tagged text may be inspected with Spans and reverted with Strip. Tags are
plain text: text which already contains the markers is not escaped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tagger

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tnorm/rewrite"
)

// tracer traces with key 'tnorm.tagger'.
func tracer() tracing.Trace {
	return tracing.Select("tnorm.tagger")
}

// Tagger encloses matches of a pattern in tag markers.
type Tagger struct {
	tag      string
	open     string
	close    string
	relation *rewrite.Relation
}

// New creates a tagger for a tag name and a pattern.
func New(tag string, p rewrite.Pattern) *Tagger {
	t := &Tagger{
		tag:   tag,
		open:  "<" + tag + ">",
		close: "</" + tag + ">",
	}
	t.relation = rewrite.PassThrough(rewrite.InsertAround(p, t.open, t.close)).Named("tag-" + tag)
	tracer().Debugf("tagger %s for %v", tag, p)
	return t
}

// Tag returns the tag name.
func (t *Tagger) Tag() string {
	return t.tag
}

// Markers returns the opening and closing markers, e.g. "<oov>" and "</oov>".
func (t *Tagger) Markers() (string, string) {
	return t.open, t.close
}

// Relation returns the pass-through wrapped relation which inserts the tag
// markers.
func (t *Tagger) Relation() *rewrite.Relation {
	return t.relation
}

// Apply tags a text.
func (t *Tagger) Apply(text string) string {
	out, _ := t.relation.Apply(text) // wrapped relations never fail
	return out
}

// Span is a tagged span of a text.
type Span struct {
	Text       string // text enclosed in the markers
	Start, End int    // byte offsets of the enclosed text within the tagged text
}

func (s Span) String() string {
	return fmt.Sprintf("[%d:%d]%q", s.Start, s.End, s.Text)
}

// Spans extracts the tagged spans of a text. An opening marker without a
// matching closing marker is ignored.
func (t *Tagger) Spans(text string) []Span {
	var spans []Span
	pos := 0
	for {
		i := strings.Index(text[pos:], t.open)
		if i < 0 {
			break
		}
		start := pos + i + len(t.open)
		j := strings.Index(text[start:], t.close)
		if j < 0 {
			break
		}
		end := start + j
		spans = append(spans, Span{Text: text[start:end], Start: start, End: end})
		pos = end + len(t.close)
	}
	return spans
}

// Strip removes all tag markers from a text.
func (t *Tagger) Strip(text string) string {
	return strings.NewReplacer(t.open, "", t.close, "").Replace(text)
}
