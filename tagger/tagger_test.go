package tagger

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tnorm/charset"
	"github.com/npillmayer/tnorm/rewrite"
)

func TestTagOOV(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnorm.tagger")
	defer teardown()
	//
	known := charset.Union(charset.FromString("好嘢食"), charset.Space, charset.Punct)
	tg := New("oov", rewrite.Span(charset.Not(known)))
	out := tg.Apply("好𪚥嘢 好食")
	if out != "好<oov>𪚥</oov>嘢 好食" {
		t.Errorf("unexpected tagging result %q", out)
	}
	if tg.Apply("好嘢") != "好嘢" {
		t.Errorf("text without unknown symbols must not be changed")
	}
	if tg.Apply("") != "" {
		t.Errorf("empty text must stay empty")
	}
	if tg.Strip(out) != "好𪚥嘢 好食" {
		t.Errorf("stripping markers should restore the text, have %q", tg.Strip(out))
	}
}

func TestSpans(t *testing.T) {
	tg := New("num", rewrite.Span(charset.Digit))
	tagged := tg.Apply("a12b3")
	spans := tg.Spans(tagged)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, have %v", spans)
	}
	if spans[0].Text != "12" || tagged[spans[0].Start:spans[0].End] != "12" {
		t.Errorf("unexpected first span %v", spans[0])
	}
	if spans[1].Text != "3" {
		t.Errorf("unexpected second span %v", spans[1])
	}
	if open, close := tg.Markers(); open != "<num>" || close != "</num>" {
		t.Errorf("unexpected markers %q %q", open, close)
	}
	if len(tg.Spans("<num>7")) != 0 {
		t.Errorf("unterminated marker must be ignored")
	}
}
