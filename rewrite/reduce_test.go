package rewrite

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tnorm/charset"
	"github.com/npillmayer/tnorm/ruletable"
)

func mustTable(t *testing.T, name string, pairs ...string) *ruletable.Table {
	t.Helper()
	entries := make([]ruletable.Entry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		entries = append(entries, ruletable.Entry{Input: pairs[i], Output: pairs[i+1]})
	}
	table, err := ruletable.FromEntries(name, entries, true)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestFuse(t *testing.T) {
	f := FromTable(mustTable(t, "f", "a", "b", "c", "")).m.(*tableMatcher)
	g := FromTable(mustTable(t, "g", "b", "x", "d", "y")).m.(*tableMatcher)
	h := fuse(f, g)
	for in, want := range map[string]string{"a": "x", "b": "x", "c": "", "d": "y"} {
		if out, ok := h.lookup(in); !ok || out != want {
			t.Errorf("expected fused table to map %q to %q, have %q/%v", in, want, out, ok)
		}
	}
	c, _ := Compose(PassThrough(newRelation(f)), PassThrough(newRelation(g)))
	seq, _ := c.Apply("abcde")
	fused, _ := PassThrough(newRelation(h)).Apply("abcde")
	if seq != "xxye" || fused != seq {
		t.Errorf("expected 'xxye' for sequential and fused application, have %q and %q", seq, fused)
	}
}

func TestReducePreservesMapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnorm.rewrite")
	defer teardown()
	//
	t2s := mustTable(t, "t2s", "漢", "汉", "語", "语", "幣", "币", "點", "点", "個", "个")
	overrides := mustTable(t, "overrides", "币", "幣", "系", "係")
	idioms := mustTable(t, "idioms", "點五蚊", "個半蚊", "點一蚊", "個一", "蚊", "蚊")
	empty := mustTable(t, "empty")
	c, err := Compose(
		PassThrough(FromTable(t2s)),
		PassThrough(FromTable(overrides)),
		PassThrough(Delete(Literal("啊", "呀"))),
		PassThrough(FromTable(empty)),
		PassThrough(Union(CrossLiteral("港幣", "蚊"), CrossLiteral("港元", "蚊"))),
		PassThrough(FromTable(idioms)),
		PassThrough(InsertAround(Span(charset.Digit), "[", "]")),
	)
	if err != nil {
		t.Fatal(err)
	}
	r := Reduce(c)
	if r.Len() != 4 {
		t.Errorf("expected reduced cascade to have 4 relations, has %d: %v", r.Len(), r)
	}
	inputs := []string{
		"",
		"漢語啊系",
		"五點五蚊",
		"港幣12元呀",
		"一點一蚊同埋點五蚊",
		"abc 123 漢\xff",
		"點五點五蚊蚊",
	}
	for _, in := range inputs {
		want, _ := c.Apply(in)
		have, _ := r.Apply(in)
		if want != have {
			t.Errorf("reduction changed mapping for %q: %q ≠ %q", in, want, have)
		}
	}
}

func TestReduceDropsEmptyRelations(t *testing.T) {
	c, _ := Compose(
		PassThrough(Delete(Literal())),
		PassThrough(Accept(AnyOf(Literal(), Literal("")))),
		PassThrough(Union()),
	)
	if r := Reduce(c); r.Len() != 0 {
		t.Errorf("expected all relations to be dropped, have %v", r)
	}
}

func TestACScanner(t *testing.T) {
	tm := FromTable(mustTable(t, "abc", "a", "1", "ab", "2", "abc", "3", "bc", "4")).m.(*tableMatcher)
	for _, dfa := range []bool{true, false} {
		acs := buildACScanner(tm, dfa)
		if out := string(acs.rewrite("abcabxbcab", nil)); out != "32x42" {
			t.Errorf("dfa=%v: expected leftmost-longest rewrite '32x42', have %q", dfa, out)
		}
	}
}

func TestACScannerOverlappingKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnorm.rewrite")
	defer teardown()
	//
	tables := []*ruletable.Table{
		mustTable(t, "harbour", "港", "A", "港幣", "B", "幣", "C"),
		mustTable(t, "interjections", "啊呀", "", "呀嗯", ""),
		mustTable(t, "chain", "ab", "X", "bc", "Y", "cd", "Z", "d", "W"),
	}
	inputs := []string{"", "港幣幣港", "好啊呀嗯", "啊呀嗯呀嗯", "abcd", "bcdab", "aabbccdd", "漢港幣abcd啊呀"}
	for _, table := range tables {
		tm := FromTable(table).m.(*tableMatcher)
		plain := PassThrough(FromTable(table))
		for _, dfa := range []bool{true, false} {
			acs := buildACScanner(tm, dfa)
			for _, in := range inputs {
				want, _ := plain.Apply(in)
				if out := string(acs.rewrite(in, nil)); out != want {
					t.Errorf("table %s, dfa=%v: expected %q → %q, have %q", table.Name(), dfa, in, want, out)
				}
			}
		}
	}
	acs := newACScanner(FromTable(tables[1]).m.(*tableMatcher))
	if out := string(acs.rewrite("好啊呀嗯", nil)); out != "好嗯" {
		t.Errorf("expected '好嗯', have %q", out)
	}
	acs = newACScanner(FromTable(tables[0]).m.(*tableMatcher))
	if out := string(acs.rewrite("港幣幣港", nil)); out != "BCA" {
		t.Errorf("expected 'BCA', have %q", out)
	}
}
