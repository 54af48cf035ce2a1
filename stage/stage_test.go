package stage

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tnorm"
	"github.com/npillmayer/tnorm/rewrite"
)

func TestStageWrapsRelations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnorm.stage")
	defer teardown()
	//
	s, err := New("names", true,
		rewrite.CrossLiteral("港幣", "蚊"),
		rewrite.CrossLiteral("美元", "蚊"),
	)
	if err != nil {
		t.Fatal(err)
	}
	out, err := s.Apply("五百港幣同十美元")
	if err != nil {
		t.Fatal(err)
	}
	if out != "五百蚊同十蚊" {
		t.Errorf("expected unmatched text to pass through, have %q", out)
	}
	if s.Name() != "names" || !s.Enabled() || s.Rule().Len() != 2 {
		t.Errorf("unexpected stage %v", s)
	}
}

func TestFromRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnorm.stage")
	defer teardown()
	//
	_, err := FromRule("bad", true, rewrite.CrossLiteral("a", "b"))
	var comp *tnorm.CompositionError
	if !errors.As(err, &comp) {
		t.Fatalf("expected CompositionError for unwrapped rule, have %v", err)
	}
	if comp.Rule != "bad" {
		t.Errorf("expected error to name stage 'bad', names %q", comp.Rule)
	}
	s, err := FromRule("good", false, rewrite.PassThrough(rewrite.CrossLiteral("a", "b")))
	if err != nil {
		t.Fatal(err)
	}
	if s.Enabled() {
		t.Errorf("stage should be disabled")
	}
	if out, _ := s.Apply("cab"); out != "cbb" {
		t.Errorf("disabled stage should still apply on its own, have %q", out)
	}
	if _, err = New("nil", true, nil); !errors.As(err, &comp) {
		t.Errorf("expected CompositionError for nil relation, have %v", err)
	}
}

func TestMust(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Must to panic on error")
		}
	}()
	Must(FromRule("bad", true, rewrite.CrossLiteral("a", "b")))
}
