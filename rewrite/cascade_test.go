package rewrite

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tnorm"
)

func TestComposeRequiresWrapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnorm.rewrite")
	defer teardown()
	//
	_, err := Compose(PassThrough(CrossLiteral("a", "b")), CrossLiteral("b", "c").Named("b2c"))
	var comp *tnorm.CompositionError
	if !errors.As(err, &comp) {
		t.Fatalf("expected CompositionError, have %v", err)
	}
	if comp.Rule != "b2c" {
		t.Errorf("expected error to name rule b2c, names %q", comp.Rule)
	}
	var nilrel *Relation
	if _, err = Compose(nilrel); !errors.As(err, &comp) {
		t.Errorf("expected CompositionError for nil rule, have %v", err)
	}
}

func TestCascadeOrder(t *testing.T) {
	a2b := PassThrough(CrossLiteral("a", "b"))
	b2c := PassThrough(CrossLiteral("b", "c"))
	c1, err := Compose(a2b, b2c)
	if err != nil {
		t.Fatal(err)
	}
	if out, _ := c1.Apply("ab"); out != "cc" {
		t.Errorf("expected 'cc', have %q", out)
	}
	c2, _ := Compose(b2c, a2b)
	if out, _ := c2.Apply("ab"); out != "bc" {
		t.Errorf("expected 'bc', have %q", out)
	}
	nested, err := Compose(c1, c2, PassThrough(Insert("")))
	if err != nil {
		t.Fatal(err)
	}
	if nested.Len() != 5 {
		t.Errorf("expected nested cascades to be flattened to 5 relations, have %d", nested.Len())
	}
}

func TestEmptyInput(t *testing.T) {
	c, _ := Compose(
		PassThrough(Insert("x")),
		PassThrough(CrossLiteral("a", "b")),
	)
	for _, cascade := range []*Cascade{c, Reduce(c), {}} {
		if out, err := cascade.Apply(""); err != nil || out != "" {
			t.Errorf("expected empty output for empty input, have %q (%v)", out, err)
		}
	}
}

func TestConcurrentApply(t *testing.T) {
	c, _ := Compose(
		PassThrough(CrossLiteral("漢", "汉")),
		PassThrough(InsertAfter(Literal("汉"), "!")),
	)
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := fmt.Sprintf("%d漢", i)
			want := fmt.Sprintf("%d汉!", i)
			for j := 0; j < 100; j++ {
				if out, _ := c.Apply(in); out != want {
					errs <- fmt.Errorf("expected %q, have %q", want, out)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
