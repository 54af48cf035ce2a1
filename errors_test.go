package tnorm

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	var err error = &MalformedTableError{Source: "blacklist.tsv", Line: 3, Have: 3, Want: 2}
	if !strings.Contains(err.Error(), `"blacklist.tsv", line 3`) {
		t.Errorf("unexpected message %q", err.Error())
	}
	err = &UnrepresentableInputError{Offset: 4, Symbol: 0xfffd, Bytes: []byte{0xff}}
	if !strings.Contains(err.Error(), "0xff at offset 4") {
		t.Errorf("unexpected message %q", err.Error())
	}
	err = &UnrepresentableInputError{Offset: 0, Symbol: 'x', Bytes: []byte{'x'}}
	if !strings.Contains(err.Error(), "U+0078") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("loading tables: %w", &DuplicateKeyError{Key: "a", Prev: "b", Output: "c"})
	var dup *DuplicateKeyError
	if !errors.As(wrapped, &dup) {
		t.Fatalf("expected wrapped error to be a DuplicateKeyError")
	}
	if dup.Key != "a" {
		t.Errorf("expected key 'a', have %q", dup.Key)
	}
	var comp *CompositionError
	if errors.As(wrapped, &comp) {
		t.Errorf("DuplicateKeyError must not match CompositionError")
	}
	if NewCompositionError("x", "not wrapped").Rule != "x" {
		t.Errorf("composition error lost its rule name")
	}
}
