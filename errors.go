package tnorm

import (
	"fmt"
)

// MalformedTableError is returned when a record of a rule table cannot be split
// into the expected number of fields. Loading a table aborts on the first
// malformed record; no partially loaded table is ever returned.
type MalformedTableError struct {
	Source string // name of the table source, may be empty
	Line   int    // line number of the record, starting at 1
	Have   int    // number of fields found
	Want   int    // number of fields expected
}

func (e *MalformedTableError) Error() string {
	return fmt.Sprintf("malformed rule table %s, line %d: have %d fields, want %d",
		sourceName(e.Source), e.Line, e.Have, e.Want)
}

// DuplicateKeyError is returned by strict table loading if the same input
// sequence appears twice with conflicting outputs.
type DuplicateKeyError struct {
	Source string // name of the table source, may be empty
	Line   int    // line number of the offending record
	Key    string // input sequence
	Prev   string // output of the earlier record
	Output string // output of the offending record
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("rule table %s, line %d: duplicate input %q maps to %q and %q",
		sourceName(e.Source), e.Line, e.Key, e.Prev, e.Output)
}

// UnrepresentableInputError is returned when an input string contains a
// symbol outside of a pipeline's alphabet, or is not valid UTF-8.
// Offset is the byte offset of the symbol within the input.
type UnrepresentableInputError struct {
	Offset int
	Symbol rune // utf8.RuneError for invalid UTF-8
	Bytes  []byte
}

func (e *UnrepresentableInputError) Error() string {
	if e.Symbol == 0xfffd && len(e.Bytes) == 1 {
		return fmt.Sprintf("input not representable: invalid UTF-8 byte %#02x at offset %d",
			e.Bytes[0], e.Offset)
	}
	return fmt.Sprintf("input not representable: symbol %#U at offset %d not in alphabet",
		e.Symbol, e.Offset)
}

// CompositionError signals that a rule cannot take part in sequential
// composition, e.g. because it is not pass-through wrapped. This is always
// a programming error on the side of whoever assembled the rule.
type CompositionError struct {
	Rule   string // name of the rule or stage
	Reason string
}

// NewCompositionError creates a CompositionError and traces it.
func NewCompositionError(rule, reason string) *CompositionError {
	tracer().Errorf("cannot compose %s: %s", rule, reason)
	return &CompositionError{Rule: rule, Reason: reason}
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("cannot compose rule %s: %s", e.Rule, e.Reason)
}

func sourceName(s string) string {
	if s == "" {
		return "<input>"
	}
	return fmt.Sprintf("%q", s)
}
