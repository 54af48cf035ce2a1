package ruletable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/tnorm"
)

// --- Line level scanner ----------------------------------------------------

// scannerToken is a type for communicating between the line-level scanner and the
// loader. The scanner will read lines and wrap their content into tokens.
type scannerToken struct {
	LineNo    int              // line of the record within the input source
	TokenType scannerTokenType // type of token
	Fields    []string         // UTF-8 content of the fields
	Error     error            // error condition, if any
}

type scannerTokenType int8

const (
	undefined scannerTokenType = iota
	blankLine
	commentLine
	record
)

func (token *scannerToken) String() string {
	return fmt.Sprintf("token[line %d type=%d %#v]", token.LineNo, token.TokenType, token.Fields)
}

// Field gets field #i (1…n) from the current record.
func (token *scannerToken) Field(i int) string {
	if len(token.Fields) > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// scanner is a type for a line-level scanner.
//
// The scanner operates by calling scanning steps in a chain, iteratively.
// Each step function inspects the current line and then possibly branches out to a
// subsequent step function.
type scanner struct {
	lines     *bufio.Scanner
	conf      *options
	line      string        // current line, without line ending
	lineNo    int           // current line number
	Token     *scannerToken // last token produced by scanner
	LastError error         // last error, if any
}

// A scanner step will return the next step in the chain, or nil to stop/accept.
type scannerStep func(*scannerToken) (*scannerToken, scannerStep)

// maxLineLength is the longest record a table may contain.
const maxLineLength = 1024 * 1024

func newScanner(r io.Reader, conf *options) (*scanner, error) {
	if r == nil {
		return nil, errors.New("no input present")
	}
	sc := &scanner{
		lines: bufio.NewScanner(r),
		conf:  conf,
	}
	sc.lines.Buffer(make([]byte, 0, 4096), maxLineLength)
	return sc, nil
}

// Next is called to receive the next line-level token.
//
// Next will iterate over a chain of step functions until it reaches an
// accepting state. Acceptance is signalled by getting a nil-step return value from a
// step function. If a step function returns an error-signalling token, the
// scanner stops and Next returns false.
func (sc *scanner) Next() bool {
	if !sc.lines.Scan() {
		if err := sc.lines.Err(); err != nil {
			sc.LastError = fmt.Errorf("reading rule table %s: %w", sc.conf.source, err)
		}
		return false
	}
	sc.lineNo++
	sc.line = strings.TrimSuffix(sc.lines.Text(), "\r")
	sc.Token = &scannerToken{LineNo: sc.lineNo}
	var step scannerStep = sc.ScanLineStart
	for step != nil {
		sc.Token, step = step(sc.Token)
	}
	if sc.Token.Error != nil {
		sc.LastError = sc.Token.Error
		return false
	}
	return true
}

// ScanLineStart is always the first step function to call for a line.
//
//    line start:
//      -> white space only: blankLine
//      -> comment prefix:   commentLine
//      -> other:            ScanFields
//
func (sc *scanner) ScanLineStart(token *scannerToken) (*scannerToken, scannerStep) {
	if sc.lineNo == 1 {
		sc.line = strings.TrimPrefix(sc.line, "\uFEFF") // byte order mark
	}
	if strings.TrimSpace(sc.line) == "" {
		token.TokenType = blankLine
		return token, nil
	}
	if sc.conf.comment != "" && strings.HasPrefix(sc.line, sc.conf.comment) {
		token.TokenType = commentLine
		return token, nil
	}
	return token, sc.ScanFields
}

// ScanFields splits a record into its fields and checks the field count.
func (sc *scanner) ScanFields(token *scannerToken) (*scannerToken, scannerStep) {
	token.TokenType = record
	token.Fields = strings.Split(sc.line, sc.conf.delimiter)
	if len(token.Fields) != sc.conf.fields {
		token.Error = &tnorm.MalformedTableError{
			Source: sc.conf.source,
			Line:   token.LineNo,
			Have:   len(token.Fields),
			Want:   sc.conf.fields,
		}
		tracer().Errorf(token.Error.Error())
	}
	return token, nil
}

// parse iterates over each line of the table source and calls f on every record.
func parse(r io.Reader, conf *options, f func(token *scannerToken)) error {
	sc, err := newScanner(r, conf)
	if err != nil {
		return err
	}
	for sc.Next() {
		if sc.Token.TokenType == record {
			f(sc.Token)
		}
	}
	return sc.LastError
}
