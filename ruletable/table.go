package ruletable

import (
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/tnorm"
)

// Entry is a single rule: a mapping from an input sequence to an output
// sequence. For acceptor tables Output equals Input. An empty Output denotes
// deletion.
type Entry struct {
	Input  string
	Output string
	Line   int // line number within the table source, 0 if not loaded from text
}

func (e Entry) String() string {
	return fmt.Sprintf("%q→%q", e.Input, e.Output)
}

// Table is an ordered, immutable collection of rule entries, keyed by input.
type Table struct {
	name    string
	entries *linkedhashmap.Map // string → Entry, in order of first occurrence
}

// Name returns the name of the table source, if known.
func (t *Table) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Len returns the number of distinct inputs of a table.
func (t *Table) Len() int {
	if t == nil || t.entries == nil {
		return 0
	}
	return t.entries.Size()
}

// Lookup returns the output for an input sequence, if the table contains it.
func (t *Table) Lookup(input string) (string, bool) {
	if t.Len() == 0 {
		return "", false
	}
	if v, found := t.entries.Get(input); found {
		return v.(Entry).Output, true
	}
	return "", false
}

// Entries returns all entries of a table, in order of first occurrence of
// their input.
func (t *Table) Entries() []Entry {
	if t.Len() == 0 {
		return nil
	}
	entries := make([]Entry, 0, t.entries.Size())
	it := t.entries.Iterator()
	for it.Next() {
		entries = append(entries, it.Value().(Entry))
	}
	return entries
}

// Keys returns the inputs of a table, in order.
func (t *Table) Keys() []string {
	if t.Len() == 0 {
		return nil
	}
	keys := make([]string, 0, t.entries.Size())
	it := t.entries.Iterator()
	for it.Next() {
		keys = append(keys, it.Key().(string))
	}
	return keys
}

// Invert returns a table with input and output swapped. If more than one input
// maps to the same output, the first one (in table order) wins. Deletions
// (entries with empty output) have no inverse and are left out.
func (t *Table) Invert() *Table {
	inv := &Table{name: t.Name() + " (inverted)", entries: linkedhashmap.New()}
	for _, e := range t.Entries() {
		if e.Output == "" {
			continue
		}
		if _, found := inv.entries.Get(e.Output); found {
			tracer().Debugf("inverting %s: %q already maps to an input, skipping %q",
				t.Name(), e.Output, e.Input)
			continue
		}
		inv.entries.Put(e.Output, Entry{Input: e.Output, Output: e.Input, Line: e.Line})
	}
	return inv
}

func (t *Table) String() string {
	return fmt.Sprintf("table[%s, %d entries]", t.Name(), t.Len())
}

// put inserts an entry, observing the duplicate policy.
func (t *Table) put(e Entry, strict bool) error {
	if v, found := t.entries.Get(e.Input); found {
		prev := v.(Entry)
		if prev.Output == e.Output {
			return nil
		}
		if strict {
			err := &tnorm.DuplicateKeyError{
				Source: t.name,
				Line:   e.Line,
				Key:    e.Input,
				Prev:   prev.Output,
				Output: e.Output,
			}
			tracer().Errorf(err.Error())
			return err
		}
		tracer().Infof("table %s, line %d: %q re-mapped from %q to %q",
			t.name, e.Line, e.Input, prev.Output, e.Output)
	}
	// linkedhashmap keeps the position of the first insertion
	t.entries.Put(e.Input, e)
	return nil
}

// --- Loading ---------------------------------------------------------------

// Option configures table loading.
type Option func(*options)

type options struct {
	fields    int
	delimiter string
	comment   string
	strict    bool
	source    string
}

func defaultOptions() *options {
	return &options{
		fields:    2,
		delimiter: "\t",
		comment:   "# ",
		strict:    true,
	}
}

// Fields sets the number of fields per record, either 1 (acceptor list) or
// 2 (mapping). Other values are ignored. Default is 2.
func Fields(n int) Option {
	return func(o *options) {
		if n == 1 || n == 2 {
			o.fields = n
		}
	}
}

// Delimiter sets the field delimiter. Default is a TAB.
func Delimiter(d string) Option {
	return func(o *options) {
		if d != "" {
			o.delimiter = d
		}
	}
}

// CommentPrefix sets the prefix of comment lines. An empty prefix disables comments.
func CommentPrefix(p string) Option {
	return func(o *options) {
		o.comment = p
	}
}

// Strict sets the duplicate policy. In strict mode (the default) conflicting
// duplicates are an error, otherwise the later entry wins.
func Strict(b bool) Option {
	return func(o *options) {
		o.strict = b
	}
}

// Source sets the name of the table source, used in error messages.
func Source(name string) Option {
	return func(o *options) {
		o.source = name
	}
}

func collect(opts []Option) *options {
	conf := defaultOptions()
	for _, opt := range opts {
		opt(conf)
	}
	return conf
}

// ReadEntries reads all records of a table source, in order, without
// checking for duplicates. It is intended for ordered rule lists, where an
// input may legitimately occur more than once.
func ReadEntries(r io.Reader, opts ...Option) ([]Entry, error) {
	conf := collect(opts)
	var entries []Entry
	err := parse(r, conf, func(token *scannerToken) {
		entries = append(entries, entryFrom(token, conf))
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Load reads a rule table from r.
//
// Loading fails on the first malformed record. With strict duplicate checking
// (the default), conflicting records result in a tnorm.DuplicateKeyError.
// No partially loaded table is returned.
func Load(r io.Reader, opts ...Option) (*Table, error) {
	conf := collect(opts)
	t := &Table{name: conf.source, entries: linkedhashmap.New()}
	var err error
	perr := parse(r, conf, func(token *scannerToken) {
		if err != nil {
			return
		}
		err = t.put(entryFrom(token, conf), conf.strict)
	})
	if perr != nil {
		return nil, perr
	}
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded rule table %s with %d entries", conf.source, t.Len())
	return t, nil
}

// LoadFile loads a rule table from a file within fsys. If no Source option is
// given, the file name is used as the table name.
func LoadFile(fsys fs.FS, name string, opts ...Option) (*Table, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening rule table: %w", err)
	}
	defer f.Close()
	opts = append([]Option{Source(path.Clean(name))}, opts...)
	return Load(f, opts...)
}

// FromEntries creates a table from a list of entries, observing the
// duplicate policy given by strict.
func FromEntries(name string, entries []Entry, strict bool) (*Table, error) {
	t := &Table{name: name, entries: linkedhashmap.New()}
	for _, e := range entries {
		if err := t.put(e, strict); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func entryFrom(token *scannerToken, conf *options) Entry {
	e := Entry{Input: token.Field(1), Line: token.LineNo}
	if conf.fields == 1 {
		e.Output = e.Input
	} else {
		e.Output = token.Field(2)
	}
	return e
}
