package yue

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/npillmayer/tnorm/charset"
	"github.com/npillmayer/tnorm/ruletable"
)

// Table files, relative to the root of a table file system.
const (
	FileTraditionalToSimple = "char/traditional_to_simple.tsv"
	FileSimpleToTraditional = "char/simple_to_traditional.tsv"
	FileOverrides           = "char/cantonese_overrides.tsv"
	FileBlacklist           = "default/blacklist.tsv"
	FilePunctuation         = "char/punctuations_zh.tsv"
	FileFullToHalf          = "char/fullwidth_to_halfwidth.tsv"
	FileCharsetStandard     = "char/charset_national_standard_2013_8105.tsv"
	FileCharsetExtension    = "char/charset_extension.tsv"
	FileCurrencyNames       = "default/currency_names.tsv"
	FileCurrencyIdioms      = "default/currency_idioms.tsv"
)

// Tables is the set of rule tables for Cantonese text normalization.
type Tables struct {
	TraditionalToSimple *ruletable.Table
	SimpleToTraditional *ruletable.Table
	Overrides           *ruletable.Table // nil if not present
	Blacklist           *ruletable.Table
	Punctuation         *ruletable.Table
	FullToHalf          *ruletable.Table
	Charset             charset.Set // standard ∪ extension
	Currency            CurrencyData
}

type tableFile struct {
	file     string
	fields   int
	optional bool
	target   **ruletable.Table
}

// LoadTables loads the rule tables from a file system, e.g. an os.DirFS of a
// data directory or an embed.FS.
//
// Optional tables which are missing are replaced: the simplified to traditional
// table by the inverse of the traditional to simplified table, the width table
// by a table derived from Unicode properties, the currency tables by
// DefaultCurrency. The overrides table may be missing.
//
// Any other error aborts loading, and no tables are returned.
func LoadTables(fsys fs.FS) (*Tables, error) {
	tables := &Tables{}
	var std, ext, names *ruletable.Table
	files := []tableFile{
		{FileTraditionalToSimple, 2, false, &tables.TraditionalToSimple},
		{FileSimpleToTraditional, 2, true, &tables.SimpleToTraditional},
		{FileOverrides, 2, true, &tables.Overrides},
		{FileBlacklist, 1, false, &tables.Blacklist},
		{FilePunctuation, 1, false, &tables.Punctuation},
		{FileFullToHalf, 2, true, &tables.FullToHalf},
		{FileCharsetStandard, 1, false, &std},
		{FileCharsetExtension, 1, false, &ext},
		{FileCurrencyNames, 2, true, &names},
	}
	for _, tf := range files {
		t, err := ruletable.LoadFile(fsys, tf.file, ruletable.Fields(tf.fields))
		if err != nil {
			if tf.optional && errors.Is(err, fs.ErrNotExist) {
				tracer().Debugf("optional table %s not found", tf.file)
				continue
			}
			tracer().Errorf("cannot load %s: %v", tf.file, err)
			return nil, fmt.Errorf("loading %s: %w", tf.file, err)
		}
		*tf.target = t
	}
	if tables.SimpleToTraditional == nil {
		tables.SimpleToTraditional = tables.TraditionalToSimple.Invert()
	}
	if tables.FullToHalf == nil {
		tables.FullToHalf = charset.FullwidthToHalfwidth()
	}
	tables.Charset = charset.Union(charset.FromTable(std), charset.FromTable(ext))
	tables.Currency = DefaultCurrency
	if names != nil {
		tables.Currency.Names = names.Entries()
	}
	idioms, err := readIdioms(fsys)
	if err != nil {
		return nil, err
	}
	if idioms != nil {
		tables.Currency.Idioms = idioms
	}
	tracer().Infof("loaded Cantonese tables: %d t2s, %d s2t, %d interjections, %d punctuation",
		tables.TraditionalToSimple.Len(), tables.SimpleToTraditional.Len(),
		tables.Blacklist.Len(), tables.Punctuation.Len())
	return tables, nil
}

// readIdioms reads the ordered list of currency idioms, if present.
func readIdioms(fsys fs.FS) ([]ruletable.Entry, error) {
	f, err := fsys.Open(FileCurrencyIdioms)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileCurrencyIdioms, err)
	}
	defer f.Close()
	idioms, err := ruletable.ReadEntries(f, ruletable.Source(FileCurrencyIdioms))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", FileCurrencyIdioms, err)
	}
	return idioms, nil
}
