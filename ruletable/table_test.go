package ruletable

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tnorm"
)

func TestLoadMapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnorm.table")
	defer teardown()
	//
	src := "# traditional → simplified\n\n漢\t汉\r\n語\t语\n  \n#\t＃\n"
	table, err := Load(strings.NewReader(src), Source("t2s"))
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 3 {
		t.Fatalf("expected table to have 3 entries, has %d", table.Len())
	}
	if out, ok := table.Lookup("語"); !ok || out != "语" {
		t.Errorf("expected 語 to map to 语, have %q/%v", out, ok)
	}
	if out, ok := table.Lookup("#"); !ok || out != "＃" {
		t.Errorf("expected single '#' to be a record, have %q/%v", out, ok)
	}
	if _, ok := table.Lookup("x"); ok {
		t.Errorf("did not expect to find 'x'")
	}
	keys := table.Keys()
	if strings.Join(keys, ",") != "漢,語,#" {
		t.Errorf("expected keys in table order, have %v", keys)
	}
	if table.Name() != "t2s" {
		t.Errorf("expected table name t2s, have %q", table.Name())
	}
}

func TestLoadAcceptor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnorm.table")
	defer teardown()
	//
	table, err := Load(strings.NewReader("\uFEFF啊\n呀\n嘅啦\n"), Fields(1))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range table.Entries() {
		if e.Input != e.Output {
			t.Errorf("acceptor entry %v does not map onto itself", e)
		}
	}
	if _, ok := table.Lookup("啊"); !ok {
		t.Errorf("byte order mark not removed from first record")
	}
	if e := table.Entries()[2]; e.Line != 3 {
		t.Errorf("expected 嘅啦 at line 3, is at line %d", e.Line)
	}
}

func TestMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnorm.table")
	defer teardown()
	//
	_, err := Load(strings.NewReader("a\tb\nc\n"), Source("broken.tsv"))
	var malformed *tnorm.MalformedTableError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedTableError, have %v", err)
	}
	if malformed.Line != 2 || malformed.Have != 1 || malformed.Want != 2 {
		t.Errorf("unexpected error details %+v", malformed)
	}
	_, err = Load(strings.NewReader("a\tb\tc\n"), Fields(1))
	if !errors.As(err, &malformed) {
		t.Errorf("expected acceptor list with 3 fields to be malformed")
	}
}

func TestDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnorm.table")
	defer teardown()
	//
	src := "a\tx\nb\ty\na\tx\na\tz\n"
	_, err := Load(strings.NewReader(src))
	var dup *tnorm.DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateKeyError in strict mode, have %v", err)
	}
	if dup.Line != 4 || dup.Prev != "x" || dup.Output != "z" {
		t.Errorf("unexpected error details %+v", dup)
	}
	table, err := Load(strings.NewReader(src), Strict(false))
	if err != nil {
		t.Fatalf("lenient loading failed: %v", err)
	}
	if out, _ := table.Lookup("a"); out != "z" {
		t.Errorf("expected last write to win, have a→%q", out)
	}
	if table.Keys()[0] != "a" {
		t.Errorf("expected 'a' to keep its first position, keys are %v", table.Keys())
	}
}

func TestReadEntries(t *testing.T) {
	entries, err := ReadEntries(strings.NewReader("點五蚊\t個半蚊\n點一蚊\t個一\n點五蚊\t個半蚊\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("expected duplicates to be preserved, have %d entries", len(entries))
	}
}

func TestInvert(t *testing.T) {
	table, err := FromEntries("t2s", []Entry{
		{Input: "乾", Output: "干"},
		{Input: "幹", Output: "干"},
		{Input: "嘅", Output: ""},
		{Input: "漢", Output: "汉"},
	}, true)
	if err != nil {
		t.Fatal(err)
	}
	inv := table.Invert()
	if inv.Len() != 2 {
		t.Errorf("expected inverted table to have 2 entries, has %d", inv.Len())
	}
	if out, _ := inv.Lookup("干"); out != "乾" {
		t.Errorf("expected first mapping to win on inversion, have 干→%q", out)
	}
	if _, ok := inv.Lookup(""); ok {
		t.Errorf("deletions must not be inverted")
	}
}

func TestLoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"char/overrides.tsv": &fstest.MapFile{Data: []byte("# overrides\n系\t係\n")},
	}
	table, err := LoadFile(fsys, "char/overrides.tsv")
	if err != nil {
		t.Fatal(err)
	}
	if table.Name() != "char/overrides.tsv" {
		t.Errorf("expected table to be named after its file, is %q", table.Name())
	}
	if _, err = LoadFile(fsys, "char/missing.tsv"); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestCustomDelimiter(t *testing.T) {
	table, err := Load(strings.NewReader("; comment\na,b\n"), Delimiter(","), CommentPrefix(";"))
	if err != nil {
		t.Fatal(err)
	}
	if out, ok := table.Lookup("a"); !ok || out != "b" {
		t.Errorf("expected a→b, have %q", out)
	}
}
