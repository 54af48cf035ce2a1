package yue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{
		"simplified":  ToSimplified,
		" Hans ":      ToSimplified,
		"traditional": ToTraditional,
		"s2t":         ToTraditional,
		"keep":        Keep,
		"":            Keep,
	} {
		d, err := ParseDirection(in)
		if err != nil {
			t.Fatal(err)
		}
		if d != want {
			t.Errorf("expected %q to be %v, is %v", in, want, d)
		}
	}
	if _, err := ParseDirection("klingon"); err == nil {
		t.Errorf("expected unknown direction to be rejected")
	}
}

func TestConfigFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnorm.yue")
	defer teardown()
	//
	cfg, err := ConfigFrom(testconfig.Conf{
		KeyDirection:         "traditional",
		KeyRemovePunctuation: true,
		KeyCurrency:          false,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Direction = ToTraditional
	want.RemovePunctuation = true
	want.Currency = false
	if cfg != want {
		t.Errorf("expected %v, have %v", want, cfg)
	}
	if _, err = ConfigFrom(testconfig.Conf{KeyDirection: "sideways"}); err == nil {
		t.Errorf("expected invalid direction to be reported")
	}
	if cfg, _ = ConfigFrom(nil); cfg != DefaultConfig() {
		t.Errorf("expected default configuration, have %v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnorm.yue")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "tnorm.nt")
	nt := "tn:\n    direction: keep\n    tag_oov: true\n"
	if err := os.WriteFile(path, []byte(nt), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Direction != Keep || !cfg.TagOOV || !cfg.FullToHalf {
		t.Errorf("unexpected configuration %v", cfg)
	}
	if _, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.nt")); err == nil {
		t.Errorf("expected missing file to be reported")
	}
}

func TestConfigString(t *testing.T) {
	if s := DefaultConfig().String(); s != "direction=simplified +interjections -punctuation +full-to-half +currency -tag-oov" {
		t.Errorf("unexpected description %q", s)
	}
}

func TestDirectionForLocale(t *testing.T) {
	for locale, want := range map[string]Direction{
		"zh-HK":   ToTraditional,
		"zh-TW":   ToTraditional,
		"yue":     ToTraditional,
		"zh-CN":   ToSimplified,
		"zh-Hans": ToSimplified,
		"de-DE":   ToSimplified,
		"%%":      ToSimplified,
	} {
		if d := DirectionForLocale(locale); d != want {
			t.Errorf("expected locale %s to select %v, selects %v", locale, want, d)
		}
	}
}
