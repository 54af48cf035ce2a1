package yue

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/file"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
)

// Direction selects the script conversion of the preprocessor.
type Direction int8

// Script conversion directions.
const (
	ToSimplified  Direction = iota // traditional → simplified (default)
	ToTraditional                  // simplified → traditional
	Keep                           // no script conversion
)

func (d Direction) String() string {
	switch d {
	case ToSimplified:
		return "simplified"
	case ToTraditional:
		return "traditional"
	case Keep:
		return "keep"
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// ParseDirection parses the name of a direction, as used in configuration files.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simplified", "to_simplified", "t2s", "hans":
		return ToSimplified, nil
	case "traditional", "to_traditional", "s2t", "hant":
		return ToTraditional, nil
	case "keep", "none", "":
		return Keep, nil
	}
	return ToSimplified, fmt.Errorf("unknown script direction %q", s)
}

// Config holds the switches for the Cantonese pre- and postprocessor.
type Config struct {
	Direction           Direction // script conversion of the preprocessor
	RemoveInterjections bool      // delete interjections listed in the blacklist
	RemovePunctuation   bool      // delete Chinese and ASCII punctuation
	FullToHalf          bool      // convert full-width characters to half-width
	Currency            bool      // localize currency expressions
	TagOOV              bool      // tag characters outside of the known charsets
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Direction:           ToSimplified,
		RemoveInterjections: true,
		RemovePunctuation:   false,
		FullToHalf:          true,
		Currency:            true,
		TagOOV:              false,
	}
}

// Configuration keys.
const (
	KeyDirection           = "tn.direction"
	KeyRemoveInterjections = "tn.remove_interjections"
	KeyRemovePunctuation   = "tn.remove_punctuation"
	KeyFullToHalf          = "tn.full_to_half"
	KeyCurrency            = "tn.currency"
	KeyTagOOV              = "tn.tag_oov"
)

// ConfigFrom reads a configuration from conf. Keys not set in conf keep their
// default values.
func ConfigFrom(conf schuko.Configuration) (Config, error) {
	cfg := DefaultConfig()
	if conf == nil {
		return cfg, nil
	}
	if conf.IsSet(KeyDirection) {
		d, err := ParseDirection(conf.GetString(KeyDirection))
		if err != nil {
			return cfg, fmt.Errorf("configuration key %s: %w", KeyDirection, err)
		}
		cfg.Direction = d
	}
	for key, flag := range map[string]*bool{
		KeyRemoveInterjections: &cfg.RemoveInterjections,
		KeyRemovePunctuation:   &cfg.RemovePunctuation,
		KeyFullToHalf:          &cfg.FullToHalf,
		KeyCurrency:            &cfg.Currency,
		KeyTagOOV:              &cfg.TagOOV,
	} {
		if conf.IsSet(key) {
			*flag = conf.GetBool(key)
		}
	}
	tracer().Debugf("configuration: %+v", cfg)
	return cfg, nil
}

// LoadConfig reads a configuration from NestedText files found at the
// standard configuration locations for appTag, e.g. ~/.config/<appTag>/<appTag>.nt.
// If no file is found, the default configuration is returned.
func LoadConfig(appTag string) (Config, error) {
	conf := koanfadapter.New(nil, appTag, []string{"nt"})
	conf.InitDefaults()
	return ConfigFrom(conf)
}

// LoadConfigFile reads a configuration from a NestedText file:
//
//	tn:
//	    direction: traditional
//	    remove_punctuation: true
//
func LoadConfigFile(path string) (Config, error) {
	conf := koanfadapter.New(nil, "", nil)
	if err := conf.Koanf().Load(file.Provider(path), koanfadapter.Parser()); err != nil {
		tracer().Errorf("cannot load configuration %s: %v", path, err)
		return DefaultConfig(), fmt.Errorf("loading configuration %s: %w", path, err)
	}
	return ConfigFrom(conf)
}

// String returns a short description of the active switches.
func (cfg Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "direction=%v", cfg.Direction)
	for _, sw := range []struct {
		name string
		on   bool
	}{
		{"interjections", cfg.RemoveInterjections},
		{"punctuation", cfg.RemovePunctuation},
		{"full-to-half", cfg.FullToHalf},
		{"currency", cfg.Currency},
		{"tag-oov", cfg.TagOOV},
	} {
		if sw.on {
			b.WriteString(" +" + sw.name)
		} else {
			b.WriteString(" -" + sw.name)
		}
	}
	return b.String()
}
