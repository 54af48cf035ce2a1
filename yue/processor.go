package yue

import (
	"fmt"

	"github.com/npillmayer/tnorm/charset"
	"github.com/npillmayer/tnorm/pipeline"
	"github.com/npillmayer/tnorm/rewrite"
	"github.com/npillmayer/tnorm/ruletable"
	"github.com/npillmayer/tnorm/stage"
	"github.com/npillmayer/tnorm/tagger"
)

// Stage names.
const (
	StageTraditionalToSimple = "traditional-to-simple"
	StageSimpleToTraditional = "simple-to-traditional"
	StageOverrides           = "cantonese-overrides"
	StageInterjections       = "remove-interjections"
	StagePunctuation         = "remove-punctuation"
	StageFullToHalf          = "full-to-half"
	StageCurrency            = "currency"
	StageTagOOV              = "tag-oov"
)

// OOVTag is the tag for characters outside of the known charsets.
const OOVTag = "oov"

// NewPreprocessor creates the pipeline normalizing text before it is handed
// to a grammar: script conversion according to cfg.Direction, followed by the
// Cantonese overrides.
func NewPreprocessor(cfg Config, tables *Tables) (*pipeline.Pipeline, error) {
	if tables == nil {
		return nil, fmt.Errorf("preprocessor: no tables")
	}
	stages := make([]*stage.Stage, 0, 3)
	for _, s := range []struct {
		name    string
		enabled bool
		table   *ruletable.Table
	}{
		{StageTraditionalToSimple, cfg.Direction == ToSimplified, tables.TraditionalToSimple},
		{StageSimpleToTraditional, cfg.Direction == ToTraditional, tables.SimpleToTraditional},
	} {
		st, err := tableStage(s.name, s.enabled, s.table)
		if err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}
	overrides, err := tableStage(StageOverrides, tables.Overrides != nil, tables.Overrides)
	if err != nil {
		return nil, err
	}
	stages = append(stages, overrides)
	return pipeline.New("preprocessor", stages)
}

// NewPostprocessor creates the pipeline normalizing the output of a grammar.
// Stages are applied in this order:
//
//	extra stages (if any)
//	cantonese-overrides
//	remove-interjections
//	remove-punctuation
//	full-to-half
//	currency
//	tag-oov
//
// Extra stages are provided by clients, e.g. for reading numbers, and are
// applied before all the other stages.
func NewPostprocessor(cfg Config, tables *Tables, extra ...*stage.Stage) (*pipeline.Pipeline, error) {
	if tables == nil {
		return nil, fmt.Errorf("postprocessor: no tables")
	}
	stages, err := postprocessorStages(cfg, tables)
	if err != nil {
		return nil, err
	}
	all := make([]*stage.Stage, 0, len(extra)+len(stages))
	all = append(all, extra...)
	all = append(all, stages...)
	return pipeline.New("postprocessor", all)
}

func postprocessorStages(cfg Config, tables *Tables) ([]*stage.Stage, error) {
	var stages []*stage.Stage
	add := func(s *stage.Stage, err error) error {
		if err != nil {
			return err
		}
		stages = append(stages, s)
		return nil
	}
	if err := add(tableStage(StageOverrides, tables.Overrides != nil, tables.Overrides)); err != nil {
		return nil, err
	}
	if err := add(stage.New(StageInterjections, cfg.RemoveInterjections,
		rewrite.Delete(rewrite.Keys(tables.Blacklist)))); err != nil {
		return nil, err
	}
	if err := add(stage.New(StagePunctuation, cfg.RemovePunctuation,
		rewrite.Union(
			rewrite.Delete(rewrite.Keys(tables.Punctuation)),
			rewrite.Delete(rewrite.Class(charset.Punct)),
		))); err != nil {
		return nil, err
	}
	if err := add(tableStage(StageFullToHalf, cfg.FullToHalf, tables.FullToHalf)); err != nil {
		return nil, err
	}
	currency, err := currencyRelations(tables.Currency)
	if err != nil {
		return nil, err
	}
	if err := add(stage.New(StageCurrency, cfg.Currency, currency...)); err != nil {
		return nil, err
	}
	oov := tagger.New(OOVTag, rewrite.Span(charset.Not(knownSymbols(tables))))
	if err := add(stage.FromRule(StageTagOOV, cfg.TagOOV, oov.Relation())); err != nil {
		return nil, err
	}
	return stages, nil
}

// knownSymbols is the union of all charsets and character classes: symbols
// outside of it are tagged as out-of-vocabulary.
func knownSymbols(tables *Tables) charset.Set {
	sets := []charset.Set{
		charset.FromTable(tables.Punctuation),
		charset.Digit,
		charset.Alpha,
		charset.Punct,
		charset.Space,
	}
	if tables.Charset != nil {
		sets = append(sets, tables.Charset)
	}
	return charset.Union(sets...)
}

// tableStage creates a stage from a single rule table. A missing table
// results in a disabled, empty stage.
func tableStage(name string, enabled bool, table *ruletable.Table) (*stage.Stage, error) {
	if table == nil {
		return stage.New(name, false)
	}
	return stage.New(name, enabled, rewrite.FromTable(table).Named(name))
}
