/*
Package stage provides rule stages, i.e. named units of text normalization
which may be switched on or off by configuration.

A stage owns a cascade of rewrite relations. Every relation is pass-through
wrapped on construction, thus a stage never drops text it does not match.
Whether a stage is enabled is decided once, when the stage is created; stages
never change afterwards.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package stage

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tnorm"
	"github.com/npillmayer/tnorm/rewrite"
)

// tracer traces with key 'tnorm.stage'.
func tracer() tracing.Trace {
	return tracing.Select("tnorm.stage")
}

// Stage is a named, toggleable unit of normalization.
type Stage struct {
	name    string
	enabled bool
	rule    *rewrite.Cascade
}

// New creates a stage from relations, which will be applied in the given order.
// Every relation is pass-through wrapped.
func New(name string, enabled bool, rels ...*rewrite.Relation) (*Stage, error) {
	rules := make([]rewrite.Rule, 0, len(rels))
	for i, r := range rels {
		if r == nil {
			return nil, tnorm.NewCompositionError(name, fmt.Sprintf("relation #%d is nil", i))
		}
		rules = append(rules, rewrite.PassThrough(r))
	}
	return compose(name, enabled, rules...)
}

// FromRule creates a stage from a pre-built rule. The rule has to be pass-through
// wrapped, otherwise FromRule returns a tnorm.CompositionError.
func FromRule(name string, enabled bool, rule rewrite.Rule) (*Stage, error) {
	if rule == nil || !rule.Wrapped() {
		return nil, tnorm.NewCompositionError(name, "rule is not pass-through wrapped")
	}
	return compose(name, enabled, rule)
}

func compose(name string, enabled bool, rules ...rewrite.Rule) (*Stage, error) {
	cascade, err := rewrite.Compose(rules...)
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", name, err)
	}
	tracer().Debugf("stage %s (enabled=%v) with %d relations", name, enabled, cascade.Len())
	return &Stage{name: name, enabled: enabled, rule: cascade}, nil
}

// Must is a helper that wraps a call to a function returning (*Stage, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations with rules known to be valid.
func Must(s *Stage, err error) *Stage {
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the name of a stage.
func (s *Stage) Name() string {
	return s.name
}

// Enabled is true if the stage takes part in a pipeline.
func (s *Stage) Enabled() bool {
	return s.enabled
}

// Rule returns the cascade of a stage.
func (s *Stage) Rule() *rewrite.Cascade {
	return s.rule
}

// Apply applies the rules of a stage to text, regardless of the stage being
// enabled or not.
func (s *Stage) Apply(text string) (string, error) {
	return s.rule.Apply(text)
}

func (s *Stage) String() string {
	onoff := "off"
	if s.enabled {
		onoff = "on"
	}
	return fmt.Sprintf("stage[%s, %s, %d relations]", s.name, onoff, s.rule.Len())
}
