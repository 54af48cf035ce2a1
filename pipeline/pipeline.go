package pipeline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/tnorm"
	"github.com/npillmayer/tnorm/charset"
	"github.com/npillmayer/tnorm/rewrite"
	"github.com/npillmayer/tnorm/stage"
)

// Pipeline is an ordered list of stages, folded into a single rewrite cascade.
//
// Pipelines are immutable and safe for concurrent use.
type Pipeline struct {
	name     string
	stages   []*stage.Stage
	active   []string
	rule     *rewrite.Cascade
	alphabet *charset.Alphabet
}

// Option configures pipeline construction.
type Option func(*options)

type options struct {
	alphabet charset.Set
	noReduce bool
}

// WithAlphabet sets the symbols a pipeline accepts as input. Default is
// charset.VChar, i.e. any valid UTF-8 text.
func WithAlphabet(set charset.Set) Option {
	return func(o *options) {
		o.alphabet = set
	}
}

// WithoutReduction prevents a pipeline from reducing its cascade. This is
// mainly useful for testing and debugging.
func WithoutReduction() Option {
	return func(o *options) {
		o.noReduce = true
	}
}

// New creates a pipeline from stages. Enabled stages are composed in the given
// order, disabled stages are skipped. The resulting cascade is reduced once.
//
// If a stage cannot be composed, New returns an error and no pipeline.
func New(name string, stages []*stage.Stage, opts ...Option) (*Pipeline, error) {
	conf := &options{}
	for _, opt := range opts {
		opt(conf)
	}
	p := &Pipeline{
		name:     name,
		stages:   make([]*stage.Stage, 0, len(stages)),
		alphabet: charset.NewAlphabet(conf.alphabet),
	}
	rules := make([]rewrite.Rule, 0, len(stages))
	for i, s := range stages {
		if s == nil {
			return nil, tnorm.NewCompositionError(fmt.Sprintf("%s#%d", name, i), "stage is nil")
		}
		p.stages = append(p.stages, s)
		if !s.Enabled() {
			tracer().Debugf("pipeline %s: skipping disabled stage %s", name, s.Name())
			continue
		}
		p.active = append(p.active, s.Name())
		rules = append(rules, s.Rule())
	}
	cascade, err := rewrite.Compose(rules...)
	if err != nil {
		return nil, fmt.Errorf("pipeline %s: %w", name, err)
	}
	if !conf.noReduce {
		cascade = rewrite.Reduce(cascade)
	}
	p.rule = cascade
	tracer().Infof("pipeline %s: %d of %d stages active [%s]", name, len(p.active),
		len(p.stages), strings.Join(p.active, ", "))
	return p, nil
}

// Apply normalizes a text. If the text contains a symbol not in the alphabet
// of the pipeline, Apply returns a tnorm.UnrepresentableInputError.
func (p *Pipeline) Apply(text string) (string, error) {
	if err := p.alphabet.Validate(text); err != nil {
		return "", err
	}
	return p.rule.Apply(text)
}

// Name returns the name of a pipeline.
func (p *Pipeline) Name() string {
	return p.name
}

// Stages returns all stages of a pipeline, including disabled ones, in order.
func (p *Pipeline) Stages() []*stage.Stage {
	stages := make([]*stage.Stage, len(p.stages))
	copy(stages, p.stages)
	return stages
}

// Active returns the names of the enabled stages, in order of application.
func (p *Pipeline) Active() []string {
	active := make([]string, len(p.active))
	copy(active, p.active)
	return active
}

// Rule returns the (possibly reduced) cascade of a pipeline.
func (p *Pipeline) Rule() *rewrite.Cascade {
	return p.rule
}

func (p *Pipeline) String() string {
	return fmt.Sprintf("pipeline[%s: %s]", p.name, strings.Join(p.active, " → "))
}
