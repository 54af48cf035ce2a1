package pipeline

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrNoPipeline is returned by a Holder which does not hold a pipeline.
var ErrNoPipeline = errors.New("no pipeline loaded")

// Holder holds a reference to a pipeline which may be swapped atomically,
// while other goroutines apply it.
type Holder struct {
	p atomic.Pointer[Pipeline]
}

// NewHolder creates a holder for p. p may be nil.
func NewHolder(p *Pipeline) *Holder {
	h := &Holder{}
	if p != nil {
		h.p.Store(p)
	}
	return h
}

// Load returns the current pipeline, or nil.
func (h *Holder) Load() *Pipeline {
	return h.p.Load()
}

// Swap replaces the current pipeline by p and returns the previous one.
func (h *Holder) Swap(p *Pipeline) *Pipeline {
	return h.p.Swap(p)
}

// Apply applies the current pipeline to text.
func (h *Holder) Apply(text string) (string, error) {
	p := h.p.Load()
	if p == nil {
		return "", ErrNoPipeline
	}
	return p.Apply(text)
}

// Reload builds a new pipeline and swaps it in. If build fails, the current
// pipeline is kept and the error is returned.
func (h *Holder) Reload(build func() (*Pipeline, error)) error {
	p, err := build()
	if err != nil {
		tracer().Errorf("reload failed, keeping current pipeline: %v", err)
		return fmt.Errorf("reloading pipeline: %w", err)
	}
	if p == nil {
		return ErrNoPipeline
	}
	old := h.p.Swap(p)
	if old != nil {
		tracer().Infof("replaced %v by %v", old, p)
	}
	return nil
}
