/*
Package pipeline folds rule stages into a single rewrite cascade and applies it
to text.

The order of stages is part of a pipeline's contract: stages are applied in the
order they are given to New, each one working on the output of its predecessor.
Disabled stages are left out. After composition the cascade is reduced once,
which does not change its mapping.

Pipelines are immutable. To switch configuration or rule tables at run time,
build a new pipeline and swap it into a Holder:

	h := pipeline.NewHolder(p)
	…
	err := h.Reload(func() (*pipeline.Pipeline, error) {
		return yue.NewPostprocessor(cfg, tables)
	})

Readers of h will see either the old or the new pipeline, never a partially
built one. If building fails, the old pipeline stays in place.

Pipelines may be used for streaming as well, see Transformer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package pipeline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tnorm.pipeline'.
func tracer() tracing.Trace {
	return tracing.Select("tnorm.pipeline")
}
