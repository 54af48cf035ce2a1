/*
Package yue provides rule stages for normalizing Cantonese text.

Cantonese is written with Chinese characters, in traditional as well as in
simplified script, mixed with Latin letters, digits and punctuation in two
widths. Package yue builds two pipelines from a set of rule tables:

The preprocessor converts text to the script selected by the configuration and
applies Cantonese-specific overrides.

The postprocessor cleans up the output of a grammar: it applies the overrides,
removes interjections and punctuation, converts full-width characters to
half-width, localizes currency expressions (e.g., "HK$五點五" → "五個半蚊") and
tags characters outside of the known charsets:

	tables, err := yue.LoadTables(os.DirFS("/usr/share/tnorm/yue"))
	…
	post, err := yue.NewPostprocessor(yue.DefaultConfig(), tables, digitReader)
	…
	out, err := post.Apply(text)

Rule tables are plain data; see package ruletable for the format and LoadTables
for the files expected.

Configuration

Switches may be read from any schuko.Configuration (see ConfigFrom), from
NestedText configuration files (see LoadConfig) or from a single file:

	tn:
	    direction: traditional
	    remove_interjections: true
	    remove_punctuation: false
	    full_to_half: true
	    currency: true
	    tag_oov: false

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package yue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tnorm.yue'.
func tracer() tracing.Trace {
	return tracing.Select("tnorm.yue")
}
