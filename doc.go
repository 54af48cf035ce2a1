/*
Package tnorm is about text normalization for languages with a mixed orthography.

Description

Text normalization (TN) turns written text into a spoken-style reading, inverse
text normalization (ITN) turns recognized speech back into canonical written form.
Both are front ends for speech systems, and both have to cope with text which mixes
logographic characters, punctuation in two widths, currency expressions and
foreign-script tokens.

Module tnorm does not ship linguistic grammars. Instead it provides a rewrite
engine: character and phrase mappings are kept in tables (see sub-package
ruletable), compiled into rewrite relations (sub-package rewrite), grouped into
named, toggleable stages (sub-package stage) and folded into a pipeline (sub-package
pipeline), which is then applied to input strings. Rule tables are data, not code:
a new dialect is supported by supplying new tables.

Rewriting is greedy and deterministic. At every position of the input the longest
match of a rule wins; text no rule matches is copied to the output unchanged.
Stages are applied one after the other, in declaration order. There is always
exactly one output for an input.

Sub-package yue contains the stages for Cantonese pre- and postprocessing: script
conversion, removal of interjections and punctuation, full-width to half-width
conversion, localization of currency expressions and tagging of out-of-vocabulary
characters.

Errors

The error types of this package are shared by all sub-packages:

	MalformedTableError        a table record has the wrong number of fields
	DuplicateKeyError          conflicting table records in strict mode
	UnrepresentableInputError  input symbol outside a pipeline's alphabet
	CompositionError           a rule cannot take part in sequential composition

Clients should match them with errors.As.

BSD License

Copyright (c) 2022–23, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package tnorm

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tnorm'.
func tracer() tracing.Trace {
	return tracing.Select("tnorm")
}
