package pipeline

import (
	"bytes"

	"golang.org/x/text/transform"
)

// Transformer returns a transformer which applies p to its input, line by
// line. Rules never span line breaks. It may be used with transform.NewReader
// or transform.NewWriter to normalize streams of text.
//
// Transformers keep state and must not be shared between goroutines.
func (p *Pipeline) Transformer() transform.Transformer {
	return &lineTransformer{p: p}
}

type lineTransformer struct {
	p       *Pipeline
	partial []byte // incomplete line, waiting for more input
	pending []byte // normalized output not yet written
}

// Reset is part of interface transform.Transformer.
func (lt *lineTransformer) Reset() {
	lt.partial = lt.partial[:0]
	lt.pending = lt.pending[:0]
}

// Transform is part of interface transform.Transformer.
func (lt *lineTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for {
		if len(lt.pending) > 0 {
			n := copy(dst[nDst:], lt.pending)
			nDst += n
			lt.pending = lt.pending[n:]
			if len(lt.pending) > 0 {
				return nDst, nSrc, transform.ErrShortDst
			}
		}
		rest := src[nSrc:]
		if len(rest) == 0 {
			if atEOF && len(lt.partial) > 0 {
				if err = lt.normalize(lt.partial, false); err != nil {
					return nDst, nSrc, err
				}
				lt.partial = lt.partial[:0]
				continue
			}
			return nDst, nSrc, nil
		}
		i := bytes.IndexByte(rest, '\n')
		if i < 0 && !atEOF {
			lt.partial = append(lt.partial, rest...)
			return nDst, len(src), nil
		}
		line, consumed, newline := rest, len(rest), false
		if i >= 0 {
			line, consumed, newline = rest[:i], i+1, true
		}
		lt.partial = append(lt.partial, line...)
		if err = lt.normalize(lt.partial, newline); err != nil {
			return nDst, nSrc, err
		}
		lt.partial = lt.partial[:0]
		nSrc += consumed
	}
}

func (lt *lineTransformer) normalize(line []byte, newline bool) error {
	out, err := lt.p.Apply(string(line))
	if err != nil {
		return err
	}
	lt.pending = append(lt.pending[:0], out...)
	if newline {
		lt.pending = append(lt.pending, '\n')
	}
	return nil
}
