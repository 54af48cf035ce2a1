package charset

import (
	"unicode/utf8"

	"github.com/npillmayer/tnorm"
)

// Alphabet is the set of symbols a pipeline accepts as input.
type Alphabet struct {
	set Set
}

// NewAlphabet creates an alphabet from a set. A nil set means VChar.
func NewAlphabet(set Set) *Alphabet {
	if set == nil {
		set = VChar
	}
	return &Alphabet{set: set}
}

// Set returns the symbols of an alphabet.
func (a *Alphabet) Set() Set {
	return a.set
}

// Validate checks that text is valid UTF-8 and consists of symbols of the
// alphabet only. The first offending symbol is reported with a
// tnorm.UnrepresentableInputError.
func (a *Alphabet) Validate(text string) error {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			return &tnorm.UnrepresentableInputError{
				Offset: i,
				Symbol: r,
				Bytes:  []byte{text[i]},
			}
		}
		if !a.set.Contains(r) {
			return &tnorm.UnrepresentableInputError{
				Offset: i,
				Symbol: r,
				Bytes:  []byte(text[i : i+size]),
			}
		}
		i += size
	}
	return nil
}
