package polarity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrResourceLoad reports a stopword or lexicon resource that could not
	// be loaded. It is fatal to analyzer construction.
	ErrResourceLoad = errors.New("resource load failed")

	// ErrLexiconOverlap reports words listed as both positive and negative.
	ErrLexiconOverlap = errors.New("lexicon sets overlap")

	// ErrInvalidLexiconEntry reports a lexicon entry that does not normalize
	// to exactly one token.
	ErrInvalidLexiconEntry = errors.New("invalid lexicon entry")
)

// LexiconError names the words that made a lexicon invalid.
type LexiconError struct {
	Words []string
	Err   error
}

func (e *LexiconError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, strings.Join(e.Words, ", "))
}

func (e *LexiconError) Unwrap() error {
	return e.Err
}

// resourceError wraps cause as an ErrResourceLoad for the named resource.
func resourceError(resource string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrResourceLoad, resource, cause)
}
