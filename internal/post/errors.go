package post

import (
	"errors"
	"fmt"

	"github.com/alnah/go-mdblog/internal/yamlutil"
)

// Sentinel errors for post parsing.
var (
	ErrRead            = errors.New("failed to read post")
	ErrMissingHeadBody = errors.New("post must have a header block and a body separated by a blank line")
	ErrEmptyHead       = errors.New("post header block is empty")
	ErrEmptyBody       = errors.New("post body is empty")
	ErrHeaderParse     = errors.New("failed to parse post headers")
	ErrInvalidFilename = errors.New("cannot derive a title from post filename")
	ErrRender          = errors.New("failed to render post body")
)

// HeaderParseError reports a header block that could not be decoded.
// It matches ErrHeaderParse with errors.Is and unwraps to the decoder error.
type HeaderParseError struct {
	Path string
	Err  error
}

func (e *HeaderParseError) Error() string {
	return fmt.Sprintf("%v in %s: %v", ErrHeaderParse, e.Path, e.Err)
}

func (e *HeaderParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrHeaderParse.
func (e *HeaderParseError) Is(target error) bool { return target == ErrHeaderParse }

// Detail returns the decoder diagnostic with the offending source line,
// when the decoder can point at one.
func (e *HeaderParseError) Detail() string {
	return yamlutil.Describe(e.Err)
}
