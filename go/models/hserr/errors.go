package hserr

import (
	"fmt"

	"github.com/pkg/errors"
)

// FormatError reports a tid= segment or register token that doesn't split
// into exactly one name and one value.
type FormatError struct {
	Line   int
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func IsFormatError(err error) bool {
	_, ok := errors.Cause(err).(*FormatError)
	return ok
}
