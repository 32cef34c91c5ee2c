package typeh

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is the sentinel every rejected validation matches via
// errors.Is, regardless of the specific expression and value involved.
var ErrTypeMismatch = errors.New("type mismatch")

// MismatchError reports a value whose type does not satisfy the requested
// type expression. Expected carries the expression as the caller gave it;
// Actual carries the refined type of the rejected value.
type MismatchError struct {
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// Is makes every MismatchError satisfy errors.Is(err, ErrTypeMismatch).
func (e *MismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
