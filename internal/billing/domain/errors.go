package billing

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPlayType is returned when a play type has no pricing rule.
	ErrUnknownPlayType = errors.New("billing: unknown play type")
	// ErrUnknownPlay is returned when a performance references a play missing from the catalog.
	ErrUnknownPlay = errors.New("billing: unknown play")
)

// UnknownPlayTypeError carries the offending play type.
type UnknownPlayTypeError struct {
	Type PlayType
}

func (e *UnknownPlayTypeError) Error() string {
	return fmt.Sprintf("billing: unknown play type: %s", e.Type)
}

// Is matches ErrUnknownPlayType.
func (e *UnknownPlayTypeError) Is(target error) bool {
	return target == ErrUnknownPlayType
}

// UnknownPlayError carries the play id that failed to resolve.
type UnknownPlayError struct {
	PlayID string
}

func (e *UnknownPlayError) Error() string {
	return fmt.Sprintf("billing: unknown play: %q", e.PlayID)
}

// Is matches ErrUnknownPlay.
func (e *UnknownPlayError) Is(target error) bool {
	return target == ErrUnknownPlay
}
