package transmute

import (
	"errors"
	"fmt"
)

var (
	// ErrNotEnoughBytes is matched by guard errors reporting that a buffer was
	// shorter than the minimum length accepted by the guard.
	ErrNotEnoughBytes = errors.New("not enough bytes to fill the target type")

	// ErrExcessBytes is matched by guard errors reporting that a buffer had
	// more bytes than the guard allows, or a length that was not a multiple of
	// the element size.
	ErrExcessBytes = errors.New("excess bytes for the target type")

	// ErrZeroSizedElement is matched by guard errors reporting that the target
	// type has a size of zero, which no guard accepts.
	ErrZeroSizedElement = errors.New("cannot reinterpret bytes as a zero-sized type")

	// ErrUnaligned is matched by errors reporting that the start of a buffer
	// does not satisfy the alignment requirement of the target type.
	ErrUnaligned = errors.New("buffer is not aligned for the target type")

	// ErrInvalidValue is reserved for types whose declaration restricts the set
	// of valid bit patterns. None of the operations of this package return it.
	ErrInvalidValue = errors.New("bit pattern is not a valid value of the target type")
)

// ErrorReason is the reason why a guard rejected a byte count.
type ErrorReason uint8

const (
	// NotEnoughBytes means the byte count was below the minimum required.
	NotEnoughBytes ErrorReason = iota
	// ExcessBytes means the byte count was above the maximum allowed, or was
	// not a whole multiple of the element size.
	ExcessBytes
	// ZeroSizedElement means the element size was zero.
	ZeroSizedElement
)

func (r ErrorReason) String() string {
	switch r {
	case NotEnoughBytes:
		return "not enough bytes"
	case ExcessBytes:
		return "excess bytes"
	case ZeroSizedElement:
		return "zero-sized element"
	default:
		return fmt.Sprintf("ErrorReason(%d)", uint8(r))
	}
}

func (r ErrorReason) sentinel() error {
	switch r {
	case NotEnoughBytes:
		return ErrNotEnoughBytes
	case ExcessBytes:
		return ErrExcessBytes
	case ZeroSizedElement:
		return ErrZeroSizedElement
	default:
		return nil
	}
}

// GuardError is returned when a guard rejects the length of a byte buffer.
//
// Required is the byte count the guard would have accepted: the element size
// when the buffer was too short, or the largest acceptable count not greater
// than Actual when it had excess bytes.
type GuardError struct {
	Reason   ErrorReason
	Required int
	Actual   int
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("%s: required=%d actual=%d", e.Reason, e.Required, e.Actual)
}

// Is allows the error to be compared against ErrNotEnoughBytes,
// ErrExcessBytes and ErrZeroSizedElement with errors.Is.
func (e *GuardError) Is(target error) bool {
	return target != nil && target == e.Reason.sentinel()
}

// UnalignedError is returned when the start address of a buffer does not
// satisfy the alignment of the target type.
//
// Offset is the number of leading bytes to discard from the buffer to make it
// aligned.
type UnalignedError struct {
	Offset int
}

func (e *UnalignedError) Error() string {
	return fmt.Sprintf("%s: discard %d leading bytes to align", ErrUnaligned, e.Offset)
}

// Is allows the error to be compared against ErrUnaligned with errors.Is.
func (e *UnalignedError) Is(target error) bool {
	return target == ErrUnaligned
}

func notEnoughBytes(required, actual int) error {
	return &GuardError{Reason: NotEnoughBytes, Required: required, Actual: actual}
}

func excessBytes(required, actual int) error {
	return &GuardError{Reason: ExcessBytes, Required: required, Actual: actual}
}

func zeroSizedElement(actual int) error {
	return &GuardError{Reason: ZeroSizedElement, Required: 0, Actual: actual}
}
