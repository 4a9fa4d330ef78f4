package transmute

import "github.com/segmentio/transmute/internal/unsafecast"

// Misalignment returns the number of bytes to discard from a buffer starting
// at addr so that it becomes aligned for values of the given alignment and
// size, or zero if addr is already aligned.
//
// The count is size - addr%align rather than align - addr%align, which keeps
// every following element of the buffer aligned as well when align divides
// size.
func Misalignment(addr uintptr, align, size int) int {
	if align <= 1 {
		return 0
	}
	offset := int(addr % uintptr(align))
	if offset == 0 {
		return 0
	}
	if size < align {
		// Only possible for inconsistent size/alignment pairs; fall back to
		// the distance to the next aligned address.
		return align - offset
	}
	return size - offset
}

// CheckAlignment verifies that data starts at an address where values of type
// To can be read. The returned error is a *UnalignedError carrying the number
// of leading bytes to discard.
func CheckAlignment[To, From any](data []From) error {
	return checkAddress(unsafecast.Address(data), layoutOf[To]())
}

// CheckAlignmentOne verifies that the value pointed by v is located at an
// address where a value of type To can be read.
func CheckAlignmentOne[To, From any](v *From) error {
	return checkAddress(unsafecast.AddressOf(v), layoutOf[To]())
}

func checkAddress[T any](addr uintptr, layout Layout[T]) error {
	if offset := Misalignment(addr, layout.align, layout.size); offset != 0 {
		return &UnalignedError{Offset: offset}
	}
	return nil
}

// CheckAlignment verifies that data starts at an address aligned for T.
func (l Layout[T]) CheckAlignment(data []byte) error {
	return checkAddress(unsafecast.Address(data), l)
}

// Aligned wraps a byte buffer whose start address was verified to satisfy the
// alignment of T. Operations on the wrapper skip the alignment check, which
// lets the permissive ones return their result without an error.
//
// The buffer itself is left untouched and accessible through Bytes. Slicing
// the buffer from the front invalidates the guarantee; such slices must be
// wrapped again.
type Aligned[T any] struct {
	layout Layout[T]
	data   []byte
}

// NewAligned wraps data after checking that it is aligned for the built-in
// type T.
func NewAligned[T Pod](data []byte) (Aligned[T], error) {
	return Of[T]().Align(data)
}

// Align wraps data after checking that it is aligned for T. The error is an
// *UnalignedError when the check fails.
func (l Layout[T]) Align(data []byte) (Aligned[T], error) {
	if err := l.CheckAlignment(data); err != nil {
		return Aligned[T]{}, err
	}
	return Aligned[T]{layout: l, data: data}, nil
}

// AssumeAligned wraps data without checking its alignment.
//
// This is an escape hatch for programs which know the buffer to be aligned by
// other means (e.g. it was produced by an Allocator). Wrapping a buffer which
// is not aligned for T results in undefined behavior in every operation of the
// returned value.
func (l Layout[T]) AssumeAligned(data []byte) Aligned[T] {
	return Aligned[T]{layout: l, data: data}
}

// Bytes returns the wrapped buffer.
func (a Aligned[T]) Bytes() []byte { return a.data }

// Len returns the length of the wrapped buffer.
func (a Aligned[T]) Len() int { return len(a.data) }

// Many returns a view of the wrapped buffer as a slice of T, sized by g.
func (a Aligned[T]) Many(g Guard) ([]T, error) {
	return a.layout.view(a.data, g)
}

// ManyPermissive returns a view of the wrapped buffer holding as many values
// of T as fit in it.
func (a Aligned[T]) ManyPermissive() []T {
	values, err := a.layout.view(a.data, Permissive)
	if err != nil {
		// Only zero-sized types are rejected by the permissive guard.
		return []T{}
	}
	return values
}

// Vec transfers the wrapped buffer to a slice of T, sized by g. On success the
// wrapper is emptied and must not be used to access the buffer anymore; on
// failure it is left unchanged.
func (a *Aligned[T]) Vec(g Guard) ([]T, error) {
	values, err := a.layout.transfer(a.data, g)
	if err != nil {
		return nil, err
	}
	a.data = nil
	return values, nil
}

// VecPermissive transfers the wrapped buffer to a slice of T holding as many
// values as fit in its length. The wrapper is emptied.
func (a *Aligned[T]) VecPermissive() []T {
	values, err := a.Vec(Permissive)
	if err != nil {
		return []T{}
	}
	return values
}
