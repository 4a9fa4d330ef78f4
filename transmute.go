/*
Package transmute reinterprets byte buffers as slices of typed values, and
typed values as bytes, without copying and without undefined behavior.

Reinterpreting memory is only sound when three conditions hold: the target
type has no validity invariant beyond its bit pattern, the buffer is large
enough (and, for owned buffers, correctly proportioned), and the start of the
buffer satisfies the alignment of the target type. The package checks the
last two at runtime and relies on the type system for the first.

# Element types

Built-in numeric types and fixed size byte arrays satisfy the Pod constraint
and can be used directly:

	values, err := transmute.Many[uint32](data, transmute.Pedantic)

Composite types opt in by declaring the Transmutable marker, and are used
through their Layout:

	type Point struct{ X, Y int32 }

	func (Point) Transmutable() {}

	points, err := transmute.Declared[Point]().Many(data, transmute.Pedantic)

The declaration is trusted and never verified: a type declaring itself
Transmutable must not contain pointers, must not have padding whose content
matters, and must accept every bit pattern as a valid value.

# Guards

The length of byte buffers is validated by a Guard, which decides how many of
the available bytes are used and produces a *GuardError when the count is
rejected. The Permissive guard never rejects; operations using it on buffers
wrapped in an Aligned value cannot fail and return their result directly.
The package level ManyPermissive and VecPermissive still verify alignment and
return an *UnalignedError; use Aligned.ManyPermissive and
Aligned.VecPermissive for the infallible forms.

# Ownership

Vec and VecToBytes transfer the backing array of a slice to a slice of another
element type. Go has no move semantics, so both take a pointer to the source
slice and set it to nil once the transfer completed. The source must not be
used through any other copy of the slice header afterwards.

# Byte order

No conversion of byte order is ever made: data must already be laid out in the
native byte order of the host.
*/
package transmute

import "github.com/segmentio/transmute/internal/unsafecast"

// Pod is the constraint satisfied by the built-in types which may be
// reinterpreted from any bit pattern: sized integers, floating point and
// complex numbers, and the fixed size byte arrays used to represent 96 and
// 128 bits values (e.g. uuid.UUID).
//
// bool is not part of the set since only two of its 256 bit patterns are
// valid.
type Pod interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128 |
		~[12]byte | ~[16]byte
}

// Transmutable is the capability marker declared by composite types that can
// be safely reinterpreted from raw bytes.
//
// Implementing the interface is a promise made by the author of the type: its
// layout contains no pointers, every bit pattern of its memory is a valid
// value, and values hold no resources requiring cleanup. The package has no
// way to verify the promise; breaking it results in undefined behavior.
type Transmutable interface {
	Transmutable()
}

// Layout carries the size and alignment of an element type T that has been
// admitted for reinterpretation, and exposes the transmutation operations for
// that type as methods.
//
// The zero value is not usable; layouts are obtained from Of or Declared.
type Layout[T any] struct {
	size  int
	align int
}

// Of returns the layout of the built-in type T.
func Of[T Pod]() Layout[T] { return layoutOf[T]() }

// Declared returns the layout of the composite type T, which declared itself
// reinterpretable by implementing Transmutable.
func Declared[T Transmutable]() Layout[T] { return layoutOf[T]() }

func layoutOf[T any]() Layout[T] {
	return Layout[T]{
		size:  unsafecast.SizeOf[T](),
		align: unsafecast.AlignOf[T](),
	}
}

// Size returns the size of T in bytes.
func (l Layout[T]) Size() int { return l.size }

// Alignment returns the alignment requirement of T in bytes.
func (l Layout[T]) Alignment() int { return l.align }
