// Package unsafecast exposes the raw memory reinterpretation primitives used
// by the transmute package.
//
// None of the functions in this package validate their inputs: lengths,
// alignment and the validity of the resulting bit patterns are the
// responsibility of the caller. The exported API of the transmute package is
// the only intended user, and every call site there documents which check
// establishes the precondition.
//
//	With great power comes great responsibility.
package unsafecast

import "unsafe"

// The slice type represents the memory layout of slices in Go. It is similar to
// reflect.SliceHeader but uses a unsafe.Pointer instead of uintptr for the
// backing array to allow the garbage collector to track the reference.
type slice struct {
	ptr unsafe.Pointer
	len int
	cap int
}

// Slice converts the data slice of type []From to a slice of type []To sharing
// the same backing array. The length and capacity of the returned slice are
// scaled according to the size difference between the source and destination
// types, rounding down.
//
// The function must not be called with a zero-sized To type.
func Slice[To, From any](data []From) []To {
	// unsafe.Slice would drop the capacity information, so the header is built
	// by hand instead.
	var zf From
	var zt To
	s := slice{
		ptr: unsafe.Pointer(unsafe.SliceData(data)),
		len: int((uintptr(len(data)) * unsafe.Sizeof(zf)) / unsafe.Sizeof(zt)),
		cap: int((uintptr(cap(data)) * unsafe.Sizeof(zf)) / unsafe.Sizeof(zt)),
	}
	return *(*[]To)(unsafe.Pointer(&s))
}

// View returns a slice of n values of type To starting at the first byte of
// data. Both the length and capacity of the result are n, so appending to the
// view never writes past the n*sizeof(To) leading bytes of data.
//
// n*sizeof(To) must not exceed len(data).
func View[To any](data []byte, n int) []To {
	if n == 0 {
		return []To{}
	}
	return unsafe.Slice((*To)(unsafe.Pointer(unsafe.SliceData(data))), n)
}

// Resize returns a slice of type []To over the backing array of data with the
// given length and capacity, counted in values of To.
//
// length and capacity must both fit in cap(data) bytes.
func Resize[To any](data []byte, length, capacity int) []To {
	s := slice{
		ptr: unsafe.Pointer(unsafe.SliceData(data)),
		len: length,
		cap: capacity,
	}
	return *(*[]To)(unsafe.Pointer(&s))
}

// Load copies the leading sizeof(T) bytes of data into a value of type T. The
// read goes through a byte copy so data does not need to be aligned for T.
//
// len(data) must be at least sizeof(T).
func Load[T any](data []byte) (v T) {
	copy(Bytes(&v), data)
	return v
}

// Bytes returns the memory of the value pointed by v as a byte slice.
func Bytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// Address returns the address of the first element of data, or zero if the
// slice has no backing array.
func Address[T any](data []T) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(data)))
}

// AddressOf returns the address of the value pointed by v.
func AddressOf[T any](v *T) uintptr {
	return uintptr(unsafe.Pointer(v))
}

// SizeOf returns the size in bytes of values of type T.
func SizeOf[T any]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// AlignOf returns the alignment requirement of values of type T.
func AlignOf[T any]() int {
	var z T
	return int(unsafe.Alignof(z))
}
