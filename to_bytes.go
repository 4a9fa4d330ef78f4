package transmute

import "github.com/segmentio/transmute/internal/unsafecast"

// OneToBytes returns the memory of the value pointed by v as a byte slice.
//
// Any type may be viewed as bytes: the view is only read from and the value it
// aliases keeps its own type for the garbage collector. Writing through the
// view to a value that is not Pod or Transmutable may break its invariants.
func OneToBytes[T any](v *T) []byte {
	return unsafecast.Bytes(v)
}

// SliceToBytes returns the memory of the values in data as a byte slice of
// length len(data) times the size of T. The capacity of the view is equal to
// its length.
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return []byte{}
	}
	b := unsafecast.Slice[byte](data)
	return b[:len(b):len(b)]
}

// VecToBytes transfers the backing array of the slice pointed by data to a
// byte slice, without copying. The result has a length of len(*data) times the
// size of T, and a capacity of cap(*data) times the size of T. *data is set to
// nil.
//
// The transfer is restricted to admitted types: once the memory is owned by a
// byte slice, writes to it bypass the write barriers that the garbage
// collector needs to track pointers held by the values. Layouts of zero-sized
// types, and the zero Layout, transfer nothing: the result is nil and *data is
// left unchanged.
func (l Layout[T]) VecToBytes(data *[]T) []byte {
	if l.size == 0 {
		return nil
	}
	b := unsafecast.Slice[byte](*data)
	if *data == nil {
		b = nil
	}
	*data = nil
	return b
}

// VecToBytes transfers the slice of built-in values pointed by data to a byte
// slice. See Layout.VecToBytes.
func VecToBytes[T Pod](data *[]T) []byte {
	return Of[T]().VecToBytes(data)
}
