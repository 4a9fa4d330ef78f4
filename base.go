package transmute

import "github.com/segmentio/transmute/internal/unsafecast"

// FromBytes reads a single value of type T from the leading bytes of data.
// Bytes past the first value are ignored.
//
// The value is copied out of the buffer, which therefore does not need to be
// aligned. The error is a *GuardError if data is shorter than a value of T.
func (l Layout[T]) FromBytes(data []byte) (T, error) {
	return l.load(data, SingleAtLeast)
}

// FromBytesPedantic reads a single value of type T from data, which must be
// exactly as long as a value of T.
func (l Layout[T]) FromBytesPedantic(data []byte) (T, error) {
	return l.load(data, SingleExact)
}

func (l Layout[T]) load(data []byte, g Guard) (v T, err error) {
	if _, err = g.Check(len(data), l.size); err != nil {
		return v, err
	}
	return unsafecast.Load[T](data), nil
}

// Many returns a view of data as a slice of T sized by the guard g. No copy is
// made: the slice and data share the same memory.
//
// The length and capacity of the returned slice are both the number of values
// selected by the guard, so trailing bytes that were not part of the selection
// cannot be reached through the view.
//
// The error is an *UnalignedError if data is not aligned for T, or a
// *GuardError if g rejects the length of data.
func (l Layout[T]) Many(data []byte, g Guard) ([]T, error) {
	if err := l.CheckAlignment(data); err != nil {
		return nil, err
	}
	return l.view(data, g)
}

// ManyPermissive is like Many with the Permissive guard. It can only fail if
// data is not aligned for T; buffers known to be aligned should be wrapped in
// an Aligned value, which provides an infallible version of this method.
func (l Layout[T]) ManyPermissive(data []byte) ([]T, error) {
	return l.Many(data, Permissive)
}

// Vec transfers the backing array of the byte slice pointed by data to a slice
// of T, without copying. The length of the result is the number of values
// selected by g and its capacity is cap(*data) divided by the size of T.
//
// On success *data is set to nil; the byte slice must not be used anymore
// through any other copy of its header, since the memory now belongs to the
// returned slice. On failure *data is left unchanged.
func (l Layout[T]) Vec(data *[]byte, g Guard) ([]T, error) {
	if err := l.CheckAlignment(*data); err != nil {
		return nil, err
	}
	values, err := l.transfer(*data, g)
	if err != nil {
		return nil, err
	}
	*data = nil
	return values, nil
}

// VecPermissive is like Vec with the Permissive guard.
func (l Layout[T]) VecPermissive(data *[]byte) ([]T, error) {
	return l.Vec(data, Permissive)
}

// view assumes data to be aligned for T.
func (l Layout[T]) view(data []byte, g Guard) ([]T, error) {
	n, err := g.Check(len(data), l.size)
	if err != nil {
		return nil, err
	}
	return unsafecast.View[T](data, n/l.size), nil
}

// transfer assumes data to be aligned for T.
func (l Layout[T]) transfer(data []byte, g Guard) ([]T, error) {
	n, err := g.Check(len(data), l.size)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	return unsafecast.Resize[T](data, n/l.size, cap(data)/l.size), nil
}

// FromBytes reads a single value of the built-in type T from the leading bytes
// of data. See Layout.FromBytes.
func FromBytes[T Pod](data []byte) (T, error) {
	return Of[T]().FromBytes(data)
}

// FromBytesPedantic reads a single value of the built-in type T from data,
// which must have the exact size of T. See Layout.FromBytesPedantic.
func FromBytesPedantic[T Pod](data []byte) (T, error) {
	return Of[T]().FromBytesPedantic(data)
}

// Many returns a view of data as a slice of the built-in type T. See
// Layout.Many.
func Many[T Pod](data []byte, g Guard) ([]T, error) {
	return Of[T]().Many(data, g)
}

// ManyPermissive returns a view of data as a slice of the built-in type T,
// holding as many values as fit in data. See Layout.ManyPermissive.
func ManyPermissive[T Pod](data []byte) ([]T, error) {
	return Of[T]().ManyPermissive(data)
}

// Vec transfers the byte slice pointed by data to a slice of the built-in type
// T. See Layout.Vec.
func Vec[T Pod](data *[]byte, g Guard) ([]T, error) {
	return Of[T]().Vec(data, g)
}

// VecPermissive transfers the byte slice pointed by data to a slice of the
// built-in type T holding as many values as fit in it. See Layout.Vec.
func VecPermissive[T Pod](data *[]byte) ([]T, error) {
	return Of[T]().VecPermissive(data)
}
