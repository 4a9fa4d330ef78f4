// Package test contains helpers shared by the tests of the transmute packages.
package test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/cpu"

	"github.com/segmentio/transmute/internal/unsafecast"
)

func WithTestDir(t *testing.T, f func(dir string)) {
	dir, err := os.MkdirTemp("", "transmute-test-")
	assert.NoError(t, err)
	defer func() {
		if r := recover(); r != nil {
			t.Log("Test directory available at", dir)
			panic(r)
		} else if t.Failed() {
			t.Log("Test directory available at", dir)
		} else {
			os.RemoveAll(dir)
		}
	}()

	f(dir)
}

// FromLittleEndian returns a copy of data where each group of size bytes was
// converted from little-endian to the native byte order. Trailing bytes that
// do not form a whole group are copied unchanged.
//
// Test fixtures are written in little-endian, the helper makes them valid on
// big-endian hosts as well.
func FromLittleEndian(size int, data []byte) []byte {
	out := append([]byte{}, data...)
	if !cpu.IsBigEndian || size <= 1 {
		return out
	}
	for i := 0; i+size <= len(out); i += size {
		word := out[i : i+size]
		for j, k := 0, size-1; j < k; j, k = j+1, k-1 {
			word[j], word[k] = word[k], word[j]
		}
	}
	return out
}

// AlignedBytes returns a copy of data in a buffer guaranteed to be aligned for
// values of type T. The capacity of the buffer is rounded up to a whole number
// of values of T.
func AlignedBytes[T any](data []byte) []byte {
	size := unsafecast.SizeOf[T]()
	values := make([]T, (len(data)+size-1)/size)
	buf := unsafecast.Slice[byte](values)[:len(data)]
	copy(buf, data)
	return buf
}

// Misaligned returns a copy of data whose start address is offset bytes past
// an address aligned for T.
func Misaligned[T any](data []byte, offset int) []byte {
	buf := AlignedBytes[T](make([]byte, len(data)+offset+unsafecast.SizeOf[T]()))
	buf = buf[offset : offset+len(data)]
	copy(buf, data)
	return buf
}
