package transmute

import (
	"sync"

	"github.com/segmentio/transmute/internal/unsafecast"
)

// Allocator is the interface implemented by types that provide memory for
// byte buffers that will later be reinterpreted as typed values.
//
// Allocate must return a buffer of the given length and capacity whose start
// address is a multiple of align. align is always a power of two.
type Allocator interface {
	Allocate(size, align int) []byte
}

// DefaultAllocator is the default memory allocator used by transmute.
// It is initialized to use the standard Go memory allocator.
var DefaultAllocator Allocator = goheap{}

// wordSize is the largest alignment guaranteed by the Go allocator for slices
// of uint64, which back the buffers it returns.
const wordSize = 8

type goheap struct{}

func (goheap) Allocate(size, align int) []byte {
	if size < 0 {
		panic("invalid negative memory allocation size")
	}
	if align <= wordSize {
		words := make([]uint64, (size+wordSize-1)/wordSize)
		return unsafecast.Slice[byte](words)[:size:size]
	}
	// Over-allocate and discard the leading bytes of the buffer to reach the
	// requested alignment.
	b := make([]byte, size+align)
	offset := Misalignment(unsafecast.Address(b), align, align)
	return b[offset : offset+size : offset+size]
}

// Arena is an Allocator carving aligned buffers out of large pages of memory.
// Buffers are released all at once by calling Reset, after which their memory
// is handed out again without being zeroed.
//
// Arena values are safe to use concurrently from multiple goroutines.
type Arena struct {
	mutex sync.Mutex
	block []byte
}

const arenaPageSize = 65536

// Allocate satisfies the Allocator interface.
func (a *Arena) Allocate(size, align int) []byte {
	if size < 0 {
		panic("invalid negative memory allocation size")
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	for {
		i := len(a.block)
		i += Misalignment(unsafecast.Address(a.block[i:]), align, align)
		j := i + size

		if j <= cap(a.block) {
			b := a.block[i:j:j]
			a.block = a.block[:j]
			return b
		}

		blockSize := ((size + align + (arenaPageSize - 1)) / arenaPageSize) * arenaPageSize
		minSize := 2 * cap(a.block)
		if blockSize < minSize {
			blockSize = minSize
		}
		a.block = goheap{}.Allocate(blockSize, wordSize)[:0]
	}
}

// Reset makes the memory of all previously allocated buffers available again.
// Buffers returned by Allocate before the call must not be used anymore.
func (a *Arena) Reset() {
	a.mutex.Lock()
	a.block = a.block[:0]
	a.mutex.Unlock()
}

// MakeBytes allocates a zeroed byte buffer of length size, aligned for T and
// with a capacity rounded up to a whole number of values of T. The buffer is
// obtained from DefaultAllocator and cleared unless it comes from the Go heap,
// since allocators like Arena reuse memory without zeroing it.
func (l Layout[T]) MakeBytes(size int) []byte {
	b := l.allocate(DefaultAllocator, size)
	if _, heap := DefaultAllocator.(goheap); !heap {
		clear(b)
	}
	return b
}

func (l Layout[T]) allocate(a Allocator, size int) []byte {
	if l.size > 0 {
		if rem := size % l.size; rem != 0 {
			return a.Allocate(size+l.size-rem, l.align)[:size]
		}
	}
	return a.Allocate(size, l.align)
}
