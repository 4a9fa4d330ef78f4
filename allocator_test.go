package transmute_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/segmentio/transmute"
	"github.com/segmentio/transmute/internal/unsafecast"
)

func TestDefaultAllocator(t *testing.T) {
	for _, align := range []int{1, 2, 4, 8, 16, 32, 64} {
		for _, size := range []int{0, 1, 7, 64, 1000} {
			t.Run(fmt.Sprintf("align=%d,size=%d", align, size), func(t *testing.T) {
				b := transmute.DefaultAllocator.Allocate(size, align)
				if len(b) != size || cap(b) != size {
					t.Fatalf("wrong buffer size: len=%d cap=%d", len(b), cap(b))
				}
				if size > 0 {
					if addr := unsafecast.Address(b); addr%uintptr(align) != 0 {
						t.Fatalf("buffer at %#x is not aligned on %d bytes", addr, align)
					}
				}
				for i, c := range b {
					if c != 0 {
						t.Fatalf("byte at index %d is not zero: %d", i, c)
					}
				}
			})
		}
	}
}

func TestArena(t *testing.T) {
	arena := new(transmute.Arena)

	var buffers [][]byte
	for i := 0; i < 1000; i++ {
		align := 1 << (i % 6)
		size := (i * 37) % 300
		b := arena.Allocate(size, align)
		if len(b) != size || cap(b) != size {
			t.Fatalf("allocation #%d: wrong buffer size: len=%d cap=%d", i, len(b), cap(b))
		}
		if size > 0 && unsafecast.Address(b)%uintptr(align) != 0 {
			t.Fatalf("allocation #%d: buffer is not aligned on %d bytes", i, align)
		}
		for j := range b {
			b[j] = byte(i)
		}
		buffers = append(buffers, b)
	}

	for i, b := range buffers {
		for j, c := range b {
			if c != byte(i) {
				t.Fatalf("allocation #%d overlaps another one at index %d", i, j)
			}
		}
	}

	large := arena.Allocate(200_000, 8)
	if len(large) != 200_000 {
		t.Fatalf("wrong size of large allocation: %d", len(large))
	}

	arena.Reset()
	if b := arena.Allocate(16, 16); len(b) != 16 || unsafecast.Address(b)%16 != 0 {
		t.Fatal("allocation after reset is not aligned")
	}
}

func TestArenaConcurrent(t *testing.T) {
	arena := new(transmute.Arena)
	wg := sync.WaitGroup{}

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b := arena.Allocate(24, 8)
				for k := range b {
					b[k] = byte(i)
				}
				for k, c := range b {
					if c != byte(i) {
						t.Errorf("goroutine %d: byte %d overwritten by another allocation", i, k)
						return
					}
				}
			}
		}(i)
	}

	wg.Wait()
}

func TestMakeBytesFromArena(t *testing.T) {
	arena := new(transmute.Arena)
	defer func(a transmute.Allocator) { transmute.DefaultAllocator = a }(transmute.DefaultAllocator)
	transmute.DefaultAllocator = arena

	layout := transmute.Of[uint64]()
	dirty := layout.MakeBytes(64)
	for i := range dirty {
		dirty[i] = 0xFF
	}

	arena.Reset()
	b := layout.MakeBytes(64)
	if unsafecast.Address(b) != unsafecast.Address(dirty) {
		t.Fatal("the arena did not reuse its memory after reset")
	}
	for i, c := range b {
		if c != 0 {
			t.Fatalf("byte at index %d is not zero: %d", i, c)
		}
	}
}

func TestMakeBytes(t *testing.T) {
	layout := transmute.Of[complex128]()

	b := layout.MakeBytes(40)
	if len(b) != 40 || cap(b) != 48 {
		t.Fatalf("wrong buffer size: len=%d cap=%d", len(b), cap(b))
	}
	if err := layout.CheckAlignment(b); err != nil {
		t.Fatal(err)
	}

	values, err := layout.Vec(&b, transmute.Permissive)
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 2 || cap(values) != 3 {
		t.Errorf("wrong slice size: len=%d cap=%d", len(values), cap(values))
	}
}
