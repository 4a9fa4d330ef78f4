package transmute_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/segmentio/transmute"
	"github.com/segmentio/transmute/internal/test"
)

func TestMisalignment(t *testing.T) {
	tests := []struct {
		addr  uintptr
		align int
		size  int
		want  int
	}{
		{addr: 0, align: 8, size: 8, want: 0},
		{addr: 64, align: 8, size: 8, want: 0},
		{addr: 65, align: 8, size: 8, want: 7},
		{addr: 67, align: 4, size: 4, want: 1},
		{addr: 66, align: 4, size: 12, want: 10},
		{addr: 1001, align: 1, size: 1, want: 0},
		{addr: 1001, align: 0, size: 0, want: 0},
		{addr: 17, align: 16, size: 32, want: 31},
		{addr: 6, align: 8, size: 4, want: 2},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("addr=%d,align=%d,size=%d", test.addr, test.align, test.size), func(t *testing.T) {
			if got := transmute.Misalignment(test.addr, test.align, test.size); got != test.want {
				t.Errorf("want=%d got=%d", test.want, got)
			}
		})
	}
}

func TestMisalignmentRecheck(t *testing.T) {
	for _, align := range []int{2, 4, 8, 16} {
		for _, size := range []int{align, 2 * align, 3 * align} {
			for base := uintptr(1024); base < uintptr(1024+align); base++ {
				offset := transmute.Misalignment(base, align, size)
				k := int(base % uintptr(align))
				if k == 0 {
					if offset != 0 {
						t.Fatalf("aligned address %d reported offset %d", base, offset)
					}
					continue
				}
				if offset != size-k {
					t.Fatalf("align=%d size=%d addr=%d: want=%d got=%d", align, size, base, size-k, offset)
				}
				if again := transmute.Misalignment(base+uintptr(offset), align, size); again != 0 {
					t.Fatalf("align=%d size=%d addr=%d: address still misaligned after discarding %d bytes", align, size, base, offset)
				}
			}
		}
	}
}

func TestCheckAlignment(t *testing.T) {
	data := test.AlignedBytes[uint64](make([]byte, 64))

	if err := transmute.CheckAlignment[uint64](data); err != nil {
		t.Fatal(err)
	}
	if err := transmute.CheckAlignment[uint8](data[1:]); err != nil {
		t.Errorf("bytes are always aligned: %v", err)
	}

	for k := 1; k < 8; k++ {
		err := transmute.CheckAlignment[uint64](data[k:])

		var unaligned *transmute.UnalignedError
		if !errors.As(err, &unaligned) {
			t.Fatalf("offset=%d: expected an alignment error but got %v", k, err)
		}
		if unaligned.Offset != 8-k {
			t.Errorf("offset=%d: want=%d got=%d", k, 8-k, unaligned.Offset)
		}
		if err := transmute.CheckAlignment[uint64](data[k+unaligned.Offset:]); err != nil {
			t.Errorf("offset=%d: %v", k, err)
		}
	}

	words := []uint32{1, 2, 3}
	if err := transmute.CheckAlignmentOne[uint32](&words[1]); err != nil {
		t.Error(err)
	}
	if err := transmute.CheckAlignment[uint16](words); err != nil {
		t.Error(err)
	}

	b := transmute.SliceToBytes(words)
	for k, want := range map[int]int{4: 0, 5: 3, 6: 2, 7: 1} {
		err := transmute.CheckAlignmentOne[uint32](&b[k])
		if want == 0 {
			if err != nil {
				t.Errorf("byte %d: %v", k, err)
			}
			continue
		}
		var unaligned *transmute.UnalignedError
		if !errors.As(err, &unaligned) {
			t.Fatalf("byte %d: expected an alignment error but got %v", k, err)
		}
		if unaligned.Offset != want {
			t.Errorf("byte %d: want=%d got=%d", k, want, unaligned.Offset)
		}
	}
}

func TestAligned(t *testing.T) {
	data := test.AlignedBytes[uint32](test.FromLittleEndian(4, []byte{
		1, 0, 0, 0,
		2, 0, 0, 0,
		3, 0, 0, 0,
		4, 0,
	}))

	if _, err := transmute.NewAligned[uint32](data[2:]); !errors.Is(err, transmute.ErrUnaligned) {
		t.Fatalf("unaligned buffer accepted: %v", err)
	}

	a, err := transmute.NewAligned[uint32](data)
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != len(data) || &a.Bytes()[0] != &data[0] {
		t.Fatal("the wrapper must give access to the original buffer")
	}

	values := a.ManyPermissive()
	if len(values) != 3 || values[0] != 1 || values[1] != 2 || values[2] != 3 {
		t.Errorf("wrong values: %v", values)
	}

	if _, err := a.Many(transmute.AllOrNothing); !errors.Is(err, transmute.ErrExcessBytes) {
		t.Errorf("excess bytes accepted: %v", err)
	}

	first, err := a.Many(transmute.SingleAtLeast)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 1 || first[0] != 1 {
		t.Errorf("wrong values: %v", first)
	}

	vec, err := a.Vec(transmute.SingleExact)
	if err == nil {
		t.Fatalf("single-exact guard accepted %d bytes: %v", len(data), vec)
	}
	if a.Len() != len(data) {
		t.Fatal("failed transfer must leave the wrapper unchanged")
	}

	vec = a.VecPermissive()
	if len(vec) != 3 || cap(vec) != cap(data)/4 {
		t.Errorf("wrong length or capacity: len=%d cap=%d", len(vec), cap(vec))
	}
	if a.Bytes() != nil {
		t.Error("the wrapper must be emptied by the transfer")
	}
}

func TestAlignedZeroSized(t *testing.T) {
	a := transmute.Declared[empty]().AssumeAligned(make([]byte, 8))

	if values := a.ManyPermissive(); values == nil || len(values) != 0 {
		t.Errorf("want an empty slice, got %#v", values)
	}
	if values := a.VecPermissive(); values == nil || len(values) != 0 {
		t.Errorf("want an empty slice, got %#v", values)
	}
}

type empty struct{}

func (empty) Transmutable() {}
